package output

import (
	"bytes"
	"fmt"
	"testing"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "{\n  \"a\": 1\n}\n"; got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	w := Table(&buf)
	fmt.Fprintln(w, "ID\tNAME")
	fmt.Fprintln(w, "abc\tSales MCP")
	_ = w.Flush()

	want := "ID   NAME\nabc  Sales MCP\n"
	if buf.String() != want {
		t.Errorf("Table() output = %q, want %q", buf.String(), want)
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "%d skipped", 2)
	if buf.String() != "Warning: 2 skipped\n" {
		t.Errorf("Warn() = %q", buf.String())
	}
}
