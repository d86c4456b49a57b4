package id

import (
	"regexp"
	"sync"
	"testing"
)

var alnumRegex = regexp.MustCompile(`^[a-zA-Z0-9]*$`)

func TestUUID_Format(t *testing.T) {
	id := UUID()

	// UUID v4 format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
	uuidRegex := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	if !uuidRegex.MatchString(id) {
		t.Errorf("UUID() = %q, does not match UUID v4 format", id)
	}
}

func TestInstance_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := Instance()
		if len(id) != InstanceIDLength {
			t.Fatalf("Instance() length = %d, want %d", len(id), InstanceIDLength)
		}
		if !alnumRegex.MatchString(id) {
			t.Fatalf("Instance() = %q contains non-alphanumeric characters", id)
		}
	}
}

func TestInstance_Concurrent(t *testing.T) {
	const goroutines = 10
	const perGoroutine = 100

	var mu sync.Mutex
	seen := make(map[string]bool, goroutines*perGoroutine)
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, perGoroutine)
			for i := range local {
				local[i] = Instance()
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				if seen[id] {
					t.Errorf("Instance() generated duplicate: %s", id)
				}
				seen[id] = true
			}
		}()
	}
	wg.Wait()
}

func TestAlphanumeric_Lengths(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{32, 32},
	}
	for _, tt := range tests {
		got := Alphanumeric(tt.length)
		if len(got) != tt.want {
			t.Errorf("Alphanumeric(%d) length = %d, want %d", tt.length, len(got), tt.want)
		}
		if !alnumRegex.MatchString(got) {
			t.Errorf("Alphanumeric(%d) = %q", tt.length, got)
		}
	}
}

func BenchmarkInstance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Instance()
	}
}

func TestAlphanumeric_CoversCharset(t *testing.T) {
	seen := make(map[rune]int)
	for _, r := range Alphanumeric(20000) {
		seen[r]++
	}
	if len(seen) != len(alphanumeric) {
		t.Fatalf("saw %d distinct characters, want %d", len(seen), len(alphanumeric))
	}
	// about 322 each
	for r, n := range seen {
		if n < 150 {
			t.Errorf("character %q appeared only %d times", r, n)
		}
	}
}
