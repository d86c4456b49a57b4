package main

import (
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/getmockd/mcpconsole/internal/storage"
	"github.com/getmockd/mcpconsole/pkg/cli"
	"github.com/getmockd/mcpconsole/pkg/devbackend"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"mcpconsole": cli.Main,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(env *testscript.Env) error {
			// Each script gets its own empty backend with predictable ids.
			var n atomic.Int64
			srv := devbackend.New(storage.NewInMemoryInstanceStore(),
				devbackend.WithIDGenerator(func() string { return fmt.Sprintf("mcp%d", n.Add(1)) }),
			)
			ts := httptest.NewServer(srv.Handler())
			env.Defer(ts.Close)

			env.Setenv("MCPCONSOLE_API_URL", ts.URL)
			env.Setenv("API_URL", ts.URL)
			env.Setenv("HOME", env.WorkDir)
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, ".config"))
			env.Setenv("XDG_DATA_HOME", filepath.Join(env.WorkDir, ".local", "share"))
			return nil
		},
	})
}
