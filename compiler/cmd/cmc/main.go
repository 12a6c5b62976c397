package main

import (
	"errors"
	"io"
	"os"

	"github.com/desilang/cminus/compiler/internal/term"
)

/* ---------- main ---------- */

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// exitError carries a process exit status through cobra's RunE.
type exitError struct {
	code int
	err  error // printed when non-nil
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status"
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// run executes the CLI and returns the exit status:
// 0 ok, 1 semantic errors, 2 usage or I/O errors.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			term.Wprintf(stderr, "error: %v\n", ee.err)
		}
		return ee.code
	}
	term.Wprintf(stderr, "error: %v\n", err)
	return 2
}
