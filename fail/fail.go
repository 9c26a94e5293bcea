// Package fail terminates the process with a tagged exit status.
//
// The platform primitives distinguish two kinds of unrecoverable failure:
// the environment refused a query it should be able to answer, and an OS
// call that must always succeed on a supported platform did not. Neither
// is something a caller can continue past, so both end the process here
// rather than returning an error for callers to mishandle.
package fail

import (
	"fmt"
	"io"
	"os"
)

// Code is a process exit status shared with the launcher.
type Code int

// Exit codes reserved by the launcher wire contract.
const (
	Success Code = 0

	// LocalEnvironmentalError means the OS or local environment refused
	// or could not perform a requested query.
	LocalEnvironmentalError Code = 36

	// InternalError means an OS call that should always succeed on a
	// supported platform failed.
	InternalError Code = 37
)

// Swapped out in tests.
var exit = os.Exit
var out io.Writer = os.Stderr

// Fatalf prints the formatted message to stderr and terminates the
// process with the given code.
func Fatalf(code Code, format string, args ...any) {
	fmt.Fprintf(out, "Error: %s\n", fmt.Sprintf(format, args...))
	exit(int(code))
}

// FatalErr prints the message followed by the OS-reported error detail to
// stderr and terminates the process with the given code.
func FatalErr(code Code, err error, msg string) {
	if err != nil {
		fmt.Fprintf(out, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(out, "Error: %s\n", msg)
	}

	exit(int(code))
}
