package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // Timezone database for systems without one

	"fahrplan/internal/connection"
)

const (
	name        = "fahrplan"
	description = "A SBB/CFF/FFS commandline based timetable client."
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.3.0"

var errNotEnoughArguments = errors.New("not enough arguments")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, errorMessage(err))
		return 1
	}
	return 0
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, errNotEnoughArguments):
		return "Not enough arguments."
	case errors.Is(err, connection.ErrNetworkUnreachable):
		return "Error: Could not reach network."
	case errors.Is(err, connection.ErrServerStatus):
		return err.Error()
	default:
		return "Error: " + err.Error()
	}
}
