// Command holocron browses a remote, cursor-paginated character catalogue.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/holocron/internal/cli"
	"github.com/rshade/holocron/internal/source"
	"github.com/rshade/holocron/pkg/version"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitFetchFailed = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and maps the result to a process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SilenceErrors = true

	err := root.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCodeFor(err)
}

// exitCodeFor distinguishes a failed remote fetch from other errors.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	var fetchErr *source.FetchError
	if errors.As(err, &fetchErr) {
		return exitFetchFailed
	}
	return exitError
}
