package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdpress/internal/styles"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// run dispatches a command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd := args[1]; cmd {
	case "convert":
		err = runConvert(ctx, args[2:], env)
	case "init":
		err = runInit(args[2:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdpress %s\n", Version)
	case "help", "-h", "--help":
		runHelp(args[2:], env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, styles.ErrorStyle.Render("error:")+" "+err.Error())
	return exitCodeFor(err)
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota, which also
// sizes --workers 0. A failed Set leaves the runtime default in place.
func setMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}
