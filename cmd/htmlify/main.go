package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()
	configureMaxprocs(isVerbose(os.Args[1:]), env.Stderr)
	os.Exit(runMain(os.Args, env))
}

// configureMaxprocs matches GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxprocs(verbose bool, w io.Writer) {
	logger := func(string, ...any) {}
	if verbose {
		logger = func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}

// isVerbose reports whether -v or --verbose appears before "--".
func isVerbose(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}

// runMain dispatches args[1:] and returns the process exit code.
// A first argument naming a command (version, help, handlers, doctor) runs
// that command; anything else is "htmlify [flags] <outfile> <file>...".
// A leading "--" skips command dispatch, so an <outfile> named "help" is
// written with "htmlify -- help a.png".
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "htmlify %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(args[2:], env)
	case "handlers":
		return runHandlersCmd(args[2:], env)
	case "doctor":
		return runDoctorCmd(args[2:], env)
	}

	flags, positional, err := parseBuildFlags(args[1:], env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		// pflag already printed the error and usage.
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runBuild(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, configName(flags, env)))
		if errors.Is(err, ErrNoOutput) {
			printUsage(env.Stderr)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}
