package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-htmlify"
)

// runHandlersCmd lists the built-in handlers and their extensions.
func runHandlersCmd(args []string, env *Environment) int {
	if len(args) > 0 {
		fmt.Fprintf(env.Stderr, "error: %v: handlers takes no arguments, got %q\n", ErrUsage, args)
		return ExitUsage
	}

	reg, err := htmlify.DefaultRegistry(htmlify.HandlerOptions{})
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}

	for _, h := range reg.Handlers() {
		fmt.Fprintf(env.Stdout, "%-9s %s\n", h.Name(), strings.Join(reg.Aliases(h.Name()), ", "))
	}
	return ExitSuccess
}
