// Package main is the entry point for cairn-setup-toolchains, which probes
// compilers and stores the resulting toolchain profiles.
package main

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/app"
	"go.trai.ch/cairn/internal/core/domain"
	_ "go.trai.ch/cairn/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx := context.Background()

	components, _, err := graft.ExecuteFor[*app.ToolchainComponents](ctx)
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return int(domain.ExitCodeFor(err))
	}

	s := &setup{
		prober:       components.Prober,
		store:        components.Store,
		logger:       components.Logger,
		crossCompile: os.Getenv("CROSS_COMPILE"),
	}
	code, err := s.execute(ctx, args)
	if err != nil {
		components.Logger.Error(err)
	}
	return code
}
