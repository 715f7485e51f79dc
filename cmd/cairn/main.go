// Package main is the entry point for the cairn build tool.
package main

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/cmd/cairn/commands"
	"go.trai.ch/cairn/internal/app"
	"go.trai.ch/cairn/internal/core/domain"
	_ "go.trai.ch/cairn/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string, opts ...func(*app.App)) int {
	ctx := context.Background()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return int(domain.ExitCodeFor(err))
	}
	defer func() {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Settings.Jobs)

	// 3. Sub-tools
	if cli.ShouldDelegate(args) {
		if code, ok := components.Launcher.TryRun(args); ok {
			return code
		}
	}

	// 4. Execution
	code, err := cli.Execute(ctx, args)
	if err != nil {
		components.Logger.Error(err)
	}
	return code
}
