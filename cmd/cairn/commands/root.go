// Package commands implements the CLI commands for the cairn build tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cairn/internal/app"
	"go.trai.ch/cairn/internal/build"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultProjectFile is the project file used when --file is not given.
const DefaultProjectFile = "cairn.yaml"

// Dispatcher runs a parsed request.
type Dispatcher interface {
	Dispatch(ctx context.Context, req app.Request) (int, error)
}

// CLI represents the command line interface for cairn.
type CLI struct {
	app         Dispatcher
	defaultJobs int
	rootCmd     *cobra.Command

	code int
	err  error
}

// New creates a new CLI instance. defaultJobs applies when --jobs is not given.
func New(a Dispatcher, defaultJobs int) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cairn",
		Short:         "An incremental build tool for C and C++ projects",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("file", "f", DefaultProjectFile, "Project file to load")
	flags.StringArray("config", nil, "Build configuration to resolve (repeatable)")
	flags.StringSliceP("products", "p", nil, "Restrict the command to the named products")
	flags.IntP("jobs", "j", 0, "Maximum number of parallel jobs")
	flags.BoolP("dry-run", "n", false, "Scan and hash, but do not run build commands")
	flags.Bool("force", false, "Rebuild products even when they are up to date")

	c := &CLI{
		app:         a,
		defaultJobs: defaultJobs,
		rootCmd:     rootCmd,
	}

	// Without a subcommand cairn builds.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.dispatch(cmd, app.CommandBuild, nil)
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newShellCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newPropertiesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// IsBuiltin reports whether name is a command of the CLI itself.
func (c *CLI) IsBuiltin(name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, cmd := range c.rootCmd.Commands() {
		if cmd.Name() == name || slices.Contains(cmd.Aliases, name) {
			return true
		}
	}
	return false
}

// ShouldDelegate reports whether args name a sub-tool rather than a built-in command.
func (c *CLI) ShouldDelegate(args []string) bool {
	return len(args) > 0 && args[0] != "" && !strings.HasPrefix(args[0], "-") && !c.IsBuiltin(args[0])
}

// Execute parses args and runs the selected command. It returns the process exit code.
func (c *CLI) Execute(ctx context.Context, args []string) (int, error) {
	c.code, c.err = 0, nil
	if args == nil {
		args = []string{}
	}
	c.rootCmd.SetArgs(args)
	c.rootCmd.SetContext(ctx)

	if err := c.rootCmd.Execute(); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrInvalidArguments, err)
		return int(domain.ExitCodeFor(err)), err
	}
	return c.code, c.err
}

// SetOutput redirects help, usage and version output. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// dispatch turns the parsed flags into a request. Dispatch failures are kept
// apart from parse failures so they keep their own exit code.
func (c *CLI) dispatch(cmd *cobra.Command, command app.Command, mutate func(*app.Request)) error {
	req, err := c.request(cmd, command)
	if err != nil {
		return err
	}
	if mutate != nil {
		mutate(&req)
	}
	c.code, c.err = c.app.Dispatch(cmd.Context(), req)
	return nil
}

func (c *CLI) request(cmd *cobra.Command, command app.Command) (app.Request, error) {
	flags := cmd.Flags()
	file, _ := flags.GetString("file")
	configs, _ := flags.GetStringArray("config")
	products, _ := flags.GetStringSlice("products")
	jobs, _ := flags.GetInt("jobs")
	dryRun, _ := flags.GetBool("dry-run")
	force, _ := flags.GetBool("force")

	if jobs < 0 {
		return app.Request{}, zerr.With(zerr.Wrap(domain.ErrInvalidArguments, "invalid job count"), "jobs", jobs)
	}
	if jobs == 0 {
		jobs = c.defaultJobs
	}

	return app.Request{
		Command:        command,
		ProjectFile:    file,
		Configurations: configs,
		Products:       products,
		Options: domain.BuildOptions{
			MaxJobs: jobs,
			DryRun:  dryRun,
			Force:   force,
		},
	}, nil
}
