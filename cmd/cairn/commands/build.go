package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cairn/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [products...]",
		Short: "Build the selected products, or every product",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.dispatch(cmd, app.CommandBuild, func(req *app.Request) {
				req.Products = append(req.Products, args...)
			})
		},
	}
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build directory and build records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.dispatch(cmd, app.CommandClean, nil)
		},
	}
}

func (c *CLI) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open a shell in the run environment of a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.dispatch(cmd, app.CommandShell, nil)
		},
	}
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List products, their sources and untracked files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.dispatch(cmd, app.CommandStatus, nil)
		},
	}
}

func (c *CLI) newPropertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "properties [products...]",
		Short: "Print the properties of the selected products",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.dispatch(cmd, app.CommandProperties, func(req *app.Request) {
				req.Products = append(req.Products, args...)
			})
		},
	}
}
