package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cairn/internal/app"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-t target] [-- args...]",
		Short: "Build, then run an executable product",
		Args: func(cmd *cobra.Command, args []string) error {
			if dash := cmd.ArgsLenAtDash(); dash > 0 || (dash < 0 && len(args) > 0) {
				return zerr.With(zerr.Wrap(domain.ErrInvalidArguments, "unexpected arguments before --"), "args", args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetString("target")
			return c.dispatch(cmd, app.CommandRun, func(req *app.Request) {
				req.Target = target
				req.Args = args
			})
		},
	}
	cmd.Flags().StringP("target", "t", "", "Executable to run, matched as a suffix of its path")
	return cmd
}
