package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [dir]",
		Short: "Generate the build plan from build description files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}

			return c.app.WithVerbose(verbose).Gen(cmd.Context(), dir)
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Log each build file as it is loaded")

	return cmd
}
