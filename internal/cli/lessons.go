package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KasperOmsK/fnkit/internal/lesson"
	"github.com/KasperOmsK/fnkit/internal/logger"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, l := range lesson.All() {
				fmt.Fprintf(tw, "%s\t%s\n", l.Name, l.Title)
			}
			return tw.Flush()
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [lesson...]",
		Short: "Print the annotated expressions of the given lessons (all by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			names := args
			if len(names) == 0 {
				names = cfg.Lessons
			}
			lessons, err := lesson.Select(names)
			if err != nil {
				return err
			}

			env := lesson.Env{RandomPulls: cfg.RandomPulls}
			for _, l := range lessons {
				logger.L().Debug("lesson.start", "lesson", l.Name)
				if err := l.Run(cmd.OutOrStdout(), env); err != nil {
					return err
				}
				logger.L().Debug("lesson.done", "lesson", l.Name)
			}
			logger.L().Info("walkthrough.finished", "lessons", len(lessons))
			return nil
		},
	}
}
