package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/registry"
	"github.com/alexanderramin/fittrack/internal/workout"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "report CODE VALUE...",
		Short: "Summarize one workout package",
		Long: "Summarize one workout package.\n\n" +
			"CODE is one of " + strings.Join(registry.Codes(), ", ") + "; run 'fittrack types' for the values each expects.",
		Example: "  fittrack report RUN 15000 1 75\n  fittrack report --table SWM 720 1 80 25 40",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if table {
				report, err := app.Workouts.Report(ctx, args[0], values)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReports([]workout.Report{report}))
				return nil
			}

			line, err := app.Workouts.ProcessWorkout(ctx, args[0], values)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().BoolVar(&table, "table", false, "Render a styled table instead of the summary line")
	// Readings after CODE are positional, so "-1" reaches validation
	// instead of being parsed as a shorthand flag.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
