package cli

import (
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/workout"
	"github.com/spf13/cobra"
)

// demoPackage is a sample sensor package.
type demoPackage struct {
	Code   string
	Values []float64
}

var demoPackages = []demoPackage{
	{Code: "SWM", Values: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Values: []float64{15000, 1, 75}},
	{Code: "WLK", Values: []float64{9000, 1, 75, 180}},
}

func newDemoCmd(app *App) *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Summarize a fixed set of sample workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if table {
				reports := make([]workout.Report, 0, len(demoPackages))
				for _, p := range demoPackages {
					report, err := app.Workouts.Report(ctx, p.Code, p.Values)
					if err != nil {
						return err
					}
					reports = append(reports, report)
				}
				fmt.Fprint(out, formatter.FormatReports(reports))
				return nil
			}

			for _, p := range demoPackages {
				line, err := app.Workouts.ProcessWorkout(ctx, p.Code, p.Values)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&table, "table", false, "Render a styled table instead of summary lines")

	return cmd
}
