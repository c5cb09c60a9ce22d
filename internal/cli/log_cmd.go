package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/registry"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("log needs an interactive terminal; use 'fittrack report' instead")

func newLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Enter a workout interactively and summarize it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}

			var code string
			if err := activityTypeForm(&code).Run(); err != nil {
				return formError(err)
			}
			entry, err := registry.Describe(code)
			if err != nil {
				return err
			}

			raw := make([]string, entry.Arity())
			if err := workoutValuesForm(entry, raw).Run(); err != nil {
				return formError(err)
			}
			values, err := parseValues(raw)
			if err != nil {
				return err
			}

			line, err := app.Workouts.ProcessWorkout(cmd.Context(), code, values)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("cancelled")
	}
	return err
}
