package cli

import (
	"io"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/config"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Config   config.Config
	Workouts service.WorkoutService

	// LogOutput receives use-case logs when logging is enabled.
	LogOutput io.Writer

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// IsColorTerminal reports whether stdout supports styled output.
	IsColorTerminal func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// applyConfig installs color and logging settings and builds any service
// the caller did not provide.
func (a *App) applyConfig() {
	switch a.Config.Color {
	case config.ColorAlways:
		formatter.SetColorEnabled(true)
	case config.ColorNever:
		formatter.SetColorEnabled(false)
	default:
		if a.IsColorTerminal != nil {
			formatter.SetColorEnabled(a.IsColorTerminal())
		}
	}

	if a.Workouts != nil {
		return
	}
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if level, ok := a.Config.SlogLevel(); ok && a.LogOutput != nil {
		observer = service.NewLogUseCaseObserver(a.LogOutput, service.LogOptions{
			Level: level,
			JSON:  a.Config.LogFormat == "json",
		})
	}
	a.Workouts = service.NewWorkoutService(observer)
}

// NewRootCmd creates the top-level "fittrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var color, logLevel string

	root := &cobra.Command{
		Use:           "fittrack",
		Short:         "Workout distance, speed and calorie calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("color") {
				mode, err := config.ParseColorMode(color)
				if err != nil {
					return err
				}
				app.Config.Color = mode
			}
			if cmd.Flags().Changed("log-level") {
				level, err := config.ParseLogLevel(logLevel)
				if err != nil {
					return err
				}
				app.Config.LogLevel = level
			}
			app.applyConfig()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&color, "color", string(app.Config.Color), "Styled output: auto, always or never")
	root.PersistentFlags().StringVar(&logLevel, "log-level", app.Config.LogLevel, "Log level on stderr: off, debug, info, warn or error")

	root.AddCommand(
		newReportCmd(app),
		newDemoCmd(app),
		newTypesCmd(app),
		newLogCmd(app),
	)

	return root
}
