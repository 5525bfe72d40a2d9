package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/reps/internal/app"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var prefsFlag string
	var verbose bool

	ctx := newCommandContext(&configFlag, &prefsFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:           "reps",
		Short:         "Browse ExerciseDB from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), ctx.options())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&prefsFlag, "prefs", "", "Preferences file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newBodyPartsCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))

	return rootCmd
}
