package main

import (
	"fmt"

	"roster/internal/app"
	"roster/internal/tui"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdTUI)
}

var cmdTUI = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		controller := app.New(app.Options{Logger: newLogger(cfg.Debug, cmd.ErrOrStderr())})
		if err := tui.Run(controller, tui.Options{Prompt: cfg.Prompt, HistoryLimit: cfg.HistoryLimit}); err != nil {
			return fmt.Errorf("tui exited with error: %w", err)
		}
		return nil
	},
}
