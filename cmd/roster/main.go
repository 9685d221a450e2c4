package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"

	"roster/internal/app"
	"roster/internal/config"
	"roster/internal/shell"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debugLogs  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Write debug logs to stderr")
}

var rootCmd = &cobra.Command{
	Use:          "roster",
	Short:        "roster: interactive department membership registry",
	Long:         `roster keeps an in-memory list of people and the departments they belong to. Type "add <name> to <department>", "remove <name> from <department>", "list [department]" or "exit".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		controller := app.New(app.Options{Logger: newLogger(cfg.Debug, cmd.ErrOrStderr())})
		return shell.Run(cmd.Context(), controller, cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{Prompt: cfg.Prompt})
	},
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if debugLogs {
		cfg.Debug = true
	}
	return cfg, nil
}

func newLogger(debug bool, w io.Writer) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(fmt.Errorf("roster: %w", err))
	}
}
