package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kupikrutcher/relationship-app/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "relationship",
	Short: "Relationship journal: events, wishes, moods and insights",
	Long: "Relationship journal keeps a calendar of gifts, dates, activities and fights, " +
		"a wish list and a mood log, and derives insights and reminders from them.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default $CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(wishCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// loadConfig reads configuration from --config, $CONFIG_PATH or
// ./config.yaml, in that order.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath, true)
	}
	return config.Load()
}

// newLogger builds the process logger from the log section and installs it
// as the slog default.
func newLogger(c config.LogConfig) *slog.Logger {
	level, err := config.ParseLevel(c.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using info\n", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(c.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
