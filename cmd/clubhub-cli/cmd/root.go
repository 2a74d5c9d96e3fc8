package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"clubhub/internal/bootstrap"
	"clubhub/internal/config"
	"clubhub/internal/observability"
)

// offline marks commands that do not need the deck database
const offline = "offline"

var (
	configPath string
	dbPath     string
	verbose    bool
	cfg        config.Config
	rt         *bootstrap.Runtime
	logger     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "clubhub-cli",
	Short: "CLI for the clubhub card stack",
	Long: `clubhub-cli edits the persisted stack of club spots without the TUI.

Every command that changes the stack prints the edit script summary
(+inserted -removed ↕moved ~updated) computed by reconciling the stack
before and after the change.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger = observability.InitLogger("clubhub-cli", os.Stderr, level)

		if cmd.Annotations[offline] == "true" {
			return nil
		}
		rt, err = bootstrap.Open(cmd.Context(), cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if rt == nil {
			return nil
		}
		err := rt.Close()
		rt = nil
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.Path(), "path to the config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the deck database (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// GetRuntime returns the initialized runtime
func GetRuntime() *bootstrap.Runtime {
	return rt
}
