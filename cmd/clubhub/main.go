package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/adapters/browser"
	"clubhub/internal/adapters/tui"
	"clubhub/internal/bootstrap"
	"clubhub/internal/config"
	"clubhub/internal/observability"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the config file")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// stdout belongs to the screen, so logs go to a file
	logFile, err := observability.OpenLogFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := observability.InitLogger("clubhub", logFile, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := bootstrap.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	changes, err := rt.Watch(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("catalog hot reload disabled")
	}

	app := tui.NewApp(rt.Session, rt.Store, browser.NewOpener(), tui.Options{
		VisibleCount:   cfg.VisibleCount,
		CatalogChanges: changes,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info().Msg("bye")
	return nil
}
