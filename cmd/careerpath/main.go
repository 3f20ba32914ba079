package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"careerpath/internal/adapters/sqlite"
	"careerpath/internal/adapters/tui"
	"careerpath/internal/app"
	"careerpath/internal/config"
	"careerpath/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default "+config.DefaultPath()+")")
	offlineFlag := flag.Bool("offline", false, "never contact the backend")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: careerpath [flags] [project-id]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*configFlag, *offlineFlag, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, offline bool, projectID string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = filepath.Dir(sqlite.DefaultPath())
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	logger, err := logging.ToFile(cfg.LogLevel, filepath.Join(dataDir, "careerpath.log"))
	if err != nil {
		return err
	}

	ctx := context.Background()
	services, err := app.Open(ctx, cfg, logger, app.Options{Offline: offline})
	if err != nil {
		return err
	}
	defer services.Close()

	// resolving up front warms the session cache for the checklist
	res, err := services.Resolver.ResolveSelected(ctx, projectID)
	if err != nil {
		return errors.Join(err, errors.New("pass a project id or run `careerpath-cli project select <id>`"))
	}
	if projectID != "" {
		if err := services.Resolver.SelectProject(ctx, res.ID); err != nil {
			logger.Warn("failed to remember selected project", zap.Error(err))
		}
	}

	p := tea.NewProgram(tui.NewApp(ctx, services.Resolver, services.Progress, res.ID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
