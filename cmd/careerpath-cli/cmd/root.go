package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"careerpath/internal/app"
	"careerpath/internal/config"
	"careerpath/internal/logging"
)

var (
	configPath string
	offline    bool
	verbose    bool
	services   *app.Services
)

var rootCmd = &cobra.Command{
	Use:   "careerpath-cli",
	Short: "Track hands-on career projects from the terminal",
	Long: `careerpath-cli resolves career projects, tracks task progress and
manages the domains generated from your ikigai summary.

Project progress is kept on disk across sessions. Resolved projects,
generated domains and the selected project live in session storage
until the session ends or expires.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err := logging.New(level, false)
		if err != nil {
			return err
		}

		services, err = app.Open(cmd.Context(), cfg, logger, app.Options{Offline: offline})
		if err != nil {
			return err
		}
		logger.Debug("services ready", zap.String("db", services.DB.Path()))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if services == nil {
			return nil
		}
		err := services.Close()
		services = nil
		return err
	},
}

// Execute runs the root command
func Execute() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if services != nil {
			services.Close()
		}
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("config file (default %s)", config.DefaultPath()))
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "never contact the backend")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// GetServices returns the initialized services
func GetServices() *app.Services {
	return services
}

// opContext bounds a command's work by the configured timeout
func opContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), app.Timeout(services.Config))
}
