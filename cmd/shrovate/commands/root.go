package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrovate/shrovate/cmd/shrovate/internal/config"
)

var (
	// Global flags
	verbose bool

	// Global configuration (loaded at init time)
	globalConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "shrovate",
	Short: "SHROVATE operator console",
	Long: `shrovate - a chat console over the Gemini API.

The console renders a boot sequence and dashboard in the browser,
forwards text, audio, images, and video to the remote models, and plays
back whatever text, image, video, or speech comes back.

Credentials come from GEMINI_API_KEY, a .env file, or
~/.config/shrovate/config.yaml.

Examples:
  # Run the dashboard on the default local port
  shrovate serve

  # Chat from the terminal instead
  shrovate chat

  # Run the local control daemon used by voice commands
  shrovate helperd`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// configLoadErr stores the error from config.Load() for deferred
// reporting, so commands that need no config still run.
var configLoadErr error

func initConfig() {
	cfg, err := config.Load()
	if err != nil {
		configLoadErr = err
		return
	}
	globalConfig = cfg
}

// GetConfig returns the global configuration.
func GetConfig() (*config.Config, error) {
	if configLoadErr != nil {
		return nil, fmt.Errorf("load config: %w", configLoadErr)
	}
	if globalConfig == nil {
		return nil, fmt.Errorf("config not initialized")
	}
	return globalConfig, nil
}

// IsVerbose reports whether --verbose was set.
func IsVerbose() bool {
	return verbose
}
