package cli

import (
	"os"

	"github.com/makedist/makedist/pkg/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate example makedist configuration",
	Long: `Generate an example .makedist.yaml configuration file in the current directory.
The file contains every configuration section with its default value.`,
	Run: runInit,
}

// runInit executes the init command
func runInit(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())
	configPath := config.DefaultPath

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		logger.Infof("Configuration file %s already exists", configPath)
		os.Exit(0)
	}

	exampleConfig := config.ExampleConfig()

	if err := config.SaveConfig(configPath, exampleConfig); err != nil {
		ExitWithErrorf(logger, "Failed to save configuration: %v", err)
	}

	logger.Infof("Example configuration created: %s", configPath)
	logger.Info("Edit this file to match your project layout")
}
