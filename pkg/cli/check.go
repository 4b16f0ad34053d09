package cli

import (
	"context"

	"github.com/makedist/makedist/pkg/config"
	distContext "github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/pipeline"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration file",
	Long: `Validate the .makedist.yaml configuration file.
This command checks for syntax errors and required fields without touching
the staging tree or invoking any external tool.`,
	Run: runCheck,
}

// runCheck executes the check command
func runCheck(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())
	configPath := GetConfigPath()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		ExitWithErrorf(logger, "Failed to load configuration: %v", err)
	}

	logger.Info("Configuration loaded successfully")

	ctx := distContext.NewContext(context.Background(), cfg, logger)
	// Validate the release section too, even though a plain run skips it.
	ctx.Publish = true

	if err := pipeline.RunValidation(ctx); err != nil {
		ExitWithErrorf(logger, "Configuration validation failed: %v", err)
	}

	logger.Info("Configuration is valid")
}
