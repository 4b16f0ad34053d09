package cli

import (
	stdContext "context"
	"os"
	"os/signal"

	"github.com/makedist/makedist/pkg/config"
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/manifest"
	"github.com/makedist/makedist/pkg/pipeline"
	"github.com/makedist/makedist/pkg/platform"
	"github.com/makedist/makedist/pkg/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command. Unlike most release tooling this one
// does its work directly on the root command: positional arguments are
// platform filters and three flags pick the run mode.
var rootCmd = &cobra.Command{
	Use:     "makedist [platform-filter...]",
	Short:   "Package the staged app into per-platform distributions",
	Version: version.VersionInfo(),
	Long: `Makedist copies the working files into a staging tree, invokes the
external bundler for each selected platform, and compresses each bundle
directory into a distributable archive (a DMG disk image for macOS, a zip
elsewhere).

Positional arguments are substring filters over the platform identifiers
(darwin-x64, linux-ia32, linux-x64, win32-ia32, win32-x64); with no
arguments every platform is processed.`,
}

func init() {
	// Assigned outside the literal: runDist reads flags via GetDebugMode,
	// which refers back to rootCmd, so an in-literal Run field would create
	// an initialization cycle.
	rootCmd.Run = runDist
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	registerCommands()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	return rootCmd.Execute()
}

// registerCommands initializes flags and registers all subcommands
func registerCommands() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug mode")

	rootCmd.Flags().BoolP("build", "b", false, "stage and build bundle directories only")
	rootCmd.Flags().BoolP("zip", "z", false, "turn bundle directories into archives only")
	rootCmd.Flags().BoolP("none", "n", false, "stage only, do nothing except look at the arguments")
	rootCmd.Flags().Bool("publish", false, "upload finished archives to a GitHub release")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
}

// runDist executes the packaging pipeline on the root command.
func runDist(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())

	cfg, err := config.LoadConfig(GetConfigPath())
	if err != nil {
		ExitWithErrorf(logger, "Failed to load configuration: %v", err)
	}

	meta, err := manifest.Load(cfg.Project.Manifest)
	if err != nil {
		ExitWithErrorf(logger, "Failed to read product manifest: %v", err)
	}
	logger.Infof("%s version: %s", meta.Name, meta.Version)

	targets, err := platform.Select(args)
	if err != nil {
		ExitWithErrorf(logger, "Failed to select platforms: %v", err)
	}

	build, _ := cmd.Flags().GetBool("build")
	archive, _ := cmd.Flags().GetBool("zip")
	none, _ := cmd.Flags().GetBool("none")
	publish, _ := cmd.Flags().GetBool("publish")

	stdCtx, stop := signal.NotifyContext(stdContext.Background(), os.Interrupt)
	defer stop()

	ctx := context.NewContext(stdCtx, cfg, logger)
	ctx.Meta = meta
	ctx.Targets = targets
	ctx.Mode = context.ResolveMode(build, archive, none)
	ctx.Publish = publish

	if err := pipeline.RunAll(ctx); err != nil {
		ExitWithErrorf(logger, "Packaging failed: %v", err)
	}
}

// GetConfigPath returns the config file path from flags
func GetConfigPath() string {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	return configPath
}

// GetDebugMode returns debug mode flag value
func GetDebugMode() bool {
	debug, _ := rootCmd.PersistentFlags().GetBool("debug")
	return debug
}
