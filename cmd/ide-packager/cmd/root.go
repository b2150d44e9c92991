package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/ide-packager/internal/config"
	"github.com/oshokin/ide-packager/internal/domain/release"
	"github.com/oshokin/ide-packager/internal/logger"
	"github.com/oshokin/ide-packager/internal/service/packager"
	"github.com/oshokin/ide-packager/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel is the minimum level of log output.
	logLevel string
	// targetOS overrides the detected operating system.
	targetOS string
	// targetArch overrides the detected architecture.
	targetArch string
	// dryRun prints the packaging command instead of running it.
	dryRun bool

	// rootCmd derives the release identity and runs the packaging tool.
	rootCmd = &cobra.Command{
		Use:   "ide-packager",
		Short: "Package the IDE with a version and artifact name derived from the build mode",
		Long: "Package the IDE with electron-builder. The build mode comes from " +
			config.EnvRelease + " / " + config.EnvNightly + " or --release / --nightly: " +
			"release builds keep the manifest version, nightly builds append the date, " +
			"snapshot builds append the short commit hash.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level: '%s'", logLevel)
			}

			logger.SetLevel(level)

			flags, err := config.BuildFlags(cmd.Flags())
			if err != nil {
				return err
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &packager.Options{
				ConfigPath: configPath,
				Flags:      flags,
				Host:       targetHost(),
				DryRun:     dryRun,
			}

			return packager.Run(ctx, options)
		},
	}
)

// Execute runs the ide-packager CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	defer logger.Sync()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error(context.Background(), err)
		logger.Sync()
		os.Exit(1)
	}
}

// targetHost returns the running host with command line overrides applied.
// Overrides accept Go's GOOS/GOARCH names as well as the platform table's.
func targetHost() release.Host {
	host := release.CurrentHost()
	overrides := release.HostFromRuntime(targetOS, targetArch)

	if targetOS != "" {
		host.OS = overrides.OS
	}

	if targetArch != "" {
		host.Arch = overrides.Arch
	}

	return host
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&configPath, "config", "c", "", "path to configuration file (default "+config.DefaultConfigFilename+" if present)")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.Bool(config.FlagRelease, false, "release build (overrides "+config.EnvRelease+")")
	flags.Bool(config.FlagNightly, false, "nightly build (overrides "+config.EnvNightly+")")
	flags.StringVar(&targetOS, "os", "", "target operating system: windows, macOS (darwin) or linux (default: running host)")
	flags.StringVar(&targetArch, "arch", "", "target architecture: x64 (amd64), arm64 or arm (default: running host)")
	flags.BoolVar(&dryRun, "dry-run", false, "print the packaging command without running it")
}
