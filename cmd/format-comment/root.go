// Package main provides the format-comment CLI application.
package main

import (
	"context"

	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/artifact"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/config"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/observability"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/output"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/platform"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every command
type globalFlags struct {
	config      string
	logsDir     string
	logLevel    string
	stepSummary string
}

// Execute runs the root command. This is called by main.main().
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "format-comment",
		Short: "Render the CI status comment for a pull request",
		Long: `format-comment reads the lint, breaking-changes and DNS-check artifacts
written by earlier CI steps and prints a markdown status comment.

Artifacts are read from logs/ (lint.json, breaking-changes.txt, check-dns.txt).
When CI is set and VALIDATED is not "true" only a failure banner is printed.`,
		Version:      version.FullString(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			reporterOpts := []output.ReporterOption{output.WithLogger(logger)}
			if opts.stepSummary != "" {
				reporterOpts = append(reporterOpts, output.WithStepSummary(afero.NewOsFs(), opts.stepSummary))
			}

			comment := generateComment(cfg, logger)
			return output.NewReporter(cmd.OutOrStdout(), reporterOpts...).Report(cmd.Context(), comment)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "Path to configuration file (default ./"+config.ProjectConfigFile+")")
	flags.StringVar(&opts.logsDir, "logs-dir", "", "Directory containing the CI artifacts (default \"logs\")")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&opts.stepSummary, "step-summary", "", "Also append the comment to this file, e.g. $GITHUB_STEP_SUMMARY")

	rootCmd.AddCommand(newPreviewCmd(opts))
	rootCmd.AddCommand(newPostCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig loads configuration and applies flag overrides, which take
// precedence over the environment.
func loadConfig(cmd *cobra.Command, opts *globalFlags) (*config.Config, observability.Logger, error) {
	loader := config.NewLoader()
	if opts.config != "" {
		loader = loader.WithConfigFile(opts.config)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}

	if opts.logsDir != "" {
		cfg.LogsDir = opts.logsDir
	}
	if opts.logLevel != "" {
		if err := config.NewValidator().ValidateLogLevel(opts.logLevel); err != nil {
			return nil, nil, err
		}
		cfg.LogLevel = opts.logLevel
	}

	logger := observability.NewLoggerTo(cmd.ErrOrStderr(), cfg.LogLevel)
	logger.Debug("configuration loaded",
		observability.String("platform", platform.DetectPlatform()),
		observability.Bool("ci", cfg.CI),
		observability.Bool("validated", cfg.Validated),
		observability.String("logs_dir", cfg.LogsDir))
	for key, value := range config.GetEnvConfig() {
		logger.Debug("environment override", observability.String(key, value))
	}

	return cfg, logger, nil
}

// generateComment renders the status comment from the configured artifacts.
func generateComment(cfg *config.Config, logger observability.Logger) string {
	reader := artifact.NewReader(afero.NewOsFs(), logger)
	return output.NewCommentGenerator(reader, logger).Generate(output.Options{
		IsCI:      cfg.CI,
		Validated: cfg.Validated,
		Paths:     cfg.ArtifactPaths(),
	})
}
