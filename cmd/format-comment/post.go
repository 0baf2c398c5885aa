// Package main provides the format-comment CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	cerrors "github.com/cicd-ai-toolkit/pr-status-comment/pkg/errors"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/observability"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/output"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/platform"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// postFlags holds the flags for the post command
type postFlags struct {
	repo    string
	pr      int
	dryRun  bool
	timeout time.Duration
}

func newPostCmd(global *globalFlags) *cobra.Command {
	opts := &postFlags{}

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post the comment to the pull request",
		Long: `Render the status comment and post it to the pull request. A comment
left by an earlier run is updated in place instead of adding a new one.

The repository and pull request number are read from the GitHub Actions
environment unless --repo and --pr are given. The token is read from the
variable named by github.token_env (default GITHUB_TOKEN).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}

			ref, err := platform.DetectPullRequest(afero.NewOsFs())
			if err != nil && opts.repo == "" {
				return cerrors.ValidationError("cannot detect repository", err)
			}
			if opts.repo != "" {
				owner, repo, err := platform.ParseRepository(opts.repo)
				if err != nil {
					return cerrors.ValidationError("invalid --repo", err)
				}
				ref.Owner, ref.Repo = owner, repo
			}
			if opts.pr > 0 {
				ref.Number = opts.pr
			}
			if err := ref.Validate(); err != nil {
				return cerrors.ValidationError("no pull request to comment on", err)
			}

			comment := generateComment(cfg, logger)

			if opts.dryRun {
				logger.Info("dry run, not posting", observability.String("pull_request", ref.String()))
				_, err := fmt.Fprintln(cmd.OutOrStdout(), comment)
				return err
			}

			gh, err := platform.NewGitHub(platform.GitHubOptions{
				Token:  os.Getenv(cfg.GitHub.TokenEnv),
				Owner:  ref.Owner,
				Repo:   ref.Repo,
				Marker: cfg.GitHub.Marker,
				APIURL: cfg.GitHub.APIURL,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			reporter := output.NewReporter(cmd.OutOrStdout(),
				output.WithLogger(logger),
				output.WithPullRequest(gh, ref.Number))
			return reporter.Report(ctx, comment)
		},
	}

	cmd.Flags().StringVar(&opts.repo, "repo", "", "Repository as owner/name (default $GITHUB_REPOSITORY)")
	cmd.Flags().IntVar(&opts.pr, "pr", 0, "Pull request number (default from the GitHub event)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the comment and target without posting")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Time limit for the GitHub API calls")

	return cmd
}
