// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	cerrors "github.com/cicd-ai-toolkit/pr-status-comment/pkg/errors"
	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/observability"
	"github.com/google/go-github/v59/github"
)

const (
	// MaxCommentSize is GitHub's limit for comment body size.
	MaxCommentSize = 65536
	// CommentsPerPage is the number of comments to fetch per API call.
	CommentsPerPage = 100
	// MaxRetries is the maximum number of API attempts.
	MaxRetries = 3
	// RetryDelay is the base delay between retries.
	RetryDelay = time.Second

	maxPages        = 1000
	truncatedNotice = "\n\n---\n*Comment truncated due to size limits*"
)

var _ Platform = (*GitHub)(nil)

// GitHub posts sticky pull request comments through the GitHub API.
type GitHub struct {
	client     *github.Client
	owner      string
	repo       string
	marker     string
	retryDelay time.Duration
	logger     observability.Logger
}

// GitHubOptions configures NewGitHub.
type GitHubOptions struct {
	Token  string
	Owner  string
	Repo   string
	Marker string
	// APIURL is the GitHub Enterprise API URL; empty means api.github.com.
	APIURL string
	Logger observability.Logger
}

// NewGitHub creates a new GitHub adapter.
func NewGitHub(opts GitHubOptions) (*GitHub, error) {
	if opts.Token == "" {
		return nil, cerrors.ConfigError("GitHub token is required", nil)
	}

	client := github.NewClient(nil).WithAuthToken(opts.Token)
	if opts.APIURL != "" {
		if err := ValidateBaseURL(opts.APIURL); err != nil {
			return nil, err
		}
		var err error
		client, err = client.WithEnterpriseURLs(opts.APIURL, opts.APIURL)
		if err != nil {
			return nil, cerrors.ConfigError("invalid GitHub API URL", err)
		}
	}

	return newGitHubWithClient(client, opts), nil
}

func newGitHubWithClient(client *github.Client, opts GitHubOptions) *GitHub {
	logger := opts.Logger
	if logger == nil {
		logger = observability.NewNop()
	}
	return &GitHub{
		client:     client,
		owner:      opts.Owner,
		repo:       opts.Repo,
		marker:     opts.Marker,
		retryDelay: RetryDelay,
		logger:     logger.With(observability.String("repo", opts.Owner+"/"+opts.Repo)),
	}
}

// Name returns the platform name.
func (g *GitHub) Name() string {
	return "github"
}

// markerLine is the hidden HTML comment that identifies our comment.
func (g *GitHub) markerLine() string {
	return fmt.Sprintf("<!-- %s -->", g.marker)
}

// PostComment creates the status comment on PR number, or updates the comment
// carrying the same marker.
func (g *GitHub) PostComment(ctx context.Context, number int, body string) error {
	body = truncateComment(g.markerLine()+"\n"+body, MaxCommentSize)

	existing, err := g.FindExistingComment(ctx, number)
	if err != nil {
		return err
	}

	comment := &github.IssueComment{Body: github.String(body)}

	if existing != nil {
		g.logger.Info("updating existing comment",
			observability.Int("pr", number),
			observability.Int("comment_id", int(existing.GetID())))
		return g.retry(ctx, "update comment", func() (*github.Response, error) {
			_, resp, err := g.client.Issues.EditComment(ctx, g.owner, g.repo, existing.GetID(), comment)
			return resp, err
		})
	}

	g.logger.Info("creating comment", observability.Int("pr", number))
	return g.retry(ctx, "create comment", func() (*github.Response, error) {
		_, resp, err := g.client.Issues.CreateComment(ctx, g.owner, g.repo, number, comment)
		return resp, err
	})
}

// FindExistingComment pages through the PR comments looking for the marker.
// It returns nil when no comment carries it.
func (g *GitHub) FindExistingComment(ctx context.Context, number int) (*github.IssueComment, error) {
	marker := g.markerLine()
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{Page: 1, PerPage: CommentsPerPage},
	}

	for page := 0; page < maxPages; page++ {
		var comments []*github.IssueComment
		var resp *github.Response
		err := g.retry(ctx, "list comments", func() (*github.Response, error) {
			var err error
			comments, resp, err = g.client.Issues.ListComments(ctx, g.owner, g.repo, number, opts)
			return resp, err
		})
		if err != nil {
			return nil, err
		}

		for _, c := range comments {
			if strings.Contains(c.GetBody(), marker) {
				return c, nil
			}
		}

		if resp == nil || resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}

	g.logger.Warn("reached page limit while searching for comment", observability.Int("pr", number))
	return nil, nil
}

// retry runs call until it succeeds, fails permanently, or MaxRetries is hit.
func (g *GitHub) retry(ctx context.Context, op string, call func() (*github.Response, error)) error {
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * g.retryDelay
			g.logger.Debug("retrying GitHub call",
				observability.String("op", op),
				observability.Int("attempt", attempt+1))
			select {
			case <-ctx.Done():
				return cerrors.PlatformError(op+" cancelled", ctx.Err())
			case <-time.After(delay):
			}
		}

		resp, err := call()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryableError(resp, err) {
			break
		}
	}

	return cerrors.PlatformError(op+" failed", lastErr)
}

// isRetryableError reports whether a failed call is worth repeating.
func isRetryableError(resp *github.Response, err error) bool {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return true
	}
	if resp != nil && resp.Response != nil {
		code := resp.StatusCode
		return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	}
	return false
}

// truncateComment cuts content to maxSize bytes, preferring a line boundary
// and never splitting a UTF-8 sequence.
func truncateComment(content string, maxSize int) string {
	if len(content) <= maxSize {
		return content
	}
	if len(truncatedNotice) >= maxSize {
		return truncatedNotice[:maxSize]
	}

	available := maxSize - len(truncatedNotice)
	for available > 0 && !utf8.RuneStart(content[available]) {
		available--
	}

	truncated := content[:available]
	if lastNewline := strings.LastIndex(truncated, "\n"); lastNewline > available/2 {
		truncated = truncated[:lastNewline]
	}

	return truncated + truncatedNotice
}
