// Package main provides the format-comment CLI application.
package main

import (
	"fmt"

	"github.com/cicd-ai-toolkit/pr-status-comment/pkg/output"
	"github.com/spf13/cobra"
)

// previewFlags holds the flags for the preview command
type previewFlags struct {
	style string
	width int
}

func newPreviewCmd(global *globalFlags) *cobra.Command {
	opts := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the comment for the terminal",
		Long: `Render the status comment as it would look on the pull request,
styled for the terminal. Useful when iterating on artifacts locally.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}

			rendered, err := output.NewTerminalFormatter(opts.style, opts.width).Format(generateComment(cfg, logger))
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.style, "style", output.StyleAuto, "Glamour style: auto, dark, light, notty, ascii")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 100, "Word wrap width (0 disables wrapping)")

	return cmd
}
