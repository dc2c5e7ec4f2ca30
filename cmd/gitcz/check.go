package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/evanhongo/gitcz/internal/git"
)

var (
	checkMessage string
	checkMsgFile string
)

var checkCmd = &cobra.Command{
	Use:   "check [REVISION_RANGE]",
	Short: "Validate commit messages against the convention",
	Long: `Check that commit messages follow the configured convention's schema.

Input comes from one of three places:
  --message M        check a single message string
  --commit-msg-file  check the message in a file (for a commit-msg hook)
  REVISION_RANGE     check every commit in a git range (e.g. v1.0.0..HEAD)

With no input, all commits reachable from HEAD are checked. Exits non-zero
when any message fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, _, err := loadConvention()
		if err != nil {
			return err
		}
		schema, err := regexp.Compile(`^` + conv.SchemaPattern())
		if err != nil {
			return fmt.Errorf("invalid schema pattern for %s: %w", conv.Name(), err)
		}

		type subject struct {
			label string
			text  string
		}
		var subjects []subject

		switch {
		case checkMessage != "":
			subjects = append(subjects, subject{label: "message", text: firstLine(checkMessage)})
		case checkMsgFile != "":
			raw, err := os.ReadFile(checkMsgFile)
			if err != nil {
				return fmt.Errorf("failed to read commit message file: %w", err)
			}
			subjects = append(subjects, subject{label: checkMsgFile, text: firstLine(string(raw))})
		default:
			ctx := context.Background()
			g, err := git.NewGit(ctx)
			if err != nil {
				return err
			}
			revRange := ""
			if len(args) > 0 {
				revRange = args[0]
			}
			commits, err := g.Log(ctx, repoDir, revRange)
			if err != nil {
				return err
			}
			for _, c := range commits {
				subjects = append(subjects, subject{label: c.Rev[:7], text: c.Subject})
			}
		}

		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		var failures int
		for _, s := range subjects {
			if schema.MatchString(s.text) {
				fmt.Printf("%s %s: %s\n", green("✓"), s.label, s.text)
				continue
			}
			failures++
			fmt.Printf("%s %s: %s\n", red("✗"), s.label, s.text)
		}

		if failures > 0 {
			return fmt.Errorf("%d commit message(s) do not follow the %s convention", failures, conv.Name())
		}
		return nil
	},
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkMessage, "message", "m", "", "Commit message to check")
	checkCmd.Flags().StringVar(&checkMsgFile, "commit-msg-file", "", "File containing the commit message (commit-msg hook)")
}
