package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/evanhongo/gitcz/internal/git"
	"github.com/evanhongo/gitcz/internal/prompt"
)

var (
	commitDryRun   bool
	commitHookFile string
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Build a conventional commit message interactively and commit",
	Long: `Walk through the convention's questions, compose the commit message,
and commit the staged changes with it.

With --dry-run the message is printed instead of committed. With
--hook FILE the message is written to FILE, for use from a
prepare-commit-msg hook:

  gitcz commit --hook "$1"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		conv, _, err := loadConvention()
		if err != nil {
			return err
		}

		g, err := git.NewGit(ctx)
		if err != nil {
			return err
		}

		// Refuse early when there is nothing to commit; asking six
		// questions first would be rude.
		if !commitDryRun && commitHookFile == "" {
			staged, err := g.HasStagedChanges(ctx, repoDir)
			if err != nil {
				return err
			}
			if !staged {
				return fmt.Errorf("no staged changes; stage your changes first with `git add`")
			}
		}

		runner, err := prompt.NewRunner()
		if err != nil {
			return err
		}
		defer runner.Close()

		answers, err := runner.Run(conv.Questions())
		if err != nil {
			return err
		}
		message := conv.Message(answers)

		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("\n%s\n%s\n\n", cyan("Commit message:"), message)

		if commitDryRun {
			return nil
		}
		if commitHookFile != "" {
			if err := os.WriteFile(commitHookFile, []byte(message+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write hook message file: %w", err)
			}
			return nil
		}

		hash, err := g.Commit(ctx, repoDir, message)
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Committed %s\n", green("✓"), hash[:7])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
	commitCmd.Flags().BoolVar(&commitDryRun, "dry-run", false, "Print the message without committing")
	commitCmd.Flags().StringVar(&commitHookFile, "hook", "", "Write the message to the given prepare-commit-msg file")
}
