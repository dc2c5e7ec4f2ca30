package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/evanhongo/gitcz/internal/bump"
	"github.com/evanhongo/gitcz/internal/convention"
	"github.com/evanhongo/gitcz/internal/git"
)

var bumpTag bool

var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Compute the next version from commits since the last tag",
	Long: `Classify every commit since the latest tag with the convention's bump
rules and print the implied next semantic version. The largest increment
wins: MAJOR > MINOR > PATCH.

Commits that match no bump rule are ignored; when nothing matches there is
nothing to bump. With --tag the next version is also created as a git tag.`,
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

		current, err := g.LatestTag(ctx, repoDir)
		if err != nil {
			return err
		}
		revRange := ""
		if current != "" {
			revRange = current + "..HEAD"
		}
		commits, err := g.Log(ctx, repoDir, revRange)
		if err != nil {
			return err
		}

		incs := make([]convention.Increment, 0, len(commits))
		for _, c := range commits {
			incs = append(incs, convention.ClassifyBump(conv, c.Message()))
		}
		highest := bump.Highest(incs)

		gray := color.New(color.FgHiBlack).SprintFunc()
		if highest == convention.IncrementNone {
			fmt.Printf("%s\n", gray("Nothing to bump: no commit since "+labelOr(current, "the beginning")+" implies a version change."))
			return nil
		}

		next, err := bump.Next(current, highest)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("Current version: %s\n", cyan(labelOr(current, "(none)")))
		fmt.Printf("Increment:       %s\n", cyan(highest.String()))
		fmt.Printf("Next version:    %s\n", cyan(next))

		if bumpTag {
			if err := g.Tag(ctx, repoDir, next); err != nil {
				return err
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s Tagged %s\n", green("✓"), next)
		}
		return nil
	},
}

func labelOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func init() {
	rootCmd.AddCommand(bumpCmd)
	bumpCmd.Flags().BoolVar(&bumpTag, "tag", false, "Create a git tag for the next version")
}
