package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/evanhongo/gitcz/internal/changelog"
	"github.com/evanhongo/gitcz/internal/git"
)

var (
	changelogRange  string
	changelogTitle  string
	changelogOutput string
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Render a changelog with GitHub commit links",
	Long: `Group the commits of a revision range into changelog sections and render
them as markdown. Every entry ends with a link to the commit on GitHub,
labeled with the first five characters of its hash.

By default the range covers everything since the latest tag, titled
"Unreleased". Commits that do not follow the convention are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		conv, _, err := loadConvention()
		if err != nil {
			return err
		}
		gen, err := changelog.NewGenerator(conv)
		if err != nil {
			return err
		}
		g, err := git.NewGit(ctx)
		if err != nil {
			return err
		}

		revRange := changelogRange
		if revRange == "" {
			tag, err := g.LatestTag(ctx, repoDir)
			if err != nil {
				return err
			}
			if tag != "" {
				revRange = tag + "..HEAD"
			}
		}

		commits, err := g.Log(ctx, repoDir, revRange)
		if err != nil {
			return err
		}

		out := gen.Generate(changelogTitle, commits)

		if changelogOutput == "" {
			fmt.Print(out)
			return nil
		}
		if err := os.WriteFile(changelogOutput, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", changelogOutput, err)
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Wrote %s\n", green("✓"), changelogOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)
	changelogCmd.Flags().StringVar(&changelogRange, "range", "", "Revision range (default: latest tag to HEAD)")
	changelogCmd.Flags().StringVar(&changelogTitle, "title", "Unreleased", "Release heading for the rendered section")
	changelogCmd.Flags().StringVarP(&changelogOutput, "output", "o", "", "Write to a file instead of stdout")
}
