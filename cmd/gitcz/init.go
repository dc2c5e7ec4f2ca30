package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/evanhongo/gitcz/internal/config"
	"github.com/evanhongo/gitcz/internal/convention"
)

var (
	initRepo       string
	initConvention string
	initForce      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a " + config.FileName + " settings file",
	Long: `Create a ` + config.FileName + ` in the current directory.

The github_repo key (owner/name) is required; every changelog entry links to
a commit under https://github.com/<github_repo>/commit/.

Example:
  gitcz init --repo myorg/myproject
  gitcz init --repo myorg/myproject --convention github-legacy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initRepo == "" {
			return fmt.Errorf("--repo is required (owner/name)")
		}

		path := filepath.Join(repoDir, config.FileName)
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg := &config.Config{GithubRepo: initRepo, Convention: initConvention}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if _, err := convention.New(cfg.Convention, cfg.GithubRepo); err != nil {
			return err
		}
		if err := config.Write(path, cfg); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		fmt.Printf("\n%s Initialized gitcz\n\n", green("✓"))
		fmt.Printf("  Config: %s\n", cyan(path))
		fmt.Printf("  Repository: %s\n", cyan(cfg.GithubRepo))
		fmt.Printf("  Convention: %s\n", cyan(cfg.Convention))
		fmt.Println()
		fmt.Printf("%s Next steps:\n", gray("→"))
		fmt.Printf("  %s\n", gray("git add ...       # stage your changes"))
		fmt.Printf("  %s\n", gray("gitcz commit      # build the commit message interactively"))
		fmt.Printf("  %s\n", gray("gitcz changelog   # render the changelog since the last tag"))
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initRepo, "repo", "", "GitHub repository as owner/name (required)")
	initCmd.Flags().StringVar(&initConvention, "convention", convention.DefaultName, "Commit convention: "+fmt.Sprint(convention.Names()))
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
