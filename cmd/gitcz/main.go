// gitcz builds, validates, and classifies conventional commits, and renders
// changelogs whose entries link back to the commit on GitHub.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanhongo/gitcz/internal/config"
	"github.com/evanhongo/gitcz/internal/convention"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	// configPath overrides config discovery when set.
	configPath string

	// repoDir is the working tree commands operate on.
	repoDir string
)

var rootCmd = &cobra.Command{
	Use:   "gitcz",
	Short: "Conventional commit helper with GitHub-linked changelogs",
	Long: `gitcz builds commit messages interactively, validates existing commits
against a commit convention, classifies history into semantic-version bumps,
and generates changelogs whose entries link back to GitHub.

Configuration lives in a ` + config.FileName + ` file found by walking up from the
current directory. The github_repo key (owner/name) is required; the
convention key picks the message grammar (default: "github").`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gitcz version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gitcz %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: discovered "+config.FileName+")")
	rootCmd.PersistentFlags().StringVarP(&repoDir, "directory", "C", ".", "Repository directory to operate on")
	rootCmd.AddCommand(versionCmd)
}

// loadConvention reads the config and constructs the selected convention.
// A missing config file or missing github_repo is fatal for every command
// that calls this: the tool refuses to run half-configured.
func loadConvention() (convention.Convention, *config.Config, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover(repoDir)
		if err != nil {
			return nil, nil, fmt.Errorf("%w (run `gitcz init` to create one)", err)
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	conv, err := convention.New(cfg.Convention, cfg.GithubRepo)
	if err != nil {
		return nil, nil, err
	}
	return conv, cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
