package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the configured convention's schema and an example commit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, cfg, err := loadConvention()
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s %s\n", cyan("Convention:"), conv.Name())
		fmt.Printf("%s %s\n\n", cyan("Repository:"), cfg.GithubRepo)
		fmt.Printf("%s\n%s\n\n", cyan("Schema:"), conv.Schema())
		fmt.Printf("%s\n%s\n\n", cyan("Schema pattern:"), conv.SchemaPattern())
		fmt.Printf("%s\n%s\n", cyan("Example:"), conv.Example())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
