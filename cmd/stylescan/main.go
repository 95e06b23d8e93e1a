package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stylescan/stylescan/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "stylescan",
	Short: "A style-corpus analysis engine and stylesheet generator",
	Long: `stylescan analyzes a YAML-described design corpus — design tokens, BEM
components, and free-form "street" styles — and renders it into a target
stylesheet dialect while surfacing consolidation opportunities.

Features:
  • Frequent-itemset mining over property co-occurrence
  • Cohesion-scored clustering into suggested shared classes/variables
  • BEM naming and utility-duplication anti-pattern detection
  • CSS, SCSS, Tailwind config, design-token, Markdown, JSON, and DOT output
  • Watch mode and a live-reloading preview server`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewTokensCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
