package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pergola/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "pergola",
	Short: "Pergola is a console viewer for agentic workflow artifacts",
	Long: `Pergola renders the artifacts agentic workflows leave behind
(retrieved documents, state transitions, final answers) as readable
console output. Artifacts load from JSON, YAML or NDJSON files, stdin,
a document corpus directory, or a live Redis feed.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Verbose diagnostics on stderr")
	rootCmd.PersistentFlags().BoolP("markdown", "m", false, "Render content through the markdown renderer")
	rootCmd.PersistentFlags().Bool("sanitize", false, "Strip terminal control sequences from content")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable banner and styling even on a terminal")
}

// baseOptions collects the persistent flags plus the positional artifact
// path. The path defaults to stdin.
func baseOptions(cmd *cobra.Command, args []string) cli.RunOptions {
	opts := cli.RunOptions{Path: "-"}
	if len(args) > 0 {
		opts.Path = args[0]
	}
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	opts.Markdown, _ = cmd.Flags().GetBool("markdown")
	opts.Sanitize, _ = cmd.Flags().GetBool("sanitize")
	opts.Plain, _ = cmd.Flags().GetBool("plain")
	return opts
}
