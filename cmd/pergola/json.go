package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pergola/internal/cli"
)

var jsonCmd = &cobra.Command{
	Use:   "json [artifact]",
	Short: "Pretty-print an artifact as JSON",
	Long: `Prints the artifact as indented JSON under a title banner. YAML input
is converted; a JSONPath selector can narrow the output to one subtree.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := baseOptions(cmd, args)
		opts.Title, _ = cmd.Flags().GetString("title")
		opts.Select, _ = cmd.Flags().GetString("select")
		opts.ForceYAML, _ = cmd.Flags().GetBool("yaml")

		if err := cli.RenderJSON(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(jsonCmd)

	jsonCmd.Flags().String("title", "", "Banner title (defaults to \"JSON Data\")")
	jsonCmd.Flags().String("select", "", "JSONPath selector, e.g. $.results.generate")
	jsonCmd.Flags().Bool("yaml", false, "Treat the artifact as YAML regardless of extension")
}
