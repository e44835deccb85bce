package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pergola/internal/cli"
)

var docsCmd = &cobra.Command{
	Use:   "docs [artifact]",
	Short: "Print the retrieved documents",
	Long: `Prints every document in the artifact as a numbered block with its
source and a content preview. The artifact may be a dump file, stdin, or a
corpus directory of markdown documents with frontmatter.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := baseOptions(cmd, args)
		opts.MaxDocs, _ = cmd.Flags().GetInt("max")
		opts.ForceYAML, _ = cmd.Flags().GetBool("yaml")

		if err := cli.RenderDocs(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().Int("max", 0, "Maximum number of documents to print (0 prints all)")
	docsCmd.Flags().Bool("yaml", false, "Treat the artifact as YAML regardless of extension")
}
