package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pergola/internal/cli"
)

var resultCmd = &cobra.Command{
	Use:   "result [artifact]",
	Short: "Print the final workflow answer",
	Long: `Prints the question, the generated answer, and the retry count from
the artifact's result section, with a warning when the workflow exhausted
its retries.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := baseOptions(cmd, args)
		opts.ForceYAML, _ = cmd.Flags().GetBool("yaml")

		if err := cli.RenderResult(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(resultCmd)

	resultCmd.Flags().Bool("yaml", false, "Treat the artifact as YAML regardless of extension")
}
