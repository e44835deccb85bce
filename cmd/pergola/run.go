package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pergola/internal/cli"
)

// runCmd renders a complete run artifact in one pass.
var runCmd = &cobra.Command{
	Use:   "run [artifact]",
	Short: "Print a full run: documents, steps, and result",
	Long: `Prints every section a run artifact carries, in reading order:
retrieved documents, the execution trace, then the final answer. Sections
absent from the artifact are skipped.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := baseOptions(cmd, args)
		opts.MaxDocs, _ = cmd.Flags().GetInt("max")
		opts.ForceYAML, _ = cmd.Flags().GetBool("yaml")
		opts.Deltas, _ = cmd.Flags().GetBool("deltas")

		if err := cli.RenderRun(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("max", 0, "Maximum number of documents to print (0 prints all)")
	runCmd.Flags().Bool("yaml", false, "Treat the artifact as YAML regardless of extension")
	runCmd.Flags().Bool("deltas", false, "Annotate each step with the state keys that changed")

	// Make 'run' the default if no command is provided
	rootCmd.Run = runCmd.Run
}
