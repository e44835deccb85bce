package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pergola/internal/cli"
)

var stepsCmd = &cobra.Command{
	Use:   "steps [artifact]",
	Short: "Print the workflow execution trace",
	Long: `Prints each state transition in execution order as a numbered step.
Accepts a steps artifact or a full run artifact; NDJSON input treats each
line as one transition.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := baseOptions(cmd, args)
		opts.ForceYAML, _ = cmd.Flags().GetBool("yaml")
		opts.Deltas, _ = cmd.Flags().GetBool("deltas")
		opts.Mermaid, _ = cmd.Flags().GetBool("mermaid")

		if err := cli.RenderSteps(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)

	stepsCmd.Flags().Bool("yaml", false, "Treat the artifact as YAML regardless of extension")
	stepsCmd.Flags().Bool("deltas", false, "Annotate each step with the state keys that changed")
	stepsCmd.Flags().Bool("mermaid", false, "Emit the trace as a Mermaid flowchart")
}
