package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pergola/internal/cli"
	"github.com/aretw0/pergola/pkg/adapters/redis"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Tail a live workflow step feed",
	Long: `Connects to a Redis list that a running workflow engine pushes state
transitions onto and renders each one as it lands. Stop with Ctrl+C.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := baseOptions(cmd, args)
		opts.Addr, _ = cmd.Flags().GetString("addr")
		opts.Key, _ = cmd.Flags().GetString("key")
		opts.Deltas, _ = cmd.Flags().GetBool("deltas")

		if err := cli.RunWatch(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().String("addr", "localhost:6379", "Redis address of the step feed")
	watchCmd.Flags().String("key", redis.DefaultKey, "Redis list key to tail")
	watchCmd.Flags().Bool("deltas", false, "Annotate each step with the state keys that changed")
}
