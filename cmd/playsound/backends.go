package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/playsound"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List playback backends",
	Long: `List all registered playback backends and whether each one can be
expected to work on this system.`,
	RunE: runBackends,
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}

func runBackends(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	for _, name := range playsound.AvailableBackends() {
		status := "unavailable"
		if dispatcher.Usable(ctx, name) {
			status = "available"
		}
		fmt.Printf("%-12s %s\n", name, status)
	}
	return nil
}
