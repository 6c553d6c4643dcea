package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlysnebek/scrollgen/pkg/scroll"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the scroll kinds and their chances",
	Long: `Kinds lists every scroll kind the generator can roll, with its
chance out of 100 from the original Rogue tables.`,
	Args: cobra.NoArgs,
	RunE: runKinds,
}

func runKinds(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	total := 0
	for _, e := range scroll.DefaultKinds().Entries() {
		fmt.Fprintf(out, "%-30s %3d%%\n", e.Text, e.Weight)
		total += e.Weight
	}
	fmt.Fprintf(out, "%-30s %3d%%\n", "total", total)
	return nil
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
