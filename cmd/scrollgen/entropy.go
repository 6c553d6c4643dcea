package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlysnebek/scrollgen/pkg/scroll"
)

var entropyCmd = &cobra.Command{
	Use:   "entropy",
	Short: "Report the size of the configured title space",
	Long: `Entropy computes how many distinct titles the configured bounds can
produce and the information content of one random draw, in bits. The
same bounds flags as the root command apply, so the report always
matches what generation would use.`,
	Args: cobra.NoArgs,
	RunE: runEntropy,
}

func runEntropy(cmd *cobra.Command, args []string) error {
	gen, err := scroll.New(generatorOptions(cmd, appConfig.Generation)...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%.6f bits (%s possible titles)\n", gen.Entropy(), gen.Possibilities())
	return nil
}

func init() {
	addGenerationFlags(entropyCmd)
	rootCmd.AddCommand(entropyCmd)
}
