package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tcahash/analysis"
	"github.com/katalvlaran/tcahash/cahash"
	"github.com/katalvlaran/tcahash/policy"
)

var (
	reportIterations int
	reportSamples    int
	reportData       string
)

// reportVariants are the four canonical parameter bands compared by the
// report, one per signal phase.
var reportVariants = []struct {
	name string
	ctx  policy.Context
}{
	{"GREEN (rule 30, r=1)", policy.Context{Density: 0.2, Signal: policy.Green}},
	{"YELLOW (rule 110, r=2)", policy.Context{Density: 0.5, Signal: policy.Yellow}},
	{"RED (rule 110, r=3)", policy.Context{Density: 0.9, Signal: policy.Red}},
	{"EMERGENCY (rule 184, r=5)", policy.Context{Density: 0.5, Signal: policy.Emergency, Urgency: 10}},
}

// reportCmd renders the avalanche/bit-balance/throughput comparison table.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compare the statistical behavior of the four parameter bands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		variants := make([]analysis.Variant, 0, len(reportVariants))
		for _, v := range reportVariants {
			ctx := v.ctx
			variants = append(variants, analysis.Variant{
				Name: v.name,
				Hash: func(data []byte) (string, error) { return cahash.Sum(data, ctx) },
			})
		}
		cfg := analysis.ReportConfig{Iterations: reportIterations, Samples: reportSamples}
		return analysis.WriteReport(cmd.OutOrStdout(), variants, []byte(reportData), cfg)
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportIterations, "iterations", 50, "timed hashes per variant")
	reportCmd.Flags().IntVar(&reportSamples, "samples", 100, "statistical samples per variant")
	reportCmd.Flags().StringVar(&reportData, "data", "test_blockchain_data", "base payload for the measurements")
	rootCmd.AddCommand(reportCmd)
}
