package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tcahash/cahash"
	"github.com/katalvlaran/tcahash/policy"
)

var (
	hashDensity float64
	hashSignal  string
	hashUrgency int
	hashParams  bool
)

// hashCmd computes one digest for the given data and traffic context.
var hashCmd = &cobra.Command{
	Use:   "hash [data]",
	Short: "Hash data under a traffic context",
	Long: `Hash data under a traffic context. Data is taken from the argument, or from
stdin when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := inputBytes(args)
		if err != nil {
			return err
		}
		signal, err := policy.ParseSignalState(hashSignal)
		if err != nil {
			return fmt.Errorf("--signal %q: %w", hashSignal, err)
		}

		ctx := policy.Context{Density: hashDensity, Signal: signal, Urgency: hashUrgency}
		digest, params, err := cahash.SumWithParams(data, ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), digest)
		if hashParams {
			fmt.Fprintf(cmd.OutOrStdout(), "rule=%d radius=%d steps=%d\n",
				params.Rule, params.Radius, params.Steps)
		}
		return nil
	},
}

// inputBytes reads the payload from the argument or stdin.
func inputBytes(args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	return io.ReadAll(os.Stdin)
}

func init() {
	hashCmd.Flags().Float64Var(&hashDensity, "density", 0.5, "traffic density in [0,1] (clamped)")
	hashCmd.Flags().StringVar(&hashSignal, "signal", "GREEN", "signal state: GREEN, YELLOW, RED or EMERGENCY")
	hashCmd.Flags().IntVar(&hashUrgency, "urgency", 0, "urgency level in [0,10] (clamped)")
	hashCmd.Flags().BoolVar(&hashParams, "params", false, "also print the selected evolution parameters")
	rootCmd.AddCommand(hashCmd)
}
