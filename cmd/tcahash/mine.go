package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tcahash/analysis"
	"github.com/katalvlaran/tcahash/ledgerhash"
)

var (
	mineDifficulty int
	mineMaxNonce   uint64
	mineWorkers    int
	mineCongestion float64
	minePrevHash   string
	mineIndex      uint64
)

// mineCmd simulates congestion-adaptive proof-of-work: transactions from the
// argument feed a block hash whose difficulty follows network congestion.
var mineCmd = &cobra.Command{
	Use:   "mine [transaction]...",
	Short: "Mine a block over the congestion-adaptive hash",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blockHash := func(data []byte) (string, error) {
			// The miner varies its candidate by appending the nonce to the
			// last transaction.
			txs := append(append([]string(nil), args[:len(args)-1]...), string(data))
			return ledgerhash.BlockHash(mineIndex, minePrevHash, 1699800000, txs, 0, mineCongestion)
		}

		res, err := analysis.MineParallel(cmd.Context(), blockHash,
			[]byte(args[len(args)-1]), mineDifficulty, mineMaxNonce, mineWorkers)
		if err != nil {
			return err
		}
		if !res.Found {
			fmt.Fprintf(cmd.OutOrStdout(), "no digest with %d leading zeros in %d attempts (%v)\n",
				mineDifficulty, res.Attempts, res.Elapsed)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "nonce=%d attempts=%d elapsed=%v\n%s\n",
			res.Nonce, res.Attempts, res.Elapsed, res.Digest)
		return nil
	},
}

func init() {
	mineCmd.Flags().IntVar(&mineDifficulty, "difficulty", 2, "required leading zero hex digits")
	mineCmd.Flags().Uint64Var(&mineMaxNonce, "max-nonce", 100000, "nonce sweep bound")
	mineCmd.Flags().IntVar(&mineWorkers, "workers", runtime.NumCPU(), "parallel mining workers")
	mineCmd.Flags().Float64Var(&mineCongestion, "congestion", 0.5, "network congestion in [0,1] (clamped)")
	mineCmd.Flags().StringVar(&minePrevHash, "prev-hash", "0", "previous block hash")
	mineCmd.Flags().Uint64Var(&mineIndex, "index", 0, "block index")
	rootCmd.AddCommand(mineCmd)
}
