// Command tcahash exposes the traffic-adaptive hash pipeline on the command
// line: one-shot hashing, statistical comparison reports and proof-of-work
// mining simulation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; subcommands carry the actual work.
var rootCmd = &cobra.Command{
	Use:   "tcahash",
	Short: "Traffic-adaptive cellular-automaton hashing",
	Long: `tcahash hashes data through a cellular automaton whose rule, neighborhood
radius and step count adapt to traffic context (density, signal state,
urgency). Digests are 256 bits rendered as 64 hex characters.

No cryptographic security is claimed; see the report subcommand for the
statistical properties (avalanche, bit balance) of each parameter band.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tcahash:", err)
		os.Exit(1)
	}
}
