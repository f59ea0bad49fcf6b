// fortress is the deterministic tower-defense run simulator.
//
// Usage:
//
//	fortress simulate            - Run a simulation to its terminal state
//	fortress verify <run-id>     - Re-simulate a stored run and check its hashes
//	fortress runs                - List stored runs
//	fortress presets             - List registered loadout presets
//
// Global flags:
//
//	--seed <value>  - Override the RNG seed (same seed = same run, always)
//	--db <path>     - Run database path (default: ~/.fortress/runs.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagSeed   uint32
	flagDBPath string

	logger = log.New(os.Stderr)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fortress",
	Short: "Deterministic fortress-defense simulator",
	Long: `fortress runs the deterministic tower-defense simulation core:
given a seed and a loadout, it advances the battle tick by tick using only
integer and fixed-point arithmetic, emits a chained checkpoint fingerprint
sequence, and produces a verifiable final result hash.

Examples:
  fortress simulate --preset gauntlet --seed 7 --save
  fortress verify 3
  fortress runs
  fortress presets`,
}

func init() {
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed override (0 = keep preset/config seed)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fortress/runs.db", "Path to run database")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(presetsCmd)
}
