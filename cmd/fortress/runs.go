package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fortress-run/internal/storage"
)

var flagLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum runs to list")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No stored runs. Use 'fortress simulate --save'.")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "PRESET", "SEED", "WAVES", "KILLS", "GOLD", "RESULT", "FINAL HASH")
	for _, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		t.Row(
			fmt.Sprintf("%d", r.ID),
			r.Preset,
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.WavesCleared),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.GoldEarned),
			result,
			fmt.Sprintf("%08x", r.FinalHash),
		)
	}
	fmt.Println(t)
	return nil
}
