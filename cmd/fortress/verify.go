package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fortress-run/internal/checkpoint"
	"github.com/vovakirdan/fortress-run/internal/preset"
	"github.com/vovakirdan/fortress-run/internal/storage"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <run-id>",
	Short: "Re-simulate a stored run and check its hash chain",
	Long: `Replay a stored run from its seed and preset and compare the
recorded checkpoint sequence and final hash against the fresh simulation.
Any mismatch means the stored run does not correspond to a real playthrough
of that seed and loadout.

Examples:
  fortress verify 3`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	if rec.Preset == "" {
		return fmt.Errorf("run %d was simulated from an ad-hoc config file; only preset runs can be re-simulated", runID)
	}
	stored, err := store.Checkpoints(runID)
	if err != nil {
		return err
	}

	cfg, err := preset.Create(rec.Preset)
	if err != nil {
		return err
	}
	cfg.Seed = rec.Seed

	logger.Info("re-simulating", "run", runID, "preset", rec.Preset, "seed", rec.Seed)
	// Generous budget: the replay must end exactly at the recorded tick.
	w, fresh := drive(cfg, rec.TicksSurvived+1)

	if w.Tick != rec.TicksSurvived || !w.Ended {
		logger.Error("replay diverged", "expected_ticks", rec.TicksSurvived, "got", w.Tick)
		return fmt.Errorf("verification failed for run %d", runID)
	}

	replayed := fresh.Checkpoints()
	if len(replayed) != len(stored) {
		logger.Error("checkpoint count mismatch", "stored", len(stored), "replayed", len(replayed))
		return fmt.Errorf("verification failed for run %d", runID)
	}
	for i := range stored {
		if stored[i] != replayed[i] {
			logger.Error("checkpoint mismatch", "index", i, "tick", stored[i].Tick,
				"stored_hash", fmt.Sprintf("%08x", stored[i].Hash32),
				"replayed_hash", fmt.Sprintf("%08x", replayed[i].Hash32))
			return fmt.Errorf("verification failed for run %d", runID)
		}
	}

	if final := checkpoint.FinalHash(w); final != rec.FinalHash {
		logger.Error("final hash mismatch",
			"stored", fmt.Sprintf("%08x", rec.FinalHash),
			"replayed", fmt.Sprintf("%08x", final))
		return fmt.Errorf("verification failed for run %d", runID)
	}

	fmt.Printf("run %d verified: %d checkpoints and final hash match\n", runID, len(stored))
	return nil
}
