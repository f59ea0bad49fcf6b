package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fortress-run/internal/checkpoint"
	"github.com/vovakirdan/fortress-run/internal/config"
	"github.com/vovakirdan/fortress-run/internal/preset"
	"github.com/vovakirdan/fortress-run/internal/sim"
	"github.com/vovakirdan/fortress-run/internal/storage"
)

var (
	flagPreset   string
	flagConfig   string
	flagSave     bool
	flagMaxTicks uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation to its terminal state",
	Long: `Run the deterministic simulation until the fortress falls or the
final wave is cleared, then print the result summary and checkpoint digest.

The same seed and loadout always produce the same result and the same
checkpoint hash sequence, on any machine.

Examples:
  fortress simulate
  fortress simulate --preset turtle --seed 42
  fortress simulate --config ./my-run.yaml --save`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagPreset, "preset", "default", "Loadout preset id")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a run config YAML (overrides --preset)")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Persist the run and its checkpoints")
	simulateCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 2_000_000, "Abandon the run after this many ticks")
}

// loadRunConfig resolves the config for this invocation: explicit YAML wins
// over the preset, and the --seed flag overrides either.
func loadRunConfig(cmd *cobra.Command) (config.RunConfig, string, error) {
	var cfg config.RunConfig
	name := flagPreset
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return cfg, "", err
		}
		cfg = loaded
		name = ""
	} else {
		if !preset.Exists(flagPreset) {
			return cfg, "", fmt.Errorf("unknown preset %q, run 'fortress presets'", flagPreset)
		}
		created, err := preset.Create(flagPreset)
		if err != nil {
			return cfg, "", err
		}
		cfg = created
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, name, nil
}

// drive steps a fresh world to its terminal state, recording checkpoints at
// the configured interval. maxTicks is the caller's wall-budget policy; the
// core itself has no timeout.
func drive(cfg config.RunConfig, maxTicks uint64) (*sim.World, *checkpoint.Recorder) {
	w := sim.New(cfg)
	rec := checkpoint.NewRecorder(cfg.CheckpointInterval)
	for !w.Ended && w.Tick < maxTicks {
		w.Step()
		rec.Observe(w)
	}
	return w, rec
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, presetName, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	logger.Info("simulating", "preset", presetName, "seed", cfg.Seed, "final_wave", cfg.FinalWave)
	w, rec := drive(cfg, flagMaxTicks)
	if !w.Ended {
		return fmt.Errorf("run abandoned after %d ticks without a terminal state", w.Tick)
	}

	res := w.Result()
	final := checkpoint.FinalHash(w)
	printSummary(res, final, rec)

	if !flagSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	runID, err := store.SaveRun(presetName, res, final, rec.Checkpoints())
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", runID, "checkpoints", len(rec.Checkpoints()))
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(16)
)

func printSummary(res sim.Result, finalHash uint32, rec *checkpoint.Recorder) {
	verdict := lostStyle.Render("FORTRESS FELL")
	if res.Won {
		verdict = wonStyle.Render("VICTORY")
	}
	fmt.Println(titleStyle.Render("Run complete"), verdict)

	row := func(label, value string) {
		fmt.Println(labelStyle.Render(label) + value)
	}
	row("Seed", fmt.Sprintf("%d", res.Seed))
	row("Ticks survived", fmt.Sprintf("%d", res.TicksSurvived))
	row("Waves cleared", fmt.Sprintf("%d", res.WavesCleared))
	row("Kills", fmt.Sprintf("%d (%d elite)", res.Kills, res.EliteKills))
	row("Gold earned", fmt.Sprintf("%d", res.GoldEarned))
	row("Dust earned", fmt.Sprintf("%d", res.DustEarned))
	row("Checkpoints", fmt.Sprintf("%d (chain head %08x)", len(rec.Checkpoints()), rec.ChainHead()))
	row("Final hash", fmt.Sprintf("%08x", finalHash))
}
