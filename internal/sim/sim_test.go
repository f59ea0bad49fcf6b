package sim

import (
	"testing"

	"github.com/vovakirdan/fortress-run/internal/config"
)

func shortConfig(seed uint32) config.RunConfig {
	cfg := config.Default()
	cfg.Seed = seed
	cfg.FinalWave = 3
	return cfg
}

func TestStepDeterminism(t *testing.T) {
	// Two worlds with the same seed and config must agree on every scalar
	// snapshot at every tick, including the RNG state.
	a := New(shortConfig(12345))
	b := New(shortConfig(12345))

	for i := 0; i < 5000 && !a.Ended; i++ {
		a.Step()
		b.Step()
		sa, sb := a.Snapshot(), b.Snapshot()
		if sa != sb {
			t.Fatalf("snapshots diverged at tick %d:\n  a=%+v\n  b=%+v", a.Tick, sa, sb)
		}
	}
	if !a.Ended {
		t.Fatal("short run did not reach a terminal state in 5000 ticks")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(shortConfig(1))
	b := New(shortConfig(2))
	diverged := false
	for i := 0; i < 2000 && !a.Ended && !b.Ended; i++ {
		a.Step()
		b.Step()
		if a.Snapshot() != b.Snapshot() {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Error("different seeds produced identical runs")
	}
}

func TestStepNoOpAfterEnd(t *testing.T) {
	w := New(shortConfig(7))
	for i := 0; i < 100000 && !w.Ended; i++ {
		w.Step()
	}
	if !w.Ended {
		t.Fatal("run did not end")
	}
	before := w.Snapshot()
	w.Step()
	w.Step()
	if got := w.Snapshot(); got != before {
		t.Errorf("Step mutated an ended world:\n  before=%+v\n  after=%+v", before, got)
	}
}

func TestFortressFallEndsRun(t *testing.T) {
	cfg := shortConfig(3)
	cfg.Fortress.HP = 1
	cfg.Turrets = nil
	cfg.Heroes = nil
	cfg.Militia.SpawnInterval = 0
	w := New(cfg)
	for i := 0; i < 50000 && !w.Ended; i++ {
		w.Step()
	}
	if !w.Ended || w.Won {
		t.Fatalf("undefended 1 HP fortress should fall: ended=%v won=%v", w.Ended, w.Won)
	}
	if w.FortressHP != 0 {
		t.Errorf("fortress HP = %d, want clamped 0", w.FortressHP)
	}
}

func TestEnemyIDsStrictlyIncreasing(t *testing.T) {
	w := New(shortConfig(99))
	seen := map[uint32]bool{}
	var last uint32
	for i := 0; i < 3000 && !w.Ended; i++ {
		w.Step()
		for j := range w.Enemies {
			id := w.Enemies[j].ID
			if j > 0 && w.Enemies[j-1].ID >= id {
				t.Fatalf("enemy slice not ID-sorted at tick %d", w.Tick)
			}
			if !seen[id] {
				if id <= last && last != 0 && id != last {
					// New ids must only move forward.
					if id < last {
						t.Fatalf("id %d assigned after %d", id, last)
					}
				}
				seen[id] = true
				if id > last {
					last = id
				}
			}
		}
	}
	if len(seen) == 0 {
		t.Fatal("no enemies spawned")
	}
}

func TestWinAtFinalWave(t *testing.T) {
	cfg := shortConfig(11)
	cfg.FinalWave = 1
	cfg.Fortress.HP = 100000
	w := New(cfg)
	for i := 0; i < 100000 && !w.Ended; i++ {
		w.Step()
	}
	if !w.Ended {
		t.Fatal("single-wave run did not end")
	}
	if !w.Won {
		t.Error("surviving the final wave should win")
	}
	if res := w.Result(); res.WavesCleared != 1 {
		t.Errorf("WavesCleared = %d, want 1", res.WavesCleared)
	}
}

func TestResultCounters(t *testing.T) {
	w := New(shortConfig(21))
	for i := 0; i < 100000 && !w.Ended; i++ {
		w.Step()
	}
	res := w.Result()
	if res.TicksSurvived != w.Tick {
		t.Errorf("TicksSurvived = %d, want %d", res.TicksSurvived, w.Tick)
	}
	if res.Kills < res.EliteKills {
		t.Errorf("kills %d < elite kills %d", res.Kills, res.EliteKills)
	}
	if res.DustEarned != 0 {
		t.Errorf("dust earned = %d, combat grants no dust", res.DustEarned)
	}
	if res.Kills > 0 && res.GoldEarned <= 0 {
		t.Errorf("kills without gold: %+v", res)
	}
}

func TestRelicWiring(t *testing.T) {
	cfg := shortConfig(5)
	cfg.Relics = []string{"midas_idol", "war_horn", "no_such_relic"}
	w := New(cfg)
	if len(w.Relics) != 2 {
		t.Fatalf("relics = %+v, unknown names must be skipped", w.Relics)
	}
	// Relic list is ID-sorted for canonical hashing.
	if w.Relics[0].ID != "midas_idol" || w.Relics[1].ID != "war_horn" {
		t.Errorf("relics not sorted: %+v", w.Relics)
	}
	if w.turretDamageBP != 11000 {
		t.Errorf("war_horn turret damage = %d, want 11000", w.turretDamageBP)
	}
	if w.goldMultBP != 11500 {
		t.Errorf("midas_idol gold mult = %d, want 11500", w.goldMultBP)
	}
}

func TestTurretBySlotMissing(t *testing.T) {
	w := New(shortConfig(5))
	if _, ok := w.turretBySlot(999); ok {
		t.Error("missing slot reported as present")
	}
	if tur, ok := w.turretBySlot(0); !ok || tur.Slot != 0 {
		t.Error("slot 0 not found")
	}
}
