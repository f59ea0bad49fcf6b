package storage

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/fortress-run/internal/checkpoint"
	"github.com/vovakirdan/fortress-run/internal/sim"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult() sim.Result {
	return sim.Result{
		Seed:          42,
		TicksSurvived: 18000,
		WavesCleared:  12,
		Kills:         340,
		EliteKills:    21,
		GoldEarned:    5100,
		DustEarned:    0,
		Won:           false,
	}
}

func TestSaveAndGetRun(t *testing.T) {
	s := testStore(t)

	cps := []checkpoint.Checkpoint{
		{Tick: 60, Hash32: 0xdeadbeef, ChainHash32: 0x12345678},
		{Tick: 120, Hash32: 0xcafebabe, ChainHash32: 0x87654321},
	}

	id, err := s.SaveRun("default", sampleResult(), 0xfeedface, cps)
	if err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}
	if id <= 0 {
		t.Fatalf("SaveRun() id = %d, want > 0", id)
	}

	got, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun() error: %v", err)
	}
	want := sampleResult()
	if got.Preset != "default" || got.Seed != want.Seed ||
		got.TicksSurvived != want.TicksSurvived ||
		got.WavesCleared != want.WavesCleared ||
		got.Kills != want.Kills || got.EliteKills != want.EliteKills ||
		got.GoldEarned != want.GoldEarned || got.Won != want.Won {
		t.Errorf("GetRun() = %+v, want fields of %+v", got, want)
	}
	if got.FinalHash != 0xfeedface {
		t.Errorf("FinalHash = %08x, want feedface", got.FinalHash)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := testStore(t)
	if _, err := s.GetRun(999); err == nil {
		t.Error("GetRun(999) expected error for missing run")
	}
}

func TestCheckpointsRoundTrip(t *testing.T) {
	s := testStore(t)

	cps := []checkpoint.Checkpoint{
		{Tick: 60, Hash32: 1, ChainHash32: 10},
		{Tick: 120, Hash32: 2, ChainHash32: 20},
		{Tick: 145, Hash32: 3, ChainHash32: 30},
	}
	id, err := s.SaveRun("gauntlet", sampleResult(), 7, cps)
	if err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}

	got, err := s.Checkpoints(id)
	if err != nil {
		t.Fatalf("Checkpoints() error: %v", err)
	}
	if len(got) != len(cps) {
		t.Fatalf("Checkpoints() len = %d, want %d", len(got), len(cps))
	}
	for i := range cps {
		if got[i] != cps[i] {
			t.Errorf("checkpoint %d = %+v, want %+v", i, got[i], cps[i])
		}
	}
}

func TestCheckpointsEmptyRun(t *testing.T) {
	s := testStore(t)
	id, err := s.SaveRun("default", sampleResult(), 0, nil)
	if err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}
	got, err := s.Checkpoints(id)
	if err != nil {
		t.Fatalf("Checkpoints() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Checkpoints() len = %d, want 0", len(got))
	}
}

func TestListRuns(t *testing.T) {
	s := testStore(t)

	for i := 0; i < 3; i++ {
		res := sampleResult()
		res.Seed = uint32(i + 1)
		if _, err := s.SaveRun("default", res, 0, nil); err != nil {
			t.Fatalf("SaveRun() error: %v", err)
		}
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns() len = %d, want 3", len(runs))
	}
	// Newest first; inserts within the same second tie-break on id.
	for i := 1; i < len(runs); i++ {
		if runs[i].ID > runs[i-1].ID {
			t.Errorf("runs not newest-first: id %d after %d", runs[i].ID, runs[i-1].ID)
		}
	}

	limited, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns(2) error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListRuns(2) len = %d, want 2", len(limited))
	}
}
