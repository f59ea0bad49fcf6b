package checkpoint

import (
	"testing"

	"github.com/vovakirdan/fortress-run/internal/config"
	"github.com/vovakirdan/fortress-run/internal/fixed"
	"github.com/vovakirdan/fortress-run/internal/sim"
)

func testWorld(seed uint32) *sim.World {
	cfg := config.Default()
	cfg.Seed = seed
	cfg.FinalWave = 3
	return sim.New(cfg)
}

func addEnemy(w *sim.World, id uint32, hp, x int) {
	w.Enemies = append(w.Enemies, sim.Enemy{
		ID:   id,
		Type: sim.EnemyGrunt,
		X:    fixed.FromInt(x),
		Y:    fixed.FromInt(2),
		HP:   hp,
	})
}

func TestHashPermutationInvariant(t *testing.T) {
	// Two states with the same enemies listed in different insertion order
	// must hash identically: the wire format sorts by ID.
	a := testWorld(1)
	addEnemy(a, 1, 50, 10)
	addEnemy(a, 2, 80, 12)

	b := testWorld(1)
	addEnemy(b, 2, 80, 12)
	addEnemy(b, 1, 50, 10)

	if HashState(a) != HashState(b) {
		t.Error("hash depends on enemy insertion order")
	}
}

func TestHashSensitiveToSingleField(t *testing.T) {
	base := func() *sim.World {
		w := testWorld(1)
		addEnemy(w, 1, 50, 10)
		addEnemy(w, 2, 80, 12)
		return w
	}

	ref := HashState(base())

	hpChanged := base()
	hpChanged.Enemies[0].HP = 51
	if HashState(hpChanged) == ref {
		t.Error("hash ignored a 1-point HP change")
	}

	posChanged := base()
	posChanged.Enemies[1].X += 1 // one fixed-point epsilon
	if HashState(posChanged) == ref {
		t.Error("hash ignored a positional epsilon")
	}

	eliteChanged := base()
	eliteChanged.Enemies[0].Elite = true
	if HashState(eliteChanged) == ref {
		t.Error("hash ignored the elite flag")
	}

	tickChanged := base()
	tickChanged.Tick = 1
	if HashState(tickChanged) == ref {
		t.Error("hash ignored the tick counter")
	}

	goldChanged := base()
	goldChanged.Gold = 1
	if HashState(goldChanged) == ref {
		t.Error("hash ignored the gold counter")
	}
}

func TestChainHashOrderSensitive(t *testing.T) {
	// chain = fnv(prev, tick, hash): swapping tick and hash must change it.
	a := chainHash(0, 7, 9)
	b := chainHash(0, 9, 7)
	if a == b {
		t.Error("chain hash is not order-sensitive")
	}
}

func TestCheckpointChainAndVerify(t *testing.T) {
	w := testWorld(42)
	w.Step()
	cp1 := New(w, 0)
	if !Verify(cp1, w, 0) {
		t.Fatal("checkpoint does not verify against its own state")
	}

	w.Step()
	cp2 := New(w, cp1.ChainHash32)
	if !Verify(cp2, w, cp1.ChainHash32) {
		t.Fatal("chained checkpoint does not verify")
	}

	// Any single-bit mutation must fail verification.
	for _, mutate := range []func(cp Checkpoint) Checkpoint{
		func(cp Checkpoint) Checkpoint { cp.Tick ^= 1; return cp },
		func(cp Checkpoint) Checkpoint { cp.Hash32 ^= 1; return cp },
		func(cp Checkpoint) Checkpoint { cp.ChainHash32 ^= 1; return cp },
		func(cp Checkpoint) Checkpoint { cp.Hash32 ^= 1 << 31; return cp },
	} {
		if Verify(mutate(cp2), w, cp1.ChainHash32) {
			t.Error("mutated checkpoint verified")
		}
	}

	// Wrong previous chain hash also fails.
	if Verify(cp2, w, cp1.ChainHash32^1) {
		t.Error("checkpoint verified against the wrong chain head")
	}
}

func TestReplayProducesIdenticalChain(t *testing.T) {
	// The core determinism property: identical seed and config produce an
	// identical checkpoint sequence and final hash.
	run := func() ([]Checkpoint, uint32) {
		w := testWorld(777)
		rec := NewRecorder(60)
		for i := 0; i < 100000 && !w.Ended; i++ {
			w.Step()
			rec.Observe(w)
		}
		if !w.Ended {
			t.Fatal("run did not end")
		}
		return rec.Checkpoints(), FinalHash(w)
	}

	cps1, final1 := run()
	cps2, final2 := run()

	if len(cps1) == 0 {
		t.Fatal("no checkpoints recorded")
	}
	if len(cps1) != len(cps2) {
		t.Fatalf("checkpoint counts differ: %d vs %d", len(cps1), len(cps2))
	}
	for i := range cps1 {
		if cps1[i] != cps2[i] {
			t.Fatalf("checkpoint %d differs: %+v vs %+v", i, cps1[i], cps2[i])
		}
	}
	if final1 != final2 {
		t.Errorf("final hashes differ: %08x vs %08x", final1, final2)
	}
}

func TestRecorderInterval(t *testing.T) {
	w := testWorld(5)
	rec := NewRecorder(60)
	for i := 0; i < 600 && !w.Ended; i++ {
		w.Step()
		rec.Observe(w)
	}
	cps := rec.Checkpoints()
	if len(cps) == 0 {
		t.Fatal("no checkpoints after 600 ticks at interval 60")
	}
	for i, cp := range cps {
		if cp.Tick%60 != 0 && i != len(cps)-1 {
			t.Errorf("checkpoint %d at off-interval tick %d", i, cp.Tick)
		}
		if i > 0 && cp.Tick <= cps[i-1].Tick {
			t.Errorf("checkpoint ticks not increasing at %d", i)
		}
	}
	// The chain links: each entry must verify given its predecessor's head
	// hash, which is exactly how the external verifier walks the list.
	if rec.ChainHead() != cps[len(cps)-1].ChainHash32 {
		t.Error("chain head is not the last checkpoint's chain hash")
	}
}

func TestFinalHashBindsOutcome(t *testing.T) {
	w1 := testWorld(9)
	w2 := testWorld(9)
	for i := 0; i < 300; i++ {
		w1.Step()
		w2.Step()
	}
	if FinalHash(w1) != FinalHash(w2) {
		t.Fatal("identical runs disagree on final hash")
	}
	w2.Kills++
	if FinalHash(w1) == FinalHash(w2) {
		t.Error("final hash ignored the kill counter")
	}
}
