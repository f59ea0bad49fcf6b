package checkpoint

import "github.com/vovakirdan/fortress-run/internal/sim"

// Checkpoint is a point-in-time state fingerprint plus its link into the
// run's hash chain. Immutable once created.
type Checkpoint struct {
	Tick        uint64
	Hash32      uint32
	ChainHash32 uint32
}

// New fingerprints the world at its current tick and chains it to the
// previous checkpoint. Pass 0 as prevChain for the first checkpoint of a
// run.
func New(w *sim.World, prevChain uint32) Checkpoint {
	h := HashState(w)
	return Checkpoint{
		Tick:        w.Tick,
		Hash32:      h,
		ChainHash32: chainHash(prevChain, w.Tick, h),
	}
}

// Verify recomputes a checkpoint from the world and the previous chain hash
// and compares every field. Any single-bit difference in the recorded
// checkpoint fails.
func Verify(cp Checkpoint, w *sim.World, prevChain uint32) bool {
	if cp.Tick != w.Tick {
		return false
	}
	h := HashState(w)
	if cp.Hash32 != h {
		return false
	}
	return cp.ChainHash32 == chainHash(prevChain, cp.Tick, h)
}

// Recorder collects the ordered checkpoint list for a run at a fixed tick
// interval. The caller drives it after each Step; the recorder decides
// which ticks are checkpoint ticks.
type Recorder struct {
	interval uint64
	chain    uint32
	list     []Checkpoint
}

// NewRecorder creates a recorder emitting a checkpoint every interval
// ticks. Intervals below 1 are clamped to 1.
func NewRecorder(interval int) *Recorder {
	if interval < 1 {
		interval = 1
	}
	return &Recorder{interval: uint64(interval)}
}

// Observe records a checkpoint if the world sits on an interval boundary or
// has just ended. Call once per tick, after Step.
func (r *Recorder) Observe(w *sim.World) {
	if w.Tick%r.interval != 0 && !w.Ended {
		return
	}
	cp := New(w, r.chain)
	r.chain = cp.ChainHash32
	r.list = append(r.list, cp)
}

// Checkpoints returns the ordered list recorded so far.
func (r *Recorder) Checkpoints() []Checkpoint {
	return r.list
}

// ChainHead returns the most recent chain hash (0 before any checkpoint).
func (r *Recorder) ChainHead() uint32 {
	return r.chain
}
