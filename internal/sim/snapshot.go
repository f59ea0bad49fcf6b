package sim

// Snapshot is a scalar summary of the current world, taken between ticks.
// Rendering collaborators that need entity positions read the World itself
// between Step calls and must not mutate it; this struct is for logging,
// progress display, and tests.
type Snapshot struct {
	Tick        uint64
	Wave        int
	Pillar      string
	FortressHP  int
	Gold        int
	Dust        int
	Kills       int
	EliteKills  int
	Enemies     int
	Militia     int
	Projectiles int
	QueuedSpawn int
	RngState    uint32
	Ended       bool
	Won         bool
}

// Snapshot captures the current scalar state.
func (w *World) Snapshot() Snapshot {
	liveMilitia := 0
	for i := range w.Militias {
		if w.Militias[i].HP > 0 {
			liveMilitia++
		}
	}
	pillar := ""
	if w.Wave > 0 {
		pillar = PillarFor(w.Wave).Name
	}
	return Snapshot{
		Tick:        w.Tick,
		Wave:        w.Wave,
		Pillar:      pillar,
		FortressHP:  w.FortressHP,
		Gold:        w.Gold,
		Dust:        w.Dust,
		Kills:       w.Kills,
		EliteKills:  w.EliteKills,
		Enemies:     len(w.Enemies),
		Militia:     liveMilitia,
		Projectiles: len(w.Projectiles),
		QueuedSpawn: len(w.SpawnQueue),
		RngState:    w.Rng.State(),
		Ended:       w.Ended,
		Won:         w.Won,
	}
}
