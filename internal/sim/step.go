package sim

// Step advances the simulation by exactly one tick. The phase order below
// is fixed; together with ID-ordered iteration inside each phase it is what
// makes checkpoint hashes reproducible. Once the run has ended, Step is a
// no-op.
func (w *World) Step() {
	if w.Ended {
		return
	}
	w.Tick++

	// Phase 1: wave bookkeeping and spawn-queue draining.
	if w.Wave == 0 {
		w.startWave()
	}
	w.drainSpawnQueue()

	// Phase 2: enemy movement and attack resolution.
	w.updateEnemies()

	// Phase 3: defense update (turret targeting/fire/ability, then heroes).
	w.updateTurrets()
	w.updateHeroes()

	// Phase 4: projectile movement and impact.
	w.updateProjectiles()

	// Phase 5: militia spawn and melee.
	w.updateMilitia()

	// Phase 6: death and reward sweep.
	w.sweep()

	// Phase 7: terminal and wave-complete checks.
	if w.FortressHP <= 0 {
		w.FortressHP = 0
		w.Ended = true
		w.Won = false
		return
	}
	if len(w.SpawnQueue) == 0 && len(w.Enemies) == 0 {
		if w.Wave >= w.Cfg.FinalWave {
			w.Ended = true
			w.Won = true
			return
		}
		w.startWave()
	}
}

// sweep removes dead enemies (paying rewards for actual kills, not fortress
// arrivals) and dead or expired militia. Slices are compacted in place so
// ID order is preserved.
func (w *World) sweep() {
	n := 0
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.HP > 0 {
			w.Enemies[n] = *e
			n++
			continue
		}
		if e.reached {
			continue
		}
		gold, dust := w.killReward(e)
		w.Gold += gold
		w.GoldEarned += gold
		w.Dust += dust
		w.DustEarned += dust
		w.Kills++
		if e.Elite {
			w.EliteKills++
		}
	}
	w.Enemies = w.Enemies[:n]

	n = 0
	for i := range w.Militias {
		m := &w.Militias[i]
		if m.HP > 0 && m.Expire > w.Tick {
			w.Militias[n] = *m
			n++
		}
	}
	w.Militias = w.Militias[:n]
}

// Result is the terminal run summary exported to the verification and
// persistence collaborators.
type Result struct {
	Seed          uint32
	TicksSurvived uint64
	WavesCleared  int
	Kills         int
	EliteKills    int
	GoldEarned    int
	DustEarned    int
	Won           bool
}

// Result builds the summary for the current state. Meaningful once the run
// has ended, but safe to call at any tick.
func (w *World) Result() Result {
	waves := w.Wave
	if !w.Won && waves > 0 {
		// The wave in progress when the fortress fell was not cleared.
		waves--
	}
	return Result{
		Seed:          w.Cfg.Seed,
		TicksSurvived: w.Tick,
		WavesCleared:  waves,
		Kills:         w.Kills,
		EliteKills:    w.EliteKills,
		GoldEarned:    w.GoldEarned,
		DustEarned:    w.DustEarned,
		Won:           w.Won,
	}
}
