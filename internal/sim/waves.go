package sim

import "github.com/vovakirdan/fortress-run/internal/fixed"

// Wave scaling is pure integer math so every platform floors identically.
// The scale factor is 1 + 0.12*(w-1): wave 1 is exactly 1.00x, wave 10 is
// exactly 2.08x.

// ScaleStat applies the wave scaling factor to a base stat, flooring.
func ScaleStat(base, wave int) int {
	if wave < 1 {
		wave = 1
	}
	return base * (100 + 12*(wave-1)) / 100
}

// WaveEnemyCount returns the number of regular enemies in a wave:
// (8 + floor(w*2.5)) * 2.
func WaveEnemyCount(wave int) int {
	return (8 + 5*wave/2) * 2
}

// EliteChanceBP returns the per-spawn elite probability in basis points:
// min(0.05 + 0.004*w, 0.5).
func EliteChanceBP(wave int) int {
	bp := 500 + 40*wave
	if bp > 5000 {
		bp = 5000
	}
	return bp
}

// SpawnIntervalTicks returns the tick gap between spawns:
// max(tickHz*0.65 - w*0.25, tickHz*0.3), floored, never below 9.
func SpawnIntervalTicks(wave, tickHz int) int {
	a := 65*tickHz - 25*wave
	b := 30 * tickHz
	if b > a {
		a = b
	}
	iv := a / 100
	if iv < 9 {
		iv = 9
	}
	return iv
}

// IsBossWave reports whether the wave carries a pillar boss.
func IsBossWave(wave int) bool {
	return wave > 0 && wave%10 == 0
}

// Elite stat multipliers: HP x3, damage x2.5, speed unchanged.
const (
	eliteHPMult        = 3
	eliteDamageNum     = 5
	eliteDamageDen     = 2
	eliteGoldNum       = 5
	eliteGoldDen       = 2
	knockbackDecayBP   = 8000 // knockback velocity retained per tick
	kbResistGrowthBP   = 1500 // resistance gained per knockback taken
	kbResistCeilingBP  = 9000
	leechTraitCooldown = 0 // leech heals on every hit
)

// startWave advances to the next wave and fills the spawn queue from the
// composition formula. The regular count is split 60/40 across two pillar
// archetypes; every 10th wave prepends a single boss entry.
func (w *World) startWave() {
	w.Wave++
	wave := w.Wave
	pillar := PillarFor(wave)

	primary := pillar.Commons[w.Rng.Intn(len(pillar.Commons))]
	secondary := primary
	if len(pillar.Commons) > 1 {
		for secondary == primary {
			secondary = pillar.Commons[w.Rng.Intn(len(pillar.Commons))]
		}
	}

	total := WaveEnemyCount(wave)
	primaryCount := total * 60 / 100
	interval := uint64(SpawnIntervalTicks(wave, w.Cfg.TickHz))
	eliteBP := EliteChanceBP(wave)

	start := w.Tick + 1
	queue := w.SpawnQueue[:0]

	if IsBossWave(wave) {
		queue = append(queue, SpawnEntry{Type: pillar.Boss, SpawnTick: start})
		start += interval
	}

	for i := 0; i < total; i++ {
		t := primary
		if i >= primaryCount {
			t = secondary
		}
		queue = append(queue, SpawnEntry{
			Type:      t,
			Elite:     w.Rng.Roll(eliteBP),
			SpawnTick: start + uint64(i)*interval,
		})
	}
	w.SpawnQueue = queue
}

// drainSpawnQueue spawns every queued entry whose tick has arrived. Entries
// are in spawn-tick order by construction, so this pops from the front.
func (w *World) drainSpawnQueue() {
	n := 0
	for n < len(w.SpawnQueue) && w.SpawnQueue[n].SpawnTick <= w.Tick {
		w.spawnEnemy(w.SpawnQueue[n])
		n++
	}
	if n > 0 {
		w.SpawnQueue = w.SpawnQueue[n:]
	}
}

// spawnEnemy materializes a queue entry at the spawn edge of the field.
func (w *World) spawnEnemy(e SpawnEntry) {
	arch := ArchetypeFor(e.Type)
	hp := ScaleStat(arch.HP, w.Wave)
	dmg := ScaleStat(arch.Damage, w.Wave)
	if e.Elite {
		hp *= eliteHPMult
		dmg = dmg * eliteDamageNum / eliteDamageDen
	}

	lane := w.Rng.Intn(w.Cfg.FieldHeight)
	speed := fixed.FromInt(arch.Speed).DivInt(100 * w.Cfg.TickHz)

	w.Enemies = append(w.Enemies, Enemy{
		ID:         w.nextEnemyID,
		Type:       e.Type,
		X:          fixed.FromInt(w.Cfg.FieldWidth),
		Y:          fixed.FromInt(lane).Add(fixed.Half),
		HP:         hp,
		MaxHP:      hp,
		Damage:     dmg,
		Gold:       arch.Gold,
		Speed:      speed,
		Lane:       lane,
		Elite:      e.Elite,
		KBResistBP: arch.KBResistBP,
	})
	w.nextEnemyID++
}

// killReward computes the gold for a kill:
// floor(baseGold * goldMult * (1 + eliteBonus) * waveScaling * cycleBonus).
// Dust from combat kills is always zero; dust income belongs to other game
// systems.
func (w *World) killReward(e *Enemy) (gold, dust int) {
	gold = ScaleStat(e.Gold, w.Wave)
	if e.Elite {
		gold = gold * eliteGoldNum / eliteGoldDen
	}
	gold = gold * w.goldMultBP / 10000
	cycle := w.Cfg.Economy.CycleBonusBP
	if cycle > 0 {
		gold = gold * cycle / 10000
	}
	return gold, 0
}
