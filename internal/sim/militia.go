package sim

import "github.com/vovakirdan/fortress-run/internal/fixed"

// updateMilitia spawns and runs fortress militia. Units hold a line two
// cells ahead of the fortress, swing at the nearest enemy in melee reach,
// and expire after their lifespan. Dead and expired units are removed by
// the death sweep.
func (w *World) updateMilitia() {
	cfg := w.Cfg.Militia
	if cfg.SpawnInterval > 0 && w.Tick%uint64(cfg.SpawnInterval) == 0 {
		w.spawnMilitia()
	}

	fieldRight := fixed.FromInt(w.Cfg.FieldWidth)
	fieldBottom := fixed.FromInt(w.Cfg.FieldHeight)
	reach := fixed.FromInt(meleeRangeCells)

	for i := range w.Militias {
		m := &w.Militias[i]
		if m.HP <= 0 {
			continue
		}

		if m.VX != 0 || m.VY != 0 {
			m.X = m.X.Add(m.VX)
			m.Y = m.Y.Add(m.VY)
			m.VX = decayVelocity(m.VX)
			m.VY = decayVelocity(m.VY)
			m.X = fixed.Clamp(m.X, 0, fieldRight)
			m.Y = fixed.Clamp(m.Y, 0, fieldBottom)
		}

		if m.Cooldown > 0 {
			m.Cooldown--
			continue
		}

		var target *Enemy
		var targetDist fixed.Fixed
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if e.HP <= 0 {
				continue
			}
			d := fixed.Dist(m.X, m.Y, e.X, e.Y)
			if d > reach {
				continue
			}
			if target == nil || d < targetDist {
				target, targetDist = e, d
			}
		}
		if target == nil {
			continue
		}
		w.damageEnemy(target, m.Damage)
		m.Cooldown = w.Cfg.TickHz // one swing per second
	}
}

// spawnMilitia adds one unit if the active cap allows. Units deploy across
// the lanes round-robin by spawn ID so the line covers the field.
func (w *World) spawnMilitia() {
	cfg := w.Cfg.Militia
	live := 0
	for i := range w.Militias {
		if w.Militias[i].HP > 0 {
			live++
		}
	}
	if cfg.MaxActive <= 0 || live >= cfg.MaxActive {
		return
	}

	lane := int(w.nextMilitiaID) % w.Cfg.FieldHeight
	w.Militias = append(w.Militias, Militia{
		ID:     w.nextMilitiaID,
		X:      fixed.FromInt(2).Add(fixed.Half),
		Y:      fixed.FromInt(lane).Add(fixed.Half),
		HP:     cfg.HP,
		Damage: cfg.Damage,
		Expire: w.Tick + uint64(cfg.Lifespan),
	})
	w.nextMilitiaID++
}
