package sim

import "github.com/vovakirdan/fortress-run/internal/fixed"

// Enemy behavior constants, expressed in ticks or cells.
const (
	meleeRangeCells  = 1   // militia engagement range
	siegeRangeCells  = 2   // siege-trait turret strike range
	shriekRangeCells = 3   // shriek-trait hero stun range
	slamKnockCells   = 2   // slam-trait militia knockback distance
	velocityEpsilon  = 128 // below this raw fixed value, velocity snaps to 0
)

// updateEnemies runs movement and attack resolution for every living enemy
// in ID order: knockback integration, militia engagement, trait behavior,
// and fortress arrival.
func (w *World) updateEnemies() {
	hz := w.Cfg.TickHz
	fieldRight := fixed.FromInt(w.Cfg.FieldWidth)
	fieldBottom := fixed.FromInt(w.Cfg.FieldHeight)

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.HP <= 0 {
			continue
		}

		if e.SlowUntil <= w.Tick {
			e.SlowBP = 0
		}

		// Integrate and decay knockback velocity.
		if e.VX != 0 || e.VY != 0 {
			e.X = e.X.Add(e.VX)
			e.Y = e.Y.Add(e.VY)
			e.VX = decayVelocity(e.VX)
			e.VY = decayVelocity(e.VY)
			e.X = fixed.Clamp(e.X, 0, fieldRight)
			e.Y = fixed.Clamp(e.Y, 0, fieldBottom)
		}

		switch ArchetypeFor(e.Type).Trait {
		case TraitSiege:
			w.enemySiege(e, hz)
		case TraitShriek:
			w.enemyShriek(e, hz)
		}

		if blocker := w.nearestMilitia(e.X, e.Y, fixed.FromInt(meleeRangeCells)); blocker != nil {
			w.enemyStrikeMilitia(e, blocker, hz)
			continue // engaged enemies stop marching
		}

		speed := e.Speed
		if e.SlowBP > 0 {
			speed = speed.MulInt(10000 - e.SlowBP).DivInt(10000)
		}
		e.X = e.X.Sub(speed)

		if e.X <= 0 {
			dmg := FortressIncomingDamage(e.Damage, w.fortressReduction)
			w.FortressHP -= dmg
			e.HP = 0
			e.reached = true
		}
	}
}

// decayVelocity bleeds off knockback velocity, snapping small residues to
// zero so positions settle on exact values.
func decayVelocity(v fixed.Fixed) fixed.Fixed {
	v = v.MulInt(knockbackDecayBP).DivInt(10000)
	if v.Abs() < velocityEpsilon {
		return 0
	}
	return v
}

// enemyStrikeMilitia resolves one melee swing against a blocking militia
// unit, rate-limited to one attack per second.
func (w *World) enemyStrikeMilitia(e *Enemy, m *Militia, hz int) {
	if w.Tick < e.LastAttack+uint64(hz) {
		return
	}
	e.LastAttack = w.Tick

	dealt := e.Damage
	if dealt > m.HP {
		dealt = m.HP
	}
	m.HP -= dealt

	arch := ArchetypeFor(e.Type)
	switch arch.Trait {
	case TraitLeech:
		heal := dealt * arch.TraitBP / 10000
		e.HP += heal
		if e.HP > e.MaxHP {
			e.HP = e.MaxHP
		}
	case TraitSlam:
		// Slam throws the defender back toward the fortress.
		kb := fixed.FromInt(slamKnockCells)
		ApplyKnockback(m, -kb, 0, 0)
	}
}

// enemySiege lets siege-trait enemies strike the nearest turret in reach
// once every two seconds while marching.
func (w *World) enemySiege(e *Enemy, hz int) {
	if w.Tick < e.LastTrait+uint64(2*hz) {
		return
	}
	reach := fixed.FromInt(siegeRangeCells)
	var target *Turret
	for i := range w.Turrets {
		t := &w.Turrets[i]
		if t.HP <= 0 {
			continue
		}
		if fixed.Dist(e.X, e.Y, t.X, t.Y) > reach {
			continue
		}
		if target == nil || t.Slot < target.Slot {
			target = t
		}
	}
	if target == nil {
		return
	}
	e.LastTrait = w.Tick
	ApplyDamageToTurret(target, e.Damage)
}

// enemyShriek lets shriek-trait enemies stun heroes in range every four
// seconds. The stun is subject to each hero's crowd-control resistance and
// lasts 1.5 seconds at base.
func (w *World) enemyShriek(e *Enemy, hz int) {
	if w.Tick < e.LastTrait+uint64(4*hz) {
		return
	}
	reach := fixed.FromInt(shriekRangeCells)
	fired := false
	for i := range w.Heroes {
		h := &w.Heroes[i]
		if fixed.Dist(e.X, e.Y, h.X, h.Y) > reach {
			continue
		}
		fired = true
		ApplyCCToHero(h, "shriek_stun", "stunned", 10000, hz*3/2, w.Tick)
	}
	if fired {
		e.LastTrait = w.Tick
	}
}

// nearestMilitia returns the closest living militia within reach, ties
// broken by lowest ID.
func (w *World) nearestMilitia(x, y, reach fixed.Fixed) *Militia {
	var best *Militia
	var bestDist fixed.Fixed
	for i := range w.Militias {
		m := &w.Militias[i]
		if m.HP <= 0 {
			continue
		}
		d := fixed.Dist(x, y, m.X, m.Y)
		if d > reach {
			continue
		}
		if best == nil || d < bestDist {
			best = m
			bestDist = d
		}
	}
	return best
}
