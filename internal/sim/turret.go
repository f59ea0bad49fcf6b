package sim

import "github.com/vovakirdan/fortress-run/internal/fixed"

// updateTurrets runs the per-turret state machine: validate or clear the
// current target, reacquire if needed, tick the ability, and fire when the
// attack cooldown expires. Destroyed turrets (HP 0) are inert but keep
// their slot; siege enemies can re-target survivors.
func (w *World) updateTurrets() {
	for i := range w.Turrets {
		t := &w.Turrets[i]
		if t.HP <= 0 {
			continue
		}

		def := TurretDefFor(t.Class)
		rangeF := fixed.FromInt(def.RangeCells)

		// Target persistence: keep a still-valid target to avoid flicker.
		if t.TargetID != 0 && !w.targetValid(t, rangeF) {
			t.TargetID = 0
		}
		if t.TargetID == 0 {
			t.TargetID = w.selectTarget(t, rangeF)
		}

		// Ability: counts down every tick, fires exactly once at zero, then
		// resets to the definition's cooldown.
		if t.AbilityCooldown > 0 {
			t.AbilityCooldown--
			if t.AbilityCooldown == 0 {
				t.BoostUntil = w.Tick + uint64(def.AbilityDuration)
				t.AbilityCooldown = def.AbilityCooldown
			}
		}

		if t.Cooldown > 0 {
			t.Cooldown--
		}
		if t.Cooldown > 0 || t.TargetID == 0 {
			continue
		}

		w.fireTurret(t, def)
		// Synergy attack speed shortens the effective cooldown.
		t.Cooldown = def.CooldownTicks * 10000 / t.SynergySpeedBP
		if t.Cooldown < 1 {
			t.Cooldown = 1
		}
	}
}

// targetValid reports whether the turret's current target is still
// attackable: alive, inside turret range, and on the playfield.
func (w *World) targetValid(t *Turret, rangeF fixed.Fixed) bool {
	e := w.enemyByID(t.TargetID)
	if e == nil || e.HP <= 0 {
		return false
	}
	if e.X > fixed.FromInt(w.Cfg.FieldWidth) || e.X < 0 {
		return false
	}
	return fixed.Dist(t.X, t.Y, e.X, e.Y) <= rangeF
}

// selectTarget picks a new target according to the turret's targeting mode.
// Candidates must be alive, in range, and on the field. Ties are broken by
// enemy ID order: the scan runs in ID order and a later candidate must be
// strictly better to displace the held one.
func (w *World) selectTarget(t *Turret, rangeF fixed.Fixed) uint32 {
	fieldRight := fixed.FromInt(w.Cfg.FieldWidth)

	var best *Enemy
	var bestDist fixed.Fixed
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.HP <= 0 || e.X < 0 || e.X > fieldRight {
			continue
		}
		d := fixed.Dist(t.X, t.Y, e.X, e.Y)
		if d > rangeF {
			continue
		}
		if best == nil {
			best, bestDist = e, d
			continue
		}
		if betterTarget(t.Mode, e, d, best, bestDist) {
			best, bestDist = e, d
		}
	}
	if best == nil {
		return 0
	}
	return best.ID
}

// betterTarget reports whether candidate c strictly beats the incumbent for
// the given mode.
func betterTarget(mode TargetingMode, c *Enemy, cDist fixed.Fixed, inc *Enemy, incDist fixed.Fixed) bool {
	switch mode {
	case ModeWeakest:
		return c.HP < inc.HP
	case ModeStrongest:
		return c.HP > inc.HP
	case ModeNearestToTurret:
		return cDist < incDist
	case ModeFastest:
		return c.Speed > inc.Speed
	default: // ModeClosestToFortress
		return c.X < inc.X
	}
}

// fireTurret spawns a projectile at the current target carrying the full
// damage product: base x tier x class x synergy x ability boost.
func (w *World) fireTurret(t *Turret, def TurretDef) {
	e := w.enemyByID(t.TargetID)
	if e == nil {
		return
	}

	dmg := def.Damage
	dmg = dmg * TierMultBP(t.Tier) / 10000
	dmg = dmg * def.ClassMultBP / 10000
	dmg = dmg * t.SynergyDamageBP / 10000
	dmg = dmg * w.turretDamageBP / 10000
	if t.BoostUntil > w.Tick {
		dmg = dmg * (10000 + def.AbilityBoostBP) / 10000
	}
	if dmg < 1 {
		dmg = 1
	}

	w.Projectiles = append(w.Projectiles, Projectile{
		Source:      t.Slot,
		TargetID:    t.TargetID,
		X:           t.X,
		Y:           t.Y,
		Speed:       fixed.FromInt(def.ProjSpeedCells).DivInt(w.Cfg.TickHz),
		Damage:      dmg,
		SplashCells: def.SplashCells,
		ChainCount:  def.ChainCount,
		SlowBP:      def.SlowBP,
		SlowTicks:   def.SlowTicks,
		KnockCells:  def.KnockCells,
	})
}

// updateHeroes runs hero attacks as part of the defense phase. Heroes hold
// their post, strike the closest enemy in range on cooldown, and sit out
// any tick they are stunned.
func (w *World) updateHeroes() {
	for i := range w.Heroes {
		h := &w.Heroes[i]
		h.Buffs = expireBuffs(h.Buffs, w.Tick)

		if h.Cooldown > 0 {
			h.Cooldown--
		}
		if h.Cooldown > 0 || HeroCCd(h, "shriek_stun", w.Tick) {
			continue
		}

		var target *Enemy
		var targetDist fixed.Fixed
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if e.HP <= 0 {
				continue
			}
			d := fixed.Dist(h.X, h.Y, e.X, e.Y)
			if d > h.Range {
				continue
			}
			if target == nil || d < targetDist {
				target, targetDist = e, d
			}
		}
		if target == nil {
			continue
		}
		w.damageEnemy(target, h.Damage)
		h.Cooldown = HeroDefFor(h.Class).CooldownTicks
	}
}
