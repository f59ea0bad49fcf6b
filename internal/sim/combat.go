package sim

import (
	"math"

	"github.com/vovakirdan/fortress-run/internal/fixed"
)

// Resistance and reduction percentages share one clamp-then-floor pattern so
// stacked defensive stats degrade gracefully instead of hitting zero damage
// or zero duration. Percent math runs in float64: IEEE-754 add/mul are
// exactly rounded and platform-independent, and these stat percentages never
// feed back into fixed-point positions.

const resistCeiling = 0.9

// clampResist clamps a resistance to [0, 0.9]. Negative resistance is
// treated as zero: no duration or knockback amplification from negative
// resist.
func clampResist(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > resistCeiling {
		return resistCeiling
	}
	return r
}

// ApplyDamageToHero resolves damage against a hero. Heroes are invulnerable
// in this mode: the damage taken is always zero. Negative or zero input is
// clamped to zero as well, so the return is usable for accounting either
// way.
func ApplyDamageToHero(h *Hero, damage int) int {
	_ = h
	return 0
}

// ApplyDamageToTurret subtracts min(damage, currentHP) from the turret and
// returns the damage actually applied. HP never goes negative; negative
// input is a no-op.
func ApplyDamageToTurret(t *Turret, damage int) int {
	if damage <= 0 {
		return 0
	}
	applied := damage
	if applied > t.HP {
		applied = t.HP
	}
	t.HP -= applied
	return applied
}

// CCDuration computes a crowd-control duration after resistance:
// floor(base * (1 - clamp(resistance, 0, 0.9))).
func CCDuration(base int, resistance float64) int {
	if base <= 0 {
		return 0
	}
	return int(math.Floor(float64(base) * (1 - clampResist(resistance))))
}

// ApplyCCToHero applies a timed crowd-control buff to a hero, reduced by the
// hero's resistance. A fully resisted (zero-duration) application silently
// no-ops. Distinct CC ids stack concurrently.
func ApplyCCToHero(h *Hero, id, stat string, amount, baseDuration int, currentTick uint64) bool {
	d := CCDuration(baseDuration, h.CCResist)
	if d == 0 {
		return false
	}
	h.Buffs = append(h.Buffs, Buff{
		ID:             id,
		Stat:           stat,
		Amount:         amount,
		ExpirationTick: currentTick + uint64(d),
	})
	return true
}

// HeroCCd reports whether a hero currently has the given crowd-control id.
func HeroCCd(h *Hero, id string, currentTick uint64) bool {
	for _, b := range h.Buffs {
		if b.ID == id && b.ExpirationTick > currentTick {
			return true
		}
	}
	return false
}

// expireBuffs drops buffs whose expiration tick has been reached,
// preserving order.
func expireBuffs(buffs []Buff, currentTick uint64) []Buff {
	n := 0
	for _, b := range buffs {
		if b.ExpirationTick > currentTick {
			buffs[n] = b
			n++
		}
	}
	return buffs[:n]
}

// kbBody is any entity that can be knocked back: it carries a velocity that
// the movement systems integrate and decay.
type kbBody interface {
	velocity() (vx, vy fixed.Fixed)
	setVelocity(vx, vy fixed.Fixed)
}

func (e *Enemy) velocity() (fixed.Fixed, fixed.Fixed)   { return e.VX, e.VY }
func (e *Enemy) setVelocity(vx, vy fixed.Fixed)         { e.VX, e.VY = vx, vy }
func (m *Militia) velocity() (fixed.Fixed, fixed.Fixed) { return m.VX, m.VY }
func (m *Militia) setVelocity(vx, vy fixed.Fixed)       { m.VX, m.VY = vx, vy }

// ApplyKnockback adds a knockback impulse to a body, scaled down by the
// body's resistance (clamped to [0, 0.9]). The impulse is additive on top
// of any existing velocity, not a replacement.
func ApplyKnockback(body kbBody, kbX, kbY fixed.Fixed, resistance float64) {
	scale := fixed.FromFloat(1 - clampResist(resistance))
	vx, vy := body.velocity()
	body.setVelocity(vx.Add(kbX.Mul(scale)), vy.Add(kbY.Mul(scale)))
}

// FortressIncomingDamage computes the damage the fortress takes after its
// reduction stat. Reduction is clamped to [-1.0, 0.9]: negative values
// amplify up to 2x, positive values reduce down to 10%. The result is
// floored.
func FortressIncomingDamage(base int, reduction float64) int {
	if base <= 0 {
		return 0
	}
	if reduction < -1 {
		reduction = -1
	}
	if reduction > resistCeiling {
		reduction = resistCeiling
	}
	return int(math.Floor(float64(base) * (1 - reduction)))
}

// damageEnemy applies damage to an enemy and stamps the hit flash. Returns
// true if the hit was lethal. The death sweep removes the body and pays the
// reward later in the same tick.
func (w *World) damageEnemy(e *Enemy, damage int) bool {
	if damage <= 0 {
		return false
	}
	e.HP -= damage
	e.HitFlashTick = w.Tick
	return e.HP <= 0
}
