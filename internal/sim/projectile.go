package sim

import "github.com/vovakirdan/fortress-run/internal/fixed"

const (
	splashFalloffBP = 5000 // splash hits at 50% of impact damage
	chainFalloffBP  = 7000 // each chain jump carries 70% of the previous hit
	chainReachCells = 3
)

// updateProjectiles advances every in-flight projectile in creation order.
// A projectile whose target died mid-flight is destroyed without effect;
// one that reaches its target applies its payload and is destroyed.
func (w *World) updateProjectiles() {
	n := 0
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		target := w.enemyByID(p.TargetID)
		if target == nil || target.HP <= 0 {
			continue // target loss: drop the projectile
		}

		dx := target.X.Sub(p.X)
		dy := target.Y.Sub(p.Y)
		dist := fixed.Dist(p.X, p.Y, target.X, target.Y)
		if dist <= p.Speed {
			w.impact(p, target)
			continue
		}

		p.X = p.X.Add(dx.Div(dist).Mul(p.Speed))
		p.Y = p.Y.Add(dy.Div(dist).Mul(p.Speed))
		w.Projectiles[n] = *p
		n++
	}
	w.Projectiles = w.Projectiles[:n]
}

// impact applies a projectile's damage and special effects at its target.
func (w *World) impact(p *Projectile, target *Enemy) {
	w.damageEnemy(target, p.Damage)

	if p.SlowBP > 0 {
		// Strongest slow wins; refreshing with a weaker one only extends time.
		if p.SlowBP > target.SlowBP {
			target.SlowBP = p.SlowBP
		}
		until := w.Tick + uint64(p.SlowTicks)
		if until > target.SlowUntil {
			target.SlowUntil = until
		}
	}

	if p.KnockCells > 0 {
		w.knockbackEnemy(target, p.KnockCells)
	}

	if p.SplashCells > 0 {
		w.splash(p, target)
	}

	if p.ChainCount > 0 {
		w.chain(p, target)
	}
}

// knockbackEnemy pushes an enemy back toward the spawn edge and grows its
// resistance so repeated knockbacks have diminishing returns.
func (w *World) knockbackEnemy(e *Enemy, knockCells int) {
	kb := fixed.FromInt(knockCells).DivInt(100)
	ApplyKnockback(e, kb, 0, float64(e.KBResistBP)/10000)
	e.KBResistBP += kbResistGrowthBP
	if e.KBResistBP > kbResistCeilingBP {
		e.KBResistBP = kbResistCeilingBP
	}
}

// splash damages every other living enemy within the splash radius of the
// impact point at reduced damage, in ID order.
func (w *World) splash(p *Projectile, center *Enemy) {
	radius := fixed.FromInt(p.SplashCells)
	dmg := p.Damage * splashFalloffBP / 10000
	if dmg < 1 {
		return
	}
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.ID == center.ID || e.HP <= 0 {
			continue
		}
		if fixed.Dist(center.X, center.Y, e.X, e.Y) > radius {
			continue
		}
		w.damageEnemy(e, dmg)
	}
}

// chain arcs from the impact point to up to ChainCount further enemies.
// Each jump targets the nearest unhit living enemy within reach of the
// previous one (ID order breaks distance ties) and decays the damage.
func (w *World) chain(p *Projectile, first *Enemy) {
	reach := fixed.FromInt(chainReachCells)
	hit := map[uint32]bool{first.ID: true}
	fromX, fromY := first.X, first.Y
	dmg := p.Damage

	for jump := 0; jump < p.ChainCount; jump++ {
		dmg = dmg * chainFalloffBP / 10000
		if dmg < 1 {
			return
		}
		var next *Enemy
		var nextDist fixed.Fixed
		for i := range w.Enemies {
			e := &w.Enemies[i]
			if e.HP <= 0 || hit[e.ID] {
				continue
			}
			d := fixed.Dist(fromX, fromY, e.X, e.Y)
			if d > reach {
				continue
			}
			if next == nil || d < nextDist {
				next, nextDist = e, d
			}
		}
		if next == nil {
			return
		}
		w.damageEnemy(next, dmg)
		hit[next.ID] = true
		fromX, fromY = next.X, next.Y
	}
}
