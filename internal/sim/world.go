// Package sim implements the deterministic tower-defense simulation core:
// wave composition, turret/hero/militia combat, and the tick-stepped loop.
// All arithmetic inside a tick is integer or Q16.16 fixed-point, and all
// randomness flows through the explicit xorshift generator in World, so a
// seed plus a config reproduces a run bit-for-bit on any platform.
package sim

import (
	"sort"

	"github.com/vovakirdan/fortress-run/internal/config"
	"github.com/vovakirdan/fortress-run/internal/fixed"
	"github.com/vovakirdan/fortress-run/internal/rng"
)

// TargetingMode selects how a turret picks a new target.
type TargetingMode uint8

const (
	ModeClosestToFortress TargetingMode = iota // lowest x (default)
	ModeWeakest                                // lowest hp
	ModeStrongest                              // highest hp
	ModeNearestToTurret                        // smallest Euclidean distance
	ModeFastest                                // highest speed
)

// ParseTargetingMode maps a config string to a mode.
// Unknown strings fall back to closest_to_fortress.
func ParseTargetingMode(s string) TargetingMode {
	switch s {
	case "weakest":
		return ModeWeakest
	case "strongest":
		return ModeStrongest
	case "nearest_to_turret":
		return ModeNearestToTurret
	case "fastest":
		return ModeFastest
	default:
		return ModeClosestToFortress
	}
}

// ParseTurretClass maps a config string to a class, defaulting to stone.
func ParseTurretClass(s string) TurretClass {
	switch s {
	case "ember":
		return ClassEmber
	case "frost":
		return ClassFrost
	case "arc":
		return ClassArc
	case "gale":
		return ClassGale
	default:
		return ClassStone
	}
}

// ParseHeroClass maps a config string to a class, defaulting to blade.
func ParseHeroClass(s string) HeroClass {
	switch s {
	case "arcanist":
		return HeroArcanist
	default:
		return HeroBlade
	}
}

// Buff is a timed stat modifier (crowd control or effect) attached to an
// entity. Distinct IDs stack; an entry is dead once ExpirationTick is
// reached.
type Buff struct {
	ID             string
	Stat           string
	Amount         int // basis points
	ExpirationTick uint64
}

// Enemy is a spawned wave enemy marching toward the fortress.
type Enemy struct {
	ID     uint32
	Type   EnemyType
	X, Y   fixed.Fixed
	VX, VY fixed.Fixed // knockback velocity, decays each tick
	HP     int
	MaxHP  int
	Damage int
	Gold   int
	Speed  fixed.Fixed // march speed per tick
	Lane   int
	Elite  bool

	KBResistBP int // grows with every knockback taken (diminishing returns)
	SlowBP     int
	SlowUntil  uint64

	HitFlashTick uint64
	LastAttack   uint64
	LastTrait    uint64 // last tick the trait (shriek/siege) fired

	reached bool // hit the fortress; removed without a kill reward
}

// Turret is a placed turret occupying a grid slot.
type Turret struct {
	Slot  int
	Col   int
	Row   int
	X, Y  fixed.Fixed
	Class TurretClass
	Tier  int
	HP    int
	MaxHP int
	Mode  TargetingMode

	TargetID        uint32 // 0 = no target
	Cooldown        int
	AbilityCooldown int
	BoostUntil      uint64

	// Adjacency synergy, fixed at placement time.
	SynergyDamageBP int
	SynergySpeedBP  int
}

// Hero is a placed hero. Heroes are invulnerable in this mode: damage
// applied to them always resolves to zero. They can still be crowd
// controlled, subject to their class resistance.
type Hero struct {
	Class    HeroClass
	X, Y     fixed.Fixed
	Damage   int
	Range    fixed.Fixed
	Cooldown int
	CCResist float64
	Buffs    []Buff
}

// Militia is a short-lived fortress defender that body-blocks enemies.
type Militia struct {
	ID       uint32
	X, Y     fixed.Fixed
	VX, VY   fixed.Fixed // knockback velocity
	HP       int
	Damage   int
	Expire   uint64
	Cooldown int
}

// Projectile is an in-flight turret shot bound to a target enemy.
type Projectile struct {
	Source   int // turret slot
	TargetID uint32
	X, Y     fixed.Fixed
	Speed    fixed.Fixed
	Damage   int

	SplashCells int
	ChainCount  int
	SlowBP      int
	SlowTicks   int
	KnockCells  int
}

// SpawnEntry is one pending spawn generated at wave start and consumed as
// ticks advance.
type SpawnEntry struct {
	Type      EnemyType
	Elite     bool
	SpawnTick uint64
}

// Relic is an active run-wide modifier.
type Relic struct {
	ID     string
	Stat   string
	Amount int // basis points
}

// relicTable maps config relic names to their effects. Unknown names are
// ignored rather than erroring, matching the soft-failure policy for
// internal data.
var relicTable = map[string]Relic{
	"midas_idol":  {ID: "midas_idol", Stat: "gold_mult", Amount: 1500},
	"aegis_sigil": {ID: "aegis_sigil", Stat: "fortress_reduction", Amount: 1000},
	"war_horn":    {ID: "war_horn", Stat: "turret_damage", Amount: 1000},
}

// World is the aggregate mutable simulation state. It is owned exclusively
// by the loop stepping it; systems receive it by pointer and mutate in
// place. Entity slices are kept in spawn (ID) order at all times so that
// iteration and hashing are canonical.
type World struct {
	Cfg config.RunConfig

	Tick uint64
	Wave int
	Rng  rng.Gen

	FortressHP    int
	FortressMaxHP int

	Gold       int
	Dust       int
	GoldEarned int
	DustEarned int
	Kills      int
	EliteKills int

	Enemies     []Enemy
	Turrets     []Turret
	Heroes      []Hero
	Militias    []Militia
	Projectiles []Projectile
	SpawnQueue  []SpawnEntry
	Relics      []Relic

	Ended bool
	Won   bool

	nextEnemyID   uint32
	nextMilitiaID uint32

	// Derived at construction from config + relics.
	fortressReduction float64
	goldMultBP        int
	turretDamageBP    int
}

// New builds a world from an immutable run configuration. The config is
// assumed validated; gameplay-range values are clamped at use instead.
func New(cfg config.RunConfig) *World {
	w := &World{
		Cfg:            cfg,
		Rng:            rng.New(cfg.Seed),
		FortressHP:     cfg.Fortress.HP,
		FortressMaxHP:  cfg.Fortress.HP,
		nextEnemyID:    1,
		nextMilitiaID:  1,
		goldMultBP:     cfg.Economy.GoldMultBP,
		turretDamageBP: 10000,
	}
	if w.goldMultBP <= 0 {
		w.goldMultBP = 10000
	}

	for _, name := range cfg.Relics {
		r, ok := relicTable[name]
		if !ok {
			continue
		}
		w.Relics = append(w.Relics, r)
	}
	sort.Slice(w.Relics, func(i, j int) bool { return w.Relics[i].ID < w.Relics[j].ID })

	reduction := cfg.Fortress.DamageReduction
	for _, r := range w.Relics {
		switch r.Stat {
		case "gold_mult":
			w.goldMultBP += w.goldMultBP * r.Amount / 10000
		case "fortress_reduction":
			reduction += float64(r.Amount) / 10000
		case "turret_damage":
			w.turretDamageBP += r.Amount
		}
	}
	w.fortressReduction = reduction

	for i, slot := range cfg.Turrets {
		def := TurretDefFor(ParseTurretClass(slot.Class))
		tier := slot.Tier
		if tier < 1 {
			tier = 1
		}
		w.Turrets = append(w.Turrets, Turret{
			Slot:            i,
			Col:             slot.Col,
			Row:             slot.Row,
			X:               fixed.FromInt(slot.Col).Add(fixed.Half),
			Y:               fixed.FromInt(slot.Row).Add(fixed.Half),
			Class:           ParseTurretClass(slot.Class),
			Tier:            tier,
			HP:              def.HP,
			MaxHP:           def.HP,
			Mode:            ParseTargetingMode(slot.Targeting),
			Cooldown:        def.CooldownTicks,
			AbilityCooldown: def.AbilityCooldown,
			SynergyDamageBP: 10000,
			SynergySpeedBP:  10000,
		})
	}
	w.computeSynergy()

	for _, slot := range cfg.Heroes {
		def := HeroDefFor(ParseHeroClass(slot.Class))
		w.Heroes = append(w.Heroes, Hero{
			Class:    ParseHeroClass(slot.Class),
			X:        fixed.FromInt(1).Add(fixed.Half),
			Y:        fixed.FromInt(slot.Lane).Add(fixed.Half),
			Damage:   def.Damage,
			Range:    fixed.FromInt(def.RangeCells),
			CCResist: def.CCResist,
		})
	}

	return w
}

// computeSynergy counts grid-adjacent same-class neighbors for every turret
// and bakes the +15% damage / +10% attack speed bonuses. The loadout is
// fixed for the whole run, so this runs once.
func (w *World) computeSynergy() {
	for i := range w.Turrets {
		neighbors := 0
		for j := range w.Turrets {
			if i == j || w.Turrets[i].Class != w.Turrets[j].Class {
				continue
			}
			dc := w.Turrets[i].Col - w.Turrets[j].Col
			dr := w.Turrets[i].Row - w.Turrets[j].Row
			if dc < 0 {
				dc = -dc
			}
			if dr < 0 {
				dr = -dr
			}
			if dc+dr == 1 {
				neighbors++
			}
		}
		w.Turrets[i].SynergyDamageBP = 10000 + 1500*neighbors
		w.Turrets[i].SynergySpeedBP = 10000 + 1000*neighbors
	}
}

// RngState exposes the raw generator state for checkpoint hashing.
func (w *World) RngState() uint32 {
	return w.Rng.State()
}

// enemyByID returns the live enemy with the given ID, or nil.
// The slice is ID-sorted, so a binary search keeps this cheap even on
// 500-enemy waves.
func (w *World) enemyByID(id uint32) *Enemy {
	lo, hi := 0, len(w.Enemies)
	for lo < hi {
		mid := (lo + hi) / 2
		if w.Enemies[mid].ID < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(w.Enemies) && w.Enemies[lo].ID == id {
		return &w.Enemies[lo]
	}
	return nil
}

// turretBySlot returns the turret in the given slot and whether it exists.
func (w *World) turretBySlot(slot int) (*Turret, bool) {
	for i := range w.Turrets {
		if w.Turrets[i].Slot == slot {
			return &w.Turrets[i], true
		}
	}
	return nil, false
}
