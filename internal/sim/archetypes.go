package sim

// EnemyType identifies one of the enemy archetypes. The set is closed:
// behavior is driven by the static table below plus the trait tag, never by
// string lookups.
type EnemyType uint8

const (
	EnemyRunner EnemyType = iota
	EnemyGrunt
	EnemyBrute
	EnemyStalker
	EnemyLeech
	EnemyHusk
	EnemyShrieker
	EnemyWarden
	EnemyAcolyte
	EnemySpinner
	EnemyBogling
	EnemyEmberling
	EnemyFrostling
	EnemyBroodmother
	EnemyPyrelord
	EnemyColossus
	EnemyIronclad
	EnemyVoidmaw
	EnemyLichKing

	enemyTypeCount
)

// Trait tags special on-tick behavior wired up in the enemy system.
type Trait uint8

const (
	TraitNone   Trait = iota
	TraitLeech        // heals itself a percentage of damage it deals
	TraitSiege        // strikes turrets in reach while marching
	TraitShriek       // periodically stuns heroes in range
	TraitSlam         // melee hits knock militia back
)

// Archetype holds the wave-1 base stats for an enemy type.
// Speed is in centi-cells per second; per-tick velocity is derived from the
// configured tick rate at spawn time.
type Archetype struct {
	Name       string
	HP         int
	Speed      int
	Damage     int
	Gold       int
	Dust       int // always 0 for combat kills; dust comes from other systems
	Trait      Trait
	TraitBP    int // trait magnitude in basis points (heal %, stun chance)
	KBResistBP int // starting knockback resistance
	Boss       bool
}

var archetypeTable = [enemyTypeCount]Archetype{
	EnemyRunner:      {Name: "runner", HP: 18, Speed: 180, Damage: 4, Gold: 3},
	EnemyGrunt:       {Name: "grunt", HP: 32, Speed: 110, Damage: 6, Gold: 4},
	EnemyBrute:       {Name: "brute", HP: 70, Speed: 70, Damage: 12, Gold: 7, Trait: TraitSiege, KBResistBP: 2000},
	EnemyStalker:     {Name: "stalker", HP: 26, Speed: 150, Damage: 7, Gold: 5},
	EnemyLeech:       {Name: "leech", HP: 40, Speed: 95, Damage: 5, Gold: 6, Trait: TraitLeech, TraitBP: 5000},
	EnemyHusk:        {Name: "husk", HP: 55, Speed: 80, Damage: 8, Gold: 5, KBResistBP: 1000},
	EnemyShrieker:    {Name: "shrieker", HP: 24, Speed: 120, Damage: 4, Gold: 6, Trait: TraitShriek, TraitBP: 2500},
	EnemyWarden:      {Name: "warden", HP: 85, Speed: 65, Damage: 10, Gold: 8, Trait: TraitSlam, KBResistBP: 3000},
	EnemyAcolyte:     {Name: "acolyte", HP: 30, Speed: 100, Damage: 9, Gold: 6},
	EnemySpinner:     {Name: "spinner", HP: 22, Speed: 160, Damage: 5, Gold: 5},
	EnemyBogling:     {Name: "bogling", HP: 14, Speed: 130, Damage: 3, Gold: 2},
	EnemyEmberling:   {Name: "emberling", HP: 28, Speed: 125, Damage: 8, Gold: 5},
	EnemyFrostling:   {Name: "frostling", HP: 34, Speed: 90, Damage: 6, Gold: 5},
	EnemyBroodmother: {Name: "broodmother", HP: 700, Speed: 45, Damage: 30, Gold: 60, Boss: true, KBResistBP: 6000},
	EnemyPyrelord:    {Name: "pyrelord", HP: 850, Speed: 50, Damage: 36, Gold: 70, Boss: true, KBResistBP: 6000},
	EnemyColossus:    {Name: "colossus", HP: 1100, Speed: 40, Damage: 45, Gold: 80, Trait: TraitSlam, Boss: true, KBResistBP: 7000},
	EnemyIronclad:    {Name: "ironclad", HP: 1300, Speed: 38, Damage: 40, Gold: 85, Trait: TraitSiege, Boss: true, KBResistBP: 8000},
	EnemyVoidmaw:     {Name: "voidmaw", HP: 1000, Speed: 48, Damage: 50, Gold: 90, Trait: TraitLeech, TraitBP: 4000, Boss: true, KBResistBP: 7000},
	EnemyLichKing:    {Name: "lichking", HP: 1500, Speed: 42, Damage: 55, Gold: 110, Trait: TraitShriek, TraitBP: 3500, Boss: true, KBResistBP: 8000},
}

// ArchetypeFor returns the static row for an enemy type.
// Out-of-range types fall back to the runner row rather than failing; bad
// type ids can only come from internal formulas and a safe default keeps the
// run alive.
func ArchetypeFor(t EnemyType) Archetype {
	if t >= enemyTypeCount {
		return archetypeTable[EnemyRunner]
	}
	return archetypeTable[t]
}

// String returns the archetype name.
func (t EnemyType) String() string {
	return ArchetypeFor(t).Name
}

// Pillar is one of the six thematic stages spanning waves 1-100. A pillar
// restricts which common archetypes may spawn and owns the boss for its
// every-10th waves.
type Pillar struct {
	Name    string
	Commons []EnemyType
	Boss    EnemyType
}

var pillars = [6]Pillar{
	{Name: "Verdant Hollow", Commons: []EnemyType{EnemyRunner, EnemyGrunt, EnemyBogling}, Boss: EnemyBroodmother},
	{Name: "Ashen Steppe", Commons: []EnemyType{EnemyGrunt, EnemyBrute, EnemyEmberling}, Boss: EnemyPyrelord},
	{Name: "Frozen Reach", Commons: []EnemyType{EnemyFrostling, EnemyHusk, EnemyStalker}, Boss: EnemyColossus},
	{Name: "Storm Crags", Commons: []EnemyType{EnemySpinner, EnemyShrieker, EnemyRunner}, Boss: EnemyIronclad},
	{Name: "Umbral Fen", Commons: []EnemyType{EnemyLeech, EnemyAcolyte, EnemyHusk}, Boss: EnemyVoidmaw},
	{Name: "Celestine Ruin", Commons: []EnemyType{EnemyWarden, EnemyAcolyte, EnemyStalker}, Boss: EnemyLichKing},
}

// PillarIndex maps a 1-indexed wave number to its pillar. Waves past 100
// stay in the final pillar.
func PillarIndex(wave int) int {
	if wave < 1 {
		return 0
	}
	idx := (wave - 1) * 6 / 100
	if idx > 5 {
		idx = 5
	}
	return idx
}

// PillarFor returns the pillar data for a wave.
func PillarFor(wave int) Pillar {
	return pillars[PillarIndex(wave)]
}

// TurretClass is the elemental typing of a turret. It selects the damage
// multiplier, the projectile special effect, and the ability.
type TurretClass uint8

const (
	ClassStone TurretClass = iota // plain heavy shot
	ClassEmber                    // splash on impact
	ClassFrost                    // slows the target
	ClassArc                      // chains to nearby enemies
	ClassGale                     // knocks the target back

	turretClassCount
)

// TurretDef is the static definition for a turret class. Per-placement tier
// and synergy multipliers are applied on top of these bases.
type TurretDef struct {
	Name           string
	HP             int
	Damage         int
	RangeCells     int
	CooldownTicks  int
	ClassMultBP    int // elemental-class damage multiplier
	ProjSpeedCells int // projectile speed, cells per second

	// Ability: a periodic damage-boost window.
	AbilityCooldown int
	AbilityBoostBP  int
	AbilityDuration int

	// Special-effect payload carried by projectiles.
	SplashCells int
	ChainCount  int
	SlowBP      int
	SlowTicks   int
	KnockCells  int // knockback distance in centi-cells
}

var turretTable = [turretClassCount]TurretDef{
	ClassStone: {Name: "stone", HP: 120, Damage: 14, RangeCells: 6, CooldownTicks: 24, ClassMultBP: 12000, ProjSpeedCells: 14,
		AbilityCooldown: 480, AbilityBoostBP: 5000, AbilityDuration: 90},
	ClassEmber: {Name: "ember", HP: 90, Damage: 9, RangeCells: 5, CooldownTicks: 20, ClassMultBP: 10000, ProjSpeedCells: 12,
		AbilityCooldown: 420, AbilityBoostBP: 4000, AbilityDuration: 120, SplashCells: 2},
	ClassFrost: {Name: "frost", HP: 90, Damage: 7, RangeCells: 6, CooldownTicks: 22, ClassMultBP: 9000, ProjSpeedCells: 12,
		AbilityCooldown: 400, AbilityBoostBP: 3000, AbilityDuration: 150, SlowBP: 3500, SlowTicks: 60},
	ClassArc: {Name: "arc", HP: 80, Damage: 8, RangeCells: 7, CooldownTicks: 26, ClassMultBP: 11000, ProjSpeedCells: 18,
		AbilityCooldown: 450, AbilityBoostBP: 4500, AbilityDuration: 100, ChainCount: 3},
	ClassGale: {Name: "gale", HP: 85, Damage: 6, RangeCells: 5, CooldownTicks: 18, ClassMultBP: 8500, ProjSpeedCells: 16,
		AbilityCooldown: 360, AbilityBoostBP: 3500, AbilityDuration: 120, KnockCells: 150},
}

// TurretDefFor returns the static definition for a class.
// Unknown classes fall back to stone.
func TurretDefFor(c TurretClass) TurretDef {
	if c >= turretClassCount {
		return turretTable[ClassStone]
	}
	return turretTable[c]
}

// String returns the class name.
func (c TurretClass) String() string {
	return TurretDefFor(c).Name
}

// TierMultBP returns the damage multiplier for a turret tier in basis
// points: tier 1 is 1.0x, each further tier adds 50%.
func TierMultBP(tier int) int {
	if tier < 1 {
		tier = 1
	}
	return 10000 + 5000*(tier-1)
}

// HeroClass selects a hero's combat profile.
type HeroClass uint8

const (
	HeroBlade    HeroClass = iota // short range, high damage
	HeroArcanist                  // long range, moderate damage

	heroClassCount
)

// HeroDef is the static definition for a hero class. Heroes in this mode
// are invulnerable; they have no HP entry.
type HeroDef struct {
	Name          string
	Damage        int
	RangeCells    int
	CooldownTicks int
	CCResist      float64 // resistance applied to incoming crowd control
}

var heroTable = [heroClassCount]HeroDef{
	HeroBlade:    {Name: "blade", Damage: 22, RangeCells: 2, CooldownTicks: 18, CCResist: 0.35},
	HeroArcanist: {Name: "arcanist", Damage: 15, RangeCells: 7, CooldownTicks: 26, CCResist: 0.2},
}

// HeroDefFor returns the static definition for a hero class.
// Unknown classes fall back to blade.
func HeroDefFor(c HeroClass) HeroDef {
	if c >= heroClassCount {
		return heroTable[HeroBlade]
	}
	return heroTable[c]
}

// String returns the class name.
func (c HeroClass) String() string {
	return HeroDefFor(c).Name
}
