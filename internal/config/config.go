// Package config provides YAML-based run configuration for the simulator.
// A RunConfig is an immutable record passed at simulation construction; the
// same config plus the same seed always reproduces the same run.
package config

import "fmt"

// RunConfig is the full configuration for one simulated run.
type RunConfig struct {
	Seed               uint32 `yaml:"seed"`
	TickHz             int    `yaml:"tick_hz"`
	FieldWidth         int    `yaml:"field_width"`  // cells from fortress to spawn edge
	FieldHeight        int    `yaml:"field_height"` // number of lanes
	FinalWave          int    `yaml:"final_wave"`
	CheckpointInterval int    `yaml:"checkpoint_interval"` // ticks between checkpoints

	Fortress FortressConfig `yaml:"fortress"`
	Turrets  []TurretSlot   `yaml:"turrets"`
	Heroes   []HeroSlot     `yaml:"heroes"`
	Militia  MilitiaConfig  `yaml:"militia"`
	Economy  EconomyConfig  `yaml:"economy"`
	Relics   []string       `yaml:"relics"`
}

// FortressConfig describes the structure being defended.
type FortressConfig struct {
	HP              int     `yaml:"hp"`
	Class           string  `yaml:"class"`
	DamageReduction float64 `yaml:"damage_reduction"` // clamped to [-1.0, 0.9] at use
}

// TurretSlot places one turret on the defense grid.
type TurretSlot struct {
	Col       int    `yaml:"col"`
	Row       int    `yaml:"row"`
	Class     string `yaml:"class"` // stone, ember, frost, arc, gale
	Tier      int    `yaml:"tier"`
	Targeting string `yaml:"targeting"` // closest_to_fortress (default), weakest, strongest, nearest_to_turret, fastest
}

// HeroSlot places one hero on a lane.
type HeroSlot struct {
	Class string `yaml:"class"` // blade, arcanist
	Lane  int    `yaml:"lane"`
}

// MilitiaConfig controls the fortress militia spawner.
type MilitiaConfig struct {
	SpawnInterval int `yaml:"spawn_interval"` // ticks between spawns, 0 disables
	MaxActive     int `yaml:"max_active"`
	HP            int `yaml:"hp"`
	Damage        int `yaml:"damage"`
	Lifespan      int `yaml:"lifespan"` // ticks before a unit expires
}

// EconomyConfig holds reward multipliers in basis points.
type EconomyConfig struct {
	GoldMultBP   int `yaml:"gold_mult_bp"`
	CycleBonusBP int `yaml:"cycle_bonus_bp"`
}

// Validate checks the structural constraints a run cannot start without.
// Gameplay-range issues (odd multipliers, over-cap reductions) are clamped
// by the sim instead; only impossible geometry and timing are errors here.
func (c *RunConfig) Validate() error {
	if c.TickHz <= 0 {
		return fmt.Errorf("config: tick_hz must be positive, got %d", c.TickHz)
	}
	if c.FieldWidth < 4 {
		return fmt.Errorf("config: field_width must be at least 4, got %d", c.FieldWidth)
	}
	if c.FieldHeight < 1 {
		return fmt.Errorf("config: field_height must be at least 1, got %d", c.FieldHeight)
	}
	if c.FinalWave < 1 {
		return fmt.Errorf("config: final_wave must be at least 1, got %d", c.FinalWave)
	}
	if c.CheckpointInterval < 1 {
		return fmt.Errorf("config: checkpoint_interval must be at least 1, got %d", c.CheckpointInterval)
	}
	if c.Fortress.HP < 1 {
		return fmt.Errorf("config: fortress hp must be positive, got %d", c.Fortress.HP)
	}
	seen := make(map[[2]int]bool, len(c.Turrets))
	for i, t := range c.Turrets {
		if t.Col < 0 || t.Col >= c.FieldWidth || t.Row < 0 || t.Row >= c.FieldHeight {
			return fmt.Errorf("config: turret %d at (%d,%d) is outside the %dx%d field",
				i, t.Col, t.Row, c.FieldWidth, c.FieldHeight)
		}
		key := [2]int{t.Col, t.Row}
		if seen[key] {
			return fmt.Errorf("config: duplicate turret slot (%d,%d)", t.Col, t.Row)
		}
		seen[key] = true
	}
	for i, h := range c.Heroes {
		if h.Lane < 0 || h.Lane >= c.FieldHeight {
			return fmt.Errorf("config: hero %d lane %d is outside %d lanes", i, h.Lane, c.FieldHeight)
		}
	}
	return nil
}
