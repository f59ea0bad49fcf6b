package config

// Default returns the baseline run configuration: a 24x5 field, a modest
// mixed-class turret line, both heroes, and militia support. Presets and
// YAML files override from here.
func Default() RunConfig {
	return RunConfig{
		Seed:               1,
		TickHz:             30,
		FieldWidth:         24,
		FieldHeight:        5,
		FinalWave:          100,
		CheckpointInterval: 60,
		Fortress: FortressConfig{
			HP:              1000,
			Class:           "bastion",
			DamageReduction: 0.2,
		},
		Turrets: []TurretSlot{
			{Col: 3, Row: 1, Class: "stone", Tier: 1, Targeting: "closest_to_fortress"},
			{Col: 3, Row: 2, Class: "stone", Tier: 1, Targeting: "closest_to_fortress"},
			{Col: 4, Row: 2, Class: "ember", Tier: 1, Targeting: "strongest"},
			{Col: 5, Row: 1, Class: "frost", Tier: 1, Targeting: "fastest"},
			{Col: 5, Row: 3, Class: "arc", Tier: 1, Targeting: "weakest"},
			{Col: 6, Row: 2, Class: "gale", Tier: 1, Targeting: "nearest_to_turret"},
		},
		Heroes: []HeroSlot{
			{Class: "blade", Lane: 2},
			{Class: "arcanist", Lane: 1},
		},
		Militia: MilitiaConfig{
			SpawnInterval: 150,
			MaxActive:     6,
			HP:            40,
			Damage:        6,
			Lifespan:      900,
		},
		Economy: EconomyConfig{
			GoldMultBP:   10000,
			CycleBonusBP: 10000,
		},
	}
}
