package preset

import "github.com/vovakirdan/fortress-run/internal/config"

func init() {
	Register("default", "balanced mixed-class line on a 24x5 field", config.Default)
	Register("turtle", "high-HP fortress, frost wall, no heroes", turtle)
	Register("gauntlet", "thin defense for short stress runs", gauntlet)
}

func turtle() config.RunConfig {
	cfg := config.Default()
	cfg.Fortress.HP = 2500
	cfg.Fortress.DamageReduction = 0.45
	cfg.Turrets = []config.TurretSlot{
		{Col: 3, Row: 0, Class: "frost", Tier: 1, Targeting: "fastest"},
		{Col: 3, Row: 1, Class: "frost", Tier: 1, Targeting: "fastest"},
		{Col: 3, Row: 2, Class: "frost", Tier: 2, Targeting: "fastest"},
		{Col: 3, Row: 3, Class: "frost", Tier: 1, Targeting: "fastest"},
		{Col: 3, Row: 4, Class: "frost", Tier: 1, Targeting: "fastest"},
		{Col: 5, Row: 2, Class: "stone", Tier: 3, Targeting: "closest_to_fortress"},
	}
	cfg.Heroes = nil
	cfg.Militia.MaxActive = 10
	cfg.Militia.SpawnInterval = 90
	cfg.Relics = []string{"aegis_sigil"}
	return cfg
}

func gauntlet() config.RunConfig {
	cfg := config.Default()
	cfg.FinalWave = 20
	cfg.Fortress.HP = 400
	cfg.Turrets = []config.TurretSlot{
		{Col: 4, Row: 1, Class: "arc", Tier: 2, Targeting: "weakest"},
		{Col: 4, Row: 3, Class: "ember", Tier: 2, Targeting: "strongest"},
	}
	cfg.Heroes = []config.HeroSlot{{Class: "blade", Lane: 2}}
	cfg.Militia.SpawnInterval = 0
	cfg.Relics = []string{"midas_idol", "war_horn"}
	return cfg
}
