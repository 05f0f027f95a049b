package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultTuningYAML []byte

// DefaultTuning возвращает параметры по умолчанию, зашитые в код.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{Speed: 5, MineAnimStep: 0.25},
		Mining: MiningTuning{DurationMs: 3000, Reach: MineReach},
		Blocks: BlockTuning{
			SpawnIntervalMs: 6000,
			SpawnAttempts:   8,
			MaxAlive:        20,
			FrameStep:       0.2,
			DestroyDelayMs:  1500,
			BrokenPolicy:    BrokenRemove,
			Animated:        []string{"iron", "gold", "coal", "tree"},
			Trees:           true,
		},
		Enemies: EnemyTuning{
			Enabled:         true,
			Speed:           2,
			SpawnIntervalMs: 10000,
			SpawnAttempts:   8,
			MaxAlive:        5,
		},
		XP:      XPTuning{PerBlock: 5, FirstNeed: 8, NeedStep: 10},
		Assets:  AssetsTuning{Dir: "assets"},
		Storage: StorageTuning{DBPath: "~/.forager/runs.db"},
	}
}

// embeddedTuning разбирает встроенный defaults.yaml поверх DefaultTuning.
func embeddedTuning() Tuning {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning()
	}
	return cfg
}
