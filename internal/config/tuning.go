package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// BrokenPolicy определяет судьбу разрушенного блока.
type BrokenPolicy string

const (
	// BrokenRemove - блок удаляется через DestroyDelay после разрушения.
	BrokenRemove BrokenPolicy = "remove"
	// BrokenKeep - блок навсегда остаётся в затемнённом виде.
	BrokenKeep BrokenPolicy = "keep"
)

// BlockKindNames - допустимые имена видов блоков в blocks.animated.
var BlockKindNames = []string{"iron", "gold", "coal", "tree"}

// Tuning - игровые параметры, которые можно переопределить YAML-файлом.
type Tuning struct {
	Player  PlayerTuning  `yaml:"player"`
	Mining  MiningTuning  `yaml:"mining"`
	Blocks  BlockTuning   `yaml:"blocks"`
	Enemies EnemyTuning   `yaml:"enemies"`
	XP      XPTuning      `yaml:"xp"`
	Assets  AssetsTuning  `yaml:"assets"`
	Storage StorageTuning `yaml:"storage"`
}

type PlayerTuning struct {
	Speed        float64 `yaml:"speed"`
	MineAnimStep float64 `yaml:"mine_anim_step"`
}

type MiningTuning struct {
	DurationMs int     `yaml:"duration_ms"`
	Reach      float64 `yaml:"reach"`
}

type BlockTuning struct {
	SpawnIntervalMs int          `yaml:"spawn_interval_ms"`
	SpawnAttempts   int          `yaml:"spawn_attempts"`
	MaxAlive        int          `yaml:"max_alive"`
	FrameStep       float64      `yaml:"frame_step"`
	DestroyDelayMs  int          `yaml:"destroy_delay_ms"`
	BrokenPolicy    BrokenPolicy `yaml:"broken_policy"`
	Animated        []string     `yaml:"animated"`
	Trees           bool         `yaml:"trees"`
}

type EnemyTuning struct {
	Enabled         bool    `yaml:"enabled"`
	Speed           float64 `yaml:"speed"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	SpawnAttempts   int     `yaml:"spawn_attempts"`
	MaxAlive        int     `yaml:"max_alive"`
}

type XPTuning struct {
	PerBlock  int `yaml:"per_block"`
	FirstNeed int `yaml:"first_need"`
	NeedStep  int `yaml:"need_step"`
}

type AssetsTuning struct {
	Dir string `yaml:"dir"`
}

type StorageTuning struct {
	DBPath string `yaml:"db_path"`
}

// MiningDuration возвращает длительность добычи.
func (t Tuning) MiningDuration() time.Duration {
	return time.Duration(t.Mining.DurationMs) * time.Millisecond
}

// DestroyDelay возвращает задержку удаления разрушенного блока.
func (t Tuning) DestroyDelay() time.Duration {
	return time.Duration(t.Blocks.DestroyDelayMs) * time.Millisecond
}

// BlockSpawnInterval возвращает период спавна блоков.
func (t Tuning) BlockSpawnInterval() time.Duration {
	return time.Duration(t.Blocks.SpawnIntervalMs) * time.Millisecond
}

// EnemySpawnInterval возвращает период спавна врагов.
func (t Tuning) EnemySpawnInterval() time.Duration {
	return time.Duration(t.Enemies.SpawnIntervalMs) * time.Millisecond
}

// IsAnimated сообщает, есть ли у вида блока анимация разрушения.
func (t Tuning) IsAnimated(kind string) bool {
	for _, k := range t.Blocks.Animated {
		if k == kind {
			return true
		}
	}
	return false
}

// Validate проверяет, что параметры имеют смысл.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %v", t.Player.Speed))
	}
	if t.Player.MineAnimStep <= 0 {
		errs = append(errs, fmt.Errorf("player.mine_anim_step must be positive, got %v", t.Player.MineAnimStep))
	}
	if t.Mining.Reach <= 0 {
		errs = append(errs, fmt.Errorf("mining.reach must be positive, got %v", t.Mining.Reach))
	}
	if t.Enemies.Enabled && t.Enemies.Speed <= 0 {
		errs = append(errs, fmt.Errorf("enemies.speed must be positive, got %v", t.Enemies.Speed))
	}
	for _, kind := range t.Blocks.Animated {
		if !slices.Contains(BlockKindNames, kind) {
			errs = append(errs, fmt.Errorf("blocks.animated: unknown block kind %q", kind))
		}
	}
	if t.Mining.DurationMs <= 0 {
		errs = append(errs, fmt.Errorf("mining.duration_ms must be positive, got %d", t.Mining.DurationMs))
	}
	if t.Blocks.FrameStep <= 0 {
		errs = append(errs, fmt.Errorf("blocks.frame_step must be positive, got %v", t.Blocks.FrameStep))
	}
	if t.Blocks.SpawnAttempts <= 0 || t.Enemies.SpawnAttempts <= 0 {
		errs = append(errs, errors.New("spawn_attempts must be positive"))
	}
	if t.Blocks.SpawnIntervalMs <= 0 || t.Enemies.SpawnIntervalMs <= 0 {
		errs = append(errs, errors.New("spawn_interval_ms must be positive"))
	}
	switch t.Blocks.BrokenPolicy {
	case BrokenRemove, BrokenKeep:
	default:
		errs = append(errs, fmt.Errorf("blocks.broken_policy must be %q or %q, got %q", BrokenRemove, BrokenKeep, t.Blocks.BrokenPolicy))
	}
	if t.XP.PerBlock < 0 || t.XP.FirstNeed <= 0 || t.XP.NeedStep < 0 {
		errs = append(errs, errors.New("xp values must be non-negative with a positive first_need"))
	}
	return errors.Join(errs...)
}
