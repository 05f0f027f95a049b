package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	assert.Equal(t, DefaultTuning(), embeddedTuning())
	require.NoError(t, DefaultTuning().Validate())
}

func TestParseOverridesOnlyGivenFields(t *testing.T) {
	cfg, err := Parse([]byte("mining:\n  duration_ms: 1000\nblocks:\n  broken_policy: keep\n"))
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Mining.DurationMs)
	assert.Equal(t, BrokenKeep, cfg.Blocks.BrokenPolicy)
	assert.Equal(t, 5.0, cfg.Player.Speed, "untouched fields keep defaults")
	assert.Equal(t, 8, cfg.XP.FirstNeed)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero speed", "player:\n  speed: 0\n"},
		{"bad policy", "blocks:\n  broken_policy: explode\n"},
		{"zero duration", "mining:\n  duration_ms: 0\n"},
		{"zero reach", "mining:\n  reach: 0\n"},
		{"negative enemy speed", "enemies:\n  speed: -2\n"},
		{"zero mine animation step", "player:\n  mine_anim_step: 0\n"},
		{"unknown animated kind", "blocks:\n  animated: [iron, diamond]\n"},
		{"broken yaml", "player: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemies:\n  enabled: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Enemies.Enabled)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTuningHelpers(t *testing.T) {
	cfg := DefaultTuning()
	assert.Equal(t, "3s", cfg.MiningDuration().String())
	assert.Equal(t, "1.5s", cfg.DestroyDelay().String())
	assert.True(t, cfg.IsAnimated("tree"))
	assert.False(t, cfg.IsAnimated("diamond"))
}
