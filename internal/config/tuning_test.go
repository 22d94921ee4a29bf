package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tun := Default()

	assert.Equal(t, 3, tun.Enemy.HP)
	assert.Equal(t, 500.0, tun.Enemy.Speed)
	assert.Equal(t, 0.1, tun.Enemy.HitAlpha)
	assert.Equal(t, 100*time.Millisecond, tun.Enemy.FlashDuration)
	assert.Equal(t, 500*time.Millisecond, tun.Enemy.PursuitInterval)
	assert.Equal(t, 2*time.Second, tun.Enemy.PursuitStartDelay)
	assert.Equal(t, 200*time.Millisecond, tun.Effects.AttackDuration)
	assert.Equal(t, 150.0, tun.Projectile.Speed)
	assert.Equal(t, 50.0, tun.Npc.X)
	assert.Equal(t, 150.0, tun.Npc.Y)
	assert.Equal(t, "Hello there!", tun.Npc.Greeting)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	tun, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), tun)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("enemy:\n  hp: 5\n  pursuit_interval: 250ms\neffects:\n  attack_duration: 1s\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	tun, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, tun.Enemy.HP)
	assert.Equal(t, 250*time.Millisecond, tun.Enemy.PursuitInterval)
	assert.Equal(t, time.Second, tun.Effects.AttackDuration)
	// нетронутые ключи остаются по умолчанию
	assert.Equal(t, 500.0, tun.Enemy.Speed)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TREANT_ENEMY_SPEED", "320")

	tun, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 320.0, tun.Enemy.Speed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("enemy:\n  hp: 0\n  hit_alpha: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidTuning)
	assert.Contains(t, err.Error(), "enemy.hp")
	assert.Contains(t, err.Error(), "enemy.hit_alpha")
}

func TestLoad_ShippedConfigMatchesDefaults(t *testing.T) {
	tun, err := Load(filepath.Join("..", "..", "configs", "game.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), tun)
}
