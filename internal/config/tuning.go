package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Tuning: игровые параметры, которые можно переопределить YAML-файлом
// или переменными окружения TREANT_*.
type Tuning struct {
	Enemy      EnemyTuning      `mapstructure:"enemy"`
	Player     PlayerTuning     `mapstructure:"player"`
	Projectile ProjectileTuning `mapstructure:"projectile"`
	Effects    EffectsTuning    `mapstructure:"effects"`
	Npc        NpcTuning        `mapstructure:"npc"`
}

type EnemyTuning struct {
	HP                int           `mapstructure:"hp"`
	Speed             float64       `mapstructure:"speed"`
	SpawnX            float64       `mapstructure:"spawn_x"`
	SpawnY            float64       `mapstructure:"spawn_y"`
	HitAlpha          float64       `mapstructure:"hit_alpha"`
	FlashDuration     time.Duration `mapstructure:"flash_duration"`
	PursuitInterval   time.Duration `mapstructure:"pursuit_interval"`
	PursuitStartDelay time.Duration `mapstructure:"pursuit_start_delay"`
	HitboxSize        float64       `mapstructure:"hitbox_size"`
}

type PlayerTuning struct {
	HP              int           `mapstructure:"hp"`
	Speed           float64       `mapstructure:"speed"`
	SpawnX          float64       `mapstructure:"spawn_x"`
	SpawnY          float64       `mapstructure:"spawn_y"`
	Invulnerability time.Duration `mapstructure:"invulnerability"`
	ReloadDuration  time.Duration `mapstructure:"reload_duration"`
	HitboxSize      float64       `mapstructure:"hitbox_size"`
}

type ProjectileTuning struct {
	Speed      float64       `mapstructure:"speed"`
	Lifetime   time.Duration `mapstructure:"lifetime"`
	HitboxSize float64       `mapstructure:"hitbox_size"`
}

type EffectsTuning struct {
	AttackDuration time.Duration `mapstructure:"attack_duration"`
}

type NpcTuning struct {
	X          float64 `mapstructure:"x"`
	Y          float64 `mapstructure:"y"`
	Greeting   string  `mapstructure:"greeting"`
	HitboxSize float64 `mapstructure:"hitbox_size"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("enemy.hp", 3)
	v.SetDefault("enemy.speed", 500.0)
	v.SetDefault("enemy.spawn_x", 500.0)
	v.SetDefault("enemy.spawn_y", 400.0)
	v.SetDefault("enemy.hit_alpha", 0.1)
	v.SetDefault("enemy.flash_duration", "100ms")
	v.SetDefault("enemy.pursuit_interval", "500ms")
	v.SetDefault("enemy.pursuit_start_delay", "2s")
	v.SetDefault("enemy.hitbox_size", 28.0)

	v.SetDefault("player.hp", 3)
	v.SetDefault("player.speed", 160.0)
	v.SetDefault("player.spawn_x", 120.0)
	v.SetDefault("player.spawn_y", 120.0)
	v.SetDefault("player.invulnerability", "1s")
	v.SetDefault("player.reload_duration", "500ms")
	v.SetDefault("player.hitbox_size", 16.0)

	v.SetDefault("projectile.speed", 150.0)
	v.SetDefault("projectile.lifetime", "2s")
	v.SetDefault("projectile.hitbox_size", 6.0)

	v.SetDefault("effects.attack_duration", "200ms")

	v.SetDefault("npc.x", 50.0)
	v.SetDefault("npc.y", 150.0)
	v.SetDefault("npc.greeting", "Hello there!")
	v.SetDefault("npc.hitbox_size", 16.0)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TREANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default возвращает параметры по умолчанию (с учётом переменных окружения).
func Default() *Tuning {
	t, err := decode(newViper())
	if err != nil {
		// Значения по умолчанию зашиты в код и обязаны проходить проверку.
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return t
}

// Load читает YAML-файл поверх значений по умолчанию. Пустой path: только умолчания и окружение.
func Load(path string) (*Tuning, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Tuning, error) {
	var t Tuning
	if err := v.Unmarshal(&t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

var ErrInvalidTuning = errors.New("invalid tuning")

// Validate проверяет значения, без которых ядро не может работать.
func (t *Tuning) Validate() error {
	var problems []string
	if t.Enemy.HP <= 0 {
		problems = append(problems, "enemy.hp must be positive")
	}
	if t.Enemy.Speed < 0 {
		problems = append(problems, "enemy.speed must not be negative")
	}
	if t.Enemy.HitAlpha < 0 || t.Enemy.HitAlpha > 1 {
		problems = append(problems, "enemy.hit_alpha must be within [0,1]")
	}
	if t.Enemy.PursuitInterval <= 0 {
		problems = append(problems, "enemy.pursuit_interval must be positive")
	}
	if t.Enemy.PursuitStartDelay < 0 {
		problems = append(problems, "enemy.pursuit_start_delay must not be negative")
	}
	if t.Player.HP <= 0 {
		problems = append(problems, "player.hp must be positive")
	}
	if t.Player.ReloadDuration < 0 || t.Player.Invulnerability < 0 {
		problems = append(problems, "player timings must not be negative")
	}
	if t.Projectile.Speed <= 0 {
		problems = append(problems, "projectile.speed must be positive")
	}
	if t.Projectile.Lifetime <= 0 {
		problems = append(problems, "projectile.lifetime must be positive")
	}
	if t.Effects.AttackDuration < 0 || t.Enemy.FlashDuration < 0 {
		problems = append(problems, "effect durations must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTuning, strings.Join(problems, "; "))
	}
	return nil
}
