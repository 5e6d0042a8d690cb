package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"platformer/internal/entities"
	"platformer/internal/physics"
)

// DefaultPath is where the game looks for its config, relative to the working directory.
const DefaultPath = "config/platformer.yaml"

// Config holds every tunable the game reads at startup.
type Config struct {
	Physics    PhysicsConfig `yaml:"physics"`
	Player     PlayerConfig  `yaml:"player"`
	World      WorldConfig   `yaml:"world"`
	Scoring    ScoringConfig `yaml:"scoring"`
	Debug      DebugConfig   `yaml:"debug"`
	Difficulty string        `yaml:"difficulty,omitempty"`
}

// PhysicsConfig mirrors physics.Params.
type PhysicsConfig struct {
	Gravity          float32 `yaml:"gravity"`
	TerminalVelocity float32 `yaml:"terminalVelocity"`
	Friction         float32 `yaml:"friction"`
	Tolerance        float32 `yaml:"tolerance"`
	Restitution      float32 `yaml:"restitution"`
}

// PlayerConfig mirrors entities.PlayerTuning.
type PlayerConfig struct {
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	MoveSpeed float32 `yaml:"moveSpeed"`
	JumpForce float32 `yaml:"jumpForce"`
	MaxJumps  int     `yaml:"maxJumps"`
	Damping   float32 `yaml:"damping"`
	RestSpeed float32 `yaml:"restSpeed"`
}

// WorldConfig describes the play field and the fall-out rule.
type WorldConfig struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	TargetFPS    int     `yaml:"targetFPS"`
	DeathMargin  float32 `yaml:"deathMargin"` // how far below the screen the player may fall
	ClampLeft    bool    `yaml:"clampLeft"`
}

// ScoringConfig weights distance and survival time.
type ScoringConfig struct {
	DistanceMultiplier float32 `yaml:"distanceMultiplier"`
	TimeMultiplier     int     `yaml:"timeMultiplier"`
}

// DebugConfig toggles overlays. All are read by the renderer only.
type DebugConfig struct {
	ShowFPS       bool `yaml:"showFPS"`
	ShowMemAlloc  bool `yaml:"showMemAlloc"`
	ShowBoxes     bool `yaml:"showBoxes"`
	ShowVelocity  bool `yaml:"showVelocity"`
	ShowPlayerPos bool `yaml:"showPlayerPos"`
}

// Default returns the stock configuration.
func Default() Config {
	p := physics.DefaultParams()
	t := entities.DefaultPlayerTuning()
	return Config{
		Physics: PhysicsConfig{
			Gravity:          p.Gravity,
			TerminalVelocity: p.TerminalVelocity,
			Friction:         p.Friction,
			Tolerance:        p.Tolerance,
			Restitution:      p.Restitution,
		},
		Player: PlayerConfig{
			Width:     t.Width,
			Height:    t.Height,
			MoveSpeed: t.MoveSpeed,
			JumpForce: t.JumpForce,
			MaxJumps:  t.MaxJumps,
			Damping:   t.Damping,
			RestSpeed: t.RestSpeed,
		},
		World: WorldConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			TargetFPS:    60,
			DeathMargin:  100,
			ClampLeft:    true,
		},
		Scoring: ScoringConfig{
			DistanceMultiplier: 0.1,
			TimeMultiplier:     10,
		},
		Debug: DebugConfig{
			ShowFPS:       true,
			ShowVelocity:  true,
			ShowPlayerPos: true,
		},
	}
}

// Load reads the YAML config at path on top of Default, so missing keys keep their
// defaults. A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that every value is usable by the simulation.
func (c Config) Validate() error {
	if err := positive("physics.gravity", c.Physics.Gravity); err != nil {
		return err
	}
	if err := positive("physics.terminalVelocity", c.Physics.TerminalVelocity); err != nil {
		return err
	}
	if err := unit("physics.friction", c.Physics.Friction); err != nil {
		return err
	}
	if err := unit("physics.restitution", c.Physics.Restitution); err != nil {
		return err
	}
	if !finite(c.Physics.Tolerance) || c.Physics.Tolerance < 0 {
		return fmt.Errorf("physics.tolerance must be >= 0, got %v", c.Physics.Tolerance)
	}
	if err := positive("player.width", c.Player.Width); err != nil {
		return err
	}
	if err := positive("player.height", c.Player.Height); err != nil {
		return err
	}
	if !finite(c.Player.MoveSpeed) || c.Player.MoveSpeed < 0 {
		return fmt.Errorf("player.moveSpeed must be >= 0, got %v", c.Player.MoveSpeed)
	}
	if !finite(c.Player.JumpForce) || c.Player.JumpForce > 0 {
		return fmt.Errorf("player.jumpForce must be <= 0 (up is negative), got %v", c.Player.JumpForce)
	}
	if c.Player.MaxJumps < 0 {
		return fmt.Errorf("player.maxJumps must be >= 0, got %d", c.Player.MaxJumps)
	}
	if err := unit("player.damping", c.Player.Damping); err != nil {
		return err
	}
	if c.World.ScreenWidth <= 0 || c.World.ScreenHeight <= 0 {
		return fmt.Errorf("world screen size must be positive, got %dx%d", c.World.ScreenWidth, c.World.ScreenHeight)
	}
	if c.World.TargetFPS <= 0 {
		return fmt.Errorf("world.targetFPS must be positive, got %d", c.World.TargetFPS)
	}
	if c.Difficulty != "" {
		if _, ok := presets[c.Difficulty]; !ok {
			return fmt.Errorf("unknown difficulty %q", c.Difficulty)
		}
	}
	return nil
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func positive(field string, v float32) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", field, v)
	}
	return nil
}

func unit(field string, v float32) error {
	if !finite(v) || v < 0 || v > 1 {
		return fmt.Errorf("%s must be within [0, 1], got %v", field, v)
	}
	return nil
}

// PhysicsParams converts the physics section for physics.NewWorld.
func (c Config) PhysicsParams() physics.Params {
	return physics.Params{
		Gravity:          c.Physics.Gravity,
		TerminalVelocity: c.Physics.TerminalVelocity,
		Friction:         c.Physics.Friction,
		Tolerance:        c.Physics.Tolerance,
		Restitution:      c.Physics.Restitution,
	}
}

// PlayerTuning converts the player section for entities.NewPlayer.
func (c Config) PlayerTuning() entities.PlayerTuning {
	return entities.PlayerTuning{
		Width:     c.Player.Width,
		Height:    c.Player.Height,
		MoveSpeed: c.Player.MoveSpeed,
		JumpForce: c.Player.JumpForce,
		MaxJumps:  c.Player.MaxJumps,
		Damping:   c.Player.Damping,
		RestSpeed: c.Player.RestSpeed,
	}
}

// DeathThreshold is the y past which the player counts as fallen out of the world.
func (c Config) DeathThreshold() float32 {
	return float32(c.World.ScreenHeight) + c.World.DeathMargin
}
