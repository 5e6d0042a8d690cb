package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "PLATFORMER_"

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// WithEnv returns a copy of c with PLATFORMER_* overrides applied and validated.
// Recognized keys: DIFFICULTY, GRAVITY, TERMINAL_VELOCITY, MAX_JUMPS, SHOW_BOXES, SHOW_FPS.
func (c Config) WithEnv(lookup LookupFunc) (Config, error) {
	if v, ok := lookup(EnvPrefix + "DIFFICULTY"); ok {
		c.Difficulty = v
	}
	floats := []struct {
		key string
		dst *float32
	}{
		{"GRAVITY", &c.Physics.Gravity},
		{"TERMINAL_VELOCITY", &c.Physics.TerminalVelocity},
	}
	for _, f := range floats {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return c, fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = float32(n)
	}
	if v, ok := lookup(EnvPrefix + "MAX_JUMPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%sMAX_JUMPS: %w", EnvPrefix, err)
		}
		c.Player.MaxJumps = n
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{"SHOW_BOXES", &c.Debug.ShowBoxes},
		{"SHOW_FPS", &c.Debug.ShowFPS},
	}
	for _, b := range bools {
		v, ok := lookup(EnvPrefix + b.key)
		if !ok {
			continue
		}
		on, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("%s%s: %w", EnvPrefix, b.key, err)
		}
		*b.dst = on
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
