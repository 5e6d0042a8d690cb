package config

import (
	"fmt"
	"sort"
)

// Preset scales the base tuning for a difficulty level.
type Preset struct {
	Gravity   float32
	JumpForce float32
	MoveSpeed float32
	MaxJumps  int
}

var presets = map[string]Preset{
	"easy":   {Gravity: 0.8, JumpForce: 1.2, MoveSpeed: 1.1, MaxJumps: 3},
	"normal": {Gravity: 1, JumpForce: 1, MoveSpeed: 1, MaxJumps: 2},
	"hard":   {Gravity: 1.2, JumpForce: 0.9, MoveSpeed: 0.9, MaxJumps: 1},
}

// Difficulties lists the preset names in sorted order.
func Difficulties() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithDifficulty returns a copy of c with the named preset applied to its gravity,
// jump force, move speed and jump count. An empty name returns c unchanged.
func (c Config) WithDifficulty(name string) (Config, error) {
	if name == "" {
		return c, nil
	}
	p, ok := presets[name]
	if !ok {
		return c, fmt.Errorf("unknown difficulty %q (want one of %v)", name, Difficulties())
	}
	c.Physics.Gravity *= p.Gravity
	c.Player.JumpForce *= p.JumpForce
	c.Player.MoveSpeed *= p.MoveSpeed
	c.Player.MaxJumps = p.MaxJumps
	c.Difficulty = name
	return c, nil
}
