package level

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"platformer/internal/entities"
)

// GroundHeight is the thickness of the ground strip in the default layout.
const GroundHeight = 40

// Level is the static layout a session plays: spawn point, platforms in
// collision order, and collectibles.
type Level struct {
	Spawn        mgl32.Vec2
	Platforms    []*entities.Platform
	Collectibles []*entities.Collectible
}

// Default builds the stock layout for a screen of the given size: a ground strip
// along the bottom, three stepped platforms and six pickups.
func Default(screenW, screenH float32) *Level {
	h := screenH
	return &Level{
		Spawn: mgl32.Vec2{100, h - 100},
		Platforms: []*entities.Platform{
			entities.NewGround(0, h-GroundHeight, screenW, GroundHeight),
			entities.NewPlatform(200, h-120, 200, 20),
			entities.NewPlatform(500, h-200, 150, 20),
			entities.NewPlatform(750, h-280, 200, 20),
		},
		Collectibles: []*entities.Collectible{
			entities.NewCollectible(150, h-160, entities.Coin),
			entities.NewCollectible(300, h-160, entities.Coin),
			entities.NewCollectible(550, h-240, entities.Gem),
			entities.NewCollectible(800, h-320, entities.Coin),
			entities.NewCollectible(900, h-320, entities.PowerUp),
			entities.NewCollectible(1200, h-80, entities.Coin),
		},
	}
}

// Clone returns a deep copy, so a session can mutate bodies and collected flags
// and still restore the original layout.
func (l *Level) Clone() (*Level, error) {
	out := &Level{}
	if err := copier.CopyWithOption(out, l, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("failed to clone level: %w", err)
	}
	return out, nil
}

// file is the YAML shape of a level.
type file struct {
	Spawn        point            `yaml:"spawn"`
	Platforms    []platformDef    `yaml:"platforms"`
	Collectibles []collectibleDef `yaml:"collectibles,omitempty"`
}

type point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

type platformDef struct {
	Kind string  `yaml:"kind,omitempty"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	W    float32 `yaml:"w"`
	H    float32 `yaml:"h"`
}

type collectibleDef struct {
	Kind string  `yaml:"kind"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
}

// Load reads a YAML level file. Every platform needs a positive, finite size.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// Parse decodes a level from YAML bytes.
func Parse(data []byte) (*Level, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if len(f.Platforms) == 0 {
		return nil, fmt.Errorf("level has no platforms")
	}
	if !finite(f.Spawn.X) || !finite(f.Spawn.Y) {
		return nil, fmt.Errorf("spawn must be finite, got (%v, %v)", f.Spawn.X, f.Spawn.Y)
	}

	lvl := &Level{Spawn: mgl32.Vec2{f.Spawn.X, f.Spawn.Y}}
	for i, d := range f.Platforms {
		kind, err := entities.ParsePlatformKind(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("platforms[%d]: %w", i, err)
		}
		if !finite(d.X) || !finite(d.Y) {
			return nil, fmt.Errorf("platforms[%d]: position must be finite", i)
		}
		if !finite(d.W) || !finite(d.H) || d.W <= 0 || d.H <= 0 {
			return nil, fmt.Errorf("platforms[%d]: size must be positive, got %vx%v", i, d.W, d.H)
		}
		p := entities.NewPlatform(d.X, d.Y, d.W, d.H)
		p.Kind = kind
		lvl.Platforms = append(lvl.Platforms, p)
	}
	for i, d := range f.Collectibles {
		kind, err := entities.ParseCollectibleKind(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("collectibles[%d]: %w", i, err)
		}
		if !finite(d.X) || !finite(d.Y) {
			return nil, fmt.Errorf("collectibles[%d]: position must be finite", i)
		}
		lvl.Collectibles = append(lvl.Collectibles, entities.NewCollectible(d.X, d.Y, kind))
	}
	return lvl, nil
}

// Save writes lvl to path as YAML, creating the parent directory if needed.
func Save(path string, lvl *Level) error {
	f := file{Spawn: point{X: lvl.Spawn[0], Y: lvl.Spawn[1]}}
	for _, p := range lvl.Platforms {
		b := p.Body
		f.Platforms = append(f.Platforms, platformDef{
			Kind: p.Kind.String(),
			X:    b.Position[0],
			Y:    b.Position[1],
			W:    b.Size[0],
			H:    b.Size[1],
		})
	}
	for _, c := range lvl.Collectibles {
		f.Collectibles = append(f.Collectibles, collectibleDef{
			Kind: c.Kind.String(),
			X:    c.Body.Position[0],
			Y:    c.Body.Position[1],
		})
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
