package entities

import (
	"fmt"
	"strings"

	"platformer/internal/physics"
)

// CollectibleSize is the edge length of every collectible.
const CollectibleSize = 16

// CollectibleKind selects the value of a collectible.
type CollectibleKind uint8

const (
	Coin CollectibleKind = iota
	Gem
	PowerUp
)

var collectibleKinds = [...]struct {
	name  string
	value int
}{
	Coin:    {"coin", 10},
	Gem:     {"gem", 50},
	PowerUp: {"powerup", 100},
}

func (k CollectibleKind) String() string {
	if int(k) < len(collectibleKinds) {
		return collectibleKinds[k].name
	}
	return fmt.Sprintf("CollectibleKind(%d)", k)
}

// Value is the score awarded for picking up this kind.
func (k CollectibleKind) Value() int {
	if int(k) < len(collectibleKinds) {
		return collectibleKinds[k].value
	}
	return 0
}

// ParseCollectibleKind maps "coin", "gem" or "powerup" to a kind.
func ParseCollectibleKind(s string) (CollectibleKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, k := range collectibleKinds {
		if k.name == s {
			return CollectibleKind(i), nil
		}
	}
	return Coin, fmt.Errorf("unknown collectible kind %q", s)
}

// Collectible is a pickup the player collects by overlapping it.
type Collectible struct {
	Body      *physics.Body
	Kind      CollectibleKind
	Collected bool
}

// NewCollectible places a collectible of the given kind at (x, y).
func NewCollectible(x, y float32, kind CollectibleKind) *Collectible {
	return &Collectible{
		Body: physics.NewBody(x, y, CollectibleSize, CollectibleSize),
		Kind: kind,
	}
}

// Collect marks the collectible taken and returns its value, or 0 if it already was.
func (c *Collectible) Collect() int {
	if c.Collected {
		return 0
	}
	c.Collected = true
	return c.Kind.Value()
}

// CheckCollection collects the item if body overlaps it.
func (c *Collectible) CheckCollection(body *physics.Body) int {
	if c.Collected || !c.Body.Overlaps(body) {
		return 0
	}
	return c.Collect()
}
