package game

// Key is a device key code. The renderer supplies the real codes.
type Key int32

// Intent is what the player asked for this frame.
type Intent struct {
	Left, Right bool // held
	Jump        bool // pressed this frame
	Reset       bool // pressed this frame
	Confirm     bool // pressed this frame
}

// Bindings maps intents to keys. Any key in a list triggers the intent.
type Bindings struct {
	Left, Right, Jump, Reset, Confirm []Key
}

// keys returns every bound key once, in binding order.
func (b Bindings) keys() []Key {
	seen := make(map[Key]bool)
	var out []Key
	for _, list := range [][]Key{b.Left, b.Right, b.Jump, b.Reset, b.Confirm} {
		for _, k := range list {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

// KeyTracker remembers which keys were down on the current and previous frame,
// so presses and releases can be told apart from holds.
type KeyTracker struct {
	watch    []Key
	current  map[Key]bool
	previous map[Key]bool
}

// NewKeyTracker watches every key in b.
func NewKeyTracker(b Bindings) *KeyTracker {
	return &KeyTracker{
		watch:    b.keys(),
		current:  make(map[Key]bool),
		previous: make(map[Key]bool),
	}
}

// Update samples the watched keys once per frame. isDown reports the live key state.
func (t *KeyTracker) Update(isDown func(Key) bool) {
	t.previous, t.current = t.current, t.previous
	clear(t.current)
	for _, k := range t.watch {
		if isDown(k) {
			t.current[k] = true
		}
	}
}

// Down reports whether k is held this frame.
func (t *KeyTracker) Down(k Key) bool {
	return t.current[k]
}

// Pressed reports whether k went down this frame.
func (t *KeyTracker) Pressed(k Key) bool {
	return t.current[k] && !t.previous[k]
}

// Released reports whether k came up this frame.
func (t *KeyTracker) Released(k Key) bool {
	return !t.current[k] && t.previous[k]
}

func (t *KeyTracker) any(keys []Key, fn func(Key) bool) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}

// Intent folds the tracked key states into this frame's intent.
func (t *KeyTracker) Intent(b Bindings) Intent {
	return Intent{
		Left:    t.any(b.Left, t.Down),
		Right:   t.any(b.Right, t.Down),
		Jump:    t.any(b.Jump, t.Pressed),
		Reset:   t.any(b.Reset, t.Pressed),
		Confirm: t.any(b.Confirm, t.Pressed),
	}
}
