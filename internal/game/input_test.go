package game

import "testing"

const (
	keyA Key = 65
	keyD Key = 68
	keyW Key = 87
	keyR Key = 82
	keyS Key = 32
)

func testBindings() Bindings {
	return Bindings{
		Left:    []Key{keyA},
		Right:   []Key{keyD},
		Jump:    []Key{keyW, keyS},
		Reset:   []Key{keyR},
		Confirm: []Key{keyS},
	}
}

func downSet(keys ...Key) func(Key) bool {
	set := make(map[Key]bool)
	for _, k := range keys {
		set[k] = true
	}
	return func(k Key) bool { return set[k] }
}

func TestKeyTrackerEdges(t *testing.T) {
	tr := NewKeyTracker(testBindings())

	frames := []struct {
		down                  []Key
		wantDown, wantPressed bool
		wantReleased          bool
	}{
		{down: nil, wantDown: false, wantPressed: false, wantReleased: false},
		{down: []Key{keyW}, wantDown: true, wantPressed: true, wantReleased: false},
		{down: []Key{keyW}, wantDown: true, wantPressed: false, wantReleased: false},
		{down: nil, wantDown: false, wantPressed: false, wantReleased: true},
		{down: nil, wantDown: false, wantPressed: false, wantReleased: false},
	}
	for i, f := range frames {
		tr.Update(downSet(f.down...))
		if got := tr.Down(keyW); got != f.wantDown {
			t.Errorf("frame %d: Down = %v, want %v", i, got, f.wantDown)
		}
		if got := tr.Pressed(keyW); got != f.wantPressed {
			t.Errorf("frame %d: Pressed = %v, want %v", i, got, f.wantPressed)
		}
		if got := tr.Released(keyW); got != f.wantReleased {
			t.Errorf("frame %d: Released = %v, want %v", i, got, f.wantReleased)
		}
	}
}

func TestKeyTrackerIgnoresUnboundKeys(t *testing.T) {
	tr := NewKeyTracker(testBindings())
	tr.Update(func(Key) bool { return true })
	if tr.Down(Key(999)) {
		t.Error("unbound key reported down")
	}
	if !tr.Down(keyA) {
		t.Error("bound key not reported down")
	}
}

func TestIntent(t *testing.T) {
	b := testBindings()
	tr := NewKeyTracker(b)

	tr.Update(downSet(keyA, keyS))
	in := tr.Intent(b)
	want := Intent{Left: true, Jump: true, Confirm: true}
	if in != want {
		t.Errorf("first frame intent = %+v, want %+v", in, want)
	}

	// Holding keeps movement but jump and confirm are edge triggered.
	tr.Update(downSet(keyA, keyS))
	in = tr.Intent(b)
	want = Intent{Left: true}
	if in != want {
		t.Errorf("held intent = %+v, want %+v", in, want)
	}

	tr.Update(downSet(keyD, keyR))
	in = tr.Intent(b)
	want = Intent{Right: true, Reset: true}
	if in != want {
		t.Errorf("third frame intent = %+v, want %+v", in, want)
	}
}
