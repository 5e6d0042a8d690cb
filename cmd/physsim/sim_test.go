package main

import (
	"bytes"
	"strings"
	"testing"

	"platformer/internal/config"
	"platformer/internal/logger"
)

func TestDropLands(t *testing.T) {
	var out bytes.Buffer
	if err := runDrop(&out, dropOptions{Height: 100, Frames: 240, DT: 1.0 / 60}); err != nil {
		t.Fatalf("runDrop: %v", err)
	}
	if !strings.Contains(out.String(), "landed on frame") || !strings.Contains(out.String(), "y=100.000") {
		t.Errorf("unexpected drop output:\n%s", out.String())
	}
}

func TestSweepCatchesThinWall(t *testing.T) {
	var out bytes.Buffer
	if err := runSweep(&out, sweepOptions{VX: 2000, DT: 0.1, WallX: 100, WallW: 10}); err != nil {
		t.Fatalf("runSweep: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "predict: miss") {
		t.Errorf("prediction should tunnel through the wall:\n%s", got)
	}
	if !strings.Contains(got, "sweep:   hit on right") {
		t.Errorf("sweep should hit the wall:\n%s", got)
	}
}

func TestBounceComesToRest(t *testing.T) {
	var out bytes.Buffer
	if err := runBounce(&out, bounceOptions{Height: 300, VX: 100, Restitution: 0.6, Friction: 0.1, Frames: 1200}); err != nil {
		t.Fatalf("runBounce: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "bounce 1 ") {
		t.Errorf("expected at least one bounce:\n%s", got)
	}
	if !strings.Contains(got, "rest on frame") {
		t.Errorf("expected the body to come to rest:\n%s", got)
	}
}

func TestBounceRejectsBadRestitution(t *testing.T) {
	if err := runBounce(&bytes.Buffer{}, bounceOptions{Restitution: 2}); err == nil {
		t.Error("expected an error for restitution above 1")
	}
}

func TestHeadlessRun(t *testing.T) {
	var out bytes.Buffer
	log := logger.New("")
	opts := headlessOptions{Frames: 120, Right: true, JumpEvery: 0}
	if err := runHeadless(config.Default(), nil, log, &out, opts); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if !strings.Contains(out.String(), "playing after 120 frames") {
		t.Errorf("unexpected summary: %s", out.String())
	}
	lines := log.Lines()
	if len(lines) == 0 || !strings.Contains(lines[0], "reset") {
		t.Errorf("expected a reset line first, got %q", lines)
	}
}

func TestHeadlessUnknownDifficulty(t *testing.T) {
	err := runHeadless(config.Default(), nil, logger.New(""), &bytes.Buffer{}, headlessOptions{Difficulty: "nightmare"})
	if err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestRegistryListsSubcommands(t *testing.T) {
	names := registry(&bytes.Buffer{}).Names()
	want := []string{"bounce", "drop", "run", "sweep"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}
