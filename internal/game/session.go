package game

import (
	"fmt"

	"github.com/chewxy/math32"

	"platformer/internal/config"
	"platformer/internal/entities"
	"platformer/internal/level"
	"platformer/internal/physics"
)

// State is the session's top-level mode.
type State uint8

const (
	// Playing runs input and physics every frame.
	Playing State = iota
	// GameOver waits for jump or confirm to restart.
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

// Logger receives one line per notable session event.
type Logger interface {
	Log(line string)
}

type nopLogger struct{}

func (nopLogger) Log(string) {}

// Session runs one player through a level: input, physics, pickups, score and
// the fall-out rule.
type Session struct {
	State        State
	Player       *entities.Player
	Level        *level.Level
	World        *physics.World
	TimeSurvived float32
	Collected    int
	Score        int

	cfg       config.Config
	pristine  *level.Level
	obstacles []*physics.Body
	log       Logger
}

// NewSession starts a session on a private copy of lvl. log may be nil.
func NewSession(cfg config.Config, lvl *level.Level, log Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	pristine, err := lvl.Clone()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = nopLogger{}
	}
	s := &Session{
		World:    physics.NewWorld(cfg.PhysicsParams()),
		cfg:      cfg,
		pristine: pristine,
		log:      log,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset restores the level, respawns the player and zeroes the score.
func (s *Session) Reset() error {
	lvl, err := s.pristine.Clone()
	if err != nil {
		return err
	}
	s.Level = lvl
	s.obstacles = entities.Bodies(lvl.Platforms)
	s.Player = entities.NewPlayer(lvl.Spawn[0], lvl.Spawn[1], s.cfg.PlayerTuning())
	s.State = Playing
	s.TimeSurvived = 0
	s.Collected = 0
	s.Score = 0
	s.logf("reset: spawn at (%.0f, %.0f)", lvl.Spawn[0], lvl.Spawn[1])
	return nil
}

// Update advances the session by dt seconds with this frame's intent.
// A non-positive, NaN or infinite dt skips the frame.
func (s *Session) Update(dt float32, in Intent) error {
	switch s.State {
	case GameOver:
		if in.Jump || in.Confirm {
			return s.Reset()
		}
		return nil
	case Playing:
		if in.Reset {
			return s.Reset()
		}
		if !(dt > 0) || math32.IsInf(dt, 0) {
			return nil
		}
		s.play(dt, in)
	}
	return nil
}

func (s *Session) play(dt float32, in Intent) {
	p := s.Player
	if in.Left {
		p.MoveLeft()
	}
	if in.Right {
		p.MoveRight()
	}
	if in.Jump && p.Jump() {
		s.logf("jump %d/%d", p.JumpsUsed(), p.Tuning.MaxJumps)
	}

	s.TimeSurvived += dt
	res := s.World.Step(p.Body, s.obstacles, dt)
	p.Update()
	if s.cfg.World.ClampLeft {
		s.World.CheckBounds(p.Body)
	}
	if res.Landed {
		p.Land()
		s.logf("landed at (%.0f, %.0f)", p.Body.Position[0], p.Body.Position[1])
	}
	if res.LeftGround {
		s.logf("left ground")
	}

	for _, c := range s.Level.Collectibles {
		if v := c.CheckCollection(p.Body); v > 0 {
			s.Collected += v
			s.logf("collected %s (+%d)", c.Kind, v)
		}
	}

	s.Score = int(p.Body.Position[0]*s.cfg.Scoring.DistanceMultiplier) +
		int(s.TimeSurvived)*s.cfg.Scoring.TimeMultiplier +
		s.Collected

	if s.World.FellBelow(p.Body, s.cfg.DeathThreshold()) {
		s.State = GameOver
		s.logf("game over: fell at y=%.0f, score %d", p.Body.Position[1], s.Score)
	}
}

func (s *Session) logf(format string, args ...any) {
	s.log.Log(fmt.Sprintf(format, args...))
}

// Obstacles returns the platform bodies in collision order.
func (s *Session) Obstacles() []*physics.Body {
	return s.obstacles
}

// Config returns the configuration the session was started with.
func (s *Session) Config() config.Config {
	return s.cfg
}
