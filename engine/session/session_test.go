package session

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/1siamBot/cosmowar/engine/config"
	"github.com/1siamBot/cosmowar/engine/core"
)

func newTestSession(t *testing.T, level config.Level, seed int64) *Session {
	t.Helper()
	s, err := New(level, config.DefaultRules(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewBuildsField(t *testing.T) {
	s := newTestSession(t, config.LevelEasy, 1)

	if len(s.Structures()) != 5 {
		t.Fatalf("%d structures, want base + 4 buildings", len(s.Structures()))
	}
	base := s.Base()
	if base == nil || base.Name != "base" || base.Health.Current != 2000 {
		t.Fatalf("base %+v", base)
	}
	if base.Pos != (core.Vec{X: 0, Y: -300}) {
		t.Errorf("base at %v", base.Pos)
	}
	for _, st := range s.Structures()[1:] {
		if st.Health.Current != 1000 {
			t.Errorf("%s starts with %d health", st.Name, st.Health.Current)
		}
	}
	if len(s.Friendly()) != 0 || len(s.Enemy()) != 0 {
		t.Errorf("projectiles before the first tick")
	}
	if s.State() != StateRunning {
		t.Errorf("new session not running")
	}
}

func TestNewFailsFast(t *testing.T) {
	rules := config.DefaultRules()
	rules.EnemyCaps[config.LevelHard] = -3
	if _, err := New(config.LevelEasy, rules, rand.New(rand.NewSource(1))); !errors.Is(err, config.ErrInvalidRules) {
		t.Errorf("negative cap accepted: %v", err)
	}
	if _, err := New("9", config.DefaultRules(), rand.New(rand.NewSource(1))); !errors.Is(err, config.ErrUnknownLevel) {
		t.Errorf("unknown level accepted: %v", err)
	}
	if _, err := New(config.LevelEasy, config.DefaultRules(), nil); err == nil {
		t.Errorf("nil random source accepted")
	}
}

func TestFriendlyMissileLifecycle(t *testing.T) {
	s := newTestSession(t, config.LevelEasy, 42)
	p, err := s.FireFriendly(0, 0)
	if err != nil {
		t.Fatalf("FireFriendly: %v", err)
	}
	if p.Origin != (core.Vec{X: 0, Y: -270}) {
		t.Fatalf("launched from %v", p.Origin)
	}

	var sawExploding bool
	for i := 1; i <= 46; i++ {
		if !s.Tick() {
			t.Fatalf("session ended on tick %d", i)
		}
		if p.State == core.StateExploding {
			sawExploding = true
		}
		if len(s.Friendly()) != 1 {
			t.Fatalf("tick %d: friendly removed early (state %s)", i, p.State)
		}
	}
	if !sawExploding {
		t.Fatalf("missile never exploded")
	}

	s.Tick()
	if p.State != core.StateSpent {
		t.Errorf("state %s after 47 ticks, want spent", p.State)
	}
	if len(s.Friendly()) != 0 {
		t.Errorf("spent missile still in the friendly collection")
	}
}

func TestSpawnCapPerLevel(t *testing.T) {
	for level, cap := range config.EnemyCaps {
		s := newTestSession(t, level, 5)
		for i := 0; i < 400; i++ {
			s.Tick()
			if n := len(s.Enemy()); n > cap {
				t.Fatalf("level %s: %d enemies in flight, cap %d", level, n, cap)
			}
			if s.IsOver() {
				break
			}
		}
	}
}

func TestTerminationOnExactTick(t *testing.T) {
	s := newTestSession(t, config.LevelHard, 3)
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	s.Base().Damage(s.Base().Health.Current + 1)
	if s.Base().Health.Current != -1 {
		t.Fatalf("base health %d", s.Base().Health.Current)
	}

	tickBefore := s.TickCount()
	if s.Tick() {
		t.Fatalf("tick reported running with base at -1")
	}
	if !s.IsOver() || s.TickCount() != tickBefore+1 {
		t.Fatalf("over=%v tick=%d", s.IsOver(), s.TickCount())
	}

	type snap struct {
		pos    core.Vec
		state  core.ProjectileState
		radius int
	}
	var before []snap
	for _, p := range append(append([]*core.Projectile{}, s.Friendly()...), s.Enemy()...) {
		before = append(before, snap{p.Pos, p.State, p.Radius})
	}
	health := make([]int, len(s.Structures()))
	for i, st := range s.Structures() {
		health[i] = st.Health.Current
	}

	for i := 0; i < 10; i++ {
		if s.Tick() {
			t.Fatalf("finished session ticked")
		}
	}

	var after []snap
	for _, p := range append(append([]*core.Projectile{}, s.Friendly()...), s.Enemy()...) {
		after = append(after, snap{p.Pos, p.State, p.Radius})
	}
	if len(after) != len(before) {
		t.Fatalf("projectile count changed after game over")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("projectile %d moved after game over: %+v -> %+v", i, before[i], after[i])
		}
	}
	for i, st := range s.Structures() {
		if st.Health.Current != health[i] {
			t.Errorf("%s health changed after game over", st.Name)
		}
	}
	if s.TickCount() != tickBefore+1 {
		t.Errorf("tick count advanced after game over")
	}
	if _, err := s.FireFriendly(0, 0); !errors.Is(err, ErrSessionOver) {
		t.Errorf("fire after game over: %v", err)
	}
}

func TestUndefendedBaseFalls(t *testing.T) {
	s := newTestSession(t, config.LevelHard, 11)
	var ended bool
	s.World.Events.On(core.EvtGameEnd, func(core.Event) { ended = true })

	for i := 0; i < 100000 && s.Tick(); i++ {
	}
	if !s.IsOver() || !ended {
		t.Fatalf("base never fell")
	}
	if s.Base().Health.Current >= 0 {
		t.Errorf("game over with base health %d", s.Base().Health.Current)
	}
}

func TestFireFriendlyRejectsNonFinite(t *testing.T) {
	s := newTestSession(t, config.LevelEasy, 1)
	if _, err := s.FireFriendly(math.NaN(), 0); !errors.Is(err, core.ErrNonFinite) {
		t.Errorf("expected ErrNonFinite, got %v", err)
	}
	if len(s.Friendly()) != 0 {
		t.Errorf("rejected missile was launched")
	}
}

func TestSameSeedSameGame(t *testing.T) {
	a := newTestSession(t, config.LevelMedium, 99)
	b := newTestSession(t, config.LevelMedium, 99)
	for i := 0; i < 300; i++ {
		a.Tick()
		b.Tick()
	}
	if len(a.Enemy()) != len(b.Enemy()) {
		t.Fatalf("enemy counts differ: %d vs %d", len(a.Enemy()), len(b.Enemy()))
	}
	for i := range a.Enemy() {
		if a.Enemy()[i].Pos != b.Enemy()[i].Pos {
			t.Errorf("enemy %d diverged: %v vs %v", i, a.Enemy()[i].Pos, b.Enemy()[i].Pos)
		}
	}
	for i := range a.Structures() {
		if a.Structures()[i].Health != b.Structures()[i].Health {
			t.Errorf("%s health diverged", a.Structures()[i].Name)
		}
	}
}
