package core

import (
	"os"
	"testing"

	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/leveldata"
	"github.com/automoto/quai/shared/messages"
	"github.com/automoto/quai/shared/netcomponents"
	"github.com/automoto/quai/shared/protocol"
	"github.com/yohamta/donburi"
)

func TestMain(m *testing.M) {
	if err := protocol.RegisterComponents(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, points ...leveldata.SpawnPoint) *Server {
	t.Helper()
	layout := &leveldata.SpawnLayout{Name: "test", Points: points}
	for _, p := range points {
		if p.Wave+1 > layout.Waves {
			layout.Waves = p.Wave + 1
		}
	}
	return NewServer(20, "test", "", NewServerLevel(layout))
}

func join(t *testing.T, s *Server, id string) *PlayerPhysics {
	t.Helper()
	s.enqueue(func() { s.joinPlayer(id, nil, messages.JoinRequest{PlayerName: id}) })
	s.ProcessCommands()
	pp := s.players[id]
	if pp == nil {
		t.Fatalf("player %s did not join", id)
	}
	return pp
}

func playerState(s *Server, pp *PlayerPhysics) *netcomponents.NetPlayerStateData {
	return netcomponents.NetPlayerState.Get(s.world.Entry(pp.Entity))
}

func countNetEnemies(s *Server) int {
	n := 0
	netcomponents.NetEnemy.Each(s.world, func(*donburi.Entry) { n++ })
	return n
}

func TestServerSpawnsFirstWave(t *testing.T) {
	s := newTestServer(t,
		leveldata.SpawnPoint{Archetype: cfg.Normal, X: 0, Z: 100, Wave: 0},
		leveldata.SpawnPoint{Archetype: cfg.Boss, X: 0, Z: -200, Wave: 1},
	)

	if got := s.Enemies().Len(); got != 1 {
		t.Fatalf("enemies after start = %d, want 1", got)
	}

	join(t, s, "a")
	s.Step(0.05)

	if got := countNetEnemies(s); got != 1 {
		t.Errorf("mirrored enemies = %d, want 1", got)
	}
}

func TestServerAdvancesWaveWhenCleared(t *testing.T) {
	s := newTestServer(t,
		leveldata.SpawnPoint{Archetype: cfg.Normal, X: 0, Z: 100, Wave: 0},
		leveldata.SpawnPoint{Archetype: cfg.Sniper, X: 0, Z: -150, Wave: 1},
		leveldata.SpawnPoint{Archetype: cfg.Sniper, X: 10, Z: -150, Wave: 1},
	)
	join(t, s, "a")

	first := s.Enemies().Enemies()[0]
	if err := s.Enemies().Remove(first.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	s.Step(0.05)

	if got := s.Enemies().Len(); got != 2 {
		t.Fatalf("enemies after clearing wave 0 = %d, want 2", got)
	}
	s.Step(0.05)
	if got := countNetEnemies(s); got != 2 {
		t.Errorf("mirrored enemies = %d, want 2", got)
	}
}

func TestServerEnemiesDamageTarget(t *testing.T) {
	// NORMAL within attack range of the spawn point
	s := newTestServer(t, leveldata.SpawnPoint{Archetype: cfg.Normal, X: 2, Wave: 0})
	a := join(t, s, "a")
	b := join(t, s, "b")

	s.Step(0.05)

	if got := playerState(s, a).Health; got != cfg.Server.PlayerHealth-10 {
		t.Errorf("first player health = %d, want %d", got, cfg.Server.PlayerHealth-10)
	}
	if got := playerState(s, b).Health; got != cfg.Server.PlayerHealth {
		t.Errorf("second player health = %d, want untouched %d", got, cfg.Server.PlayerHealth)
	}
}

func TestServerPlayerMovement(t *testing.T) {
	s := newTestServer(t)
	pp := join(t, s, "a")

	s.enqueue(func() { s.applyInput("a", messages.PlayerInput{Sequence: 1, MoveX: 3, MoveZ: 0}) })
	s.Step(0.5)

	want := cfg.Server.PlayerSpeed * 0.5
	pos := netcomponents.NetPosition.Get(s.world.Entry(pp.Entity))
	if pos.X != want || pos.Z != 0 {
		t.Errorf("position = (%v, %v), want (%v, 0)", pos.X, pos.Z, want)
	}
	if got := playerState(s, pp).LastSequence; got != 1 {
		t.Errorf("LastSequence = %d, want 1", got)
	}

	// Stale input is ignored
	s.enqueue(func() { s.applyInput("a", messages.PlayerInput{Sequence: 0, MoveX: -1}) })
	s.ProcessCommands()
	if pp.MoveX != 1 {
		t.Errorf("MoveX = %v after stale input, want 1", pp.MoveX)
	}
}

func TestServerShotDamagesEnemy(t *testing.T) {
	s := newTestServer(t, leveldata.SpawnPoint{Archetype: cfg.Boss, X: 0, Z: 100, Wave: 0})
	pp := join(t, s, "a")

	tests := []struct {
		name string
		y    float64
		hp   int
	}{
		{"body", cfg.HitZone.BodyY, 1000 - cfg.Client.ShotDamage},
		{"head", cfg.HitZone.HeadY, 1000 - cfg.Client.ShotDamage - cfg.Client.HeadshotDamage},
		{"miss", 10, 1000 - cfg.Client.ShotDamage - cfg.Client.HeadshotDamage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.handleShot(pp, messages.Shot{X: 0, Y: tt.y, Z: 100})
			if got := s.Enemies().Enemies()[0].HP; got != tt.hp {
				t.Errorf("boss HP = %d, want %d", got, tt.hp)
			}
		})
	}
}

func TestServerLeaveRemovesPlayer(t *testing.T) {
	s := newTestServer(t)
	pp := join(t, s, "a")

	s.enqueue(func() { s.leavePlayer("a") })
	s.ProcessCommands()

	if s.PlayerCount() != 0 {
		t.Errorf("PlayerCount = %d, want 0", s.PlayerCount())
	}
	if s.world.Valid(pp.Entity) {
		t.Error("player entity still in world")
	}
}
