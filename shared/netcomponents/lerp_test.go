package netcomponents

import (
	"math"
	"testing"

	"github.com/automoto/quai/shared/netconfig"
)

func TestLerpNetPosition(t *testing.T) {
	got := LerpNetPosition(NetPositionData{0, 0, 0}, NetPositionData{10, 2, -4}, 0.25)
	want := NetPositionData{2.5, 0.5, -1}
	if *got != want {
		t.Errorf("LerpNetPosition = %+v, want %+v", *got, want)
	}
}

func TestLerpNetEnemy(t *testing.T) {
	from := NetEnemyData{EnemyID: 3, X: 0, Yaw: 0, State: netconfig.StatePursuing, Health: 100, MaxHealth: 100}
	to := NetEnemyData{EnemyID: 3, X: 8, Yaw: math.Pi / 2, State: netconfig.StateAttacking, Health: 80, MaxHealth: 100}

	got := LerpNetEnemy(from, to, 0.5)
	if got.X != 4 {
		t.Errorf("X = %v, want 4", got.X)
	}
	if math.Abs(got.Yaw-math.Pi/4) > 1e-9 {
		t.Errorf("Yaw = %v, want pi/4", got.Yaw)
	}
	// Discrete fields snap to the target
	if got.State != netconfig.StateAttacking || got.Health != 80 {
		t.Errorf("State/Health = %v/%d, want Attacking/80", got.State, got.Health)
	}
}

func TestLerpAngleWraps(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"plain", 0, 1, 0.5},
		{"across pi", 3, -3, 3 + (2*math.Pi-6)/2},
		{"across zero", -0.2, 0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lerpAngle(tt.from, tt.to, 0.5); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("lerpAngle(%v, %v, 0.5) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
