// Package leveldata parses arena spawn layouts from TMX files.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

// SpawnLayout lists the enemy spawn points of an arena, grouped in waves.
type SpawnLayout struct {
	Name   string
	Points []SpawnPoint
	Waves  int // number of distinct waves, waves are numbered from 0
}

// SpawnPoint is one enemy placement in world units.
type SpawnPoint struct {
	Archetype string // registry key, e.g. "NORMAL"
	X, Y, Z   float64
	Wave      int
}

// Wave returns the points spawned in wave n, in layout order.
func (l *SpawnLayout) Wave(n int) []SpawnPoint {
	var out []SpawnPoint
	for _, p := range l.Points {
		if p.Wave == n {
			out = append(out, p)
		}
	}
	return out
}
