package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers Current by amount, clamped to [0, Max]. It returns the
// health actually removed.
func (h *HealthData) Damage(amount int) int {
	before := h.Current
	h.Current = clampHealth(h.Current-amount, h.Max)
	return before - h.Current
}

// Heal raises Current by amount, clamped to [0, Max].
func (h *HealthData) Heal(amount int) {
	h.Current = clampHealth(h.Current+amount, h.Max)
}

// Ratio returns Current/Max, or 0 when Max is not positive.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

func clampHealth(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

var Health = donburi.NewComponentType[HealthData]()
