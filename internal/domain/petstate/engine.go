package petstate

import "math"

// Apply suma los deltas al estado. No clampa: el resultado puede tener negativos
// y siempre debe pasar por Clamp antes de publicarse. Name no se toca.
func Apply(s PetState, d ActionDelta) PetState {
	s.Weight = addSat(s.Weight, d.Weight)
	s.Happiness = addSat(s.Happiness, d.Happiness)
	s.Energy = addSat(s.Energy, d.Energy)
	return s
}

// Clamp fuerza weight, happiness y energy a >= 0. Es idempotente.
func Clamp(s PetState) PetState {
	s.Weight = max(0, s.Weight)
	s.Happiness = max(0, s.Happiness)
	s.Energy = max(0, s.Energy)
	return s
}

// Valid reporta si el estado cumple el invariante de no-negatividad.
func Valid(s PetState) bool {
	return s.Weight >= 0 && s.Happiness >= 0 && s.Energy >= 0
}

// addSat satura en vez de desbordar con deltas enormes.
func addSat(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}
