// Package scoring keeps trick combo points and the race leaderboard.
package scoring

import "math"

// TrickScore accumulates trick points into a pool while airborne and banks
// the pool on a clean landing. It implements components.ScoreSink.
//
// A trick different from the previous one raises the multiplier and adds
// the full base score. Repeating the same trick adds base/n for the n-th
// repeat in a row and leaves the multiplier alone.
type TrickScore struct {
	Base float64

	score       int
	pool        float64
	multiplier  int
	last        string
	consecutive int
	tricks      []string
}

func NewTrickScore(base float64) *TrickScore {
	s := &TrickScore{Base: base}
	s.resetCombo()
	return s
}

func (s *TrickScore) TrickPerformed(name string) {
	if s.multiplier == 0 {
		s.resetCombo()
	}
	s.tricks = append(s.tricks, name)
	if name != s.last {
		s.multiplier++
		s.pool += s.Base
		s.last = name
		s.consecutive = 1
		return
	}
	s.consecutive++
	s.pool += s.Base / float64(s.consecutive)
}

// ComboLanded banks floor(pool * multiplier).
func (s *TrickScore) ComboLanded() {
	s.score += int(math.Floor(s.pool * float64(s.multiplier)))
	s.resetCombo()
}

// ComboBailed throws the pool away.
func (s *TrickScore) ComboBailed() {
	s.resetCombo()
}

func (s *TrickScore) Score() int { return s.score }

func (s *TrickScore) Pool() float64 { return s.pool }

func (s *TrickScore) Multiplier() int { return s.multiplier }

// Combo returns the tricks in the running combo.
func (s *TrickScore) Combo() []string {
	return append([]string(nil), s.tricks...)
}

// Reset clears the banked score and the running combo.
func (s *TrickScore) Reset() {
	s.score = 0
	s.resetCombo()
}

func (s *TrickScore) resetCombo() {
	s.pool = 0
	s.multiplier = 1
	s.last = ""
	s.consecutive = 1
	s.tricks = s.tricks[:0]
}
