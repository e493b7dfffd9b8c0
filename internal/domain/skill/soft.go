package skill

import (
	"fmt"
	"math"
	"time"
)

// Mastery weights for soft skills. The three weights sum to 1.0; real-world
// use carries the same weight as practice because soft skills are judged by
// application, not theory.
const (
	softProgressWeight    = 0.4
	softPracticeWeight    = 0.3
	softApplicationWeight = 0.3

	// Caps at which the practice and application factors saturate.
	softPracticeCap    = 50.0
	softApplicationCap = 20.0
)

// Soft is a skill whose score rewards real-world application alongside
// progress and practice.
type Soft struct {
	base
	applications int
}

// NewSoft creates a soft skill with an optional starting application count.
func NewSoft(name, category string, applications int) (*Soft, error) {
	b, err := newBase(name, category)
	if err != nil {
		return nil, err
	}
	if applications < 0 {
		return nil, fmt.Errorf("application count %d must not be negative: %w",
			applications, ErrValidation)
	}
	return &Soft{base: b, applications: applications}, nil
}

// Kind returns KindSoft.
func (s *Soft) Kind() Kind { return KindSoft }

// ApplicationCount returns the number of recorded real-world uses.
func (s *Soft) ApplicationCount() int { return s.applications }

// LogApplication records one real-world use of the skill. The count only
// ever increases.
func (s *Soft) LogApplication() {
	s.applications++
	s.updatedAt = time.Now()
}

// MasteryScore weights completion at 40%, capped practice at 30% and capped
// real-world application at 30%.
func (s *Soft) MasteryScore() float64 {
	practice := practiceFactor(s.practiceHours, softPracticeCap)
	application := math.Min(float64(s.applications), softApplicationCap) / softApplicationCap * 100
	return s.progress*softProgressWeight +
		practice*softPracticeWeight +
		application*softApplicationWeight
}

// Record returns the persisted form including the application count.
func (s *Soft) Record() Record {
	r := s.record(KindSoft)
	r.ApplicationCount = s.applications
	return r
}
