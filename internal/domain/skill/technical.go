package skill

import "fmt"

// Mastery weights for technical skills. The three weights sum to 1.0.
const (
	technicalProgressWeight   = 0.5
	technicalPracticeWeight   = 0.3
	technicalDifficultyWeight = 0.2

	// technicalPracticeCap is the practice-hour count at which the practice
	// factor saturates.
	technicalPracticeCap = 100.0
)

// Technical is a skill with a fixed difficulty rating. Harder skills earn a
// score bonus for the same effort.
type Technical struct {
	base
	difficulty int
}

// NewTechnical creates a technical skill. Difficulty must be in
// [MinDifficulty, MaxDifficulty] and is immutable afterwards.
func NewTechnical(name, category string, difficulty int) (*Technical, error) {
	b, err := newBase(name, category)
	if err != nil {
		return nil, err
	}
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return nil, fmt.Errorf("difficulty %d must be between %d and %d: %w",
			difficulty, MinDifficulty, MaxDifficulty, ErrValidation)
	}
	return &Technical{base: b, difficulty: difficulty}, nil
}

// Kind returns KindTechnical.
func (t *Technical) Kind() Kind { return KindTechnical }

// Difficulty returns the 1-10 difficulty rating set at creation.
func (t *Technical) Difficulty() int { return t.difficulty }

// MasteryScore weights completion at 50%, capped practice at 30% and the
// difficulty bonus at 20%.
func (t *Technical) MasteryScore() float64 {
	practice := practiceFactor(t.practiceHours, technicalPracticeCap)
	bonus := float64(t.difficulty) / MaxDifficulty * 100
	return t.progress*technicalProgressWeight +
		practice*technicalPracticeWeight +
		bonus*technicalDifficultyWeight
}

// Record returns the persisted form including the difficulty rating.
func (t *Technical) Record() Record {
	r := t.record(KindTechnical)
	r.Difficulty = t.difficulty
	return r
}
