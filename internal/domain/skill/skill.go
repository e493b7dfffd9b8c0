// Package skill defines the skill variants tracked by the application and
// their mastery scoring. A skill is either technical or soft; the two kinds
// share the same identity and progress fields but score mastery differently.
package skill

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the two skill variants. The value doubles as the
// persisted type tag.
type Kind string

// Known skill kinds.
const (
	KindTechnical Kind = "technical"
	KindSoft      Kind = "soft"
)

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	return k == KindTechnical || k == KindSoft
}

// Bounds for validated numeric fields.
const (
	MinProgress   = 0.0
	MaxProgress   = 100.0
	MinDifficulty = 1
	MaxDifficulty = 10
)

// Skill is the capability surface shared by both variants. Variant-specific
// operations (logging a real-world application) live only on the concrete
// type that supports them.
type Skill interface {
	// ID returns the stable identifier assigned at creation.
	ID() string
	// Name returns the unique display name. Immutable.
	Name() string
	// Category returns the grouping label. Immutable.
	Category() string
	// Progress returns the completion percentage in [0, 100].
	Progress() float64
	// PracticeHours returns the accumulated practice time.
	PracticeHours() float64
	// CreatedAt returns the creation timestamp.
	CreatedAt() time.Time
	// UpdatedAt returns the timestamp of the last mutation.
	UpdatedAt() time.Time

	// Kind returns the variant tag used for persistence and dispatch.
	Kind() Kind
	// MasteryScore computes the variant-specific weighted score in [0, 100].
	// The result is derived on demand and never stored.
	MasteryScore() float64

	// UpdateProgress replaces the progress percentage.
	// Values outside [0, 100] are rejected with ErrValidation.
	UpdateProgress(progress float64) error
	// LogPractice adds hours to the practice total. Hours must be positive;
	// the total never decreases.
	LogPractice(hours float64) error

	// Record returns the persisted form of the skill.
	Record() Record
}

// base carries the fields and behavior common to both variants.
type base struct {
	id            string
	name          string
	category      string
	progress      float64
	practiceHours float64
	createdAt     time.Time
	updatedAt     time.Time
}

func newBase(name, category string) (base, error) {
	if strings.TrimSpace(name) == "" {
		return base{}, fmt.Errorf("skill name must not be empty: %w", ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return base{}, fmt.Errorf("skill category must not be empty: %w", ErrValidation)
	}
	now := time.Now()
	return base{
		id:        uuid.NewString(),
		name:      name,
		category:  category,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (b *base) ID() string            { return b.id }
func (b *base) Name() string          { return b.name }
func (b *base) Category() string      { return b.category }
func (b *base) Progress() float64     { return b.progress }
func (b *base) PracticeHours() float64 { return b.practiceHours }
func (b *base) CreatedAt() time.Time  { return b.createdAt }
func (b *base) UpdatedAt() time.Time  { return b.updatedAt }

// UpdateProgress replaces the progress percentage after range validation.
func (b *base) UpdateProgress(progress float64) error {
	if math.IsNaN(progress) || progress < MinProgress || progress > MaxProgress {
		return fmt.Errorf("progress %v must be between %v and %v: %w",
			progress, MinProgress, MaxProgress, ErrValidation)
	}
	b.progress = progress
	b.updatedAt = time.Now()
	return nil
}

// LogPractice accumulates practice hours. Non-positive amounts are rejected
// so the total only ever increases.
func (b *base) LogPractice(hours float64) error {
	if math.IsNaN(hours) || hours <= 0 {
		return fmt.Errorf("practice hours %v must be positive: %w", hours, ErrValidation)
	}
	b.practiceHours += hours
	b.updatedAt = time.Now()
	return nil
}

func (b *base) record(kind Kind) Record {
	return Record{
		ID:            b.id,
		Name:          b.name,
		Category:      b.category,
		Progress:      b.progress,
		PracticeHours: b.practiceHours,
		Kind:          kind,
		CreatedAt:     b.createdAt,
		UpdatedAt:     b.updatedAt,
	}
}

// practiceFactor normalizes practice hours against a saturation limit to a
// 0-100 scale.
func practiceFactor(hours, limit float64) float64 {
	return math.Min(hours, limit) / limit * 100
}
