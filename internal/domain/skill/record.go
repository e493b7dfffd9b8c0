package skill

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Record is the persisted form of a skill: one element of the stored JSON
// array. Variant-specific fields are omitted when they do not apply.
type Record struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Progress      float64 `json:"progress"`
	PracticeHours float64 `json:"practiceHours"`
	Kind          Kind    `json:"skillType"`

	// Difficulty is set only for technical skills.
	Difficulty int `json:"difficulty,omitempty"`
	// ApplicationCount is set only for soft skills.
	ApplicationCount int `json:"applicationCount,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// FromRecord reconstructs the concrete variant named by the record's type
// tag. It fails closed: an unknown tag is ErrUnknownKind, and any field that
// would have been rejected at creation time is ErrValidation. Records written
// before ids and timestamps existed are accepted; a missing id is replaced
// with a fresh one.
func FromRecord(r Record) (Skill, error) {
	var s Skill
	switch r.Kind {
	case KindTechnical:
		t, err := NewTechnical(r.Name, r.Category, r.Difficulty)
		if err != nil {
			return nil, err
		}
		s = t
	case KindSoft:
		soft, err := NewSoft(r.Name, r.Category, r.ApplicationCount)
		if err != nil {
			return nil, err
		}
		s = soft
	default:
		return nil, fmt.Errorf("skill type %q: %w", string(r.Kind), ErrUnknownKind)
	}

	if math.IsNaN(r.Progress) || r.Progress < MinProgress || r.Progress > MaxProgress {
		return nil, fmt.Errorf("progress %v must be between %v and %v: %w",
			r.Progress, MinProgress, MaxProgress, ErrValidation)
	}
	if math.IsNaN(r.PracticeHours) || r.PracticeHours < 0 {
		return nil, fmt.Errorf("practice hours %v must not be negative: %w",
			r.PracticeHours, ErrValidation)
	}

	b := baseOf(s)
	b.progress = r.Progress
	b.practiceHours = r.PracticeHours
	if r.ID != "" {
		b.id = r.ID
	} else {
		b.id = uuid.NewString()
	}
	if !r.CreatedAt.IsZero() {
		b.createdAt = r.CreatedAt
	}
	if !r.UpdatedAt.IsZero() {
		b.updatedAt = r.UpdatedAt
	}
	return s, nil
}

func baseOf(s Skill) *base {
	switch v := s.(type) {
	case *Technical:
		return &v.base
	case *Soft:
		return &v.base
	default:
		panic(fmt.Sprintf("unreachable skill type %T", s))
	}
}
