// Package app provides the skill store: the single owner of the in-memory
// skill collection, its aggregate views, and persistence orchestration.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/okian/mastery/internal/adapters/repository"
	"github.com/okian/mastery/internal/domain/skill"
	"github.com/okian/mastery/internal/domain/types"
	"github.com/okian/mastery/pkg/metrics"
)

// Service owns the skill collection exclusively. It is single-owner and
// synchronous: one user, one process, no concurrent access. Insertion order
// is preserved; rankings and statistics are derived fresh on every call.
type Service struct {
	repo      repository.Store
	skills    []skill.Skill
	listLimit int
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		repo: repository.NewFileStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a skill, enforcing case-sensitive name uniqueness.
func (s *Service) Add(ctx context.Context, sk skill.Skill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.indexOf(sk.Name()) >= 0 {
		return fmt.Errorf("%q: %w", sk.Name(), ErrDuplicateName)
	}
	s.skills = append(s.skills, sk)
	metrics.RecordSkillAdded(string(sk.Kind()))
	metrics.UpdateSkillsTracked(len(s.skills))
	return nil
}

// Find returns the skill with the given name.
func (s *Service) Find(ctx context.Context, name string) (skill.Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i := s.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return s.skills[i], nil
}

// UpdateProgress replaces the progress percentage of the named skill.
func (s *Service) UpdateProgress(ctx context.Context, name string, progress float64) error {
	sk, err := s.Find(ctx, name)
	if err != nil {
		return err
	}
	if err := sk.UpdateProgress(progress); err != nil {
		return err
	}
	metrics.RecordProgressUpdate()
	return nil
}

// LogPractice adds practice hours to the named skill.
func (s *Service) LogPractice(ctx context.Context, name string, hours float64) error {
	sk, err := s.Find(ctx, name)
	if err != nil {
		return err
	}
	if err := sk.LogPractice(hours); err != nil {
		return err
	}
	metrics.RecordPracticeHours(hours)
	return nil
}

// LogApplication records one real-world use of the named soft skill.
// Calling it on a technical skill is a capability mismatch.
func (s *Service) LogApplication(ctx context.Context, name string) error {
	sk, err := s.Find(ctx, name)
	if err != nil {
		return err
	}
	soft, ok := sk.(*skill.Soft)
	if !ok {
		return fmt.Errorf("%q is a %s skill: %w", name, sk.Kind(), ErrUnsupported)
	}
	soft.LogApplication()
	metrics.RecordApplication()
	return nil
}

// List returns the collection ranked by descending mastery score, computed
// at call time. Ties keep insertion order.
func (s *Service) List(ctx context.Context) ([]types.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries := make([]types.Entry, len(s.skills))
	for i, sk := range s.skills {
		entries[i] = entryOf(sk)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if s.listLimit > 0 && len(entries) > s.listLimit {
		entries = entries[:s.listLimit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Stats aggregates the whole collection. An empty collection is not an
// error: counts and mean are zero, highest and lowest are nil.
func (s *Service) Stats(ctx context.Context) (types.Stats, error) {
	if err := ctx.Err(); err != nil {
		return types.Stats{}, err
	}
	st := types.Stats{Count: len(s.skills)}
	if st.Count == 0 {
		return st, nil
	}

	var sum float64
	var highest, lowest skill.Skill
	highScore, lowScore := 0.0, 0.0
	for _, sk := range s.skills {
		score := sk.MasteryScore()
		sum += score
		st.TotalPracticeHours += sk.PracticeHours()
		switch sk.Kind() {
		case skill.KindTechnical:
			st.TechnicalCount++
		case skill.KindSoft:
			st.SoftCount++
		}
		if highest == nil || score > highScore {
			highest, highScore = sk, score
		}
		if lowest == nil || score < lowScore {
			lowest, lowScore = sk, score
		}
	}
	st.MeanScore = sum / float64(st.Count)

	high := entryOf(highest)
	low := entryOf(lowest)
	st.Highest = &high
	st.Lowest = &low
	return st, nil
}

// Count returns the current collection size.
func (s *Service) Count(ctx context.Context) int {
	_ = ctx
	return len(s.skills)
}

// Names returns the skill names in insertion order.
func (s *Service) Names(ctx context.Context) []string {
	_ = ctx
	names := make([]string, len(s.skills))
	for i, sk := range s.skills {
		names[i] = sk.Name()
	}
	return names
}

// Load replaces the collection with the persisted one. A missing file
// yields an empty collection. Corrupt data also leaves the collection empty
// so the session can continue, but the error is reported to the caller.
func (s *Service) Load(ctx context.Context) error {
	loaded, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrCorruptData) {
			s.skills = nil
			metrics.UpdateSkillsTracked(0)
		}
		metrics.RecordLoadFailure()
		return err
	}
	s.skills = loaded
	metrics.RecordLoad()
	metrics.UpdateSkillsTracked(len(s.skills))
	return nil
}

// Save flushes the whole collection in insertion order.
func (s *Service) Save(ctx context.Context) error {
	start := time.Now()
	if err := s.repo.Save(ctx, s.skills); err != nil {
		return err
	}
	metrics.ObserveSaveDuration(time.Since(start).Seconds())
	metrics.RecordSave()
	return nil
}

func (s *Service) indexOf(name string) int {
	for i, sk := range s.skills {
		if sk.Name() == name {
			return i
		}
	}
	return -1
}

func entryOf(sk skill.Skill) types.Entry {
	return types.Entry{
		Name:          sk.Name(),
		Category:      sk.Category(),
		Kind:          sk.Kind(),
		Progress:      sk.Progress(),
		PracticeHours: sk.PracticeHours(),
		Score:         sk.MasteryScore(),
	}
}
