package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/okian/mastery/internal/domain/skill"
)

// Default file store configuration constants.
const (
	defaultPath     = "mastery.json"
	defaultFileMode = os.FileMode(0o644)
)

// FileStore persists the collection as a UTF-8 JSON array in a single flat
// file. Writes go to a temporary sibling first and are renamed into place so
// a failed save never corrupts a previously valid file.
type FileStore struct {
	path string
	mode os.FileMode
}

// NewFileStore creates a file store with configuration options.
func NewFileStore(opts ...Option) *FileStore {
	s := &FileStore{
		path: defaultPath,
		mode: defaultFileMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the storage file path.
func (s *FileStore) Path() string { return s.path }

// Load reads and reconstructs the whole collection. One bad record fails the
// whole load: partial silent data loss is worse than an explicit failure.
func (s *FileStore) Load(ctx context.Context) ([]skill.Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		// Absent file means a fresh start, not a failure.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrPersistence, s.path, err)
	}

	var records []skill.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrCorruptData, s.path, err)
	}

	skills := make([]skill.Skill, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		sk, err := skill.FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%q): %w", ErrCorruptData, i, r.Name, err)
		}
		if _, dup := seen[sk.Name()]; dup {
			return nil, fmt.Errorf("%w: record %d: duplicate skill name %q", ErrCorruptData, i, sk.Name())
		}
		seen[sk.Name()] = struct{}{}
		skills = append(skills, sk)
	}
	return skills, nil
}

// Save serializes the whole collection in the given order and atomically
// replaces the storage file.
func (s *FileStore) Save(ctx context.Context, skills []skill.Skill) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	records := make([]skill.Record, len(skills))
	for i, sk := range skills {
		records[i] = sk.Record()
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}
	data = append(data, '\n')

	// Write-then-rename keeps the previous file intact on failure.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, s.mode); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %w", ErrPersistence, s.path, err)
	}
	return nil
}
