// Package repository persists the skill collection to a local file and
// reconstructs it on load.
package repository

import (
	"context"

	"github.com/okian/mastery/internal/domain/skill"
)

// Store provides whole-collection persistence. Implementations own schema
// validation and variant reconstruction; callers only ever see fully rebuilt
// skills or a sentinel error.
type Store interface {
	// Load reads the persisted collection. A missing source is not an
	// error: it yields an empty collection. A present but invalid source
	// fails with ErrCorruptData; other I/O failures with ErrPersistence.
	Load(ctx context.Context) ([]skill.Skill, error)

	// Save writes the whole collection, replacing the previous contents.
	// A failure mid-write reports ErrPersistence and leaves the prior
	// file, if any, intact.
	Save(ctx context.Context, skills []skill.Skill) error
}
