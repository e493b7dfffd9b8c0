package app

import "github.com/okian/mastery/internal/adapters/repository"

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRepository sets the persistence backend.
func WithRepository(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.repo = store
		}
	}
}

// WithListLimit caps the number of ranking entries returned by List.
// Zero means unlimited.
func WithListLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.listLimit = limit
		}
	}
}
