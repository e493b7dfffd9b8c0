package repository

import "os"

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithPath sets the storage file path.
func WithPath(path string) Option {
	return func(s *FileStore) {
		if path != "" {
			s.path = path
		}
	}
}

// WithFileMode sets the permission bits for newly written files.
func WithFileMode(mode os.FileMode) Option {
	return func(s *FileStore) {
		if mode != 0 {
			s.mode = mode
		}
	}
}
