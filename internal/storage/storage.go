// Package storage persists the active and trash note collections as JSON files.
package storage

import (
	"path/filepath"

	"github.com/hpungsan/zotter/internal/logger"
	"github.com/hpungsan/zotter/internal/note"
)

// Default file names, relative to the user's home directory.
const (
	DefaultNotesFile = ".zotter.json"
	DefaultTrashFile = ".zotter_trash.json"
)

// Paths holds the two resolved storage locations.
type Paths struct {
	Notes string
	Trash string
}

// DefaultPaths returns the standard locations under homeDir.
func DefaultPaths(homeDir string) Paths {
	return Paths{
		Notes: filepath.Join(homeDir, DefaultNotesFile),
		Trash: filepath.Join(homeDir, DefaultTrashFile),
	}
}

// Store reads and writes both collections. It holds no notes between calls;
// every Load goes back to disk.
type Store struct {
	paths Paths
	log   *logger.Logger
}

// NewStore creates a Store over paths. A nil logger discards output.
func NewStore(paths Paths, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{paths: paths, log: log.WithComponent("storage")}
}

// Paths returns the locations this store reads and writes.
func (s *Store) Paths() Paths {
	return s.paths
}

// LoadNotes returns the active collection.
func (s *Store) LoadNotes() []note.Note {
	return s.load(s.paths.Notes)
}

// SaveNotes replaces the active collection.
func (s *Store) SaveNotes(notes []note.Note) error {
	return s.save(s.paths.Notes, notes)
}

// LoadTrash returns the trash collection.
func (s *Store) LoadTrash() []note.Note {
	return s.load(s.paths.Trash)
}

// SaveTrash replaces the trash collection.
func (s *Store) SaveTrash(notes []note.Note) error {
	return s.save(s.paths.Trash, notes)
}

func (s *Store) load(path string) []note.Note {
	res := Load(path)
	switch res.Status {
	case StatusMissing:
		s.log.Debug().Str("path", path).Msg("storage file missing, treating as empty")
	case StatusCorrupt, StatusUnreadable:
		s.log.Warn().
			Str("path", path).
			Str("status", res.Status.String()).
			Err(res.Err).
			Msg("storage file could not be loaded, treating as empty")
	default:
		s.log.Debug().Str("path", path).Int("count", len(res.Notes)).Msg("loaded notes")
	}
	return res.Notes
}

func (s *Store) save(path string, notes []note.Note) error {
	if err := Save(path, notes); err != nil {
		s.log.Error().Str("path", path).Err(err).Msg("failed to save notes")
		return err
	}
	s.log.Debug().Str("path", path).Int("count", len(notes)).Msg("saved notes")
	return nil
}
