package storage

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hpungsan/zotter/internal/note"
)

// LoadStatus tags how a Load call obtained its notes. Callers of the public
// store API only ever see a sequence; the status exists for logging.
type LoadStatus int

const (
	// StatusLoaded means the file was read and parsed.
	StatusLoaded LoadStatus = iota
	// StatusMissing means the file does not exist.
	StatusMissing
	// StatusCorrupt means the file exists but is not a JSON array of notes.
	StatusCorrupt
	// StatusUnreadable means opening or reading the file failed.
	StatusUnreadable
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusMissing:
		return "missing"
	case StatusCorrupt:
		return "corrupt"
	case StatusUnreadable:
		return "unreadable"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadResult is the outcome of Load.
type LoadResult struct {
	Notes  []note.Note
	Status LoadStatus
	Err    error // cause for StatusCorrupt and StatusUnreadable
}

// Load reads the note sequence stored at path. It never fails: a missing,
// unreadable or corrupt file yields an empty sequence with the matching status.
func Load(path string) LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return LoadResult{Notes: []note.Note{}, Status: StatusMissing}
		}
		return LoadResult{Notes: []note.Note{}, Status: StatusUnreadable, Err: err}
	}

	var notes []note.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return LoadResult{Notes: []note.Note{}, Status: StatusCorrupt, Err: err}
	}
	// "null" decodes without error
	if notes == nil {
		notes = []note.Note{}
	}
	return LoadResult{Notes: notes, Status: StatusLoaded}
}

// Encode renders notes the way Save writes them: a 4-space indented JSON
// array, HTML characters and non-ASCII text left as-is, trailing newline.
func Encode(notes []note.Note) ([]byte, error) {
	if notes == nil {
		notes = []note.Note{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save replaces the file at path with the full note sequence.
func Save(path string, notes []note.Note) error {
	data, err := Encode(notes)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", path, err)
	}
	return WriteFile(path, data)
}

// WriteFile atomically writes content: tmp file → fsync → rename.
func WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".zotter-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	// Explicit chmod (best-effort, may not work on all platforms)
	_ = os.Chmod(tmpName, 0o600)
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
