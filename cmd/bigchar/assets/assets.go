package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// DefaultExt is the extension the music files are expected to have.
const DefaultExt = "ogg"

var ErrInvalidIdentifier = errors.New("invalid identifier: must be A-Z or 0-9")

// Entry describes one expected audio asset.
type Entry struct {
	Identifier string
	Path       string
	Present    bool
	Size       int64
}

// Identifiers returns every identifier that can have an audio asset, letters first.
func Identifiers() []string {
	ids := make([]string, 0, 36)
	for c := 'A'; c <= 'Z'; c++ {
		ids = append(ids, string(c))
	}
	for c := '0'; c <= '9'; c++ {
		ids = append(ids, string(c))
	}
	return ids
}

// Valid reports whether id names a letter or digit asset.
func Valid(id string) bool {
	return lo.Contains(Identifiers(), id)
}

// DefaultDir returns the music directory next to the running executable.
func DefaultDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "music"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "music")
}

// Path resolves an identifier to <dir>/<id>.<ext>. An empty ext means DefaultExt.
func Path(dir, id, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = DefaultExt
	}
	return filepath.Join(dir, id+"."+ext)
}

// Resolve is Path with validation of the identifier.
func Resolve(dir, id, ext string) (string, error) {
	if !Valid(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return Path(dir, id, ext), nil
}

// Scan checks which assets exist in dir.
func Scan(dir, ext string) []Entry {
	return lo.Map(Identifiers(), func(id string, _ int) Entry {
		entry := Entry{Identifier: id, Path: Path(dir, id, ext)}
		info, err := os.Stat(entry.Path)
		// unreadable files count as missing, same as absent ones
		if err == nil && info.Mode().IsRegular() {
			entry.Present = true
			entry.Size = info.Size()
		}
		return entry
	})
}

// Missing returns the entries without a file.
func Missing(entries []Entry) []Entry {
	return lo.Filter(entries, func(e Entry, _ int) bool {
		return !e.Present
	})
}
