package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store keeps proof-of-need files on local disk under a single directory.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// GenerateFilename produces a collision-free name for an uploaded file:
// timestamp, a random suffix, and the sanitized original name.
func (s *Store) GenerateFilename(original string) string {
	base := sanitize(filepath.Base(original))
	stamp := time.Now().UTC().Format("20060102150405")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s_%s", stamp, suffix, base)
}

// Resolve maps a stored filename back to its on-disk path. Names carrying
// path separators or traversal segments are rejected.
func (s *Store) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// sanitize strips anything outside a conservative filename alphabet.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	// Resolve rejects "..", so stored names must never contain it.
	for strings.Contains(out, "..") {
		out = strings.ReplaceAll(out, "..", ".")
	}
	if out == "" {
		return "file"
	}
	return out
}
