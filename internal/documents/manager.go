package documents

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"bennypowers.dev/csstheme/internal/collections"
	"bennypowers.dev/csstheme/internal/log"
	"github.com/bmatcuk/doublestar/v4"
)

// ErrUnsupportedLanguage indicates a file type that cannot contain stylesheets
var ErrUnsupportedLanguage = errors.New("unsupported file type")

// Manager holds the documents loaded for one run
type Manager struct {
	documents map[string]*Document
	mu        sync.RWMutex
}

// NewManager creates a new document manager
func NewManager() *Manager {
	return &Manager{
		documents: make(map[string]*Document),
	}
}

// GetAll returns all loaded documents, sorted by path
func (m *Manager) GetAll() []*Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]*Document, 0, len(m.documents))
	for _, doc := range m.documents {
		docs = append(docs, doc)
	}
	slices.SortFunc(docs, func(a, b *Document) int {
		return strings.Compare(a.path, b.path)
	})
	return docs
}

// Load reads a file and adds it to the manager
func (m *Manager) Load(path string) (*Document, error) {
	languageID := LanguageForPath(path)
	if languageID == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}

	content, err := os.ReadFile(path) //nolint:gosec // G304: reading user-selected input files
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := NewDocument(path, languageID, string(content))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[path] = doc
	return doc, nil
}

// Open adds an in-memory document, e.g. one read from stdin
func (m *Manager) Open(path, languageID, content string) *Document {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := NewDocument(path, languageID, content)
	m.documents[path] = doc
	return doc
}

// Expand resolves file paths and doublestar patterns (e.g. "src/**/*.css")
// relative to root into a sorted, de-duplicated list of supported files.
// Plain paths are returned even if their type is unsupported, so that Load
// can report them; files matched by patterns are filtered silently.
func Expand(root string, patterns []string) ([]string, error) {
	found := collections.NewSet[string]()

	for _, pattern := range patterns {
		full := pattern
		if !filepath.IsAbs(full) {
			full = filepath.Join(root, pattern)
		}

		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			found.Add(full)
			continue
		}

		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
		}

		matches, err := globFiles(root, pattern)
		if err != nil {
			return nil, fmt.Errorf("error matching pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			log.Warn("No files match %s", pattern)
		}
		for _, match := range matches {
			if LanguageForPath(match) != "" {
				found.Add(match)
			}
		}
	}

	return found.Sorted(), nil
}

// globFiles returns the regular files matching pattern
func globFiles(root, pattern string) ([]string, error) {
	var matches []string

	if filepath.IsAbs(pattern) {
		candidates, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		for _, candidate := range candidates {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				matches = append(matches, candidate)
			}
		}
		return matches, nil
	}

	err := doublestar.GlobWalk(os.DirFS(root), filepath.ToSlash(pattern), func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.Join(root, filepath.FromSlash(path)))
		return nil
	})
	return matches, err
}
