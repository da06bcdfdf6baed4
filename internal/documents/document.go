package documents

import (
	"path/filepath"
	"strings"
)

// Language identifiers of the documents that can carry stylesheets
const (
	LanguageCSS        = "css"
	LanguageHTML       = "html"
	LanguageJavaScript = "javascript"
	LanguageTypeScript = "typescript"
)

var languagesByExtension = map[string]string{
	".css":  LanguageCSS,
	".html": LanguageHTML,
	".htm":  LanguageHTML,
	".js":   LanguageJavaScript,
	".mjs":  LanguageJavaScript,
	".cjs":  LanguageJavaScript,
	".jsx":  LanguageJavaScript,
	".ts":   LanguageTypeScript,
	".mts":  LanguageTypeScript,
	".cts":  LanguageTypeScript,
	".tsx":  LanguageTypeScript,
}

// LanguageForPath returns the language identifier for a file path based on
// its extension, or "" when the file type is not supported
func LanguageForPath(path string) string {
	return languagesByExtension[strings.ToLower(filepath.Ext(path))]
}

// Document represents a source file that may contain theme() calls
type Document struct {
	path       string
	languageID string
	content    string
}

// NewDocument creates a new document
func NewDocument(path, languageID, content string) *Document {
	return &Document{
		path:       path,
		languageID: languageID,
		content:    content,
	}
}

// Path returns the document's file path
func (d *Document) Path() string {
	return d.path
}

// LanguageID returns the document's language identifier
func (d *Document) LanguageID() string {
	return d.languageID
}

// Content returns the document's current content
func (d *Document) Content() string {
	return d.content
}
