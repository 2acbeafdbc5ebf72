package lsp

import (
	"strings"
	"sync"
)

// Document is an open editor buffer.
type Document struct {
	URI        string
	LanguageID string
	Content    string
	Version    int
}

// DocumentManager tracks all open documents.
type DocumentManager struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentManager creates a new document manager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		docs: make(map[string]*Document),
	}
}

// Open stores a newly opened document.
func (dm *DocumentManager) Open(uri, languageID, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc := &Document{
		URI:        uri,
		LanguageID: languageID,
		Content:    content,
		Version:    version,
	}
	dm.docs[uri] = doc
	return doc
}

// Update replaces the content of a document. Unknown URIs are ignored.
func (dm *DocumentManager) Update(uri, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.docs[uri]
	if !ok {
		return nil
	}
	// Replace rather than mutate: readers may hold the old pointer.
	next := *doc
	next.Content = content
	next.Version = version
	dm.docs[uri] = &next
	return &next
}

// Close closes a document.
func (dm *DocumentManager) Close(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	delete(dm.docs, uri)
}

// Get retrieves a document by URI.
func (dm *DocumentManager) Get(uri string) *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.docs[uri]
}

// Len returns the number of open documents.
func (dm *DocumentManager) Len() int {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return len(dm.docs)
}

// Position represents a position in a document (0-indexed, UTF-16 character offsets).
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range represents a range in a document.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Line returns the text of a zero-based line without its terminator.
func (d *Document) Line(n int) string {
	lines := strings.Split(d.Content, "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[n], "\r")
}

// LinePrefix returns the text of pos's line up to the cursor.
func (d *Document) LinePrefix(pos Position) string {
	line := d.Line(pos.Line)
	return line[:utf16ToByteOffset(line, pos.Character)]
}

// utf16ToByteOffset converts a UTF-16 code unit offset within line to a
// byte offset, clamped to the line length.
func utf16ToByteOffset(line string, units int) int {
	if units <= 0 {
		return 0
	}
	n := 0
	for i, r := range line {
		if n >= units {
			return i
		}
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return len(line)
}
