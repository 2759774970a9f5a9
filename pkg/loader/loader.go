// Package loader reads and validates the study-content document qv renders.
// The document is loaded exactly once at startup (and again on live reload);
// a read or parse failure is a LoadFailure surfaced to the caller, never a
// partially-built tree.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/quizdeck/pkg/model"
)

// DeckEnvVar names the environment variable for an explicit deck path.
const DeckEnvVar = "QV_DECK"

// PreferredDeckNames defines the priority order for locating a deck
// document inside a directory.
var PreferredDeckNames = []string{"deck.json", "content.json", "courses.json"}

// FindDeckPath locates the deck document. An explicit path wins; a
// directory is searched for the preferred names; QV_DECK is consulted when
// path is empty; the current directory is the last resort.
func FindDeckPath(path string) (string, error) {
	if path == "" {
		if env := os.Getenv(DeckEnvVar); env != "" {
			path = env
		} else {
			var err error
			path, err = os.Getwd()
			if err != nil {
				return "", fmt.Errorf("failed to get current working directory: %w", err)
			}
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("deck path %s: %w", path, err)
	}
	if !info.IsDir() {
		return path, nil
	}

	for _, name := range PreferredDeckNames {
		candidate := filepath.Join(path, name)
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() && fi.Size() > 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no deck document (%s) found in %s",
		strings.Join(PreferredDeckNames, ", "), path)
}

// LoadContent reads, parses, and validates the deck document at path.
func LoadContent(path string) (*model.Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck document: %w", err)
	}
	defer f.Close()

	content, err := ParseContent(f)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return content, nil
}

// ParseContent decodes a deck document from a reader and validates the
// resulting tree. Handles a UTF-8 BOM on the first bytes.
func ParseContent(r io.Reader) (*model.Content, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading deck document: %w", err)
	}
	data = stripBOM(data)

	var content model.Content
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parsing deck document: %w", err)
	}
	if len(content.Courses) == 0 {
		return nil, fmt.Errorf("deck document has no courses")
	}
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck document: %w", err)
	}
	return &content, nil
}

// stripBOM removes the UTF-8 Byte Order Mark if present.
func stripBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
