package datasource

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vanderheijden86/quizdeck/pkg/loader"
	"github.com/vanderheijden86/quizdeck/pkg/model"
)

// LoadContent performs smart source detection and loading for a directory:
// discover all deck sources, validate them, pick the freshest valid one, and
// load from it. SQLite is preferred over JSON at equal freshness. Falls back
// to plain preferred-name JSON loading when smart detection finds nothing.
func LoadContent(dir string) (*model.Content, string, error) {
	sources, err := DiscoverSources(DiscoveryOptions{
		Dir:                    dir,
		ValidateAfterDiscovery: true,
	})
	if err == nil && len(sources) > 0 {
		best, selErr := SelectBestSource(sources)
		if selErr == nil {
			content, loadErr := loadFromSource(best)
			if loadErr == nil {
				return content, best.Path, nil
			}
			err = loadErr
		} else {
			err = selErr
		}
	}

	// Fall back to legacy JSON-only loading.
	path, findErr := loader.FindDeckPath(dir)
	if findErr != nil {
		if err != nil {
			return nil, "", err
		}
		return nil, "", findErr
	}
	content, loadErr := loader.LoadContent(path)
	if loadErr != nil {
		return nil, "", loadErr
	}
	return content, path, nil
}

// LoadContentFromPath loads a deck from a known file, dispatching on
// extension (.db is SQLite, everything else JSON). Used for reloads where
// the source was already selected.
func LoadContentFromPath(path string) (*model.Content, error) {
	typ := SourceTypeJSON
	if strings.EqualFold(filepath.Ext(path), ".db") {
		typ = SourceTypeSQLite
	}
	return loadFromSource(DataSource{Type: typ, Path: path})
}

// loadFromSource loads content from a specific DataSource, dispatching on
// source type.
func loadFromSource(source DataSource) (*model.Content, error) {
	switch source.Type {
	case SourceTypeSQLite:
		reader, err := NewSQLiteReader(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite source %s: %w", source.Path, err)
		}
		defer reader.Close()
		return reader.LoadContent()

	case SourceTypeJSON:
		return loader.LoadContent(source.Path)

	default:
		return nil, fmt.Errorf("unknown source type: %s", source.Type)
	}
}
