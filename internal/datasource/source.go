// Package datasource provides multi-source detection and selection for qv
// study decks. It discovers, validates, and selects the freshest valid
// source from SQLite deck databases and JSON deck documents.
package datasource

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/quizdeck/pkg/loader"
)

// SourceType identifies the type of data source
type SourceType string

const (
	// SourceTypeSQLite is a SQLite deck database (deck.db)
	SourceTypeSQLite SourceType = "sqlite"
	// SourceTypeJSON is a JSON deck document (deck.json)
	SourceTypeJSON SourceType = "json"
)

// Priority values for source types (higher = more authoritative)
const (
	PrioritySQLite = 100
	PriorityJSON   = 50
)

// DeckDBName is the filename of the SQLite deck database.
const DeckDBName = "deck.db"

// DataSource represents a potential source of deck content
type DataSource struct {
	// Type identifies the source type
	Type SourceType `json:"type"`
	// Path is the absolute path to the source file
	Path string `json:"path"`
	// Priority determines preference when timestamps are equal (higher = preferred)
	Priority int `json:"priority"`
	// ModTime is the last modification time of the source
	ModTime time.Time `json:"mod_time"`
	// Valid indicates whether the source passed validation
	Valid bool `json:"valid"`
	// ValidationError describes why validation failed (if Valid is false)
	ValidationError string `json:"validation_error,omitempty"`
	// CourseCount is the number of courses in the source (set during validation)
	CourseCount int `json:"course_count"`
	// Size is the file size in bytes
	Size int64 `json:"size"`
}

// String returns a human-readable description of the source
func (s DataSource) String() string {
	status := "valid"
	if !s.Valid {
		status = fmt.Sprintf("invalid: %s", s.ValidationError)
	}
	return fmt.Sprintf("%s (%s, priority=%d, mod=%s, courses=%d, %s)",
		s.Path, s.Type, s.Priority, s.ModTime.Format(time.RFC3339), s.CourseCount, status)
}

// DiscoveryOptions configures source discovery behavior
type DiscoveryOptions struct {
	// Dir is the directory to scan for deck sources
	Dir string
	// ValidateAfterDiscovery runs validation on each discovered source
	ValidateAfterDiscovery bool
	// IncludeInvalid includes sources that failed validation in results
	IncludeInvalid bool
	// Logger receives discovery log messages when non-nil
	Logger func(msg string)
}

// DiscoverSources finds all potential deck sources in a directory.
func DiscoverSources(opts DiscoveryOptions) ([]DataSource, error) {
	log := opts.Logger
	if log == nil {
		log = func(string) {}
	}

	dir := opts.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	log(fmt.Sprintf("discovering deck sources in %s", dir))

	var sources []DataSource

	// SQLite deck database
	dbPath := filepath.Join(dir, DeckDBName)
	if info, err := os.Stat(dbPath); err == nil && !info.IsDir() {
		sources = append(sources, DataSource{
			Type:     SourceTypeSQLite,
			Path:     dbPath,
			Priority: PrioritySQLite,
			ModTime:  info.ModTime(),
			Size:     info.Size(),
		})
		log(fmt.Sprintf("found SQLite deck: %s", dbPath))
	}

	// JSON deck documents, in preferred-name order
	for _, name := range loader.PreferredDeckNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		sources = append(sources, DataSource{
			Type:     SourceTypeJSON,
			Path:     path,
			Priority: PriorityJSON,
			ModTime:  info.ModTime(),
			Size:     info.Size(),
		})
		log(fmt.Sprintf("found JSON deck: %s", path))
	}

	// Validate sources concurrently if requested; each validation is an
	// independent read of a different file.
	if opts.ValidateAfterDiscovery {
		var g errgroup.Group
		for i := range sources {
			g.Go(func() error {
				if err := ValidateSource(&sources[i]); err != nil {
					log(fmt.Sprintf("validation failed for %s: %v", sources[i].Path, err))
				}
				return nil
			})
		}
		_ = g.Wait()

		if !opts.IncludeInvalid {
			valid := sources[:0]
			for _, s := range sources {
				if s.Valid {
					valid = append(valid, s)
				}
			}
			sources = valid
		}
	}

	// Freshest first; priority breaks ties.
	sort.Slice(sources, func(i, j int) bool {
		if sources[i].ModTime.Equal(sources[j].ModTime) {
			return sources[i].Priority > sources[j].Priority
		}
		return sources[i].ModTime.After(sources[j].ModTime)
	})

	log(fmt.Sprintf("discovered %d sources", len(sources)))
	return sources, nil
}

// ValidateSource checks that a source parses into a non-empty, valid
// content tree, recording the outcome on the source.
func ValidateSource(s *DataSource) error {
	content, err := loadFromSource(*s)
	if err != nil {
		s.Valid = false
		s.ValidationError = err.Error()
		return err
	}
	s.Valid = true
	s.ValidationError = ""
	s.CourseCount = content.CourseCount()
	return nil
}

// SelectBestSource returns the preferred source from a discovered set:
// the freshest valid one, with SQLite winning timestamp ties.
func SelectBestSource(sources []DataSource) (DataSource, error) {
	for _, s := range sources {
		if s.Valid {
			return s, nil
		}
	}
	return DataSource{}, fmt.Errorf("no valid deck source available")
}
