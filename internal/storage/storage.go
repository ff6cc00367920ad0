package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soc-tools/testudo/internal/catalog"
)

// Catalog is one persisted crawl result.
type Catalog struct {
	Term      string           `json:"term"`
	Dept      string           `json:"dept,omitempty"`
	FetchedAt string           `json:"fetched_at"`
	Courses   []catalog.Course `json:"courses"`
}

// NewCatalog builds a Catalog stamped with the current time. Dept is empty
// for a full crawl.
func NewCatalog(term, dept string, courses []catalog.Course) *Catalog {
	return &Catalog{
		Term:      term,
		Dept:      strings.ToUpper(dept),
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Courses:   courses,
	}
}

// Storage handles persistence of crawled catalogs
type Storage struct {
	dataDir string
}

// New creates a Storage instance rooted at dataDir, creating it if needed.
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// getCatalogPath returns the path of the catalog file for a term and
// optional department.
func (s *Storage) getCatalogPath(term, dept string) string {
	if dept == "" {
		return filepath.Join(s.dataDir, fmt.Sprintf("catalog_%s.json", term))
	}
	return filepath.Join(s.dataDir, fmt.Sprintf("catalog_%s_%s.json", term, strings.ToUpper(dept)))
}

// Save writes a catalog to disk and returns the path it was written to.
func (s *Storage) Save(cat *Catalog) (string, error) {
	path := s.getCatalogPath(cat.Term, cat.Dept)

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing catalog: %w", err)
	}

	return path, nil
}

// Load reads the catalog saved for a term and optional department.
func (s *Storage) Load(term, dept string) (*Catalog, error) {
	return LoadFile(s.getCatalogPath(term, dept))
}

// LoadFile reads a catalog from an arbitrary path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &cat, nil
}
