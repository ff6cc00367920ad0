package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/soc-tools/testudo/internal/catalog"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Summary describes one crawl or reload for the user.
type Summary struct {
	CheckedAt       time.Time `json:"checked_at"`
	Term            string    `json:"term"`
	Dept            string    `json:"dept,omitempty"`
	Courses         int       `json:"courses"`
	Sections        int       `json:"sections"`
	Meetings        int       `json:"meetings"`
	WithoutSections int       `json:"courses_without_sections"`
	CatalogPath     string    `json:"catalog_path,omitempty"`
}

// BuildSummary tallies courses, sections, and meetings for output.
func BuildSummary(term, dept string, courses []catalog.Course, catalogPath string) *Summary {
	s := &Summary{
		CheckedAt:   time.Now().UTC(),
		Term:        term,
		Dept:        dept,
		Courses:     len(courses),
		CatalogPath: catalogPath,
	}
	for _, c := range courses {
		if c.Sections == nil {
			s.WithoutSections++
			continue
		}
		s.Sections += len(c.Sections)
		for _, sec := range c.Sections {
			s.Meetings += len(sec.Meetings)
		}
	}
	return s
}

// WriteOutput writes the summary in the specified format
func WriteOutput(w io.Writer, summary *Summary, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeText(w, summary, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, summary *Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func writeText(w io.Writer, summary *Summary, verbose bool) error {
	scope := fmt.Sprintf("term %s", summary.Term)
	if summary.Dept != "" {
		scope = fmt.Sprintf("%s %s", summary.Dept, scope)
	}

	if summary.Courses == 0 {
		fmt.Fprintf(w, "No courses found for %s.\n", scope)
		return nil
	}

	fmt.Fprintf(w, "%s: %d courses, %d sections, %d meeting times\n",
		scope, summary.Courses, summary.Sections, summary.Meetings)
	if verbose {
		fmt.Fprintf(w, "  courses without section data: %d\n", summary.WithoutSections)
	}
	if summary.CatalogPath != "" {
		fmt.Fprintf(w, "Catalog: %s\n", summary.CatalogPath)
	}

	return nil
}
