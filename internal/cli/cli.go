package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/soc-tools/testudo/internal/catalog"
	"github.com/soc-tools/testudo/internal/export"
	"github.com/soc-tools/testudo/internal/logger"
	"github.com/soc-tools/testudo/internal/soc"
	"github.com/soc-tools/testudo/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagTerm    string
	flagDept    string
	flagInput   string
	flagDataDir string
	flagOut     string
	flagCSVDir  string
	flagICS     string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testudo",
		Short: "Crawl and export schedule-of-classes course data",
		Long: `A CLI tool to crawl schedule-of-classes listing pages into structured
course data (departments, courses, sections, meeting times) and export it
as JSON, CSV, or an iCalendar of weekly meetings.`,
		RunE: runCrawl,
	}

	cmd.Flags().StringVar(&flagTerm, "term", "", "Term code, e.g. 201101 (required unless --input is given)")
	cmd.Flags().StringVar(&flagDept, "dept", "", "Limit the crawl to one department code")
	cmd.Flags().StringVar(&flagInput, "input", "", "Reuse a previously saved catalog file instead of crawling")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "~/.local/share/testudo", "Data directory for saved catalogs")
	cmd.Flags().StringVar(&flagOut, "out", "", "Write the nested JSON export to this file")
	cmd.Flags().StringVar(&flagCSVDir, "csv-dir", "", "Write courses.csv, sections.csv, class_times.csv into this directory")
	cmd.Flags().StringVar(&flagICS, "ics", "", "Write an iCalendar of section meeting times to this file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runCrawl is the main command logic
func runCrawl(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	term := strings.TrimSpace(flagTerm)
	dept := strings.ToUpper(strings.TrimSpace(flagDept))

	var (
		courses     []catalog.Course
		catalogPath string
	)

	if flagInput != "" {
		cat, err := storage.LoadFile(flagInput)
		if err != nil {
			return fmt.Errorf("loading input catalog: %w", err)
		}
		courses = cat.Courses
		if cat.Term != "" {
			term = cat.Term
		}
		catalogPath = flagInput
	} else {
		if term == "" {
			return fmt.Errorf("--term is required unless --input is given")
		}

		client := soc.New(term)
		var err error
		if dept != "" {
			courses, err = client.Courses(dept)
		} else {
			courses, err = client.AllCourses()
		}
		if err != nil {
			return fmt.Errorf("crawling term %s: %w", term, err)
		}

		store, err := storage.New(flagDataDir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
		catalogPath, err = store.Save(storage.NewCatalog(term, dept, courses))
		if err != nil {
			return fmt.Errorf("saving catalog: %w", err)
		}
	}

	if flagOut != "" {
		if err := writeJSONFile(flagOut, courses); err != nil {
			return err
		}
	}
	if flagCSVDir != "" {
		if err := export.WriteCSVDir(flagCSVDir, courses); err != nil {
			return fmt.Errorf("writing csv export: %w", err)
		}
	}
	if flagICS != "" {
		if err := writeICSFile(flagICS, courses); err != nil {
			return err
		}
	}

	summary := BuildSummary(term, dept, courses, catalogPath)
	if err := WriteOutput(os.Stdout, summary, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func writeJSONFile(path string, courses []catalog.Course) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := export.WriteJSON(f, courses); err != nil {
		return fmt.Errorf("writing json export: %w", err)
	}
	return nil
}

func writeICSFile(path string, courses []catalog.Course) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := export.WriteICS(f, courses, time.Now()); err != nil {
		return fmt.Errorf("writing ics export: %w", err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
