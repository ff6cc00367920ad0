package soc

import (
	"fmt"
	"time"

	"github.com/soc-tools/testudo/internal/catalog"
	"github.com/soc-tools/testudo/internal/extract"
	"github.com/soc-tools/testudo/internal/logger"
)

// Departments fetches the department index and extracts its entries.
func (c *Client) Departments() ([]catalog.Department, error) {
	start := time.Now()
	page, err := c.FetchListingPage(DepartmentIndex)
	if err != nil {
		return nil, err
	}
	logger.RecordTiming("soc.fetch", time.Since(start))
	logger.IncrCounter("soc.pages")

	departments := extract.Departments(page)
	logger.Info("departments found", logger.Fields{
		"term":  c.term,
		"count": len(departments),
	})
	return departments, nil
}

// Courses fetches one department's listing page and extracts its courses.
func (c *Client) Courses(dept string) ([]catalog.Course, error) {
	start := time.Now()
	page, err := c.FetchListingPage(dept)
	if err != nil {
		return nil, err
	}
	logger.RecordTiming("soc.fetch", time.Since(start))
	logger.IncrCounter("soc.pages")

	courses := extract.Courses(page)
	logger.Debug("courses parsed", logger.Fields{
		"dept":  dept,
		"count": len(courses),
	})
	return courses, nil
}

// AllCourses crawls every department from the index, in index order, and
// returns the concatenated courses. Departments that appear more than once
// on the index are crawled once per appearance; the engine does not
// deduplicate them.
func (c *Client) AllCourses() ([]catalog.Course, error) {
	departments, err := c.Departments()
	if err != nil {
		return nil, err
	}

	all := make([]catalog.Course, 0)
	for i, d := range departments {
		logger.Info("crawling department", logger.Fields{
			"dept":  d.Code,
			"pos":   i + 1,
			"total": len(departments),
		})
		courses, err := c.Courses(d.Code)
		if err != nil {
			return nil, fmt.Errorf("department %s: %w", d.Code, err)
		}
		logger.IncrCounter("soc.departments")
		all = append(all, courses...)
	}

	logger.Info("crawl complete", logger.Fields{
		"term":        c.term,
		"departments": len(departments),
		"courses":     len(all),
	})
	return all, nil
}
