package soc

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	BaseURL   = "http://www.sis.umd.edu/bin/soc"
	UserAgent = "testudo-cli/1.0 (github.com/soc-tools/testudo)"
	Timeout   = 30 * time.Second

	// DepartmentIndex is the pseudo-department code that makes the endpoint
	// return the department index instead of a listing page.
	DepartmentIndex = "DEPT"

	maxRetries = 3
)

// Client fetches schedule-of-classes pages for one term.
type Client struct {
	client  *http.Client
	baseURL string
	term    string

	// newBackOff builds the retry policy for one fetch. Tests shrink the
	// intervals here.
	newBackOff func() backoff.BackOff
}

// New creates a Client for the given term.
func New(term string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: BaseURL,
		term:    term,
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
		},
	}
}

// Term returns the term the client was created for.
func (c *Client) Term() string {
	return c.term
}

// FetchListingPage fetches the raw listing page for one department, or the
// department index when dept is DepartmentIndex. Transient failures
// (network errors, 5xx responses) are retried; other non-200 responses
// fail immediately.
func (c *Client) FetchListingPage(dept string) (string, error) {
	params := url.Values{}
	params.Set("crs", dept)
	params.Set("term", c.term)
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var body string
	operation := func() error {
		req, err := http.NewRequest("GET", reqURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		body = string(data)
		return nil
	}

	if err := backoff.Retry(operation, c.newBackOff()); err != nil {
		return "", fmt.Errorf("fetching %s for term %s: %w", dept, c.term, err)
	}
	return body, nil
}
