// Package soc fetches schedule-of-classes pages and drives a full crawl.
//
// The endpoint serves one listing page per department via ?crs=<dept> and
// ?term=<term>; the pseudo-department DEPT returns the department index.
// Fetching is the only slow or failing operation in the system: transient
// server errors are retried with exponential backoff, and a page that
// cannot be fetched surfaces as an error to the caller. Extraction itself
// never fails; it just skips what it cannot parse.
package soc
