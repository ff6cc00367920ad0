// Package cli implements the command-line interface for testudo.
//
// The cli package provides the Cobra-based CLI that crawls a term's
// schedule-of-classes pages (or reloads a previously saved catalog),
// persists the result, runs the requested exports (JSON, CSV, ICS), and
// prints a crawl summary as text or JSON.
package cli
