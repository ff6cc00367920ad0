// Package export serializes crawled catalogs for external consumers.
//
// Three surfaces: nested JSON (the canonical rich shape), flattened CSV
// (one file each for courses, sections, and meeting times, child rows
// tagged with their parent's natural key), and iCalendar (one weekly
// recurring event per meeting time).
package export
