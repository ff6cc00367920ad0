// Package catalog provides the record types produced by a schedule-of-classes
// crawl: departments, courses, sections, and meeting times.
//
// All records are plain immutable values built once per extraction pass.
// Optional text fields are *string so that "field absent" survives JSON
// round-trips as null; a Course with no section block at all carries a nil
// Sections slice, distinct from a present-but-empty one.
package catalog
