// Package extract implements the cascading pattern-extraction passes that
// turn schedule-of-classes pages into catalog records.
//
// The pages are not well-formed markup, so there is no DOM walk for the
// listing content: three regexp passes scan course blocks, then each
// course's captured section block, then each section's captured meeting
// block. Every pass is a best-effort sieve — a candidate span that fails a
// required boundary is dropped silently, siblings are unaffected, and no
// input can make a pass fail. All functions here are pure and log-free.
package extract
