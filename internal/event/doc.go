// Package event provides the types and classification rules for UFMG
// academic-calendar entries.
//
// An Event is built once per matched anchor element during scraping and is
// never mutated afterwards. Its six boolean flags are derived purely from the
// title text through a fixed, ordered table of regular-expression rules, so
// classification can be tested in isolation from any HTML fetching.
package event
