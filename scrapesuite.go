// Package scrapesuite provides the structural pattern inference engine of a
// scraping toolkit. Given an HTML document it proposes ranked selectors for
// repeating "item" patterns (cards, rows, list entries), maps a chosen item
// to per-field selectors for semantic attributes (title, url, date, ...),
// and applies a selector set back to HTML to produce extracted records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package scrapesuite
