package scrapesuite

// Record is one extracted item: a mapping from field name to extracted
// string value plus the item's position in the document. Records are purely
// derived and never mutated after creation.
type Record struct {
	// Index is the item's zero-based position in document order.
	Index int

	// Values holds the extracted value per field. Fields whose selector
	// matched nothing are absent.
	Values map[Field]string

	// Hash is a stable fingerprint of the record's values, usable by
	// callers for change detection.
	Hash uint64
}

// Value returns the extracted value for a field and whether it was present.
func (r Record) Value(f Field) (string, bool) {
	v, ok := r.Values[f]
	return v, ok
}

// Extractor applies a selector set to HTML and returns extracted records.
// The same implementation serves interactive previews and production
// extraction; only the limit differs.
type Extractor interface {
	// Extract applies itemSelector to the document, takes up to limit items
	// in document order (all items when limit <= 0), and applies every
	// field selector relative to each item. A field selector matching
	// nothing yields an absent value for that item, never an error.
	// Identical input always yields identical records.
	Extract(html string, itemSelector string, fields map[Field]Selector, limit int) ([]Record, error)
}
