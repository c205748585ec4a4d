package scrapesuite

// Field names a semantic attribute of an item.
type Field string

// Semantic fields.
const (
	FieldTitle       Field = "title"
	FieldURL         Field = "url"
	FieldDate        Field = "date"
	FieldAuthor      Field = "author"
	FieldScore       Field = "score"
	FieldImage       Field = "image"
	FieldPrice       Field = "price"
	FieldCategory    Field = "category"
	FieldDescription Field = "description"
)

// DefaultFields returns the fields detected when the caller does not ask
// for a specific set.
func DefaultFields() []Field {
	return []Field{FieldTitle, FieldURL, FieldDate, FieldAuthor}
}

// AllFields returns every supported field in a fixed order.
func AllFields() []Field {
	return []Field{
		FieldTitle, FieldURL, FieldDate, FieldAuthor,
		FieldScore, FieldImage, FieldPrice, FieldCategory, FieldDescription,
	}
}

// ValidField reports whether f names a supported field.
func ValidField(f Field) bool {
	switch f {
	case FieldTitle, FieldURL, FieldDate, FieldAuthor,
		FieldScore, FieldImage, FieldPrice, FieldCategory, FieldDescription:
		return true
	}
	return false
}

// FieldSelection is a detected selector for one semantic field, relative to
// an item element.
type FieldSelection struct {
	Field    Field
	Selector Selector
	Strategy Strategy
	Tier     Tier
}

// FieldDetector maps a chosen item element to per-field selectors.
type FieldDetector interface {
	// DetectFields tries detection strategies in fixed priority order for
	// each requested field and keeps the first confident hit. Fields with
	// no confident match are omitted from the result; omission is success,
	// not failure. A nil fields slice requests DefaultFields.
	DetectFields(html string, itemSelector string, fields []Field) ([]FieldSelection, error)
}
