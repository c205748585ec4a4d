package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/cespare/xxhash/v2"
	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Compile-time interface verification.
var _ scrapesuite.Extractor = (*Extractor)(nil)

// Extractor applies a selector set to static HTML. It holds no state; the
// zero value is ready to use.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// fieldMatcher is a parsed field selector paired with its compiled matcher.
// Selectors that fail to compile are dropped before extraction; the
// remaining fields still extract.
type fieldMatcher struct {
	field   scrapesuite.Field
	sel     scrapesuite.Selector
	matcher cascadia.Selector
}

// Extract applies itemSelector to the document and every field selector
// relative to each matched item, up to limit items in document order. A
// limit <= 0 extracts all items. An unparseable item selector is an
// EINVALID error; a field selector that matches nothing on a given item
// simply leaves that field absent.
func (e *Extractor) Extract(htmlText string, itemSelector string, fields map[scrapesuite.Field]scrapesuite.Selector, limit int) ([]scrapesuite.Record, error) {
	itemSel, err := ParseSelector(itemSelector)
	if err != nil {
		return nil, err
	}
	if itemSel.Query == "" || itemSel.Mode != scrapesuite.ModeText {
		return nil, scrapesuite.Errorf(scrapesuite.EINVALID, "item selector must be structural, got %q", itemSelector)
	}
	itemMatcher, err := compileQuery(itemSel.Query)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, nil
	}

	matchers := make([]fieldMatcher, 0, len(fields))
	for field, sel := range fields {
		fm := fieldMatcher{field: field, sel: sel}
		if sel.Query != "" {
			m, err := compileQuery(sel.Query)
			if err != nil {
				continue
			}
			fm.matcher = m
		}
		matchers = append(matchers, fm)
	}

	var records []scrapesuite.Record
	doc.FindMatcher(itemMatcher).EachWithBreak(func(i int, item *goquery.Selection) bool {
		if limit > 0 && len(records) >= limit {
			return false
		}
		values := make(map[scrapesuite.Field]string, len(matchers))
		for _, fm := range matchers {
			if value, ok := selectValue(item, fm.sel, fm.matcher); ok {
				values[fm.field] = value
			}
		}
		records = append(records, scrapesuite.Record{
			Index:  i,
			Values: values,
			Hash:   recordHash(values),
		})
		return true
	})
	return records, nil
}

// recordHash fingerprints a record's values for change detection. Fields
// are hashed in sorted order so the fingerprint is independent of map
// iteration order.
func recordHash(values map[scrapesuite.Field]string) uint64 {
	fields := make([]string, 0, len(values))
	for f := range values {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	h := xxhash.New()
	for _, f := range fields {
		h.WriteString(f)
		h.WriteString("\x1f")
		h.WriteString(values[scrapesuite.Field(f)])
		h.WriteString("\x1e")
	}
	return h.Sum64()
}
