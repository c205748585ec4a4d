package mock

import scrapesuite "github.com/russellbomer/scrapesuite-sub001"

var _ scrapesuite.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scrapesuite.Extractor.
type Extractor struct {
	ExtractFn func(html string, itemSelector string, fields map[scrapesuite.Field]scrapesuite.Selector, limit int) ([]scrapesuite.Record, error)
}

func (e *Extractor) Extract(html string, itemSelector string, fields map[scrapesuite.Field]scrapesuite.Selector, limit int) ([]scrapesuite.Record, error) {
	return e.ExtractFn(html, itemSelector, fields, limit)
}
