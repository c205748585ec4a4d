package mock

import scrapesuite "github.com/russellbomer/scrapesuite-sub001"

var _ scrapesuite.PatternAnalyzer = (*PatternAnalyzer)(nil)

// PatternAnalyzer is a mock implementation of scrapesuite.PatternAnalyzer.
type PatternAnalyzer struct {
	CandidatesFn func(html string) ([]scrapesuite.Candidate, error)
}

func (a *PatternAnalyzer) Candidates(html string) ([]scrapesuite.Candidate, error) {
	return a.CandidatesFn(html)
}

var _ scrapesuite.FieldDetector = (*FieldDetector)(nil)

// FieldDetector is a mock implementation of scrapesuite.FieldDetector.
type FieldDetector struct {
	DetectFieldsFn func(html string, itemSelector string, fields []scrapesuite.Field) ([]scrapesuite.FieldSelection, error)
}

func (d *FieldDetector) DetectFields(html string, itemSelector string, fields []scrapesuite.Field) ([]scrapesuite.FieldSelection, error) {
	return d.DetectFieldsFn(html, itemSelector, fields)
}
