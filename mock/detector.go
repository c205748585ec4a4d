// Package mock provides function-field mock implementations of the
// scrapesuite service interfaces for testing.
package mock

import scrapesuite "github.com/russellbomer/scrapesuite-sub001"

var _ scrapesuite.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of scrapesuite.FrameworkDetector.
type FrameworkDetector struct {
	DetectAllFn  func(html string) []scrapesuite.Detection
	DetectBestFn func(html string) (scrapesuite.Detection, bool)
}

func (d *FrameworkDetector) DetectAll(html string) []scrapesuite.Detection {
	return d.DetectAllFn(html)
}

func (d *FrameworkDetector) DetectBest(html string) (scrapesuite.Detection, bool) {
	return d.DetectBestFn(html)
}
