package slog

import (
	"log/slog"
	"time"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Ensure LoggingDetector implements scrapesuite.FrameworkDetector.
var _ scrapesuite.FrameworkDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a FrameworkDetector with debug logging for framework
// detection.
type LoggingDetector struct {
	next   scrapesuite.FrameworkDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next scrapesuite.FrameworkDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// DetectAll delegates to the wrapped detector.
func (d *LoggingDetector) DetectAll(html string) []scrapesuite.Detection {
	return d.next.DetectAll(html)
}

// DetectBest detects the best framework match and logs it.
func (d *LoggingDetector) DetectBest(html string) (scrapesuite.Detection, bool) {
	begin := time.Now()
	detection, ok := d.next.DetectBest(html)

	framework := "(unknown)"
	confidence := 0
	if ok {
		framework = detection.Profile
		confidence = detection.Confidence
	}
	d.logger.Info("framework detection",
		"framework", framework,
		"confidence", confidence,
		"duration", time.Since(begin),
	)
	return detection, ok
}
