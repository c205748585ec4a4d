package slog

import (
	"log/slog"
	"time"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Ensure LoggingFieldDetector implements scrapesuite.FieldDetector.
var _ scrapesuite.FieldDetector = (*LoggingFieldDetector)(nil)

// LoggingFieldDetector wraps a FieldDetector with debug logging for field
// detection.
type LoggingFieldDetector struct {
	next   scrapesuite.FieldDetector
	logger *slog.Logger
}

// NewLoggingFieldDetector creates a new LoggingFieldDetector.
func NewLoggingFieldDetector(next scrapesuite.FieldDetector, logger *slog.Logger) *LoggingFieldDetector {
	return &LoggingFieldDetector{next: next, logger: logger}
}

// DetectFields runs the wrapped detector and logs requested vs. detected
// field counts.
func (d *LoggingFieldDetector) DetectFields(html string, itemSelector string, fields []scrapesuite.Field) ([]scrapesuite.FieldSelection, error) {
	begin := time.Now()
	requested := len(fields)
	if requested == 0 {
		requested = len(scrapesuite.DefaultFields())
	}

	selections, err := d.next.DetectFields(html, itemSelector, fields)
	if err != nil {
		d.logger.Error("field detection failed",
			"item_selector", itemSelector,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	d.logger.Info("field detection",
		"item_selector", itemSelector,
		"requested", requested,
		"detected", len(selections),
		"duration", time.Since(begin),
	)
	return selections, nil
}
