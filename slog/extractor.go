package slog

import (
	"log/slog"
	"time"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Ensure LoggingExtractor implements scrapesuite.Extractor.
var _ scrapesuite.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging for extraction runs.
type LoggingExtractor struct {
	next   scrapesuite.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next scrapesuite.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract runs the wrapped extractor and logs record counts.
func (e *LoggingExtractor) Extract(html string, itemSelector string, fields map[scrapesuite.Field]scrapesuite.Selector, limit int) ([]scrapesuite.Record, error) {
	begin := time.Now()
	records, err := e.next.Extract(html, itemSelector, fields, limit)
	if err != nil {
		e.logger.Error("extraction failed",
			"item_selector", itemSelector,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	e.logger.Info("extraction",
		"item_selector", itemSelector,
		"fields", len(fields),
		"records", len(records),
		"duration", time.Since(begin),
	)
	return records, nil
}
