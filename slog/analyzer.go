// Package slog provides logging decorators for the scrapesuite service
// interfaces, built on the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Ensure LoggingAnalyzer implements scrapesuite.PatternAnalyzer.
var _ scrapesuite.PatternAnalyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps a PatternAnalyzer with debug logging for candidate
// detection.
type LoggingAnalyzer struct {
	next   scrapesuite.PatternAnalyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next scrapesuite.PatternAnalyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Candidates runs the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Candidates(html string) ([]scrapesuite.Candidate, error) {
	begin := time.Now()
	candidates, err := a.next.Candidates(html)
	if err != nil {
		a.logger.Error("candidate detection failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	top := "(none)"
	if len(candidates) > 0 {
		top = candidates[0].Selector
	}
	a.logger.Info("candidate detection",
		"candidates", len(candidates),
		"top", top,
		"duration", time.Since(begin),
	)
	return candidates, nil
}
