package main

import (
	"fmt"
	"os"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	"golang.org/x/sync/errgroup"
)

type analyzeResult struct {
	file       string
	framework  string
	confidence int
	candidates []scrapesuite.Candidate
}

// Run executes the analyze command: every file is analyzed concurrently and
// results print in input order.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]analyzeResult, len(c.Files))

	g, _ := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, file := range c.Files {
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			html := string(data)

			result := analyzeResult{file: file}
			if det, ok := deps.Detector.DetectBest(html); ok {
				result.framework = det.Profile
				result.confidence = det.Confidence
			}
			if result.candidates, err = deps.Analyzer.Candidates(html); err != nil {
				return fmt.Errorf("failed to analyze %s: %w", file, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	for _, result := range results {
		fmt.Fprintf(deps.Stdout, "%s\n", result.file)
		if result.framework != "" {
			fmt.Fprintf(deps.Stdout, "  framework: %s (confidence %d)\n", result.framework, result.confidence)
		}
		if len(result.candidates) == 0 {
			fmt.Fprintln(deps.Stdout, "  no item candidates found")
			continue
		}

		shown := result.candidates
		if c.Top > 0 && len(shown) > c.Top {
			shown = shown[:c.Top]
		}
		for _, cand := range shown {
			marker := " "
			if cand.FrameworkHinted {
				marker = "*"
			}
			fmt.Fprintf(deps.Stdout, "  %s %-40s  count=%-4d tier=%-9s strategy=%s\n",
				marker, cand.Selector, cand.Count, cand.Tier, cand.Strategy)
		}
	}

	return nil
}
