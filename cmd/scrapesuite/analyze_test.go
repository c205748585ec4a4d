package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	main "github.com/russellbomer/scrapesuite-sub001/cmd/scrapesuite"
	"github.com/russellbomer/scrapesuite-sub001/goquery"
	"github.com/russellbomer/scrapesuite-sub001/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHTMLFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	page := `<html><body><div>
<div class="story">Alpha story headline</div>
<div class="story">Beta story headline</div>
<div class="story">Gamma story headline</div>
</div></body></html>`

	t.Run("prints ranked candidates per file", func(t *testing.T) {
		t.Parallel()

		first := writeHTMLFile(t, "first.html", page)
		second := writeHTMLFile(t, "second.html", page)

		stdout := &bytes.Buffer{}
		detector := goquery.NewDetector()
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Detector: detector,
			Analyzer: goquery.NewAnalyzerWithDetector(detector),
		}

		cmd := &main.AnalyzeCmd{Files: []string{first, second}, Top: 10, Concurrency: 2}
		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, first)
		assert.Contains(t, output, second)
		assert.Contains(t, output, ".story")
		assert.Contains(t, output, "count=3")

		// Input order is preserved regardless of completion order.
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte(first)), bytes.Index(stdout.Bytes(), []byte(second)))
	})

	t.Run("reports empty documents without failing", func(t *testing.T) {
		t.Parallel()

		empty := writeHTMLFile(t, "empty.html", "")

		stdout := &bytes.Buffer{}
		detector := goquery.NewDetector()
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Detector: detector,
			Analyzer: goquery.NewAnalyzerWithDetector(detector),
		}

		cmd := &main.AnalyzeCmd{Files: []string{empty}, Top: 10, Concurrency: 1}
		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "no item candidates found")
	})

	t.Run("fails on unreadable file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		detector := goquery.NewDetector()
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Detector: detector,
			Analyzer: goquery.NewAnalyzerWithDetector(detector),
		}

		cmd := &main.AnalyzeCmd{Files: []string{filepath.Join(t.TempDir(), "missing.html")}, Concurrency: 1}
		err := cmd.Run(deps)
		require.Error(t, err)
	})
}

func TestPreviewCmd_Run(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<div class="story"><a href="/1">First story</a></div>
<div class="story"><a href="/2">Second story</a></div>
<div class="story"><a href="/3">Third story</a></div>
</body></html>`

	t.Run("extracts records with inline selectors", func(t *testing.T) {
		t.Parallel()

		file := writeHTMLFile(t, "page.html", page)

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: goquery.NewExtractor(),
		}

		cmd := &main.PreviewCmd{
			File:  file,
			Item:  ".story",
			Field: map[string]string{"title": "a", "url": "a@href"},
			Limit: 2,
		}
		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "First story")
		assert.Contains(t, output, "/1")
		assert.NotContains(t, output, "Third story")
		assert.Contains(t, output, "2 record(s)")
	})

	t.Run("resolves a stored job by name", func(t *testing.T) {
		t.Parallel()

		file := writeHTMLFile(t, "page.html", page)

		jobs := &mock.JobService{
			FindJobByIDFn: func(_ context.Context, id string) (*scrapesuite.Job, error) {
				return nil, scrapesuite.Errorf(scrapesuite.ENOTFOUND, "no such id")
			},
			FindJobsFn: func(_ context.Context, filter scrapesuite.JobFilter) ([]*scrapesuite.Job, error) {
				if filter.Name != nil && *filter.Name == "stories" {
					return []*scrapesuite.Job{{
						ID:           "job-123",
						Name:         "stories",
						ItemSelector: ".story",
						Fields: map[scrapesuite.Field]string{
							scrapesuite.FieldTitle: "a",
						},
					}}, nil
				}
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Jobs:      jobs,
			Extractor: goquery.NewExtractor(),
		}

		cmd := &main.PreviewCmd{File: file, Job: "stories"}
		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "First story")
		assert.Contains(t, output, "3 record(s)")
	})

	t.Run("rejects unknown field names", func(t *testing.T) {
		t.Parallel()

		file := writeHTMLFile(t, "page.html", page)

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: goquery.NewExtractor(),
		}

		cmd := &main.PreviewCmd{
			File:  file,
			Item:  ".story",
			Field: map[string]string{"sentiment": "a"},
		}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, scrapesuite.EINVALID, scrapesuite.ErrorCode(err))
	})

	t.Run("requires an item selector or a job", func(t *testing.T) {
		t.Parallel()

		file := writeHTMLFile(t, "page.html", page)

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: goquery.NewExtractor(),
		}

		err := (&main.PreviewCmd{File: file}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, scrapesuite.EINVALID, scrapesuite.ErrorCode(err))
	})
}
