package goquery_test

import (
	"strings"
	"testing"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	"github.com/russellbomer/scrapesuite-sub001/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface verification.
var _ scrapesuite.FrameworkDetector = (*goquery.Detector)(nil)

const wordpressPage = `<!DOCTYPE html>
<html><head>
<meta name="generator" content="WordPress 6.4">
<script src="/wp-content/themes/site/app.js"></script>
</head><body>
<article class="post hentry"><h2 class="entry-title"><a href="/one">First post title</a></h2></article>
<article class="post hentry"><h2 class="entry-title"><a href="/two">Second post title</a></h2></article>
<article class="post hentry"><h2 class="entry-title"><a href="/three">Third post title</a></h2></article>
</body></html>`

func TestDetectorDetectBest(t *testing.T) {
	t.Parallel()

	t.Run("generator plus resources", func(t *testing.T) {
		t.Parallel()
		det, ok := goquery.NewDetector().DetectBest(wordpressPage)
		require.True(t, ok)
		assert.Equal(t, "wordpress", det.Profile)
		// generator 40 + wp-content 30 + hentry 15
		assert.Equal(t, 85, det.Confidence)
	})

	t.Run("below threshold", func(t *testing.T) {
		t.Parallel()
		// A single weak signal must not clear the threshold.
		page := `<html><body><ul><li class="post-list">x</li></ul></body></html>`
		_, ok := goquery.NewDetector().DetectBest(page)
		assert.False(t, ok)
	})

	t.Run("no signals", func(t *testing.T) {
		t.Parallel()
		_, ok := goquery.NewDetector().DetectBest(`<html><body><p>hello</p></body></html>`)
		assert.False(t, ok)
	})

	t.Run("score capped", func(t *testing.T) {
		t.Parallel()
		page := `<html><head>
<meta name="generator" content="WordPress 6.4">
<script src="/wp-content/a.js"></script>
<script src="/wp-includes/b.js"></script>
</head><body><div class="wp-block hentry">x</div></body></html>`
		det, ok := goquery.NewDetector().DetectBest(page)
		require.True(t, ok)
		assert.Equal(t, scrapesuite.MaxSignalScore, det.Confidence)
	})
}

func TestDetectorDetectAll(t *testing.T) {
	t.Parallel()

	t.Run("ordered by confidence", func(t *testing.T) {
		t.Parallel()
		// WordPress signals plus a weak Bootstrap class signal.
		page := `<html><head>
<meta name="generator" content="WordPress 6.4">
</head><body><div class="card-body">x</div></body></html>`
		all := goquery.NewDetector().DetectAll(page)
		require.Len(t, all, 2)
		assert.Equal(t, "wordpress", all[0].Profile)
		assert.Equal(t, 40, all[0].Confidence)
		assert.Equal(t, "bootstrap", all[1].Profile)
		assert.Equal(t, 20, all[1].Confidence)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		d := goquery.NewDetector()
		first := d.DetectAll(wordpressPage)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, d.DetectAll(wordpressPage))
		}
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, goquery.NewDetector().DetectAll(""))
	})
}

func TestDetectorSignalKinds(t *testing.T) {
	t.Parallel()

	t.Run("data attribute presence", func(t *testing.T) {
		t.Parallel()
		page := `<html><head>
<script src="https://static.parastorage.com/app.js"></script>
</head><body><div data-hook="post-list-item">x</div></body></html>`
		det, ok := goquery.NewDetector().DetectBest(page)
		require.True(t, ok)
		assert.Equal(t, "wix", det.Profile)
		assert.Equal(t, 40, det.Confidence)
	})

	t.Run("inline script body", func(t *testing.T) {
		t.Parallel()
		page := `<html><head>
<script src="/_next/static/chunks/main.js"></script>
<script>window.__NEXT_DATA__ = {"props":{}}</script>
</head><body><article>x</article></body></html>`
		det, ok := goquery.NewDetector().DetectBest(page)
		require.True(t, ok)
		assert.Equal(t, "nextjs", det.Profile)
		// /_next/static 40 + inline __NEXT_DATA__ 15
		assert.Equal(t, 55, det.Confidence)
	})

	t.Run("stylesheet href", func(t *testing.T) {
		t.Parallel()
		page := `<html><head>
<link rel="stylesheet" href="/assets/bootstrap.min.css">
</head><body><div class="card-body">x</div></body></html>`
		det, ok := goquery.NewDetector().DetectBest(page)
		require.True(t, ok)
		assert.Equal(t, "bootstrap", det.Profile)
		assert.Equal(t, 45, det.Confidence)
	})

	t.Run("generator is case-insensitive", func(t *testing.T) {
		t.Parallel()
		page := `<html><head><meta name="generator" content="DRUPAL 10"></head><body><p>x</p></body></html>`
		det, ok := goquery.NewDetector().DetectBest(page)
		require.True(t, ok)
		assert.Equal(t, "drupal", det.Profile)
	})
}

func TestDetectorCustomProfiles(t *testing.T) {
	t.Parallel()

	custom := []scrapesuite.Profile{{
		Name: "acme",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalClass, Pattern: "acme-item", Weight: 50},
		},
		ItemHints: []string{".acme-item"},
	}}
	d := goquery.NewDetectorWithProfiles(custom)

	det, ok := d.DetectBest(`<html><body><div class="acme-item">x</div></body></html>`)
	require.True(t, ok)
	assert.Equal(t, "acme", det.Profile)
	assert.Equal(t, 50, det.Confidence)

	// The built-in registry is not consulted.
	_, ok = d.DetectBest(wordpressPage)
	assert.False(t, ok)
}

func TestProfileByName(t *testing.T) {
	t.Parallel()

	p, err := goquery.ProfileByName("hackernews")
	require.NoError(t, err)
	assert.Equal(t, "hackernews", p.Name)
	assert.NotEmpty(t, p.ItemHints)

	_, err = goquery.ProfileByName("nope")
	require.Error(t, err)
	assert.Equal(t, scrapesuite.ENOTFOUND, scrapesuite.ErrorCode(err))
}

func TestProfilesRegistryWellFormed(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, p := range goquery.Profiles() {
		require.NotEmpty(t, p.Name)
		assert.False(t, seen[p.Name], "duplicate profile %q", p.Name)
		seen[p.Name] = true
		require.NotEmpty(t, p.Signals, "profile %q", p.Name)

		total := 0
		for _, s := range p.Signals {
			assert.NotEmpty(t, s.Pattern, "profile %q", p.Name)
			assert.Greater(t, s.Weight, 0, "profile %q", p.Name)
			total += s.Weight
		}
		// Every profile must be able to clear the threshold on a full match.
		assert.GreaterOrEqual(t, total, scrapesuite.DetectThreshold, "profile %q", p.Name)

		for _, hint := range p.ItemHints {
			_, err := goquery.ParseSelector(hint)
			require.NoError(t, err, "profile %q hint %q", p.Name, hint)
		}
		for field, hints := range p.FieldHints {
			assert.True(t, scrapesuite.ValidField(field), "profile %q", p.Name)
			for _, hint := range hints {
				_, err := goquery.ParseSelector(hint)
				require.NoError(t, err, "profile %q field %q hint %q", p.Name, field, hint)
			}
		}
	}
	assert.True(t, seen["wordpress"])
	assert.True(t, seen["hackernews"])
}

func TestDetectorDeepDocument(t *testing.T) {
	t.Parallel()

	// Pathologically nested markup must not break detection.
	var b strings.Builder
	b.WriteString(`<html><head><meta name="generator" content="WordPress"></head><body>`)
	for i := 0; i < 500; i++ {
		b.WriteString("<div>")
	}
	b.WriteString(`<span class="hentry">x</span>`)
	for i := 0; i < 500; i++ {
		b.WriteString("</div>")
	}
	b.WriteString(`</body></html>`)

	det, ok := goquery.NewDetector().DetectBest(b.String())
	require.True(t, ok)
	assert.Equal(t, "wordpress", det.Profile)
}
