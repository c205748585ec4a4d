package scrapesuite_test

import (
	"testing"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelector(t *testing.T) {
	t.Parallel()

	t.Run("text mode", func(t *testing.T) {
		t.Parallel()
		sel, err := scrapesuite.ParseSelector("a.title")
		require.NoError(t, err)
		assert.Equal(t, "a.title", sel.Query)
		assert.Equal(t, scrapesuite.ModeText, sel.Mode)
		assert.Empty(t, sel.Attr)
	})

	t.Run("attribute mode", func(t *testing.T) {
		t.Parallel()
		sel, err := scrapesuite.ParseSelector("a.title@href")
		require.NoError(t, err)
		assert.Equal(t, "a.title", sel.Query)
		assert.Equal(t, scrapesuite.ModeAttr, sel.Mode)
		assert.Equal(t, "href", sel.Attr)
	})

	t.Run("bare attribute targets item element", func(t *testing.T) {
		t.Parallel()
		sel, err := scrapesuite.ParseSelector("@data-id")
		require.NoError(t, err)
		assert.Empty(t, sel.Query)
		assert.Equal(t, scrapesuite.ModeAttr, sel.Mode)
		assert.Equal(t, "data-id", sel.Attr)
	})

	t.Run("at sign inside attribute predicate is not a suffix", func(t *testing.T) {
		t.Parallel()
		sel, err := scrapesuite.ParseSelector(`a[href*="@example.com"]`)
		require.NoError(t, err)
		assert.Equal(t, scrapesuite.ModeText, sel.Mode)
		assert.Equal(t, `a[href*="@example.com"]`, sel.Query)
	})

	t.Run("normalizes whitespace and combinators", func(t *testing.T) {
		t.Parallel()
		sel, err := scrapesuite.ParseSelector("ul.list   >  li .item")
		require.NoError(t, err)
		assert.Equal(t, "ul.list > li .item", sel.Query)
	})

	t.Run("orders compound parts canonically", func(t *testing.T) {
		t.Parallel()
		sel, err := scrapesuite.ParseSelector("div.zebra.alpha#main[title][href]")
		require.NoError(t, err)
		assert.Equal(t, "div#main.alpha.zebra[href][title]", sel.Query)
	})

	t.Run("equal selectors after normalization", func(t *testing.T) {
		t.Parallel()
		a, err := scrapesuite.ParseSelector("div.b.a")
		require.NoError(t, err)
		b, err := scrapesuite.ParseSelector("div.a.b")
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{
			"",
			"   ",
			"@",
			"@1bad",
			"div@",
			"a[href",
			"a]",
			`a[href="x]`,
			"> li",
			"li >",
			"ul > > li",
			"div..a",
			"#",
			"div#",
		} {
			_, err := scrapesuite.ParseSelector(text)
			require.Error(t, err, "input %q", text)
			assert.Equal(t, scrapesuite.EINVALID, scrapesuite.ErrorCode(err), "input %q", text)
		}
	})
}

func TestSelectorString(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{
			"a.title",
			"a.title@href",
			"@data-id",
			"ul.list > li",
			"td:nth-child(2)",
			"time@datetime",
			".age@title",
		} {
			sel, err := scrapesuite.ParseSelector(text)
			require.NoError(t, err)
			again, err := scrapesuite.ParseSelector(sel.String())
			require.NoError(t, err)
			assert.True(t, sel.Equal(again), "selector %q", text)
		}
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		t.Parallel()
		norm, err := scrapesuite.NormalizeQuery("div.b.a  >  span[title]")
		require.NoError(t, err)
		again, err := scrapesuite.NormalizeQuery(norm)
		require.NoError(t, err)
		assert.Equal(t, norm, again)
	})
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"div", "div"},
		{"div.b.a", "div.a.b"},
		{".a.b", ".a.b"},
		{"tr.athing", "tr.athing"},
		{"ul>li", "ul > li"},
		{"a + b ~ c", "a + b ~ c"},
		{"div  span", "div span"},
		{"div:hover.x", "div.x:hover"},
	}
	for _, tt := range tests {
		got, err := scrapesuite.NormalizeQuery(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
