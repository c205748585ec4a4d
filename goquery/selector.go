package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// ParseSelector parses a selector string in the "@attr" suffix grammar and
// verifies that the structural part compiles. Malformed input returns an
// EINVALID error; it never degrades to a partial selector.
func ParseSelector(text string) (scrapesuite.Selector, error) {
	sel, err := scrapesuite.ParseSelector(text)
	if err != nil {
		return scrapesuite.Selector{}, err
	}
	if sel.Query != "" {
		if _, err := cascadia.Compile(sel.Query); err != nil {
			return scrapesuite.Selector{}, scrapesuite.Errorf(scrapesuite.EINVALID, "invalid selector %q: %v", text, err)
		}
	}
	return sel, nil
}

// compileQuery compiles a structural selector into a matcher usable with
// goquery's FindMatcher.
func compileQuery(query string) (cascadia.Selector, error) {
	m, err := cascadia.Compile(query)
	if err != nil {
		return nil, scrapesuite.Errorf(scrapesuite.EINVALID, "invalid selector %q: %v", query, err)
	}
	return m, nil
}

// selectValue applies a parsed selector relative to one item element and
// returns the extracted value. A selector matching nothing yields ok=false,
// never an error.
func selectValue(item *goquery.Selection, sel scrapesuite.Selector, matcher goquery.Matcher) (string, bool) {
	target := item
	if sel.Query != "" {
		found := item.FindMatcher(matcher)
		if found.Length() == 0 {
			return "", false
		}
		target = found.First()
	}

	if sel.Mode == scrapesuite.ModeAttr {
		value, exists := target.Attr(sel.Attr)
		value = strings.TrimSpace(value)
		return value, exists && value != ""
	}

	text := collapseText(target.Text())
	return text, text != ""
}

// collapseText trims and collapses internal whitespace runs to single spaces.
func collapseText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// sampleText returns representative text from the first element of a
// selection, truncated for display.
func sampleText(sel *goquery.Selection) string {
	const maxSample = 120

	text := collapseText(sel.First().Text())
	runes := []rune(text)
	if len(runes) > maxSample {
		return string(runes[:maxSample])
	}
	return text
}
