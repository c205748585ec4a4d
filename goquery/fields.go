package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Compile-time interface verification.
var _ scrapesuite.FieldDetector = (*FieldDetector)(nil)

// FieldDetector maps a chosen item element to per-field selectors by trying
// strategies in fixed priority order: framework field hints, table-header
// column mapping, semantic structure, then generic heuristics.
type FieldDetector struct {
	detector *Detector
}

// NewFieldDetector creates a FieldDetector over the built-in registry.
func NewFieldDetector() *FieldDetector {
	return &FieldDetector{detector: NewDetector()}
}

// NewFieldDetectorWithDetector creates a FieldDetector using a custom
// framework detector.
func NewFieldDetectorWithDetector(detector *Detector) *FieldDetector {
	return &FieldDetector{detector: detector}
}

// fieldStrategy is one detection strategy with a uniform signature. The
// cascade iterates strategies in order and short-circuits on the first
// confident hit.
type fieldStrategy func(field scrapesuite.Field) (scrapesuite.FieldSelection, bool)

// DetectFields detects a selector for each requested field relative to the
// first element matched by itemSelector. Fields with no confident match are
// omitted; omission is success, not failure. A nil fields slice requests
// the default field set.
func (d *FieldDetector) DetectFields(htmlText string, itemSelector string, fields []scrapesuite.Field) ([]scrapesuite.FieldSelection, error) {
	if len(fields) == 0 {
		fields = scrapesuite.DefaultFields()
	}

	itemSel, err := ParseSelector(itemSelector)
	if err != nil {
		return nil, err
	}
	if itemSel.Query == "" || itemSel.Mode != scrapesuite.ModeText {
		return nil, scrapesuite.Errorf(scrapesuite.EINVALID, "item selector must be structural, got %q", itemSelector)
	}
	matcher, err := compileQuery(itemSel.Query)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, nil
	}
	items := doc.FindMatcher(matcher)
	if items.Length() == 0 {
		return nil, nil
	}
	item := representativeItem(items)
	detections := confidentDetections(d.detector.detectDoc(doc))

	strategies := []fieldStrategy{
		func(f scrapesuite.Field) (scrapesuite.FieldSelection, bool) {
			return frameworkField(item, f, detections)
		},
		func(f scrapesuite.Field) (scrapesuite.FieldSelection, bool) {
			return tableColumnField(item, f)
		},
		func(f scrapesuite.Field) (scrapesuite.FieldSelection, bool) {
			return semanticField(item, f)
		},
		func(f scrapesuite.Field) (scrapesuite.FieldSelection, bool) {
			return heuristicField(item, f)
		},
	}

	var out []scrapesuite.FieldSelection
	for _, field := range fields {
		for _, strategy := range strategies {
			if selection, ok := strategy(field); ok {
				out = append(out, selection)
				break
			}
		}
	}
	return out, nil
}

// representativeItem returns the first matched item, skipping a leading
// all-th table header row so heuristics see real data.
func representativeItem(items *goquery.Selection) *goquery.Selection {
	first := items.First()
	if goquery.NodeName(first) == "tr" && items.Length() > 1 {
		cells := first.Children()
		if cells.Length() > 0 && cells.Length() == first.ChildrenFiltered("th").Length() {
			return items.Eq(1)
		}
	}
	return first
}

// frameworkField tests the detected profiles' field hints in order and
// takes the first one that extracts a non-empty value from the item.
func frameworkField(item *goquery.Selection, field scrapesuite.Field, detections []scrapesuite.Detection) (scrapesuite.FieldSelection, bool) {
	for _, det := range detections {
		profile, err := ProfileByName(det.Profile)
		if err != nil {
			continue
		}
		for _, text := range profile.FieldHints[field] {
			sel, err := ParseSelector(text)
			if err != nil {
				continue
			}
			var matcher cascadia.Selector
			if sel.Query != "" {
				matcher, err = compileQuery(sel.Query)
				if err != nil {
					continue
				}
			}
			if _, ok := selectValue(item, sel, matcher); ok {
				return scrapesuite.FieldSelection{
					Field:    field,
					Selector: sel,
					Strategy: scrapesuite.StrategyFramework,
					Tier:     scrapesuite.TierVeryHigh,
				}, true
			}
		}
	}
	return scrapesuite.FieldSelection{}, false
}

// headerKeywords maps fields to the header-cell words that identify their
// column in a data grid.
var headerKeywords = map[scrapesuite.Field][]string{
	scrapesuite.FieldTitle:       {"title", "headline", "subject", "name"},
	scrapesuite.FieldURL:         {"link", "url"},
	scrapesuite.FieldDate:        {"date", "posted", "published", "updated", "when"},
	scrapesuite.FieldAuthor:      {"author", "by", "poster", "user", "creator"},
	scrapesuite.FieldScore:       {"score", "points", "votes", "rating"},
	scrapesuite.FieldPrice:       {"price", "cost", "amount"},
	scrapesuite.FieldCategory:    {"category", "section", "topic", "tag"},
	scrapesuite.FieldImage:       {"image", "photo", "thumbnail"},
	scrapesuite.FieldDescription: {"description", "summary", "excerpt"},
}

// tableColumnField maps a field to a column by matching header cell text
// against the field's keyword table, then generates a same-column selector.
// Only applies when the item is a row in a table that has a header row.
func tableColumnField(item *goquery.Selection, field scrapesuite.Field) (scrapesuite.FieldSelection, bool) {
	if goquery.NodeName(item) != "tr" {
		return scrapesuite.FieldSelection{}, false
	}
	table := item.Closest("table")
	if table.Length() == 0 {
		return scrapesuite.FieldSelection{}, false
	}
	headers := table.Find("thead tr th")
	if headers.Length() == 0 {
		headers = table.Find("tr").First().Find("th")
	}
	if headers.Length() == 0 {
		return scrapesuite.FieldSelection{}, false
	}

	keywords := headerKeywords[field]
	found := scrapesuite.FieldSelection{}
	ok := false
	headers.EachWithBreak(func(i int, header *goquery.Selection) bool {
		if !headerMatches(header.Text(), keywords) {
			return true
		}
		text := columnSelector(field, i+1)
		sel, err := ParseSelector(text)
		if err != nil {
			return true
		}
		matcher, err := compileQuery(sel.Query)
		if err != nil {
			return true
		}
		if _, nonEmpty := selectValue(item, sel, matcher); !nonEmpty {
			return true
		}
		found = scrapesuite.FieldSelection{
			Field:    field,
			Selector: sel,
			Strategy: scrapesuite.StrategyTableHeader,
			Tier:     scrapesuite.TierVeryHigh,
		}
		ok = true
		return false
	})
	return found, ok
}

// headerMatches does whole-word matching so "Sort by" does not look like an
// author column.
func headerMatches(headerText string, keywords []string) bool {
	for _, word := range strings.Fields(strings.ToLower(headerText)) {
		word = strings.Trim(word, ".,:;()")
		for _, kw := range keywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}

func columnSelector(field scrapesuite.Field, column int) string {
	base := "td:nth-child(" + itoa(column) + ")"
	switch field {
	case scrapesuite.FieldURL:
		return base + " a@href"
	case scrapesuite.FieldImage:
		return base + " img@src"
	}
	return base
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// semanticField maps a field through standard semantic elements and
// attributes: headings for titles, time elements for dates, rel/itemprop
// annotations for authorship and media.
func semanticField(item *goquery.Selection, field scrapesuite.Field) (scrapesuite.FieldSelection, bool) {
	switch field {
	case scrapesuite.FieldTitle:
		for _, tag := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
			heading := item.Find(tag).First()
			if heading.Length() > 0 && collapseText(heading.Text()) != "" {
				return confirmed(item, relativeSelector(item, heading), field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
			}
		}

	case scrapesuite.FieldURL:
		if goquery.NodeName(item) == "a" {
			if href, ok := item.Attr("href"); ok && href != "" {
				sel := scrapesuite.Selector{Mode: scrapesuite.ModeAttr, Attr: "href"}
				return scrapesuite.FieldSelection{Field: field, Selector: sel, Strategy: scrapesuite.StrategySemantic, Tier: scrapesuite.TierHigh}, true
			}
		}
		for _, tag := range []string{"h1", "h2", "h3", "h4"} {
			anchor := item.Find(tag + " a").First()
			if anchor.Length() > 0 {
				if href, ok := anchor.Attr("href"); ok && href != "" {
					return confirmed(item, tag+" a@href", field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
				}
			}
		}

	case scrapesuite.FieldDate:
		timeEl := item.Find("time").First()
		if timeEl.Length() > 0 {
			if dt, ok := timeEl.Attr("datetime"); ok && dt != "" {
				return confirmed(item, "time@datetime", field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
			}
			if collapseText(timeEl.Text()) != "" {
				return confirmed(item, "time", field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
			}
		}
		if published := item.Find("[itemprop=datePublished]").First(); published.Length() > 0 {
			if content, ok := published.Attr("content"); ok && content != "" {
				return confirmed(item, "[itemprop=datePublished]@content", field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
			}
		}

	case scrapesuite.FieldAuthor:
		if rel := item.Find("a[rel=author]").First(); rel.Length() > 0 && collapseText(rel.Text()) != "" {
			return confirmed(item, "a[rel=author]", field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
		}
		if prop := item.Find("[itemprop=author]").First(); prop.Length() > 0 && collapseText(prop.Text()) != "" {
			return confirmed(item, "[itemprop=author]", field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
		}

	case scrapesuite.FieldImage:
		if img := item.Find("img[itemprop=image]").First(); img.Length() > 0 {
			if src, ok := img.Attr("src"); ok && src != "" {
				return confirmed(item, "img[itemprop=image]@src", field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
			}
		}

	case scrapesuite.FieldPrice:
		if prop := item.Find("[itemprop=price]").First(); prop.Length() > 0 {
			if content, ok := prop.Attr("content"); ok && content != "" {
				return confirmed(item, "[itemprop=price]@content", field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
			}
			if collapseText(prop.Text()) != "" {
				return confirmed(item, "[itemprop=price]", field, scrapesuite.StrategySemantic, scrapesuite.TierHigh)
			}
		}
	}
	return scrapesuite.FieldSelection{}, false
}

// navActionWords are link texts that indicate navigation actions rather
// than item titles; anchors made of them are penalized.
var navActionWords = map[string]bool{
	"reply": true, "share": true, "flag": true, "hide": true, "vote": true,
	"upvote": true, "downvote": true, "comment": true, "comments": true,
	"next": true, "prev": true, "previous": true, "more": true, "login": true,
	"register": true, "edit": true, "delete": true, "report": true,
	"save": true, "permalink": true, "subscribe": true, "discuss": true,
}

// heuristicField is the generic fallback scan, shaped per field.
func heuristicField(item *goquery.Selection, field scrapesuite.Field) (scrapesuite.FieldSelection, bool) {
	switch field {
	case scrapesuite.FieldTitle:
		if anchor, ok := pickBestAnchor(item); ok {
			return confirmed(item, relativeSelector(item, anchor), field, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
		}

	case scrapesuite.FieldURL:
		if anchor, ok := pickBestAnchor(item); ok {
			return confirmed(item, relativeSelector(item, anchor)+"@href", field, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
		}

	case scrapesuite.FieldDate:
		return dateHeuristic(item)

	case scrapesuite.FieldAuthor:
		if el, ok := classKeywordElement(item, []string{"author", "byline", "username", "submitter", "poster"}); ok {
			return confirmed(item, relativeSelector(item, el), field, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
		}

	case scrapesuite.FieldImage:
		var found scrapesuite.FieldSelection
		ok := false
		item.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			for _, attr := range []string{"src", "data-src"} {
				if v, exists := img.Attr(attr); exists && v != "" {
					found, ok = confirmed(item, relativeSelector(item, img)+"@"+attr, scrapesuite.FieldImage, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
					return !ok
				}
			}
			return true
		})
		return found, ok

	case scrapesuite.FieldPrice:
		if el, ok := classKeywordElement(item, []string{"price", "cost", "amount"}); ok && priceRE.MatchString(el.Text()) {
			return confirmed(item, relativeSelector(item, el), field, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
		}
		if el, ok := leafMatching(item, priceRE); ok {
			return confirmed(item, relativeSelector(item, el), field, scrapesuite.StrategyHeuristic, scrapesuite.TierLow)
		}

	case scrapesuite.FieldScore:
		if el, ok := classKeywordElement(item, []string{"score", "points", "votes", "karma", "likes"}); ok {
			return confirmed(item, relativeSelector(item, el), field, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
		}
		if el, ok := leafMatching(item, scoreRE); ok {
			return confirmed(item, relativeSelector(item, el), field, scrapesuite.StrategyHeuristic, scrapesuite.TierLow)
		}

	case scrapesuite.FieldCategory:
		if el, ok := classKeywordElement(item, []string{"category", "cat-", "section", "badge", "label", "topic"}); ok {
			return confirmed(item, relativeSelector(item, el), field, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
		}

	case scrapesuite.FieldDescription:
		if el, ok := classKeywordElement(item, []string{"summary", "excerpt", "description", "snippet", "subtext"}); ok {
			return confirmed(item, relativeSelector(item, el), field, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
		}
		p := item.Find("p").First()
		if p.Length() > 0 && len(collapseText(p.Text())) >= 40 {
			return confirmed(item, relativeSelector(item, p), field, scrapesuite.StrategyHeuristic, scrapesuite.TierLow)
		}
	}
	return scrapesuite.FieldSelection{}, false
}

// pickBestAnchor scores the item's hyperlinks by text length, navigation
// keyword penalties, and class context, and returns the best candidate for
// a title/url anchor. Document order wins ties.
func pickBestAnchor(item *goquery.Selection) (*goquery.Selection, bool) {
	var best *goquery.Selection
	bestScore := 0

	item.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return
		}
		text := collapseText(a.Text())
		if text == "" {
			return
		}

		score := len(text)
		if score > 80 {
			score = 80
		}
		words := strings.Fields(strings.ToLower(text))
		navWords := 0
		for _, w := range words {
			if navActionWords[strings.Trim(w, ".,!?")] {
				navWords++
			}
		}
		if navWords > 0 && navWords*2 >= len(words) {
			score -= 40
		}
		if classContextBoost(a) {
			score += 25
		}

		if score > bestScore {
			best, bestScore = a, score
		}
	})
	return best, best != nil
}

// classContextBoost reports whether the anchor or its parent carries a
// title-ish class hint.
func classContextBoost(a *goquery.Selection) bool {
	for _, sel := range []*goquery.Selection{a, a.Parent()} {
		class, _ := sel.Attr("class")
		class = strings.ToLower(class)
		for _, hint := range []string{"title", "head", "name", "story", "link"} {
			if strings.Contains(class, hint) {
				return true
			}
		}
	}
	return false
}

// Date-like patterns: ISO-8601, common written formats, numeric dates, and
// relative-time phrases.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}(?:[T ]\d{2}:\d{2})?`),
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:,?\s+\d{4})?\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\.?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*\d{0,4}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b\d+\s+(?:second|minute|hour|day|week|month|year)s?\s+ago\b`),
	regexp.MustCompile(`(?i)\b(?:today|yesterday)\b`),
}

var (
	priceRE = regexp.MustCompile(`(?:[$€£¥]\s*\d[\d,.]*|\b\d[\d,.]*\s*(?:USD|EUR|GBP|JPY)\b)`)
	scoreRE = regexp.MustCompile(`(?i)\b\d+\s*(?:points?|votes?|likes?)\b`)
)

// dateHeuristic scans element text and date-bearing attributes for
// date-like patterns.
func dateHeuristic(item *goquery.Selection) (scrapesuite.FieldSelection, bool) {
	var found scrapesuite.FieldSelection
	ok := false

	item.Find("*").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		for _, attr := range []string{"datetime", "title", "content"} {
			v, exists := el.Attr(attr)
			if !exists || !matchesDate(v) {
				continue
			}
			found, ok = confirmed(item, relativeSelector(item, el)+"@"+attr, scrapesuite.FieldDate, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
			if ok {
				return false
			}
		}
		// Only leaf elements: a container's text would match whenever any
		// descendant does, producing uselessly broad selectors.
		if el.Children().Length() == 0 && matchesDate(el.Text()) {
			found, ok = confirmed(item, relativeSelector(item, el), scrapesuite.FieldDate, scrapesuite.StrategyHeuristic, scrapesuite.TierMedium)
			if ok {
				return false
			}
		}
		return true
	})
	return found, ok
}

func matchesDate(text string) bool {
	for _, re := range datePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// classKeywordElement returns the first descendant with a class containing
// one of the keywords and non-empty text.
func classKeywordElement(item *goquery.Selection, keywords []string) (*goquery.Selection, bool) {
	var found *goquery.Selection
	item.Find("*").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		class, exists := el.Attr("class")
		if !exists {
			return true
		}
		class = strings.ToLower(class)
		for _, kw := range keywords {
			if strings.Contains(class, kw) && collapseText(el.Text()) != "" {
				found = el
				return false
			}
		}
		return true
	})
	return found, found != nil
}

// leafMatching returns the first childless descendant whose text matches
// the pattern.
func leafMatching(item *goquery.Selection, re *regexp.Regexp) (*goquery.Selection, bool) {
	var found *goquery.Selection
	item.Find("*").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if el.Children().Length() == 0 && re.MatchString(el.Text()) {
			found = el
			return false
		}
		return true
	})
	return found, found != nil
}

// relativeSelector builds a selector for el relative to the item. Elements
// without distinguishing classes get one level of classed parent context.
func relativeSelector(item *goquery.Selection, el *goquery.Selection) string {
	sig := elementSignature(el)
	if strings.ContainsAny(sig, ".#") {
		return sig
	}
	parent := el.Parent()
	for parent.Length() > 0 && len(item.Nodes) > 0 && parent.Nodes[0] != item.Nodes[0] {
		psig := elementSignature(parent)
		if strings.ContainsAny(psig, ".#") {
			return psig + " " + sig
		}
		parent = parent.Parent()
	}
	return sig
}

// confirmed parses and verifies a generated selector against the item
// before returning it; a selector that fails to parse or extracts nothing
// is discarded rather than reported.
func confirmed(item *goquery.Selection, text string, field scrapesuite.Field, strategy scrapesuite.Strategy, tier scrapesuite.Tier) (scrapesuite.FieldSelection, bool) {
	sel, err := ParseSelector(text)
	if err != nil {
		return scrapesuite.FieldSelection{}, false
	}
	var matcher cascadia.Selector
	if sel.Query != "" {
		matcher, err = compileQuery(sel.Query)
		if err != nil {
			return scrapesuite.FieldSelection{}, false
		}
	}
	if _, ok := selectValue(item, sel, matcher); !ok {
		return scrapesuite.FieldSelection{}, false
	}
	return scrapesuite.FieldSelection{Field: field, Selector: sel, Strategy: strategy, Tier: tier}, true
}
