package goquery

import (
	"sort"
	"strings"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// strategyOrder fixes the tie-break order between strategies: the order in
// which the analyzer runs them.
var strategyOrder = map[scrapesuite.Strategy]int{
	scrapesuite.StrategyFramework:     0,
	scrapesuite.StrategyRepeatedClass: 1,
	scrapesuite.StrategyTableRow:      2,
	scrapesuite.StrategySemanticTag:   3,
	scrapesuite.StrategyLinkCluster:   4,
}

// rankCandidates deduplicates candidates by normalized selector, marks
// framework-hinted entries, orders by the composite key (tier weight,
// framework boost, title plausibility, item count, strategy order, selector
// string) and returns the top MaxCandidates.
func rankCandidates(candidates []scrapesuite.Candidate, hints []string) []scrapesuite.Candidate {
	index := make(map[string]int)
	var out []scrapesuite.Candidate

	for _, c := range candidates {
		norm, err := scrapesuite.NormalizeQuery(c.Selector)
		if err != nil {
			// A selector a strategy failed to build cleanly is dropped, not
			// propagated.
			continue
		}
		c.Selector = norm
		if !c.FrameworkHinted {
			c.FrameworkHinted = specializesAnyHint(norm, hints)
		}

		i, seen := index[norm]
		if !seen {
			index[norm] = len(out)
			out = append(out, c)
			continue
		}
		// On duplicate keep the higher tier, then the strategy that found
		// more items; the framework flag survives either way.
		hinted := out[i].FrameworkHinted || c.FrameworkHinted
		if c.Tier > out[i].Tier || (c.Tier == out[i].Tier && c.Count > out[i].Count) {
			out[i] = c
		}
		out[i].FrameworkHinted = hinted
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Tier != b.Tier {
			return a.Tier > b.Tier
		}
		if a.FrameworkHinted != b.FrameworkHinted {
			return a.FrameworkHinted
		}
		if ap, bp := a.TitlePlausible(), b.TitlePlausible(); ap != bp {
			return ap
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if ao, bo := strategyOrder[a.Strategy], strategyOrder[b.Strategy]; ao != bo {
			return ao < bo
		}
		return a.Selector < b.Selector
	})

	if len(out) > scrapesuite.MaxCandidates {
		out = out[:scrapesuite.MaxCandidates]
	}
	return out
}

// specializesAnyHint reports whether a normalized selector equals or
// specializes one of the framework hints.
func specializesAnyHint(selector string, hints []string) bool {
	for _, hint := range hints {
		if specializesHint(selector, hint) {
			return true
		}
	}
	return false
}

// specializesHint reports whether selector is the hint itself, narrows it
// with a context prefix, or adds simple selectors to a single-compound
// hint (e.g. "tr.athing" specializes ".athing").
func specializesHint(selector, hint string) bool {
	if selector == hint {
		return true
	}
	if strings.HasSuffix(selector, " "+hint) || strings.HasSuffix(selector, "> "+hint) {
		return true
	}
	if strings.ContainsAny(hint, " >") {
		return false
	}
	last := selector
	if i := strings.LastIndexAny(selector, " >"); i >= 0 {
		last = selector[i+1:]
	}
	return compoundContains(last, hint)
}

// compoundContains reports whether every simple selector of needle appears
// in haystack. Both must be single compound selectors.
func compoundContains(haystack, needle string) bool {
	hay := simpleSelectors(haystack)
	for simple := range simpleSelectors(needle) {
		if !hay[simple] {
			return false
		}
	}
	return true
}

func simpleSelectors(compound string) map[string]bool {
	parts := make(map[string]bool)
	var cur strings.Builder
	depth := 0
	flush := func() {
		if cur.Len() > 0 {
			parts[cur.String()] = true
			cur.Reset()
		}
	}
	for _, r := range compound {
		switch {
		case r == '[':
			if depth == 0 {
				flush()
			}
			depth++
		case r == ']':
			depth--
		case depth == 0 && (r == '.' || r == '#' || r == ':'):
			flush()
		}
		cur.WriteRune(r)
	}
	flush()
	return parts
}
