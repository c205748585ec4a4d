package scrapesuite

import (
	"strings"
	"unicode"
)

// Tier is a coarse confidence ordinal used to rank candidates before finer
// tie-breaks. Its numeric value doubles as the sort weight.
type Tier int

// Confidence tiers, ordered by weight.
const (
	TierLow      Tier = 1
	TierMedium   Tier = 2
	TierHigh     Tier = 3
	TierVeryHigh Tier = 4
)

// Weight returns the tier's numeric sort weight.
func (t Tier) Weight() int { return int(t) }

// String returns the tier's display name.
func (t Tier) String() string {
	switch t {
	case TierVeryHigh:
		return "very-high"
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	case TierLow:
		return "low"
	}
	return "unknown"
}

// Strategy tags the detection strategy that produced a candidate or field
// selection, for debuggability.
type Strategy string

// Candidate origin strategies, in cascade order.
const (
	StrategyFramework     Strategy = "framework"
	StrategyTableHeader   Strategy = "table-header"
	StrategyRepeatedClass Strategy = "repeated-class"
	StrategyTableRow      Strategy = "table-row"
	StrategySemanticTag   Strategy = "semantic-tag"
	StrategySemantic      Strategy = "semantic"
	StrategyLinkCluster   Strategy = "link-cluster"
	StrategyHeuristic     Strategy = "heuristic"
)

// Candidate generation tunables.
const (
	// MinItemCount is the minimum number of repetitions for a selector to
	// qualify as an item-container candidate.
	MinItemCount = 3

	// MaxCandidates bounds the ranked candidate list.
	MaxCandidates = 25
)

// Plausible title length bounds for the ranker's sample-text boost.
const (
	MinTitleLength = 5
	MaxTitleLength = 200
)

// Candidate is a proposed item-container selector.
type Candidate struct {
	// Selector is the normalized structural selector string.
	Selector string

	// Count is how many elements the selector matches in the document.
	Count int

	// Sample is representative text from the first matched element.
	Sample string

	// Strategy identifies the detection strategy that proposed it.
	Strategy Strategy

	// Tier is the strategy's confidence in this candidate.
	Tier Tier

	// FrameworkHinted is true when the selector equals or specializes a
	// hint from a detected framework profile.
	FrameworkHinted bool
}

// TitlePlausible reports whether the candidate's sample text resembles a
// headline: non-empty, not purely numeric or punctuation, and within a
// plausible title length range.
func (c Candidate) TitlePlausible() bool {
	sample := strings.TrimSpace(c.Sample)
	n := len([]rune(sample))
	if n < MinTitleLength || n > MaxTitleLength {
		return false
	}
	for _, r := range sample {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// PatternAnalyzer proposes ranked item-container candidates for a document.
type PatternAnalyzer interface {
	// Candidates runs every detection strategy over the HTML and returns
	// the ranked, deduplicated top candidates. An empty or unparseable
	// document yields an empty slice, not an error.
	Candidates(html string) ([]Candidate, error)
}
