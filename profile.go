package scrapesuite

// SignalKind identifies how a detection signal is matched against a document.
type SignalKind int

// Detection signal kinds.
const (
	// SignalGenerator matches a substring of the meta generator tag content.
	SignalGenerator SignalKind = iota

	// SignalClass matches a class-name fragment present on any element.
	SignalClass

	// SignalScript matches a substring of any script or stylesheet URL.
	SignalScript

	// SignalDataAttr matches the presence of a named attribute anywhere in
	// the document.
	SignalDataAttr
)

// Signal is one weighted detection signal of a framework profile. Weights
// are empirically fixed (typical range 10-40) and reflect how uniquely the
// signal identifies its framework.
type Signal struct {
	Kind    SignalKind
	Pattern string
	Weight  int
}

// Profile is a framework fingerprint: detection signals plus the container
// and field selectors the framework typically generates. Profiles are
// immutable and registered once at process start; the registry is read-only
// and safe for concurrent use.
type Profile struct {
	// Name uniquely identifies the profile (e.g. "wordpress").
	Name string

	// Signals are scored additively; the total is capped at MaxSignalScore.
	Signals []Signal

	// ItemHints are container selectors the framework typically renders
	// for repeating items.
	ItemHints []string

	// FieldHints maps a semantic field to candidate selectors, ordered
	// most-specific first. Selector strings use the "@attr" suffix grammar.
	FieldHints map[Field][]string
}

// Detection is a scored framework match.
type Detection struct {
	// Profile is the matched profile's name.
	Profile string

	// Confidence is the sum of matched signal weights, capped at
	// MaxSignalScore.
	Confidence int
}

// Detection scoring tunables. The threshold and cap are empirically chosen;
// they are exported so callers can reason about reported confidences.
const (
	// DetectThreshold is the minimum confidence for DetectBest to report a
	// match.
	DetectThreshold = 40

	// MaxSignalScore caps a profile's summed signal weights.
	MaxSignalScore = 100
)

// FrameworkDetector scores framework profiles against HTML.
type FrameworkDetector interface {
	// DetectAll returns every profile with confidence > 0, ordered by
	// descending confidence. Ties keep registry declaration order. Scoring
	// is deterministic for identical input.
	DetectAll(html string) []Detection

	// DetectBest returns the highest-confidence detection if it reaches
	// DetectThreshold. The boolean is false when no framework is detected,
	// which is a normal outcome, not an error.
	DetectBest(html string) (Detection, bool)
}
