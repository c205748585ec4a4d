package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ scrapesuite.FrameworkDetector = (*Detector)(nil)

// maxTraversalDepth caps tree walks so pathological nesting cannot make a
// single analysis unbounded.
const maxTraversalDepth = 256

// Detector scores framework fingerprint profiles against HTML documents.
// Detection is additive: every matched signal contributes its weight, so a
// document can report several frameworks at once (e.g. a component
// framework layered on a CMS).
type Detector struct {
	profiles []scrapesuite.Profile
}

// NewDetector creates a Detector over the built-in profile registry.
func NewDetector() *Detector {
	return &Detector{profiles: Profiles()}
}

// NewDetectorWithProfiles creates a Detector over a custom profile list.
// The list is treated as read-only; ties keep its order.
func NewDetectorWithProfiles(profiles []scrapesuite.Profile) *Detector {
	return &Detector{profiles: profiles}
}

// DetectAll scores every profile against the document and returns those
// with confidence > 0, ordered by descending confidence. Ties keep registry
// declaration order.
func (d *Detector) DetectAll(htmlText string) []scrapesuite.Detection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil
	}
	return d.detectDoc(doc)
}

// DetectBest returns the highest-confidence detection if it reaches
// DetectThreshold. The boolean is false when no framework is confidently
// detected, which is a normal outcome.
func (d *Detector) DetectBest(htmlText string) (scrapesuite.Detection, bool) {
	detections := d.DetectAll(htmlText)
	if len(detections) == 0 || detections[0].Confidence < scrapesuite.DetectThreshold {
		return scrapesuite.Detection{}, false
	}
	return detections[0], true
}

// detectDoc scores profiles against an already-parsed document. Shared with
// the analyzer and field detector so one analysis parses the input once.
func (d *Detector) detectDoc(doc *goquery.Document) []scrapesuite.Detection {
	features := collectFeatures(doc)

	var detections []scrapesuite.Detection
	for _, p := range d.profiles {
		score := 0
		for _, s := range p.Signals {
			if features.match(s) {
				score += s.Weight
			}
		}
		if score > scrapesuite.MaxSignalScore {
			score = scrapesuite.MaxSignalScore
		}
		if score > 0 {
			detections = append(detections, scrapesuite.Detection{Profile: p.Name, Confidence: score})
		}
	}

	// Stable sort keeps registry declaration order between equal scores.
	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Confidence > detections[j].Confidence
	})
	return detections
}

// confidentDetections filters a detection list down to entries at or above
// DetectThreshold.
func confidentDetections(detections []scrapesuite.Detection) []scrapesuite.Detection {
	var out []scrapesuite.Detection
	for _, det := range detections {
		if det.Confidence >= scrapesuite.DetectThreshold {
			out = append(out, det)
		}
	}
	return out
}

// docFeatures is everything signal matching needs, collected in a single
// traversal of the document.
type docFeatures struct {
	generator string          // meta generator content, lowercased
	classes   string          // all class attribute values, lowercased
	resources string          // script src and link href values, lowercased
	attrNames map[string]bool // attribute names present anywhere
}

func (f *docFeatures) match(s scrapesuite.Signal) bool {
	pattern := strings.ToLower(s.Pattern)
	switch s.Kind {
	case scrapesuite.SignalGenerator:
		return f.generator != "" && strings.Contains(f.generator, pattern)
	case scrapesuite.SignalClass:
		return strings.Contains(f.classes, pattern)
	case scrapesuite.SignalScript:
		return strings.Contains(f.resources, pattern)
	case scrapesuite.SignalDataAttr:
		return f.attrNames[s.Pattern]
	}
	return false
}

func collectFeatures(doc *goquery.Document) *docFeatures {
	f := &docFeatures{attrNames: make(map[string]bool)}
	var classes, resources strings.Builder

	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		if depth > maxTraversalDepth {
			return
		}
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				f.attrNames[attr.Key] = true
				switch {
				case attr.Key == "class":
					classes.WriteString(strings.ToLower(attr.Val))
					classes.WriteByte(' ')
				case attr.Key == "src" && n.Data == "script":
					resources.WriteString(strings.ToLower(attr.Val))
					resources.WriteByte(' ')
				case attr.Key == "href" && n.Data == "link":
					resources.WriteString(strings.ToLower(attr.Val))
					resources.WriteByte(' ')
				}
			}
			// Inline script bodies carry framework markers too (e.g.
			// __NEXT_DATA__ bootstrap payloads).
			if n.Data == "script" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				body := n.FirstChild.Data
				if len(body) > 4096 {
					body = body[:4096]
				}
				resources.WriteString(strings.ToLower(body))
				resources.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth+1)
		}
	}
	for _, root := range doc.Selection.Nodes {
		walk(root, 0)
	}

	doc.Find("meta[name=generator]").Each(func(_ int, sel *goquery.Selection) {
		if content, exists := sel.Attr("content"); exists {
			f.generator = strings.ToLower(content)
		}
	})

	f.classes = classes.String()
	f.resources = resources.String()
	return f
}
