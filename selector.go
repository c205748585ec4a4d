package scrapesuite

import (
	"sort"
	"strings"
)

// ExtractionMode determines what value a selector yields from its matched
// element: the element's text content or the value of a named attribute.
type ExtractionMode int

// Extraction modes.
const (
	ModeText ExtractionMode = iota
	ModeAttr
)

// Selector is a structural selector in the supported grammar, optionally
// paired with an extraction mode. The textual form uses a trailing "@attr"
// suffix for attribute extraction:
//
//	a.title        -> text content of matched elements
//	a.title@href   -> href attribute of matched elements
//	@data-id       -> data-id attribute of the item element itself
//
// Selectors are normalized at construction: whitespace is collapsed,
// combinators are spaced canonically, and classes and attribute predicates
// within each compound selector are ordered canonically. Two selectors are
// equal if their normalized string forms match.
type Selector struct {
	// Query is the normalized structural part. Empty only for the bare
	// "@attr" form, which targets the matched item element directly.
	Query string

	// Mode selects between text content and attribute extraction.
	Mode ExtractionMode

	// Attr is the attribute name when Mode is ModeAttr.
	Attr string
}

// ParseSelector parses a selector string with an optional "@attr" suffix.
// Malformed input returns an EINVALID error; it never degrades to a partial
// selector.
func ParseSelector(text string) (Selector, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Selector{}, Errorf(EINVALID, "selector required")
	}

	query := text
	sel := Selector{Mode: ModeText}

	if at := suffixIndex(text); at >= 0 {
		attr := strings.TrimSpace(text[at+1:])
		if !validAttrName(attr) {
			return Selector{}, Errorf(EINVALID, "invalid attribute name in selector %q", text)
		}
		sel.Mode = ModeAttr
		sel.Attr = attr
		query = strings.TrimSpace(text[:at])
	}

	if query == "" {
		if sel.Mode != ModeAttr {
			return Selector{}, Errorf(EINVALID, "selector required")
		}
		return sel, nil
	}

	normalized, err := normalizeQuery(query)
	if err != nil {
		return Selector{}, err
	}
	sel.Query = normalized
	return sel, nil
}

// MustParseSelector is like ParseSelector but panics on malformed input.
// Intended for static selector tables known to be valid.
func MustParseSelector(text string) Selector {
	sel, err := ParseSelector(text)
	if err != nil {
		panic(err)
	}
	return sel
}

// String returns the canonical textual form, suitable for configuration
// storage and for re-parsing into an equal selector.
func (s Selector) String() string {
	if s.Mode == ModeAttr {
		return s.Query + "@" + s.Attr
	}
	return s.Query
}

// Equal reports whether two selectors have the same normalized form and
// extraction mode.
func (s Selector) Equal(other Selector) bool {
	return s.Query == other.Query && s.Mode == other.Mode && s.Attr == other.Attr
}

// NormalizeQuery returns the canonical form of a structural selector string
// without an extraction suffix. It is exported for deduplication of raw
// candidate selector strings.
func NormalizeQuery(query string) (string, error) {
	return normalizeQuery(query)
}

// suffixIndex returns the index of the extraction-mode '@' separator, or -1.
// An '@' inside an attribute predicate (e.g. [href*="@"]) is not a suffix.
func suffixIndex(text string) int {
	depth := 0
	var quote rune
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[':
			depth++
		case r == ']':
			if depth > 0 {
				depth--
			}
		case r == '@' && depth == 0:
			return i
		}
	}
	return -1
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == ':' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// normalizeQuery canonicalizes a structural selector: single spaces between
// compound selectors, single spaces around explicit combinators, and within
// each compound selector the order tag, #id, sorted classes, sorted
// attribute predicates, pseudo-classes.
func normalizeQuery(query string) (string, error) {
	tokens, err := splitSequence(query)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", Errorf(EINVALID, "selector required")
	}

	// Combinators cannot lead, trail, or repeat.
	for i, tok := range tokens {
		if !isCombinator(tok) {
			continue
		}
		if i == 0 || i == len(tokens)-1 || isCombinator(tokens[i-1]) {
			return "", Errorf(EINVALID, "misplaced combinator %q in selector %q", tok, query)
		}
	}

	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if isCombinator(tok) {
			parts = append(parts, tok)
			continue
		}
		compound, err := normalizeCompound(tok)
		if err != nil {
			return "", err
		}
		parts = append(parts, compound)
	}
	return strings.Join(parts, " "), nil
}

func isCombinator(tok string) bool {
	return tok == ">" || tok == "+" || tok == "~"
}

// splitSequence splits a selector into compound selectors and combinators,
// respecting quotes and attribute brackets. Unbalanced brackets or quotes
// are rejected.
func splitSequence(query string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	depth := 0
	var quote rune

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range query {
		switch {
		case quote != 0:
			cur.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
			cur.WriteRune(r)
		case r == '[':
			depth++
			cur.WriteRune(r)
		case r == ']':
			depth--
			if depth < 0 {
				return nil, Errorf(EINVALID, "unbalanced ']' in selector %q", query)
			}
			cur.WriteRune(r)
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n'):
			flush()
		case depth == 0 && (r == '>' || r == '+' || r == '~'):
			flush()
			tokens = append(tokens, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	if quote != 0 {
		return nil, Errorf(EINVALID, "unterminated quote in selector %q", query)
	}
	if depth != 0 {
		return nil, Errorf(EINVALID, "unbalanced '[' in selector %q", query)
	}
	flush()
	return tokens, nil
}

// normalizeCompound canonicalizes one compound selector (no combinators).
func normalizeCompound(compound string) (string, error) {
	tag := ""
	var ids, classes, attrs, pseudos []string

	rest := compound
	for rest != "" {
		switch rest[0] {
		case '.':
			name, remainder := takeSimple(rest[1:])
			if name == "" {
				return "", Errorf(EINVALID, "empty class name in selector %q", compound)
			}
			classes = append(classes, "."+name)
			rest = remainder
		case '#':
			name, remainder := takeSimple(rest[1:])
			if name == "" {
				return "", Errorf(EINVALID, "empty id in selector %q", compound)
			}
			ids = append(ids, "#"+name)
			rest = remainder
		case '[':
			end := attrEnd(rest)
			if end < 0 {
				return "", Errorf(EINVALID, "unbalanced '[' in selector %q", compound)
			}
			attrs = append(attrs, rest[:end+1])
			rest = rest[end+1:]
		case ':':
			name, remainder := takePseudo(rest)
			pseudos = append(pseudos, name)
			rest = remainder
		default:
			name, remainder := takeSimple(rest)
			if tag != "" || name == "" {
				return "", Errorf(EINVALID, "invalid compound selector %q", compound)
			}
			tag = name
			rest = remainder
		}
	}

	sort.Strings(classes)
	sort.Strings(attrs)

	var b strings.Builder
	b.WriteString(tag)
	for _, id := range ids {
		b.WriteString(id)
	}
	for _, c := range classes {
		b.WriteString(c)
	}
	for _, a := range attrs {
		b.WriteString(a)
	}
	for _, p := range pseudos {
		b.WriteString(p)
	}
	if b.Len() == 0 {
		return "", Errorf(EINVALID, "invalid compound selector %q", compound)
	}
	return b.String(), nil
}

// takeSimple consumes a tag, class, or id name.
func takeSimple(s string) (name, rest string) {
	for i, r := range s {
		if r == '.' || r == '#' || r == '[' || r == ':' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// takePseudo consumes a pseudo-class including an optional parenthesized
// argument, e.g. ":nth-child(2)".
func takePseudo(s string) (name, rest string) {
	depth := 0
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth == 0 {
				return s[:i+1], s[i+1:]
			}
		case depth == 0 && i > 0 && (r == '.' || r == '#' || r == '['):
			return s[:i], s[i:]
		case depth == 0 && i > 0 && r == ':':
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// attrEnd returns the index of the ']' closing the attribute predicate that
// starts at s[0], respecting quoted values. Returns -1 if unterminated.
func attrEnd(s string) int {
	var quote rune
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == ']':
			return i
		}
	}
	return -1
}
