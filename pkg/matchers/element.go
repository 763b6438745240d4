package matchers

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/formtest/formtest/pkg/markup"
)

// ElementMatcher matches a single HTML element by tag name and attribute
// constraints. It is the concrete leaf behind HaveSelect and HaveInput and
// the sub-matcher used by the composite date/time widgets.
type ElementMatcher struct {
	tag   string
	attrs Attributes
	name  string // exact name assembled by For, "" until For is called

	// last evaluation
	rendered string
}

// NewElementMatcher returns a matcher for elements with the given tag name.
func NewElementMatcher(tag string) *ElementMatcher {
	return &ElementMatcher{tag: tag, attrs: Attributes{}}
}

// WithAttributes adds attribute constraints.
func (m *ElementMatcher) WithAttributes(attrs Attributes) InputMatcher {
	for k, v := range attrs {
		m.attrs[k] = v
	}
	return m
}

// For derives the expected name attribute from naming segments: the first
// segment is the object, each following segment is bracketed, so
// ("user", "birthday(1i)") expects name="user[birthday(1i)]".
// Panics with ErrEmptyContext if the segments flatten to nothing.
func (m *ElementMatcher) For(segments ...any) Matcher {
	flat := FlattenHierarchy(segments...)
	if len(flat) == 0 {
		panic(fmt.Errorf("%w: For(%v)", ErrEmptyContext, segments))
	}
	var b strings.Builder
	b.WriteString(flat[0])
	for _, seg := range flat[1:] {
		b.WriteString("[")
		b.WriteString(seg)
		b.WriteString("]")
	}
	m.name = b.String()
	return m
}

// Matches reports whether the rendered document contains at least one
// element satisfying every constraint. A document that fails to parse
// matches nothing.
func (m *ElementMatcher) Matches(doc any) bool {
	m.rendered = markup.Render(doc)
	parsed, err := markup.Parse(m.rendered)
	if err != nil {
		return false
	}
	found := false
	parsed.Find(m.tag).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if m.satisfies(sel) {
			found = true
			return false
		}
		return true
	})
	return found
}

func (m *ElementMatcher) satisfies(sel *goquery.Selection) bool {
	if m.name != "" {
		if v, ok := sel.Attr("name"); !ok || v != m.name {
			return false
		}
	}
	for attr, want := range m.attrs {
		v, ok := sel.Attr(attr)
		if !ok {
			return false
		}
		switch want := want.(type) {
		case string:
			if v != want {
				return false
			}
		case *regexp.Regexp:
			if !want.MatchString(v) {
				return false
			}
		default:
			if v != fmt.Sprint(want) {
				return false
			}
		}
	}
	return true
}

// FailureMessage explains the last failed Matches call, quoting the
// rendered document so the failure is actionable without re-running.
func (m *ElementMatcher) FailureMessage() string {
	return fmt.Sprintf("expected a <%s> element %s in %q",
		m.tag, m.description(), markup.Snippet(m.rendered, snippetLen))
}

// NegatedFailureMessage explains what matching means for negated
// assertions.
func (m *ElementMatcher) NegatedFailureMessage() string {
	return fmt.Sprintf("expected no <%s> element %s in %q",
		m.tag, m.description(), markup.Snippet(m.rendered, snippetLen))
}

// snippetLen caps the document excerpt quoted in messages.
const snippetLen = 200

func (m *ElementMatcher) description() string {
	var parts []string
	if m.name != "" {
		parts = append(parts, fmt.Sprintf("with name %q", m.name))
	}
	keys := make([]string, 0, len(m.attrs))
	for k := range m.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch want := m.attrs[k].(type) {
		case *regexp.Regexp:
			parts = append(parts, fmt.Sprintf("with %s matching /%s/", k, want))
		default:
			parts = append(parts, fmt.Sprintf("with %s=%q", k, want))
		}
	}
	if len(parts) == 0 {
		return "with any attributes"
	}
	return strings.Join(parts, " and ")
}
