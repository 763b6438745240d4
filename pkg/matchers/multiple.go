package matchers

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MultipleInputMatcher coordinates one sub-matcher per component of a
// multi-parameter field. It matches a document iff every sub-matcher
// matches it, and constrains each sub-matcher to elements whose name
// contains that component's bracketed key, so a composite built over keys
// "1i".."3i" for field user[birthday] matches the three selects named
// user[birthday(1i)], user[birthday(2i)] and user[birthday(3i)].
//
// The component mapping is fixed at construction. Evaluation state (the
// last document and the failed sub-matchers) is overwritten by each
// Matches call; one instance serves one assertion at a time.
type MultipleInputMatcher struct {
	components map[string]InputMatcher
	keys       []string // sorted, fixes evaluation and message order

	context  []string
	doc      any
	failures []InputMatcher
}

// NewMultipleInputMatcher builds a composite over a component-key to
// sub-matcher mapping. Each sub-matcher's name constraint is configured
// here, exactly once: the name attribute must contain the literal "(key)".
// Panics with ErrEmptyKey if any key is the empty string.
func NewMultipleInputMatcher(components map[string]InputMatcher) *MultipleInputMatcher {
	keys := make([]string, 0, len(components))
	for key, sub := range components {
		if key == "" {
			panic(fmt.Errorf("%w", ErrEmptyKey))
		}
		keys = append(keys, key)
		sub.WithAttributes(Attributes{
			"name": regexp.MustCompile(regexp.QuoteMeta("(" + key + ")")),
		})
	}
	sort.Strings(keys)
	return &MultipleInputMatcher{components: components, keys: keys}
}

// Matches evaluates every sub-matcher against doc and reports whether all
// of them matched. Failed sub-matchers are recorded for FailureMessage.
// A sub-matcher panic is not recovered here; a broken document aborts the
// whole evaluation.
func (m *MultipleInputMatcher) Matches(doc any) bool {
	m.doc = doc
	m.failures = nil
	for _, key := range m.keys {
		sub := m.components[key]
		if !sub.Matches(doc) {
			m.failures = append(m.failures, sub)
		}
	}
	return len(m.failures) == 0
}

// For sets the composite's naming context and propagates it to every
// sub-matcher with the last segment suffixed by that sub-matcher's
// bracketed key: For(map[string]any{"user": "birthday"}) hands the "4i"
// sub-matcher the segments ("user", "birthday(4i)"). The caller's input is
// never mutated; every sub-matcher gets its own copy. Panics with
// ErrEmptyContext, before any sub-matcher is configured, if the hierarchy
// flattens to nothing.
func (m *MultipleInputMatcher) For(segments ...any) Matcher {
	flat := FlattenHierarchy(segments...)
	if len(flat) == 0 {
		panic(fmt.Errorf("%w: For(%v)", ErrEmptyContext, segments))
	}
	m.context = flat
	last := len(flat) - 1
	for _, key := range m.keys {
		suffixed := make([]any, len(flat))
		for i, seg := range flat {
			suffixed[i] = seg
		}
		suffixed[last] = flat[last] + "(" + key + ")"
		m.components[key].For(suffixed...)
	}
	return m
}

// String describes the composite for diagnostics: the naming context, if
// configured, and the component keys.
func (m *MultipleInputMatcher) String() string {
	name := "multi-part input"
	if len(m.context) > 0 {
		field := m.context[0]
		for _, seg := range m.context[1:] {
			field += "[" + seg + "]"
		}
		name += " for " + field
	}
	return name + " with components (" + strings.Join(m.keys, ", ") + ")"
}

// FailureMessage joins the failure messages of the sub-matchers that
// failed the last evaluation with " and ". It is empty before any
// evaluation and after a fully successful one.
func (m *MultipleInputMatcher) FailureMessage() string {
	msgs := make([]string, 0, len(m.failures))
	for _, sub := range m.failures {
		msgs = append(msgs, sub.FailureMessage())
	}
	return strings.Join(msgs, " and ")
}

// NegatedFailureMessage joins the negated messages of every sub-matcher,
// matched or not, with " and ": under negation the message has to describe
// everything that matching would have meant.
func (m *MultipleInputMatcher) NegatedFailureMessage() string {
	msgs := make([]string, 0, len(m.keys))
	for _, key := range m.keys {
		msgs = append(msgs, m.components[key].NegatedFailureMessage())
	}
	return strings.Join(msgs, " and ")
}
