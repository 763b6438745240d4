// Package matchers asserts that rendered HTML contains specific form-input
// elements, including the multi-element widgets produced by Rails-style view
// helpers for multi-parameter fields (a single logical value split across
// inputs named user[birthday(1i)], user[birthday(2i)], ...).
//
// A Matcher is configured once, evaluated against one document with Matches,
// and queried for messages afterwards. Evaluation state lives on the matcher
// instance, so a single instance must not be evaluated concurrently and a
// second Matches call overwrites the messages of the first.
package matchers

import "errors"

// Matcher is the capability set an assertion adapter consumes. Both leaf
// matchers and the composite satisfy it.
type Matcher interface {
	// For configures the expected element name from hierarchical naming
	// segments (object path first, field name last) and returns the matcher
	// for chaining. It panics with ErrEmptyContext if the segments flatten
	// to nothing.
	For(segments ...any) Matcher

	// Matches reports whether the document contains what the matcher
	// expects. The document is stored for later message rendering.
	Matches(doc any) bool

	// FailureMessage explains a failed Matches call. Before any evaluation
	// it returns the empty string.
	FailureMessage() string

	// NegatedFailureMessage explains what matching means, for negated
	// assertions that succeeded unexpectedly.
	NegatedFailureMessage() string
}

// InputMatcher is the sub-matcher capability set consumed by
// MultipleInputMatcher: a Matcher whose attribute constraints can be
// refined after construction.
type InputMatcher interface {
	Matcher

	// WithAttributes adds attribute constraints and returns the matcher
	// for chaining. Constraints accumulate; setting the same attribute
	// twice replaces the earlier constraint.
	WithAttributes(attrs Attributes) InputMatcher
}

// Attributes maps attribute names to expected values. A string value must
// match the attribute exactly; a *regexp.Regexp value must match somewhere
// within it.
type Attributes map[string]any

// Configuration errors. Matcher construction and For panic with errors
// wrapping these; configuration mistakes in test code should surface
// immediately rather than turn into silent non-matches.
var (
	// ErrEmptyContext reports a naming hierarchy that flattened to no
	// segments, leaving no field name to suffix.
	ErrEmptyContext = errors.New("matchers: naming context is empty")

	// ErrEmptyKey reports an empty component key in a composite's
	// component mapping.
	ErrEmptyKey = errors.New("matchers: component key is empty")
)
