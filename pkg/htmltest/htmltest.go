// Package htmltest wires matchers into *testing.T assertions.
package htmltest

import (
	"testing"

	"github.com/formtest/formtest/pkg/matchers"
)

// Assert fails the test with the matcher's failure message if doc does not
// match.
func Assert(t *testing.T, doc any, m matchers.Matcher) {
	t.Helper()
	if !m.Matches(doc) {
		t.Error(m.FailureMessage())
	}
}

// Refute fails the test with the matcher's negated failure message if doc
// matches.
func Refute(t *testing.T, doc any, m matchers.Matcher) {
	t.Helper()
	if m.Matches(doc) {
		t.Error(m.NegatedFailureMessage())
	}
}
