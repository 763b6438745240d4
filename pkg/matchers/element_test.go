package matchers

import (
	"regexp"
	"strings"
	"testing"
)

const profileForm = `
<form action="/users" method="post">
  <select id="user_role" name="user[role]">
    <option value="admin">Admin</option>
    <option value="member" selected="selected">Member</option>
  </select>
  <input type="hidden" name="user[token]" value="abc123" />
  <input type="checkbox" name="user[active]" checked="checked" />
</form>`

func TestElementMatcher_MatchesByName(t *testing.T) {
	m := NewElementMatcher("select")
	m.For("user", "role")
	if !m.Matches(profileForm) {
		t.Fatalf("expected select named user[role] to match:\n%s", m.FailureMessage())
	}

	m = NewElementMatcher("select")
	m.For("user", "birthday")
	if m.Matches(profileForm) {
		t.Fatal("no select named user[birthday] in document")
	}
}

func TestElementMatcher_AttributeConstraints(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		attrs Attributes
		want  bool
	}{
		{
			name:  "exact value",
			tag:   "input",
			attrs: Attributes{"type": "hidden", "value": "abc123"},
			want:  true,
		},
		{
			name:  "exact value mismatch",
			tag:   "input",
			attrs: Attributes{"type": "hidden", "value": "wrong"},
			want:  false,
		},
		{
			name:  "pattern matches substring",
			tag:   "input",
			attrs: Attributes{"name": regexp.MustCompile(`\[token\]`)},
			want:  true,
		},
		{
			name:  "pattern rejects",
			tag:   "input",
			attrs: Attributes{"name": regexp.MustCompile(`\[missing\]`)},
			want:  false,
		},
		{
			name:  "absent attribute",
			tag:   "select",
			attrs: Attributes{"disabled": "disabled"},
			want:  false,
		},
		{
			name:  "no constraints matches any element",
			tag:   "select",
			attrs: Attributes{},
			want:  true,
		},
		{
			name:  "tag not present",
			tag:   "textarea",
			attrs: Attributes{},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewElementMatcher(tt.tag)
			m.WithAttributes(tt.attrs)
			if got := m.Matches(profileForm); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementMatcher_ForAssemblesBracketedName(t *testing.T) {
	doc := `<select name="user[birthday(1i)]"></select>`

	m := NewElementMatcher("select")
	if ret := m.For("user", "birthday(1i)"); ret != Matcher(m) {
		t.Error("For should return the matcher for chaining")
	}
	if !m.Matches(doc) {
		t.Errorf("expected match: %s", m.FailureMessage())
	}

	m = NewElementMatcher("select")
	m.For(map[string]any{"user": "birthday(1i)"})
	if !m.Matches(doc) {
		t.Errorf("hierarchical context should assemble the same name: %s", m.FailureMessage())
	}
}

func TestElementMatcher_ForEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty naming context")
		}
	}()
	NewElementMatcher("select").For()
}

func TestElementMatcher_Messages(t *testing.T) {
	m := NewElementMatcher("select")
	m.For("user", "birthday")
	m.Matches(profileForm)

	fail := m.FailureMessage()
	for _, want := range []string{"<select>", `user[birthday]`, "user[role]"} {
		if !strings.Contains(fail, want) {
			t.Errorf("failure message missing %q:\n%s", want, fail)
		}
	}

	neg := m.NegatedFailureMessage()
	if !strings.Contains(neg, "no <select>") {
		t.Errorf("negated message should describe absence:\n%s", neg)
	}
}

func TestElementMatcher_MalformedDocumentDoesNotPanic(t *testing.T) {
	// html5 parsing is forgiving; garbage must simply not match anything.
	m := NewElementMatcher("select")
	m.WithAttributes(Attributes{"name": "x"})
	if m.Matches("<<<select") {
		t.Error("garbage input should not match")
	}
}
