package htmltest

import (
	"testing"

	"github.com/formtest/formtest/pkg/matchers"
)

const form = `
<form action="/users">
  <select name="user[birthday(1i)]"><option>2024</option></select>
  <select name="user[birthday(2i)]"><option>6</option></select>
  <select name="user[birthday(3i)]"><option>15</option></select>
</form>`

func TestAssert(t *testing.T) {
	m := matchers.HaveDateSelect()
	m.For(map[string]any{"user": "birthday"})
	Assert(t, form, m)
}

func TestRefute(t *testing.T) {
	m := matchers.HaveTimeSelect()
	m.For(map[string]any{"user": "birthday"})
	Refute(t, form, m)
}

func TestAssertLeaf(t *testing.T) {
	m := matchers.HaveSelect()
	m.For("user", "birthday(2i)")
	Assert(t, form, m)
	Refute(t, form, matchers.HaveInput("hidden"))
}
