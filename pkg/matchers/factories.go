package matchers

// Factory functions returning configured matcher instances. Component keys
// follow the Rails multi-parameter field convention: 1i year, 2i month,
// 3i day, 4i hour, 5i minute.

// HaveSelect matches a <select> element.
func HaveSelect() *ElementMatcher {
	return NewElementMatcher("select")
}

// HaveInput matches an <input> element of the given type, e.g. "hidden"
// or "checkbox". An empty type matches any input.
func HaveInput(typ string) *ElementMatcher {
	m := NewElementMatcher("input")
	if typ != "" {
		m.WithAttributes(Attributes{"type": typ})
	}
	return m
}

// HaveDateSelect matches the three selects of a date_select widget
// (year, month, day).
func HaveDateSelect() *MultipleInputMatcher {
	return NewMultipleInputMatcher(map[string]InputMatcher{
		"1i": HaveSelect(),
		"2i": HaveSelect(),
		"3i": HaveSelect(),
	})
}

// HaveTimeSelect matches the two selects of a time_select widget
// (hour, minute).
func HaveTimeSelect() *MultipleInputMatcher {
	return NewMultipleInputMatcher(map[string]InputMatcher{
		"4i": HaveSelect(),
		"5i": HaveSelect(),
	})
}

// HaveDatetimeSelect matches the five selects of a datetime_select widget.
func HaveDatetimeSelect() *MultipleInputMatcher {
	return NewMultipleInputMatcher(map[string]InputMatcher{
		"1i": HaveSelect(),
		"2i": HaveSelect(),
		"3i": HaveSelect(),
		"4i": HaveSelect(),
		"5i": HaveSelect(),
	})
}
