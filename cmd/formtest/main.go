// Command formtest checks a rendered HTML fixture for form-input elements.
// It is a fixture-debugging companion to the matchers package: point it at
// a saved template rendering and ask whether the widget you expect is in
// there, with the same failure messages the test assertions produce.
//
//	formtest -file tmpl.html -widget datetime -for user.birthday
//	formtest -file tmpl.html -tag select -for user.role
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/formtest/formtest/pkg/matchers"
)

func main() {
	var (
		file    = flag.String("file", "", "HTML fixture file (required)")
		widget  = flag.String("widget", "", "Multi-part widget: date, time or datetime")
		tag     = flag.String("tag", "", "Single element tag, e.g. select or input")
		forPath = flag.String("for", "", "Naming context, dot separated, e.g. user.birthday")
		verbose = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *file == "" {
		fmt.Fprintln(os.Stderr, "formtest: -file is required")
		flag.Usage()
		os.Exit(2)
	}

	m, err := buildMatcher(*widget, *tag, *forPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "formtest: %v\n", err)
		os.Exit(2)
	}

	doc, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "formtest: %v\n", err)
		os.Exit(2)
	}
	logger.Debug("fixture loaded", "file", *file, "bytes", len(doc))

	if !m.Matches(doc) {
		fmt.Fprintln(os.Stderr, m.FailureMessage())
		os.Exit(1)
	}
	fmt.Println("match")
}

// buildMatcher assembles the matcher described by the flags. Exactly one of
// widget and tag must be set; the naming context is optional for single
// elements and required for widgets.
func buildMatcher(widget, tag, forPath string) (matchers.Matcher, error) {
	if (widget == "") == (tag == "") {
		return nil, fmt.Errorf("exactly one of -widget and -tag must be set")
	}

	var segments []any
	if forPath != "" {
		for _, seg := range strings.Split(forPath, ".") {
			segments = append(segments, seg)
		}
	}

	if tag != "" {
		m := matchers.NewElementMatcher(tag)
		if len(segments) > 0 {
			m.For(segments...)
		}
		return m, nil
	}

	var m *matchers.MultipleInputMatcher
	switch widget {
	case "date":
		m = matchers.HaveDateSelect()
	case "time":
		m = matchers.HaveTimeSelect()
	case "datetime":
		m = matchers.HaveDatetimeSelect()
	default:
		return nil, fmt.Errorf("unknown widget %q", widget)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("-widget requires -for")
	}
	m.For(segments...)
	return m, nil
}
