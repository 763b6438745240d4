// Package markup renders arbitrary document values to HTML text and parses
// that text into a queryable document. Matchers accept documents as opaque
// values; this package is where they become markup.
package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Render converts a document value to its markup text.
// Strings and []byte pass through, fmt.Stringer and io.Reader are drained,
// *html.Node is serialized, anything else falls back to fmt.Sprint.
func Render(doc any) string {
	switch v := doc.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case *html.Node:
		var b strings.Builder
		if err := html.Render(&b, v); err != nil {
			return ""
		}
		return b.String()
	case fmt.Stringer:
		return v.String()
	case io.Reader:
		b, err := io.ReadAll(v)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}

// Parse parses markup text into a queryable document. Fragments are
// accepted; the parser wraps them in an implied html/body envelope.
func Parse(text string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return doc, nil
}
