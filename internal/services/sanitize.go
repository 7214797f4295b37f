package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// textPolicy strips all markup from single-line fields.
var textPolicy = bluemonday.StrictPolicy()

// cleanText removes HTML, undoes the policy's entity escaping, applies NFC
// normalization and trims surrounding whitespace. Use it for short fields
// (names, phone numbers, selections) where angle brackets are never data.
func cleanText(s string) string {
	s = html.UnescapeString(textPolicy.Sanitize(s))
	return strings.TrimSpace(norm.NFC.String(s))
}

// cleanFreeText normalizes free-form input (addresses, notes, messages)
// without stripping: "deliver <after 5pm>" is data, not a tag. Every output
// escapes at render time (html/template, JSON, plain-text mail).
func cleanFreeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
