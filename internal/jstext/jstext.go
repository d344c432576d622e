// Package jstext turns the loosely JS-like object literals that the
// profile page logs to its console into strict JSON. The page emits
// unquoted identifier keys, bare-word string values, ordinal tokens like
// 19th and naked currency symbols; a strict decoder rejects all of them.
// The grammar here quotes those tokens positionally, restores the JSON
// literals the quoting pass swallowed, then hands the result to a strict
// decoder.
package jstext

import (
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
)

var (
	// bare identifier used as an object key: `place:` -> `"place":`
	bareKey = regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_]*)\s*:`)
	// bare word used as a value: `: pending` -> `: "pending"`
	bareWord = regexp.MustCompile(`:\s*([a-zA-Z_]+)`)
	// ordinal value: `: 19th` -> `: "19th"`
	ordinal = regexp.MustCompile(`:\s*(\d+(?:st|nd|rd|th))`)
	// naked currency symbol value: `: $,` -> `: "$",`
	currency = regexp.MustCompile(`:\s*([$€£¥])\s*([,}\]])`)
)

// Clean rewrites a near-JSON object literal into strict JSON. Rule order
// matters: keys first, then bare words (which also swallows the JSON
// keyword literals), then ordinals and currency symbols, and finally the
// keyword literals are un-quoted again.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = bareKey.ReplaceAllString(s, `"${1}":`)
	s = bareWord.ReplaceAllString(s, `: "${1}"`)
	s = ordinal.ReplaceAllString(s, `: "${1}"`)
	s = currency.ReplaceAllString(s, `: "${1}"${2}`)
	s = strings.ReplaceAll(s, `: "null"`, `: null`)
	s = strings.ReplaceAll(s, `: "true"`, `: true`)
	s = strings.ReplaceAll(s, `: "false"`, `: false`)
	return s
}

// Decode cleans raw and strictly decodes the result into v.
func Decode(raw string, v interface{}) error {
	return json.Unmarshal([]byte(Clean(raw)), v)
}
