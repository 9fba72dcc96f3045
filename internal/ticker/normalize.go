package ticker

import (
	"regexp"
	"strings"
)

// Normalization strips everything that does not help matching a company name:
// case, punctuation, corporate suffixes, and redundant whitespace.
var (
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]`)
	suffixRe   = regexp.MustCompile(`\b(inc|corp|co|ltd|plc|sa|nv|se|llc|lp|group|holdings|international|limited|technologies|solutions|systems|enterprises?)\b`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// Normalize converts a free-text company name into the canonical lookup key
// used by the alias table. It is a pure function: lowercase, drop non
// alphanumerics, drop whole-word corporate suffixes, collapse whitespace.
//
// Normalize("Apple Inc.") == Normalize("apple inc") == "apple".
func Normalize(text string) string {
	key := strings.ToLower(text)
	key = nonAlnumRe.ReplaceAllString(key, "")
	key = suffixRe.ReplaceAllString(key, "")
	key = spaceRe.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}
