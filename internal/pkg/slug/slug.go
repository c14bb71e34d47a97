// Package slug builds URL slugs for news and content items.
package slug

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const maxTitleLen = 100

// Make derives a slug from title and appends the current unix-millisecond
// timestamp. The suffix keeps slugs unique across items with identical titles
// without a retry loop against the unique index.
func Make(title string) string {
	return fmt.Sprintf("%s-%d", clean(title), time.Now().UnixMilli())
}

// clean lowercases the title and collapses everything that is not a letter,
// digit or space, then joins words with hyphens. Thai and other letters are
// kept as-is so non-English titles stay readable.
func clean(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			b.WriteByte(' ')
		}
	}

	words := strings.Fields(b.String())
	s := strings.Join(words, "-")
	if len(s) > maxTitleLen {
		// Cut on a rune boundary so multi-byte titles stay valid UTF-8
		cut := maxTitleLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	if s == "" {
		s = "untitled"
	}
	return s
}
