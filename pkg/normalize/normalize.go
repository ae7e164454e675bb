// Package normalize cleans exported post content down to plain ASCII.
package normalize

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

// replacer holds the fixed clean-up table. No target overlaps another
// target or replacement, so the order of pairs is irrelevant.
var replacer = strings.NewReplacer(
	// Block editor paragraph markers
	"<!-- wp:paragraph -->", "",
	"<!-- /wp:paragraph -->", "",

	// Emoji
	"\U0001F499", "",
	"\U0001F49A", "",
	"\U0001F49B", "",
	"\U0001F49C", "",
	"\U0001F633", "",

	// Typography
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"…", "...",
	"″", "'",
	"′", "'",
	"×", "x",
	"Â", " ",
)

// Content applies the clean-up table and transliterates what is left.
// The result contains only ASCII.
func Content(raw string) string {
	if raw == "" {
		return ""
	}
	return Transliterate(replacer.Replace(raw))
}

// Transliterate maps non-ASCII runes to their closest ASCII spelling.
// Runes the table has no spelling for are dropped.
func Transliterate(s string) string {
	if isASCII(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, unidecode.Unidecode(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
