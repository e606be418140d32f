package chunker

import (
	"regexp"
	"unicode/utf8"
)

// maxHeadingLen is the longest line that can still count as a heading.
const maxHeadingLen = 120

// headingRe recognizes section headings in the rulebook corpus:
// part markers ("TEIL A"), numbered steps ("3. Schritt"), bare
// numbered list items ("12. "), emphasized all-caps runs of at least
// seven characters, and bracket tags ("<anhang>"). The character
// classes list the German uppercase letters explicitly because they
// are the only non-ASCII letters the corpus uses in headings.
var headingRe = regexp.MustCompile(`^(TEIL\s+[A-Z]|[0-9]+\.\s+Schritt|[0-9]+\.\s+|[A-ZÄÖÜ0-9][A-ZÄÖÜ0-9 \-_/]{6,}|<[^>]+>)`)

// IsHeading reports whether a paragraph line bounds and titles a
// chunk. Only the two conditions below apply; anything else is body
// text.
func IsHeading(line string) bool {
	return utf8.RuneCountInString(line) <= maxHeadingLen && headingRe.MatchString(line)
}
