package index

import (
	"regexp"
	"strings"
)

// tokenRe extracts maximal alphanumeric runs. The German letters are
// listed explicitly so tokens like "straße" and "MÜLLER" survive
// intact rather than splitting at the non-ASCII rune.
var tokenRe = regexp.MustCompile(`[A-Za-zÄÖÜäöüß0-9]+`)

// Tokenize extracts lowercase word tokens from raw text, in order.
// No stemming and no stop-word removal; short-token filtering is the
// indexer's concern, not the tokenizer's.
func Tokenize(s string) []string {
	words := tokenRe.FindAllString(s, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}
