package index

import (
	"sort"
	"unicode/utf8"

	"github.com/dgallion1/kbindex/internal/kb"
)

const (
	// minTokenLen drops noise tokens ("a", "an", "im") from counts.
	minTokenLen = 3
	// DefaultMaxTerms caps each chunk's term-frequency table.
	DefaultMaxTerms = 250
)

// Indexer computes per-chunk term frequencies and accumulates the
// corpus-wide document-frequency table. One Indexer owns the df table
// for a whole run; it is passed through the pipeline explicitly rather
// than living in package state.
type Indexer struct {
	maxTerms int
	df       map[string]int
}

// New returns an Indexer keeping at most maxTerms entries per chunk.
// Values <= 0 fall back to DefaultMaxTerms.
func New(maxTerms int) *Indexer {
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}
	return &Indexer{
		maxTerms: maxTerms,
		df:       make(map[string]int),
	}
}

// IndexChunk fills in the chunk's term-frequency table and folds its
// vocabulary into the document-frequency table. df counts presence
// per chunk, not occurrences, and is computed from the untrimmed
// table: trimming only shrinks what the chunk carries, never what the
// corpus knows.
func (ix *Indexer) IndexChunk(c *kb.Chunk) {
	tf := make(map[string]int)
	for _, w := range Tokenize(c.Text) {
		if utf8.RuneCountInString(w) < minTokenLen {
			continue
		}
		tf[w]++
	}
	for w := range tf {
		ix.df[w]++
	}
	c.TF = trim(tf, ix.maxTerms)
}

// DF returns the accumulated document-frequency table.
func (ix *Indexer) DF() map[string]int {
	return ix.df
}

// trim keeps the top n entries by count descending. Equal counts are
// ordered by term ascending, which makes the cut deterministic.
func trim(tf map[string]int, n int) map[string]int {
	if len(tf) <= n {
		return tf
	}
	type entry struct {
		term  string
		count int
	}
	entries := make([]entry, 0, len(tf))
	for w, c := range tf {
		entries = append(entries, entry{w, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].term < entries[j].term
	})
	kept := make(map[string]int, n)
	for _, e := range entries[:n] {
		kept[e.term] = e.count
	}
	return kept
}
