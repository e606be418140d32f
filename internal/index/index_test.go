package index

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/kbindex/internal/kb"
)

func TestIndexChunk_CountsAndFiltersShortTokens(t *testing.T) {
	c := kb.Chunk{Text: "a an der der der Anlage"}
	ix := New(0)
	ix.IndexChunk(&c)

	if c.TF["der"] != 3 {
		t.Errorf("expected tf[der] = 3, got %d", c.TF["der"])
	}
	if c.TF["anlage"] != 1 {
		t.Errorf("expected tf[anlage] = 1, got %d", c.TF["anlage"])
	}
	for _, short := range []string{"a", "an"} {
		if _, ok := c.TF[short]; ok {
			t.Errorf("expected short token %q to be excluded", short)
		}
	}
}

func TestIndexChunk_DocumentFrequencyCountsPresence(t *testing.T) {
	chunks := []kb.Chunk{
		{Text: "regel regel regel prüfung"},
		{Text: "regel anlage"},
		{Text: "anlage anlage"},
	}
	ix := New(0)
	for i := range chunks {
		ix.IndexChunk(&chunks[i])
	}

	df := ix.DF()
	// Presence per chunk, not occurrence totals.
	if df["regel"] != 2 {
		t.Errorf("expected df[regel] = 2, got %d", df["regel"])
	}
	if df["anlage"] != 2 {
		t.Errorf("expected df[anlage] = 2, got %d", df["anlage"])
	}
	if df["prüfung"] != 1 {
		t.Errorf("expected df[prüfung] = 1, got %d", df["prüfung"])
	}
	for w, n := range df {
		if n > len(chunks) {
			t.Errorf("df[%q] = %d exceeds chunk count %d", w, n, len(chunks))
		}
	}
}

func TestIndexChunk_TrimsToMaxTerms(t *testing.T) {
	// 300 distinct terms, one of them dominant.
	var b strings.Builder
	b.WriteString(strings.Repeat("dominant ", 5))
	for i := 0; i < 300; i++ {
		fmt.Fprintf(&b, "wort%03d ", i)
	}
	c := kb.Chunk{Text: b.String()}
	ix := New(0)
	ix.IndexChunk(&c)

	if len(c.TF) != DefaultMaxTerms {
		t.Fatalf("expected %d tf entries, got %d", DefaultMaxTerms, len(c.TF))
	}
	if c.TF["dominant"] != 5 {
		t.Errorf("expected highest-count term to survive trimming, tf = %v", c.TF["dominant"])
	}

	// Trimming must not touch the df table.
	if got := len(ix.DF()); got != 301 {
		t.Errorf("expected 301 df entries from the untrimmed vocabulary, got %d", got)
	}
	if ix.DF()["wort299"] != 1 {
		t.Error("expected trimmed-away term to remain in df")
	}
}

func TestIndexChunk_SmallVocabularyUntrimmed(t *testing.T) {
	c := kb.Chunk{Text: "eins zwei zwei drei drei drei"}
	ix := New(2)
	ix.IndexChunk(&c)

	if len(c.TF) != 2 {
		t.Fatalf("expected 2 tf entries, got %d", len(c.TF))
	}
	if c.TF["drei"] != 3 || c.TF["zwei"] != 2 {
		t.Errorf("expected the two highest counts kept, got %v", c.TF)
	}
}
