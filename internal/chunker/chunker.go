package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/kbindex/internal/kb"
)

// Config controls chunk boundaries. All thresholds are rune counts.
type Config struct {
	MaxChars    int // Force a flush once the accumulation reaches this size.
	MinChars    int // A heading only flushes if at least this much has accumulated.
	MinChunkLen int // Flushed text shorter than this is discarded.
}

// DefaultConfig returns the thresholds the corpus was tuned with.
func DefaultConfig() Config {
	return Config{
		MaxChars:    1400,
		MinChars:    350,
		MinChunkLen: 120,
	}
}

// Accumulator is the chunker's mutable state: the current title and
// the body lines gathered since the last flush. It is an explicit
// value so flush transitions can be tested in isolation.
type Accumulator struct {
	source string
	cfg    Config
	title  string
	lines  []string
	length int
}

// NewAccumulator returns an empty accumulator for one source document.
func NewAccumulator(source string, cfg Config) *Accumulator {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = 1400
	}
	if cfg.MinChars <= 0 {
		cfg.MinChars = 350
	}
	if cfg.MinChunkLen <= 0 {
		cfg.MinChunkLen = 120
	}
	return &Accumulator{source: source, cfg: cfg}
}

// Add appends a body line. The running length counts the line's runes
// plus one for the joining newline.
func (a *Accumulator) Add(line string) {
	a.lines = append(a.lines, line)
	a.length += utf8.RuneCountInString(line) + 1
}

// SetTitle records a new section title without touching the body.
func (a *Accumulator) SetTitle(title string) {
	a.title = title
}

// Len returns the accumulated body length in runes.
func (a *Accumulator) Len() int {
	return a.length
}

// Flush finalizes the accumulated body into a chunk and resets the
// body. The title is retained so a follow-on chunk under the same
// heading inherits it. Returns false when there was nothing to emit:
// either the body was empty or the joined text fell short of
// MinChunkLen and was discarded.
func (a *Accumulator) Flush() (kb.Chunk, bool) {
	if len(a.lines) == 0 {
		return kb.Chunk{}, false
	}
	text := strings.TrimSpace(strings.Join(a.lines, "\n"))
	a.lines = nil
	a.length = 0
	if utf8.RuneCountInString(text) < a.cfg.MinChunkLen {
		return kb.Chunk{}, false
	}
	title := a.title
	if title == "" {
		title = kb.DefaultTitle
	}
	return kb.Chunk{Source: a.source, Title: title, Text: text}, true
}

// Split consumes paragraph lines in order and produces titled chunks.
//
// A heading flushes the accumulation only once MinChars has been
// reached; below that it just replaces the title, so a short section's
// body carries over into the next titled chunk. This merge-without-
// flush behavior is load-bearing: downstream consumers depend on the
// resulting chunk boundaries. Body text force-flushes at MaxChars
// regardless of headings, and any remainder is flushed at end of
// input.
func Split(paras []string, source string, cfg Config) []kb.Chunk {
	acc := NewAccumulator(source, cfg)
	var chunks []kb.Chunk

	emit := func() {
		if c, ok := acc.Flush(); ok {
			chunks = append(chunks, c)
		}
	}

	for _, line := range paras {
		if IsHeading(line) {
			if acc.Len() >= acc.cfg.MinChars {
				emit()
			}
			acc.SetTitle(line)
			continue
		}
		acc.Add(line)
		if acc.Len() >= acc.cfg.MaxChars {
			emit()
		}
	}
	emit()
	return chunks
}
