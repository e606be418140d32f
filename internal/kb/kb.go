package kb

import (
	"encoding/json"
	"io"
)

// DefaultTitle labels chunks whose text was never preceded by a heading.
const DefaultTitle = "Section"

// Chunk is a titled, contiguous span of document text — the unit of
// retrieval. TF is filled in by the indexer after chunking.
type Chunk struct {
	Source string         `json:"source"`
	Title  string         `json:"title"`
	Text   string         `json:"text"`
	TF     map[string]int `json:"tf"`
}

// KnowledgeBase is the single output artifact of an indexing run:
// every emitted chunk plus the corpus-wide document-frequency table.
type KnowledgeBase struct {
	ChunkCount int            `json:"chunk_count"`
	DF         map[string]int `json:"df"`
	Chunks     []Chunk        `json:"chunks"`
}

// Assemble combines indexed chunks and the document-frequency table.
// Pure composition; the chunk list keeps its order.
func Assemble(chunks []Chunk, df map[string]int) *KnowledgeBase {
	if chunks == nil {
		chunks = []Chunk{}
	}
	if df == nil {
		df = map[string]int{}
	}
	return &KnowledgeBase{
		ChunkCount: len(chunks),
		DF:         df,
		Chunks:     chunks,
	}
}

// Write serializes the knowledge base as UTF-8 JSON. Non-ASCII
// characters are written literally, not escaped.
func (k *KnowledgeBase) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(k)
}
