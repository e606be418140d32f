package pipeline

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/kbindex/internal/chunker"
	"github.com/dgallion1/kbindex/internal/config"
	"github.com/dgallion1/kbindex/internal/index"
	"github.com/dgallion1/kbindex/internal/kb"
	"github.com/dgallion1/kbindex/internal/parser"
)

// Source pairs a document path with the name its chunks are tagged
// with in the knowledge base.
type Source struct {
	Path string
	Name string
}

// Builder runs the parse → chunk → index → assemble pipeline over a
// batch of documents. Strictly sequential: chunk boundaries and the
// df table depend on processing order, so there is nothing to
// parallelize without changing the output.
type Builder struct {
	cfg config.Config
	log *slog.Logger
}

func NewBuilder(cfg config.Config, log *slog.Logger) *Builder {
	return &Builder{cfg: cfg, log: log}
}

// Build processes the sources in order and returns the assembled
// knowledge base. Any document failure aborts the whole run; no
// partial knowledge base is ever returned.
func (b *Builder) Build(sources []Source) (*kb.KnowledgeBase, error) {
	chunkCfg := chunker.Config{
		MaxChars:    b.cfg.MaxChunkChars,
		MinChars:    b.cfg.MinSectionChars,
		MinChunkLen: b.cfg.MinChunkLen,
	}

	var chunks []kb.Chunk
	for _, src := range sources {
		paras, err := b.readParagraphs(src.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", src.Path, err)
		}
		docChunks := chunker.Split(paras, src.Name, chunkCfg)
		b.log.Info("chunked document",
			"path", src.Path,
			"source", src.Name,
			"paragraphs", len(paras),
			"chunks", len(docChunks))
		chunks = append(chunks, docChunks...)
	}

	// One indexer owns the df table for the whole corpus. df must see
	// every chunk before any output is written, which the sequential
	// pass guarantees.
	ix := index.New(b.cfg.MaxTermsPerChunk)
	for i := range chunks {
		ix.IndexChunk(&chunks[i])
	}

	return kb.Assemble(chunks, ix.DF()), nil
}

func (b *Builder) readParagraphs(path string) ([]string, error) {
	p, err := parser.ForFile(path)
	if err != nil {
		return nil, err
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = b.cfg.PDFFallbackPdftotext
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.Parse(f, path)
}
