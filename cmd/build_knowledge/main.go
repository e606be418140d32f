package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/kbindex/internal/config"
	"github.com/dgallion1/kbindex/internal/pipeline"
)

const usage = "Usage: build_knowledge <doc1> <name1> <doc2> <name2> ... <out.json>"

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Positional arguments are (document, sourceName) pairs followed
	// by the output path: an odd argument count, at least two pairs.
	args := os.Args[1:]
	if len(args) < 5 || len(args)%2 == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	outPath := args[len(args)-1]
	pairs := args[:len(args)-1]
	sources := make([]pipeline.Source, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		sources = append(sources, pipeline.Source{Path: pairs[i], Name: pairs[i+1]})
	}

	cfg := config.Load()
	builder := pipeline.NewBuilder(cfg, log)

	knowledge, err := builder.Build(sources)
	if err != nil {
		log.Error("build failed", "error", err)
		os.Exit(1)
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Error("create output", "path", outPath, "error", err)
		os.Exit(1)
	}
	if err := knowledge.Write(f); err != nil {
		f.Close()
		log.Error("write output", "path", outPath, "error", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		log.Error("close output", "path", outPath, "error", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s with %d chunks\n", outPath, knowledge.ChunkCount)
}
