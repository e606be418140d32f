package config

import (
	"os"
	"strconv"
)

// Config carries the tunable knobs of the indexing pipeline. The
// defaults are the contractual values downstream retrieval was tuned
// against; env vars exist for experiments, not for normal runs.
type Config struct {
	// Chunking thresholds
	MaxChunkChars   int
	MinSectionChars int
	MinChunkLen     int

	// Term-frequency trimming
	MaxTermsPerChunk int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	return Config{
		MaxChunkChars:   envInt("MAX_CHUNK_CHARS", 1400),
		MinSectionChars: envInt("MIN_SECTION_CHARS", 350),
		MinChunkLen:     envInt("MIN_CHUNK_LEN", 120),

		MaxTermsPerChunk: envInt("MAX_TERMS_PER_CHUNK", 250),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
