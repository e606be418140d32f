package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.MaxChunkChars != 1400 {
		t.Errorf("expected MaxChunkChars 1400, got %d", cfg.MaxChunkChars)
	}
	if cfg.MinSectionChars != 350 {
		t.Errorf("expected MinSectionChars 350, got %d", cfg.MinSectionChars)
	}
	if cfg.MinChunkLen != 120 {
		t.Errorf("expected MinChunkLen 120, got %d", cfg.MinChunkLen)
	}
	if cfg.MaxTermsPerChunk != 250 {
		t.Errorf("expected MaxTermsPerChunk 250, got %d", cfg.MaxTermsPerChunk)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAX_CHUNK_CHARS", "900")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.MaxChunkChars != 900 {
		t.Errorf("expected MaxChunkChars 900, got %d", cfg.MaxChunkChars)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback disabled")
	}
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("MIN_CHUNK_LEN", "not-a-number")
	t.Setenv("MAX_TERMS_PER_CHUNK", "-5")

	cfg := Load()
	if cfg.MinChunkLen != 120 {
		t.Errorf("expected fallback 120, got %d", cfg.MinChunkLen)
	}
	if cfg.MaxTermsPerChunk != 250 {
		t.Errorf("expected fallback 250, got %d", cfg.MaxTermsPerChunk)
	}
}
