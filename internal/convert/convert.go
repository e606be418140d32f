// Package convert turns .docx documents into plain-text files whose
// headings are wrapped in "=== heading ===" separator lines, making
// downstream chunking predictable.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/dgallion1/kbindex/internal/parser"
)

var headingPrefixes = []string{"Schritt", "0.", "1.", "2.", "3."}

// IsLooseHeading applies the conversion stage's heading heuristic:
// a short line that is fully uppercase, starts with two digits, or
// starts with a known step prefix. Deliberately looser than the
// chunker's classifier — this one only places separators, it does not
// bound chunks.
func IsLooseHeading(line string) bool {
	runes := []rune(line)
	if len(runes) == 0 || len(runes) > 80 {
		return false
	}
	if isUpper(runes) || leadingDigits(runes) {
		return true
	}
	for _, p := range headingPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// isUpper mirrors "all cased characters are uppercase, and there is
// at least one cased character".
func isUpper(runes []rune) bool {
	cased := false
	for _, r := range runes {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func leadingDigits(runes []rune) bool {
	n := 2
	if len(runes) < n {
		n = len(runes)
	}
	for _, r := range runes[:n] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Render joins paragraph lines into the plain-text form, wrapping
// loose headings in separator lines. Output always ends with a single
// trailing newline.
func Render(paras []string) string {
	lines := make([]string, 0, len(paras))
	for _, p := range paras {
		if IsLooseHeading(p) {
			lines = append(lines, fmt.Sprintf("\n=== %s ===\n", p))
		} else {
			lines = append(lines, p)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}

// File converts one document and writes the result into outDir, named
// after the source with spaces replaced by underscores. Returns the
// destination path.
func File(src, outDir string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()

	p := &parser.DOCXParser{}
	paras, err := p.Parse(f, src)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", src, err)
	}

	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	dest := filepath.Join(outDir, strings.ReplaceAll(stem, " ", "_")+".txt")
	if err := os.WriteFile(dest, []byte(Render(paras)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	return dest, nil
}

// FindDocuments lists the .docx files in dir, sorted by name.
func FindDocuments(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.docx"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
