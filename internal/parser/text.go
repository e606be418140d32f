package parser

import (
	"bufio"
	"io"
	"strings"
)

// TextParser handles plain text files: one non-empty trimmed line per
// paragraph. Heading separator lines produced by the conversion tool
// ("=== heading ===") are unwrapped back to the bare heading so a
// converted document keeps the same chunk boundaries as its source.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paras []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if h, ok := unwrapSeparator(line); ok {
			line = h
		}
		paras = append(paras, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paras, nil
}

func unwrapSeparator(line string) (string, bool) {
	if !strings.HasPrefix(line, "=== ") || !strings.HasSuffix(line, " ===") {
		return "", false
	}
	h := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "=== "), " ==="))
	if h == "" {
		return "", false
	}
	return h, true
}
