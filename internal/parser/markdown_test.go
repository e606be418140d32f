package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsAndParagraphs(t *testing.T) {
	input := `# Titel

Einleitungstext.

## Abschnitt A

Inhalt von Abschnitt A.
`
	p := &MarkdownParser{}
	paras, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Titel", "Einleitungstext.", "Abschnitt A", "Inhalt von Abschnitt A."}
	if !reflect.DeepEqual(paras, want) {
		t.Errorf("expected %v, got %v", want, paras)
	}
}

func TestMarkdownParser_ListItems(t *testing.T) {
	input := "## Liste\n\n- erster Punkt\n- zweiter Punkt\n"
	p := &MarkdownParser{}
	paras, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paras) != 3 {
		t.Fatalf("expected 3 paragraphs, got %v", paras)
	}
	if !strings.Contains(paras[1], "erster Punkt") || !strings.Contains(paras[2], "zweiter Punkt") {
		t.Errorf("expected one paragraph per list item, got %v", paras)
	}
}

func TestMarkdownParser_CodeBlockKeptAsText(t *testing.T) {
	input := "# Referenz\n\nVorher.\n\n```\nGET /api/users\n```\n\nNachher.\n"
	p := &MarkdownParser{}
	paras, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	joined := strings.Join(paras, "\n")
	for _, want := range []string{"Referenz", "Vorher.", "GET /api/users", "Nachher."} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected output to contain %q, got %v", want, paras)
		}
	}
}
