package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestCSVParser_RowsBecomeLabeledLines(t *testing.T) {
	input := "Name,Ort\nMüller,Berlin\nSchmidt,Köln\n"
	p := &CSVParser{}
	paras, err := p.Parse(strings.NewReader(input), "doc.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Name: Müller, Ort: Berlin", "Name: Schmidt, Ort: Köln"}
	if !reflect.DeepEqual(paras, want) {
		t.Errorf("expected %v, got %v", want, paras)
	}
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	p := &CSVParser{}
	paras, err := p.Parse(strings.NewReader("Name,Ort\n"), "doc.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paras) != 0 {
		t.Errorf("expected no paragraphs for header-only input, got %v", paras)
	}
}
