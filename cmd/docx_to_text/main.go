package main

import (
	"fmt"
	"os"

	"github.com/dgallion1/kbindex/internal/convert"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: docx_to_text <input_dir> <output_dir>")
		os.Exit(2)
	}
	inDir, outDir := os.Args[1], os.Args[2]

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	docs, err := convert.FindDocuments(inDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list input dir: %v\n", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		fmt.Fprintf(os.Stderr, "No .docx files found in %s\n", inDir)
		os.Exit(1)
	}

	for _, src := range docs {
		dest, err := convert.File(src, outDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", dest)
	}
}
