package main

import (
	"fmt"
	"log"
	"os"

	"mockmate/interview-prep/internal/services"
)

// Extracts plain text from local résumé / job-description PDFs, for preparing
// the resumeText and jdText fields of an interview-creation request without
// going through the HTTP endpoint.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.pdf> [more.pdf ...]\n", os.Args[0])
		os.Exit(1)
	}

	parser := services.NewPDFParserService()

	for _, path := range os.Args[1:] {
		log.Printf("📄 Extracting %s...", path)

		text, err := parser.ExtractText(path)
		if err != nil {
			log.Fatalf("❌ Failed to extract %s: %v", path, err)
		}

		fmt.Printf("===== %s =====\n%s\n\n", path, text)
		log.Printf("✅ Extracted %d characters from %s", len(text), path)
	}
}
