package loader

import (
	"os"
	"strings"

	"code.sajari.com/docconv"
)

// extractPDF pulls page text out of a PDF with docconv. Form feeds mark
// page boundaries in pdftotext output; they become paragraph breaks so
// the segmenter keeps seeing blank lines between pages.
func extractPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	res, err := docconv.Convert(f, "application/pdf", false)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(res.Body, "\f", "\n\n"), nil
}
