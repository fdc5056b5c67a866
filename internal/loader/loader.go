// Package loader extracts raw line-oriented text from résumé source files.
//
// Supported formats:
//   - .pdf: page-text extraction via docconv; page breaks become
//     double line breaks
//   - .docx/.doc: word/document.xml from the ZIP archive; each
//     paragraph becomes one line
//   - .txt: line-oriented passthrough
//
// Extraction is a pure transform: the loader never persists anything.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"cvpipe/internal/config"
	"cvpipe/internal/domain"
)

// Loader reads a source document and produces a normalized text blob.
type Loader struct {
	maxFileSize int64
	logger      *zap.Logger
}

// New creates a Loader.
func New(cfg *config.LoaderConfig, logger *zap.Logger) *Loader {
	maxSize := cfg.MaxFileSizeMB * 1024 * 1024
	if maxSize <= 0 {
		maxSize = 50 * 1024 * 1024
	}
	return &Loader{maxFileSize: maxSize, logger: logger}
}

// Detect returns the document format based on file extension.
func (l *Loader) Detect(path string) (domain.Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	format, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	return format, nil
}

// Load extracts normalized text from the file at path. It fails with
// domain.ErrUnsupportedFormat for unknown extensions and
// domain.ErrSourceNotFound when the file cannot be opened.
func (l *Loader) Load(path string) (string, domain.Format, error) {
	format, err := l.Detect(path)
	if err != nil {
		return "", "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", format, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
	}
	if info.Size() > l.maxFileSize {
		return "", format, fmt.Errorf("%w: %d bytes (max %d)", domain.ErrFileTooLarge, info.Size(), l.maxFileSize)
	}

	l.logger.Debug("loading document", zap.String("path", path), zap.String("format", string(format)))

	var text string
	switch format {
	case domain.FormatPDF:
		text, err = extractPDF(path)
	case domain.FormatDocx:
		text, err = extractDocx(path)
	case domain.FormatTXT:
		text, err = extractText(path)
	}
	if err != nil {
		return "", format, fmt.Errorf("extract %s: %w", format, err)
	}

	return normalize(text), format, nil
}
