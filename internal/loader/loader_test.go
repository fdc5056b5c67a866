package loader

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cvpipe/internal/config"
	"cvpipe/internal/domain"
)

func newTestLoader(maxMB int64) *Loader {
	return New(&config.LoaderConfig{MaxFileSizeMB: maxMB}, zap.NewNop())
}

func TestDetect(t *testing.T) {
	l := newTestLoader(1)

	tests := []struct {
		path    string
		format  domain.Format
		wantErr bool
	}{
		{"cv.pdf", domain.FormatPDF, false},
		{"cv.PDF", domain.FormatPDF, false},
		{"cv.docx", domain.FormatDocx, false},
		{"cv.doc", domain.FormatDocx, false},
		{"cv.txt", domain.FormatTXT, false},
		{"cv.png", "", true},
		{"cv", "", true},
	}
	for _, tt := range tests {
		format, err := l.Detect(tt.path)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrUnsupportedFormat, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.format, format, tt.path)
	}
}

func TestLoadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.txt")
	raw := "Jane   Doe\r\nSoftware\tEngineer\r\n\r\n\r\n\r\nSKILLS\x00\nGo, Python\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	text, format, err := newTestLoader(1).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatTXT, format)
	assert.Equal(t, "Jane Doe\nSoftware Engineer\n\nSKILLS\nGo, Python", text)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := newTestLoader(1).Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestLoadFileTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(path, make([]byte, 2*1024*1024), 0o644))

	l := New(&config.LoaderConfig{MaxFileSizeMB: 1}, zap.NewNop())
	_, _, err := l.Load(path)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestLoadDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Software</w:t></w:r><w:r><w:tab/></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>SKILLS</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, format, err := newTestLoader(1).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatDocx, format)
	assert.Equal(t, "Jane Doe\nSoftware Engineer\n\nSKILLS", text)
}

func TestLoadDocxHeadingGetsBlankLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>SKILLS</w:t></w:r></w:p>
    <w:p><w:r><w:t>Go, SQL</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, _, err := newTestLoader(1).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nSKILLS\nGo, SQL", text)
}

func TestLoadDocxMissingDocumentXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, _, err = newTestLoader(1).Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document.xml")
}

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}
