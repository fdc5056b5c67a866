package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cvpipe/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (17 columns).
var columns = []string{
	"Source",
	"Format",
	"Provenance",
	"Validation Passed",
	"Validation Score",
	"Name",
	"Emails",
	"Phones",
	"LinkedIn",
	"Address",
	"Professional Summary",
	"Skills",
	"Languages",
	"Education Count",
	"Experience Count",
	"Project Count",
	"Processed At",
}

// Writer wraps csv.Writer for exporting processing results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 17-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResults converts a batch of results to CSV rows and writes them.
func (w *Writer) WriteResults(results []*domain.ProcessingResult) error {
	for _, r := range results {
		if err := w.csv.Write(resultToRow(r)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// resultToRow flattens a single processing result to a 17-element
// string slice. Multi-valued fields join with "; ".
func resultToRow(r *domain.ProcessingResult) []string {
	row := make([]string, len(columns))

	row[0] = r.Source
	row[1] = string(r.Format)
	row[2] = string(r.Provenance)
	if r.Validation != nil {
		row[3] = formatBool(r.Validation.Passed)
		row[4] = strconv.FormatFloat(r.Validation.Score, 'f', 2, 64)
	}
	row[16] = r.ProcessedAt.Format(time.RFC3339)

	cv := r.CV
	if cv == nil {
		return row
	}

	row[5] = cv.ContactInfo.Name
	row[6] = strings.Join(cv.ContactInfo.Emails, "; ")
	row[7] = strings.Join(cv.ContactInfo.Phones, "; ")
	row[8] = cv.ContactInfo.LinkedIn
	row[9] = cv.ContactInfo.Address
	row[10] = strings.Join(cv.ProfessionalSummary, " ")
	row[11] = strings.Join(cv.Skills, "; ")
	row[12] = formatLanguages(cv.Languages)
	row[13] = strconv.Itoa(len(cv.Education))
	row[14] = strconv.Itoa(len(cv.Experience))
	row[15] = strconv.Itoa(len(cv.Projects))

	return row
}

func formatLanguages(langs []domain.Language) string {
	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		if l.Level != "" {
			parts = append(parts, l.Language+" ("+l.Level+")")
		} else {
			parts = append(parts, l.Language)
		}
	}
	return strings.Join(parts, "; ")
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a batch name for use as an output filename.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for a batch export.
// Format: {sanitized_batch_name}_{YYYY-MM-DD}.csv
func BuildFilename(batchName string) string {
	sanitized := SanitizeFilename(batchName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
