package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"cvpipe/internal/domain"
)

// Exporter produces XLSX workbooks from processing results.
type Exporter struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{logger: logger}
}

var headers = []string{
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
	"Education",
	"Experience",
	"Projects",
	"Processed At",
}

// ResultsXLSX returns an XLSX workbook (as bytes) for a batch of
// processing results, one row per source document.
func (e *Exporter) ResultsXLSX(results []*domain.ProcessingResult) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Source)
		write(2, string(r.Format))
		write(3, string(r.Provenance))
		if r.Validation != nil {
			write(4, formatBool(r.Validation.Passed))
			write(5, strconv.FormatFloat(r.Validation.Score, 'f', 2, 64))
		}
		write(17, r.ProcessedAt.Format("2006-01-02 15:04:05"))

		if cv := r.CV; cv != nil {
			write(6, cv.ContactInfo.Name)
			write(7, strings.Join(cv.ContactInfo.Emails, "; "))
			write(8, strings.Join(cv.ContactInfo.Phones, "; "))
			write(9, cv.ContactInfo.LinkedIn)
			write(10, cv.ContactInfo.Address)
			write(11, truncate(strings.Join(cv.ProfessionalSummary, " "), 280))
			write(12, strings.Join(cv.Skills, "; "))
			write(13, formatLanguages(cv.Languages))
			write(14, formatEducation(cv.Education))
			write(15, formatExperience(cv.Experience))
			write(16, formatProjects(cv.Projects))
		}

		row++
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // source
	_ = f.SetColWidth(sheet, "F", "F", 22) // name
	_ = f.SetColWidth(sheet, "G", "H", 28) // emails, phones
	_ = f.SetColWidth(sheet, "K", "K", 48) // summary
	_ = f.SetColWidth(sheet, "L", "P", 40) // skills through projects

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	e.logger.Info("export.xlsx.ok",
		zap.Int("rows", len(results)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return buf.Bytes(), nil
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

func formatEducation(entries []domain.EducationEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, joinNonEmpty(e.DateRange, e.Degree, e.Institution))
	}
	return strings.Join(parts, " | ")
}

func formatExperience(entries []domain.ExperienceEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, joinNonEmpty(e.DateRange, e.Role, e.Company))
	}
	return strings.Join(parts, " | ")
}

func formatProjects(projects []domain.Project) string {
	parts := make([]string, 0, len(projects))
	for _, p := range projects {
		parts = append(parts, joinNonEmpty(p.Title, p.Description))
	}
	return strings.Join(parts, " | ")
}

func joinNonEmpty(fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, ", ")
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// truncate shortens s to at most n runes, never splitting a rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
