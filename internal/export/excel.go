// Package export renders a ranking run as an Excel workbook.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sravani557/quantum-recruiter/internal/models"
)

// WriteReport writes an xlsx report of one ranking run: a summary sheet, the
// ranked candidate list and an authenticity detail sheet.
func WriteReport(w io.Writer, results *models.SearchResults) error {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	candidatesSheet := "Ranked Candidates"
	authenticitySheet := "Authenticity"

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(candidatesSheet); err != nil {
		return fmt.Errorf("failed to create candidates sheet: %w", err)
	}
	if _, err := f.NewSheet(authenticitySheet); err != nil {
		return fmt.Errorf("failed to create authenticity sheet: %w", err)
	}

	if err := writeSummarySheet(f, summarySheet, results); err != nil {
		return fmt.Errorf("failed to write summary sheet: %w", err)
	}
	if err := writeCandidatesSheet(f, candidatesSheet, results); err != nil {
		return fmt.Errorf("failed to write candidates sheet: %w", err)
	}
	if err := writeAuthenticitySheet(f, authenticitySheet, results); err != nil {
		return fmt.Errorf("failed to write authenticity sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
}

func writeSummarySheet(f *excelize.File, sheet string, results *models.SearchResults) error {
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 70)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	label, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Quantum Search Report")
	f.SetCellStyle(sheet, "A1", "B1", header)
	f.MergeCell(sheet, "A1", "B1")

	rows := []struct {
		key   string
		value interface{}
	}{
		{"Generated:", time.Now().Format("2006-01-02 15:04:05")},
		{"Job Description:", truncate(results.JobDescription, 500)},
		{"Total Resumes:", results.TotalResumes},
		{"Matched (score >= 50):", results.MatchedCandidates},
		{"Shortlisted (score >= 85):", results.Shortlisted},
	}
	for i, r := range rows {
		row := i + 3
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.key)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.value)
	}
	return nil
}

func writeCandidatesSheet(f *excelize.File, sheet string, results *models.SearchResults) error {
	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	columns := []string{"Rank", "Name", "Email", "Score", "Status", "Recommendation", "Priority", "Risk Level", "Confidence", "Matched Skills"}
	widths := []float64{6, 24, 28, 8, 14, 20, 10, 10, 11, 32}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, name, name, widths[i])
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheet, "A1", last, header)

	for i, c := range results.Candidates {
		row := i + 2
		values := []interface{}{
			i + 1,
			c.Name,
			c.Email,
			c.Score,
			c.Status,
			c.AIInsights.HiringRecommendation,
			c.AIInsights.PriorityLevel,
			c.FakeDetection.RiskLevel,
			c.FakeDetection.ConfidenceScore,
			strings.Join(c.MatchedKeywords, ", "),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func writeAuthenticitySheet(f *excelize.File, sheet string, results *models.SearchResults) error {
	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	columns := []string{"Name", "Verdict", "Red Flags", "Yellow Flags", "Suggestions"}
	widths := []float64{24, 18, 50, 50, 50}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, name, name, widths[i])
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheet, "A1", last, header)

	for i, c := range results.Candidates {
		row := i + 2
		values := []interface{}{
			c.Name,
			c.FakeDetection.OverallVerdict,
			strings.Join(c.FakeDetection.RedFlags, "; "),
			strings.Join(c.FakeDetection.YellowFlags, "; "),
			strings.Join(c.FakeDetection.VerificationSuggestions, "; "),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
