// Package report renders a scored slate as a styled Excel workbook.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/prop-edge/internal/models"
)

const sheetName = "Slate"

var columns = []string{
	"Player", "Team", "Opp", "Stat", "Line", "Odds", "Book", "Other Books",
	"Model %", "Implied %", "Edge", "AI Rating",
}

var columnWidths = map[string]float64{
	"A": 24, "B": 8, "C": 8, "D": 12, "E": 8,
	"F": 8, "G": 14, "H": 22, "I": 10, "J": 10, "K": 10, "L": 11,
}

// Writer renders slates to xlsx workbooks
type Writer struct {
	outputDir   string
	titlePrefix string
}

// NewWriter creates a report writer targeting the given directory
func NewWriter(outputDir, titlePrefix string) *Writer {
	return &Writer{outputDir: outputDir, titlePrefix: titlePrefix}
}

// Write renders the slate and returns the path of the finished workbook.
// The file appears atomically: the workbook is written to a temp file in the
// same directory and renamed into place, so a crash never leaves a partial
// report where the next consumer would pick it up.
func (w *Writer) Write(slate *models.Slate) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	styles, err := newStyleSet(f)
	if err != nil {
		return "", fmt.Errorf("building styles: %w", err)
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return "", err
		}
	}

	row := 1
	title := fmt.Sprintf("%s %s — %s", w.titlePrefix,
		displayStat(slate.Stat), slate.GeneratedAt.Format("Monday, January 2 2006"))
	if err := writeTitle(f, row, title, styles.title); err != nil {
		return "", err
	}
	row += 2

	row, err = writeSection(f, row, "OVERS", slate.Overs(), styles, styles.overHeader)
	if err != nil {
		return "", err
	}
	row++

	if _, err = writeSection(f, row, "UNDERS", slate.Unders(), styles, styles.underHeader); err != nil {
		return "", err
	}

	// Keep the title and first section header visible while scrolling
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return "", err
	}

	path := w.reportPath(slate)
	tmp, err := os.CreateTemp(w.outputDir, ".slate-*.xlsx")
	if err != nil {
		return "", fmt.Errorf("creating temp report: %w", err)
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("writing workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("publishing report: %w", err)
	}

	return path, nil
}

func (w *Writer) reportPath(slate *models.Slate) string {
	name := fmt.Sprintf("slate_%s_%s.xlsx", slate.Stat, slate.GeneratedAt.Format("2006-01-02"))
	return filepath.Join(w.outputDir, name)
}

func writeTitle(f *excelize.File, row int, title string, style int) error {
	cell := fmt.Sprintf("A%d", row)
	if err := f.SetCellValue(sheetName, cell, title); err != nil {
		return err
	}
	last := colLetter(len(columns) - 1)
	if err := f.MergeCell(sheetName, cell, fmt.Sprintf("%s%d", last, row)); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cell, fmt.Sprintf("%s%d", last, row), style)
}

// writeSection writes a section header, the column header row and one row
// per pick. Returns the next free row.
func writeSection(f *excelize.File, row int, label string, picks []models.EdgeCandidate, styles *styleSet, headerStyle int) (int, error) {
	last := colLetter(len(columns) - 1)

	cell := fmt.Sprintf("A%d", row)
	if err := f.SetCellValue(sheetName, cell, label); err != nil {
		return 0, err
	}
	if err := f.MergeCell(sheetName, cell, fmt.Sprintf("%s%d", last, row)); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheetName, cell, fmt.Sprintf("%s%d", last, row), headerStyle); err != nil {
		return 0, err
	}
	row++

	for i, name := range columns {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("%s%d", colLetter(i), row), name); err != nil {
			return 0, err
		}
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row), styles.columnHeader); err != nil {
		return 0, err
	}
	row++

	if len(picks) == 0 {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "No qualifying picks"); err != nil {
			return 0, err
		}
		return row + 1, nil
	}

	for _, pick := range picks {
		values := []interface{}{
			pick.PlayerName,
			pick.PlayerTeam,
			pick.OpponentTeam,
			fmt.Sprintf("%s %s", displayStat(pick.Stat), pick.Side),
			pick.Line,
			formatAmerican(pick.Price),
			pick.BookName,
			otherBooks(pick),
			pick.ModelProb,
			pick.ImpliedProb,
			pick.Edge,
			pick.Rating,
		}
		for i, v := range values {
			if err := f.SetCellValue(sheetName, fmt.Sprintf("%s%d", colLetter(i), row), v); err != nil {
				return 0, err
			}
		}
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("I%d", row), fmt.Sprintf("K%d", row), styles.percent); err != nil {
			return 0, err
		}
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("L%d", row), fmt.Sprintf("L%d", row), styles.rating); err != nil {
			return 0, err
		}
		row++
	}

	return row, nil
}

// otherBooks lists the pick-side price at every book other than the one the
// pick was scored against, so each row shows prices from at least two books
// when more than one posted the line.
func otherBooks(pick models.EdgeCandidate) string {
	var parts []string
	for _, q := range pick.Quotes {
		if q.BookKey == pick.Book {
			continue
		}
		price := q.OverPrice
		if pick.Side == models.SideUnder {
			price = q.UnderPrice
		}
		parts = append(parts, fmt.Sprintf("%s %s", q.BookTitle, formatAmerican(price)))
	}
	return strings.Join(parts, ", ")
}

func formatAmerican(price int) string {
	if price > 0 {
		return fmt.Sprintf("+%d", price)
	}
	return fmt.Sprintf("%d", price)
}

func displayStat(stat models.StatType) string {
	switch stat {
	case models.StatPoints:
		return "Points"
	case models.StatAssists:
		return "Assists"
	case models.StatRebounds:
		return "Rebounds"
	default:
		return string(stat)
	}
}

func colLetter(i int) string {
	return string(rune('A' + i))
}
