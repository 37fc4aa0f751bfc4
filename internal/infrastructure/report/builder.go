// Package report builds fixed-layout analysis workbooks: a merged title,
// a metadata subtitle, a styled header row, wrapped data rows with
// severity highlighting, and optional summary sheets.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// severityColors maps a severity onto background and font colors,
// matching the classic Excel "bad/neutral/good" palette.
var severityColors = map[Severity][2]string{
	SeverityHigh:   {"FFC7CE", "9C0006"},
	SeverityMedium: {"FFEB9C", "9C6500"},
	SeverityLow:    {"C6EFCE", "006100"},
}

const (
	fontName   = "Calibri"
	themeColor = "1F4E79"
)

type Column struct {
	Letter string
	Title  string
	Width  float64
}

type Builder struct {
	f *excelize.File

	titleStyle    int
	subtitleStyle int
	headerStyle   int
	cellStyle     int
	severityStyle map[Severity]int
}

func NewBuilder() (*Builder, error) {
	b := &Builder{
		f:             excelize.NewFile(),
		severityStyle: make(map[Severity]int),
	}
	if err := b.initStyles(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Builder) initStyles() error {
	var err error

	b.titleStyle, err = b.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: fontName, Size: 14, Bold: true, Color: themeColor},
	})
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}

	b.subtitleStyle, err = b.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: fontName, Size: 10, Italic: true, Color: "666666"},
	})
	if err != nil {
		return fmt.Errorf("subtitle style: %w", err)
	}

	b.headerStyle, err = b.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 11, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{themeColor}},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center", Horizontal: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	b.cellStyle, err = b.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 10},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    thinBorder(),
	})
	if err != nil {
		return fmt.Errorf("cell style: %w", err)
	}

	for severity, colors := range severityColors {
		style, err := b.f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Family: fontName, Size: 10, Bold: true, Color: colors[1]},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colors[0]}},
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top", Horizontal: "center"},
			Border:    thinBorder(),
		})
		if err != nil {
			return fmt.Errorf("severity style %s: %w", severity, err)
		}
		b.severityStyle[severity] = style
	}
	return nil
}

func thinBorder() []excelize.Border {
	border := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		border = append(border, excelize.Border{Type: side, Style: 1, Color: "000000"})
	}
	return border
}

// Sheet creates (or renames the default to) a named worksheet.
func (b *Builder) Sheet(name string) error {
	sheets := b.f.GetSheetList()
	if len(sheets) == 1 && sheets[0] == "Sheet1" {
		return b.f.SetSheetName("Sheet1", name)
	}
	_, err := b.f.NewSheet(name)
	return err
}

func (b *Builder) AddTitle(sheet, title, mergeTo string) error {
	if err := b.f.MergeCell(sheet, "A1", mergeTo); err != nil {
		return err
	}
	if err := b.f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	return b.f.SetCellStyle(sheet, "A1", "A1", b.titleStyle)
}

func (b *Builder) AddSubtitle(sheet, subtitle, mergeTo string) error {
	if err := b.f.MergeCell(sheet, "A2", mergeTo); err != nil {
		return err
	}
	if err := b.f.SetCellValue(sheet, "A2", subtitle); err != nil {
		return err
	}
	return b.f.SetCellStyle(sheet, "A2", "A2", b.subtitleStyle)
}

func (b *Builder) AddHeaders(sheet string, row int, columns []Column) error {
	for _, col := range columns {
		cell := fmt.Sprintf("%s%d", col.Letter, row)
		if err := b.f.SetCellValue(sheet, cell, col.Title); err != nil {
			return err
		}
		if err := b.f.SetCellStyle(sheet, cell, cell, b.headerStyle); err != nil {
			return err
		}
		if err := b.f.SetColWidth(sheet, col.Letter, col.Letter, col.Width); err != nil {
			return err
		}
	}
	return b.f.SetRowHeight(sheet, row, 30)
}

// AddRow writes one data row; values are keyed by column letter.
func (b *Builder) AddRow(sheet string, row int, values map[string]interface{}) error {
	for letter, value := range values {
		cell := fmt.Sprintf("%s%d", letter, row)
		if err := b.f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
		if err := b.f.SetCellStyle(sheet, cell, cell, b.cellStyle); err != nil {
			return err
		}
	}
	return nil
}

// MarkSeverity overrides one cell's style with the severity color scheme.
func (b *Builder) MarkSeverity(sheet, cell string, severity Severity) error {
	style, ok := b.severityStyle[severity]
	if !ok {
		return fmt.Errorf("unknown severity %q", severity)
	}
	return b.f.SetCellStyle(sheet, cell, cell, style)
}

func (b *Builder) SetRowHeight(sheet string, row int, height float64) error {
	return b.f.SetRowHeight(sheet, row, height)
}

func (b *Builder) FreezeTopRows(sheet string, rows int) error {
	return b.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      rows,
		TopLeftCell: fmt.Sprintf("A%d", rows+1),
		ActivePane:  "bottomLeft",
	})
}

func (b *Builder) AutoFilter(sheet, rangeRef string) error {
	return b.f.AutoFilter(sheet, rangeRef, nil)
}

func (b *Builder) Save(path string) error {
	if err := b.f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// File exposes the underlying workbook for layout tweaks the builder does
// not cover.
func (b *Builder) File() *excelize.File {
	return b.f
}
