package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuilder_SheetRenamesDefault(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	require.NoError(t, b.Sheet("Error Analysis"))
	assert.Equal(t, []string{"Error Analysis"}, b.File().GetSheetList())

	require.NoError(t, b.Sheet("Summary"))
	assert.Equal(t, []string{"Error Analysis", "Summary"}, b.File().GetSheetList())
}

func TestBuilder_TitleAndHeaders(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Sheet("Report"))

	require.NoError(t, b.AddTitle("Report", "Posting Errors", "C1"))
	require.NoError(t, b.AddHeaders("Report", 4, []Column{
		{Letter: "A", Title: "#", Width: 5},
		{Letter: "B", Title: "Error", Width: 40},
		{Letter: "C", Title: "Severity", Width: 12},
	}))

	title, err := b.File().GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Posting Errors", title)

	header, err := b.File().GetCellValue("Report", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Error", header)

	width, err := b.File().GetColWidth("Report", "B")
	require.NoError(t, err)
	assert.InDelta(t, 40, width, 0.1)
}

func TestBuilder_RowsAndSeverity(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Sheet("Report"))

	require.NoError(t, b.AddRow("Report", 5, map[string]interface{}{
		"A": 1,
		"B": "balance in transaction currency",
		"C": string(SeverityHigh),
	}))
	require.NoError(t, b.MarkSeverity("Report", "C5", SeverityHigh))

	got, err := b.File().GetCellValue("Report", "B5")
	require.NoError(t, err)
	assert.Equal(t, "balance in transaction currency", got)

	styleID, err := b.File().GetCellStyle("Report", "C5")
	require.NoError(t, err)
	assert.NotZero(t, styleID)
}

func TestBuilder_MarkSeverityUnknown(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Sheet("Report"))

	err = b.MarkSeverity("Report", "A1", Severity("CRITICAL"))
	assert.ErrorContains(t, err, "unknown severity")
}

func TestBuilder_SaveProducesReadableWorkbook(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.Sheet("Report"))
	require.NoError(t, b.AddTitle("Report", "Test", "B1"))
	require.NoError(t, b.AddRow("Report", 3, map[string]interface{}{"A": "x"}))
	require.NoError(t, b.FreezeTopRows("Report", 3))
	require.NoError(t, b.AutoFilter("Report", "A3:B3"))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, b.Save(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Report", "A3")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}
