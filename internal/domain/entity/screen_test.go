package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusbarMessage_Severity(t *testing.T) {
	tests := []struct {
		msgType string
		want    StatusbarSeverity
	}{
		{"S", SeveritySuccess},
		{"s", SeveritySuccess},
		{"W", SeverityWarning},
		{"E", SeverityError},
		{"A", SeverityAbort},
		{"I", SeverityInfo},
		{"", SeverityNone},
		{"X", SeverityNone},
	}
	for _, tt := range tests {
		m := StatusbarMessage{MessageType: tt.msgType}
		assert.Equal(t, tt.want, m.Severity(), "type %q", tt.msgType)
	}
}

func TestStatusbarMessage_IsError(t *testing.T) {
	assert.True(t, (&StatusbarMessage{MessageType: "E"}).IsError())
	assert.True(t, (&StatusbarMessage{MessageType: "A"}).IsError())
	assert.False(t, (&StatusbarMessage{MessageType: "W"}).IsError())
	assert.False(t, (&StatusbarMessage{MessageType: "S"}).IsError())
}

func TestStatusbarMessage_String(t *testing.T) {
	m := StatusbarMessage{Text: "Document 100000123 was posted", MessageType: "S"}
	assert.Equal(t, "[success] Document 100000123 was posted", m.String())

	empty := StatusbarMessage{}
	assert.Equal(t, "status bar is empty", empty.String())
}

func TestFormatScreen(t *testing.T) {
	got := FormatScreen("SAP Easy Access", []ScreenElement{
		{ID: "wnd[0]/usr", Type: "GuiUserArea", Depth: 0},
		{ID: "wnd[0]/usr/ctxtGD-TAB", Type: "GuiCTextField", Text: "BSEG", Changeable: true, Depth: 1},
	})

	assert.Contains(t, got, "Current window: SAP Easy Access")
	assert.Contains(t, got, "- id=wnd[0]/usr type=GuiUserArea")
	assert.Contains(t, got, "  - id=wnd[0]/usr/ctxtGD-TAB type=GuiCTextField text=\"BSEG\" editable")
}

func TestFormatScreen_Empty(t *testing.T) {
	got := FormatScreen("Blank", nil)
	assert.Contains(t, got, "(no elements)")
}

func TestGridData_FormatTable(t *testing.T) {
	g := GridData{
		Columns: []string{"BUKRS", "LIFNR"},
		Rows: []map[string]string{
			{"BUKRS": "1000", "LIFNR": "VEND001"},
			{"BUKRS": "2000", "LIFNR": "V2"},
		},
		TotalRows: 2,
	}

	got := g.FormatTable()
	assert.Contains(t, got, "BUKRS")
	assert.Contains(t, got, "VEND001")
	assert.NotContains(t, got, "rows shown")
}

func TestGridData_FormatTable_Truncated(t *testing.T) {
	g := GridData{
		Columns:   []string{"BELNR"},
		Rows:      []map[string]string{{"BELNR": "100000001"}},
		TotalRows: 540,
	}
	assert.Contains(t, g.FormatTable(), "(1 of 540 rows shown)")
}

func TestGridData_FormatTable_Empty(t *testing.T) {
	g := GridData{}
	assert.Equal(t, "grid is empty", g.FormatTable())
}
