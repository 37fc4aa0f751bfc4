package entity

import (
	"fmt"
	"strings"
)

// Virtual key codes understood by GuiFrameWindow.SendVKey.
const (
	VKeyEnter        = 0
	VKeyF2           = 2
	VKeyBack         = 3
	VKeyF5           = 5
	VKeyF6           = 6
	VKeyF7           = 7
	VKeyExecute      = 8
	VKeyF9           = 9
	VKeyCancel       = 12
	VKeySaveAs       = 16
	VKeyCtrlShiftF12 = 36
)

// SessionInfo mirrors the GuiSessionInfo properties of the attached session.
type SessionInfo struct {
	SystemName   string
	Client       string
	User         string
	Language     string
	Transaction  string
	Program      string
	ScreenNumber int
}

func (s *SessionInfo) String() string {
	return fmt.Sprintf("system=%s client=%s user=%s language=%s transaction=%s program=%s screen=%d",
		s.SystemName, s.Client, s.User, s.Language, s.Transaction, s.Program, s.ScreenNumber)
}

// StatusbarSeverity classifies the GuiStatusbar message type.
type StatusbarSeverity string

const (
	SeveritySuccess StatusbarSeverity = "success"
	SeverityWarning StatusbarSeverity = "warning"
	SeverityError   StatusbarSeverity = "error"
	SeverityAbort   StatusbarSeverity = "abort"
	SeverityInfo    StatusbarSeverity = "info"
	SeverityNone    StatusbarSeverity = "none"
)

// StatusbarMessage is the current content of wnd[0]/sbar.
type StatusbarMessage struct {
	Text        string
	MessageType string // S, W, E, A, I or empty
}

// Severity maps the one-letter SAP message type onto a named severity.
func (m *StatusbarMessage) Severity() StatusbarSeverity {
	switch strings.ToUpper(m.MessageType) {
	case "S":
		return SeveritySuccess
	case "W":
		return SeverityWarning
	case "E":
		return SeverityError
	case "A":
		return SeverityAbort
	case "I":
		return SeverityInfo
	default:
		return SeverityNone
	}
}

// IsError reports whether the message blocks further processing.
func (m *StatusbarMessage) IsError() bool {
	sev := m.Severity()
	return sev == SeverityError || sev == SeverityAbort
}

func (m *StatusbarMessage) String() string {
	if m.Text == "" && m.MessageType == "" {
		return "status bar is empty"
	}
	return fmt.Sprintf("[%s] %s", m.Severity(), m.Text)
}

// ScreenElement is one node of the active window's component tree.
type ScreenElement struct {
	ID         string
	Type       string
	Name       string
	Text       string
	Changeable bool
	Depth      int
}

// FormatScreen renders a component tree the way the model sees it:
// one line per element, indented by depth.
func FormatScreen(title string, elements []ScreenElement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current window: %s\n", title)
	if len(elements) == 0 {
		b.WriteString("(no elements)\n")
		return b.String()
	}
	for _, el := range elements {
		indent := strings.Repeat("  ", el.Depth)
		fmt.Fprintf(&b, "%s- id=%s type=%s", indent, el.ID, el.Type)
		if el.Text != "" {
			fmt.Fprintf(&b, " text=%q", el.Text)
		}
		if el.Changeable {
			b.WriteString(" editable")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// GridData is a slice of a GuiGridView: column ids in display order plus
// row values keyed by column id.
type GridData struct {
	Columns   []string
	Rows      []map[string]string
	TotalRows int
}

// FormatTable renders grid rows as aligned text, one row per line.
func (g *GridData) FormatTable() string {
	if len(g.Columns) == 0 {
		return "grid is empty"
	}

	widths := make([]int, len(g.Columns))
	for i, col := range g.Columns {
		widths[i] = len(col)
	}
	for _, row := range g.Rows {
		for i, col := range g.Columns {
			if n := len(row[col]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	for i, col := range g.Columns {
		fmt.Fprintf(&b, "%-*s  ", widths[i], col)
	}
	b.WriteString("\n")
	for _, row := range g.Rows {
		for i, col := range g.Columns {
			fmt.Fprintf(&b, "%-*s  ", widths[i], row[col])
		}
		b.WriteString("\n")
	}
	if g.TotalRows > len(g.Rows) {
		fmt.Fprintf(&b, "(%d of %d rows shown)\n", len(g.Rows), g.TotalRows)
	}
	return b.String()
}
