package output

import (
	"context"

	"sap-agent/internal/domain/entity"
)

// ScreenObserver yields a textual snapshot of the active window. The
// executor injects it into every reasoning phase so the model always acts
// on the screen as it currently is.
type ScreenObserver interface {
	DescribeScreen(ctx context.Context) (string, error)
}

// SAPPort wraps the scripting interface of an already running SAP GUI
// session. Every call is a stateless round-trip to the live GUI process;
// element handles are resolved fresh on each access and never cached.
type SAPPort interface {
	ScreenObserver

	SessionInfo(ctx context.Context) (*entity.SessionInfo, error)

	StartTransaction(ctx context.Context, tcode string) error
	EndTransaction(ctx context.Context) error
	SendCommand(ctx context.Context, command string) error
	SendVKey(ctx context.Context, windowID string, vkey int) error

	SetText(ctx context.Context, id, value string) error
	GetText(ctx context.Context, id string) (string, error)
	PressButton(ctx context.Context, id string) error
	SetCheckbox(ctx context.Context, id string, selected bool) error
	SelectRadio(ctx context.Context, id string) error
	SelectTab(ctx context.Context, id string) error
	SelectComboEntry(ctx context.Context, id, key string) error

	ReadStatusbar(ctx context.Context) (*entity.StatusbarMessage, error)
	DismissPopup(ctx context.Context, buttonID string) (bool, error)
	ReadGrid(ctx context.Context, containerID string, maxRows int) (*entity.GridData, error)

	Close()
}
