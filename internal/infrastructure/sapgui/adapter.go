// Package sapgui attaches to a running SAP GUI instance through the
// scripting COM interface (GuiApplication -> GuiConnection -> GuiSession)
// and exposes it behind the SAPPort.
package sapgui

import (
	"context"
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"sap-agent/internal/application/port/output"
	"sap-agent/internal/domain/entity"
)

var _ output.SAPPort = (*Adapter)(nil)

const (
	statusbarID   = "wnd[0]/sbar"
	popupWindowID = "wnd[1]"

	// Containers never nest deeper than this on dynpro screens; the walk
	// stops here to keep snapshots bounded.
	maxWalkDepth = 6
)

type Config struct {
	ConnectionIndex int
	SessionIndex    int
}

func DefaultConfig() Config {
	return Config{ConnectionIndex: 0, SessionIndex: 0}
}

// Adapter holds the IDispatch of one GuiSession. Element handles are
// resolved per call via FindById and released immediately; nothing about
// the screen is cached between calls.
type Adapter struct {
	rot         *ole.IDispatch
	application *ole.IDispatch
	connection  *ole.IDispatch
	session     *ole.IDispatch
	logger      output.LoggerPort
}

func NewAdapter(cfg Config, logger output.LoggerPort) (*Adapter, error) {
	if err := ole.CoInitialize(0); err != nil {
		oleErr, ok := err.(*ole.OleError)
		// S_FALSE means the thread is already initialized, which is fine.
		if !ok || oleErr.Code() != 1 {
			return nil, fmt.Errorf("initialize COM: %w", err)
		}
	}

	a := &Adapter{logger: logger}
	if err := a.attach(cfg); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// attach resolves the Running Object Table entry "SAPGUI" and walks down
// to the requested session.
func (a *Adapter) attach(cfg Config) error {
	unknown, err := oleutil.GetActiveObject("SAPGUI")
	if err != nil {
		return fmt.Errorf("cannot attach to SAP GUI: %w\n"+
			"  - is SAP GUI running and logged in?\n"+
			"  - is scripting enabled (Alt+F12 -> Options -> Scripting)?\n"+
			"  - is sapgui/user_scripting = TRUE on the server?", err)
	}
	rot, err := unknown.QueryInterface(ole.IID_IDispatch)
	unknown.Release()
	if err != nil {
		return fmt.Errorf("query SAPGUI dispatch interface: %w", err)
	}
	a.rot = rot

	engine, err := oleutil.CallMethod(rot, "GetScriptingEngine")
	if err != nil {
		return fmt.Errorf("get scripting engine: %w", err)
	}
	a.application = engine.ToIDispatch()

	a.connection, err = childAt(a.application, cfg.ConnectionIndex)
	if err != nil {
		return fmt.Errorf("no SAP connection open at index %d: %w", cfg.ConnectionIndex, err)
	}

	a.session, err = childAt(a.connection, cfg.SessionIndex)
	if err != nil {
		return fmt.Errorf("no SAP session open at index %d: %w", cfg.SessionIndex, err)
	}

	if info, err := a.SessionInfo(context.Background()); err == nil {
		a.logger.Info("Attached to SAP session",
			"system", info.SystemName,
			"client", info.Client,
			"user", info.User,
			"transaction", info.Transaction)
	}
	return nil
}

func (a *Adapter) SessionInfo(ctx context.Context) (*entity.SessionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := dispProperty(a.session, "Info")
	if err != nil {
		return nil, fmt.Errorf("read session info: %w", err)
	}
	defer info.Release()

	result := &entity.SessionInfo{}
	result.SystemName, _ = stringProperty(info, "SystemName")
	result.Client, _ = stringProperty(info, "Client")
	result.User, _ = stringProperty(info, "User")
	result.Language, _ = stringProperty(info, "Language")
	result.Transaction, _ = stringProperty(info, "Transaction")
	result.Program, _ = stringProperty(info, "Program")
	result.ScreenNumber, _ = intProperty(info, "ScreenNumber")
	return result, nil
}

func (a *Adapter) StartTransaction(ctx context.Context, tcode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := oleutil.CallMethod(a.session, "StartTransaction", tcode); err != nil {
		return fmt.Errorf("start transaction %s: %w", tcode, err)
	}
	return nil
}

func (a *Adapter) EndTransaction(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := oleutil.CallMethod(a.session, "EndTransaction"); err != nil {
		return fmt.Errorf("end transaction: %w", err)
	}
	return nil
}

func (a *Adapter) SendCommand(ctx context.Context, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := oleutil.CallMethod(a.session, "SendCommand", command); err != nil {
		return fmt.Errorf("send command %q: %w", command, err)
	}
	return nil
}

func (a *Adapter) SendVKey(ctx context.Context, windowID string, vkey int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	window, err := a.findByID(windowID)
	if err != nil {
		return err
	}
	defer window.Release()
	if _, err := oleutil.CallMethod(window, "SendVKey", vkey); err != nil {
		return fmt.Errorf("send vkey %d to %s: %w", vkey, windowID, err)
	}
	return nil
}

func (a *Adapter) SetText(ctx context.Context, id, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	element, err := a.findByID(id)
	if err != nil {
		return err
	}
	defer element.Release()
	if _, err := oleutil.PutProperty(element, "Text", value); err != nil {
		return fmt.Errorf("set text of %s: %w", id, err)
	}
	return nil
}

func (a *Adapter) GetText(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	element, err := a.findByID(id)
	if err != nil {
		return "", err
	}
	defer element.Release()
	text, err := stringProperty(element, "Text")
	if err != nil {
		return "", fmt.Errorf("get text of %s: %w", id, err)
	}
	return text, nil
}

func (a *Adapter) PressButton(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	element, err := a.findByID(id)
	if err != nil {
		return err
	}
	defer element.Release()
	if _, err := oleutil.CallMethod(element, "Press"); err != nil {
		return fmt.Errorf("press %s: %w", id, err)
	}
	return nil
}

func (a *Adapter) SetCheckbox(ctx context.Context, id string, selected bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	element, err := a.findByID(id)
	if err != nil {
		return err
	}
	defer element.Release()
	if _, err := oleutil.PutProperty(element, "Selected", selected); err != nil {
		return fmt.Errorf("set checkbox %s: %w", id, err)
	}
	return nil
}

func (a *Adapter) SelectRadio(ctx context.Context, id string) error {
	return a.selectElement(ctx, id, "radio button")
}

func (a *Adapter) SelectTab(ctx context.Context, id string) error {
	return a.selectElement(ctx, id, "tab")
}

func (a *Adapter) selectElement(ctx context.Context, id, kind string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	element, err := a.findByID(id)
	if err != nil {
		return err
	}
	defer element.Release()
	if _, err := oleutil.CallMethod(element, "Select"); err != nil {
		return fmt.Errorf("select %s %s: %w", kind, id, err)
	}
	return nil
}

// SelectComboEntry picks a GuiComboBox entry by its key, the technical
// value behind the visible text.
func (a *Adapter) SelectComboEntry(ctx context.Context, id, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	element, err := a.findByID(id)
	if err != nil {
		return err
	}
	defer element.Release()
	if _, err := oleutil.PutProperty(element, "Key", key); err != nil {
		return fmt.Errorf("select combo entry %q on %s: %w", key, id, err)
	}
	return nil
}

func (a *Adapter) ReadStatusbar(ctx context.Context) (*entity.StatusbarMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sbar, err := a.findByID(statusbarID)
	if err != nil {
		return nil, err
	}
	defer sbar.Release()

	msg := &entity.StatusbarMessage{}
	if msg.Text, err = stringProperty(sbar, "Text"); err != nil {
		return nil, fmt.Errorf("read statusbar text: %w", err)
	}
	msg.MessageType, _ = stringProperty(sbar, "MessageType")
	return msg, nil
}

func (a *Adapter) DismissPopup(ctx context.Context, buttonID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	popup, err := a.findByID(popupWindowID)
	if err != nil {
		// No modal window open.
		return false, nil
	}
	popup.Release()

	button, err := a.findByID(buttonID)
	if err != nil {
		return false, err
	}
	defer button.Release()
	if _, err := oleutil.CallMethod(button, "Press"); err != nil {
		return false, fmt.Errorf("press popup button %s: %w", buttonID, err)
	}
	return true, nil
}

func (a *Adapter) DescribeScreen(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	window, err := dispProperty(a.session, "ActiveWindow")
	if err != nil {
		return "", fmt.Errorf("read active window: %w", err)
	}
	defer window.Release()

	title, _ := stringProperty(window, "Text")

	var elements []entity.ScreenElement
	a.walkChildren(window, 0, &elements)
	return entity.FormatScreen(title, elements), nil
}

// walkChildren collects the component tree below parent. Properties that a
// component type does not implement (Text, Changeable, Children) are
// skipped silently; the scripting API raises for those.
func (a *Adapter) walkChildren(parent *ole.IDispatch, depth int, out *[]entity.ScreenElement) {
	if depth > maxWalkDepth {
		return
	}
	count, err := childCount(parent)
	if err != nil {
		return
	}
	for i := 0; i < count; i++ {
		child, err := childAt(parent, i)
		if err != nil {
			continue
		}

		el := entity.ScreenElement{Depth: depth}
		el.ID, _ = stringProperty(child, "Id")
		el.Type, _ = stringProperty(child, "Type")
		el.Name, _ = stringProperty(child, "Name")
		el.Text, _ = stringProperty(child, "Text")
		el.Changeable, _ = boolProperty(child, "Changeable")
		*out = append(*out, el)

		if isContainer, _ := boolProperty(child, "ContainerType"); isContainer {
			a.walkChildren(child, depth+1, out)
		}
		child.Release()
	}
}

func (a *Adapter) Close() {
	for _, d := range []*ole.IDispatch{a.session, a.connection, a.application, a.rot} {
		if d != nil {
			d.Release()
		}
	}
	a.session, a.connection, a.application, a.rot = nil, nil, nil, nil
	ole.CoUninitialize()
}

func (a *Adapter) findByID(id string) (*ole.IDispatch, error) {
	v, err := oleutil.CallMethod(a.session, "FindById", id)
	if err != nil {
		return nil, fmt.Errorf("element not found: %s", id)
	}
	element := v.ToIDispatch()
	if element == nil {
		return nil, fmt.Errorf("element not found: %s", id)
	}
	return element, nil
}
