package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"sap-agent/internal/application/port/output"
	"sap-agent/internal/domain/entity"
)

// Locator parameter shared by every element-addressed tool. The id is the
// full scripting path of the control, e.g. "wnd[0]/usr/ctxtGD-TAB".
func locatorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

type StartTransactionTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewStartTransactionTool(sap output.SAPPort, logger output.LoggerPort) *StartTransactionTool {
	return &StartTransactionTool{sap: sap, logger: logger}
}

func (t *StartTransactionTool) Name() entity.ToolName { return entity.ToolSAPStartTransaction }
func (t *StartTransactionTool) Description() string {
	return "Starts an SAP transaction by code (e.g. 'SE16H', 'FBL1N'). Equivalent to /n<tcode> in the command field."
}
func (t *StartTransactionTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"tcode": map[string]interface{}{
				"type":        "string",
				"description": "Transaction code to start",
			},
		},
		"required": []string{"tcode"},
	}
}

func (t *StartTransactionTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		TCode string `json:"tcode"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if err := t.sap.StartTransaction(ctx, input.TCode); err != nil {
		return "", err
	}
	return fmt.Sprintf("Transaction %s started", input.TCode), nil
}

type SendCommandTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewSendCommandTool(sap output.SAPPort, logger output.LoggerPort) *SendCommandTool {
	return &SendCommandTool{sap: sap, logger: logger}
}

func (t *SendCommandTool) Name() entity.ToolName { return entity.ToolSAPSendCommand }
func (t *SendCommandTool) Description() string {
	return "Executes a raw command string as if typed into the OK-code field, e.g. '/nSE16', '/n' (end transaction), '/o' (new session)."
}
func (t *SendCommandTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"command": map[string]interface{}{
				"type":        "string",
				"description": "Command string including the /n or /o prefix",
			},
		},
		"required": []string{"command"},
	}
}

func (t *SendCommandTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if err := t.sap.SendCommand(ctx, input.Command); err != nil {
		return "", err
	}
	return fmt.Sprintf("Command '%s' sent", input.Command), nil
}

type SetFieldTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewSetFieldTool(sap output.SAPPort, logger output.LoggerPort) *SetFieldTool {
	return &SetFieldTool{sap: sap, logger: logger}
}

func (t *SetFieldTool) Name() entity.ToolName { return entity.ToolSAPSetField }
func (t *SetFieldTool) Description() string {
	return "Sets the text value of an input field identified by its full scripting id."
}
func (t *SetFieldTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id":    locatorProperty("Full scripting id of the field, e.g. 'wnd[0]/usr/ctxtGD-TAB'"),
			"value": map[string]interface{}{"type": "string", "description": "Text to write into the field"},
		},
		"required": []string{"id", "value"},
	}
}

func (t *SetFieldTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if err := t.sap.SetText(ctx, input.ID, input.Value); err != nil {
		return "", err
	}
	return fmt.Sprintf("Field %s set to '%s'", input.ID, input.Value), nil
}

type GetFieldTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewGetFieldTool(sap output.SAPPort, logger output.LoggerPort) *GetFieldTool {
	return &GetFieldTool{sap: sap, logger: logger}
}

func (t *GetFieldTool) Name() entity.ToolName { return entity.ToolSAPGetField }
func (t *GetFieldTool) Description() string {
	return "Reads the current text value of a field identified by its full scripting id."
}
func (t *GetFieldTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": locatorProperty("Full scripting id of the field"),
		},
		"required": []string{"id"},
	}
}

func (t *GetFieldTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	value, err := t.sap.GetText(ctx, input.ID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = '%s'", input.ID, value), nil
}

type PressButtonTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewPressButtonTool(sap output.SAPPort, logger output.LoggerPort) *PressButtonTool {
	return &PressButtonTool{sap: sap, logger: logger}
}

func (t *PressButtonTool) Name() entity.ToolName { return entity.ToolSAPPressButton }
func (t *PressButtonTool) Description() string {
	return "Presses a button identified by its full scripting id."
}
func (t *PressButtonTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": locatorProperty("Full scripting id of the button, e.g. 'wnd[0]/tbar[1]/btn[8]'"),
		},
		"required": []string{"id"},
	}
}

func (t *PressButtonTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if err := t.sap.PressButton(ctx, input.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Button %s pressed", input.ID), nil
}

type SendVKeyTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewSendVKeyTool(sap output.SAPPort, logger output.LoggerPort) *SendVKeyTool {
	return &SendVKeyTool{sap: sap, logger: logger}
}

func (t *SendVKeyTool) Name() entity.ToolName { return entity.ToolSAPSendVKey }
func (t *SendVKeyTool) Description() string {
	return "Sends a virtual key to a window. Common keys: 0=Enter, 3=Back(F3), 8=Execute(F8), 12=Cancel(F12)."
}
func (t *SendVKeyTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"vkey": map[string]interface{}{
				"type":        "integer",
				"description": "Virtual key code",
			},
			"window": map[string]interface{}{
				"type":        "string",
				"description": "Target window id, defaults to 'wnd[0]'",
			},
		},
		"required": []string{"vkey"},
	}
}

func (t *SendVKeyTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		VKey   int    `json:"vkey"`
		Window string `json:"window"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if input.Window == "" {
		input.Window = "wnd[0]"
	}
	if err := t.sap.SendVKey(ctx, input.Window, input.VKey); err != nil {
		return "", err
	}
	return fmt.Sprintf("VKey %d sent to %s", input.VKey, input.Window), nil
}

type SetCheckboxTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewSetCheckboxTool(sap output.SAPPort, logger output.LoggerPort) *SetCheckboxTool {
	return &SetCheckboxTool{sap: sap, logger: logger}
}

func (t *SetCheckboxTool) Name() entity.ToolName { return entity.ToolSAPSetCheckbox }
func (t *SetCheckboxTool) Description() string {
	return "Checks or unchecks a checkbox identified by its full scripting id."
}
func (t *SetCheckboxTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": locatorProperty("Full scripting id of the checkbox"),
			"selected": map[string]interface{}{
				"type":        "boolean",
				"description": "true to check, false to uncheck",
			},
		},
		"required": []string{"id", "selected"},
	}
}

func (t *SetCheckboxTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		ID       string `json:"id"`
		Selected bool   `json:"selected"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if err := t.sap.SetCheckbox(ctx, input.ID, input.Selected); err != nil {
		return "", err
	}
	state := "unchecked"
	if input.Selected {
		state = "checked"
	}
	return fmt.Sprintf("Checkbox %s %s", input.ID, state), nil
}

type SelectRadioTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewSelectRadioTool(sap output.SAPPort, logger output.LoggerPort) *SelectRadioTool {
	return &SelectRadioTool{sap: sap, logger: logger}
}

func (t *SelectRadioTool) Name() entity.ToolName { return entity.ToolSAPSelectRadio }
func (t *SelectRadioTool) Description() string {
	return "Selects a radio button identified by its full scripting id."
}
func (t *SelectRadioTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": locatorProperty("Full scripting id of the radio button"),
		},
		"required": []string{"id"},
	}
}

func (t *SelectRadioTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if err := t.sap.SelectRadio(ctx, input.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Radio button %s selected", input.ID), nil
}

type SelectTabTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewSelectTabTool(sap output.SAPPort, logger output.LoggerPort) *SelectTabTool {
	return &SelectTabTool{sap: sap, logger: logger}
}

func (t *SelectTabTool) Name() entity.ToolName { return entity.ToolSAPSelectTab }
func (t *SelectTabTool) Description() string {
	return "Selects a tab on a tab strip, identified by its full scripting id (type prefix 'tabp')."
}
func (t *SelectTabTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": locatorProperty("Full scripting id of the tab"),
		},
		"required": []string{"id"},
	}
}

func (t *SelectTabTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if err := t.sap.SelectTab(ctx, input.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tab %s selected", input.ID), nil
}

type SelectComboTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewSelectComboTool(sap output.SAPPort, logger output.LoggerPort) *SelectComboTool {
	return &SelectComboTool{sap: sap, logger: logger}
}

func (t *SelectComboTool) Name() entity.ToolName { return entity.ToolSAPSelectCombo }
func (t *SelectComboTool) Description() string {
	return "Selects a dropdown (combo box) entry by its key. The key is the technical value, not the visible text."
}
func (t *SelectComboTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": locatorProperty("Full scripting id of the combo box (type prefix 'cmb')"),
			"key": map[string]interface{}{
				"type":        "string",
				"description": "Key of the entry to select",
			},
		},
		"required": []string{"id", "key"},
	}
}

func (t *SelectComboTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		ID  string `json:"id"`
		Key string `json:"key"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if err := t.sap.SelectComboEntry(ctx, input.ID, input.Key); err != nil {
		return "", err
	}
	return fmt.Sprintf("Combo box %s set to '%s'", input.ID, input.Key), nil
}

type ReadStatusbarTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewReadStatusbarTool(sap output.SAPPort, logger output.LoggerPort) *ReadStatusbarTool {
	return &ReadStatusbarTool{sap: sap, logger: logger}
}

func (t *ReadStatusbarTool) Name() entity.ToolName { return entity.ToolSAPReadStatusbar }
func (t *ReadStatusbarTool) Description() string {
	return "Reads the status bar message and its severity (success/warning/error/abort/info). Always check it after executing a step."
}
func (t *ReadStatusbarTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *ReadStatusbarTool) Execute(ctx context.Context, args string) (string, error) {
	msg, err := t.sap.ReadStatusbar(ctx)
	if err != nil {
		return "", err
	}
	return msg.String(), nil
}

type DescribeScreenTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewDescribeScreenTool(sap output.SAPPort, logger output.LoggerPort) *DescribeScreenTool {
	return &DescribeScreenTool{sap: sap, logger: logger}
}

func (t *DescribeScreenTool) Name() entity.ToolName { return entity.ToolSAPDescribeScreen }
func (t *DescribeScreenTool) Description() string {
	return "Lists every element of the active window with id, type, text and editability. Use it to discover field ids on unknown screens."
}
func (t *DescribeScreenTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *DescribeScreenTool) Execute(ctx context.Context, args string) (string, error) {
	return t.sap.DescribeScreen(ctx)
}

type ReadGridTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewReadGridTool(sap output.SAPPort, logger output.LoggerPort) *ReadGridTool {
	return &ReadGridTool{sap: sap, logger: logger}
}

func (t *ReadGridTool) Name() entity.ToolName { return entity.ToolSAPReadGrid }
func (t *ReadGridTool) Description() string {
	return "Reads the result grid (ALV) of the current screen into a text table. Searches common grid container paths when no id is given."
}
func (t *ReadGridTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"container": map[string]interface{}{
				"type":        "string",
				"description": "Container id to search under, defaults to 'wnd[0]/usr'",
			},
			"max_rows": map[string]interface{}{
				"type":        "integer",
				"description": "Row limit, defaults to 100",
			},
		},
	}
}

func (t *ReadGridTool) Execute(ctx context.Context, args string) (string, error) {
	input := struct {
		Container string `json:"container"`
		MaxRows   int    `json:"max_rows"`
	}{Container: "wnd[0]/usr", MaxRows: 100}
	if args != "" {
		if err := json.Unmarshal([]byte(args), &input); err != nil {
			return "", err
		}
	}
	if input.Container == "" {
		input.Container = "wnd[0]/usr"
	}
	if input.MaxRows <= 0 {
		input.MaxRows = 100
	}
	grid, err := t.sap.ReadGrid(ctx, input.Container, input.MaxRows)
	if err != nil {
		return "", err
	}
	return grid.FormatTable(), nil
}

type DismissPopupTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewDismissPopupTool(sap output.SAPPort, logger output.LoggerPort) *DismissPopupTool {
	return &DismissPopupTool{sap: sap, logger: logger}
}

func (t *DismissPopupTool) Name() entity.ToolName { return entity.ToolSAPDismissPopup }
func (t *DismissPopupTool) Description() string {
	return "Dismisses a modal popup window (wnd[1]) by pressing one of its buttons, if a popup is open."
}
func (t *DismissPopupTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"button": map[string]interface{}{
				"type":        "string",
				"description": "Button id to press, defaults to 'wnd[1]/tbar[0]/btn[0]'",
			},
		},
	}
}

func (t *DismissPopupTool) Execute(ctx context.Context, args string) (string, error) {
	input := struct {
		Button string `json:"button"`
	}{Button: "wnd[1]/tbar[0]/btn[0]"}
	if args != "" {
		if err := json.Unmarshal([]byte(args), &input); err != nil {
			return "", err
		}
	}
	if input.Button == "" {
		input.Button = "wnd[1]/tbar[0]/btn[0]"
	}
	handled, err := t.sap.DismissPopup(ctx, input.Button)
	if err != nil {
		return "", err
	}
	if !handled {
		return "No popup window open", nil
	}
	return "Popup dismissed", nil
}

type SessionInfoTool struct {
	sap    output.SAPPort
	logger output.LoggerPort
}

func NewSessionInfoTool(sap output.SAPPort, logger output.LoggerPort) *SessionInfoTool {
	return &SessionInfoTool{sap: sap, logger: logger}
}

func (t *SessionInfoTool) Name() entity.ToolName { return entity.ToolSAPSessionInfo }
func (t *SessionInfoTool) Description() string {
	return "Reports the attached session: system, client, user, current transaction and program."
}
func (t *SessionInfoTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *SessionInfoTool) Execute(ctx context.Context, args string) (string, error) {
	info, err := t.sap.SessionInfo(ctx)
	if err != nil {
		return "", err
	}
	return info.String(), nil
}
