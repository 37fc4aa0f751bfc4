package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sap-agent/internal/application/port/output"
	"sap-agent/internal/domain/entity"
)

type sapCall struct {
	method string
	args   []any
}

type mockSAP struct {
	calls     []sapCall
	err       error
	fieldText string
	statusbar entity.StatusbarMessage
	screen    string
	grid      entity.GridData
	popupOpen bool
}

var _ output.SAPPort = (*mockSAP)(nil)

func (m *mockSAP) record(method string, args ...any) {
	m.calls = append(m.calls, sapCall{method: method, args: args})
}

func (m *mockSAP) SessionInfo(ctx context.Context) (*entity.SessionInfo, error) {
	m.record("SessionInfo")
	return &entity.SessionInfo{SystemName: "MWA", Client: "100", User: "AGENT", Transaction: "SE16H"}, m.err
}

func (m *mockSAP) StartTransaction(ctx context.Context, tcode string) error {
	m.record("StartTransaction", tcode)
	return m.err
}

func (m *mockSAP) EndTransaction(ctx context.Context) error {
	m.record("EndTransaction")
	return m.err
}

func (m *mockSAP) SendCommand(ctx context.Context, command string) error {
	m.record("SendCommand", command)
	return m.err
}

func (m *mockSAP) SendVKey(ctx context.Context, windowID string, vkey int) error {
	m.record("SendVKey", windowID, vkey)
	return m.err
}

func (m *mockSAP) SetText(ctx context.Context, id, value string) error {
	m.record("SetText", id, value)
	return m.err
}

func (m *mockSAP) GetText(ctx context.Context, id string) (string, error) {
	m.record("GetText", id)
	return m.fieldText, m.err
}

func (m *mockSAP) PressButton(ctx context.Context, id string) error {
	m.record("PressButton", id)
	return m.err
}

func (m *mockSAP) SetCheckbox(ctx context.Context, id string, selected bool) error {
	m.record("SetCheckbox", id, selected)
	return m.err
}

func (m *mockSAP) SelectRadio(ctx context.Context, id string) error {
	m.record("SelectRadio", id)
	return m.err
}

func (m *mockSAP) SelectTab(ctx context.Context, id string) error {
	m.record("SelectTab", id)
	return m.err
}

func (m *mockSAP) SelectComboEntry(ctx context.Context, id, key string) error {
	m.record("SelectComboEntry", id, key)
	return m.err
}

func (m *mockSAP) ReadStatusbar(ctx context.Context) (*entity.StatusbarMessage, error) {
	m.record("ReadStatusbar")
	sb := m.statusbar
	return &sb, m.err
}

func (m *mockSAP) DismissPopup(ctx context.Context, buttonID string) (bool, error) {
	m.record("DismissPopup", buttonID)
	return m.popupOpen, m.err
}

func (m *mockSAP) DescribeScreen(ctx context.Context) (string, error) {
	m.record("DescribeScreen")
	return m.screen, m.err
}

func (m *mockSAP) ReadGrid(ctx context.Context, containerID string, maxRows int) (*entity.GridData, error) {
	m.record("ReadGrid", containerID, maxRows)
	g := m.grid
	return &g, m.err
}

func (m *mockSAP) Close() {}

type testLogger struct{}

func (testLogger) Debug(msg string, args ...any)                 {}
func (testLogger) Info(msg string, args ...any)                  {}
func (testLogger) Warn(msg string, args ...any)                  {}
func (testLogger) Error(msg string, args ...any)                 {}
func (l testLogger) WithField(k string, v any) output.LoggerPort { return l }
func (testLogger) Close() error                                  { return nil }

func TestStartTransactionTool(t *testing.T) {
	sap := &mockSAP{}
	tool := NewStartTransactionTool(sap, testLogger{})

	result, err := tool.Execute(context.Background(), `{"tcode":"SE16H"}`)

	require.NoError(t, err)
	assert.Equal(t, "Transaction SE16H started", result)
	require.Len(t, sap.calls, 1)
	assert.Equal(t, "StartTransaction", sap.calls[0].method)
	assert.Equal(t, "SE16H", sap.calls[0].args[0])
}

func TestSetFieldTool(t *testing.T) {
	sap := &mockSAP{}
	tool := NewSetFieldTool(sap, testLogger{})

	result, err := tool.Execute(context.Background(), `{"id":"wnd[0]/usr/ctxtGD-TAB","value":"BSIK"}`)

	require.NoError(t, err)
	assert.Contains(t, result, "wnd[0]/usr/ctxtGD-TAB")
	assert.Contains(t, result, "BSIK")
}

func TestGetFieldTool(t *testing.T) {
	sap := &mockSAP{fieldText: "1000"}
	tool := NewGetFieldTool(sap, testLogger{})

	result, err := tool.Execute(context.Background(), `{"id":"wnd[0]/usr/txtBUKRS"}`)

	require.NoError(t, err)
	assert.Equal(t, "wnd[0]/usr/txtBUKRS = '1000'", result)
}

func TestPressButtonTool_ErrorPropagates(t *testing.T) {
	sap := &mockSAP{err: errors.New("element not found: wnd[0]/tbar[1]/btn[8]")}
	tool := NewPressButtonTool(sap, testLogger{})

	_, err := tool.Execute(context.Background(), `{"id":"wnd[0]/tbar[1]/btn[8]"}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "element not found")
}

func TestSendVKeyTool_DefaultsToMainWindow(t *testing.T) {
	sap := &mockSAP{}
	tool := NewSendVKeyTool(sap, testLogger{})

	result, err := tool.Execute(context.Background(), `{"vkey":8}`)

	require.NoError(t, err)
	assert.Equal(t, "VKey 8 sent to wnd[0]", result)
	assert.Equal(t, "wnd[0]", sap.calls[0].args[0])
	assert.Equal(t, 8, sap.calls[0].args[1])
}

func TestSelectComboTool(t *testing.T) {
	sap := &mockSAP{}
	tool := NewSelectComboTool(sap, testLogger{})

	result, err := tool.Execute(context.Background(), `{"id":"wnd[0]/usr/cmbBSIK-ZLSCH","key":"U"}`)

	require.NoError(t, err)
	assert.Equal(t, "Combo box wnd[0]/usr/cmbBSIK-ZLSCH set to 'U'", result)
	assert.Equal(t, "SelectComboEntry", sap.calls[0].method)
	assert.Equal(t, "U", sap.calls[0].args[1])
}

func TestReadStatusbarTool_ClassifiesSeverity(t *testing.T) {
	sap := &mockSAP{statusbar: entity.StatusbarMessage{Text: "Account is blocked for posting", MessageType: "E"}}
	tool := NewReadStatusbarTool(sap, testLogger{})

	result, err := tool.Execute(context.Background(), `{}`)

	require.NoError(t, err)
	assert.Equal(t, "[error] Account is blocked for posting", result)
}

func TestReadGridTool_UsesDefaults(t *testing.T) {
	sap := &mockSAP{grid: entity.GridData{
		Columns:   []string{"LIFNR", "DMBTR"},
		Rows:      []map[string]string{{"LIFNR": "100042", "DMBTR": "1500.00"}},
		TotalRows: 1,
	}}
	tool := NewReadGridTool(sap, testLogger{})

	result, err := tool.Execute(context.Background(), ``)

	require.NoError(t, err)
	assert.Contains(t, result, "LIFNR")
	assert.Contains(t, result, "100042")
	assert.Equal(t, "ReadGrid", sap.calls[0].method)
	assert.Equal(t, "wnd[0]/usr", sap.calls[0].args[0])
	assert.Equal(t, 100, sap.calls[0].args[1])
}

func TestDismissPopupTool(t *testing.T) {
	t.Run("popup open", func(t *testing.T) {
		sap := &mockSAP{popupOpen: true}
		tool := NewDismissPopupTool(sap, testLogger{})

		result, err := tool.Execute(context.Background(), `{}`)

		require.NoError(t, err)
		assert.Equal(t, "Popup dismissed", result)
		assert.Equal(t, "wnd[1]/tbar[0]/btn[0]", sap.calls[0].args[0])
	})

	t.Run("no popup", func(t *testing.T) {
		sap := &mockSAP{popupOpen: false}
		tool := NewDismissPopupTool(sap, testLogger{})

		result, err := tool.Execute(context.Background(), `{}`)

		require.NoError(t, err)
		assert.Equal(t, "No popup window open", result)
	})
}

func TestSessionInfoTool(t *testing.T) {
	sap := &mockSAP{}
	tool := NewSessionInfoTool(sap, testLogger{})

	result, err := tool.Execute(context.Background(), `{}`)

	require.NoError(t, err)
	assert.Contains(t, result, "system=MWA")
	assert.Contains(t, result, "transaction=SE16H")
}

func TestSAPTools_RejectMalformedArguments(t *testing.T) {
	sap := &mockSAP{}
	log := testLogger{}

	tools := []output.ToolPort{
		NewStartTransactionTool(sap, log),
		NewSetFieldTool(sap, log),
		NewGetFieldTool(sap, log),
		NewPressButtonTool(sap, log),
		NewSendVKeyTool(sap, log),
	}

	for _, tl := range tools {
		_, err := tl.Execute(context.Background(), `{not json`)
		assert.Error(t, err, "tool %s accepted malformed input", tl.Name())
	}
	assert.Empty(t, sap.calls, "no COM call may happen on malformed input")
}
