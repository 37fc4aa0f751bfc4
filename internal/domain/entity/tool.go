package entity

type ToolName string

const (
	ToolSAPStartTransaction ToolName = "sap_start_transaction"
	ToolSAPSendCommand      ToolName = "sap_send_command"
	ToolSAPSetField         ToolName = "sap_set_field"
	ToolSAPGetField         ToolName = "sap_get_field"
	ToolSAPPressButton      ToolName = "sap_press_button"
	ToolSAPSendVKey         ToolName = "sap_send_vkey"
	ToolSAPSetCheckbox      ToolName = "sap_set_checkbox"
	ToolSAPSelectRadio      ToolName = "sap_select_radio"
	ToolSAPSelectTab        ToolName = "sap_select_tab"
	ToolSAPSelectCombo      ToolName = "sap_select_combo_entry"
	ToolSAPReadStatusbar    ToolName = "sap_read_statusbar"
	ToolSAPDescribeScreen   ToolName = "sap_describe_screen"
	ToolSAPReadGrid         ToolName = "sap_read_grid"
	ToolSAPDismissPopup     ToolName = "sap_dismiss_popup"
	ToolSAPSessionInfo      ToolName = "sap_session_info"

	ToolOutlookListInbox   ToolName = "outlook_list_inbox"
	ToolOutlookReadMessage ToolName = "outlook_read_message"
	ToolOutlookCreateDraft ToolName = "outlook_create_draft_reply"

	ToolUserAskQuestion ToolName = "user_ask_question"
)

func (t ToolName) String() string {
	return string(t)
}
