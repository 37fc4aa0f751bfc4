package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"sap-agent/internal/application/port/output"
	"sap-agent/internal/domain/entity"
)

type ListInboxTool struct {
	mail   output.MailPort
	logger output.LoggerPort
}

func NewListInboxTool(mail output.MailPort, logger output.LoggerPort) *ListInboxTool {
	return &ListInboxTool{mail: mail, logger: logger}
}

func (t *ListInboxTool) Name() entity.ToolName { return entity.ToolOutlookListInbox }
func (t *ListInboxTool) Description() string {
	return "Lists the most recent Outlook inbox messages: sender, subject, received time and the entry id used to read a message."
}
func (t *ListInboxTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Number of messages to list, defaults to 10",
			},
		},
	}
}

func (t *ListInboxTool) Execute(ctx context.Context, args string) (string, error) {
	input := struct {
		Limit int `json:"limit"`
	}{Limit: 10}
	if args != "" {
		if err := json.Unmarshal([]byte(args), &input); err != nil {
			return "", err
		}
	}
	if input.Limit <= 0 {
		input.Limit = 10
	}

	summaries, err := t.mail.ListInbox(ctx, input.Limit)
	if err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		return "Inbox is empty", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d inbox messages (* = unread):\n", len(summaries))
	for _, s := range summaries {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String(), nil
}

type ReadMessageTool struct {
	mail   output.MailPort
	logger output.LoggerPort
}

func NewReadMessageTool(mail output.MailPort, logger output.LoggerPort) *ReadMessageTool {
	return &ReadMessageTool{mail: mail, logger: logger}
}

func (t *ReadMessageTool) Name() entity.ToolName { return entity.ToolOutlookReadMessage }
func (t *ReadMessageTool) Description() string {
	return "Reads the full body of one inbox message by its entry id."
}
func (t *ReadMessageTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"entry_id": map[string]interface{}{
				"type":        "string",
				"description": "Entry id from outlook_list_inbox",
			},
		},
		"required": []string{"entry_id"},
	}
}

func (t *ReadMessageTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		EntryID string `json:"entry_id"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}

	msg, err := t.mail.ReadMessage(ctx, input.EntryID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", msg.Sender, msg.SenderMail)
	fmt.Fprintf(&b, "Subject: %s\n", msg.Subject)
	fmt.Fprintf(&b, "Received: %s\n\n", msg.ReceivedAt.Format("2006-01-02 15:04"))
	b.WriteString(msg.Body)
	return b.String(), nil
}

type CreateDraftReplyTool struct {
	mail   output.MailPort
	logger output.LoggerPort
}

func NewCreateDraftReplyTool(mail output.MailPort, logger output.LoggerPort) *CreateDraftReplyTool {
	return &CreateDraftReplyTool{mail: mail, logger: logger}
}

func (t *CreateDraftReplyTool) Name() entity.ToolName { return entity.ToolOutlookCreateDraft }
func (t *CreateDraftReplyTool) Description() string {
	return "Creates a reply draft to an inbox message and saves it to the Drafts folder. The draft is never sent; a human reviews and sends it manually."
}
func (t *CreateDraftReplyTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"entry_id": map[string]interface{}{
				"type":        "string",
				"description": "Entry id of the message to reply to",
			},
			"body": map[string]interface{}{
				"type":        "string",
				"description": "Reply text placed above the quoted original",
			},
		},
		"required": []string{"entry_id", "body"},
	}
}

func (t *CreateDraftReplyTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		EntryID string `json:"entry_id"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}

	draft, err := t.mail.CreateDraftReply(ctx, input.EntryID, input.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Draft reply '%s' to %s saved to Drafts (not sent)", draft.Subject, draft.To), nil
}
