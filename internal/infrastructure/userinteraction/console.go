package userinteraction

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"sap-agent/internal/application/port/output"
)

var _ output.UserInteractionPort = (*Console)(nil)

type Console struct {
	reader *bufio.Reader
}

func NewConsole() *Console {
	return &Console{
		reader: bufio.NewReader(os.Stdin),
	}
}

func (c *Console) AskQuestion(ctx context.Context, question string) (string, error) {
	fmt.Printf("\n[INPUT REQUIRED] %s\n> ", question)

	answer, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func (c *Console) ShowIteration(ctx context.Context, iteration, maxIterations int) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("\n--- step %d/%d ---\n", iteration, maxIterations)
}

func (c *Console) ShowToolStart(ctx context.Context, toolName, arguments string) {
	yellow := color.New(color.FgYellow)
	yellow.Printf("-> %s\n", displayName(toolName))

	if summary := summarizeArguments(toolName, arguments); summary != "" {
		dim := color.New(color.Faint)
		dim.Printf("   %s\n", summary)
	}
}

func (c *Console) ShowToolResult(ctx context.Context, toolName, result string, isError bool) {
	if isError {
		red := color.New(color.FgRed)
		red.Printf("   failed: %s\n", truncate(result, 300))
		return
	}
	green := color.New(color.FgGreen)
	green.Printf("   ok: %s\n", truncate(firstLine(result), 120))
}

func displayName(toolName string) string {
	names := map[string]string{
		"sap_start_transaction":      "Start transaction",
		"sap_send_command":           "Send command",
		"sap_set_field":              "Set field",
		"sap_get_field":              "Read field",
		"sap_press_button":           "Press button",
		"sap_send_vkey":              "Send key",
		"sap_set_checkbox":           "Set checkbox",
		"sap_select_radio":           "Select radio button",
		"sap_select_tab":             "Select tab",
		"sap_select_combo_entry":     "Select dropdown entry",
		"sap_read_statusbar":         "Read status bar",
		"sap_describe_screen":        "Describe screen",
		"sap_read_grid":              "Read grid",
		"sap_dismiss_popup":          "Dismiss popup",
		"sap_session_info":           "Session info",
		"outlook_list_inbox":         "List inbox",
		"outlook_read_message":       "Read message",
		"outlook_create_draft_reply": "Create draft reply",
		"user_ask_question":          "Ask operator",
	}
	if name, ok := names[toolName]; ok {
		return name
	}
	return toolName
}

func summarizeArguments(toolName, arguments string) string {
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return ""
	}

	switch toolName {
	case "sap_start_transaction":
		if tcode, ok := args["tcode"].(string); ok {
			return tcode
		}
	case "sap_send_command":
		if cmd, ok := args["command"].(string); ok {
			return cmd
		}
	case "sap_set_field":
		id, _ := args["id"].(string)
		value, _ := args["value"].(string)
		return fmt.Sprintf("%s = %s", truncate(id, 50), truncate(value, 40))
	case "sap_get_field", "sap_press_button", "sap_select_radio", "sap_select_tab", "sap_select_combo_entry":
		if id, ok := args["id"].(string); ok {
			return truncate(id, 70)
		}
	case "sap_send_vkey":
		if vkey, ok := args["vkey"].(float64); ok {
			return fmt.Sprintf("vkey %d", int(vkey))
		}
	case "outlook_read_message", "outlook_create_draft_reply":
		if id, ok := args["entry_id"].(string); ok {
			return truncate(id, 40)
		}
	case "user_ask_question":
		if q, ok := args["question"].(string); ok {
			return truncate(q, 80)
		}
	}
	return ""
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
