package openrouter

import (
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	"sap-agent/internal/domain/entity"
)

func TestConvertResponseMessage_WithContent(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role:    "assistant",
		Content: "The statusbar shows an error.",
	}

	result := convertResponseMessage(msg)

	assert.Equal(t, entity.RoleAssistant, result.Role)
	assert.Equal(t, "The statusbar shows an error.", result.Content)
	assert.Empty(t, result.ToolCalls)
}

func TestConvertResponseMessage_WithToolCalls(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role: "assistant",
		ToolCalls: []openai.ToolCall{
			{
				ID:   "call_123",
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      "sap_start_transaction",
					Arguments: `{"tcode":"SE16H"}`,
				},
			},
		},
	}

	result := convertResponseMessage(msg)

	assert.Equal(t, entity.RoleAssistant, result.Role)
	assert.Len(t, result.ToolCalls, 1)
	assert.Equal(t, "call_123", result.ToolCalls[0].ID)
	assert.Equal(t, "sap_start_transaction", result.ToolCalls[0].Name)
	assert.Equal(t, `{"tcode":"SE16H"}`, result.ToolCalls[0].Arguments)
}

func TestConvertMessages_ToolObservation(t *testing.T) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: "system prompt"},
		{Role: entity.RoleUser, Content: "run SE16H"},
		{
			Role: entity.RoleAssistant,
			ToolCalls: []entity.ToolCall{
				{ID: "call_1", Name: "sap_start_transaction", Arguments: `{"tcode":"SE16H"}`},
			},
		},
		{
			Role:       entity.RoleTool,
			ToolCallID: "call_1",
			Name:       "sap_start_transaction",
			Content:    "Transaction SE16H started",
		},
	}

	result := convertMessages(messages)

	assert.Len(t, result, 4)
	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "user", result[1].Role)

	assert.Equal(t, "assistant", result[2].Role)
	assert.Len(t, result[2].ToolCalls, 1)
	assert.Equal(t, openai.ToolTypeFunction, result[2].ToolCalls[0].Type)

	assert.Equal(t, "tool", result[3].Role)
	assert.Equal(t, "call_1", result[3].ToolCallID)
	assert.Equal(t, "sap_start_transaction", result[3].Name)
	assert.Equal(t, "Transaction SE16H started", result[3].Content)
}

func TestConvertTools(t *testing.T) {
	tools := []entity.ToolDefinition{
		{
			Name:        "sap_set_field",
			Description: "Sets a field value",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":    map[string]interface{}{"type": "string"},
					"value": map[string]interface{}{"type": "string"},
				},
				"required": []string{"id", "value"},
			},
		},
	}

	result := convertTools(tools)

	assert.Len(t, result, 1)
	assert.Equal(t, openai.ToolTypeFunction, result[0].Type)
	assert.Equal(t, "sap_set_field", result[0].Function.Name)
	assert.NotNil(t, result[0].Function.Parameters)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("key", "openai/gpt-4o")

	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.BaseURL)
	assert.Equal(t, "openai/gpt-4o", cfg.Model)
}
