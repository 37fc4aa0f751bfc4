package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"sap-agent/internal/application/port/output"
	"sap-agent/internal/domain/entity"
)

type AskQuestionTool struct {
	ui     output.UserInteractionPort
	logger output.LoggerPort
}

func NewAskQuestionTool(ui output.UserInteractionPort, logger output.LoggerPort) *AskQuestionTool {
	return &AskQuestionTool{ui: ui, logger: logger}
}

func (t *AskQuestionTool) Name() entity.ToolName { return entity.ToolUserAskQuestion }
func (t *AskQuestionTool) Description() string {
	return "Pauses and asks the operator a question. Use it when a decision needs human judgement, e.g. before a posting step or when credentials or business context are missing."
}
func (t *AskQuestionTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"question": map[string]interface{}{
				"type":        "string",
				"description": "The question to present. Be explicit about what is needed.",
			},
		},
		"required": []string{"question"},
	}
}

func (t *AskQuestionTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}
	if input.Question == "" {
		return "", fmt.Errorf("question is required")
	}

	answer, err := t.ui.AskQuestion(ctx, input.Question)
	if err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	t.logger.Info("Operator answered", "question", input.Question, "answer", answer)
	return answer, nil
}
