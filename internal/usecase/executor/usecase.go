package executor

import (
	"context"
	"fmt"

	"sap-agent/internal/application/port/input"
	"sap-agent/internal/application/port/output"
	"sap-agent/internal/domain/entity"
)

var _ input.TaskExecutor = (*UseCase)(nil)

const (
	defaultMaxIterations     = 50
	defaultMaxObservationLen = 20000
)

type Config struct {
	SystemPrompt      string
	MaxIterations     int
	MaxObservationLen int
	Temperature       float32
}

// UseCase runs the reasoning/execution loop: ask the model what to do,
// run the tools it picked, feed the observations back, repeat until the
// model answers without tool calls.
type UseCase struct {
	llm    output.LLMPort
	tools  output.ToolRegistry
	screen output.ScreenObserver
	ui     output.UserInteractionPort
	logger output.LoggerPort
	cfg    Config
}

func New(
	llm output.LLMPort,
	tools output.ToolRegistry,
	screen output.ScreenObserver,
	ui output.UserInteractionPort,
	logger output.LoggerPort,
	cfg Config,
) *UseCase {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	if cfg.MaxObservationLen <= 0 {
		cfg.MaxObservationLen = defaultMaxObservationLen
	}
	return &UseCase{
		llm:    llm,
		tools:  tools,
		screen: screen,
		ui:     ui,
		logger: logger,
		cfg:    cfg,
	}
}

func (uc *UseCase) Execute(ctx context.Context, task string) (*input.ExecuteResult, error) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: uc.cfg.SystemPrompt},
		{Role: entity.RoleUser, Content: task},
	}

	toolDefs := uc.tools.Definitions()

	for iteration := 1; iteration <= uc.cfg.MaxIterations; iteration++ {
		uc.logger.Debug("Starting iteration", "iteration", iteration)
		if uc.ui != nil {
			uc.ui.ShowIteration(ctx, iteration, uc.cfg.MaxIterations)
		}

		resp, err := uc.llm.Chat(ctx, output.ChatRequest{
			Messages:    uc.withScreenSnapshot(ctx, messages),
			Tools:       toolDefs,
			Temperature: uc.cfg.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			return &input.ExecuteResult{
				FinalAnswer: resp.Message.Content,
				Iterations:  iteration,
			}, nil
		}

		for _, tc := range resp.Message.ToolCalls {
			observation := uc.executeTool(ctx, tc)

			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    observation,
			})
		}
	}

	return nil, fmt.Errorf("max iterations (%d) exceeded", uc.cfg.MaxIterations)
}

// withScreenSnapshot appends an ephemeral system message carrying the
// current screen state. The snapshot is rebuilt for every reasoning phase
// and never stored in the conversation, so the model always sees the GUI
// as it is right now.
func (uc *UseCase) withScreenSnapshot(ctx context.Context, messages []entity.Message) []entity.Message {
	if uc.screen == nil {
		return messages
	}

	snapshot, err := uc.screen.DescribeScreen(ctx)
	if err != nil {
		uc.logger.Warn("Screen snapshot failed", "error", err)
		snapshot = "Screen state unavailable: " + err.Error()
	}

	enhanced := make([]entity.Message, len(messages), len(messages)+1)
	copy(enhanced, messages)
	return append(enhanced, entity.Message{
		Role:    entity.RoleSystem,
		Content: "Current SAP GUI state:\n" + snapshot,
	})
}

func (uc *UseCase) executeTool(ctx context.Context, tc entity.ToolCall) string {
	tool, ok := uc.tools.Get(entity.ToolName(tc.Name))
	if !ok {
		uc.logger.Warn("Unknown tool called", "name", tc.Name)
		return fmt.Sprintf("Error: unknown tool '%s'", tc.Name)
	}

	uc.logger.Info("Executing tool", "name", tc.Name, "args", tc.Arguments)
	if uc.ui != nil {
		uc.ui.ShowToolStart(ctx, tc.Name, tc.Arguments)
	}

	result, err := tool.Execute(ctx, tc.Arguments)
	if err != nil {
		uc.logger.Error("Tool execution failed", "name", tc.Name, "error", err)
		if uc.ui != nil {
			uc.ui.ShowToolResult(ctx, tc.Name, err.Error(), true)
		}
		return "Error: " + err.Error()
	}

	if len(result) > uc.cfg.MaxObservationLen {
		result = result[:uc.cfg.MaxObservationLen] + "\n... (truncated)"
	}

	uc.logger.Debug("Tool completed", "name", tc.Name, "resultLen", len(result))
	if uc.ui != nil {
		uc.ui.ShowToolResult(ctx, tc.Name, result, false)
	}
	return result
}
