package di

import (
	"fmt"

	"sap-agent/internal/adapter/tool"
	"sap-agent/internal/application/port/input"
	"sap-agent/internal/application/port/output"
	"sap-agent/internal/application/service"
	"sap-agent/internal/infrastructure/llm/openrouter"
	"sap-agent/internal/infrastructure/logger"
	"sap-agent/internal/infrastructure/outlook"
	"sap-agent/internal/infrastructure/prompts"
	"sap-agent/internal/infrastructure/sapgui"
	"sap-agent/internal/infrastructure/userinteraction"
	"sap-agent/internal/usecase/executor"
)

type Container struct {
	SAP          output.SAPPort
	Mail         output.MailPort
	LLM          output.LLMPort
	Logger       output.LoggerPort
	Tools        output.ToolRegistry
	TaskExecutor input.TaskExecutor
}

type Config struct {
	OpenRouterAPIKey string
	OpenRouterModel  string
	LogLevel         string
	RunName          string
	SystemPrompt     string
	ConnectionIndex  int
	SessionIndex     int
	OutlookEnabled   bool
	MaxIterations    int
}

func NewContainer(cfg Config) (*Container, error) {
	logCfg := logger.DefaultConfig(cfg.RunName)
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	log, err := logger.NewAdapter(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	sapCfg := sapgui.DefaultConfig()
	sapCfg.ConnectionIndex = cfg.ConnectionIndex
	sapCfg.SessionIndex = cfg.SessionIndex
	sap, err := sapgui.NewAdapter(sapCfg, log)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to attach to SAP GUI: %w", err)
	}

	var mail output.MailPort
	if cfg.OutlookEnabled {
		mail, err = outlook.NewAdapter(log)
		if err != nil {
			sap.Close()
			log.Close()
			return nil, fmt.Errorf("failed to attach to Outlook: %w", err)
		}
	}

	llmCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	llmCfg.Logger = log
	llm := openrouter.NewAdapter(llmCfg)

	ui := userinteraction.NewConsole()

	tools := service.NewToolRegistry()
	registerSAPTools(tools, sap, log)
	if mail != nil {
		registerOutlookTools(tools, mail, log)
	}
	tools.Register(tool.NewAskQuestionTool(ui, log))

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = prompts.DefaultSystemPrompt
	}

	uc := executor.New(llm, tools, sap, ui, log, executor.Config{
		SystemPrompt:  systemPrompt,
		MaxIterations: cfg.MaxIterations,
	})

	return &Container{
		SAP:          sap,
		Mail:         mail,
		LLM:          llm,
		Logger:       log,
		Tools:        tools,
		TaskExecutor: uc,
	}, nil
}

func (c *Container) Close() {
	if c.Mail != nil {
		c.Mail.Close()
	}
	if c.SAP != nil {
		c.SAP.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerSAPTools(registry *service.ToolRegistryImpl, sap output.SAPPort, log output.LoggerPort) {
	registry.Register(tool.NewStartTransactionTool(sap, log))
	registry.Register(tool.NewSendCommandTool(sap, log))
	registry.Register(tool.NewSetFieldTool(sap, log))
	registry.Register(tool.NewGetFieldTool(sap, log))
	registry.Register(tool.NewPressButtonTool(sap, log))
	registry.Register(tool.NewSendVKeyTool(sap, log))
	registry.Register(tool.NewSetCheckboxTool(sap, log))
	registry.Register(tool.NewSelectRadioTool(sap, log))
	registry.Register(tool.NewSelectTabTool(sap, log))
	registry.Register(tool.NewSelectComboTool(sap, log))
	registry.Register(tool.NewReadStatusbarTool(sap, log))
	registry.Register(tool.NewDescribeScreenTool(sap, log))
	registry.Register(tool.NewReadGridTool(sap, log))
	registry.Register(tool.NewDismissPopupTool(sap, log))
	registry.Register(tool.NewSessionInfoTool(sap, log))
}

func registerOutlookTools(registry *service.ToolRegistryImpl, mail output.MailPort, log output.LoggerPort) {
	registry.Register(tool.NewListInboxTool(mail, log))
	registry.Register(tool.NewReadMessageTool(mail, log))
	registry.Register(tool.NewCreateDraftReplyTool(mail, log))
}
