package service

import (
	"sap-agent/internal/application/port/output"
	"sap-agent/internal/domain/entity"
)

var _ output.ToolRegistry = (*ToolRegistryImpl)(nil)

type ToolRegistryImpl struct {
	tools map[entity.ToolName]output.ToolPort
	order []entity.ToolName
}

func NewToolRegistry() *ToolRegistryImpl {
	return &ToolRegistryImpl{
		tools: make(map[entity.ToolName]output.ToolPort),
	}
}

func (r *ToolRegistryImpl) Register(tool output.ToolPort) {
	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

func (r *ToolRegistryImpl) Get(name entity.ToolName) (output.ToolPort, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func (r *ToolRegistryImpl) All() []output.ToolPort {
	result := make([]output.ToolPort, 0, len(r.tools))
	for _, name := range r.sortedNames() {
		result = append(result, r.tools[name])
	}
	return result
}

func (r *ToolRegistryImpl) Definitions() []entity.ToolDefinition {
	result := make([]entity.ToolDefinition, 0, len(r.tools))
	for _, name := range r.sortedNames() {
		tool := r.tools[name]
		result = append(result, entity.ToolDefinition{
			Name:        tool.Name().String(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return result
}

// Definitions are presented to the model in registration order so the
// request payload stays stable between runs.
func (r *ToolRegistryImpl) sortedNames() []entity.ToolName {
	names := make([]entity.ToolName, len(r.order))
	copy(names, r.order)
	return names
}
