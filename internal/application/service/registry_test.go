package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sap-agent/internal/domain/entity"
)

type stubTool struct {
	name entity.ToolName
}

func (t *stubTool) Name() entity.ToolName              { return t.name }
func (t *stubTool) Description() string                { return "stub " + t.name.String() }
func (t *stubTool) Parameters() map[string]interface{} { return map[string]interface{}{"type": "object"} }
func (t *stubTool) Execute(ctx context.Context, arguments string) (string, error) {
	return "", nil
}

func TestToolRegistry_RegisterAndGet(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolSAPStartTransaction})

	tool, ok := r.Get(entity.ToolSAPStartTransaction)
	require.True(t, ok)
	assert.Equal(t, entity.ToolSAPStartTransaction, tool.Name())

	_, ok = r.Get(entity.ToolName("missing"))
	assert.False(t, ok)
}

func TestToolRegistry_DefinitionsKeepRegistrationOrder(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolSAPReadStatusbar})
	r.Register(&stubTool{name: entity.ToolSAPDescribeScreen})
	r.Register(&stubTool{name: entity.ToolSAPStartTransaction})

	defs := r.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, entity.ToolSAPReadStatusbar.String(), defs[0].Name)
	assert.Equal(t, entity.ToolSAPDescribeScreen.String(), defs[1].Name)
	assert.Equal(t, entity.ToolSAPStartTransaction.String(), defs[2].Name)
}

func TestToolRegistry_RegisterReplacesWithoutDuplicating(t *testing.T) {
	r := NewToolRegistry()
	first := &stubTool{name: entity.ToolSAPSetField}
	second := &stubTool{name: entity.ToolSAPSetField}
	r.Register(first)
	r.Register(second)

	assert.Len(t, r.All(), 1)
	tool, ok := r.Get(entity.ToolSAPSetField)
	require.True(t, ok)
	assert.Same(t, second, tool)
}
