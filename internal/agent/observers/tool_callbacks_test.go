package observers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/tool"
	"github.com/exclusive-store/server/internal/core"
	logx "github.com/exclusive-store/server/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestToolCallbacks_LogLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logx.Init(logx.LoggerOpts{Environment: core.Production, Level: "debug", Output: &buf})
	t.Cleanup(func() { logx.Init() })

	h := NewToolCallbacks()
	info := &einocb.RunInfo{Name: "explore_products", Type: "InvokableTool", Component: components.ComponentOfTool}
	ctx := context.Background()

	ctx = h.OnStart(ctx, info, &tool.CallbackInput{ArgumentsInJSON: `{"cart_id":"c-1"}`})
	ctx = h.OnEnd(ctx, info, &tool.CallbackOutput{Response: `{"status":"ready"}`})
	h.OnError(ctx, info, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"message":"tool start"`)
	assert.Contains(t, out, `"arguments":"{\"cart_id\":\"c-1\"}"`)
	assert.Contains(t, out, `"response_bytes":18`)
	assert.Contains(t, out, `"message":"tool execution failed"`)
}
