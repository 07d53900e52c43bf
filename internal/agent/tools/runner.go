package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/exclusive-store/server/internal/agent/observers"
	logx "github.com/exclusive-store/server/pkg/logger"
	"github.com/google/uuid"
)

// Runner executes single tool calls through an Eino tools node so the same
// argument sanitising and callbacks apply as inside an agent graph.
type Runner struct {
	runnable compose.Runnable[*schema.Message, []*schema.Message]
	names    map[string]bool
}

// NewRunner compiles a one-node chain around the query tools.
func NewRunner(ctx context.Context, deps Dependencies) (*Runner, error) {
	businessTools := GetQueryTools(deps)
	infos, err := GetToolInfos(ctx, businessTools)
	if err != nil {
		logx.Error().Err(err).Msg("Failed to get tool infos")
		return nil, fmt.Errorf("failed to get tool infos: %w", err)
	}
	names := make(map[string]bool, len(infos))
	for _, info := range infos {
		names[info.Name] = true
	}

	toolsNode, err := compose.NewToolNode(ctx, &compose.ToolsNodeConfig{
		Tools:               businessTools,
		ExecuteSequentially: true,
		UnknownToolsHandler: func(ctx context.Context, name, input string) (string, error) {
			logx.Warn().
				Str("tool_name", name).
				Str("arguments", input).
				Msg("Unknown or invalid tool call; returning fallback result")
			return fmt.Sprintf("{\"error\":\"unknown_tool\",\"name\":%q,\"note\":\"ignored\"}", name), nil
		},
		ToolArgumentsHandler: func(ctx context.Context, name, arguments string) (string, error) {
			return sanitizeArguments(name, arguments), nil
		},
	})
	if err != nil {
		logx.Error().Err(err).Msg("Failed to create tools node")
		return nil, fmt.Errorf("failed to create tools node: %w", err)
	}

	runnable, err := compose.NewChain[*schema.Message, []*schema.Message]().
		AppendToolsNode(toolsNode).
		Compile(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling tools chain")
		return nil, fmt.Errorf("error compiling tools chain: %w", err)
	}

	return &Runner{runnable: runnable, names: names}, nil
}

// Has reports whether a tool with this name is registered.
func (r *Runner) Has(name string) bool {
	return r.names[name]
}

// Run invokes one tool with JSON arguments and returns its JSON result.
func (r *Runner) Run(ctx context.Context, name, arguments string) (string, error) {
	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}
	call := &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{{
			ID:   "call_" + uuid.NewString(),
			Type: "function",
			Function: schema.FunctionCall{
				Name:      name,
				Arguments: arguments,
			},
		}},
	}

	out, err := r.runnable.Invoke(ctx, call, compose.WithCallbacks(observers.NewToolCallbacks()))
	if err != nil {
		return "", err
	}
	if len(out) == 0 || out[0] == nil {
		return "", fmt.Errorf("tool %s returned no message", name)
	}
	return out[0].Content, nil
}

// sanitizeArguments trims ids and coerces numeric fields. Arguments that are
// not a JSON object are passed through untouched.
func sanitizeArguments(name, arguments string) string {
	var m map[string]any
	if err := json.Unmarshal([]byte(arguments), &m); err != nil {
		return arguments
	}

	switch name {
	case ToolExploreProducts:
		trimString(m, "cart_id")
		for _, key := range []string{"width", "page"} {
			if v, ok := m[key]; ok {
				switch vv := v.(type) {
				case float64:
					// JSON numbers decode as float64
					m[key] = max(0, int(vv))
				case string:
					if n, err := strconv.Atoi(strings.TrimSpace(vv)); err == nil {
						m[key] = max(0, n)
					} else {
						delete(m, key)
					}
				default:
					delete(m, key)
				}
			}
		}
	case ToolGetProductDetails:
		trimString(m, "product_id")
	}

	b, err := json.Marshal(m)
	if err != nil {
		return arguments
	}
	return string(b)
}

func trimString(m map[string]any, key string) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch vv := v.(type) {
	case string:
		m[key] = strings.TrimSpace(vv)
	default:
		// coerce non-string to string
		m[key] = strings.TrimSpace(fmt.Sprint(v))
	}
}
