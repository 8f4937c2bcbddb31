package llms

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Tool is a function the model may request. Parameters follow the
// chat-completions function schema; Execute, when set, runs the tool with the
// raw JSON arguments from a tool call.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`

	Execute func(ctx context.Context, arguments string) (string, error) `json:"-"`
}

type ToolFunction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"`
}

type Parameters struct {
	Type       string                   `json:"type"`
	Properties map[string]ParameterBase `json:"properties,omitempty"`
	Required   []string                 `json:"required,omitempty"`
}

type ParameterBase struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// NewTool builds a tool from an explicit parameter map. Arguments are
// unmarshalled into T before being handed to execute.
func NewTool[T any](name string, description string, parameters map[string]ParameterBase, required []string, execute func(ctx context.Context, parameters T) (string, error)) Tool {
	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        name,
			Description: description,
			Parameters: Parameters{
				Type:       "object",
				Properties: parameters,
				Required:   required,
			},
		},
		Execute: wrapExecute(name, execute),
	}
}

// NewReflectedTool builds a tool whose parameter schema is reflected from T's
// jsonschema struct tags.
func NewReflectedTool[T any](name string, description string, execute func(ctx context.Context, parameters T) (string, error)) Tool {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.ReflectFromType(reflect.TypeFor[T]())
	schema.Version = ""

	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        name,
			Description: description,
			Parameters:  schema,
		},
		Execute: wrapExecute(name, execute),
	}
}

func wrapExecute[T any](name string, execute func(ctx context.Context, parameters T) (string, error)) func(ctx context.Context, arguments string) (string, error) {
	return func(ctx context.Context, arguments string) (string, error) {
		var parsed T
		if arguments != "" {
			if err := json.Unmarshal([]byte(arguments), &parsed); err != nil {
				return "", fmt.Errorf("failed to parse arguments for tool %q: %w", name, err)
			}
		}
		return execute(ctx, parsed)
	}
}
