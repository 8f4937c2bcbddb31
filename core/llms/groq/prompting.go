package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jinzhu/copier"
	"github.com/koscakluka/voiceops-core/core/llms"
	"github.com/koscakluka/voiceops-core/internal/utils"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	url          = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel = "llama-3.3-70b-versatile"
)

// Client is a chat-completions client. One Prompt call is a single model
// round: requested tool calls are returned to the caller, never executed
// here.
type Client struct {
	HTTPClient *http.Client

	apiKey string
	model  string
}

func NewClient(apiKey string, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		apiKey:     apiKey,
		model:      model,
	}
}

func (c *Client) Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Response, error) {
	ctx, span := tracer.Start(ctx, "prompt llm")
	defer span.End()

	if c.apiKey == "" {
		err := fmt.Errorf("groq api key missing")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	options := llms.PromptOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	messages := toMessages(options.Instructions, options.Turns)
	if prompt != "" {
		messages = append(messages, message{
			Role:    messageRoleUser,
			Content: prompt,
		})
	}

	var toolChoice *string
	var tools []Tool
	if len(options.Tools) > 0 {
		toolChoice = utils.Ptr("auto")
		if options.ForcedToolsCall {
			toolChoice = utils.Ptr("required")
		}
		copier.Copy(&tools, options.Tools)
	}

	reqBody := requestBody{
		Model:      c.model,
		Messages:   messages,
		Tools:      tools,
		ToolChoice: toolChoice,
	}
	span.SetAttributes(attribute.String("request.model", c.model))

	requestBodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error sending request: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		err = fmt.Errorf("non-OK HTTP status %d: %s", resp.StatusCode, string(body))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var responseBody chatResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&responseBody); err != nil {
		return nil, fmt.Errorf("error unmarshalling JSON: %w", err)
	}
	if len(responseBody.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	choice := responseBody.Choices[0].Message
	if options.Stream != nil && choice.Content != "" {
		options.Stream(choice.Content)
	}

	response := llms.Response{Content: choice.Content}
	for _, tCall := range choice.ToolCalls {
		response.ToolCalls = append(response.ToolCalls, llms.ToolCall{
			ID:        tCall.ID,
			Name:      tCall.Function.Name,
			Arguments: tCall.Function.Arguments,
		})
	}
	span.SetAttributes(attribute.Int("response.tool_calls", len(response.ToolCalls)))

	return &response, nil
}

type requestBody struct {
	Model      string    `json:"model"`
	Messages   []message `json:"messages"`
	Tools      []Tool    `json:"tools,omitempty"`
	ToolChoice *string   `json:"tool_choice,omitempty"`
}

type chatResponseBody struct {
	Choices []struct {
		Message struct {
			Role      string     `json:"role"`
			Content   string     `json:"content"`
			ToolCalls []toolCall `json:"tool_calls,omitempty"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
