// Package provider contains the thin upstream clients: one for chat
// completions, one for text-to-speech.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"lingua-proxy/domain/entity"
	domainerror "lingua-proxy/domain/error"
	"lingua-proxy/domain/port"
)

// OpenAIClient calls the chat-completion endpoint for translation and
// analysis.
type OpenAIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     port.Logger
}

// NewOpenAIClient creates a chat-completion client.
func NewOpenAIClient(httpClient *http.Client, baseURL, apiKey, model string, logger port.Logger) *OpenAIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenAIClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		logger:     logger,
	}
}

type chatRequest struct {
	Model          string                 `json:"model"`
	Messages       []entity.PromptMessage `json:"messages"`
	Temperature    float64                `json:"temperature"`
	ResponseFormat *responseFormat        `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the messages and returns the first choice's content.
// jsonMode requests JSON-object output from the provider; the content still
// goes through the output parser because compliance is not guaranteed.
func (c *OpenAIClient) Complete(ctx context.Context, messages []entity.PromptMessage, jsonMode bool) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.2,
	}
	if jsonMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", domainerror.NewInternal("failed to encode chat request", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", domainerror.NewInternal("failed to build chat request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domainerror.NewOpenAIError(0, fmt.Sprintf("transport error: %v", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domainerror.NewOpenAIError(resp.StatusCode, fmt.Sprintf("failed to read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("chat provider returned error",
			port.Int("status", resp.StatusCode))
		return "", domainerror.NewOpenAIError(resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", domainerror.NewOpenAIError(resp.StatusCode, fmt.Sprintf("unparseable response: %v", err))
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}
