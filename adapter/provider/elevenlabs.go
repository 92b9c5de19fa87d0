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

// ElevenLabsClient calls the text-to-speech endpoint.
type ElevenLabsClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     port.Logger
}

// NewElevenLabsClient creates a speech-synthesis client.
func NewElevenLabsClient(httpClient *http.Client, baseURL, apiKey string, logger port.Logger) *ElevenLabsClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ElevenLabsClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

type speechRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize sends the raw text to the speech provider and returns the
// binary audio with its declared MIME type.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, voice string) (*entity.SpeechResult, error) {
	body, err := json.Marshal(speechRequest{
		Text:    text,
		ModelID: "eleven_multilingual_v2",
	})
	if err != nil {
		return nil, domainerror.NewInternal("failed to encode speech request", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voice)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, domainerror.NewInternal("failed to build speech request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerror.NewTTSFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		c.logger.Warn("speech provider returned error",
			port.Int("status", resp.StatusCode))
		return nil, domainerror.NewElevenError(resp.StatusCode, string(detail))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerror.NewTTSFailed(err)
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "audio/mpeg"
	}
	return &entity.SpeechResult{Audio: audio, Mime: mime}, nil
}
