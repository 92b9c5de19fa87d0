package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingua-proxy/domain/entity"
	domainerror "lingua-proxy/domain/error"
	"lingua-proxy/domain/port"
)

func chatServer(t *testing.T, status int, body string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}
		if capture != nil {
			json.NewDecoder(r.Body).Decode(capture)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func messages() []entity.PromptMessage {
	return []entity.PromptMessage{
		entity.NewPromptMessage("system", "sys"),
		entity.NewPromptMessage("user", "hello"),
	}
}

func TestCompleteReturnsContent(t *testing.T) {
	var captured map[string]any
	srv := chatServer(t, 200, `{"choices":[{"message":{"content":"ciao"}}]}`, &captured)
	defer srv.Close()

	c := NewOpenAIClient(srv.Client(), srv.URL, "test-key", "test-model", &port.NopLogger{})
	content, err := c.Complete(context.Background(), messages(), false)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if content != "ciao" {
		t.Errorf("content = %q, want ciao", content)
	}
	if captured["model"] != "test-model" {
		t.Errorf("model = %v", captured["model"])
	}
	if _, ok := captured["response_format"]; ok {
		t.Error("response_format should be absent without JSON mode")
	}
}

func TestCompleteJSONMode(t *testing.T) {
	var captured map[string]any
	srv := chatServer(t, 200, `{"choices":[{"message":{"content":"{}"}}]}`, &captured)
	defer srv.Close()

	c := NewOpenAIClient(srv.Client(), srv.URL, "test-key", "test-model", &port.NopLogger{})
	if _, err := c.Complete(context.Background(), messages(), true); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	rf, ok := captured["response_format"].(map[string]any)
	if !ok || rf["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object", captured["response_format"])
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := chatServer(t, 429, `{"error":{"message":"quota"}}`, nil)
	defer srv.Close()

	c := NewOpenAIClient(srv.Client(), srv.URL, "test-key", "test-model", &port.NopLogger{})
	_, err := c.Complete(context.Background(), messages(), false)
	if err == nil {
		t.Fatal("expected an error")
	}

	var pe *domainerror.ProxyError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProxyError, got %T", err)
	}
	if pe.Code != domainerror.CodeOpenAIError || pe.UpstreamStatus != 429 {
		t.Errorf("error = %+v", pe)
	}
	if pe.Raw == "" {
		t.Error("upstream body should be preserved in Raw")
	}
}

func TestCompleteNoChoices(t *testing.T) {
	srv := chatServer(t, 200, `{"choices":[]}`, nil)
	defer srv.Close()

	c := NewOpenAIClient(srv.Client(), srv.URL, "test-key", "test-model", &port.NopLogger{})
	content, err := c.Complete(context.Background(), messages(), false)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if content != "" {
		t.Errorf("content = %q, want empty", content)
	}
}
