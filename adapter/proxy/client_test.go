package proxy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	adapterconfig "lingua-proxy/adapter/config"
	"lingua-proxy/domain/entity"
)

func TestCallPostsPayloadWithToken(t *testing.T) {
	var gotMethod, gotToken, gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotToken = r.Header.Get("x-proxy-token")
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"translation":"ciao"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), adapterconfig.Static(entity.ClientSettings{
		EndpointURL: srv.URL,
		Token:       "secret",
	}))

	result, err := client.Call(context.Background(), map[string]any{"text": "hello", "target": "it"})
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotToken != "secret" {
		t.Errorf("token header = %q, want secret", gotToken)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotBody["text"] != "hello" || gotBody["target"] != "it" {
		t.Errorf("body = %v", gotBody)
	}
	if !result.Success() || string(result.Body) != `{"translation":"ciao"}` {
		t.Errorf("result = %+v", result)
	}
}

func TestCallOmitsTokenHeaderWhenUnset(t *testing.T) {
	var hasToken bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasToken = r.Header["X-Proxy-Token"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), adapterconfig.Static(entity.ClientSettings{EndpointURL: srv.URL}))
	if _, err := client.Call(context.Background(), map[string]any{"text": "x"}); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if hasToken {
		t.Error("token header should be absent when no token is configured")
	}
}

func TestCallReturnsNonSuccessAsResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"openai_error"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), adapterconfig.Static(entity.ClientSettings{EndpointURL: srv.URL}))
	result, err := client.Call(context.Background(), map[string]any{"text": "x"})
	if err != nil {
		t.Fatalf("non-2xx must not be a transport error: %v", err)
	}
	if result.Success() || result.Status != http.StatusBadGateway {
		t.Errorf("result = %+v", result)
	}
}

func TestCallCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), adapterconfig.Static(entity.ClientSettings{EndpointURL: srv.URL}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Call(ctx, map[string]any{"text": "x"}); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
