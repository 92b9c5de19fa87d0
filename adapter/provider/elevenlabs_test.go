package provider

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerror "lingua-proxy/domain/error"
	"lingua-proxy/domain/port"
)

func TestSynthesizeReturnsAudio(t *testing.T) {
	audio := []byte{0xFF, 0xF3, 0x01, 0x02}
	var gotPath, gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	}))
	defer srv.Close()

	c := NewElevenLabsClient(srv.Client(), srv.URL, "el-key", &port.NopLogger{})
	result, err := c.Synthesize(context.Background(), "hello", "voice-1")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if gotPath != "/v1/text-to-speech/voice-1" {
		t.Errorf("path = %s", gotPath)
	}
	if gotKey != "el-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if !bytes.Equal(result.Audio, audio) {
		t.Errorf("audio = %v", result.Audio)
	}
	if result.Mime != "audio/mpeg" {
		t.Errorf("mime = %q", result.Mime)
	}
}

func TestSynthesizeDefaultsMime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h["Content-Type"] = nil // suppress auto-detection
		w.Write([]byte("x"))
	}))
	defer srv.Close()

	c := NewElevenLabsClient(srv.Client(), srv.URL, "el-key", &port.NopLogger{})
	result, err := c.Synthesize(context.Background(), "hello", "v")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if result.Mime != "audio/mpeg" {
		t.Errorf("mime = %q, want audio/mpeg default", result.Mime)
	}
}

func TestSynthesizeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"bad key"}`))
	}))
	defer srv.Close()

	c := NewElevenLabsClient(srv.Client(), srv.URL, "wrong", &port.NopLogger{})
	_, err := c.Synthesize(context.Background(), "hello", "v")

	var pe *domainerror.ProxyError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProxyError, got %v", err)
	}
	if pe.Code != domainerror.CodeElevenError || pe.UpstreamStatus != 401 {
		t.Errorf("error = %+v", pe)
	}
}

func TestSynthesizeTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the dial fails

	c := NewElevenLabsClient(http.DefaultClient, srv.URL, "k", &port.NopLogger{})
	_, err := c.Synthesize(context.Background(), "hello", "v")

	var pe *domainerror.ProxyError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProxyError, got %v", err)
	}
	if pe.Code != domainerror.CodeTTSFailed {
		t.Errorf("code = %s, want tts_failed", pe.Code)
	}
}
