package http

import (
	"net"
	"net/http"
	"time"
)

// ClientConfig tunes the shared upstream HTTP client.
type ClientConfig struct {
	ConnectTimeout        time.Duration
	ResponseHeaderTimeout time.Duration
	MaxConnsPerHost       int
	MaxIdleConns          int
	KeepAlive             time.Duration
	IdleConnTimeout       time.Duration
}

// NewHTTPClient builds an http.Client from the config. No total timeout is
// set: callers bound each request with a context deadline instead.
func NewHTTPClient(cfg ClientConfig) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   cfg.ConnectTimeout,
			KeepAlive: cfg.KeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		MaxIdleConns:          cfg.MaxIdleConns,
	}

	return &http.Client{Transport: transport}
}

// DefaultClientConfig returns the standard upstream client tuning.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		ConnectTimeout:        10 * time.Second,
		ResponseHeaderTimeout: 60 * time.Second,
		MaxConnsPerHost:       20,
		MaxIdleConns:          20,
		KeepAlive:             5 * time.Minute,
		IdleConnTimeout:       10 * time.Minute,
	}
}
