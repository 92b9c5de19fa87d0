// Package config resolves the dispatcher-side proxy settings.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"lingua-proxy/domain/entity"
	"lingua-proxy/domain/port"
)

// DefaultEndpoint is the built-in proxy endpoint used when no settings file
// is readable.
const DefaultEndpoint = "http://127.0.0.1:8787/"

// FileResolver reads the endpoint URL and optional token from a yaml
// settings file. Resolve never fails: any read or parse error falls back to
// the built-in default endpoint with no token. The file is re-read on every
// call; settings are never cached.
type FileResolver struct {
	path   string
	logger port.Logger
}

// NewFileResolver creates a resolver over the given settings file.
func NewFileResolver(path string, logger port.Logger) *FileResolver {
	return &FileResolver{path: path, logger: logger}
}

// Resolve returns the current settings.
func (r *FileResolver) Resolve() entity.ClientSettings {
	fallback := entity.ClientSettings{EndpointURL: DefaultEndpoint}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return fallback
	}

	var settings entity.ClientSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		r.logger.Warn("settings file is malformed, using default endpoint", port.Error(err))
		return fallback
	}
	if settings.EndpointURL == "" {
		settings.EndpointURL = DefaultEndpoint
	}
	return settings
}

// Static resolves to fixed settings. Used when the host application supplies
// the endpoint directly.
type Static entity.ClientSettings

// Resolve returns the fixed settings.
func (s Static) Resolve() entity.ClientSettings {
	settings := entity.ClientSettings(s)
	if settings.EndpointURL == "" {
		settings.EndpointURL = DefaultEndpoint
	}
	return settings
}
