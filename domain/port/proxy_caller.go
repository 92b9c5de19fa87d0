package port

import (
	"context"

	"lingua-proxy/domain/entity"
)

// CallResult is the raw outcome of a proxy call that reached the handler.
type CallResult struct {
	Status int
	Body   []byte
}

// Success reports whether the handler answered with a 2xx status.
func (r *CallResult) Success() bool {
	return r.Status >= 200 && r.Status < 300
}

// ProxyCaller performs the dispatcher-side network call to the proxy
// endpoint. A returned error is transport-level only (including context
// cancellation); any HTTP response, success or not, comes back as a
// CallResult.
type ProxyCaller interface {
	Call(ctx context.Context, payload map[string]any) (*CallResult, error)
}

// SettingsResolver resolves the proxy endpoint and optional token. It never
// fails; on any read error it returns the built-in default endpoint. It is
// consulted fresh on every dispatch.
type SettingsResolver interface {
	Resolve() entity.ClientSettings
}
