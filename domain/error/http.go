package domainerror

import (
	"encoding/json"
	"net/http"
)

// WireError is the JSON error body: {error, detail?, status?, raw?}.
type WireError struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
	Status int    `json:"status,omitempty"`
	Raw    string `json:"raw,omitempty"`
	ReqID  string `json:"req_id,omitempty"`
}

// ToWire converts a ProxyError to its wire form.
func ToWire(err *ProxyError) WireError {
	return WireError{
		Error:  string(err.Code),
		Detail: err.Message,
		Status: err.UpstreamStatus,
		Raw:    err.Raw,
		ReqID:  err.ReqID,
	}
}

// WriteJSONError writes the error as a JSON response with its mapped status.
func WriteJSONError(w http.ResponseWriter, err *ProxyError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.GetHTTPStatus())
	json.NewEncoder(w).Encode(ToWire(err))
}

// WriteError writes any error as a JSON response, converting foreign errors
// to internal ones.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSONError(w, AsProxyError(err))
}
