package http

import (
	"net/http"

	domainerror "lingua-proxy/domain/error"
	"lingua-proxy/domain/port"
)

// ErrorPresenter logs and writes proxy errors as JSON wire bodies.
type ErrorPresenter struct {
	logger port.Logger
}

// NewErrorPresenter creates an error presenter.
func NewErrorPresenter(logger port.Logger) *ErrorPresenter {
	return &ErrorPresenter{logger: logger}
}

// WriteError logs the error and writes its wire form with the mapped status.
func (ep *ErrorPresenter) WriteError(w http.ResponseWriter, err error) {
	pe := domainerror.AsProxyError(err)
	ep.logError(pe)
	domainerror.WriteJSONError(w, pe)
}

func (ep *ErrorPresenter) logError(err *domainerror.ProxyError) {
	fields := []port.Field{
		port.String("code", string(err.Code)),
		port.String("message", err.Message),
	}
	if err.ReqID != "" {
		fields = append(fields, port.String("req_id", err.ReqID))
	}
	if err.UpstreamStatus != 0 {
		fields = append(fields, port.Int("upstream_status", err.UpstreamStatus))
	}

	status := err.GetHTTPStatus()
	switch {
	case status >= 500:
		ep.logger.Error("request failed", fields...)
		if err.Cause != nil {
			ep.logger.Error("cause", port.Error(err.Cause))
		}
	case domainerror.IsCode(err, domainerror.CodeRateLimited):
		// high-volume by nature once limiting kicks in; keep it off Warn
		ep.logger.Debug("request rate limited", fields...)
	default:
		ep.logger.Warn("request rejected", fields...)
	}
}
