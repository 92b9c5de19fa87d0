package middleware

import (
	"net/http"
	"runtime/debug"

	domainerror "lingua-proxy/domain/error"
	"lingua-proxy/domain/port"
)

// Recovery converts handler panics into 500 responses instead of dropping
// the connection.
func Recovery(logger port.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := string(debug.Stack())
					if len(stack) > 500 {
						stack = stack[:500] + "..."
					}
					logger.Error("panic recovered",
						port.String("panic", toString(rec)),
						port.String("stack", stack))
					domainerror.WriteJSONError(w, domainerror.NewInternal("internal server error", nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return "unknown panic"
}
