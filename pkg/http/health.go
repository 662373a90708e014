package http

import (
	"net/http"
)

const HealthPath = "/healthz"

type healthHandler struct {
	check func(*http.Request) error
}

func (h healthHandler) Method() string {
	return http.MethodGet
}

func (h healthHandler) Path() string {
	return HealthPath
}

func (h healthHandler) Handle(w ResponseWriter, r *http.Request) error {
	if h.check != nil {
		if err := h.check(r); err != nil {
			w.SetStatusCode(http.StatusServiceUnavailable)
			w.SetJSONBody(healthOut{Status: "UNAVAILABLE"})
			return err
		}
	}

	w.SetJSONBody(healthOut{Status: "OK"})
	return nil
}

type healthOut struct {
	Status string `json:"status"`
}

// WithHealthCheck registers the liveness route; check may be nil.
func WithHealthCheck(check func(*http.Request) error) ServerOption {
	return func(s *server) {
		handler := healthHandler{check: check}
		s.router.
			Name(getRouteName(handler.Method(), handler.Path())).
			Methods(handler.Method()).
			Path(handler.Path()).
			Handler(httpHandlerWrapper(handler.Handle, nil))
	}
}
