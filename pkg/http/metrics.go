package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/klwxsrx/content-admin-service/pkg/metric"
)

const MetricsPath = "/metrics"

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithInterceptor(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExcludedPath(r, []string{HealthPath, MetricsPath}) {
				handler.ServeHTTP(w, r)
				return
			}

			started := time.Now()
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			route := meta.Route
			if route == "" {
				route = "unmatched"
			}

			if meta.Panic != nil {
				metrics.With(metric.Labels{
					"method": r.Method,
					"route":  route,
				}).Increment("http_api_request_panics_total")
			}

			metrics.With(metric.Labels{
				"method": r.Method,
				"route":  route,
				"code":   fmt.Sprintf("%d", meta.Code),
			}).Duration("http_api_request_duration_seconds", time.Since(started))
		})
	})
}

// WithMetricsEndpoint exposes the scrape handler on MetricsPath.
func WithMetricsEndpoint(handler http.Handler) ServerOption {
	return func(s *server) {
		s.router.
			Name(getRouteName(http.MethodGet, MetricsPath)).
			Methods(http.MethodGet).
			Path(MetricsPath).
			Handler(handler)
	}
}
