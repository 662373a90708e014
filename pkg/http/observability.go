package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/content-admin-service/pkg/observability"
)

type (
	ObservabilityFieldExtractor  func(*http.Request) string
	ObservabilityFieldExtractors map[observability.Field][]ObservabilityFieldExtractor
)

func WithObservability(
	observer observability.Observer,
	fields ObservabilityFieldExtractors,
) ServerOption {
	return WithInterceptor(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for field, extractors := range fields {
				for _, extractor := range extractors {
					if value := extractor(r); value != "" {
						ctx := observer.WithField(r.Context(), field, value)
						r = r.WithContext(ctx)
						break
					}
				}
			}

			handler.ServeHTTP(w, r)
		})
	})
}

// WithResponseHeader echoes an observability field back to the caller.
func WithResponseHeader(observer observability.Observer, field observability.Field, header string) ServerOption {
	return WithInterceptor(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if value := observer.Field(r.Context(), field); value != "" {
				w.Header().Set(header, value)
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func ObservabilityFieldHeaderExtractor(header string) ObservabilityFieldExtractor {
	return func(r *http.Request) string {
		value, _ := ParseRequest(r, Header[string](header), nil)
		return value
	}
}

func ObservabilityFieldRandomUUIDExtractor() ObservabilityFieldExtractor {
	return func(_ *http.Request) string {
		return uuid.New().String()
	}
}
