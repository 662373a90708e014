package http

import (
	"net/http"
	"time"

	"github.com/klwxsrx/content-admin-service/pkg/log"
)

const requestLogEntry = "request"

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths, HealthPath, MetricsPath)

	return WithInterceptor(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExcludedPath(r, excludedPaths) {
				handler.ServeHTTP(w, r)
				return
			}

			started := time.Now()
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			requestLogger := getRequestResponseFieldsLogger(r, meta.Code, logger).
				With(wrapFieldsWithRequestLogEntry(log.Fields{
					"routeName": routeNameForLogging(r),
					"duration":  time.Since(started).String(),
				}))

			switch {
			case meta.Panic != nil:
				requestLogger.
					With(log.Fields{"panic": log.Fields{
						"message":    meta.Panic.Message,
						"stacktrace": string(meta.Panic.Stacktrace),
					}}).
					Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.
					WithError(meta.Error).
					Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				requestLogger.
					WithError(meta.Error).
					Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func getRequestFieldsLogger(r *http.Request, logger log.Logger) log.Logger {
	return logger.With(wrapFieldsWithRequestLogEntry(log.Fields{
		"method": r.Method,
		"host":   r.URL.Host,
		"path":   r.URL.Path,
	}))
}

func getRequestResponseFieldsLogger(r *http.Request, code int, logger log.Logger) log.Logger {
	return getRequestFieldsLogger(r, logger).
		With(wrapFieldsWithRequestLogEntry(log.Fields{
			"code": code,
		}))
}

func wrapFieldsWithRequestLogEntry(fields log.Fields) log.Fields {
	return log.Fields{requestLogEntry: fields}
}
