package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type responseWriter struct {
	impl         http.ResponseWriter
	errorEncoder ErrorEncoder

	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	httpCode := w.httpCode
	if err != nil {
		errCode, errBody := w.encodeError(err)
		if httpCode == 0 {
			httpCode = errCode
		}
		if !w.hasBody && errBody != nil {
			w.SetJSONBody(errBody)
		}
	}
	if httpCode == 0 {
		httpCode = http.StatusOK
	}

	var encoded []byte
	if w.hasBody {
		var encodeErr error
		encoded, encodeErr = json.Marshal(w.body)
		if encodeErr != nil {
			err = errors.Join(err, fmt.Errorf("encode body: %w", encodeErr))
			httpCode = http.StatusInternalServerError
			encoded = nil
		}
	}

	meta := getHandlerMetadata(ctx)
	meta.Error = err

	if encoded != nil {
		w.impl.Header().Set("Content-Type", "application/json")
	}
	w.impl.WriteHeader(httpCode)
	if encoded != nil {
		_, _ = w.impl.Write(encoded)
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Panic = &p

	w.httpCode = http.StatusInternalServerError
	w.body = nil
	w.hasBody = false
	w.Write(ctx, fmt.Errorf("panic: %s", p.Message))
}

func (w *responseWriter) encodeError(err error) (int, any) {
	if w.errorEncoder != nil {
		return w.errorEncoder(err)
	}

	switch {
	case errors.Is(err, ErrParsingError):
		return http.StatusBadRequest, nil
	case errors.Is(err, ErrRouteNotFound):
		return http.StatusNotFound, nil
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, nil
	default:
		return http.StatusInternalServerError, nil
	}
}

func httpHandlerWrapper(handler HandlerFunc, errorEncoder ErrorEncoder) http.Handler {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil {
			getHandlerMetadata(r.Context()).Route = route.GetName()
		}

		respWriter := &responseWriter{
			impl:         w,
			errorEncoder: errorEncoder,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	})
}
