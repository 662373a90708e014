package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

var (
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

type (
	ServerOption func(*server)
	Middleware   func(http.Handler) http.Handler

	// ErrorEncoder maps a handler error to the status code and the response body.
	ErrorEncoder func(error) (httpCode int, body any)
)

type HandlerRegistry interface {
	Register(handler Handler, mws ...Middleware)
}

type Server interface {
	HandlerRegistry
	http.Handler
	Listener(context.Context) error
	// Intercept wraps the whole router, so the middleware also sees requests that match no route.
	Intercept(mw Middleware)
}

type server struct {
	srv          *http.Server
	router       *mux.Router
	errorEncoder ErrorEncoder

	mutex        sync.RWMutex
	interceptors []Middleware
	handler      http.Handler
}

func NewServer(
	address string,
	opts ...ServerOption,
) Server {
	s := &server{
		router: mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.NotFoundHandler = s.wrapHandler(func(ResponseWriter, *http.Request) error {
		return ErrRouteNotFound
	})
	s.router.MethodNotAllowedHandler = s.wrapHandler(func(ResponseWriter, *http.Request) error {
		return ErrMethodNotAllowed
	})

	s.srv = &http.Server{
		Addr:              address,
		Handler:           s,
		ReadTimeout:       defaultReadTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}
	s.buildHandler()

	return s
}

func (s *server) Listener(ctx context.Context) error {
	shutdown := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		err := s.srv.Shutdown(shutdownCtx)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}

	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

func (s *server) Register(handler Handler, mws ...Middleware) {
	router := s.router
	if len(mws) > 0 {
		router = s.router.NewRoute().Subrouter()
		for _, mw := range mws {
			router.Use(mux.MiddlewareFunc(mw))
		}
	}

	router.
		Name(getRouteName(handler.Method(), handler.Path())).
		Methods(handler.Method()).
		Path(handler.Path()).
		Handler(s.wrapHandler(handler.Handle))
}

func (s *server) Intercept(mw Middleware) {
	s.mutex.Lock()
	s.interceptors = append(s.interceptors, mw)
	s.mutex.Unlock()

	s.buildHandler()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mutex.RLock()
	handler := s.handler
	s.mutex.RUnlock()

	handler.ServeHTTP(w, r)
}

func (s *server) buildHandler() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var handler http.Handler = s.router
	for i := len(s.interceptors) - 1; i >= 0; i-- {
		handler = s.interceptors[i](handler)
	}

	s.handler = withHandlerMetadata(handler)
}

func (s *server) wrapHandler(handler HandlerFunc) http.Handler {
	return httpHandlerWrapper(handler, s.errorEncoder)
}

func WithErrorEncoder(encoder ErrorEncoder) ServerOption {
	return func(s *server) {
		s.errorEncoder = encoder
	}
}

// WithInterceptor is the option form of Server.Intercept.
func WithInterceptor(mw Middleware) ServerOption {
	return func(s *server) {
		s.interceptors = append(s.interceptors, mw)
	}
}
