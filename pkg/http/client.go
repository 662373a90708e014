package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/content-admin-service/pkg/log"
	"github.com/klwxsrx/content-admin-service/pkg/metric"
	"github.com/klwxsrx/content-admin-service/pkg/observability"
)

type (
	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		RESTClient: resty.New(),
		opts:       opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithClientTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetTimeout(timeout)
	}
}

func WithRequestObservability(observer observability.Observer, field observability.Field, header string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			value := observer.Field(req.Context(), field)
			if value == "" {
				return nil
			}

			req.SetHeader(header, value)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			responseLogger := getRequestResponseFieldsLogger(resp.Request.RawRequest, resp.StatusCode(), logger).
				With(wrapFieldsWithRequestLogEntry(log.Fields{
					destinationNameLogField: getDestinationNameForLogging(c),
				}))

			if resp.StatusCode() >= http.StatusInternalServerError {
				responseLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				responseLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			errLogger := logger
			if req.RawRequest != nil {
				errLogger = getRequestFieldsLogger(req.RawRequest, errLogger)
			}

			errLogger.
				With(wrapFieldsWithRequestLogEntry(log.Fields{
					destinationNameLogField: getDestinationNameForLogging(c),
				})).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			destinationName := c.DestinationName
			if destinationName == "" {
				destinationName = "none"
			}

			metrics.With(metric.Labels{
				"destination": destinationName,
				"method":      resp.Request.Method,
				"code":        fmt.Sprintf("%d", resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

func getDestinationNameForLogging(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
