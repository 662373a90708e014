//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Metrics=Metrics"
package metric

import "time"

type (
	Labels map[string]string

	Metrics interface {
		With(Labels) Metrics
		WithLabel(name, value string) Metrics
		Increment(key string)
		Duration(key string, duration time.Duration)
	}
)

type stub struct{}

func NewStub() Metrics {
	return stub{}
}

func (s stub) With(Labels) Metrics {
	return s
}

func (s stub) WithLabel(string, string) Metrics {
	return s
}

func (s stub) Increment(string) {}

func (s stub) Duration(string, time.Duration) {}
