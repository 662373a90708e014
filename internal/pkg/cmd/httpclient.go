package cmd

import (
	"fmt"

	"github.com/klwxsrx/content-admin-service/pkg/env"
	"github.com/klwxsrx/content-admin-service/pkg/http"
	"github.com/klwxsrx/content-admin-service/pkg/strings"
)

type Destination string

const DestinationHealthcheck Destination = "healthcheck"

type HTTPClientFactory struct {
	baseOpts []http.ClientOption
}

func NewHTTPClientFactory(
	opts ...http.ClientOption,
) HTTPClientFactory {
	return HTTPClientFactory{
		baseOpts: opts,
	}
}

// MustInitClient reads the base url from <DESTINATION>_URL, falling back to defaultURL.
func (f HTTPClientFactory) MustInitClient(dest Destination, defaultURL string, extraOpts ...http.ClientOption) http.Client {
	urlEnv := DestinationURLEnv(dest)
	baseURL := env.Must(env.ParseWithDefault(urlEnv, defaultURL))
	if baseURL == "" {
		panic(fmt.Errorf("%s is not set", urlEnv))
	}

	opts := make([]http.ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, f.baseOpts...)
	opts = append(opts, http.WithClientDestination(string(dest), baseURL))
	opts = append(opts, extraOpts...)

	return http.NewClient(opts...)
}

func DestinationURLEnv(dest Destination) string {
	return fmt.Sprintf("%s_URL", strings.ToScreamingSnakeCase(string(dest)))
}
