package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"

	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
	pkgstrings "github.com/klwxsrx/content-admin-service/pkg/strings"
)

const (
	idParam         = "id"
	queryMaxLen     = 80
	categorySlugLen = 64
)

func pathID(r *http.Request, invalid error) (uuid.UUID, error) {
	id, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID](idParam), nil)
	if err != nil {
		return uuid.Nil, invalid
	}

	return id, nil
}

func jsonBody[T any](r *http.Request) (T, error) {
	return pkghttp.ParseRequest(r, pkghttp.JSONBody[T](), nil)
}

// queryValue reports whether the parameter is present, even when empty.
func queryValue(r *http.Request, name string) (string, bool) {
	values, err := pkghttp.ParseRequest(r, pkghttp.QueryParameters[string](name), nil)
	if err != nil || len(values) == 0 {
		return "", false
	}

	return values[0], true
}

// boolQuery accepts only the literal "true" and "false".
func boolQuery(r *http.Request, name string) (*bool, error) {
	raw, ok := queryValue(r, name)
	if !ok {
		return nil, nil
	}

	switch raw {
	case "true":
		return ptr(true), nil
	case "false":
		return ptr(false), nil
	default:
		return nil, invalidQueryParam(name)
	}
}

// enumQuery ignores an empty parameter and rejects values outside of allowed.
func enumQuery[T ~string](r *http.Request, name string, allowed []T) (*T, error) {
	raw, _ := queryValue(r, name)
	if raw == "" {
		return nil, nil
	}

	value := T(strings.TrimSpace(raw))
	for _, a := range allowed {
		if a == value {
			return &value, nil
		}
	}

	return nil, invalidQueryParam(name)
}

// requiredQuery trims the parameter and checks its length.
func requiredQuery(r *http.Request, name string, maxLen int) (string, error) {
	raw, _ := queryValue(r, name)
	value := strings.TrimSpace(raw)
	if value == "" || pkgstrings.RuneLen(value) > maxLen {
		return "", commonhttp.BadRequest("Missing or invalid query param: "+name, nil)
	}

	return value, nil
}

func invalidQueryParam(name string) error {
	return commonhttp.BadRequest("Invalid query param: "+name, nil)
}

func ptr[T any](v T) *T {
	return &v
}

// wholeNumber accepts any JSON value so a wrongly typed number fails field validation instead of the whole body.
type wholeNumber struct {
	value float64
	valid bool
}

func (n *wholeNumber) UnmarshalJSON(data []byte) error {
	var v any
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	n.value, n.valid = v.(float64)
	return nil
}

// Int rounds fractional values up, values that are not positive numbers or do not fit the column become 0.
func (n wholeNumber) Int() int {
	if !n.valid || n.value <= 0 || n.value > math.MaxInt32 {
		return 0
	}

	return int(math.Ceil(n.value))
}

func (n *wholeNumber) IntPtr() *int {
	if n == nil {
		return nil
	}

	return ptr(n.Int())
}
