package env

import (
	"fmt"
	"os"
	"strings"

	pkgstrings "github.com/klwxsrx/content-admin-service/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}

	return val
}

func Parse[T pkgstrings.SupportedParsingTypes](key string) (T, error) {
	str, ok := lookup(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("env %s with type %T not found", key, blank)
	}

	return parse[T](key, str)
}

// ParseOptional returns nil without error when the variable is unset or blank.
func ParseOptional[T pkgstrings.SupportedParsingTypes](key string) (*T, error) {
	str, ok := lookup(key)
	if !ok {
		return nil, nil
	}

	v, err := parse[T](key, str)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func ParseWithDefault[T pkgstrings.SupportedParsingTypes](key string, defaultValue T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if v == nil {
		return defaultValue, nil
	}

	return *v, nil
}

func lookup(key string) (string, bool) {
	str, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(str) == "" {
		return "", false
	}

	return str, true
}

func parse[T pkgstrings.SupportedParsingTypes](key, str string) (T, error) {
	v, err := pkgstrings.ParseTypedValue[T](strings.TrimSpace(str))
	if err != nil {
		return v, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return v, nil
}
