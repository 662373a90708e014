package strings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type SupportedParsingTypes interface {
	bool | int | int64 | uint | float64 | string | time.Duration | uuid.UUID
}

func ParseTypedValue[T SupportedParsingTypes](value string) (T, error) {
	var v any
	var err error
	var blank T
	switch any(blank).(type) {
	case bool:
		v, err = strconv.ParseBool(value)
	case int:
		v, err = strconv.Atoi(value)
	case int64:
		v, err = strconv.ParseInt(value, 10, 64)
	case uint:
		var u uint64
		u, err = strconv.ParseUint(value, 10, 64)
		v = uint(u)
	case float64:
		v, err = strconv.ParseFloat(value, 64)
	case string:
		v = value
	case time.Duration:
		v, err = time.ParseDuration(value)
	case uuid.UUID:
		v, err = uuid.Parse(value)
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}
	if err != nil {
		return blank, fmt.Errorf("convert to type %T: %w", blank, err)
	}

	return v.(T), nil
}

// RuneLen counts characters, not bytes, so length limits hold for non-ASCII input.
func RuneLen(s string) int {
	return len([]rune(s))
}
