package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
)

// flatten writes every leaf under value into props, prefixing keys with prefix.
// Two leaves landing on the same key are an error.
func flatten(props map[string]string, prefix string, value any) error {
	switch v := value.(type) {
	case map[string]any:
		for k, child := range v {
			if err := flatten(props, join(prefix, k), child); err != nil {
				return err
			}
		}
	case map[any]any:
		for k, child := range v {
			if err := flatten(props, join(prefix, fmt.Sprint(k)), child); err != nil {
				return err
			}
		}
	case []any:
		for i, child := range v {
			if err := flatten(props, join(prefix, strconv.Itoa(i+1)), child); err != nil {
				return err
			}
		}
	default:
		if _, dup := props[prefix]; dup {
			return fmt.Errorf("%w: duplicate key %q", domain.ErrInvalidDocument, prefix)
		}
		props[prefix] = scalar(v)
	}
	return nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// scalar renders a leaf value as text.
func scalar(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case time.Time:
		return s.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
