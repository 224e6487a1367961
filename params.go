package v2ex

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Params holds request parameters. For GET requests they are sent as the
// query string. Values may be strings, integers, floats, booleans, slices
// (sent as repeated keys) or maps (sent as a JSON encoded value).
type Params map[string]any

// Values encodes p as url.Values.
func (p Params) Values() (url.Values, error) {
	values := make(url.Values, len(p))

	for key, value := range p {
		if err := addValue(values, key, value); err != nil {
			return nil, err
		}
	}

	return values, nil
}

func addValue(values url.Values, key string, value any) error {
	switch v := value.(type) {
	case nil:
		values.Add(key, "")
	case string:
		values.Add(key, v)
	case int:
		values.Add(key, strconv.Itoa(v))
	case int64:
		values.Add(key, strconv.FormatInt(v, 10))
	case float64:
		values.Add(key, strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		values.Add(key, strconv.FormatBool(v))
	case []string:
		for _, s := range v {
			values.Add(key, s)
		}
	case []int:
		for _, i := range v {
			values.Add(key, strconv.Itoa(i))
		}
	case []any:
		for i, item := range v {
			if _, nested := item.([]any); nested {
				return fmt.Errorf("param %q: nested list at index %d is not supported", key, i)
			}

			if err := addValue(values, key, item); err != nil {
				return err
			}
		}
	case map[string]any, map[string]string:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("param %q: %w", key, err)
		}

		values.Add(key, string(data))
	default:
		values.Add(key, fmt.Sprint(v))
	}

	return nil
}
