package config

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/randalmurphal/textkit/pkg/textkit/strlist"
	"github.com/randalmurphal/textkit/pkg/textkit/vars"
)

// ListSeparator joins list values when they are flattened into a fact.
const ListSeparator = ","

// Facts flattens cfg into a fact map. Nested maps become dotted keys, so
//
//	multi:
//	  level:
//	    fact: MULTILEVEL
//
// yields multi.level.fact = "MULTILEVEL". Scalars are formatted as text,
// lists are joined with ListSeparator and nulls become "".
func Facts(cfg Config) *vars.Map {
	facts := vars.New()
	flatten(facts, "", cfg.Raw())
	return facts
}

func flatten(dst *vars.Map, prefix string, m map[string]any) {
	// Sorted so that a literal dotted key always overrides the nested
	// spelling of the same key.
	for _, k := range slices.Sorted(maps.Keys(m)) {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := stringKeyed(m[k]); ok {
			flatten(dst, key, nested)
			continue
		}
		dst.Set(key, scalar(m[k]))
	}
}

// stringKeyed accepts the map shapes produced by the JSON and YAML decoders.
func stringKeyed(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		items := strlist.New()
		for _, item := range val {
			_ = items.Add(scalar(item))
		}
		return items.Join(ListSeparator)
	default:
		return fmt.Sprint(val)
	}
}
