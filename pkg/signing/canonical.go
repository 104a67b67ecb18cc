package signing

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"fapimcp/pkg/core"
)

// Pair is one serialized parameter. Null marks a nil value kept by the lenient encoder.
type Pair struct {
	Key   string
	Value string
	Null  bool
}

// String returns the unescaped "key=value" form.
func (p Pair) String() string {
	return p.Key + "=" + p.Value
}

// FormatValue renders a scalar parameter value as it appears on the wire.
// Numbers are written in plain decimal notation, never with an exponent.
func FormatValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float32:
		return formatFloat(float64(val))
	case float64:
		return formatFloat(val)
	case json.Number:
		return formatDecimalString(string(val))
	case *apd.Decimal:
		if val == nil {
			return "", fmt.Errorf("nil decimal")
		}
		return val.Text('f'), nil
	case apd.Decimal:
		return val.Text('f'), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return rv.String(), nil
		}
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("non-finite number %v", f)
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return "", fmt.Errorf("format number: %w", err)
	}
	return d.Text('f'), nil
}

func formatDecimalString(s string) (string, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("format number %q: %w", s, err)
	}
	return d.Text('f'), nil
}

// Pairs converts params into pairs sorted by key. Nil values are dropped
// unless keepNull is set, in which case they become empty Null pairs.
func Pairs(params core.Params, keepNull bool) ([]Pair, error) {
	pairs := make([]Pair, 0, len(params))
	for k, v := range params {
		if v == nil {
			if keepNull {
				pairs = append(pairs, Pair{Key: k, Null: true})
			}
			continue
		}
		s, err := FormatValue(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", k, err)
		}
		pairs = append(pairs, Pair{Key: k, Value: s})
	}
	SortPairs(pairs)
	return pairs, nil
}

// SortPairs orders pairs by key, byte by byte.
func SortPairs(pairs []Pair) {
	slices.SortFunc(pairs, func(a, b Pair) int {
		return strings.Compare(a.Key, b.Key)
	})
}

// Canonical joins sorted pairs into the unescaped string that is signed.
func Canonical(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}
