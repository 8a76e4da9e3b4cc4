package amplitude

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var (
	timeType      = reflect.TypeOf(time.Time{})
	sessionIDType = reflect.TypeOf(SessionID{})
)

// DecodeAttributes converts a loosely-typed attribute bag, keyed by the
// snake_case field names (user_id, event_type, price, app_version, ...), into
// Attributes. Keys match exactly and unknown keys are ignored.
//
// time accepts a time.Time, an RFC 3339 string or epoch seconds, which may
// be fractional (1451606400.001 renders as 1451606400001).
// session_id accepts integral epoch milliseconds (kept verbatim), a time.Time
// or an RFC 3339 string. Scalars are converted weakly, so "9.99" is a valid
// price, but quantity and session_id reject fractional numbers.
//
// An empty string counts as absent, so product_id: "" without a price
// decodes and builds without a validation error.
func DecodeAttributes(bag map[string]any) (Attributes, error) {
	attrs, _, err := decodeAttributes(bag, false)
	return attrs, err
}

// DecodeAttributesStrict is DecodeAttributes but fails on unknown keys.
func DecodeAttributesStrict(bag map[string]any) (Attributes, error) {
	attrs, _, err := decodeAttributes(bag, true)
	return attrs, err
}

func decodeAttributes(bag map[string]any, strict bool) (Attributes, []string, error) {
	var (
		attrs Attributes
		md    mapstructure.Metadata
	)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(timeHook, sessionIDHook, integerHook),
		WeaklyTypedInput: true,
		ErrorUnused:      strict,
		MatchName:        func(mapKey, fieldName string) bool { return mapKey == fieldName },
		Metadata:         &md,
		Result:           &attrs,
	})
	if err != nil {
		return Attributes{}, nil, fmt.Errorf("decode attributes: %w", err)
	}
	if err := decoder.Decode(bag); err != nil {
		return Attributes{}, nil, fmt.Errorf("decode attributes: %w", err)
	}
	return attrs, md.Unused, nil
}

func timeHook(from, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}
	switch v := data.(type) {
	case time.Time:
		return v, nil
	case string:
		if v == "" {
			return time.Time{}, nil
		}
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("time %q: %w", v, err)
		}
		return t, nil
	case float32:
		return secondsToTime(float64(v))
	case float64:
		return secondsToTime(v)
	}
	sec, ok, err := toInt64(data)
	if err != nil {
		return nil, fmt.Errorf("time: %w", err)
	}
	if !ok {
		return data, nil
	}
	if sec > math.MaxInt64/1000 || sec < math.MinInt64/1000 {
		return nil, fmt.Errorf("time: %d seconds out of range", sec)
	}
	return time.Unix(sec, 0), nil
}

// secondsToTime converts fractional epoch seconds, keeping millisecond
// precision truncated toward zero.
func secondsToTime(sec float64) (time.Time, error) {
	ms := sec * 1000
	if math.IsNaN(ms) || ms < math.MinInt64 || ms >= math.MaxInt64 {
		return time.Time{}, fmt.Errorf("time: %v seconds out of range", sec)
	}
	return time.UnixMilli(int64(ms)), nil
}

func sessionIDHook(from, to reflect.Type, data any) (any, error) {
	if to != sessionIDType {
		return data, nil
	}
	switch v := data.(type) {
	case SessionID:
		return v, nil
	case time.Time:
		return SessionFromTime(v), nil
	case string:
		if v == "" {
			return SessionID{}, nil
		}
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			return SessionFromMillis(ms), nil
		}
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("session_id %q: not epoch milliseconds or RFC 3339", v)
		}
		return SessionFromTime(t), nil
	}
	ms, ok, err := toInt64(data)
	if err != nil {
		return nil, fmt.Errorf("session_id: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("session_id: unsupported type %T", data)
	}
	return SessionFromMillis(ms), nil
}

// integerHook stops weak typing from truncating fractional or out-of-range
// numbers into integer fields such as quantity.
func integerHook(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	n, ok, err := toInt64(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return data, nil
	}
	if reflect.Zero(to).OverflowInt(n) {
		return nil, fmt.Errorf("%d overflows %s", n, to)
	}
	return n, nil
}

// toInt64 reports ok=false for non-numeric data and an error for numbers
// that are not integral or do not fit in an int64.
func toInt64(data any) (int64, bool, error) {
	switch v := data.(type) {
	case int:
		return int64(v), true, nil
	case int8:
		return int64(v), true, nil
	case int16:
		return int64(v), true, nil
	case int32:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case uint:
		return uintToInt64(uint64(v))
	case uint8:
		return int64(v), true, nil
	case uint16:
		return int64(v), true, nil
	case uint32:
		return int64(v), true, nil
	case uint64:
		return uintToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	default:
		return 0, false, nil
	}
}

func uintToInt64(v uint64) (int64, bool, error) {
	if v > math.MaxInt64 {
		return 0, true, fmt.Errorf("%d overflows int64", v)
	}
	return int64(v), true, nil
}

func floatToInt64(v float64) (int64, bool, error) {
	if v != math.Trunc(v) {
		return 0, true, fmt.Errorf("%v is not an integer", v)
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, true, fmt.Errorf("%v overflows int64", v)
	}
	return int64(v), true, nil
}
