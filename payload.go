package amplitude

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Payload is the ordered field-name to value rendering of an Event. It is
// the form handed to an HTTP transport and the basis of Event equality.
type Payload struct {
	keys   []string
	values map[string]any
}

var _ Mapper = Payload{}

func newPayload(capacity int) Payload {
	return Payload{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

func (p *Payload) set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// ToMap returns p itself, so a raw Payload can be compared with an Event.
func (p Payload) ToMap() Payload {
	return p
}

// Keys returns the field names in rendering order.
func (p Payload) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Get returns the value stored under key.
func (p Payload) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present, even with a nil value.
func (p Payload) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Len returns the number of keys.
func (p Payload) Len() int {
	return len(p.keys)
}

// Map returns an unordered copy of the payload.
func (p Payload) Map() map[string]any {
	m := make(map[string]any, len(p.values))
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// Equal reports whether both payloads hold the same keys with deeply equal
// values. Key order is ignored.
func (p Payload) Equal(other Payload) bool {
	if len(p.values) != len(other.values) {
		return false
	}
	for k, v := range p.values {
		ov, ok := other.values[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the payload as a JSON object with keys in rendering
// order.
func (p Payload) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, k := range p.keys {
		var err error
		out, err = sjson.SetBytes(out, escapePath(k), p.values[k])
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
	}
	return out, nil
}

// UnmarshalJSON decodes a JSON object, keeping document key order. Numbers
// decode as float64 and nested objects as map[string]any.
func (p *Payload) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("payload: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return errors.New("payload: JSON value is not an object")
	}
	decoded := newPayload(0)
	root.ForEach(func(key, value gjson.Result) bool {
		decoded.set(key.String(), value.Value())
		return true
	})
	*p = decoded
	return nil
}

// escapePath quotes the characters sjson treats as path syntax.
func escapePath(key string) string {
	if !strings.ContainsAny(key, `.*?#\:|@`) {
		return key
	}
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '#', '\\', ':', '|', '@':
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}
