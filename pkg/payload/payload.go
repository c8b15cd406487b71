// Package payload turns raw form entries into the typed key/value structure
// the prediction service expects: numeric-looking strings become numbers,
// blanks become explicit nulls, and everything else passes through unchanged.
package payload

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/clinsight/go-predictform/pkg/form"
)

// Payload is an insertion-ordered mapping of field name to value. Values are
// one of nil (left blank), float64, or string. Order is preserved so
// validation can report missing fields in the order they were encountered.
type Payload struct {
	names  []string
	values map[string]any
}

// Serialize converts form entries into a fresh Payload. For each entry: an
// empty raw string becomes nil; a raw string whose trimmed form parses as a
// number becomes that number; anything else is kept as the raw string,
// untrimmed. Every entry name appears exactly once: a duplicate name keeps
// its first position and takes the last value.
func Serialize(entries form.Entries) Payload {
	p := Payload{values: make(map[string]any, len(entries))}
	for _, entry := range entries {
		p.Set(entry.Name, coerce(entry.Raw))
	}
	return p
}

func coerce(raw string) any {
	if raw == "" {
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	return raw
}

// Set records a value, appending the name on first sight.
func (p *Payload) Set(name string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, seen := p.values[name]; !seen {
		p.names = append(p.names, name)
	}
	p.values[name] = value
}

// Value looks a field up by name. The second return reports presence.
func (p Payload) Value(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Names returns the field names in encounter order.
func (p Payload) Names() []string {
	return append([]string(nil), p.names...)
}

// Len reports the number of fields.
func (p Payload) Len() int {
	return len(p.names)
}

// MarshalJSON emits the payload as a JSON object with keys in encounter order
// and blanks serialized as null.
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(p.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
