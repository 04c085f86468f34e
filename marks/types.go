package marks

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

// Record is one element of the input array
type Record struct {
	index  int
	fields *orderedmap.OrderedMap
	raw    map[string]json.RawMessage
	err    error
}

// Index is the position of the record in the input array
func (r Record) Index() int { return r.index }

// Err reports why the element could not be read as an object, or nil
func (r Record) Err() error { return r.err }

// Has reports whether key is present, even with a null or empty value
func (r Record) Has(key string) bool {
	_, ok := r.Value(key)
	return ok
}

// Value returns the decoded value for key.
// Strings, json.Number, bool, nil, []interface{} and orderedmap.OrderedMap are possible.
// Numbers keep their literal text from the input.
func (r Record) Value(key string) (interface{}, bool) {
	if r.fields == nil {
		return nil, false
	}
	v, ok := r.fields.Get(key)
	if _, isNum := v.(float64); isNum {
		if lit, found := r.raw[key]; found {
			return json.Number(bytes.TrimSpace(lit)), true
		}
	}
	return v, ok
}

// Keys returns the record's keys in input order
func (r Record) Keys() []string {
	if r.fields == nil {
		return nil
	}
	return r.fields.Keys()
}

// Label names the record in diagnostics: its MarkName if that is a string, else "Unknown"
func (r Record) Label() string {
	if v, ok := r.Value("MarkName"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "Unknown"
}
