// Package payload turns loosely typed create/update bodies into typed
// partial records. Each entity declares a Fields table; decoding walks the
// table, never the payload, so unknown keys are ignored.
package payload

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
)

type Fields[P any] []Field[P]

// Decode fills a zero P from raw. Fields absent from raw stay unset.
func (fs Fields[P]) Decode(raw map[string]any) (P, error) {
	var p P
	for _, f := range fs {
		if err := f.decode(raw, &p); err != nil {
			var zero P
			return zero, err
		}
	}
	return p, nil
}

// ApplyDefaults sets every field that has a default and was not provided.
// Only the create path calls it.
func (fs Fields[P]) ApplyDefaults(p *P) {
	for _, f := range fs {
		f.applyDefault(p)
	}
}

// Defaults lists the default-value policy of the table.
func (fs Fields[P]) Defaults() map[string]any {
	out := map[string]any{}
	for _, f := range fs {
		if v, ok := f.DefaultValue(); ok {
			out[f.Name()] = v
		}
	}
	return out
}

func (fs Fields[P]) Lookup(name string) (Field[P], bool) {
	for _, f := range fs {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Override returns a copy of raw where field name is set to value under its
// primary key and every alias of it is removed.
func (fs Fields[P]) Override(raw map[string]any, name string, value any) map[string]any {
	out := make(map[string]any, len(raw)+1)
	for k, v := range raw {
		out[k] = v
	}
	f, ok := fs.Lookup(name)
	if !ok {
		return out
	}
	keys := f.Keys()
	for _, k := range keys {
		delete(out, k)
	}
	out[keys[0]] = value
	return out
}

// FromJSON decodes a request body into a raw payload. Numbers stay json.Number
// so integer fields never go through float64.
func FromJSON(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, apperror.MalformedField("body", "invalid JSON")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, apperror.MalformedField("body", "expected a JSON object")
	}
	return obj, nil
}
