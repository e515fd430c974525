// Package api has one module per backend resource. Modules do no validation
// of their own, never retry and never cache: every call is a fresh round trip
// through client.Client. Reply shapes are normalized here so callers only ever
// see typed values.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelopeKeys are tried, after the resource name, when a list comes wrapped
// in an object.
var envelopeKeys = []string{"data", "items", "results"}

// decodeList accepts either a bare array or {"<key>": [...]}.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	switch trimmed[0] {
	case '[':
		items := make([]T, 0)
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("api: decode %s list: %w", key, err)
		}
		return items, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, fmt.Errorf("api: decode %s envelope: %w", key, err)
		}
		for _, k := range append([]string{key}, envelopeKeys...) {
			inner, ok := obj[k]
			if !ok {
				continue
			}
			inner = bytes.TrimSpace(inner)
			if len(inner) > 0 && inner[0] == '[' {
				return decodeList[T](inner, key)
			}
			if bytes.Equal(inner, []byte("null")) {
				return []T{}, nil
			}
		}
		return nil, fmt.Errorf("api: %s reply has no %q array", key, key)
	}
	return nil, fmt.Errorf("api: unexpected %s reply shape", key)
}

// decodeItem accepts either the bare object or {"<key>": {...}}.
func decodeItem[T any](raw json.RawMessage, key string) (T, error) {
	var zero T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return zero, fmt.Errorf("api: unexpected %s reply shape", key)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return zero, fmt.Errorf("api: decode %s: %w", key, err)
	}
	if inner, ok := obj[key]; ok {
		inner = bytes.TrimSpace(inner)
		if len(inner) > 0 && inner[0] == '{' {
			trimmed = inner
		}
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return zero, fmt.Errorf("api: decode %s: %w", key, err)
	}
	return item, nil
}
