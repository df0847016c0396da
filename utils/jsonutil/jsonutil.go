// Package jsonutil provides generic JSON round-trip helpers.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// Marshal serializes v to JSON.
func Marshal[T any](v T) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal %T to json: %w", v, err)
	}
	return data, nil
}

// Unmarshal constructs a T from its JSON representation.
func Unmarshal[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("unable to unmarshal %T from json: %w", v, err)
	}
	return v, nil
}
