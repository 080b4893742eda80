// Package decoder provides strict JSON decoding for client-supplied
// payloads: unknown fields are rejected instead of silently dropped.
package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func DecodeStrict[T any](data []byte) (T, error) {
	var out T

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode payload: %w", err)
	}

	return out, nil
}
