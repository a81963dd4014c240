package storage

import (
	"encoding/json"
	"fmt"
)

// Nested lists and maps are stored as JSON text columns, matching the
// document shape of the domain types instead of exploding them into
// relational child tables.

func marshalJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json column: %w", err)
	}
	return string(data), nil
}

func unmarshalJSON(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decoding json column: %w", err)
	}
	return nil
}
