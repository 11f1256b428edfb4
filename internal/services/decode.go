package services

import (
	"encoding/json"
	"fmt"
)

// decodeShape copies a narrative result into a typed struct.
func decodeShape(in map[string]any, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode narrative result: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode narrative result: %w", err)
	}
	return nil
}
