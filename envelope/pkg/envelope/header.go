package envelope

import (
	"encoding/json"
	"fmt"
)

// ParseHeader returns the JSON object held by a header fragment.
// It is a convenience for tooling; Decode never parses JSON.
func ParseHeader(text string) (map[string]any, error) {
	var header map[string]any
	if err := json.Unmarshal([]byte(text), &header); err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	return header, nil
}

// ItemType returns the "type" field of an item header, or "" when the
// fragment is not a JSON object or carries no type.
func ItemType(text string) string {
	header, err := ParseHeader(text)
	if err != nil {
		return ""
	}
	typ, _ := header["type"].(string)
	return typ
}
