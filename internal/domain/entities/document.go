package entities

import (
	"bytes"
	"encoding/json"
)

// Unwrap normalizes Aurora's wrapped/unwrapped document shapes. Aurora may
// deliver `{"design": {...}}` or the design object directly (same for
// "pricing"); callers apply this once right after fetch so all downstream
// code sees one canonical shape. Unwrapping is idempotent in practice
// because the inner object carries no envelope key of its own.
func Unwrap(raw json.RawMessage, key string) json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return raw
	}
	inner, ok := envelope[key]
	if !ok {
		return raw
	}
	trimmed := bytes.TrimSpace(inner)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return raw
	}
	return inner
}
