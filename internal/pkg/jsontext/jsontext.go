package jsontext

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Package jsontext holds the text encoding used for the projects table's
// skills and docs columns: a JSON array stored in a TEXT column.
// Encoding always produces valid JSON; decoding never fails — malformed
// stored text degrades to the empty sequence.

// EncodeSeq normalizes a raw JSON payload field into the column form.
// A JSON string is unwrapped and stored verbatim, any other JSON value
// is stored as-is, and absent/null input becomes "[]".
func EncodeSeq(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "[]"
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}

// EncodeStrings converts a string slice to the column form.
func EncodeStrings(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

// DecodeStrings converts the column form back to a string slice.
func DecodeStrings(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return []string{}
	}
	if items == nil {
		return []string{}
	}
	return items
}

// Decode unmarshals the column form into out, leaving out untouched on
// malformed input.
func Decode(s string, out any) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	_ = json.Unmarshal([]byte(s), out)
}
