package jsontext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeSeq_AbsentBecomesEmptyArray(t *testing.T) {
	assert.Equal(t, "[]", EncodeSeq(nil))
	assert.Equal(t, "[]", EncodeSeq(json.RawMessage("null")))
	assert.Equal(t, "[]", EncodeSeq(json.RawMessage("  ")))
}

func TestEncodeSeq_StringStoredVerbatim(t *testing.T) {
	raw := json.RawMessage(`"[\"go\",\"sql\"]"`)
	assert.Equal(t, `["go","sql"]`, EncodeSeq(raw))
}

func TestEncodeSeq_ArrayStoredAsIs(t *testing.T) {
	raw := json.RawMessage(`["go","sql"]`)
	assert.Equal(t, `["go","sql"]`, EncodeSeq(raw))
}

func TestDecodeStrings_RoundTrip(t *testing.T) {
	assert.Equal(t, []string{"go", "sql"}, DecodeStrings(EncodeStrings([]string{"go", "sql"})))
}

func TestDecodeStrings_MalformedDegradesToEmpty(t *testing.T) {
	for _, s := range []string{"", "[]", "not json", `{"a":`, "null", `{"a":1}`} {
		assert.Equal(t, []string{}, DecodeStrings(s), "input %q", s)
	}
}

func TestDecode_MalformedLeavesTargetUntouched(t *testing.T) {
	out := []map[string]string{{"label": "kept"}}
	Decode("{{{", &out)
	assert.Len(t, out, 1)
	assert.Equal(t, "kept", out[0]["label"])
}
