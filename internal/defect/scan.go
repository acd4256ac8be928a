package defect

import (
	"bytes"

	"github.com/tidwall/gjson"
)

// Scan reports whether any string value anywhere in raw equals a vocabulary
// term. Empty, null and invalid input yield false. Numbers, booleans and keys
// never match.
func Scan(raw []byte, vocab Vocabulary) bool {
	if !gjson.ValidBytes(raw) {
		return false
	}
	return scanValue(gjson.ParseBytes(raw), vocab)
}

func scanValue(r gjson.Result, vocab Vocabulary) bool {
	switch r.Type {
	case gjson.String:
		return vocab.Contains(r.Str)
	case gjson.JSON:
		found := false
		r.ForEach(func(_, value gjson.Result) bool {
			found = scanValue(value, vocab)
			return !found
		})
		return found
	default:
		return false
	}
}

// IsNA reports whether raw is an object whose top-level isNA field is true.
func IsNA(raw []byte) bool {
	if !gjson.ValidBytes(raw) {
		return false
	}
	return isNA(gjson.ParseBytes(raw))
}

func isNA(root gjson.Result) bool {
	return root.IsObject() && root.Get("isNA").Type == gjson.True
}

// IsBlank reports whether raw holds no data at all: empty, whitespace only,
// null, {} or []. Malformed input is not blank.
func IsBlank(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}
	if !gjson.ValidBytes(trimmed) {
		return false
	}
	r := gjson.ParseBytes(trimmed)
	switch r.Type {
	case gjson.Null:
		return true
	case gjson.JSON:
		empty := true
		r.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return empty
	}
	return false
}
