// Package response turns raw generation replies into validated, complete
// values. Every entry point absorbs failure: a missing, malformed, or
// incomplete reply yields that intent's fixed fallback content together with
// a FailureKind describing what went wrong, never an error.
package response

import (
	"encoding/json"
	"strings"
)

// decode parses raw into dst. It first attempts the whole reply as JSON,
// then falls back to the substring between the first '{' and the last '}',
// since models often wrap their document in prose or code fences. The
// recovery is deliberately naive: if the reply contains several balanced
// groups the substring can over-capture and fail to parse, in which case the
// caller substitutes fallback content.
func decode(raw string, dst any) bool {
	doc, ok := document(raw)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(doc), dst) == nil
}

// document extracts the JSON document from a reply, or reports failure.
func document(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if json.Valid([]byte(raw)) {
		return raw, true
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	sub := raw[start : end+1]
	if !json.Valid([]byte(sub)) {
		return "", false
	}
	return sub, true
}
