package util

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
)

// ExtractJSONObject returns the span from the first '{' to the last '}' in
// text, inclusive. ok is false when either delimiter is missing or they are
// out of order. Text holding several objects yields one span covering all of
// them.
func ExtractJSONObject(text string) (span string, ok bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// DeserializeFromJSONString deserializes the given JSON string to the given struct.
func DeserializeFromJSONString(jsonString string, v interface{}) error {
	// Check if v is a pointer
	if reflect.ValueOf(v).Kind() != reflect.Ptr {
		return errors.New("input must be a pointer")
	}
	return json.Unmarshal([]byte(jsonString), v)
}
