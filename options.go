package cmdtree

import "strings"

// Value is a single option value: either text supplied by the user, or the
// boolean sentinel recorded when a flag appears with no value.
type Value struct {
	text string
	flag bool
}

// StringValue wraps explicit option text.
func StringValue(text string) Value {
	return Value{text: text}
}

// FlagValue is the boolean sentinel for an option given without a value.
func FlagValue() Value {
	return Value{flag: true}
}

// String returns the option text, or "true" for the boolean sentinel.
func (v Value) String() string {
	if v.flag {
		return "true"
	}
	return v.text
}

// Bool reports whether this value is the boolean sentinel.
func (v Value) Bool() bool {
	return v.flag
}

// Options is the mapping of parsed option keys to values for one invocation.
// Keys are normalized (hyphens become underscores) and unique; when an option
// is repeated on the input line the last occurrence wins.
type Options map[string]Value

// IsSet reports whether key was supplied. The key is normalized before lookup,
// so IsSet("max-mem") and IsSet("max_mem") are equivalent.
func (o Options) IsSet(key string) bool {
	_, ok := o[normalizeKey(key)]
	return ok
}

// String returns the value for key, or fallback when the key was not supplied.
func (o Options) String(key, fallback string) string {
	val, ok := o[normalizeKey(key)]
	if !ok {
		return fallback
	}
	return val.String()
}

// Bool reports whether key was supplied as a bare flag.
func (o Options) Bool(key string) bool {
	return o[normalizeKey(key)].Bool()
}

// normalizeKey maps an option key to the handler parameter naming convention.
func normalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}
