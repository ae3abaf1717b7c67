package model

import "strings"

// FixCase returns a shallow copy of a JSON object in which every key
// containing an underscore gains a camelCase twin holding the same value.
// Original keys are kept and nested objects are not converted. Slices and
// every other non-object input are returned as-is.
func FixCase(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := make(map[string]any, len(obj)*2)
	for k, val := range obj {
		out[k] = val
	}
	for k, val := range obj {
		if strings.Contains(k, "_") {
			out[CamelCase(k)] = val
		}
	}
	return out
}

// CamelCase converts a snake_case name: every underscore followed by a
// letter or digit is dropped and that character upper-cased. Trailing or
// doubled underscores are kept.
func CamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' && i+1 < len(s) && isWordChar(s[i+1]) {
			i++
			b.WriteString(strings.ToUpper(string(s[i])))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
