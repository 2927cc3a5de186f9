package dom

import "unicode/utf8"

// ValidAttributeName reports whether name can be set as an attribute and
// serialized back to HTML unchanged. It rejects the empty string, ASCII
// whitespace and control characters, and the characters that end or
// corrupt an attribute name in markup: " ' < > / =.
func ValidAttributeName(name string) bool {
	if name == "" || !utf8.ValidString(name) {
		return false
	}
	for _, r := range name {
		switch {
		case r < 0x20, r == 0x7f, r == ' ':
			return false
		case r == '"', r == '\'', r == '<', r == '>', r == '/', r == '=':
			return false
		case r >= 0x80 && r <= 0x9f, r == utf8.RuneError:
			return false
		}
	}
	return true
}
