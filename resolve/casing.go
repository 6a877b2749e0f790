package resolve

import (
	"strings"
	"unicode"
)

// isSeparator reports whether r splits words in a file stem.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}

// toPascalCase converts a kebab-, snake- or dot-separated stem to PascalCase.
// Characters that cannot appear in an identifier are dropped.
func toPascalCase(s string) string {
	parts := strings.FieldsFunc(s, isSeparator)

	var result strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		first := true
		for _, r := range runes {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '$' {
				continue
			}
			if first {
				result.WriteRune(unicode.ToUpper(r))
				first = false
				continue
			}
			result.WriteRune(r)
		}
	}

	return result.String()
}

// toCamelCase converts a file stem to camelCase, e.g. "read-config" -> "readConfig".
func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return pascal
	}

	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	if unicode.IsDigit(runes[0]) {
		return "_" + string(runes)
	}
	return string(runes)
}
