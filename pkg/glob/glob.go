// Package glob provides the single name-matching primitive shared by the
// directory-skip check and pattern bookkeeping. Matching follows fnmatch
// semantics: '*' matches any run of characters, including path separators,
// and '?' matches exactly one character.
package glob

import (
	"regexp"
	"strings"
)

// MatchName reports whether name matches pattern in full.
// Unparsable patterns match nothing.
func MatchName(pattern, name string) bool {
	re, err := regexp.Compile("^" + toRegex(pattern) + "$")
	if err != nil {
		return false
	}
	return re.MatchString(name)
}

// toRegex converts a glob pattern into a regular expression body.
func toRegex(pattern string) string {
	pattern = escapeSpecialChars(pattern)
	pattern = strings.ReplaceAll(pattern, "*", ".*")
	pattern = strings.ReplaceAll(pattern, "?", ".")
	return pattern
}

// escapeSpecialChars escapes regex special characters except for '*' and '?'.
func escapeSpecialChars(pattern string) string {
	specialChars := `\.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}
