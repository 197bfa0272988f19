package calc

import (
	"regexp"
	"strings"
)

var glyphReplacer = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
	"^", "**",
	"%", "/100",
)

// whitelist is the character gate applied after Preprocess.
var whitelist = regexp.MustCompile(`^[0-9+\-*/().\s]+$`)

// Preprocess rewrites display glyphs to the ASCII operators the parser reads.
// Percent is plain postfix division: "50%" becomes "50/100".
func Preprocess(expr string) string {
	return glyphReplacer.Replace(expr)
}

// Validate reports whether expr contains only digits, arithmetic operators,
// parentheses, dots and whitespace. It says nothing about whether expr is
// well formed; "(()" passes here and fails in Parse.
func Validate(expr string) bool {
	return whitelist.MatchString(expr)
}
