package calc

import (
	"strings"
	"unicode/utf8"
)

// ErrorText is what the display shows after a failed evaluation.
const ErrorText = "Error"

// acceptedInput lists every rune that Append lets into a buffer.
const acceptedInput = "0123456789.+-*/^%()×÷−"

// Buffer is the expression being composed, or ErrorText.
// Operations return a new Buffer; the caller owns the current value.
type Buffer string

// ErrorBuffer is the buffer state after a failed evaluation.
const ErrorBuffer Buffer = ErrorText

// Append adds a token to the end of the buffer. A digit typed onto a lone
// "0" replaces it. Tokens with characters outside the accepted input set
// are ignored.
func (b Buffer) Append(token string) Buffer {
	if !IsInputToken(token) {
		return b
	}
	if b == "0" && isDigits(token) {
		return Buffer(token)
	}
	return b + Buffer(token)
}

// Delete removes the last character. Deleting from an empty buffer is a no-op.
func (b Buffer) Delete() Buffer {
	if b == "" {
		return b
	}
	_, size := utf8.DecodeLastRuneInString(string(b))
	return b[:len(b)-size]
}

// Clear returns the empty buffer.
func (b Buffer) Clear() Buffer {
	return ""
}

// IsError reports whether the buffer holds the error sentinel.
func (b Buffer) IsError() bool {
	return b == ErrorBuffer
}

// Display is the text shown for the buffer. The empty buffer shows "0".
func (b Buffer) Display() string {
	if b == "" {
		return "0"
	}
	return string(b)
}

func (b Buffer) String() string {
	return string(b)
}

// IsInputToken reports whether token is non-empty and made only of runes
// Append accepts.
func IsInputToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !strings.ContainsRune(acceptedInput, r) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
