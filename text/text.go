// FILE: bouquet/text/text.go

// Package text holds small string helpers shared by the other bouquet packages.
package text

// IsEmpty reports whether s has zero length.
// Whitespace-only strings are not empty.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsEmptyPtr reports whether s is nil or points to a zero length string.
func IsEmptyPtr(s *string) bool {
	return s == nil || IsEmpty(*s)
}
