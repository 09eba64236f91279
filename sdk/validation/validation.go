// Package validation provides small helpers for pointer and presence handling
// at the store and bridge boundaries.
package validation

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// StringPtrIfNotEmpty returns a pointer to s, or nil when s is empty.
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetStringOrEmpty dereferences s, returning "" for nil.
func GetStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// GetBoolOrFalse dereferences b, returning false for nil.
func GetBoolOrFalse(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int {
	return &i
}
