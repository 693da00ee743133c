package helpers

// StringValue dereferences a nullable text column, mapping NULL to "".
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IntValue dereferences a nullable integer column, mapping NULL to 0.
func IntValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// StringPtr returns a pointer to s, or nil when s is empty. Used when
// writing optional text columns.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
