package util

// TrimString shortens s to at most length characters
func TrimString(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}

	return string(runes[:length])
}
