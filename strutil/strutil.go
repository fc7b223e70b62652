package strutil

import "strings"

// Reverse reverses s rune by rune, so multi-byte characters stay intact
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func CountOccurrences(s string, r rune) int {
	return strings.Count(s, string(r))
}
