package sliceutil

import (
	"fmt"
	"strings"

	"github.com/r4dulf/DotNetLab2/set"
)

func CountOccurrences[T comparable](s []T, value T) int {
	count := 0
	for _, item := range s {
		if item == value {
			count++
		}
	}
	return count
}

// Unique returns the distinct elements of s in order of first occurrence
func Unique[T comparable](s []T) []T {
	if s == nil {
		return nil
	}

	seen := set.NewOrderedSet[T]()
	seen.InsertSlice(s)
	return seen.Items()
}

// Join formats every element with %v and joins them with sep
func Join[T any](s []T, sep string) string {
	var b strings.Builder
	for i, item := range s {
		if i != 0 {
			b.WriteString(sep)
		}
		b.WriteString(fmt.Sprintf("%v", item))
	}
	return b.String()
}
