// Package utils holds small generic slice helpers shared across packages.
package utils

// FindIndex returns the index of the first occurrence of item in slice,
// or -1 when absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Filter returns the elements of slice for which keep returns true, in
// their original order.
func Filter[T any](slice []T, keep func(T) bool) []T {
	var out []T
	for _, v := range slice {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
