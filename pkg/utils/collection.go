package utils

import "strings"

// Filter returns the items for which keep holds, in input order.
// The result is never nil.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// ContainsFold reports whether field contains query, ignoring case.
// An empty query matches everything.
func ContainsFold(field, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}

// MatchAny reports whether any of fields contains query, ignoring case
func MatchAny(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, field := range fields {
		if ContainsFold(field, query) {
			return true
		}
	}
	return false
}

func SumBy[T any](items []T, value func(T) float64) float64 {
	var sum float64
	for _, item := range items {
		sum += value(item)
	}
	return sum
}

func CountBy[T any](items []T, match func(T) bool) int {
	count := 0
	for _, item := range items {
		if match(item) {
			count++
		}
	}
	return count
}

func CountDistinct[T any, K comparable](items []T, key func(T) K) int {
	seen := make(map[K]struct{}, len(items))
	for _, item := range items {
		seen[key(item)] = struct{}{}
	}
	return len(seen)
}

// SafeAverage is sum/n, and 0 for an empty collection
func SafeAverage(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
