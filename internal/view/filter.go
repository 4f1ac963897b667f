// Package view filters, sorts, groups and summarizes collections for display.
package view

import (
	"cmp"
	"slices"
	"strings"
)

// All is the sentinel that disables the status and member predicates.
const All = "all"

// Criteria holds the AND-combined predicates applied by Filter.
type Criteria struct {
	Search string
	Status string
	Member string
}

// Accessors tell Filter how to read a record type. Nil accessors disable their predicate.
type Accessors[T any] struct {
	Text     func(T) []string
	Status   func(T) string
	Members  func(T) []string
	Progress func(T) float64
}

// Filter returns the records matching criteria, stably sorted by progress descending.
// The result is never nil.
func Filter[T any](records []T, criteria Criteria, acc Accessors[T]) []T {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))
	result := make([]T, 0, len(records))
	for _, record := range records {
		if !matchesSearch(record, search, acc.Text) {
			continue
		}
		if !matchesStatus(record, criteria.Status, acc.Status) {
			continue
		}
		if !matchesMember(record, criteria.Member, acc.Members) {
			continue
		}
		result = append(result, record)
	}
	SortByProgress(result, acc.Progress)
	return result
}

// SortByProgress sorts records in place by progress descending, keeping ties in input order.
func SortByProgress[T any](records []T, progress func(T) float64) {
	if progress == nil {
		return
	}
	slices.SortStableFunc(records, func(a, b T) int {
		return cmp.Compare(progress(b), progress(a))
	})
}

func isAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, All)
}

func matchesSearch[T any](record T, search string, text func(T) []string) bool {
	if search == "" || text == nil {
		return true
	}
	for _, field := range text(record) {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func matchesStatus[T any](record T, want string, statusOf func(T) string) bool {
	if isAll(want) || statusOf == nil {
		return true
	}
	return statusOf(record) == want
}

func matchesMember[T any](record T, want string, members func(T) []string) bool {
	if isAll(want) || members == nil {
		return true
	}
	return slices.Contains(members(record), want)
}
