// Package classes joins and merges Tailwind class lists.
package classes

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/samber/lo"
)

// Tokens splits class lists into single class names, dropping empty entries.
func Tokens(lists ...string) []string {
	var tokens []string
	for _, list := range lists {
		tokens = append(tokens, strings.Fields(list)...)
	}
	return lo.Compact(tokens)
}

// Join concatenates class lists in order without resolving conflicts.
// Exact duplicates are removed, keeping the first occurrence.
func Join(lists ...string) string {
	return strings.Join(lo.Uniq(Tokens(lists...)), " ")
}

// Merge concatenates class lists and resolves conflicting Tailwind utilities.
// When two classes target the same utility group, the one from the later list wins.
// Surviving classes keep their input order; a repeated class sits at its last occurrence.
func Merge(lists ...string) string {
	tokens := Tokens(lists...)
	if len(tokens) == 0 {
		return ""
	}

	// twmerge decides which classes survive, but not their order.
	survivors := lo.KeyBy(Tokens(twmerge.Merge(strings.Join(tokens, " "))), func(token string) string {
		return token
	})

	last := make(map[string]int, len(tokens))
	for i, token := range tokens {
		last[token] = i
	}

	return strings.Join(lo.Filter(tokens, func(token string, i int) bool {
		_, ok := survivors[token]
		return ok && last[token] == i
	}), " ")
}
