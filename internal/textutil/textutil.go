// Package textutil provides whitespace tokenizing, word counting and word-order reversal.
package textutil

import (
	"slices"
	"strings"
)

// Tokenize splits text on runs of whitespace.
// Leading and trailing whitespace produce no empty tokens.
func Tokenize(text string) []string {
	tokens := strings.Fields(text)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// CountWords returns the frequency of each lower-cased token in text
func CountWords(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range Tokenize(strings.ToLower(text)) {
		counts[word]++
	}
	return counts
}

// ReverseWords returns the tokens of text in reverse order joined by single spaces
func ReverseWords(text string) string {
	words := Tokenize(text)
	slices.Reverse(words)
	return strings.Join(words, " ")
}
