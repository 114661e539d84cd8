// Package basics holds the introductory lessons: pure versus impure
// functions, and replacing loops with map and reduce.
package basics

import (
	"strings"
	"unicode/utf8"

	"github.com/vinodhalaharvi/funcintro/pkg/band"
	"github.com/vinodhalaharvi/funcintro/pkg/ct"
	"github.com/vinodhalaharvi/funcintro/pkg/random"
)

// Increment returns n+1.
func Increment(n int) int {
	return n + 1
}

// IncrementInPlace adds one to the value n points at. It is the impure
// counterpart of Increment.
func IncrementInPlace(n *int) {
	*n++
}

// Lengths returns the character count of each word.
func Lengths(words []string) []int {
	return ct.Map(words, utf8.RuneCountInString)
}

// Squares returns x*x for each x.
func Squares(xs []int) []int {
	return ct.Map(xs, func(x int) int { return x * x })
}

// RandomChoices returns a slice as long as words where every element is a
// random pick from choices. words itself is left alone.
func RandomChoices(words, choices []string, src random.Source) []string {
	return ct.Map(words, func(string) string {
		return random.Element(src, choices)
	})
}

// ReplaceWithRandom overwrites every element of words with a random pick
// from choices.
func ReplaceWithRandom(words, choices []string, src random.Source) {
	for i := range words {
		words[i] = random.Element(src, choices)
	}
}

// Sum adds up xs.
func Sum(xs []int) int {
	return ct.Reduce(xs, 0, func(acc, x int) int { return acc + x })
}

// ContainsFold reports whether sub occurs in s, ignoring case.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// CountContaining counts the strings that contain sub, ignoring case.
func CountContaining(strs []string, sub string) int {
	return ct.Reduce(strs, 0, func(acc int, s string) int {
		if ContainsFold(s, sub) {
			return acc + 1
		}
		return acc
	})
}

// CountContainingLoop is CountContaining written as a counting loop.
func CountContainingLoop(strs []string, sub string) int {
	count := 0
	for _, s := range strs {
		if ContainsFold(s, sub) {
			count++
		}
	}
	return count
}

// FormatBandsInPlace moves every band to country and capitalizes its name,
// overwriting the elements of bands.
func FormatBandsInPlace(bands []band.Band, country string) {
	for i := range bands {
		bands[i].Country = country
		bands[i].Name = band.Capitalize(bands[i].Name)
	}
}
