package decorator

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// InsertDelimiter inserts delim at a random position strictly between the first
// and last rune. Inputs shorter than two runes pass through unchanged.
func InsertDelimiter(delim rune) Stage {
	return Maybe(func(r Rand, s string) string {
		runes := []rune(s)
		if len(runes) < 2 {
			return s
		}
		pos := r.Intn(len(runes)-1) + 1

		var b strings.Builder
		b.Grow(len(s) + utf8.RuneLen(delim))
		b.WriteString(string(runes[:pos]))
		b.WriteRune(delim)
		b.WriteString(string(runes[pos:]))
		return b.String()
	})
}

// NumberSuffix appends a number drawn uniformly from 1..max, preceded by delim
// on an independent coin flip. A max below 1 is treated as 1.
func NumberSuffix(max int, delim rune) Stage {
	if max < 1 {
		max = 1
	}
	return Maybe(func(r Rand, s string) string {
		var b strings.Builder
		b.WriteString(s)
		if coin(r) {
			b.WriteRune(delim)
		}
		b.WriteString(strconv.Itoa(r.Intn(max) + 1))
		return b.String()
	})
}

// RepeatCapitalized appends the capitalised input between 1 and maxReps-1
// times. A maxReps below 2 is treated as 2.
func RepeatCapitalized(maxReps int) Stage {
	if maxReps < 2 {
		maxReps = 2
	}
	return Maybe(func(r Rand, s string) string {
		reps := r.Intn(maxReps-1) + 1
		capitalized := Capitalize(s)

		var b strings.Builder
		b.Grow(len(s) + reps*len(capitalized))
		b.WriteString(s)
		for range reps {
			b.WriteString(capitalized)
		}
		return b.String()
	})
}

// Capitalize upper-cases the first rune of s and leaves the rest unchanged.
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || first == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(first)
	if upper == first {
		return s
	}
	return string(upper) + s[size:]
}
