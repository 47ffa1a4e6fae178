package iban

import (
	"strings"
	"unicode"
)

// ElectronicFormat strips whitespace and punctuation from s and uppercases
// the remaining letters. It never fails; garbage in yields a compact string
// that later fails validation.
func ElectronicFormat(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

// FriendlyFormat renders s in electronic form grouped in blocks of four
// characters separated by a space.
func FriendlyFormat(s string) string {
	return FriendlyFormatWith(s, " ")
}

// FriendlyFormatWith is FriendlyFormat with a caller-chosen separator. The
// last group may be shorter than four characters.
func FriendlyFormatWith(s, separator string) string {
	compact := []rune(ElectronicFormat(s))
	var b strings.Builder
	b.Grow(len(compact) + len(compact)/4*len(separator))
	for i, r := range compact {
		if i > 0 && i%4 == 0 {
			b.WriteString(separator)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Mask hides all but the country code, check digits and last four characters
// of an IBAN so it can be logged. Inputs of eight characters or fewer are
// masked entirely.
func Mask(iban string) string {
	compact := []rune(ElectronicFormat(iban))
	n := len(compact)
	if n <= 8 {
		return strings.Repeat("*", n)
	}
	return string(compact[:4]) + strings.Repeat("*", n-8) + string(compact[n-4:])
}
