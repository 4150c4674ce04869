// Package version orders version strings made of dot-separated
// alphanumeric tokens.
package version

import (
	"strconv"
	"strings"
)

/*
Compare orders two version strings and returns -1, 0, or 1 as a is
less than, equal to, or greater than b.

A version string is a sequence of tokens separated by periods, compared
token by token from the left:

- Tokens that both start with an integer compare by that integer
  ("1.10" is greater than "1.2").
- A token with no leading integer is always greater than one with a
  leading integer ("1.a10" is greater than "1.10"): numbers collate
  before letters.
- Tokens with the same leading integer (or none) compare the rest as
  plain strings. Digits after letters are NOT compared numerically
  ("1.a2" is greater than "1.a10"); that edge case is rare enough that
  handling it isn't worth the extra machinery.

If the strings agree for the length of the shorter one, the longer
string is greater ("1.0.0" is greater than "1.0").
*/
func Compare(a, b string) int {
	if a == b {
		return 0
	}

	aTokens := strings.Split(a, ".")
	bTokens := strings.Split(b, ".")

	n := min(len(aTokens), len(bTokens))
	for i := 0; i < n; i++ {
		aNum, aRest := splitLeadingDigits(aTokens[i])
		bNum, bRest := splitLeadingDigits(bTokens[i])

		switch {
		case aNum == bNum:
			// Same leading integer text, or neither has one: compare
			// the remainder as strings.
			if cmp := strings.Compare(aRest, bRest); cmp != 0 {
				return cmp
			}
		case aNum == "":
			return 1
		case bNum == "":
			return -1
		default:
			an, _ := strconv.Atoi(aNum)
			bn, _ := strconv.Atoi(bNum)
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			// Equal integers spelled differently ("01" vs "1"):
			// move on to the next token.
		}
	}

	// Equal through the end of the shorter string; the longer string
	// is greater.
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// splitLeadingDigits splits a token into its leading run of decimal
// digits and the remainder. Either part may be empty:
// "12abc34" -> ("12", "abc34"), "10" -> ("10", ""), "a129" -> ("", "a129").
func splitLeadingDigits(s string) (digits, rest string) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
