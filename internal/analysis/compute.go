package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// Analyze computes the full property bundle for value.
func Analyze(value string) Properties {
	return Properties{
		Length:                CountChars(value),
		IsPalindrome:          IsPalindrome(value),
		UniqueCharacters:      UniqueChars(value),
		WordCount:             WordCount(value),
		SHA256Hash:            Hash(value),
		CharacterFrequencyMap: CharFrequency(value),
	}
}

// CountChars returns the character count as runes (not bytes).
func CountChars(s string) int {
	return utf8.RuneCountInString(s)
}

// IsPalindrome reports whether s reads the same backwards once lowercased and
// reduced to ASCII letters and digits. An input with nothing left after
// stripping counts as a palindrome.
func IsPalindrome(s string) bool {
	lower := strings.ToLower(s)
	clean := make([]byte, 0, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			clean = append(clean, c)
		}
	}
	for i, j := 0, len(clean)-1; i < j; i, j = i+1, j-1 {
		if clean[i] != clean[j] {
			return false
		}
	}
	return true
}

// UniqueChars counts distinct runes after lowercasing.
func UniqueChars(s string) int {
	seen := make(map[rune]struct{})
	for _, r := range strings.ToLower(s) {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// WordCount counts whitespace-separated tokens.
func WordCount(s string) int {
	return len(strings.Fields(strings.TrimSpace(s)))
}

// Hash returns the hex-encoded SHA-256 digest of s.
func Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// CharFrequency counts occurrences of each rune in s, case-sensitively.
func CharFrequency(s string) map[string]int {
	freq := make(map[string]int)
	for _, r := range s {
		freq[string(r)]++
	}
	return freq
}
