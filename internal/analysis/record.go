package analysis

import "time"

// Properties is the computed-property bundle for one string.
// Derived once at creation and never mutated.
type Properties struct {
	// Length is the number of characters (runes) in the raw string
	Length int `json:"length"`

	// IsPalindrome is computed after lowercasing and keeping only [a-z0-9]
	IsPalindrome bool `json:"is_palindrome"`

	// UniqueCharacters counts distinct characters after lowercasing (no stripping)
	UniqueCharacters int `json:"unique_characters"`

	// WordCount counts whitespace-delimited non-empty tokens
	WordCount int `json:"word_count"`

	// SHA256Hash is the hex-encoded SHA-256 digest of the raw string
	SHA256Hash string `json:"sha256_hash"`

	// CharacterFrequencyMap maps each character of the raw string (case-sensitive)
	// to its occurrence count
	CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
}

// Record is one stored analysis result, keyed by its Value.
type Record struct {
	// ID is the content hash of Value
	ID string `json:"id"`

	// Value is the original string
	Value string `json:"value"`

	// Properties holds the derived properties
	Properties Properties `json:"properties"`

	// CreatedAt is the creation timestamp (UTC)
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord analyzes value and builds a Record created at now.
func NewRecord(value string, now time.Time) Record {
	props := Analyze(value)
	return Record{
		ID:         props.SHA256Hash,
		Value:      value,
		Properties: props,
		CreatedAt:  now.UTC(),
	}
}
