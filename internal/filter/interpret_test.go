package filter

import (
	"reflect"
	"testing"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Spec
	}{
		{
			name:  "palindromic",
			query: "all palindromic strings",
			want:  Spec{KeyIsPalindrome: true},
		},
		{
			name:  "palindrome uppercase",
			query: "Show me every PALINDROME",
			want:  Spec{KeyIsPalindrome: true},
		},
		{
			name:  "longer than",
			query: "strings longer than 5 characters",
			want:  Spec{KeyMinLength: 6},
		},
		{
			name:  "single word with letter",
			query: "single word strings containing the letter z",
			want:  Spec{KeyWordCount: 1, KeyContainsCharacter: "z"},
		},
		{
			name:  "single word palindromes",
			query: "all single word palindromic strings",
			want:  Spec{KeyIsPalindrome: true, KeyWordCount: 1},
		},
		{
			name:  "first vowel",
			query: "strings containing the first vowel",
			want:  Spec{KeyContainsCharacter: "a"},
		},
		{
			name:  "explicit letter overrides first vowel",
			query: "first vowel strings containing the letter q",
			want:  Spec{KeyContainsCharacter: "q"},
		},
		{
			name:  "loose containing",
			query: "strings containing z",
			want:  Spec{KeyContainsCharacter: "z"},
		},
		{
			name:  "loose rule catches first letter of a non-letter phrase",
			query: "containing the letter 5",
			want:  Spec{KeyContainsCharacter: "t"},
		},
		{
			name:  "longer than without digits",
			query: "longer than five",
			want:  Spec{},
		},
		{
			name:  "everything at once",
			query: "Single word palindromic strings longer than 2 containing the letter b",
			want: Spec{
				KeyIsPalindrome:      true,
				KeyWordCount:         1,
				KeyMinLength:         3,
				KeyContainsCharacter: "b",
			},
		},
		{
			name:  "gibberish",
			query: "gibberish with no patterns",
			want:  Spec{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Interpret(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestInterpret_EmptyMeansUnparseable(t *testing.T) {
	if got := Interpret("gibberish with no patterns"); !got.IsEmpty() {
		t.Errorf("Interpret() = %v, want empty spec", got)
	}
	if got := Interpret("palindromes"); got.IsEmpty() {
		t.Error("Interpret(palindromes) is empty, want is_palindrome")
	}
}

func TestInterpret_HugeLengthSaturates(t *testing.T) {
	got := Interpret("longer than 99999999999999999999999")
	n, ok := got[KeyMinLength].(int)
	if !ok {
		t.Fatalf("min_length = %#v, want int", got[KeyMinLength])
	}
	if n <= 0 {
		t.Errorf("min_length = %d, want large positive", n)
	}
}
