package decipher

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewCipherTextBasic(test *testing.T) {
	ct, err := NewCipherText("like")
	if err != nil {
		test.Fatalf("NewCipherText(\"like\") returned error: %v", err)
	}
	if ct.WordCount() != 1 {
		test.Errorf("WordCount() = %d, want 1", ct.WordCount())
	}
	if length, ok := ct.LengthOf(0); !ok || length != 4 {
		test.Errorf("LengthOf(0) = (%d, %v), want (4, true)", length, ok)
	}
	if len(ct.Conditions()) != 0 {
		test.Errorf("a word with no repeated letters should have no conditions, got %d", len(ct.Conditions()))
	}
}

func TestNewCipherTextDerivesConditions(test *testing.T) {
	ct, err := NewCipherText("abc cba")
	if err != nil {
		test.Fatalf("NewCipherText returned error: %v", err)
	}

	conditions := ct.Conditions()
	if len(conditions) != 3 {
		test.Fatalf("len(Conditions()) = %d, want 3 (one per distinct repeated letter)", len(conditions))
	}
	for _, cond := range conditions {
		if len(cond.EqualChars()) != 2 {
			test.Errorf("condition %v has %d occurrences, want 2", cond, len(cond.EqualChars()))
		}
	}
}

func TestNewCipherTextRepeatedLetterWithinWord(test *testing.T) {
	ct, err := NewCipherText("aabba")
	if err != nil {
		test.Fatalf("NewCipherText returned error: %v", err)
	}

	conditions := ct.Conditions()
	if len(conditions) != 2 {
		test.Fatalf("len(Conditions()) = %d, want 2 ('a' occurs 3x, 'b' occurs 2x)", len(conditions))
	}

	// 'a' occurs three times, scoring higher than 'b' despite both being
	// confined to a single cipher word, so it sorts first.
	if len(conditions[0].EqualChars()) != 3 {
		test.Errorf("first condition should be the 3-occurrence letter, got %d occurrences", len(conditions[0].EqualChars()))
	}
}

func TestNewCipherTextRejectsNonLowercase(test *testing.T) {
	_, err := NewCipherText("Abc")
	if err == nil {
		test.Fatal("expected an error for a non a-z byte")
	}
	derr, ok := err.(*Error)
	if !ok || derr.Kind != InvalidCipher {
		test.Errorf("expected *Error{Kind: InvalidCipher}, got %v", err)
	}
}

func TestNewCipherTextRejectsTooManyWords(test *testing.T) {
	words := make([]string, maxCipherWords)
	for i := range words {
		words[i] = "a"
	}
	_, err := NewCipherText(strings.Join(words, " "))
	if err == nil {
		test.Fatal("expected an error for a cipher phrase with too many words")
	}
}

func TestNewCipherTextRejectsTooLongWord(test *testing.T) {
	_, err := NewCipherText(strings.Repeat("a", maxCipherWordLength))
	if err == nil {
		test.Fatal("expected an error for an overlong cipher word")
	}
}

func TestCipherTextReorder(test *testing.T) {
	ct, err := NewCipherText("abc cba")
	if err != nil {
		test.Fatalf("NewCipherText returned error: %v", err)
	}

	original := ct.Conditions()
	if err := ct.Reorder([]int{3, 1, 2}); err != nil {
		test.Fatalf("Reorder returned error: %v", err)
	}

	reordered := ct.Conditions()
	if len(reordered) != len(original) {
		test.Fatalf("Reorder changed the condition count: %d vs %d", len(reordered), len(original))
	}
	if reordered[0].String() != original[2].String() {
		test.Errorf("Reorder([3,1,2])[0] should be original[2]")
	}
}

func TestCipherTextStringRendersNumberedConditions(test *testing.T) {
	ct, err := NewCipherText("abc cba")
	if err != nil {
		test.Fatalf("NewCipherText returned error: %v", err)
	}

	got := ct.String()
	if !strings.Contains(got, `"abc cba"`) {
		test.Errorf("String() = %q, want it to quote the initial phrase", got)
	}
	for i, cond := range ct.Conditions() {
		want := fmt.Sprintf("%d) %s", i+1, cond)
		if !strings.Contains(got, want) {
			test.Errorf("String() = %q, want it to contain numbered condition %q", got, want)
		}
	}
}

func TestCipherTextReorderRejectsBadPermutation(test *testing.T) {
	ct, err := NewCipherText("abc cba")
	if err != nil {
		test.Fatalf("NewCipherText returned error: %v", err)
	}

	if err := ct.Reorder([]int{1, 2}); err == nil {
		test.Error("expected an error for a reorder of the wrong length")
	}
	if err := ct.Reorder([]int{1, 1, 2}); err == nil {
		test.Error("expected an error for a reorder with a repeated index")
	}
	if err := ct.Reorder([]int{0, 1, 2}); err == nil {
		test.Error("expected an error for a reorder with an out-of-range index")
	}
}
