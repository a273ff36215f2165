package decipher

import (
	"fmt"
	"sort"
	"strings"
	"testing"
)

func solveOrFatal(test *testing.T, vocabWords []string, phrase string, limit int) (*Solution, bool) {
	test.Helper()
	vocabulary := NewVocabulary(vocabWords)
	index := NewVocabularyIndex(vocabulary)
	ct, err := NewCipherText(phrase)
	if err != nil {
		test.Fatalf("NewCipherText(%q) returned error: %v", phrase, err)
	}
	solution, overflowed, err := Solve(vocabulary, index, ct, limit, nil)
	if err != nil {
		test.Fatalf("Solve returned error: %v", err)
	}
	return solution, overflowed
}

func TestSolveTrivialIdentityHasNoConditions(test *testing.T) {
	solution, overflowed := solveOrFatal(test, []string{"like", "mile"}, "like", 10000)
	if len(solution.PartialSolutions()) != 0 {
		test.Errorf("a cipher word with no repeated letters should yield no PartialSolutions, got %d", len(solution.PartialSolutions()))
	}
	if overflowed {
		test.Errorf("overflowed should be false when there are no conditions to exhaust")
	}
}

func TestSolvePalindromePairYieldsTwoMirroredSolutions(test *testing.T) {
	solution, overflowed := solveOrFatal(test, []string{"xyz", "zyx"}, "abc cba", 10000)
	partials := solution.PartialSolutions()
	if len(partials) != 2 {
		test.Fatalf("len(PartialSolutions()) = %d, want 2 (xyz/zyx and zyx/xyz)", len(partials))
	}
	if overflowed {
		test.Errorf("overflowed should be false when every solution fits under the limit")
	}

	seen := make(map[[2]WordId]bool)
	for _, partial := range partials {
		first, _ := partial.Get(0)
		second, _ := partial.Get(1)
		if first.Len() != 1 || second.Len() != 1 {
			test.Fatalf("expected each cipher word fully pinned down, got %v / %v", first, second)
		}
		seen[[2]WordId{first.IDs()[0], second.IDs()[0]}] = true
	}
	if !seen[[2]WordId{0, 1}] || !seen[[2]WordId{1, 0}] {
		test.Errorf("expected both (xyz,zyx) and (zyx,xyz) assignments, got %v", seen)
	}
}

func TestSolveRepeatedLetterWithinWordPrunesToOneMatch(test *testing.T) {
	solution, _ := solveOrFatal(test, []string{"aabba", "blooper", "zwitter"}, "aabba", 10000)
	partials := solution.PartialSolutions()
	if len(partials) != 1 {
		test.Fatalf("len(PartialSolutions()) = %d, want 1", len(partials))
	}

	words, ok := partials[0].Get(0)
	if !ok || words.Len() != 1 || words.IDs()[0] != 0 {
		test.Errorf("expected the single solution to pin cipher word 0 to WordId 0 (\"aabba\"), got %v", words)
	}
}

func TestSolveNoConsistentAssignmentYieldsNoSolutions(test *testing.T) {
	solution, overflowed := solveOrFatal(test, []string{"xyz"}, "abc cba", 10000)
	if len(solution.PartialSolutions()) != 0 {
		test.Errorf("a single candidate word can't satisfy both halves of a mirrored condition, want 0 solutions, got %d", len(solution.PartialSolutions()))
	}
	if overflowed {
		test.Errorf("overflowed should be false when the search space is simply exhausted")
	}
}

func TestSolveLimitZeroOverflowsImmediately(test *testing.T) {
	solution, overflowed := solveOrFatal(test, []string{"xyz", "zyx"}, "abc cba", 0)
	if len(solution.PartialSolutions()) != 0 {
		test.Errorf("limit of 0 should yield no solutions, got %d", len(solution.PartialSolutions()))
	}
	if !overflowed {
		test.Errorf("limit of 0 should report overflowed")
	}
}

func TestSolveStopsAtLimit(test *testing.T) {
	solution, overflowed := solveOrFatal(test, []string{"xyz", "zyx"}, "abc cba", 1)
	if len(solution.PartialSolutions()) != 1 {
		test.Fatalf("len(PartialSolutions()) = %d, want 1 (capped by limit)", len(solution.PartialSolutions()))
	}
	if !overflowed {
		test.Errorf("expected overflowed when more solutions exist past the limit")
	}
}

// partialSolutionKey renders a PartialSolution's full cipher-word -> WordIds
// mapping as a single comparable string, so two PartialSolutions with
// identical content (regardless of which order the solver produced them in)
// compare equal.
func partialSolutionKey(p *PartialSolution) string {
	var b strings.Builder
	for i, id := range p.CipherWordIds() {
		if i > 0 {
			b.WriteByte(';')
		}
		words, _ := p.Get(id)
		fmt.Fprintf(&b, "%d:%v", id, words.IDs())
	}
	return b.String()
}

// partialSolutionMultiset renders every PartialSolution to its key and
// returns the sorted list, so two result sets can be compared as multisets
// irrespective of the order the solver produced them in.
func partialSolutionMultiset(partials []*PartialSolution) []string {
	keys := make([]string, len(partials))
	for i, p := range partials {
		keys[i] = partialSolutionKey(p)
	}
	sort.Strings(keys)
	return keys
}

func TestSolveIsReorderInvariant(test *testing.T) {
	vocabulary := NewVocabulary([]string{"xyz", "zyx"})
	index := NewVocabularyIndex(vocabulary)

	ct, err := NewCipherText("abc cba")
	if err != nil {
		test.Fatalf("NewCipherText returned error: %v", err)
	}
	before, _, err := Solve(vocabulary, index, ct, 10000, nil)
	if err != nil {
		test.Fatalf("Solve returned error: %v", err)
	}

	if err := ct.Reorder([]int{2, 1, 3}); err != nil {
		test.Fatalf("Reorder returned error: %v", err)
	}
	after, _, err := Solve(vocabulary, index, ct, 10000, nil)
	if err != nil {
		test.Fatalf("Solve returned error: %v", err)
	}

	beforeSet := partialSolutionMultiset(before.PartialSolutions())
	afterSet := partialSolutionMultiset(after.PartialSolutions())

	if len(beforeSet) != len(afterSet) {
		test.Fatalf("reordering Conditions changed the number of solutions found: %d vs %d",
			len(beforeSet), len(afterSet))
	}
	for i := range beforeSet {
		if beforeSet[i] != afterSet[i] {
			test.Errorf("reordering Conditions changed the set of solutions found:\nbefore = %v\nafter  = %v", beforeSet, afterSet)
		}
	}
}
