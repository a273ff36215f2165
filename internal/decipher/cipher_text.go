package decipher

import (
	"fmt"
	"sort"
	"strings"
)

// maxCipherWords and maxCipherWordLength are the hard caps spec.md places on
// cipher phrases so that CipherWordId and Position each fit in a byte.
const (
	maxCipherWords      = 256
	maxCipherWordLength = 256
)

// Condition is the key data structure driving search: one distinct cipher
// letter that occurs two or more times in the phrase, holding every
// occurrence of that letter. Semantically it means "all these positions
// must decode to the same plaintext letter."
type Condition struct {
	equalChars []CipherChar
}

// EqualChars returns every CipherChar occurrence that makes up this
// Condition. There are always at least two.
func (c Condition) EqualChars() []CipherChar {
	return c.equalChars
}

// score orders Conditions by how much pruning power they bring: conditions
// spanning many distinct cipher words are tried first, since failing on one
// of those kills the most unexplored search space. Not part of the
// semantics — ties may be broken however a deterministic rule dictates.
func (c Condition) score() int {
	distinctWords := make(map[CipherWordId]struct{}, len(c.equalChars))
	for _, ch := range c.equalChars {
		distinctWords[ch.CipherWordID] = struct{}{}
	}
	return 10*len(distinctWords) + len(c.equalChars)
}

func (c Condition) String() string {
	parts := make([]string, len(c.equalChars))
	for i, ch := range c.equalChars {
		parts[i] = fmt.Sprintf("%d[%d]", ch.CipherWordID, ch.Position)
	}
	return strings.Join(parts, " == ")
}

// CipherText parses a cipher phrase into numbered cipher words and derives
// the ordered list of Conditions that couple them together.
type CipherText struct {
	text       string
	wordCount  int
	conditions []Condition
	lengths    []int
}

// NewCipherText splits phrase on whitespace, numbers the resulting cipher
// words, and builds the Condition list sorted by descending score (ties
// broken by the cipher letter's first occurrence in the phrase — this is the
// specification's one genuinely unresolved tiebreak, decided here for
// reproducibility; see DESIGN.md).
//
// Returns an *Error with Kind InvalidCipher if phrase contains a byte
// outside a-z within a word, has 256 or more words, or any word of 256 or
// more bytes.
func NewCipherText(phrase string) (*CipherText, error) {
	cipherWords := strings.Fields(phrase)
	if len(cipherWords) >= maxCipherWords {
		return nil, newError(InvalidCipher, "cipher phrase has %d words, maximum is %d", len(cipherWords), maxCipherWords-1)
	}

	type occurrence struct {
		firstSeen int
		chars     []CipherChar
	}
	occurrences := make(map[byte]*occurrence)
	order := make([]byte, 0, 32)
	lengths := make([]int, len(cipherWords))

	for wordIndex, word := range cipherWords {
		if len(word) >= maxCipherWordLength {
			return nil, newError(InvalidCipher, "cipher word %q has length %d, maximum is %d", word, len(word), maxCipherWordLength-1)
		}
		lengths[wordIndex] = len(word)

		for position := 0; position < len(word); position++ {
			ch := word[position]
			if ch < 'a' || ch > 'z' {
				return nil, newError(InvalidCipher, "cipher word %q contains non a-z byte %q", word, ch)
			}

			occ, ok := occurrences[ch]
			if !ok {
				occ = &occurrence{firstSeen: len(order)}
				occurrences[ch] = occ
				order = append(order, ch)
			}
			occ.chars = append(occ.chars, CipherChar{
				CipherWordID: CipherWordId(wordIndex),
				Position:     Position(position),
				Length:       uint8(len(word)),
			})
		}
	}

	conditions := make([]Condition, 0, len(order))
	for _, ch := range order {
		occ := occurrences[ch]
		if len(occ.chars) < 2 {
			continue
		}
		conditions = append(conditions, Condition{equalChars: occ.chars})
	}

	// conditions is already in first-occurrence order (built by walking
	// `order`); a stable sort on score keeps that as the tiebreak.
	sort.SliceStable(conditions, func(i, j int) bool {
		return conditions[i].score() > conditions[j].score()
	})

	return &CipherText{
		text:       phrase,
		wordCount:  len(cipherWords),
		conditions: conditions,
		lengths:    lengths,
	}, nil
}

// Reorder replaces the Condition list with the permutation described by
// reorder: reorder[i] is the 1-based index (into the current Condition
// list) of the Condition that should end up at position i. Returns an
// *Error with Kind InvalidReorder if reorder's length does not match the
// current Condition count or any entry is out of range.
func (ct *CipherText) Reorder(reorder []int) error {
	if len(reorder) != len(ct.conditions) {
		return newError(InvalidReorder, "reorder has %d entries, expected %d", len(reorder), len(ct.conditions))
	}

	seen := make([]bool, len(ct.conditions))
	reordered := make([]Condition, len(reorder))
	for i, oneBased := range reorder {
		if oneBased < 1 || oneBased > len(ct.conditions) {
			return newError(InvalidReorder, "index %d out of range [1,%d]", oneBased, len(ct.conditions))
		}
		if seen[oneBased-1] {
			return newError(InvalidReorder, "index %d repeated", oneBased)
		}
		seen[oneBased-1] = true
		reordered[i] = ct.conditions[oneBased-1]
	}

	ct.conditions = reordered
	return nil
}

// Conditions returns the ordered list of Conditions derived from the cipher
// phrase.
func (ct *CipherText) Conditions() []Condition {
	return ct.conditions
}

// LengthOf returns the byte length of the cipher word with the given id, or
// (0, false) if id is out of range.
func (ct *CipherText) LengthOf(id CipherWordId) (int, bool) {
	if int(id) >= len(ct.lengths) {
		return 0, false
	}
	return ct.lengths[int(id)], true
}

// WordCount returns the number of cipher words in the phrase.
func (ct *CipherText) WordCount() int {
	return ct.wordCount
}

// String renders the cipher phrase followed by its numbered conditions,
// mirroring the original implementation's Display output.
func (ct *CipherText) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "initial text: %q\n", ct.text)
	for i, cond := range ct.conditions {
		fmt.Fprintf(&b, "    %d) %s\n", i+1, cond)
	}
	return b.String()
}
