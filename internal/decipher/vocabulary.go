package decipher

import (
	"fmt"
	"strings"
)

// wordEntry pairs a WordId with its text, grouped per-length inside
// Vocabulary.byLength.
type wordEntry struct {
	id   WordId
	text string
}

// Vocabulary holds the closed list of candidate plaintext words the solver
// is allowed to use. WordIds are stable for the vocabulary's lifetime: a
// word's id is simply its index in the slice it was built from.
//
// Words are assumed already lowercase a-z by the time they reach
// NewVocabulary; the
// ingest layer (file loading, line splitting) lives outside the core.
type Vocabulary struct {
	all      []string
	byLength [][]wordEntry
}

// NewVocabulary builds a Vocabulary from an ordered sequence of words. Each
// word's index in the slice becomes its WordId.
func NewVocabulary(words []string) *Vocabulary {
	v := &Vocabulary{all: words}
	for id, word := range words {
		length := len(word)
		for len(v.byLength) <= length {
			v.byLength = append(v.byLength, nil)
		}
		v.byLength[length] = append(v.byLength[length], wordEntry{id: WordId(id), text: word})
	}
	return v
}

// Lookup returns the text of the word with the given WordId, or ("", false)
// if the id is out of range.
func (v *Vocabulary) Lookup(id WordId) (string, bool) {
	if id < 0 || int(id) >= len(v.all) {
		return "", false
	}
	return v.all[int(id)], true
}

// MaxLength returns the length of the longest word in the vocabulary, or -1
// if the vocabulary is empty.
func (v *Vocabulary) MaxLength() int {
	return len(v.byLength) - 1
}

// byLengthEntries returns the (WordId, text) pairs for every word of the
// given length. The returned slice is shared with the Vocabulary and must
// not be mutated.
func (v *Vocabulary) byLengthEntries(length int) []wordEntry {
	if length < 0 || length >= len(v.byLength) {
		return nil
	}
	return v.byLength[length]
}

// IDsOfLength returns every WordId whose word has the given length, in
// ascending WordId order. Used to expand a cipher word that no Condition
// touched into its full set of candidates for rendering.
func (v *Vocabulary) IDsOfLength(length int) []WordId {
	entries := v.byLengthEntries(length)
	if len(entries) == 0 {
		return nil
	}
	ids := make([]WordId, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}

// String renders a length -> word-count histogram, mirroring the original
// implementation's Debug output; useful for --stats CLI output and for
// eyeballing test fixtures.
func (v *Vocabulary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vocabulary{all: %d, byLength: [", len(v.all))
	for length, entries := range v.byLength {
		if length > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d-%d", length, len(entries))
	}
	b.WriteString("]}")
	return b.String()
}
