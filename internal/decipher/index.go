package decipher

import "sort"

// indexKey is the (letter, position) half of the three-level
// (length, letter, position) key the VocabularyIndex is built around.
// Length is the coarsest partition (the solver never mixes words of
// different lengths for a given cipher word) so it gets its own map level;
// letter-and-position is the finest constraint a Condition imposes.
type indexKey struct {
	letter   Letter
	position Position
}

// lengthIndex holds every (letter, position) -> Words bucket for words of
// one particular length.
type lengthIndex struct {
	wordLength int
	buckets    map[indexKey]Words
}

// VocabularyIndex maps every (length, letter, position) triple observed in a
// Vocabulary to the sorted set of WordIds whose word has that letter at that
// position. It is built once per invocation and never mutated afterward, so
// it can be shared by reference across independent solver runs.
type VocabularyIndex struct {
	byLength map[int]*lengthIndex
}

// NewVocabularyIndex builds a VocabularyIndex from a Vocabulary. Construction
// is two passes: first every occurrence is appended to its bucket, then
// every bucket is sorted once — sorting once up front amortizes the cost
// across all of the solver's later intersection calls.
func NewVocabularyIndex(vocabulary *Vocabulary) *VocabularyIndex {
	idx := &VocabularyIndex{byLength: make(map[int]*lengthIndex)}

	for length := 0; length <= vocabulary.MaxLength(); length++ {
		entries := vocabulary.byLengthEntries(length)
		li := &lengthIndex{wordLength: length, buckets: make(map[indexKey]Words, len(entries))}
		for _, entry := range entries {
			for position, ch := range []byte(entry.text) {
				key := indexKey{letter: Letter(ch), position: Position(position)}
				li.buckets[key] = append(li.buckets[key], entry.id)
			}
		}
		idx.byLength[length] = li
	}

	for _, li := range idx.byLength {
		for _, bucket := range li.buckets {
			sort.Slice(bucket, func(i, j int) bool { return bucket[i] < bucket[j] })
		}
	}

	return idx
}

// Get returns a clone of the sorted bucket of WordIds whose word (of the
// given length) has letter at position, or (nil, false) if no such bucket
// exists. position must be < length.
func (idx *VocabularyIndex) Get(length int, letter Letter, position Position) (Words, bool) {
	if int(position) >= length {
		panic("decipher: position must be less than length")
	}
	li, ok := idx.byLength[length]
	if !ok {
		return nil, false
	}
	bucket, ok := li.buckets[indexKey{letter: letter, position: position}]
	if !ok {
		return nil, false
	}
	return bucket.clone(), true
}
