package decipher

// Words is a sorted, duplicate-free set of WordIds. It is the unit the
// VocabularyIndex hands out and the solver intersects millions of times per
// run, so the representation is deliberately a plain sorted slice: a linear
// two-pointer merge beats a hash-set intersection here because the inputs
// are already sorted and small.
type Words []WordId

// clone returns an independent copy of w so callers can mutate it (via
// IntersectWith) without aliasing the VocabularyIndex's stored bucket.
func (w Words) clone() Words {
	if len(w) == 0 {
		return nil
	}
	out := make(Words, len(w))
	copy(out, w)
	return out
}

// Len returns the number of WordIds in the set.
func (w Words) Len() int {
	return len(w)
}

// IsEmpty reports whether the set has no members.
func (w Words) IsEmpty() bool {
	return len(w) == 0
}

// IDs returns the sorted WordIds in the set. Callers must not mutate the
// returned slice.
func (w Words) IDs() []WordId {
	return w
}

// Intersect returns a new sorted Words holding the set-theoretic
// intersection of w and other, or nil if the intersection is empty. Both w
// and other must already be sorted ascending with no duplicates.
func (w Words) Intersect(other Words) Words {
	if len(w) == 0 || len(other) == 0 {
		return nil
	}

	result := make(Words, 0, min(len(w), len(other)))
	i, j := 0, 0
	for i < len(w) && j < len(other) {
		switch {
		case w[i] < other[j]:
			i++
		case w[i] > other[j]:
			j++
		default:
			result = append(result, w[i])
			i++
			j++
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// IntersectWith replaces w's receiver slot with the intersection of w and
// other, in place from the caller's point of view. It returns the
// (possibly empty) resulting Words; an empty result means no overlap.
func (w *Words) IntersectWith(other Words) Words {
	*w = w.Intersect(other)
	return *w
}
