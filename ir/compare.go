package ir

// Equal reports whether a and b carry the same tag and payload.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Tag != b.Tag || a.Bare != b.Bare {
		return false
	}
	switch a.Tag {
	case StringTag:
		return a.S == b.S
	case NumberTag:
		return a.N == b.N
	case BoolTag:
		return a.BOOL == b.BOOL
	case MapTag:
		return MapEqual(a.M, b.M)
	case ListTag:
		if len(a.L) != len(b.L) {
			return false
		}
		for i := range a.L {
			if !Equal(a.L[i], b.L[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// MapEqual reports whether a and b hold equal values under the same keys
// in the same order.
func MapEqual(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Keys[i] != b.Keys[i] {
			return false
		}
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}
