package validation

// InvalidSet tracks which children of an object (by property) or array (by
// index) currently hold an invalid value, in the order they became invalid.
type InvalidSet[K comparable] struct {
	keys []K
}

// Record marks key valid or invalid.
func (s *InvalidSet[K]) Record(key K, valid bool) {
	idx := s.index(key)
	if valid {
		if idx != -1 {
			s.keys = append(s.keys[:idx], s.keys[idx+1:]...)
		}
		return
	}
	if idx == -1 {
		s.keys = append(s.keys, key)
	}
}

// Keys returns a copy of the invalid keys.
func (s *InvalidSet[K]) Keys() []K {
	return append([]K(nil), s.keys...)
}

// Valid reports whether no child is invalid.
func (s *InvalidSet[K]) Valid() bool {
	return len(s.keys) == 0
}

func (s *InvalidSet[K]) index(key K) int {
	for i, existing := range s.keys {
		if existing == key {
			return i
		}
	}
	return -1
}
