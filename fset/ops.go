package fset

// Binary and unary fuzzy set operations (standard min/max calculus).

// Union returns the fuzzy union of s and other as a new fuzzy set:
// each object appears with the greater of its two membership degrees.
func (s *FuzzySet[T]) Union(other *FuzzySet[T]) *FuzzySet[T] {
	result := New[T]()
	for _, el := range s.All() {
		if !other.Contains(el.Object()) {
			result.Add(el)
			continue
		}
		oel, _ := other.Get(el.Object())
		if el.Mu() >= oel.Mu() {
			result.Add(el)
		}
	}
	for _, el := range other.All() {
		if !result.Contains(el.Object()) {
			result.Add(el)
		}
	}

	return result
}

// Intersection returns the fuzzy intersection of s and other as a new
// fuzzy set: each common object appears with the lesser of its two
// membership degrees.
func (s *FuzzySet[T]) Intersection(other *FuzzySet[T]) *FuzzySet[T] {
	result := New[T]()
	for _, el := range s.All() {
		if !other.Contains(el.Object()) {
			continue
		}
		oel, _ := other.Get(el.Object())
		if el.Mu() <= oel.Mu() {
			result.Add(el)
		} else {
			result.Add(oel)
		}
	}

	return result
}

// Complement returns the fuzzy complement of s as a new fuzzy set, with
// each membership degree mu replaced by 1-mu.
func (s *FuzzySet[T]) Complement() *FuzzySet[T] {
	result := New[T]()
	for _, el := range s.All() {
		result.AddObject(el.Object(), 1.0-el.Mu())
	}

	return result
}

// Equal reports whether s and other store the same objects with the
// same membership degrees.
func (s *FuzzySet[T]) Equal(other *FuzzySet[T]) bool {
	if other == nil || s.Len() != other.Len() {
		return false
	}
	for _, el := range s.All() {
		oel, err := other.Get(el.Object())
		if err != nil || el.Mu() != oel.Mu() {
			return false
		}
	}

	return true
}

// IsSubset reports whether other contains s: every object of s is
// stored in other with at least the same membership degree.
func (s *FuzzySet[T]) IsSubset(other *FuzzySet[T]) bool {
	if other == nil || s.Len() > other.Len() {
		return false
	}
	for _, el := range s.All() {
		oel, err := other.Get(el.Object())
		if err != nil || el.Mu() > oel.Mu() {
			return false
		}
	}

	return true
}

// IsSuperset reports whether s contains other.
func (s *FuzzySet[T]) IsSuperset(other *FuzzySet[T]) bool {
	if other == nil {
		return false
	}

	return other.IsSubset(s)
}

// IsStrictSubset reports whether other contains s and the sets differ.
func (s *FuzzySet[T]) IsStrictSubset(other *FuzzySet[T]) bool {
	return s.IsSubset(other) && !s.Equal(other)
}

// IsStrictSuperset reports whether s contains other and the sets differ.
func (s *FuzzySet[T]) IsStrictSuperset(other *FuzzySet[T]) bool {
	return s.IsSuperset(other) && !s.Equal(other)
}
