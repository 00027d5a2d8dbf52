package sparseset

import (
	"sort"

	"densecs/entity"
	"densecs/pack"
	"densecs/sparseset/internal/diag"
)

// sortable adapts a Set's dense/data pair to sort.Interface, the same
// Swap/Less shape used by other_examples/askeladdk-toolbox's sparse.Set for
// ordering a packed dense array with the standard library's sort package.
type sortable[T any] struct {
	dense []entity.ID
	data  []T
	less  func(a, b Pair[T]) bool
}

func (s sortable[T]) Len() int { return len(s.dense) }

func (s sortable[T]) Less(i, j int) bool {
	return s.less(Pair[T]{Entity: s.dense[i], Value: &s.data[i]}, Pair[T]{Entity: s.dense[j], Value: &s.data[j]})
}

func (s sortable[T]) Swap(i, j int) {
	s.dense[i], s.dense[j] = s.dense[j], s.dense[i]
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

// Sort permutes the dense region by less, an arbitrary ordering over
// (entity, value) pairs, then fully rewrites sparse from scratch. It is a
// precondition violation to sort a storage whose packed/inserted/modified
// zone is non-empty, since an arbitrary permutation would not preserve
// those zones' semantic boundaries (spec.md §4.5).
func (s *Set[T]) Sort(less func(a, b Pair[T]) bool) {
	switch s.info.Mode {
	case pack.Tight:
		if s.info.Tight.Len > 0 {
			diag.Panic("Sort", "cannot sort a Tight-packed storage with a non-empty packed zone", s)
		}
	case pack.Loose:
		if s.info.Loose.Len > 0 {
			diag.Panic("Sort", "cannot sort a Loose-packed storage with a non-empty packed zone", s)
		}
	case pack.Update:
		if s.inserted > 0 || s.modified > 0 {
			diag.Panic("Sort", "cannot sort an Update-packed storage with a non-empty inserted/modified zone", s)
		}
	}

	sort.Sort(sortable[T]{dense: s.dense, data: s.data, less: less})

	for i, e := range s.dense {
		s.sparse[e.Index()] = i
	}
}

// ViewAddEntity is the multi-storage entity-creation entry point: an
// Insert followed by an automatic Pack when the storage is Tight- or
// Loose-packed, so that an entity created with every participating
// component already present lands in the packed prefix immediately
// (spec.md §4.5). Callers creating an entity across several storages still
// invoke this once per storage; cross-storage coordination remains the
// world's responsibility (spec.md §4.4).
func (s *Set[T]) ViewAddEntity(e entity.ID, value T) (T, bool) {
	old, existed := s.Insert(e, value)
	if s.info.Mode == pack.Tight || s.info.Mode == pack.Loose {
		s.Pack(e)
	}
	return old, existed
}
