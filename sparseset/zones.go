package sparseset

import "densecs/pack"

// Inserted returns a read-only window over the entries inserted since the
// last ClearInserted/ClearInsertedAndModified. Empty for non-Update packs.
func (s *Set[T]) Inserted() Window[T] {
	if s.info.Mode != pack.Update {
		return Window[T]{}
	}
	return s.windowRange(0, s.inserted)
}

// InsertedMut is the mutable counterpart of Inserted.
func (s *Set[T]) InsertedMut() WindowMut[T] {
	if s.info.Mode != pack.Update {
		return WindowMut[T]{}
	}
	return s.windowMutRange(0, s.inserted)
}

// Modified returns a read-only window over the entries modified (via
// GetMut-induced migration) since the last ClearModified/
// ClearInsertedAndModified. Empty for non-Update packs.
func (s *Set[T]) Modified() Window[T] {
	if s.info.Mode != pack.Update {
		return Window[T]{}
	}
	return s.windowRange(s.inserted, s.inserted+s.modified)
}

// ModifiedMut is the mutable counterpart of Modified.
func (s *Set[T]) ModifiedMut() WindowMut[T] {
	if s.info.Mode != pack.Update {
		return WindowMut[T]{}
	}
	return s.windowMutRange(s.inserted, s.inserted+s.modified)
}

// InsertedOrModified returns a read-only window over the union of the
// inserted and modified zones. Empty for non-Update packs.
func (s *Set[T]) InsertedOrModified() Window[T] {
	if s.info.Mode != pack.Update {
		return Window[T]{}
	}
	return s.windowRange(0, s.inserted+s.modified)
}

// InsertedOrModifiedMut is the mutable counterpart of InsertedOrModified.
func (s *Set[T]) InsertedOrModifiedMut() WindowMut[T] {
	if s.info.Mode != pack.Update {
		return WindowMut[T]{}
	}
	return s.windowMutRange(0, s.inserted+s.modified)
}

// TakeRemoved drains and returns the removal log, or (nil, false) for a
// non-Update pack.
func (s *Set[T]) TakeRemoved() ([]Removed[T], bool) {
	if s.info.Mode != pack.Update {
		return nil, false
	}
	out := s.removed
	s.removed = nil
	return out, true
}

// ClearModified zeroes the modified counter. No-op for a non-Update pack.
func (s *Set[T]) ClearModified() {
	if s.info.Mode != pack.Update {
		return
	}
	s.modified = 0
}

// ClearInsertedAndModified zeroes both zone counters. No-op for a
// non-Update pack.
func (s *Set[T]) ClearInsertedAndModified() {
	if s.info.Mode != pack.Update {
		return
	}
	s.inserted = 0
	s.modified = 0
}

// ClearInserted empties the inserted zone while preserving the modified
// zone's membership, per spec.md §4.1.3: the inserted entries are rotated
// behind the modified zone one slot at a time (mirroring the original's
// swap loop) so that afterward the modified zone occupies [0, modified)
// and the formerly-inserted entries fall into the stable tail.
func (s *Set[T]) ClearInserted() {
	if s.info.Mode != pack.Update {
		return
	}
	if s.modified == 0 {
		s.inserted = 0
		return
	}
	for s.inserted > 0 {
		newEnd := s.inserted + s.modified - 1
		if last := len(s.dense) - 1; newEnd > last {
			newEnd = last
		}
		s.swapDense(newEnd, s.inserted-1)
		s.inserted--
	}
}
