package sparseset

import (
	"densecs/entity"
	"densecs/pack"
	"densecs/sparseset/internal/diag"
)

// packedLen returns the current packed-prefix length for a Tight/Loose
// window, or 0 otherwise.
func (w WindowMut[T]) packedLen() int {
	if w.info == nil {
		return 0
	}
	switch w.info.Mode {
	case pack.Tight:
		return w.info.Tight.Len
	case pack.Loose:
		return w.info.Loose.Len
	default:
		return 0
	}
}

func (w WindowMut[T]) setPackedLen(n int) {
	switch w.info.Mode {
	case pack.Tight:
		w.info.Tight.Len = n
	case pack.Loose:
		w.info.Loose.Len = n
	}
}

func (w WindowMut[T]) swapDense(i, j int) {
	if i == j {
		return
	}
	w.dense[i], w.dense[j] = w.dense[j], w.dense[i]
	w.data[i], w.data[j] = w.data[j], w.data[i]
	w.sparse[w.dense[i].Index()] = i
	w.sparse[w.dense[j].Index()] = j
}

// Pack moves entity into the packed prefix if it is present and not
// already packed. It is idempotent: packing an already-packed entity is a
// no-op (spec.md §4.4, P10).
func (w WindowMut[T]) Pack(e entity.ID) {
	if w.info == nil || (w.info.Mode != pack.Tight && w.info.Mode != pack.Loose) {
		diag.Panic("Pack", "storage is not in a pack-capable mode", w.info)
	}
	if !w.Contains(e) {
		return
	}
	idx := int(e.Index())
	di := w.sparse[idx]
	length := w.packedLen()
	if di >= length {
		w.swapDense(di, length)
		w.setPackedLen(length + 1)
	}
}

// Unpack is the inverse of Pack: it evicts entity from the packed prefix if
// present and currently packed. Idempotent for already-unpacked entities.
func (w WindowMut[T]) Unpack(e entity.ID) {
	if w.info == nil || (w.info.Mode != pack.Tight && w.info.Mode != pack.Loose) {
		diag.Panic("Unpack", "storage is not in a pack-capable mode", w.info)
	}
	if !w.Contains(e) {
		return
	}
	idx := int(e.Index())
	di := w.sparse[idx]
	length := w.packedLen()
	if di < length {
		w.swapDense(di, length-1)
		w.setPackedLen(length - 1)
	}
}

// Pack delegates to the full-range mutable window, per spec.md §4.1:
// "pack(entity) / unpack(entity): for Tight/Loose, swap entity into / out
// of the packed prefix."
func (s *Set[T]) Pack(e entity.ID) {
	s.WindowMut().Pack(e)
}

// Unpack delegates to the full-range mutable window.
func (s *Set[T]) Unpack(e entity.ID) {
	s.WindowMut().Unpack(e)
}

// SetPackMode transitions the storage to mode, enforcing spec.md §4.2:
// NoPack -> Tight|Loose|Update is only permitted on an empty storage;
// Tight|Loose -> NoPack is always permitted (it only drops pack.Len,
// never reorders dense); Update -> NoPack drops the inserted/modified
// counters and the removed log.
func (s *Set[T]) SetPackMode(info pack.Info) {
	switch {
	case s.info.Mode == pack.NoPack && info.Mode != pack.NoPack:
		if !s.IsEmpty() || s.IsUnique() {
			diag.Panic("SetPackMode", "can only transition an empty storage from NoPack into a pack mode", s)
		}
		// The storage is empty, so inserted/modified/removed are already
		// zero-valued; nothing to reset on the way into Update mode.
	case (s.info.Mode == pack.Tight || s.info.Mode == pack.Loose) && info.Mode == pack.NoPack:
		// always permitted
	case s.info.Mode == pack.Update && info.Mode == pack.NoPack:
		s.inserted = 0
		s.modified = 0
		s.removed = nil
	case s.info.Mode == info.Mode:
		// no-op transition to the same mode: preserve existing zone state
		return
	default:
		diag.Panic("SetPackMode", "unsupported pack mode transition", s)
	}
	s.info = info
}

// PackMode reports the storage's current pack mode.
func (s *Set[T]) PackMode() pack.Mode {
	return s.info.Mode
}
