package solver

import "math"

// This file deals with clause storage. All clauses live in a single flat
// slice of words and are designated by their offset in it, never by a Go
// pointer. That makes references cheap to cache in watch lists and reason
// slots, and lets the arena slide live clauses down during compaction,
// provided every cached reference is remapped afterwards.

// A ClauseRef is an opaque handle on a clause stored in the arena.
// It is only meaningful for the arena that produced it, and only while the
// referenced clause is alive.
type ClauseRef uint32

// ClauseRefUndef is a sentinel standing for "no clause". It is used,
// notably, as the reason of decision and assumption literals.
const ClauseRefUndef = ClauseRef(math.MaxUint32)

// Per-clause layout, in words:
// [0] header: learnt flag (bit 31), deleted flag (bit 30), size (bits 0-29).
// [1] high word of the activity score (float64 bits).
// [2] low word of the activity score.
// [3...] the literals.
const (
	hdrLearntMask  uint32 = 1 << 31
	hdrDeletedMask uint32 = 1 << 30
	hdrSizeMask    uint32 = (1 << 30) - 1
	clauseHdrWords        = 3
)

// An arena owns the memory of every clause of one solver instance.
type arena struct {
	data   []uint32
	wasted int // words occupied by deleted clauses
}

func newArena(capHint int) arena {
	return arena{data: make([]uint32, 0, capHint)}
}

// alloc stores a new clause and returns its reference.
// The literals are copied: the caller keeps ownership of lits.
func (a *arena) alloc(lits []Lit, learnt bool) ClauseRef {
	ref := ClauseRef(len(a.data))
	hdr := uint32(len(lits))
	if learnt {
		hdr |= hdrLearntMask
	}
	a.data = append(a.data, hdr, 0, 0) // activity starts at 0.0
	for _, l := range lits {
		a.data = append(a.data, uint32(l))
	}
	return ref
}

// get returns a view on the referenced clause.
// The view is transient: it must not be kept across a compact call.
func (a *arena) get(ref ClauseRef) Clause {
	return Clause{a: a, ref: ref}
}

// free marks the referenced clause as deleted. The words are reclaimed
// later, during a compaction pass; until then the reference must not be
// dereferenced anymore.
func (a *arena) free(ref ClauseRef) {
	hdr := a.data[ref]
	if hdr&hdrDeletedMask != 0 {
		panic("clause freed twice")
	}
	a.data[ref] = hdr | hdrDeletedMask
	a.wasted += clauseHdrWords + int(hdr&hdrSizeMask)
}

// shouldCompact is true when enough of the arena is occupied by deleted
// clauses for a compaction pass to be worth the remapping work.
func (a *arena) shouldCompact() bool {
	return a.wasted > len(a.data)/5
}

// compact slides all alive clauses towards the start of the arena,
// reclaiming the space of deleted ones. It returns the mapping from old to
// new references; the caller must remap every cached ClauseRef (reasons,
// watch lists, clause DB) using it.
func (a *arena) compact() map[ClauseRef]ClauseRef {
	remap := make(map[ClauseRef]ClauseRef)
	r, w := 0, 0
	for r < len(a.data) {
		hdr := a.data[r]
		sz := clauseHdrWords + int(hdr&hdrSizeMask)
		if hdr&hdrDeletedMask == 0 {
			remap[ClauseRef(r)] = ClauseRef(w)
			copy(a.data[w:w+sz], a.data[r:r+sz])
			w += sz
		}
		r += sz
	}
	a.data = a.data[:w]
	a.wasted = 0
	return remap
}
