// Package rangeset implements an ordered set of pairwise-disjoint,
// inclusive byte intervals with union and difference.
//
// The set is the building block for character-class compilation: a class
// like [a-fx] collapses to a minimal list of intervals, and a negated
// class is the universal interval [0, 255] with every declared interval
// removed. The set keeps two invariants at all times:
//
//   - intervals are sorted ascending by Lo
//   - for every adjacent pair, ranges[i].Hi < ranges[i+1].Lo
//
// Overlapping or adjacent intervals (such as [a-b] and [c-d]) are
// merged on insertion.
package rangeset

import (
	"fmt"
	"slices"
)

// Universe is the full byte interval used as the starting point for
// negated character classes.
var Universe = Range{Lo: 0, Hi: 255}

// Range is an inclusive interval of byte values with Lo <= Hi.
type Range struct {
	Lo byte
	Hi byte
}

// Contains reports whether b falls inside the interval.
func (r Range) Contains(b byte) bool {
	return r.Lo <= b && b <= r.Hi
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
}

// Overlap classifies how a query range relates to a range already in the
// list. The classification drives both Add (which interval span to
// collapse) and Remove (trim, split or delete).
type Overlap uint8

const (
	// NoOverlap means the two ranges share no byte.
	NoOverlap Overlap = iota

	// EnclosesCompletely means the query covers the list range entirely.
	// Two identical ranges classify as EnclosesCompletely.
	EnclosesCompletely

	// Enclosed means the query sits strictly inside the list range.
	Enclosed

	// EnclosesStart means the query covers the start of the list range
	// but ends before it does.
	EnclosesStart

	// EnclosesEnd means the query covers the end of the list range but
	// starts after it does.
	EnclosesEnd
)

// String returns a human-readable representation of the overlap kind.
func (o Overlap) String() string {
	switch o {
	case NoOverlap:
		return "NoOverlap"
	case EnclosesCompletely:
		return "EnclosesCompletely"
	case Enclosed:
		return "Enclosed"
	case EnclosesStart:
		return "EnclosesStart"
	case EnclosesEnd:
		return "EnclosesEnd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(o))
	}
}

// Classify returns the overlap of the query range q with respect to the
// list range r.
func Classify(q, r Range) Overlap {
	if q.Hi < r.Lo || q.Lo > r.Hi {
		return NoOverlap
	}
	if q.Lo <= r.Lo {
		if q.Hi >= r.Hi {
			return EnclosesCompletely
		}
		return EnclosesStart
	}
	if q.Hi >= r.Hi {
		return EnclosesEnd
	}
	return Enclosed
}

// Set is an ordered list of pairwise-disjoint byte ranges.
// The zero value is an empty set ready for use.
type Set struct {
	ranges []Range
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// Universal returns a set covering every byte value. Negated character
// classes start from this and Remove each declared range.
func Universal() *Set {
	return &Set{ranges: []Range{Universe}}
}

// Len returns the number of disjoint ranges in the set.
func (s *Set) Len() int {
	return len(s.ranges)
}

// IsEmpty reports whether the set contains no bytes.
func (s *Set) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Ranges returns the underlying range list, sorted ascending.
// The returned slice is valid until the next mutation.
func (s *Set) Ranges() []Range {
	return s.ranges
}

// Contains reports whether b is covered by any range in the set.
func (s *Set) Contains(b byte) bool {
	for _, r := range s.ranges {
		if b < r.Lo {
			return false
		}
		if b <= r.Hi {
			return true
		}
	}
	return false
}

// overlapSpan locates the run of list indices the query overlaps.
// It returns the first and last overlapping index and their
// classifications; ok is false when nothing overlaps.
func (s *Set) overlapSpan(q Range) (start, end int, startType, endType Overlap, ok bool) {
	startType = NoOverlap
	for start = 0; start < len(s.ranges); start++ {
		startType = Classify(q, s.ranges[start])
		if startType != NoOverlap {
			break
		}
	}
	if startType == NoOverlap {
		return 0, 0, NoOverlap, NoOverlap, false
	}
	end, endType = start, startType
	for i := start + 1; i < len(s.ranges); i++ {
		t := Classify(q, s.ranges[i])
		if t == NoOverlap {
			break
		}
		end, endType = i, t
	}
	return start, end, startType, endType, true
}

// Add unions q into the set, merging every range it overlaps or touches
// into a single interval and keeping the sort order for disjoint
// inserts.
func (s *Set) Add(q Range) {
	// Widen the query by one byte on each side so that ranges ending at
	// q.Lo-1 or starting at q.Hi+1 join the merged span.
	w := q
	if w.Lo > 0 {
		w.Lo--
	}
	if w.Hi < 255 {
		w.Hi++
	}
	start, end, _, _, ok := s.overlapSpan(w)
	if !ok {
		i, _ := slices.BinarySearchFunc(s.ranges, q, func(r, q Range) int {
			return int(r.Lo) - int(q.Lo)
		})
		s.ranges = slices.Insert(s.ranges, i, q)
		return
	}

	// Collapse the overlapped span into one interval.
	lo := s.ranges[start].Lo
	if q.Lo < lo {
		lo = q.Lo
	}
	hi := s.ranges[end].Hi
	if q.Hi > hi {
		hi = q.Hi
	}
	s.ranges[start] = Range{Lo: lo, Hi: hi}
	s.ranges = slices.Delete(s.ranges, start+1, end+1)
}

// Remove subtracts q from the set. Ranges fully covered by q are
// deleted, partially covered ones are trimmed, and a range strictly
// enclosing q is split in two.
func (s *Set) Remove(q Range) {
	start, end, startType, endType, ok := s.overlapSpan(q)
	if !ok {
		return
	}

	switch startType {
	case EnclosesStart:
		// q covers the head of a single range: punch the hole so the
		// survivor starts one past q.
		s.ranges[start].Lo = q.Hi + 1
		return
	case Enclosed:
		// q sits strictly inside one range: split it around the hole.
		tail := Range{Lo: q.Hi + 1, Hi: s.ranges[start].Hi}
		s.ranges[start].Hi = q.Lo - 1
		s.ranges = slices.Insert(s.ranges, start+1, tail)
		return
	}

	removeFrom := start
	if startType == EnclosesEnd {
		s.ranges[start].Hi = q.Lo - 1
		removeFrom = start + 1
	}
	removeTill := end + 1
	if endType == EnclosesStart {
		s.ranges[end].Lo = q.Hi + 1
		removeTill = end
	}
	s.ranges = slices.Delete(s.ranges, removeFrom, removeTill)
}

// String returns a human-readable representation of the set.
func (s *Set) String() string {
	return fmt.Sprintf("rangeset%v", s.ranges)
}
