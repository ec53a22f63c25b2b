// Package nfa implements a byte-level Thompson NFA: compilation of a
// pattern string into a state graph, and a parallel simulator that
// advances the whole set of live states one input byte at a time.
//
// The state graph lives in a flat arena indexed by StateID. Quantifiers
// compile to cycles through Split states, so the graph is walked with
// membership tracking, never by unbounded recursion over edges.
package nfa

import (
	"fmt"
)

// StateID uniquely identifies an NFA state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// InvalidState represents an invalid/unwired state ID.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and determines which
// fields and transitions are valid.
type StateKind uint8

const (
	// StateMatch is the accepting state. Exactly one exists per
	// compiled pattern; every accept path reaches it.
	StateMatch StateKind = iota

	// StateLiteral consumes exactly one byte equal to its literal.
	StateLiteral

	// StateAnyChar consumes any single byte.
	StateAnyChar

	// StateRange consumes any byte inside an inclusive interval
	// [lo, hi]. Character classes compile to chains of these.
	StateRange

	// StateEpsilon transitions to its successor without consuming
	// input.
	StateEpsilon

	// StateSplit forks without consuming input: out is the skip path,
	// out1 the consume-or-loop path. Closure expands out1 before out.
	StateSplit

	// StateFail is a dead sink with no transitions. Character-class
	// fragments use it to cap the miss edge (except under '?').
	StateFail

	// StateLineEnd consumes the end-of-line sentinel only. The parser
	// emits it for '$' as the last token of an alternative.
	StateLineEnd
)

// String returns a human-readable representation of the StateKind.
func (k StateKind) String() string {
	switch k {
	case StateMatch:
		return "Match"
	case StateLiteral:
		return "Literal"
	case StateAnyChar:
		return "AnyChar"
	case StateRange:
		return "Range"
	case StateEpsilon:
		return "Epsilon"
	case StateSplit:
		return "Split"
	case StateFail:
		return "Fail"
	case StateLineEnd:
		return "LineEnd"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State is a single NFA vertex. The kind determines which fields carry
// meaning: lo holds the literal byte for Literal states and the lower
// bound for Range states; out1 exists only on Split states.
type State struct {
	id   StateID
	kind StateKind

	// Literal byte (lo) or inclusive bounds for Range states.
	lo, hi byte

	// out is the primary successor. Every non-terminal state has it
	// wired before compilation returns; Match and Fail have none.
	out StateID

	// out1 is the secondary successor, present only on Split states.
	out1 StateID
}

// ID returns the state's unique identifier.
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type.
func (s *State) Kind() StateKind {
	return s.kind
}

// IsMatch returns true if this is the accepting state.
func (s *State) IsMatch() bool {
	return s.kind == StateMatch
}

// Literal returns the byte a Literal state consumes.
// Returns 0 for other kinds.
func (s *State) Literal() byte {
	if s.kind == StateLiteral {
		return s.lo
	}
	return 0
}

// Bounds returns the inclusive interval of a Range state.
// Returns (0, 0) for other kinds.
func (s *State) Bounds() (lo, hi byte) {
	if s.kind == StateRange {
		return s.lo, s.hi
	}
	return 0, 0
}

// Out returns the primary successor.
func (s *State) Out() StateID {
	return s.out
}

// Split returns both successors of a Split state: the skip path and the
// consume-or-loop path. Returns (InvalidState, InvalidState) for other
// kinds.
func (s *State) Split() (out, out1 StateID) {
	if s.kind == StateSplit {
		return s.out, s.out1
	}
	return InvalidState, InvalidState
}

// String returns a human-readable representation of the state.
func (s *State) String() string {
	switch s.kind {
	case StateMatch:
		return fmt.Sprintf("State(%d, Match)", s.id)
	case StateLiteral:
		return fmt.Sprintf("State(%d, Literal %q -> %d)", s.id, s.lo, s.out)
	case StateAnyChar:
		return fmt.Sprintf("State(%d, AnyChar -> %d)", s.id, s.out)
	case StateRange:
		return fmt.Sprintf("State(%d, Range [%d-%d] -> %d)", s.id, s.lo, s.hi, s.out)
	case StateEpsilon:
		return fmt.Sprintf("State(%d, Epsilon -> %d)", s.id, s.out)
	case StateSplit:
		return fmt.Sprintf("State(%d, Split -> [%d, %d])", s.id, s.out, s.out1)
	case StateFail:
		return fmt.Sprintf("State(%d, Fail)", s.id)
	case StateLineEnd:
		return fmt.Sprintf("State(%d, LineEnd -> %d)", s.id, s.out)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// NFA is a compiled pattern: a state arena, the entry state and the
// unique accepting state.
type NFA struct {
	states []State
	start  StateID
	match  StateID

	// allocs is the number of arena allocations during construction
	// (the initial arena plus each regrowth), reported by the
	// allocation statistics.
	allocs int
}

// Start returns the entry state of the NFA.
func (n *NFA) Start() StateID {
	return n.start
}

// MatchState returns the unique accepting state.
func (n *NFA) MatchState() StateID {
	return n.match
}

// State returns the state with the given ID, or nil if the ID is
// invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// States returns the total number of states in the NFA.
func (n *NFA) States() int {
	return len(n.states)
}

// Allocs returns the number of arena allocations it took to build the
// state graph.
func (n *NFA) Allocs() int {
	return n.allocs
}

// HeapBytes returns the memory held by the state arena.
func (n *NFA) HeapBytes() int {
	return cap(n.states) * stateBytes
}

// stateBytes is the arena cost of one State: id(4) + kind(1) + lo(1) +
// hi(1) + padding(1) + out(4) + out1(4).
const stateBytes = 16

// String returns a human-readable representation of the NFA.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, match: %d}", len(n.states), n.start, n.match)
}
