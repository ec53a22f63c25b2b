package nfa

// Builder constructs NFAs incrementally over an append-only state
// arena. The compiler drives it with forward references: states are
// created with InvalidState targets and wired up via Patch once the
// target exists.
type Builder struct {
	states []State
	allocs int
}

// NewBuilder creates a new NFA builder with default capacity.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with the given
// initial arena capacity.
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		allocs: 1,
	}
}

func (b *Builder) add(s State) StateID {
	id := StateID(len(b.states))
	s.id = id
	if cap(b.states) == len(b.states) {
		// The append below regrows the arena.
		b.allocs++
	}
	b.states = append(b.states, s)
	return id
}

// AddMatch adds the accepting state and returns its ID.
func (b *Builder) AddMatch() StateID {
	return b.add(State{kind: StateMatch, out: InvalidState, out1: InvalidState})
}

// AddLiteral adds a state consuming exactly the byte c.
func (b *Builder) AddLiteral(c byte, next StateID) StateID {
	return b.add(State{kind: StateLiteral, lo: c, out: next, out1: InvalidState})
}

// AddAnyChar adds a state consuming any single byte.
func (b *Builder) AddAnyChar(next StateID) StateID {
	return b.add(State{kind: StateAnyChar, out: next, out1: InvalidState})
}

// AddRange adds a state consuming any byte in the inclusive interval
// [lo, hi].
func (b *Builder) AddRange(lo, hi byte, next StateID) StateID {
	return b.add(State{kind: StateRange, lo: lo, hi: hi, out: next, out1: InvalidState})
}

// AddEpsilon adds a state with a single non-consuming transition.
func (b *Builder) AddEpsilon(next StateID) StateID {
	return b.add(State{kind: StateEpsilon, out: next, out1: InvalidState})
}

// AddSplit adds a fork: out is the skip path, out1 the consume-or-loop
// path.
func (b *Builder) AddSplit(out, out1 StateID) StateID {
	return b.add(State{kind: StateSplit, out: out, out1: out1})
}

// AddFail adds a dead state with no transitions.
func (b *Builder) AddFail() StateID {
	return b.add(State{kind: StateFail, out: InvalidState, out1: InvalidState})
}

// AddLineEnd adds an end-of-line anchor state.
func (b *Builder) AddLineEnd(next StateID) StateID {
	return b.add(State{kind: StateLineEnd, out: next, out1: InvalidState})
}

// setEdge wires one outgoing edge unconditionally. Compilation calls it
// for states it just created, so the id is valid by construction.
func (b *Builder) setEdge(id StateID, secondary bool, target StateID) {
	if secondary {
		b.states[id].out1 = target
	} else {
		b.states[id].out = target
	}
}

// Patch wires the primary successor of a state. This handles forward
// references during compilation (loops, alternation tails).
func (b *Builder) Patch(id, target StateID) error {
	if int(id) >= len(b.states) {
		return &BuildError{Message: "state ID out of bounds", StateID: id}
	}
	switch b.states[id].kind {
	case StateMatch, StateFail:
		return &BuildError{Message: "cannot patch terminal state", StateID: id}
	}
	b.states[id].out = target
	return nil
}

// PatchSplit wires the secondary successor of a Split state.
func (b *Builder) PatchSplit(id, target StateID) error {
	if int(id) >= len(b.states) {
		return &BuildError{Message: "state ID out of bounds", StateID: id}
	}
	if b.states[id].kind != StateSplit {
		return &BuildError{Message: "secondary edge requires a Split state", StateID: id}
	}
	b.states[id].out1 = target
	return nil
}

// States returns the current number of states in the arena.
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the graph is well-formed: the start is in
// bounds, every non-terminal state has its primary successor wired,
// Split states have both successors wired, and exactly one accepting
// state exists.
func (b *Builder) Validate(start StateID) error {
	if start == InvalidState || int(start) >= len(b.states) {
		return &BuildError{Message: "start state out of bounds", StateID: start}
	}

	matches := 0
	for i := range b.states {
		s := &b.states[i]
		switch s.kind {
		case StateMatch:
			matches++
		case StateFail:
			// terminal, nothing to wire
		case StateSplit:
			if s.out == InvalidState || int(s.out) >= len(b.states) ||
				s.out1 == InvalidState || int(s.out1) >= len(b.states) {
				return &BuildError{Message: "split successor unwired", StateID: s.id}
			}
		default:
			if s.out == InvalidState || int(s.out) >= len(b.states) {
				return &BuildError{Message: "successor unwired", StateID: s.id}
			}
		}
	}
	if matches != 1 {
		return &BuildError{
			Message: "compiled pattern must have exactly one accepting state",
			StateID: InvalidState,
		}
	}
	return nil
}

// Build finalizes and returns the constructed NFA with the given entry
// state.
func (b *Builder) Build(start StateID) (*NFA, error) {
	if err := b.Validate(start); err != nil {
		return nil, err
	}

	match := InvalidState
	for i := range b.states {
		if b.states[i].kind == StateMatch {
			match = b.states[i].id
			break
		}
	}

	return &NFA{
		states: b.states,
		start:  start,
		match:  match,
		allocs: b.allocs,
	}, nil
}
