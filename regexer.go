// Package regexer is a byte-level regular-expression matcher built on
// a Thompson NFA.
//
// Patterns are compiled into a state graph and matched by a parallel
// simulator that advances every live state one input byte at a time,
// bounding work to O(states × input) with no backtracking.
//
// Supported syntax: literals, '.' (any byte), the quantifiers '*' '+'
// '?', alternation '|', character classes '[...]' and '[^...]' with
// ranges and escapes, '\' escaping, and '$' end-of-line anchoring as
// the last token of an alternative. A '^' at the start of an
// alternative pins it to the beginning of the line; otherwise patterns
// match anywhere within the input. '(' and ')' are ordinary literals:
// there is no grouping, capturing or counted repetition, and input is
// treated as a raw 8-bit byte stream.
//
// Basic usage:
//
//	re, err := regexer.Compile(`[a-z]+$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.PatternInLine("somebody saw nobody") // true
//
// Patterns made of exact literals (like "hello|world") are answered by
// a literal prefilter without running the automaton at all.
package regexer

import (
	"github.com/coregx/regexer/literal"
	"github.com/coregx/regexer/nfa"
	"github.com/coregx/regexer/prefilter"
)

// Regex is a compiled pattern together with its simulator.
//
// A Regex carries matcher state between Step calls and is therefore
// not safe for concurrent use; compile one per goroutine or guard it
// externally.
type Regex struct {
	pattern string
	nfa     *nfa.NFA
	sim     *nfa.Simulator
	pf      prefilter.Prefilter
}

// Compile compiles a pattern. It returns a *nfa.SyntaxError for
// malformed patterns (empty pattern, dangling escape, '|' with an
// empty side, unclosed or empty class, invalid class range).
func Compile(pattern string) (*Regex, error) {
	n, err := nfa.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{
		pattern: pattern,
		nfa:     n,
		sim:     nfa.NewSimulator(n),
		pf:      prefilter.NewBuilder(literal.Extract(pattern)).Build(),
	}, nil
}

// MustCompile compiles a pattern and panics if it fails. Useful for
// patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexer: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// Pattern returns the source pattern.
func (r *Regex) Pattern() string {
	return r.pattern
}

// States returns the number of states in the compiled automaton.
func (r *Regex) States() int {
	return r.nfa.States()
}

// Reset restores the initial closure so the matcher can consume a new
// line via Step.
func (r *Regex) Reset() {
	r.sim.Reset()
}

// Step advances the matcher by one input byte and reports whether the
// automaton is currently in its accepting state. Acceptance is sticky
// for the rest of the line. Step never resolves '$' anchors; use
// FinishLine or PatternInLine for that.
func (r *Regex) Step(b byte) bool {
	return r.sim.Step(b)
}

// FinishLine performs the end-of-line step that resolves '$' anchors
// and returns the final verdict for the line driven through Step.
func (r *Regex) FinishLine() bool {
	return r.sim.FinishLine()
}

// PatternInLine reports whether the pattern is found anywhere within
// line. It resets the matcher, so any state accumulated through Step
// is discarded.
func (r *Regex) PatternInLine(line string) bool {
	if r.pf != nil {
		// The prefilter may answer on its own, so reset here as well.
		r.sim.Reset()
		if r.pf.Find([]byte(line), 0) < 0 {
			return false
		}
		if r.pf.IsComplete() {
			return true
		}
	}
	return r.sim.PatternInLine(line)
}

// Match reports whether the pattern is found anywhere within b.
func (r *Regex) Match(b []byte) bool {
	return r.PatternInLine(string(b))
}

// Stats reports the allocation accounting of the compiled matcher.
type Stats struct {
	// Allocations is the number of backing allocations made for the
	// state arena, the simulator sets and the prefilter.
	Allocations int

	// AutomatonBytes is the memory held by the state arena alone.
	AutomatonBytes int

	// HeapBytes is the total memory held by the matcher.
	HeapBytes int
}

// Stats returns the allocation accounting of the compiled matcher.
func (r *Regex) Stats() Stats {
	// The simulator's three sparse sets take two slices each.
	allocs := r.nfa.Allocs() + 6
	heap := r.nfa.HeapBytes() + r.sim.HeapBytes()
	if r.pf != nil {
		allocs++
		heap += r.pf.HeapBytes()
	}
	return Stats{
		Allocations:    allocs,
		AutomatonBytes: r.nfa.HeapBytes(),
		HeapBytes:      heap,
	}
}
