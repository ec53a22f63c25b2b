// Package prefilter provides fast candidate rejection ahead of NFA
// simulation.
//
// A prefilter scans a line for literals extracted from the pattern.
// When none of the literals occurs, the line cannot match and the
// simulator is never run. When the extracted sequence is complete —
// the pattern is nothing but exact literals — the prefilter verdict is
// the match verdict and the automaton is bypassed entirely.
//
// Selection is automatic:
//   - a single literal uses substring search
//   - multiple literals build an Aho-Corasick automaton
//
// Prefilters only ever reject or pass through; matcher semantics are
// unchanged.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexer/literal"
)

// Prefilter finds candidate positions that may start or contain a
// match.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start,
	// or -1 if no candidate exists. A candidate is a position where one
	// of the extracted literals occurs; unless IsComplete reports true,
	// the caller must verify it with the full automaton.
	Find(haystack []byte, start int) int

	// IsComplete returns true if a candidate guarantees a full match,
	// letting the caller skip verification.
	IsComplete() bool

	// HeapBytes returns the memory held by the prefilter.
	HeapBytes() int
}

// Builder selects and constructs a prefilter for an extracted literal
// sequence.
type Builder struct {
	seq *literal.Seq
}

// NewBuilder creates a prefilter builder over the given sequence.
func NewBuilder(seq *literal.Seq) *Builder {
	return &Builder{seq: seq}
}

// Build returns the best prefilter for the sequence, or nil when the
// sequence offers nothing to scan for.
func (b *Builder) Build() Prefilter {
	if b.seq == nil || b.seq.IsEmpty() {
		return nil
	}
	if b.seq.Len() == 1 {
		return &Substring{
			needle:   b.seq.Get(0).Bytes,
			complete: b.seq.IsComplete(),
		}
	}

	ab := ahocorasick.NewBuilder()
	for i := 0; i < b.seq.Len(); i++ {
		ab.AddPattern(b.seq.Get(i).Bytes)
	}
	auto, err := ab.Build()
	if err != nil {
		return nil
	}

	heap := 0
	for i := 0; i < b.seq.Len(); i++ {
		heap += len(b.seq.Get(i).Bytes)
	}
	return &MultiLiteral{
		auto:     auto,
		complete: b.seq.IsComplete(),
		heap:     heap,
	}
}

// Substring scans for a single literal.
type Substring struct {
	needle   []byte
	complete bool
}

// Find implements Prefilter.
func (p *Substring) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[start:], p.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.
func (p *Substring) IsComplete() bool {
	return p.complete
}

// HeapBytes implements Prefilter.
func (p *Substring) HeapBytes() int {
	return len(p.needle)
}

// MultiLiteral scans for any of several literals with an Aho-Corasick
// automaton.
type MultiLiteral struct {
	auto     *ahocorasick.Automaton
	complete bool
	heap     int
}

// Find implements Prefilter.
func (p *MultiLiteral) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.
func (p *MultiLiteral) IsComplete() bool {
	return p.complete
}

// HeapBytes implements Prefilter. The automaton does not expose its
// transition table size, so this reports the pattern bytes it was
// built from.
func (p *MultiLiteral) HeapBytes() int {
	return p.heap
}
