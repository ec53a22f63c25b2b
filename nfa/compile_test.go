package nfa

import (
	"errors"
	"testing"
)

// TestCompile_StateCounts tests the fragment shapes through their state
// counts: the accepting state, the find-anywhere prefix (a Split plus
// its AnyChar loop) and the per-token fragments.
func TestCompile_StateCounts(t *testing.T) {
	tests := []struct {
		pattern string
		states  int
	}{
		{"a", 4},       // match + prefix split + any + literal
		{"^a", 3},      // match + epsilon head + literal
		{"ab", 5},      // one literal more
		{"a*", 5},      // split + literal
		{"a+", 5},      // literal + split
		{"a?", 6},      // merge + literal + split
		{".", 4},       // AnyChar instead of literal
		{"a|b", 8},     // two prefixed alternatives + top split
		{"[ab]", 8},    // match + prefix(2) + start + merge + range + split + fail
		{"[a-c]x", 9},  // class + one literal
		{"[ab]?", 7},   // '?' reroutes the cap, no fail state
		{"[ab]*", 9},   // fail cap + loop split
		{"a$", 5},      // literal + line-end anchor
		{"^", 2},       // match + epsilon head only
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("expected success, got error: %v", err)
			}
			if n.States() != tt.states {
				t.Errorf("States() = %d, want %d", n.States(), tt.states)
			}
		})
	}
}

// TestCompile_SingleMatchState tests the Thompson invariant: exactly
// one accepting state per compiled pattern.
func TestCompile_SingleMatchState(t *testing.T) {
	patterns := []string{"a", "a|b|c", "[a-z]+", "x*y?z+", "^a$", "hello|world"}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			n, err := Compile(pattern)
			if err != nil {
				t.Fatalf("expected success, got error: %v", err)
			}
			matches := 0
			for id := 0; id < n.States(); id++ {
				if n.State(StateID(id)).IsMatch() {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("found %d accepting states, want 1", matches)
			}
			if n.State(n.MatchState()) == nil || !n.State(n.MatchState()).IsMatch() {
				t.Error("MatchState() does not name the accepting state")
			}
		})
	}
}

// TestCompile_Wired tests that every non-terminal state has its primary
// successor wired, and Split states both.
func TestCompile_Wired(t *testing.T) {
	patterns := []string{"a*b+c?", "[^0-9]+$", "a|b", "(x)", ".at", "[]a]"}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			n, err := Compile(pattern)
			if err != nil {
				t.Fatalf("expected success, got error: %v", err)
			}
			for id := 0; id < n.States(); id++ {
				s := n.State(StateID(id))
				switch s.Kind() {
				case StateMatch, StateFail:
					// terminal
				case StateSplit:
					out, out1 := s.Split()
					if out == InvalidState || out1 == InvalidState {
						t.Errorf("%v has an unwired successor", s)
					}
				default:
					if s.Out() == InvalidState {
						t.Errorf("%v has an unwired successor", s)
					}
				}
			}
		})
	}
}

// TestCompile_Errors tests the syntax error taxonomy.
func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"", ErrEmptyPattern},
		{`ab\`, ErrDanglingEscape},
		{`\`, ErrDanglingEscape},
		{"|a", ErrEmptyAlternate},
		{"a|", ErrEmptyAlternate},
		{"a||b", ErrEmptyAlternate},
		{"[abc", ErrUnclosedClass},
		{"[", ErrUnclosedClass},
		{"[]", ErrUnclosedClass},
		{"[^", ErrUnclosedClass},
		{`[\`, ErrDanglingEscape},
		{"[b-a]", ErrInvalidClassRange},
		{"[a-a]", ErrInvalidClassRange},
		{"[^\x00-\xff]", ErrEmptyClass},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if err == nil {
				t.Fatal("expected error, got success")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("error %v is not a *SyntaxError", err)
			}
			if syntaxErr.Pattern != tt.pattern {
				t.Errorf("SyntaxError.Pattern = %q, want %q", syntaxErr.Pattern, tt.pattern)
			}
		})
	}
}

// TestCompile_ClassLiterals tests the class grammar corners: ']' as the
// first member, '-' without a right bound, escaped members.
func TestCompile_ClassLiterals(t *testing.T) {
	patterns := []string{"[]a]", "[a-]", "[-a]", `[\]]`, `[\^a]`, "[^]]"}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			if _, err := Compile(pattern); err != nil {
				t.Errorf("expected success, got error: %v", err)
			}
		})
	}
}

// TestCompile_MergedClassRanges tests that adjacent class entries
// collapse into a single Range state.
func TestCompile_MergedClassRanges(t *testing.T) {
	n, err := Compile("^[abc]")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	ranges := 0
	for id := 0; id < n.States(); id++ {
		s := n.State(StateID(id))
		if s.Kind() != StateRange {
			continue
		}
		ranges++
		if lo, hi := s.Bounds(); lo != 'a' || hi != 'c' {
			t.Errorf("Bounds() = (%q, %q), want ('a', 'c')", lo, hi)
		}
	}
	if ranges != 1 {
		t.Errorf("found %d Range states, want 1", ranges)
	}
}
