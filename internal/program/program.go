// Package program is a minimal stand-in for the external "program
// store" collaborator internal/tokenizer and internal/detok assume but
// never implement themselves: something that keeps a BASIC program's
// lines in line-number order and hands them back for listing or
// running. Grounded on gmofishsauce-wut4's asm/types.go Assembler, whose
// append-then-resolve bookkeeping (fixups collected during a pass,
// labels looked up afterward) is the same "accumulate in a slice,
// look things up by key" shape applied here to line numbers instead of
// label addresses.
package program

import (
	"errors"
	"sort"

	"github.com/marioaugustorama/pcbasic/internal/token"
)

// ErrNoLineNumber is returned by Insert when line has no stored-line
// envelope (spec.md §3: a direct-mode line cannot be stored).
var ErrNoLineNumber = errors.New("program: line has no line number")

// StoredLine is one tokenised program line, the number split out of
// its envelope for fast ordered lookup.
type StoredLine struct {
	Num  int
	Body []byte
}

// Store keeps tokenised lines sorted by line number, the in-memory
// equivalent of the on-disk "stored program" spec.md §1 treats as an
// out-of-scope external collaborator.
type Store struct {
	lines []StoredLine
}

// NewStore returns an empty program store.
func NewStore() *Store {
	return &Store{}
}

// Insert decodes line's envelope and replaces-or-inserts it in sorted
// position. A zero-length Body (just the bare envelope with nothing
// after it) deletes the existing line at that number instead, matching
// the dialect's "type a bare line number to delete that line" editor
// convention.
func (s *Store) Insert(line []byte) error {
	if len(line) < 5 || line[0] != token.StoredLineMarker {
		return ErrNoLineNumber
	}
	num := int(line[3]) | int(line[4])<<8
	idx := sort.Search(len(s.lines), func(i int) bool { return s.lines[i].Num >= num })

	if len(line) == 5 {
		if idx < len(s.lines) && s.lines[idx].Num == num {
			s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
		}
		return nil
	}

	body := make([]byte, len(line))
	copy(body, line)
	entry := StoredLine{Num: num, Body: body}

	if idx < len(s.lines) && s.lines[idx].Num == num {
		s.lines[idx] = entry
		return nil
	}
	s.lines = append(s.lines, StoredLine{})
	copy(s.lines[idx+1:], s.lines[idx:])
	s.lines[idx] = entry
	return nil
}

// List returns the stored lines in ascending line-number order, the
// slice internal/detok walks to render LIST/LLIST output.
func (s *Store) List() []StoredLine {
	out := make([]StoredLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Get returns the stored line at num, if any.
func (s *Store) Get(num int) (StoredLine, bool) {
	idx := sort.Search(len(s.lines), func(i int) bool { return s.lines[i].Num >= num })
	if idx < len(s.lines) && s.lines[idx].Num == num {
		return s.lines[idx], true
	}
	return StoredLine{}, false
}

// Len reports how many lines are stored.
func (s *Store) Len() int { return len(s.lines) }
