package comb

import (
	"errors"

	"github.com/yacobolo/tcss/internal/ast"
	"github.com/yacobolo/tcss/internal/cursor"
)

// ErrTooDeep is reported when productions nest deeper than the state allows.
var ErrTooDeep = errors.New("nesting too deep")

// DefaultMaxDepth bounds production nesting when no limit is configured.
const DefaultMaxDepth = 512

type memoKey struct {
	pos cursor.Pos
	tag ast.Tag
}

type memoEntry struct {
	res Result
	ok  bool
}

// State is the per-parse bookkeeping shared by every production of one parse.
// It must not be shared between concurrent parses.
type State struct {
	maxDepth int
	depth    int
	err      error
	errAt    int
	memo     map[memoKey]memoEntry
}

// NewState returns parse state with a nesting limit and optional memoization
// of node results keyed by (position, production).
func NewState(maxDepth int, memoize bool) *State {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	st := &State{maxDepth: maxDepth}
	if memoize {
		st.memo = make(map[memoKey]memoEntry)
	}
	return st
}

// Err returns the error that aborted the parse, if any.
func (st *State) Err() error { return st.err }

// ErrOffset returns the text offset where the parse was aborted.
func (st *State) ErrOffset() int { return st.errAt }

func (st *State) enter(c cursor.Cursor) bool {
	if st.err != nil {
		return false
	}
	if st.depth >= st.maxDepth {
		st.err = ErrTooDeep
		st.errAt = c.Offset()
		return false
	}
	st.depth++
	return true
}

func (st *State) leave() { st.depth-- }
