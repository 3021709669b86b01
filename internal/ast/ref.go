package ast

import (
	"encoding/json"
	"fmt"
)

// Kind is the production an embedded value was placed in by the caller.
type Kind int

const (
	// KindPlain is an untagged value. It is accepted by every splice position.
	KindPlain Kind = iota
	KindSet
	KindID
	KindExpr
	KindSelector
	KindAtExpr
)

var kindNames = map[Kind]string{
	KindPlain:    "plain",
	KindSet:      "set",
	KindID:       "id",
	KindExpr:     "expr",
	KindSelector: "selector",
	KindAtExpr:   "at_expr",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindPlain, fmt.Errorf("unknown embedded kind %q", s)
}

// Ref is a reference to an embedded value spliced into the input.
//
// Value is opaque to the grammar. Printers render a string verbatim, a *Node as
// CSS, and anything else as a placeholder comment; the caller keeps the real
// values and substitutes them by ID.
type Ref struct {
	ID    int
	Kind  Kind
	Value any
}

// Accepts reports whether r may stand in for a production expecting k.
func (r *Ref) Accepts(k Kind) bool {
	return r != nil && (r.Kind == KindPlain || r.Kind == k)
}

type refJSON struct {
	Ref  int    `json:"ref" yaml:"ref"`
	Kind string `json:"kind" yaml:"kind"`
}

// MarshalJSON encodes the reference without its value, which may not be data.
func (r *Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(refJSON{Ref: r.ID, Kind: r.Kind.String()})
}

// MarshalYAML encodes the reference without its value.
func (r *Ref) MarshalYAML() (interface{}, error) {
	return refJSON{Ref: r.ID, Kind: r.Kind.String()}, nil
}
