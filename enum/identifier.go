package enum

import (
	"fmt"

	"github.com/sculpt-web/sculpt"
)

// Identifier names an enumeration entry at an API boundary, either by its
// raw value-column entry or by its id label. JSON and form decoders that
// must accept "1" and "PUBLISHED" interchangeably construct one with Value
// or Label (or Coerce) and hand it to Resolve or GetByID.
//
// The interface is sealed; Label and Value are the only implementations.
type Identifier interface {
	ident()
}

type labelIdent string

func (labelIdent) ident() {}

type valueIdent struct {
	v any
}

func (valueIdent) ident() {}

// Label identifies an entry by its id-column label.
func Label(s string) Identifier {
	return labelIdent(s)
}

// Value identifies an entry by its raw value-column entry.
func Value(v any) Identifier {
	return valueIdent{v: v}
}

// Coerce adapts an untyped decoded value into an Identifier: strings are
// assumed to be labels, everything else a raw value. This is the one place
// the original duck-typed "string means label" convention survives; typed
// callers should construct Label or Value directly.
func Coerce(v any) Identifier {
	if s, ok := v.(string); ok {
		return Label(s)
	}
	return Value(v)
}

// Resolve maps an Identifier to its value-column entry.
//
// A Label is looked up in the id column and resolved to that row's value,
// failing with sculpt.ErrNotFound when no such label exists. A Value is
// returned unchanged with NO membership check: values outside the
// enumeration pass straight through. That permissive behavior is part of
// the contract (decoders get back whatever they were given); follow with
// Get if membership matters.
func (e *Enumeration) Resolve(id Identifier) (any, error) {
	switch t := id.(type) {
	case labelIdent:
		row, err := e.Get(ColumnID, string(t))
		if err != nil {
			return nil, err
		}
		return row.Value(ColumnValue), nil
	case valueIdent:
		return t.v, nil
	default:
		return nil, sculpt.NewInternalError("enum.Resolve",
			fmt.Errorf("unrecognized identifier type %T", id))
	}
}

// GetByID returns the full row for an Identifier: the identifier is
// resolved to its raw value first, then looked up in the value column.
// Because Resolve does not validate raw values, a Value identifier outside
// the enumeration fails here with sculpt.ErrNotFound.
func (e *Enumeration) GetByID(id Identifier) (Row, error) {
	v, err := e.Resolve(id)
	if err != nil {
		return Row{}, err
	}
	return e.Get(ColumnValue, v)
}
