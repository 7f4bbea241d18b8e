package decoded

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DecodeError is the failure payload of a Decoded value. It is implemented
// only by TypeMismatch, MissingKey, Custom and *Multiple.
type DecodeError interface {
	error
	fmt.Stringer
	decodeError()
}

// TypeMismatch reports that the value at a location had the wrong shape.
type TypeMismatch struct {
	Expected string
	Actual   string
}

// MissingKey reports that a required key, field or index was absent.
type MissingKey struct {
	Key string
}

// Custom carries a caller-supplied, non-structural failure.
type Custom struct {
	Message string
}

// Multiple holds co-occurring failures in composition order. Only NewMultiple,
// Combine and Join build valid values; a zero Multiple or a nil *Multiple
// renders as Multiple() but is rejected by Failed.
type Multiple struct {
	errs []DecodeError
}

func (TypeMismatch) decodeError() {}
func (MissingKey) decodeError()   {}
func (Custom) decodeError()       {}
func (*Multiple) decodeError()    {}

func (e TypeMismatch) String() string {
	return "TypeMismatch(Expected " + e.Expected + ", got " + e.Actual + ")"
}
func (e MissingKey) String() string { return "MissingKey(" + e.Key + ")" }
func (e Custom) String() string     { return "Custom(" + e.Message + ")" }

func (e *Multiple) String() string {
	b := &strings.Builder{}
	b.WriteString("Multiple(")
	for i, c := range e.list() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (e TypeMismatch) Error() string { return e.String() }
func (e MissingKey) Error() string   { return e.String() }
func (e Custom) Error() string       { return e.String() }
func (e *Multiple) Error() string    { return e.String() }

// NewMultiple builds a Multiple from errs, skipping nil entries. It returns
// nil when no non-nil error remains. Nested Multiples are kept as they are.
func NewMultiple(errs ...DecodeError) DecodeError {
	out := make([]DecodeError, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &Multiple{errs: out}
}

func (e *Multiple) list() []DecodeError {
	if e == nil {
		return nil
	}
	return e.errs
}

// isEmpty treats nil, a nil *Multiple and an empty Multiple alike.
func isEmpty(e DecodeError) bool {
	if e == nil {
		return true
	}
	m, ok := e.(*Multiple)
	return ok && m.Len() == 0
}

// Errors returns a copy of the contained errors.
func (e *Multiple) Errors() []DecodeError { return slices.Clone(e.list()) }

// Len returns the number of direct children.
func (e *Multiple) Len() int {
	if e == nil {
		return 0
	}
	return len(e.errs)
}

// Unwrap exposes the children to errors.Is and errors.As.
func (e *Multiple) Unwrap() []error {
	out := make([]error, e.Len())
	for i, c := range e.list() {
		out[i] = c
	}
	return out
}

// Is reports structural equality so errors.Is matches an equal Multiple.
func (e *Multiple) Is(target error) bool {
	t, ok := target.(DecodeError)
	return ok && Equal(e, t)
}

// Combine merges two failures, preserving both. Element order is kept left to
// right:
//
//	Multiple(es) + b  -> Multiple(es..., b)   (b appended as one element, even if it is a Multiple)
//	a + Multiple(es)  -> Multiple(a, es...)
//	a + b             -> Multiple(a, b)
//
// nil is the identity on either side.
func Combine(a, b DecodeError) DecodeError {
	switch {
	case isEmpty(a):
		return b
	case isEmpty(b):
		return a
	}
	if ma, ok := a.(*Multiple); ok {
		out := make([]DecodeError, 0, len(ma.list())+1)
		out = append(out, ma.list()...)
		return &Multiple{errs: append(out, b)}
	}
	if mb, ok := b.(*Multiple); ok {
		out := make([]DecodeError, 0, len(mb.list())+1)
		out = append(out, a)
		return &Multiple{errs: append(out, mb.list()...)}
	}
	return &Multiple{errs: []DecodeError{a, b}}
}

// Join folds errs left to right with Combine, skipping nils. It returns nil
// for no errors and the error itself for exactly one.
func Join(errs ...DecodeError) DecodeError {
	var acc DecodeError
	for _, e := range errs {
		acc = Combine(acc, e)
	}
	return acc
}

// Leaves returns the non-Multiple errors inside e in depth-first order.
func Leaves(e DecodeError) []DecodeError {
	if e == nil {
		return nil
	}
	var out []DecodeError
	var walk func(DecodeError)
	walk = func(e DecodeError) {
		if m, ok := e.(*Multiple); ok {
			for _, c := range m.list() {
				walk(c)
			}
			return
		}
		out = append(out, e)
	}
	walk(e)
	return out
}

// Equal reports structural equality. Multiple compares element-wise and is
// order-sensitive.
func Equal(a, b DecodeError) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case TypeMismatch:
		y, ok := b.(TypeMismatch)
		return ok && x == y
	case MissingKey:
		y, ok := b.(MissingKey)
		return ok && x == y
	case Custom:
		y, ok := b.(Custom)
		return ok && x == y
	case *Multiple:
		y, ok := b.(*Multiple)
		if !ok {
			return false
		}
		return slices.EqualFunc(x.list(), y.list(), Equal)
	}
	return false
}

const (
	_tagTypeMismatch byte = iota + 1
	_tagMissingKey
	_tagCustom
	_tagMultiple
)

// Hash returns a 64-bit hash consistent with Equal. Multiple hashes depend on
// element order.
func Hash(e DecodeError) uint64 {
	d := xxhash.New()
	hashInto(d, e)
	return d.Sum64()
}

func hashInto(d *xxhash.Digest, e DecodeError) {
	var buf [8]byte
	writeString := func(s string) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(s)
	}
	switch x := e.(type) {
	case nil:
		_, _ = d.Write([]byte{0})
	case TypeMismatch:
		_, _ = d.Write([]byte{_tagTypeMismatch})
		writeString(x.Expected)
		writeString(x.Actual)
	case MissingKey:
		_, _ = d.Write([]byte{_tagMissingKey})
		writeString(x.Key)
	case Custom:
		_, _ = d.Write([]byte{_tagCustom})
		writeString(x.Message)
	case *Multiple:
		_, _ = d.Write([]byte{_tagMultiple})
		binary.LittleEndian.PutUint64(buf[:], uint64(x.Len()))
		_, _ = d.Write(buf[:])
		for _, c := range x.list() {
			hashInto(d, c)
		}
	}
}
