// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"reflect"
	"strconv"
	"strings"

	"jsouthworth.net/go/immutable/vector"
)

// calleeKey is the legacy marker member identifying a
// captured-arguments shape on keyed values.
const calleeKey = "callee"

// ParamsOf captures a variadic call's arguments as an ordered
// parameter list.
func ParamsOf(elements ...interface{}) *Params {
	return paramsFrom(elements, nil)
}

// ParamsFrom creates a parameter list from the elements of the
// provided slice.
func ParamsFrom(in interface{}) *Params {
	val := reflect.ValueOf(in)
	elements := make([]interface{}, val.Len())
	for i := 0; i < val.Len(); i++ {
		elements[i] = val.Index(i).Interface()
	}
	return paramsFrom(elements, nil)
}

func paramsFrom(elements []interface{}, callee interface{}) *Params {
	vals := make([]*Value, len(elements))
	for i, elem := range elements {
		vals[i] = ValueNew(elem)
	}
	return &Params{
		store:  vector.From(vals),
		callee: callee,
	}
}

// paramsFromLegacy adopts the legacy keyed captured-arguments shape:
// consecutive integer-indexed members become the elements and the
// callee member is retained. Any other members are dropped, they never
// participate in comparison.
func paramsFromLegacy(in map[string]interface{}) *Params {
	var elements []interface{}
	for i := 0; ; i++ {
		elem, ok := in[strconv.Itoa(i)]
		if !ok {
			break
		}
		elements = append(elements, elem)
	}
	return paramsFrom(elements, in[calleeKey])
}

// Params is an ordered parameter list, the container produced by
// variadic call capture. It is array-like and immutable but carries
// its own canonical kind: a parameter list never equals an array.
type Params struct {
	store  *vector.Vector
	callee interface{}
}

// At returns the Value at the index's location or nil if it doesn't
// exist.
func (ps *Params) At(index int) *Value {
	if index >= ps.store.Length() || index < 0 {
		return nil
	}
	return ps.store.At(index).(*Value)
}

// Find returns the value at the index or nil if it doesn't exist and
// whether the index was in the list.
func (ps *Params) Find(index int) (*Value, bool) {
	v, ok := ps.store.Find(index)
	if !ok {
		return nil, ok
	}
	return v.(*Value), ok
}

// Length returns the number of captured parameters.
func (ps *Params) Length() int {
	return ps.store.Length()
}

// Callee returns the captured callee slot, or nil when none was
// captured.
func (ps *Params) Callee() interface{} {
	return ps.callee
}

// Range iterates over the captured parameters. Range can take a set
// of functions matched by type, as with Array.Range.
//
//	func(int, *Value) iterates over indices and values.
//	func(int, *Value) bool
//	func(*Value) iterates over only the values
//	func(*Value) bool
func (ps *Params) Range(fn interface{}) *Params {
	switch f := fn.(type) {
	case func(int, *Value):
	case func(int, *Value) bool:
	case func(*Value):
		fn = func(idx int, val interface{}) bool {
			f(val.(*Value))
			return true
		}
	case func(*Value) bool:
		fn = func(idx int, val interface{}) bool {
			return f(val.(*Value))
		}
	default:
		panic("invalid range function")
	}
	ps.store.Range(fn)
	return ps
}

// ToArray reads the parameter list as an Array. The result shares
// structure with the list.
func (ps *Params) ToArray() *Array {
	return &Array{
		store: ps.store,
	}
}

// toNative produces a go native []interface{} from the list.
func (ps *Params) toNative() interface{} {
	out := make([]interface{}, 0, ps.Length())
	ps.Range(func(v *Value) {
		out = append(out, v.ToNative())
	})
	return out
}

// Equal implements equality for parameter lists.
func (ps *Params) Equal(other interface{}) bool {
	return Equal(ps, other)
}

// String returns a string representation of the Params.
func (ps *Params) String() string {
	var buf strings.Builder
	buf.WriteString("params(")
	ps.Range(func(i int, v *Value) {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(v.String())
	})
	buf.WriteByte(')')
	return buf.String()
}
