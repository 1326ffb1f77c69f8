// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"reflect"
	"strings"

	"jsouthworth.net/go/immutable/vector"
)

// ArrayNew creates a new array and returns its abstract representation
func ArrayNew() *Array {
	return arrayNew()
}

func arrayNew() *Array {
	return &Array{
		store: vector.Empty(),
	}
}

// ArrayWith creates an array and initializes it with the provided
// elements
func ArrayWith(elements ...interface{}) *Array {
	return ArrayNew().with(elements...)
}

// ArrayFrom creates an array and initializes it with the elements
// from the provided slice
func ArrayFrom(in interface{}) *Array {
	return ArrayNew().from(in)
}

// Array is a list container for Transis data. The arrays are
// immutable, the mutation methods return new structurally shared
// copies of the original array with the changes. This provides cheap
// copies of the array and preserves the original allowing it to be
// easily shared.
type Array struct {
	store *vector.Vector
}

// from converts a go slice to an Array.
func (arr *Array) from(ins interface{}) *Array {
	val := reflect.ValueOf(ins)
	vals := make([]*Value, val.Len())
	for i := 0; i < val.Len(); i++ {
		vals[i] = ValueNew(val.Index(i).Interface())
	}
	return &Array{
		store: vector.From(vals),
	}
}

func (arr *Array) with(elements ...interface{}) *Array {
	out := &Array{store: arr.store}
	out.store = out.store.Transform(
		func(store *vector.TVector) *vector.TVector {
			for _, elem := range elements {
				store = store.Append(ValueNew(elem))
			}
			return store
		})
	return out
}

// At returns the Value at the index's location or nil if it doesn't
// exist.
func (arr *Array) At(index int) *Value {
	if index >= arr.store.Length() || index < 0 {
		return nil
	}
	return arr.store.At(index).(*Value)
}

// Contains returns true if the index exists in the array.
func (arr *Array) Contains(index int) bool {
	return index < arr.store.Length() && index >= 0
}

// Find returns the value at the index or nil if it doesn't exist and
// whether the index was in the array.
func (arr *Array) Find(index int) (*Value, bool) {
	v, ok := arr.store.Find(index)
	if !ok {
		return nil, ok
	}
	return v.(*Value), ok
}

// Assoc associates a new value with the index. Indices beyond the
// current length are backfilled with the undefined value.
func (arr *Array) Assoc(index int, value interface{}) *Array {
	if index < 0 {
		return arr
	}
	if index >= arr.store.Length() {
		newStore := arr.store.Transform(
			func(store *vector.TVector) *vector.TVector {
				for i := store.Length(); i < index; i++ {
					store = store.Append(Undefined())
				}
				return store.Append(ValueNew(value))
			})
		return &Array{
			store: newStore,
		}
	}
	return &Array{
		store: arr.store.Assoc(index, ValueNew(value)),
	}
}

// Length returns the number of elements in the array.
func (arr *Array) Length() int {
	return arr.store.Length()
}

// Append adds a new value to the end of the array.
func (arr *Array) Append(value interface{}) *Array {
	return &Array{
		store: arr.store.Append(ValueNew(value)),
	}
}

// Delete removes an element at the supplied index from the array.
func (arr *Array) Delete(index int) *Array {
	return &Array{
		store: arr.store.Delete(index),
	}
}

// Range iterates over the array's elements. Range can take a set of
// functions matched by type. If the function returns a bool this is
// treated as a loop termination variable, if false the loop will
// terminate.
//
//	func(int, *Value) iterates over indices and values.
//	func(int, *Value) bool
//	func(int) iterates over only the indices
//	func(int) bool
//	func(*Value) iterates over only the values
//	func(*Value) bool
func (arr *Array) Range(fn interface{}) *Array {
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
	case func(int):
		fn = func(idx int, val interface{}) bool {
			f(idx)
			return true
		}
	case func(int) bool:
		fn = func(idx int, val interface{}) bool {
			return f(idx)
		}
	default:
		panic("invalid range function")
	}
	arr.store.Range(fn)
	return arr
}

// toNative produces a go native []interface{} from the array.
func (arr *Array) toNative() interface{} {
	out := make([]interface{}, 0, arr.Length())
	arr.Range(func(v *Value) {
		out = append(out, v.ToNative())
	})
	return out
}

// Equal implements equality for arrays. An array is equal to another
// array-kinded value if the values at each index are equal. Equality
// checks are linear with respect to the number of elements.
func (arr *Array) Equal(other interface{}) bool {
	return Equal(arr, other)
}

// String returns a string representation of the Array.
func (arr *Array) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	arr.Range(func(i int, v *Value) {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(v.String())
	})
	buf.WriteByte(']')
	return buf.String()
}
