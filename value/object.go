// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"fmt"
	"sort"
	"strings"

	"jsouthworth.net/go/immutable/hashmap"
)

// ObjectNew creates a new object.
func ObjectNew() *Object {
	return objectNew()
}

func objectNew() *Object {
	return &Object{
		store: hashmap.Empty(),
	}
}

// ObjectWith creates a new object and then populates it with the
// supplied pairs
func ObjectWith(pairs ...Pair) *Object {
	return ObjectNew().with(pairs...)
}

// ObjectFrom creates a new object and then populates it with the data
// from the supplied map
func ObjectFrom(in map[string]interface{}) *Object {
	return ObjectNew().from(in)
}

// PairNew creates a new pair
func PairNew(key string, value interface{}) Pair {
	return Pair{key: key, value: ValueNew(value)}
}

// Pair is a key/value pair. These are representations of the members
// of Objects.
type Pair struct {
	key   string
	value *Value
}

// Key returns the key.
func (p Pair) Key() string { return p.key }

// Value returns the value.
func (p Pair) Value() *Value { return p.value }

// String returns a string representation of the Pair.
func (p Pair) String() string { return fmt.Sprintf("[%v %v]", p.key, p.value) }

// Equal implements equality between Pairs.
func (p Pair) Equal(other interface{}) bool {
	op, isPair := other.(Pair)
	if !isPair {
		return false
	}
	return op.key == p.key && Equal(op.value, p.value)
}

// Object is a plain keyed mapping of Transis data. These objects are
// immutable, the mutation methods return a structurally shared copy of
// the object with the required changes. This provides cheap copies of
// the object and preserves the original allowing it to be easily
// shared.
type Object struct {
	store *hashmap.Map
}

// from converts a native go map to an Object.
func (obj *Object) from(in map[string]interface{}) *Object {
	out := &Object{store: obj.store}
	out.store = out.store.Transform(
		func(store *hashmap.TMap) *hashmap.TMap {
			for k, v := range in {
				store = store.Assoc(k, ValueNew(v))
			}
			return store
		})
	return out
}

func (obj *Object) with(pairs ...Pair) *Object {
	out := &Object{store: obj.store}
	out.store = out.store.Transform(
		func(store *hashmap.TMap) *hashmap.TMap {
			for _, pair := range pairs {
				store = store.Assoc(pair.key, pair.value)
			}
			return store
		})
	return out
}

// Range iterates over the object's members. Range can take a set of
// functions matched by type. If the function returns a bool this is
// treated as a loop termination variable, if false the loop will
// terminate.
//
//	func(Pair) iterates over Pairs
//	func(Pair) bool, called with a Pair, terminates the loop on false.
//	func(string, *Value) iterates over keys and values.
//	func(string, *Value) bool
//	func(string) iterates over only the keys
//	func(string) bool
//	func(*Value) iterates over only the values
//	func(*Value) bool
func (obj *Object) Range(fn interface{}) *Object {
	switch f := fn.(type) {
	case func(Pair):
		fn = func(e hashmap.Entry) bool {
			f(PairNew(e.Key().(string), e.Value()))
			return true
		}
	case func(Pair) bool:
		fn = func(e hashmap.Entry) bool {
			return f(PairNew(e.Key().(string), e.Value()))
		}
	case func(string, *Value):
		fn = func(e hashmap.Entry) bool {
			f(e.Key().(string), e.Value().(*Value))
			return true
		}
	case func(string, *Value) bool:
		fn = func(e hashmap.Entry) bool {
			return f(e.Key().(string), e.Value().(*Value))
		}
	case func(*Value):
		fn = func(e hashmap.Entry) bool {
			f(e.Value().(*Value))
			return true
		}
	case func(*Value) bool:
		fn = func(e hashmap.Entry) bool {
			return f(e.Value().(*Value))
		}
	case func(string):
		fn = func(e hashmap.Entry) bool {
			f(e.Key().(string))
			return true
		}
	case func(string) bool:
		fn = func(e hashmap.Entry) bool {
			return f(e.Key().(string))
		}
	default:
		panic("invalid range function")
	}
	obj.store.Range(fn)
	return obj
}

// At returns the Value at the key's location or nil if it doesn't
// exist.
func (obj *Object) At(key string) *Value {
	out, ok := obj.store.Find(key)
	if !ok {
		return nil
	}
	return out.(*Value)
}

// Contains returns true if the key exists in the object.
func (obj *Object) Contains(key string) bool {
	return obj.store.Contains(key)
}

// Find returns the value at the key or nil if it doesn't exist and
// whether the key was in the object.
func (obj *Object) Find(key string) (*Value, bool) {
	out, ok := obj.store.Find(key)
	if !ok {
		return nil, ok
	}
	return out.(*Value), ok
}

// Assoc associates a new value with the key.
func (obj *Object) Assoc(key string, value interface{}) *Object {
	new := obj.store.Assoc(key, ValueNew(value))
	if new == obj.store {
		return obj
	}
	return &Object{
		store: new,
	}
}

// Length returns the number of members in the object.
func (obj *Object) Length() int {
	return obj.store.Length()
}

// Delete removes a key from the object.
func (obj *Object) Delete(key string) *Object {
	new := obj.store.Delete(key)
	if new == obj.store {
		return obj
	}
	return &Object{
		store: new,
	}
}

// Keys returns the object's keys in sorted order.
func (obj *Object) Keys() []string {
	out := make([]string, 0, obj.Length())
	obj.Range(func(key string) {
		out = append(out, key)
	})
	sort.Strings(out)
	return out
}

// toNative produces a go native map[string]interface{} from the
// object.
func (obj *Object) toNative() interface{} {
	out := make(map[string]interface{})
	obj.Range(func(assoc Pair) {
		out[assoc.Key()] = assoc.Value().ToNative()
	})
	return out
}

// Equal implements equality for objects. An object is equal to another
// object-kinded value if they hold the same set of keys and the values
// under each key are equal. Equality checks are linear with respect to
// the number of keys.
func (obj *Object) Equal(other interface{}) bool {
	return Equal(obj, other)
}

// String returns a string representation of the Object.
func (obj *Object) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, k := range obj.Keys() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(k)
		buf.WriteString(": ")
		buf.WriteString(obj.At(k).String())
	}
	buf.WriteByte('}')
	return buf.String()
}
