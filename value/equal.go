// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"reflect"
	"regexp"
	"strconv"
	"time"

	"jsouthworth.net/go/try"
)

// Equaler is the comparison capability. A value that implements it owns
// its own equality; the structural algorithm is never applied to it.
// Implementations must be total over any argument type and return false
// for incomparable arguments instead of failing.
type Equaler interface {
	Equal(other interface{}) bool
}

// Equal reports deep structural equality between two arbitrary values.
// It is total; no input, malformed, foreign, or cyclic, makes it fail.
// Identical references are equal; a value implementing Equaler is asked
// for its own answer (from the first operand's side only); values of
// differing kinds are unequal; otherwise a per-kind rule applies, with
// arrays, params, and objects compared element-wise through a recursion
// guard so that cyclic graphs converge instead of recursing forever.
// Every call owns its guard, concurrent comparisons never interfere.
func Equal(a, b interface{}) bool {
	return equal(a, b, &visits{})
}

func equal(a, b interface{}, vs *visits) bool {
	if same(a, b) {
		return true
	}
	if eq, ok := delegateOf(a); ok {
		return invokeDelegate(eq, b)
	}
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindBoolean:
		ab, aok := unwrap(a).(bool)
		bb, bok := unwrap(b).(bool)
		return aok && bok && ab == bb
	case KindString:
		as, aok := stringOf(unwrap(a))
		bs, bok := stringOf(unwrap(b))
		return aok && bok && as == bs
	case KindNumber:
		af, aok := numberOf(unwrap(a))
		bf, bok := numberOf(unwrap(b))
		return aok && bok && af == bf
	case KindDate:
		at, aok := dateOf(unwrap(a))
		bt, bok := dateOf(unwrap(b))
		return aok && bok && at.Equal(bt)
	case KindRegexp:
		ar, aok := patternOf(unwrap(a))
		br, bok := patternOf(unwrap(b))
		return aok && bok &&
			ar.source == br.source && ar.flags == br.flags
	case KindArray, KindParams:
		return equalSequences(a, b, vs)
	case KindObject:
		return equalObjects(a, b, vs)
	case KindNull:
		// Only the untyped nil datum, boxed or not. A typed nil
		// pointer classifies null but keeps its own identity.
		return unwrap(a) == nil && unwrap(b) == nil
	case KindUndefined:
		// The sentinel is a singleton; two undefined data are the
		// same datum even when the boxes differ.
		return true
	}
	// nan, function, unknown: anything the identity short circuit did
	// not resolve is unequal.
	return false
}

// same reports reference identity, the first short circuit of the
// engine. Comparable non-reference values fall back to go's native
// equality, which correctly leaves the not-a-number sentinel unequal to
// itself.
func same(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	case reflect.Ptr, reflect.Map, reflect.Func,
		reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	}
	if ra.Type() != rb.Type() || !ra.Type().Comparable() {
		return false
	}
	return a == b
}

// delegateOf returns the Equaler capability of a value. The package's
// own types are dispatched structurally and never delegated to, the
// engine would otherwise re-enter itself through their Equal methods.
func delegateOf(v interface{}) (Equaler, bool) {
	switch v.(type) {
	case *Value, *Array, *Params, *Object, *Regexp:
		return nil, false
	}
	eq, ok := v.(Equaler)
	return eq, ok
}

// invokeDelegate runs a foreign Equal method under try so a panicking
// delegate degrades to false instead of breaking the engine's totality.
func invokeDelegate(eq Equaler, other interface{}) bool {
	res, err := try.Apply(func() bool { return eq.Equal(other) })
	if err != nil {
		return false
	}
	out, ok := res.(bool)
	return ok && out
}

// unwrap strips the Value box off a datum.
func unwrap(v interface{}) interface{} {
	if val, boxed := v.(*Value); boxed {
		if val == nil {
			return nil
		}
		return val.data
	}
	return v
}

func stringOf(v interface{}) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// numberOf reduces any numeric representation to the model's single
// logical number type.
func numberOf(v interface{}) (float64, bool) {
	switch d := v.(type) {
	case float64:
		return d, true
	case float32:
		return float64(d), true
	case int:
		return float64(d), true
	case int64:
		return float64(d), true
	case uint64:
		return float64(d), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func dateOf(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case *time.Time:
		if d != nil {
			return *d, true
		}
	}
	return time.Time{}, false
}

// patternOf views any pattern-kinded datum as a *Regexp. A stdlib
// compiled pattern carries its canonical source and an empty flag set.
func patternOf(v interface{}) (*Regexp, bool) {
	switch d := v.(type) {
	case *Regexp:
		if d != nil {
			return d, true
		}
	case *regexp.Regexp:
		if d != nil {
			return &Regexp{source: d.String()}, true
		}
	}
	return nil, false
}

// visits is the recursion guard: the ordered set of identity pairs that
// ancestor frames of the current comparison are already working on. One
// is allocated per top-level Equal call and threaded through the
// recursive comparisons, never shared across calls.
type visits struct {
	pairs []visitPair
}

type visitPair struct {
	a, b uintptr
}

func (vs *visits) seen(a, b uintptr) bool {
	for _, p := range vs.pairs {
		if p.a == a && p.b == b {
			return true
		}
	}
	return false
}

func (vs *visits) push(a, b uintptr) {
	vs.pairs = append(vs.pairs, visitPair{a: a, b: b})
}

func (vs *visits) pop() {
	vs.pairs = vs.pairs[:len(vs.pairs)-1]
}

// ref returns the identity token of a composite value used as half of a
// guard pair. Boxes are transparent; values without a reference yield 0.
func ref(v interface{}) uintptr {
	rv := reflect.ValueOf(unwrap(v))
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.Pointer()
	}
	return 0
}

func equalSequences(a, b interface{}, vs *visits) bool {
	as, aok := sequenceOf(a)
	bs, bok := sequenceOf(b)
	if !aok || !bok || as.len() != bs.len() {
		return false
	}
	// values without a reference cannot participate in a cycle and
	// never enter the guard
	ra, rb := ref(a), ref(b)
	if ra != 0 && rb != 0 {
		if vs.seen(ra, rb) {
			return true
		}
		vs.push(ra, rb)
		defer vs.pop()
	}
	for i := 0; i < as.len(); i++ {
		if !equal(as.at(i), bs.at(i), vs) {
			return false
		}
	}
	return true
}

func equalObjects(a, b interface{}, vs *visits) bool {
	am, aok := mappingOf(a)
	bm, bok := mappingOf(b)
	if !aok || !bok || am.len() != bm.len() {
		return false
	}
	ra, rb := ref(a), ref(b)
	if ra != 0 && rb != 0 {
		if vs.seen(ra, rb) {
			return true
		}
		vs.push(ra, rb)
		defer vs.pop()
	}
	out := true
	am.each(func(k, v interface{}) bool {
		bv, ok := bm.lookup(k)
		if !ok || !equal(v, bv, vs) {
			out = false
			return false
		}
		return true
	})
	return out
}

// sequence is the engine's uniform view over the integer-indexed
// elements of any list-like representation.
type sequence interface {
	len() int
	at(i int) interface{}
}

func sequenceOf(v interface{}) (sequence, bool) {
	switch d := unwrap(v).(type) {
	case *Array:
		return vectorSeq{store: d.store}, true
	case *Params:
		return vectorSeq{store: d.store}, true
	case []interface{}:
		return sliceSeq(d), true
	case map[string]interface{}:
		// The legacy captured-arguments shape: only the integer
		// indexed members participate in comparison.
		if _, legacy := d[calleeKey]; legacy {
			return legacySeq(d), true
		}
	default:
		rv := reflect.ValueOf(unwrap(v))
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			return reflectSeq{v: rv}, true
		}
	}
	return nil, false
}

type vectorSeq struct {
	store interface {
		Length() int
		At(i int) interface{}
	}
}

func (s vectorSeq) len() int             { return s.store.Length() }
func (s vectorSeq) at(i int) interface{} { return s.store.At(i) }

type sliceSeq []interface{}

func (s sliceSeq) len() int             { return len(s) }
func (s sliceSeq) at(i int) interface{} { return s[i] }

type reflectSeq struct {
	v reflect.Value
}

func (s reflectSeq) len() int             { return s.v.Len() }
func (s reflectSeq) at(i int) interface{} { return s.v.Index(i).Interface() }

type legacySeq map[string]interface{}

func (s legacySeq) len() int {
	n := 0
	for {
		if _, ok := s[strconv.Itoa(n)]; !ok {
			return n
		}
		n++
	}
}

func (s legacySeq) at(i int) interface{} { return s[strconv.Itoa(i)] }

// mapping is the engine's uniform view over the members of any keyed
// representation.
type mapping interface {
	len() int
	lookup(k interface{}) (interface{}, bool)
	each(fn func(k, v interface{}) bool)
}

func mappingOf(v interface{}) (mapping, bool) {
	switch d := unwrap(v).(type) {
	case *Object:
		return objectMap{obj: d}, true
	default:
		rv := reflect.ValueOf(unwrap(v))
		if rv.Kind() == reflect.Map {
			return reflectMap{v: rv}, true
		}
	}
	return nil, false
}

type objectMap struct {
	obj *Object
}

func (m objectMap) len() int { return m.obj.Length() }

func (m objectMap) lookup(k interface{}) (interface{}, bool) {
	ks, ok := k.(string)
	if !ok {
		return nil, false
	}
	val, found := m.obj.Find(ks)
	if !found {
		return nil, false
	}
	return val, true
}

func (m objectMap) each(fn func(k, v interface{}) bool) {
	m.obj.Range(func(key string, val *Value) bool {
		return fn(key, val)
	})
}

type reflectMap struct {
	v reflect.Value
}

func (m reflectMap) len() int { return m.v.Len() }

func (m reflectMap) lookup(k interface{}) (interface{}, bool) {
	kv := reflect.ValueOf(k)
	if !kv.IsValid() || !kv.Type().AssignableTo(m.v.Type().Key()) {
		return nil, false
	}
	out := m.v.MapIndex(kv)
	if !out.IsValid() {
		return nil, false
	}
	return out.Interface(), true
}

func (m reflectMap) each(fn func(k, v interface{}) bool) {
	iter := m.v.MapRange()
	for iter.Next() {
		if !fn(iter.Key().Interface(), iter.Value().Interface()) {
			return
		}
	}
}
