// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"reflect"
	"regexp"
	"time"
)

// Kind is the canonical classification of a datum. Exactly one kind
// applies to any given value.
type Kind string

const (
	// KindNull classifies the nil datum.
	KindNull = Kind("null")
	// KindUndefined classifies the Undefined sentinel.
	KindUndefined = Kind("undefined")
	// KindNaN classifies the IEEE-754 not-a-number sentinel. It is
	// disjoint from KindNumber because it carries unique equality
	// semantics, it is never equal to anything, itself included.
	KindNaN = Kind("nan")
	// KindArray classifies list containers.
	KindArray = Kind("array")
	// KindParams classifies captured-call-argument containers.
	KindParams = Kind("params")
	// KindFunction classifies invocable values.
	KindFunction = Kind("function")
	// KindString classifies textual values.
	KindString = Kind("string")
	// KindNumber classifies numeric values other than the not-a-number
	// sentinel.
	KindNumber = Kind("number")
	// KindBoolean classifies logical values.
	KindBoolean = Kind("boolean")
	// KindDate classifies calendar timestamps.
	KindDate = Kind("date")
	// KindRegexp classifies compiled pattern values.
	KindRegexp = Kind("regexp")
	// KindObject classifies plain keyed mappings.
	KindObject = Kind("object")
	// KindUnknown classifies anything not otherwise recognized.
	KindUnknown = Kind("unknown")
)

// String returns the kind's tag text.
func (k Kind) String() string { return string(k) }

// KindOf returns the canonical kind of an arbitrary value. It is total,
// deterministic, and never inspects the value's contents recursively.
// Boxed values classify as their underlying datum. The not-a-number
// check precedes every numeric check; a keyed value carrying a "callee"
// member classifies as KindParams rather than KindObject.
func KindOf(v interface{}) Kind {
	if v == nil {
		return KindNull
	}
	switch d := v.(type) {
	case *Value:
		if d == nil {
			return KindNull
		}
		return KindOf(d.data)
	case undefined:
		return KindUndefined
	case float64:
		if d != d {
			return KindNaN
		}
		return KindNumber
	case float32:
		if d != d {
			return KindNaN
		}
		return KindNumber
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case bool:
		return KindBoolean
	case string:
		return KindString
	case time.Time:
		return KindDate
	case *time.Time:
		if d == nil {
			return KindNull
		}
		return KindDate
	case *Regexp:
		if d == nil {
			return KindNull
		}
		return KindRegexp
	case *regexp.Regexp:
		if d == nil {
			return KindNull
		}
		return KindRegexp
	case *Array:
		if d == nil {
			return KindNull
		}
		return KindArray
	case *Params:
		if d == nil {
			return KindNull
		}
		return KindParams
	case *Object:
		if d == nil {
			return KindNull
		}
		return KindObject
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		if _, legacy := d[calleeKey]; legacy {
			return KindParams
		}
		return KindObject
	}
	return kindOfForeign(v)
}

// kindOfForeign resolves shapes outside the closed type switch by their
// go reflection kind. Anything without a sensible dynamic reading
// degrades to KindUnknown rather than failing.
func kindOfForeign(v interface{}) Kind {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		return KindObject
	case reflect.Func:
		return KindFunction
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f != f {
			return KindNaN
		}
		return KindNumber
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return KindNumber
	case reflect.Ptr:
		if rv.IsNil() {
			return KindNull
		}
	}
	return KindUnknown
}
