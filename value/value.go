// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/try"
)

// ValueNew boxes a native go value as a Transis datum. The box
// canonicalizes its contents: every numeric kind is held as float64
// (the model has a single logical number type), map[string]interface{}
// becomes an *Object (or a *Params when it carries the legacy callee
// member), and []interface{} becomes an *Array. ValueNew is total;
// foreign shapes are held as-is and classify as KindUnknown rather than
// failing.
func ValueNew(data interface{}) *Value {
	return valueNew(data)
}

func valueNew(data interface{}) *Value {
	if data == nil {
		return &Value{data: nil}
	}
	switch d := data.(type) {
	case *Value:
		return d
	case undefined:
		return _undefined
	case *Array, *Params, *Object, *Regexp, *regexp.Regexp,
		bool, string, float64, time.Time:
	case *time.Time:
		if d == nil {
			return &Value{data: nil}
		}
		data = *d
	case float32:
		data = float64(d)
	case int:
		data = float64(d)
	case int8:
		data = float64(d)
	case int16:
		data = float64(d)
	case int32:
		data = float64(d)
	case int64:
		data = float64(d)
	case uint:
		data = float64(d)
	case uint8:
		data = float64(d)
	case uint16:
		data = float64(d)
	case uint32:
		data = float64(d)
	case uint64:
		data = float64(d)
	case map[string]interface{}:
		if _, legacy := d[calleeKey]; legacy {
			data = paramsFromLegacy(d)
		} else {
			data = ObjectFrom(d)
		}
	case []interface{}:
		data = ArrayFrom(d)
	}
	return &Value{
		data: data,
	}
}

// Value is a boxed Transis datum. The data may be an *Object, *Array,
// *Params, *Regexp, float64, string, bool, time.Time, the Undefined
// sentinel, or nil. Foreign go values may also be boxed; they take part
// in classification and equality as the unknown kind.
type Value struct {
	data interface{}
}

var _undefined = &Value{data: undefined{}}

// Undefined returns the constant undefined value.
func Undefined() *Value {
	return _undefined
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

var valType = reflect.TypeOf((*Value)(nil))
var interfaceType = reflect.TypeOf((*interface{})(nil)).Elem()

// Perform allows one to match the kind of the Value with a behavior to
// perform on that kind without resorting to the assertion operations.
// Think of this as the switch v.(type) { ... } analogue for Transis
// data. It takes a list of func(v vT) oT functions and applies the
// first match to the boxed datum. If vT is *Value or interface{} it
// matches all value kinds.
func (val *Value) Perform(fns ...interface{}) interface{} {
	if val == nil {
		return nil
	}
	vty := reflect.TypeOf(val.data)
	var action interface{}
	arg := val.data
	for _, fn := range fns {
		if action != nil {
			break
		}
		fnty := reflect.TypeOf(fn)
		if fnty == nil || fnty.Kind() != reflect.Func ||
			fnty.NumIn() != 1 {
			continue
		}
		inputType := fnty.In(0)
		switch {
		case vty == nil:
			if inputType == interfaceType {
				action = fn
			}
		case inputType == valType:
			arg = val
			action = fn
		case vty.AssignableTo(inputType):
			action = fn
		}
	}
	if action == nil {
		return nil
	}
	return dyn.Apply(action, arg)
}

// Kind returns the canonical kind of the boxed datum.
func (val *Value) Kind() Kind {
	return KindOf(val)
}

// IsNull returns whether the boxed datum is nil.
func (val *Value) IsNull() bool {
	return val.data == nil
}

// IsUndefined returns whether the value is the undefined sentinel.
func (val *Value) IsUndefined() bool {
	_, isUndefined := val.data.(undefined)
	return isUndefined
}

// AsString returns a string if the value is a string and panics
// otherwise.
func (val *Value) AsString() string {
	return val.data.(string)
}

// IsString returns whether the boxed datum is a string.
func (val *Value) IsString() bool {
	_, isString := val.data.(string)
	return isString
}

// ToString returns a string and allows the user to define a default.
// The value "" is returned if no default is defined and the value is
// not a string.
func (val *Value) ToString(defaultVal ...string) string {
	s, isString := val.data.(string)
	if isString {
		return s
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return ""
}

// AsNumber returns a float64 if the value is numeric and panics
// otherwise.
func (val *Value) AsNumber() float64 {
	return val.data.(float64)
}

// IsNumber returns whether the boxed datum is a number. The
// not-a-number sentinel is not a number in this model.
func (val *Value) IsNumber() bool {
	d, isNumber := val.data.(float64)
	return isNumber && d == d
}

// ToNumber returns a float64 and allows the user to define a default.
// The value 0 is returned if no default is defined and the value is
// not numeric.
func (val *Value) ToNumber(defaultVal ...float64) float64 {
	d, isNumber := val.data.(float64)
	if isNumber {
		return d
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

// AsBoolean returns a bool if the value is a bool and panics otherwise.
func (val *Value) AsBoolean() bool {
	return val.data.(bool)
}

// IsBoolean returns whether the boxed datum is a bool.
func (val *Value) IsBoolean() bool {
	_, isBoolean := val.data.(bool)
	return isBoolean
}

// ToBoolean returns a bool and allows the user to define a default.
// The value false is returned if no default is defined and the value
// is not a bool.
func (val *Value) ToBoolean(defaultVal ...bool) bool {
	b, isBoolean := val.data.(bool)
	if isBoolean {
		return b
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return false
}

// AsDate returns a time.Time if the value is a date and panics
// otherwise.
func (val *Value) AsDate() time.Time {
	return val.data.(time.Time)
}

// IsDate returns whether the boxed datum is a date.
func (val *Value) IsDate() bool {
	_, isDate := val.data.(time.Time)
	return isDate
}

// ToDate returns a time.Time and allows the user to define a default.
// The zero time is returned if no default is defined and the value is
// not a date.
func (val *Value) ToDate(defaultVal ...time.Time) time.Time {
	t, isDate := val.data.(time.Time)
	if isDate {
		return t
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return time.Time{}
}

// AsArray returns an *Array if the value is an Array and panics
// otherwise.
func (val *Value) AsArray() *Array {
	return val.data.(*Array)
}

// IsArray returns whether the boxed datum is an Array.
func (val *Value) IsArray() bool {
	_, isArray := val.data.(*Array)
	return isArray
}

// ToArray returns an *Array and allows the user to define a default.
// The value (*Array)(nil) is returned if no default is defined and the
// value is not an *Array.
func (val *Value) ToArray(defaultVal ...*Array) *Array {
	arr, isArray := val.data.(*Array)
	if isArray {
		return arr
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsParams returns a *Params if the value is a captured-argument list
// and panics otherwise.
func (val *Value) AsParams() *Params {
	return val.data.(*Params)
}

// IsParams returns whether the boxed datum is a captured-argument
// list.
func (val *Value) IsParams() bool {
	_, isParams := val.data.(*Params)
	return isParams
}

// ToParams returns a *Params and allows the user to define a default.
// The value (*Params)(nil) is returned if no default is defined and
// the value is not a *Params.
func (val *Value) ToParams(defaultVal ...*Params) *Params {
	ps, isParams := val.data.(*Params)
	if isParams {
		return ps
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsObject returns an *Object if the value is an Object and panics
// otherwise.
func (val *Value) AsObject() *Object {
	return val.data.(*Object)
}

// IsObject returns whether the boxed datum is an Object.
func (val *Value) IsObject() bool {
	_, isObject := val.data.(*Object)
	return isObject
}

// ToObject returns an *Object and allows the user to define a default.
// The value (*Object)(nil) is returned if no default is defined and
// the value is not an *Object.
func (val *Value) ToObject(defaultVal ...*Object) *Object {
	obj, isObject := val.data.(*Object)
	if isObject {
		return obj
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsRegexp returns a *Regexp if the value is a pattern. If the value
// is a string an attempt to compile it will be made.
func (val *Value) AsRegexp() *Regexp {
	switch d := val.data.(type) {
	case *Regexp:
		return d
	case *regexp.Regexp:
		re, _ := patternOf(d)
		return re
	case string:
		return RegexpNew(d, "")
	default:
		return d.(*Regexp) // causes a failure
	}
}

// IsRegexp returns whether the value is a pattern. Strings count when
// they compile as pattern source text.
func (val *Value) IsRegexp() bool {
	switch d := val.data.(type) {
	case *Regexp, *regexp.Regexp:
		return true
	case string:
		_, err := try.Apply(RegexpNew, d, "")
		return err == nil
	default:
		return false
	}
}

// ToRegexp returns a *Regexp and allows the user to define a default.
// The value (*Regexp)(nil) is returned if no default is defined and
// the value is not a pattern.
func (val *Value) ToRegexp(defaultVal ...*Regexp) *Regexp {
	switch d := val.data.(type) {
	case *Regexp:
		return d
	case *regexp.Regexp:
		re, _ := patternOf(d)
		return re
	case string:
		out, err := try.Apply(RegexpNew, d, "")
		if err == nil {
			return out.(*Regexp)
		}
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// ToNative converts a value to a go native type. Containers unbox
// recursively into []interface{} and map[string]interface{}.
func (val *Value) ToNative() interface{} {
	switch d := val.data.(type) {
	case interface {
		toNative() interface{}
	}:
		return d.toNative()
	default:
		return val.data
	}
}

// ToInterface returns the held datum directly. Caution should be used
// as the internal representation may not be the same as the type that
// was boxed due to canonicalization.
func (val *Value) ToInterface() interface{} {
	return val.data
}

// Equal provides an implementation of equality for boxed values.
func (val *Value) Equal(other interface{}) bool {
	return Equal(val, other)
}

// Compare provides an implementation of comparison for boxed values.
func (val *Value) Compare(other interface{}) int {
	return dyn.Compare(val.data, unwrap(other))
}

// String returns a go string representation of the Value.
func (val *Value) String() string {
	return fmt.Sprintf("%v", val.data)
}
