// Classifies arbitrary Go values into the small set of semantic types that
// failure messages talk about ("Received: number: 3"). The set is closed; see
// [ValueType].
package valuetype

import (
	"reflect"
	"regexp"
)

type ValueType string

const (
	Array     ValueType = "array"
	Boolean   ValueType = "boolean"
	Function  ValueType = "function"
	Null      ValueType = "null"
	Number    ValueType = "number"
	Object    ValueType = "object"
	RegExp    ValueType = "regexp"
	String    ValueType = "string"
	Symbol    ValueType = "symbol"
	Undefined ValueType = "undefined"
)

func (vt ValueType) String() string {
	return string(vt)
}

var regexpType = reflect.TypeOf((*regexp.Regexp)(nil)).Elem()

// a capability predicate. Rules are evaluated in declaration order and the
// first one that matches decides the type.
type rule struct {
	vt    ValueType
	match func(v any, rv reflect.Value) bool
}

var rules = []rule{
	{Undefined, func(v any, _ reflect.Value) bool { return v == nil }},
	{Null, isTypedNil},
	{Array, kindIn(reflect.Slice, reflect.Array)},
	{Boolean, kindIn(reflect.Bool)},
	{Function, kindIn(reflect.Func)},
	{Number, kindIn(
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
	)},
	{String, kindIn(reflect.String)},
	// Token is a struct, so it has to be tested before the generic object rule.
	{Symbol, isToken},
	{RegExp, isRegexp},
	{Object, kindIn(reflect.Struct, reflect.Map, reflect.Pointer)},
	{Symbol, kindIn(reflect.Chan, reflect.UnsafePointer)},
}

// Returns the [ValueType] of [v], or a [*ClassificationError] if none of the
// rules match. The error should not happen for values built by the Go runtime;
// it exists so that an unexpected kind is reported instead of mislabeled.
func Classify(v any) (ValueType, error) {
	rv := reflect.ValueOf(v)

	for _, r := range rules {
		if r.match(v, rv) {
			return r.vt, nil
		}
	}

	return "", &ClassificationError{value: v}
}

// Like [Classify], but panics if [v] can't be classified.
func Of(v any) ValueType {
	vt, err := Classify(v)
	if err != nil {
		panic(err)
	}
	return vt
}

func kindIn(kinds ...reflect.Kind) func(any, reflect.Value) bool {
	return func(_ any, rv reflect.Value) bool {
		k := rv.Kind()
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}

// a nil slice is still a list, so it is left to the Array rule.
func isTypedNil(v any, rv reflect.Value) bool {
	if v == nil {
		return false
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func isRegexp(_ any, rv reflect.Value) bool {
	t := rv.Type()
	if rv.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t == regexpType
}

func isToken(v any, _ reflect.Value) bool {
	switch v.(type) {
	case Token, *Token:
		return true
	default:
		return false
	}
}
