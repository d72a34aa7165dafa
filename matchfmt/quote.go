package matchfmt

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"
)

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

type ptrKey struct {
	addr uintptr
	t    reflect.Type
}

// Deep-copies a value, replacing each string with its quoted form. The copy
// keeps the original types, so spew prints it exactly like the original apart
// from the quotes. Every value handed to walk must be settable-from, ie: not
// obtained through an unexported field; see [exposed].
type quoter struct {
	maxDepth int
	methods  bool
	// pointers already copied, so cycles in the original stay cycles in the copy
	seen map[ptrKey]reflect.Value
}

func (q *quoter) walk(v reflect.Value, depth int) reflect.Value {
	if !v.IsValid() || depth > q.maxDepth {
		return v
	}
	t := v.Type()

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		out := reflect.New(t).Elem()
		out.Set(q.walk(v.Elem(), depth))
		return out
	}

	if q.methods && (t.Implements(errorType) || t.Implements(stringerType)) {
		return v
	}

	switch v.Kind() {
	case reflect.String:
		out := reflect.New(t).Elem()
		out.SetString(strconv.Quote(v.String()))
		return out

	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		key := ptrKey{addr: v.Pointer(), t: t}
		if cp, ok := q.seen[key]; ok {
			return cp
		}
		cp := reflect.New(t.Elem())
		q.seen[key] = cp
		cp.Elem().Set(q.walk(v.Elem(), depth))
		return cp

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(t, v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(q.walk(v.Index(i), depth+1))
		}
		return out

	case reflect.Array:
		out := reflect.New(t).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(q.walk(v.Index(i), depth+1))
		}
		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(t, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(q.walk(iter.Key(), depth+1), q.walk(iter.Value(), depth+1))
		}
		return out

	case reflect.Struct:
		v = addressable(v)
		out := reflect.New(t).Elem()
		for i := 0; i < v.NumField(); i++ {
			exposed(out.Field(i)).Set(q.walk(exposed(v.Field(i)), depth+1))
		}
		return out

	default:
		return v
	}
}

// lifts the read-only flag reflect puts on unexported fields. [v] must be
// addressable.
func exposed(v reflect.Value) reflect.Value {
	if v.CanInterface() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	out := reflect.New(v.Type()).Elem()
	out.Set(v)
	return out
}
