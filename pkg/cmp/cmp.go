// Package cmp provides configurable equivalence between proto messages.
// It exists so Pull streams can skip emissions that are equal apart from
// tolerated differences, like a timestamp within a second or a reading
// within measurement noise.
package cmp

import (
	"bytes"
	"math"

	"google.golang.org/protobuf/proto"
	pref "google.golang.org/protobuf/reflect/protoreflect"
)

// Message reports whether two messages should be considered equivalent.
type Message func(x, y proto.Message) bool

// Value decides equivalence for a single field value.
// ok is false if this Value has no opinion about the field, in which case
// the default comparison applies.
type Value func(fd pref.FieldDescriptor, x, y pref.Value) (equal bool, ok bool)

// ValueAnd combines Value comparers, claiming a field if any of eqs claims it
// and reporting equal only if every claiming comparer agrees.
func ValueAnd(eqs ...Value) Value {
	return func(fd pref.FieldDescriptor, x, y pref.Value) (equal bool, ok bool) {
		for _, eq := range eqs {
			if eqEqual, eqOk := eq(fd, x, y); eqOk {
				ok = true
				if !eqEqual {
					return false, true
				}
			}
		}
		return true, ok
	}
}

// Equal returns a Message that compares like proto.Equal except where one of
// the given Value comparers claims the field.
func Equal(cmpValue ...Value) Message {
	valueEq := ValueAnd(cmpValue...)
	return func(x, y proto.Message) bool {
		if x == nil || y == nil {
			return x == nil && y == nil
		}
		mx, my := x.ProtoReflect(), y.ProtoReflect()
		if mx.IsValid() != my.IsValid() {
			return false
		}
		return messageEqual(valueEq, mx, my)
	}
}

func messageEqual(eq Value, mx, my pref.Message) bool {
	if mx.Descriptor().FullName() != my.Descriptor().FullName() {
		return false
	}

	// every field present in x must be present and equivalent in y
	equal := true
	mx.Range(func(fd pref.FieldDescriptor, vx pref.Value) bool {
		fdy := my.Descriptor().Fields().ByNumber(fd.Number())
		if fdy == nil || !my.Has(fdy) {
			equal = false
			return false
		}
		equal = fieldEqual(eq, fd, vx, my.Get(fdy))
		return equal
	})
	if !equal {
		return false
	}
	// y must not have fields x lacks
	if presentFields(mx) != presentFields(my) {
		return false
	}

	return bytes.Equal(mx.GetUnknown(), my.GetUnknown())
}

func presentFields(m pref.Message) int {
	n := 0
	m.Range(func(pref.FieldDescriptor, pref.Value) bool {
		n++
		return true
	})
	return n
}

func fieldEqual(eq Value, fd pref.FieldDescriptor, x, y pref.Value) bool {
	switch {
	case fd.IsList():
		lx, ly := x.List(), y.List()
		if lx.Len() != ly.Len() {
			return false
		}
		for i := 0; i < lx.Len(); i++ {
			if !valueEqual(eq, fd, lx.Get(i), ly.Get(i)) {
				return false
			}
		}
		return true
	case fd.IsMap():
		kx, ky := x.Map(), y.Map()
		if kx.Len() != ky.Len() {
			return false
		}
		equal := true
		kx.Range(func(k pref.MapKey, vx pref.Value) bool {
			equal = ky.Has(k) && valueEqual(eq, fd.MapValue(), vx, ky.Get(k))
			return equal
		})
		return equal
	default:
		return valueEqual(eq, fd, x, y)
	}
}

func valueEqual(eq Value, fd pref.FieldDescriptor, x, y pref.Value) bool {
	if eq != nil {
		if equal, ok := eq(fd, x, y); ok {
			return equal
		}
	}
	switch fd.Kind() {
	case pref.BoolKind:
		return x.Bool() == y.Bool()
	case pref.EnumKind:
		return x.Enum() == y.Enum()
	case pref.Int32Kind, pref.Sint32Kind,
		pref.Int64Kind, pref.Sint64Kind,
		pref.Sfixed32Kind, pref.Sfixed64Kind:
		return x.Int() == y.Int()
	case pref.Uint32Kind, pref.Uint64Kind,
		pref.Fixed32Kind, pref.Fixed64Kind:
		return x.Uint() == y.Uint()
	case pref.FloatKind, pref.DoubleKind:
		fx, fy := x.Float(), y.Float()
		if math.IsNaN(fx) || math.IsNaN(fy) {
			return math.IsNaN(fx) && math.IsNaN(fy)
		}
		return fx == fy
	case pref.StringKind:
		return x.String() == y.String()
	case pref.BytesKind:
		return bytes.Equal(x.Bytes(), y.Bytes())
	case pref.MessageKind, pref.GroupKind:
		return messageEqual(eq, x.Message(), y.Message())
	default:
		return x.Interface() == y.Interface()
	}
}
