package cmp

import (
	"math"

	pref "google.golang.org/protobuf/reflect/protoreflect"
)

// FloatValueApprox treats float and double fields as equal when they are
// within margin of each other, or within fraction of the smaller magnitude.
// Useful for sensor readings where the last digits are noise.
func FloatValueApprox(fraction, margin float64) Value {
	return func(fd pref.FieldDescriptor, x, y pref.Value) (equal bool, ok bool) {
		switch fd.Kind() {
		case pref.FloatKind, pref.DoubleKind:
		default:
			return false, false
		}
		fx, fy := x.Float(), y.Float()
		tolerance := fraction * math.Min(math.Abs(fx), math.Abs(fy))
		if margin > tolerance {
			tolerance = margin
		}
		return math.Abs(fx-fy) <= tolerance, true
	}
}
