package cmp

import (
	"time"

	pref "google.golang.org/protobuf/reflect/protoreflect"
)

const timestampName = "google.protobuf.Timestamp"

// TimeValueWithin considers two google.protobuf.Timestamp values to be equal
// if they are within d of each other.
func TimeValueWithin(d time.Duration) Value {
	return func(fd pref.FieldDescriptor, x, y pref.Value) (equal bool, ok bool) {
		if fd.Kind() != pref.MessageKind {
			return false, false
		}
		mx, my := x.Message(), y.Message()
		xIsTimestamp := mx.Descriptor().FullName() == timestampName
		yIsTimestamp := my.Descriptor().FullName() == timestampName
		if !xIsTimestamp && !yIsTimestamp {
			return false, false
		}
		if xIsTimestamp != yIsTimestamp {
			return false, true
		}
		if !mx.IsValid() || !my.IsValid() {
			return mx.IsValid() == my.IsValid(), true
		}

		xt, yt := toTime(mx), toTime(my)
		if xt.Before(yt) {
			return yt.Sub(xt) <= d, true
		}
		return xt.Sub(yt) <= d, true
	}
}

// toTime reads seconds and nanos via reflection so it works for both
// timestamppb and dynamic messages sharing the Timestamp descriptor.
func toTime(m pref.Message) time.Time {
	fields := m.Descriptor().Fields()
	secs := m.Get(fields.ByName("seconds")).Int()
	nanos := m.Get(fields.ByName("nanos")).Int()
	return time.Unix(secs, nanos).UTC()
}
