package schema

import (
	"time"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// Helpers for reading and writing well known types on dynamic messages.
// Values are accessed through reflection so they work whether the nested
// message is a dynamic one or a generated known type.

// MustField returns the field descriptor with the given name, panicking if
// the schema doesn't declare it. Intended for package level caching.
func MustField(md protoreflect.MessageDescriptor, name protoreflect.Name) protoreflect.FieldDescriptor {
	fd := md.Fields().ByName(name)
	if fd == nil {
		panic("schema: " + string(md.FullName()) + " has no field " + string(name))
	}
	return fd
}

// GetTime reads a google.protobuf.Timestamp field.
// The zero time is returned when the field is absent.
func GetTime(m protoreflect.Message, fd protoreflect.FieldDescriptor) time.Time {
	if !m.Has(fd) {
		return time.Time{}
	}
	ts := m.Get(fd).Message()
	fields := ts.Descriptor().Fields()
	secs := ts.Get(fields.ByName("seconds")).Int()
	nanos := ts.Get(fields.ByName("nanos")).Int()
	return time.Unix(secs, nanos).UTC()
}

// SetTime writes a google.protobuf.Timestamp field.
func SetTime(m protoreflect.Message, fd protoreflect.FieldDescriptor, t time.Time) {
	ts := m.NewField(fd).Message()
	fields := ts.Descriptor().Fields()
	ts.Set(fields.ByName("seconds"), protoreflect.ValueOfInt64(t.Unix()))
	ts.Set(fields.ByName("nanos"), protoreflect.ValueOfInt32(int32(t.Nanosecond())))
	m.Set(fd, protoreflect.ValueOfMessage(ts))
}

// GetFieldMask reads a google.protobuf.FieldMask field, nil when absent.
func GetFieldMask(m protoreflect.Message, fd protoreflect.FieldDescriptor) *fieldmaskpb.FieldMask {
	if !m.Has(fd) {
		return nil
	}
	paths := m.Get(fd).Message().Get(pathsField(m, fd)).List()
	mask := &fieldmaskpb.FieldMask{}
	for i := 0; i < paths.Len(); i++ {
		mask.Paths = append(mask.Paths, paths.Get(i).String())
	}
	return mask
}

// SetFieldMask writes a google.protobuf.FieldMask field, clearing it when
// mask is nil.
func SetFieldMask(m protoreflect.Message, fd protoreflect.FieldDescriptor, mask *fieldmaskpb.FieldMask) {
	if mask == nil {
		m.Clear(fd)
		return
	}
	fm := m.NewField(fd).Message()
	list := fm.Mutable(fm.Descriptor().Fields().ByName("paths")).List()
	for _, p := range mask.GetPaths() {
		list.Append(protoreflect.ValueOfString(p))
	}
	m.Set(fd, protoreflect.ValueOfMessage(fm))
}

func pathsField(m protoreflect.Message, fd protoreflect.FieldDescriptor) protoreflect.FieldDescriptor {
	return fd.Message().Fields().ByName("paths")
}
