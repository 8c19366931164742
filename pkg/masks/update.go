package masks

import (
	"github.com/mennanov/fmutils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// FieldUpdater merges updates into stored messages honouring an update mask
// and a set of writable fields.
type FieldUpdater struct {
	writableFields      *fieldmaskpb.FieldMask
	updateMask          *fieldmaskpb.FieldMask
	updateMaskFieldName string
}

type FieldUpdaterOption func(*FieldUpdater)

var nilFieldUpdaterOption FieldUpdaterOption = func(*FieldUpdater) {}

// WithWritableFields limits Merge to the given paths. Fields outside the
// mask are silently dropped from the update, or rejected by Validate when an
// update mask names them explicitly.
func WithWritableFields(writableFields *fieldmaskpb.FieldMask) FieldUpdaterOption {
	if writableFields == nil {
		return nilFieldUpdaterOption
	}
	return func(u *FieldUpdater) {
		u.writableFields = writableFields
	}
}

// WithUpdateMask sets the caller supplied mask naming the fields the update
// intends to change.
func WithUpdateMask(updateMask *fieldmaskpb.FieldMask) FieldUpdaterOption {
	if updateMask == nil {
		return nilFieldUpdaterOption
	}
	return func(u *FieldUpdater) {
		u.updateMask = updateMask
	}
}

// WithUpdateMaskFieldName sets the field name used in error messages,
// defaults to "update_mask".
func WithUpdateMaskFieldName(name string) FieldUpdaterOption {
	return func(u *FieldUpdater) {
		u.updateMaskFieldName = name
	}
}

func NewFieldUpdater(opts ...FieldUpdaterOption) *FieldUpdater {
	u := &FieldUpdater{updateMaskFieldName: "update_mask"}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Validate checks that the configured masks make sense for m: the update
// mask may only mention fields that exist and that are writable.
func (u *FieldUpdater) Validate(m proto.Message) error {
	if u.updateMask == nil {
		return nil
	}
	if !u.updateMask.IsValid(m) {
		return status.Errorf(codes.InvalidArgument, "%v mentions unknown fields", u.updateMaskFieldName)
	}
	if u.writableFields != nil {
		writable := fieldmaskpb.Intersect(u.writableFields, u.updateMask)
		if len(writable.Paths) != len(u.updateMask.Paths) {
			return status.Errorf(codes.InvalidArgument, "%v mentions read-only fields", u.updateMaskFieldName)
		}
	}
	return nil
}

// Merge copies the values in src into dst based on the configured masks.
func (u *FieldUpdater) Merge(dst, src proto.Message) {
	if u.writableFields != nil && len(u.writableFields.Paths) == 0 {
		return // nothing is writable
	}

	var writableMask fmutils.NestedMask
	if u.writableFields != nil {
		writableMask = fmutils.NestedMaskFromPaths(u.writableFields.Paths)
		writableMask.Filter(src)
	}

	mask := u.updateMask
	switch {
	case mask == nil:
		// no mask means replace: clear the writable parts of dst so the
		// merge below makes them look like src
		if writableMask == nil {
			proto.Reset(dst)
		} else {
			writableMask.Prune(dst)
		}
	case len(mask.GetPaths()) == 0:
		return // non-nil mask with no paths, no changes
	}

	nestedMask := fmutils.NestedMaskFromPaths(mask.GetPaths())
	nestedMask.Filter(src)
	proto.Merge(dst, src)

	// fields mentioned by the mask but absent in src are cleared
	pruneAbsent(dst, src, nestedMask)
}

func pruneAbsent(dst, src proto.Message, mask fmutils.NestedMask) {
	dstRefl := dst.ProtoReflect()
	srcRefl := src.ProtoReflect()
	dstRefl.Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		childMask, ok := mask[string(fd.Name())]
		if !ok {
			return true
		}
		if !srcRefl.Has(fd) {
			dstRefl.Clear(fd)
			return true
		}
		if fd.Kind() == protoreflect.MessageKind && !fd.IsList() && !fd.IsMap() {
			pruneAbsent(dstRefl.Get(fd).Message().Interface(), srcRefl.Get(fd).Message().Interface(), childMask)
		}
		return true
	})
}
