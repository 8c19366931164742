// Package masks applies google.protobuf.FieldMask semantics to reads and
// writes of proto messages.
package masks

import (
	"github.com/mennanov/fmutils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// ResponseFilter applies a read mask to response messages.
type ResponseFilter struct {
	fields *fieldmaskpb.FieldMask
}

type ResponseFilterOption func(*ResponseFilter)

var nilResponseFilterOption ResponseFilterOption = func(*ResponseFilter) {}

// WithFieldMask sets the read mask to apply, nil means no filtering.
func WithFieldMask(fm *fieldmaskpb.FieldMask) ResponseFilterOption {
	if fm == nil {
		return nilResponseFilterOption
	}
	return func(f *ResponseFilter) {
		f.fields = fm
	}
}

// WithFieldMaskPaths sets the read mask from a list of paths.
func WithFieldMaskPaths(paths ...string) ResponseFilterOption {
	return WithFieldMask(&fieldmaskpb.FieldMask{Paths: paths})
}

func NewResponseFilter(opts ...ResponseFilterOption) *ResponseFilter {
	f := &ResponseFilter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Validate checks the mask only mentions fields msg has.
func (f *ResponseFilter) Validate(msg proto.Message) error {
	if f.fields != nil && !f.fields.IsValid(msg) {
		return status.Errorf(codes.InvalidArgument, "%v mentions unknown fields", f.fields)
	}
	return nil
}

// Filter resets all fields in msg that are not requested by the mask.
// A nil mask keeps msg unchanged, an empty mask clears everything.
// This changes the original message.
func (f *ResponseFilter) Filter(msg proto.Message) {
	switch {
	case f.fields == nil:
	case len(f.fields.GetPaths()) == 0:
		proto.Reset(msg)
	default:
		fmutils.Filter(msg, f.fields.GetPaths())
	}
}

// FilterClone is like Filter but returns a filtered copy, leaving msg alone.
// If no mask is configured the original message is returned as is.
func (f *ResponseFilter) FilterClone(msg proto.Message) proto.Message {
	if f.fields == nil || msg == nil {
		return msg
	}
	clone := proto.Clone(msg)
	f.Filter(clone)
	return clone
}
