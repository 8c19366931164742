package resource

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/microgrid-os/mg-golang/pkg/masks"
)

// ReadOption configures how a Get or Pull operation behaves.
type ReadOption interface {
	apply(rr *ReadRequest)
}

// WithReadMask configures the properties that will be filled in the response value.
// A nil mask returns the full resource.
func WithReadMask(mask *fieldmaskpb.FieldMask) ReadOption {
	return readOptionFunc(func(rr *ReadRequest) {
		rr.ReadMask = mask
	})
}

// WithReadPaths is like WithReadMask but with paths instead.
func WithReadPaths(paths ...string) ReadOption {
	return WithReadMask(&fieldmaskpb.FieldMask{Paths: paths})
}

// WithUpdatesOnly configures Pull to not send the seed value, only updates
// that happen after the Pull begins.
func WithUpdatesOnly(updatesOnly bool) ReadOption {
	return readOptionFunc(func(rr *ReadRequest) {
		rr.UpdatesOnly = updatesOnly
	})
}

// WithBackpressure controls whether a slow Pull receiver applies
// backpressure to writers (the default) or causes intermediate events to be
// dropped instead.
func WithBackpressure(backpressure bool) ReadOption {
	return readOptionFunc(func(rr *ReadRequest) {
		rr.Backpressure = backpressure
	})
}

// FilterFunc selects which items in a collection an operation applies to.
type FilterFunc func(id string, item proto.Message) bool

// WithInclude configures a Collection read to only include items the given
// FilterFunc selects.
func WithInclude(include FilterFunc) ReadOption {
	return readOptionFunc(func(rr *ReadRequest) {
		rr.include = include
	})
}

// ComputeReadConfig returns a ReadRequest with the given options applied.
func ComputeReadConfig(opts ...ReadOption) *ReadRequest {
	rr := &ReadRequest{Backpressure: true}
	for _, opt := range opts {
		opt.apply(rr)
	}
	return rr
}

// ReadRequest holds the resolved settings for a Get or Pull operation.
type ReadRequest struct {
	ReadMask *fieldmaskpb.FieldMask

	UpdatesOnly  bool
	Backpressure bool

	include FilterFunc
}

// ResponseFilter returns a masks.ResponseFilter configured from this request.
func (rr *ReadRequest) ResponseFilter() *masks.ResponseFilter {
	return masks.NewResponseFilter(masks.WithFieldMask(rr.ReadMask))
}

// FilterClone returns a copy of m with the read mask applied.
func (rr *ReadRequest) FilterClone(m proto.Message) proto.Message {
	return rr.ResponseFilter().FilterClone(m)
}

// Excludes returns true if the given item should be absent from results.
func (rr *ReadRequest) Excludes(id string, item proto.Message) bool {
	return rr.include != nil && !rr.include(id, item)
}

type readOptionFunc func(rr *ReadRequest)

func (f readOptionFunc) apply(rr *ReadRequest) {
	f(rr)
}
