package resource

import (
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/microgrid-os/mg-golang/pkg/masks"
)

// ErrExpectedValueMismatch is returned by writes configured with
// WithExpectedValue when the current value differs from the expectation.
var ErrExpectedValueMismatch = status.Errorf(codes.FailedPrecondition, "current value is not as expected")

// WriteOption configures how a Set or Update operation behaves.
type WriteOption interface {
	apply(wr *WriteRequest)
}

// WithWriteTime configures the write to behave as if it happened at the
// given time instead of now.
func WithWriteTime(t time.Time) WriteOption {
	return writeOptionFunc(func(wr *WriteRequest) {
		wr.writeTime = &t
	})
}

// WithUpdateMask configures the update to only apply to these fields.
// A nil mask applies the update to all writable fields.
func WithUpdateMask(mask *fieldmaskpb.FieldMask) WriteOption {
	return writeOptionFunc(func(wr *WriteRequest) {
		wr.updateMask = mask
	})
}

// WithUpdatePaths is like WithUpdateMask but with paths instead.
func WithUpdatePaths(paths ...string) WriteOption {
	return WithUpdateMask(&fieldmaskpb.FieldMask{Paths: paths})
}

// UpdateInterceptor describes a function that applies changes to a message.
type UpdateInterceptor func(old, value proto.Message)

// InterceptBefore registers a function to call before the update mask is
// applied, while the value is still the writers proposed value. Use this to
// apply computed changes, like deltas, to the proposal.
func InterceptBefore(interceptor UpdateInterceptor) WriteOption {
	return writeOptionFunc(func(wr *WriteRequest) {
		wr.interceptBefore = interceptor
	})
}

// InterceptAfter registers a function to call after changes have been merged
// into the new value. Use this to apply derived properties, like change
// counters or timestamps.
func InterceptAfter(interceptor UpdateInterceptor) WriteOption {
	return writeOptionFunc(func(wr *WriteRequest) {
		wr.interceptAfter = interceptor
	})
}

// WithExpectedValue instructs the write to only proceed if the current value
// is equal to expectedValue. ErrExpectedValueMismatch is returned otherwise.
func WithExpectedValue(expectedValue proto.Message) WriteOption {
	return writeOptionFunc(func(wr *WriteRequest) {
		wr.expectedValue = expectedValue
	})
}

// WithCreateIfAbsent instructs a Collection update to create the item if it
// is not already present.
func WithCreateIfAbsent() WriteOption {
	return writeOptionFunc(func(wr *WriteRequest) {
		wr.createIfAbsent = true
	})
}

// WithCreatedCallback registers a function invoked if the write resulted in
// the item being created. See WithCreateIfAbsent.
func WithCreatedCallback(cb func()) WriteOption {
	return writeOptionFunc(func(wr *WriteRequest) {
		wr.createdCallback = cb
	})
}

// ComputeWriteConfig returns a WriteRequest with the given options applied.
func ComputeWriteConfig(opts ...WriteOption) WriteRequest {
	var wr WriteRequest
	for _, opt := range opts {
		opt.apply(&wr)
	}
	return wr
}

// WriteRequest holds the resolved settings for a Set or Update operation.
type WriteRequest struct {
	writeTime *time.Time

	updateMask      *fieldmaskpb.FieldMask
	expectedValue   proto.Message
	interceptBefore UpdateInterceptor
	interceptAfter  UpdateInterceptor

	createIfAbsent  bool
	createdCallback func()
}

func (wr WriteRequest) fieldUpdater(writableFields *fieldmaskpb.FieldMask) *masks.FieldUpdater {
	return masks.NewFieldUpdater(
		masks.WithWritableFields(writableFields),
		masks.WithUpdateMask(wr.updateMask),
	)
}

func (wr WriteRequest) updateTime(clock Clock) time.Time {
	if wr.writeTime != nil {
		return *wr.writeTime
	}
	return clock.Now()
}

func (wr WriteRequest) changeFn(writer *masks.FieldUpdater, value proto.Message) ChangeFn {
	return func(old, dst proto.Message) (proto.Message, error) {
		if wr.expectedValue != nil && !proto.Equal(old, wr.expectedValue) {
			return nil, ErrExpectedValueMismatch
		}
		if wr.interceptBefore != nil {
			// convert the value from relative to absolute values
			wr.interceptBefore(old, value)
		}
		writer.Merge(dst, value)
		if wr.interceptAfter != nil {
			// apply derived values
			wr.interceptAfter(old, dst)
		}
		return dst, nil
	}
}

type writeOptionFunc func(wr *WriteRequest)

func (f writeOptionFunc) apply(wr *WriteRequest) {
	f(wr)
}
