package resource

import (
	"io"
	"math/rand"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/microgrid-os/mg-golang/pkg/cmp"
)

// Option configures a resource Value or Collection.
type Option interface {
	apply(c *config)
}

// EmptyOption is an Option that makes no changes to the semantics of the
// resource. Useful for embedding in another struct to enable custom options
// outside this package.
type EmptyOption struct{}

func (EmptyOption) apply(*config) {}

// WithClock configures the clock used when time is needed.
// Defaults to a Clock backed by the time package.
func WithClock(c Clock) Option {
	return optionFunc(func(s *config) {
		s.clock = c
	})
}

// WithEquivalence configures how consecutive emissions are compared,
// equivalent emissions are not emitted.
// Defaults to nil, all events are emitted.
func WithEquivalence(e Comparer) Option {
	return optionFunc(func(s *config) {
		s.equivalence = e
	})
}

// WithMessageEquivalence is like WithEquivalence using a cmp.Message.
func WithMessageEquivalence(e cmp.Message) Option {
	return WithEquivalence(ComparerFunc(e))
}

// WithRNG configures the source of randomness for the resource.
// Defaults to rand.Rand with a time seed.
func WithRNG(rng io.Reader) Option {
	return optionFunc(func(s *config) {
		s.rng = rng
	})
}

// WithInitialValue configures the initial value for the resource.
// Applies only to Value.
func WithInitialValue(initialValue proto.Message) Option {
	return optionFunc(func(s *config) {
		s.initialValue = initialValue
	})
}

// WithInitialRecord seeds a Collection with a record.
// May be given multiple times. Applies only to Collection.
func WithInitialRecord(id string, body proto.Message) Option {
	return optionFunc(func(s *config) {
		if s.initialRecords == nil {
			s.initialRecords = make(map[string]proto.Message)
		}
		s.initialRecords[id] = body
	})
}

// WithWritableFields configures write operations on the resource to accept
// updates to the given fields only.
// Explicit writes to fields not in this mask will fail.
func WithWritableFields(mask *fieldmaskpb.FieldMask) Option {
	return optionFunc(func(s *config) {
		s.writableFields = mask
	})
}

// WithWritablePaths is like WithWritableFields using fieldmaskpb.New.
func WithWritablePaths(m proto.Message, paths ...string) Option {
	mask, err := fieldmaskpb.New(m, paths...)
	if err != nil {
		panic(err)
	}
	return WithWritableFields(mask)
}

type config struct {
	clock          Clock
	equivalence    Comparer
	rng            io.Reader
	initialValue   proto.Message
	initialRecords map[string]proto.Message
	writableFields *fieldmaskpb.FieldMask
}

func computeConfig(opts ...Option) *config {
	c := &config{
		clock: WallClock(),
		rng:   rand.New(rand.NewSource(time.Now().Unix())),
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

type optionFunc func(c *config)

func (f optionFunc) apply(c *config) {
	f(c)
}

// Comparer compares two messages for equivalence.
// This is used during Pull to de-duplicate consecutive emissions.
type Comparer interface {
	Compare(x, y proto.Message) bool
}

// ComparerFunc adapts an ordinary func to the Comparer interface.
type ComparerFunc func(x, y proto.Message) bool

func (f ComparerFunc) Compare(x, y proto.Message) bool {
	return f(x, y)
}
