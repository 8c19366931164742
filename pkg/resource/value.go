package resource

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/microgrid-os/mg-golang/internal/minibus"
)

// Value holds a single state message, think the AC reading of a meter or the
// state of charge of a battery. It provides thread safe reads and writes with
// field mask support, and Pull for observing changes.
type Value struct {
	*config

	mu         sync.RWMutex
	value      proto.Message
	changeTime time.Time

	bus minibus.Bus
}

// NewValue creates a Value, use WithInitialValue to set the starting point.
//
// Writes are applied via proto.Clone and proto.Merge, so without an initial
// value the Value cannot allocate a message of the right type during Set.
func NewValue(opts ...Option) *Value {
	c := computeConfig(opts...)
	v := &Value{
		config:     c,
		value:      c.initialValue,
		changeTime: c.clock.Now(),
	}
	c.initialValue = nil // allow GC once the value is replaced
	return v
}

// Get returns the current value, filtered per any read options.
func (v *Value) Get(opts ...ReadOption) proto.Message {
	req := ComputeReadConfig(opts...)
	v.mu.RLock()
	defer v.mu.RUnlock()
	return req.FilterClone(v.value)
}

// Set replaces or merges the current value and returns the result.
// WriteOption controls masks, expected values and change time.
func (v *Value) Set(value proto.Message, opts ...WriteOption) (proto.Message, error) {
	return v.set(value, ComputeWriteConfig(opts...))
}

func (v *Value) set(value proto.Message, request WriteRequest) (proto.Message, error) {
	writer := request.fieldUpdater(v.writableFields)
	if err := writer.Validate(value); err != nil {
		return nil, err
	}

	disarm := slowUpdateAlarm(time.Second)
	_, newValue, err := GetAndUpdate(
		&v.mu,
		func() (proto.Message, error) {
			return v.value, nil
		},
		request.changeFn(writer, value),
		func(message proto.Message) {
			v.value = message
			v.changeTime = request.updateTime(v.clock)
		},
	)
	disarm()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.TODO(), 5*time.Second)
	defer cancel()
	v.bus.Send(ctx, &ValueChange{
		Value:      newValue,
		ChangeTime: request.updateTime(v.clock),
	})
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, errors.New("bus.Send blocked for too long")
	}

	return newValue, nil
}

// Pull emits a ValueChange on the returned chan whenever the value changes.
// Emissions can be tuned with WithUpdatesOnly, WithReadMask, equivalence and
// backpressure options. The chan closes when ctx is done.
func (v *Value) Pull(ctx context.Context, opts ...ReadOption) <-chan *ValueChange {
	readConfig := ComputeReadConfig(opts...)
	filter := readConfig.ResponseFilter()
	events, seed, seedTime := v.subscribe(ctx, readConfig)

	send := make(chan *ValueChange)
	go func() {
		defer close(send)

		if seed != nil {
			change := (&ValueChange{Value: seed, ChangeTime: seedTime, SeedValue: true}).filter(filter)
			select {
			case <-ctx.Done():
				return
			case send <- change:
			}
		}

		last := seed
		for event := range events {
			change := event.(*ValueChange).filter(filter)
			if v.equivalence != nil && v.equivalence.Compare(last, change.Value) {
				continue
			}
			last = change.Value
			select {
			case <-ctx.Done():
				return
			case send <- change:
			}
		}
	}()
	return send
}

// subscribe registers with the bus and, unless UpdatesOnly, captures the
// current value under the same lock so no change between read and listen is
// missed or duplicated.
func (v *Value) subscribe(ctx context.Context, config *ReadRequest) (<-chan any, proto.Message, time.Time) {
	var (
		value      proto.Message
		changeTime time.Time
	)
	if !config.UpdatesOnly {
		v.mu.RLock()
		defer v.mu.RUnlock()
		value = v.value
		changeTime = v.changeTime
	}

	ch := v.bus.Listen(ctx)
	if !config.Backpressure {
		ch = minibus.DropExcess(ch)
	}
	return ch, value, changeTime
}

// Clock returns the clock used by this resource for reporting time.
func (v *Value) Clock() Clock {
	return v.clock
}

// slowUpdateAlarm logs if not disarmed within duration. Update functions
// passed to GetAndUpdate are expected to be quick, a stuck one deadlocks the
// resource.
func slowUpdateAlarm(duration time.Duration) (disarm func()) {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	go func() {
		<-ctx.Done()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Printf("resource update took longer than %v", duration)
		}
	}()
	return cancel
}
