package resource

import (
	"context"
	"sort"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/microgrid-os/mg-golang/internal/minibus"
)

// Collection is a keyed set of messages with the same read/write/pull
// semantics as Value.
type Collection struct {
	*config

	mu   sync.RWMutex // protects byId and rng
	byId map[string]*item

	bus minibus.Bus // of *CollectionChange
}

type item struct {
	body       proto.Message
	changeTime time.Time
}

func NewCollection(opts ...Option) *Collection {
	conf := computeConfig(opts...)
	byId := make(map[string]*item)
	for k, v := range conf.initialRecords {
		byId[k] = &item{body: v, changeTime: conf.clock.Now()}
	}
	conf.initialRecords = nil // so the gc can collect them

	return &Collection{
		config: conf,
		byId:   byId,
	}
}

// Get will find the entry with the given ID. If no such entry exists,
// returns false.
func (c *Collection) Get(id string, opts ...ReadOption) (proto.Message, bool) {
	req := ComputeReadConfig(opts...)

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.byId[id]
	if !ok {
		return nil, false
	}
	if req.Excludes(id, entry.body) {
		return nil, false
	}

	return req.FilterClone(entry.body), true
}

// List returns all entries sorted by their ID.
func (c *Collection) List(opts ...ReadOption) []proto.Message {
	req := ComputeReadConfig(opts...)

	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.byId))
	for id, entry := range c.byId {
		if req.Excludes(id, entry.body) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	filter := req.ResponseFilter()
	result := make([]proto.Message, 0, len(ids))
	for _, id := range ids {
		result = append(result, filter.FilterClone(c.byId[id].body))
	}
	return result
}

// Add associates the given body with the id.
// If id already exists then an error is returned.
func (c *Collection) Add(id string, body proto.Message, opts ...WriteOption) (proto.Message, error) {
	req := ComputeWriteConfig(opts...)

	c.mu.Lock()
	defer c.mu.Unlock()

	body, _, err := c.add(id, req, func(string) proto.Message {
		return body
	})
	return body, err
}

// AddFn adds an entry to the collection by invoking create with a newly
// allocated ID.
func (c *Collection) AddFn(create CreateFn, opts ...WriteOption) (proto.Message, string, error) {
	req := ComputeWriteConfig(opts...)

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.add("", req, create)
}

func (c *Collection) add(id string, req WriteRequest, create CreateFn) (proto.Message, string, error) {
	if id == "" {
		var err error
		if id, err = c.genID(); err != nil {
			return nil, "", err
		}
	} else if _, exists := c.byId[id]; exists {
		return nil, "", status.Errorf(codes.AlreadyExists, "%s cannot be created, already exists", id)
	}

	body := create(id)
	changeTime := req.updateTime(c.clock)
	c.byId[id] = &item{body: body, changeTime: changeTime}
	c.bus.Send(context.TODO(), &CollectionChange{
		Id:         id,
		ChangeTime: changeTime,
		ChangeType: ChangeTypeAdd,
		NewValue:   body,
	})

	return body, id, nil
}

// Update applies msg to the entry with the given id. With WithCreateIfAbsent
// a missing entry is created, otherwise NotFound is returned.
func (c *Collection) Update(id string, msg proto.Message, opts ...WriteOption) (proto.Message, error) {
	req := ComputeWriteConfig(opts...)
	writer := req.fieldUpdater(c.writableFields)
	if err := writer.Validate(msg); err != nil {
		return nil, err
	}

	var created proto.Message // non-nil during create so concurrency checks pass
	oldValue, newValue, err := GetAndUpdate(
		&c.mu,
		func() (proto.Message, error) {
			if created != nil {
				return created, nil
			}
			entry, exists := c.byId[id]
			if exists {
				return entry.body, nil
			}
			if !req.createIfAbsent {
				return nil, status.Errorf(codes.NotFound, "id %v not found", id)
			}
			created = msg.ProtoReflect().New().Interface()
			if req.createdCallback != nil {
				req.createdCallback()
			}
			return created, nil
		},
		req.changeFn(writer, msg),
		func(message proto.Message) {
			c.byId[id] = &item{body: message, changeTime: req.updateTime(c.clock)}
		},
	)
	if err != nil {
		return nil, err
	}

	changeType := ChangeTypeUpdate
	if created != nil {
		changeType = ChangeTypeAdd
		oldValue = nil
	}
	c.bus.Send(context.TODO(), &CollectionChange{
		Id:         id,
		ChangeTime: req.updateTime(c.clock),
		ChangeType: changeType,
		OldValue:   oldValue,
		NewValue:   newValue,
	})
	return newValue, nil
}

// Delete removes the entry with the given id, returning the removed message.
// Deleting an absent id returns nil.
func (c *Collection) Delete(id string, opts ...WriteOption) proto.Message {
	req := ComputeWriteConfig(opts...)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.byId[id]
	if !exists {
		return nil
	}
	delete(c.byId, id)

	c.bus.Send(context.TODO(), &CollectionChange{
		Id:         id,
		ChangeTime: req.updateTime(c.clock),
		ChangeType: ChangeTypeRemove,
		OldValue:   entry.body,
	})
	return entry.body
}

// Pull emits a CollectionChange whenever items in the collection change.
// With UpdatesOnly false, the current items are emitted first as seed
// values.
func (c *Collection) Pull(ctx context.Context, opts ...ReadOption) <-chan *CollectionChange {
	req := ComputeReadConfig(opts...)
	filter := req.ResponseFilter()

	on, seed := c.onUpdate(ctx, req)
	send := make(chan *CollectionChange)
	go func() {
		defer close(send)

		for i, change := range seed {
			change.LastSeedValue = i == len(seed)-1
			change = change.filter(filter)
			select {
			case <-ctx.Done():
				return
			case send <- change:
			}
		}

		for event := range on {
			change := event.(*CollectionChange)
			change, ok := change.include(req.include)
			if !ok {
				continue
			}
			change = change.filter(filter)
			select {
			case <-ctx.Done():
				return
			case send <- change:
			}
		}
	}()
	return send
}

func (c *Collection) onUpdate(ctx context.Context, req *ReadRequest) (<-chan any, []*CollectionChange) {
	var seed []*CollectionChange
	if !req.UpdatesOnly {
		c.mu.RLock()
		defer c.mu.RUnlock()

		ids := make([]string, 0, len(c.byId))
		for id, entry := range c.byId {
			if req.Excludes(id, entry.body) {
				continue
			}
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			entry := c.byId[id]
			seed = append(seed, &CollectionChange{
				Id:         id,
				ChangeTime: entry.changeTime,
				ChangeType: ChangeTypeAdd,
				NewValue:   entry.body,
				SeedValue:  true,
			})
		}
	}

	ch := c.bus.Listen(ctx)
	if !req.Backpressure {
		ch = mergeCollectionExcess(ch)
	}

	return ch, seed
}

// Clock returns the clock used by this resource for reporting time.
func (c *Collection) Clock() Clock {
	return c.clock
}

func (c *Collection) genID() (string, error) {
	return GenerateUniqueId(c.rng, func(candidate string) bool {
		_, exists := c.byId[candidate]
		return exists
	})
}
