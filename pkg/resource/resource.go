// Package resource provides thread safe stores for proto messages with
// masked reads and writes and change notification. A Value holds a single
// message, think the AC reading of a meter or a battery's state of charge.
// A Collection holds a keyed set of messages, think the components known to
// a microgrid.
package resource

import (
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// CreateFn is called to generate a message based on the ID the message is going to have.
type CreateFn func(id string) proto.Message

// GetFn is called to retrieve the message from the store.
type GetFn func() (item proto.Message, err error)

// ChangeFn is called to apply changes to a proto.Message.
// old and dst are the current message and a copy to change.
// If old is nil, there is no current message.
// The implementation must return a message containing the desired changes.
type ChangeFn func(old, dst proto.Message) (proto.Message, error)

// SaveFn is called to save the message in the store.
type SaveFn func(msg proto.Message)

// GetAndUpdate applies an atomic get and update operation in the context of
// proto messages. mu.RLock is held during the get call, mu.Lock during the
// save call, and no locks during the change call.
//
// An error is returned if the value returned by get changes during the
// change call.
func GetAndUpdate(mu *sync.RWMutex, get GetFn, change ChangeFn, save SaveFn) (oldValue, newValue proto.Message, err error) {
	mu.RLock()
	oldValue, err = get()
	mu.RUnlock()
	if err != nil {
		return nil, nil, err
	}

	newValue = proto.Clone(oldValue)
	if newValue, err = change(oldValue, newValue); err != nil {
		return oldValue, newValue, err
	}

	mu.Lock()
	defer mu.Unlock()
	oldValueAgain, _ := get()
	if !proto.Equal(oldValue, oldValueAgain) {
		return oldValue, newValue, status.Errorf(codes.Aborted, "concurrent update detected")
	}

	save(newValue)
	return oldValue, newValue, nil
}
