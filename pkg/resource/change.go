package resource

import (
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/microgrid-os/mg-golang/pkg/masks"
)

// ChangeType describes how an item in a Collection changed.
type ChangeType int

const (
	ChangeTypeUnspecified ChangeType = iota
	ChangeTypeAdd
	ChangeTypeUpdate
	ChangeTypeRemove
	// ChangeTypeReplace is reported when dropped intermediate events collapse
	// an add and update, or an update and remove, into one emission.
	ChangeTypeReplace
)

func (c ChangeType) String() string {
	switch c {
	case ChangeTypeAdd:
		return "ADD"
	case ChangeTypeUpdate:
		return "UPDATE"
	case ChangeTypeRemove:
		return "REMOVE"
	case ChangeTypeReplace:
		return "REPLACE"
	default:
		return "UNSPECIFIED"
	}
}

// ValueChange contains information about a change to a Value.
type ValueChange struct {
	Value      proto.Message
	ChangeTime time.Time
	// SeedValue is true when the change describes the state of the resource
	// at the time Pull began rather than an update.
	SeedValue bool
}

func (v *ValueChange) filter(filter *masks.ResponseFilter) *ValueChange {
	newValue := filter.FilterClone(v.Value)
	if newValue == v.Value {
		return v
	}
	return &ValueChange{Value: newValue, ChangeTime: v.ChangeTime, SeedValue: v.SeedValue}
}

// CollectionChange contains information about a change to a Collection.
type CollectionChange struct {
	Id         string
	ChangeTime time.Time
	ChangeType ChangeType
	OldValue   proto.Message
	NewValue   proto.Message
	// SeedValue is true when the change describes an item that was already
	// in the collection at the time Pull began.
	SeedValue bool
	// LastSeedValue is true for the final change with SeedValue true.
	LastSeedValue bool
}

func (c *CollectionChange) filter(filter *masks.ResponseFilter) *CollectionChange {
	newNewValue := filter.FilterClone(c.NewValue)
	newOldValue := filter.FilterClone(c.OldValue)
	if newNewValue == c.NewValue && newOldValue == c.OldValue {
		return c
	}
	c2 := *c
	c2.OldValue = newOldValue
	c2.NewValue = newNewValue
	return &c2
}

// include adjusts this change based on any filtering active on the read.
// If items are being filtered then an update that changes an items inclusion
// is reported as an add or remove instead. The ok return value is false if
// the change should not be forwarded at all.
func (c *CollectionChange) include(includeFunc FilterFunc) (newChange *CollectionChange, ok bool) {
	if includeFunc == nil {
		return c, true
	}

	oldInclude := c.OldValue != nil && includeFunc(c.Id, c.OldValue)
	newInclude := c.NewValue != nil && includeFunc(c.Id, c.NewValue)
	if oldInclude == newInclude {
		// skip the update if both old and new values are excluded
		return c, newInclude
	}

	if newInclude {
		return &CollectionChange{
			Id:         c.Id,
			ChangeType: ChangeTypeAdd,
			ChangeTime: c.ChangeTime,
			NewValue:   c.NewValue,
			SeedValue:  c.SeedValue,
		}, true
	}

	return &CollectionChange{
		Id:         c.Id,
		ChangeType: ChangeTypeRemove,
		ChangeTime: c.ChangeTime,
		OldValue:   c.OldValue,
	}, true
}
