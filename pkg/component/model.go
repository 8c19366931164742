// Package component models the inventory of electrical components that make
// up a microgrid site and exposes it as a ComponentRegistry gRPC service.
package component

import (
	"context"
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
	"github.com/microgrid-os/mg-golang/pkg/resource"
)

// Model models a collection of components keyed by their numeric id.
type Model struct {
	components *resource.Collection
}

func NewModel(opts ...resource.Option) *Model {
	args := calcModelArgs(opts...)
	return &Model{
		components: resource.NewCollection(args.componentsOpts...),
	}
}

// key formats id so that collection keys sort in numeric order.
func key(id uint64) string {
	return fmt.Sprintf("%020d", id)
}

// AddComponent inserts c into this model.
// Fails if c has no id or a component with the same id already exists.
func (m *Model) AddComponent(c *componentspb.Component) (*componentspb.Component, error) {
	if c.Id() == 0 {
		return nil, fmt.Errorf("component %q has no id", c.Name())
	}
	msg, err := m.components.Add(key(c.Id()), c)
	if err != nil {
		return nil, err
	}
	return componentspb.AsComponent(msg), nil
}

// RemoveComponent removes the component with the given id from this model.
// If no such component exists then nil, false is returned, else the removed
// component and true.
func (m *Model) RemoveComponent(id uint64) (*componentspb.Component, bool) {
	old := m.components.Delete(key(id))
	if old == nil {
		return nil, false
	}
	return componentspb.AsComponent(old), true
}

// GetComponent returns the component with the given id, or nil, false.
func (m *Model) GetComponent(id uint64, opts ...resource.ReadOption) (*componentspb.Component, bool) {
	msg, ok := m.components.Get(key(id), opts...)
	if !ok {
		return nil, false
	}
	return componentspb.AsComponent(msg), true
}

// UpdateComponent writes c over the stored component with the same id,
// honouring any update mask and intercept options. The component is created
// when absent.
func (m *Model) UpdateComponent(c *componentspb.Component, opts ...resource.WriteOption) (*componentspb.Component, error) {
	if c.Id() == 0 {
		return nil, fmt.Errorf("component %q has no id", c.Name())
	}
	opts = append([]resource.WriteOption{resource.WithCreateIfAbsent()}, opts...)
	msg, err := m.components.Update(key(c.Id()), c, opts...)
	if err != nil {
		return nil, err
	}
	return componentspb.AsComponent(msg), nil
}

// ListComponents returns all known components in id order.
func (m *Model) ListComponents(opts ...resource.ReadOption) []*componentspb.Component {
	msgs := m.components.List(opts...)
	components := make([]*componentspb.Component, len(msgs))
	for i, msg := range msgs {
		components[i] = componentspb.AsComponent(msg)
	}
	return components
}

// PullComponents emits changes made to the components of this model.
func (m *Model) PullComponents(ctx context.Context, opts ...resource.ReadOption) <-chan *componentspb.WatchComponentsResponse {
	out := make(chan *componentspb.WatchComponentsResponse)
	changes := m.components.Pull(ctx, opts...)

	go func() {
		defer close(out)
		for change := range changes {
			select {
			case out <- componentChangeToProto(change):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func componentChangeToProto(change *resource.CollectionChange) *componentspb.WatchComponentsResponse {
	res := componentspb.NewWatchComponentsResponse().
		SetType(changeTypeToProto(change.ChangeType)).
		SetChangeTime(change.ChangeTime)
	if change.OldValue != nil {
		res.SetOldValue(componentspb.AsComponent(proto.Clone(change.OldValue)))
	}
	if change.NewValue != nil {
		res.SetNewValue(componentspb.AsComponent(proto.Clone(change.NewValue)))
	}
	return res
}

func changeTypeToProto(t resource.ChangeType) componentspb.ChangeType {
	switch t {
	case resource.ChangeTypeAdd:
		return componentspb.ChangeAdd
	case resource.ChangeTypeUpdate, resource.ChangeTypeReplace:
		return componentspb.ChangeUpdate
	case resource.ChangeTypeRemove:
		return componentspb.ChangeRemove
	default:
		return componentspb.ChangeUnspecified
	}
}
