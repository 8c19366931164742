// Package electrical models the AC and DC electrical state of a component
// and exposes it as an ElectricalStream gRPC service.
package electrical

import (
	"context"
	"time"

	"github.com/microgrid-os/mg-golang/pkg/api/metricspb/electricalpb"
	"github.com/microgrid-os/mg-golang/pkg/resource"
)

// Model holds the AC and DC state of one component.
type Model struct {
	ac *resource.Value
	dc *resource.Value
}

func NewModel(opts ...resource.Option) *Model {
	args := calcModelArgs(opts...)
	return &Model{
		ac: resource.NewValue(args.acOpts...),
		dc: resource.NewValue(args.dcOpts...),
	}
}

func (m *Model) Ac(opts ...resource.ReadOption) *electricalpb.Ac {
	return electricalpb.AsAc(m.ac.Get(opts...))
}

// SetAc writes ac, honouring any update mask, and returns the stored state.
func (m *Model) SetAc(ac *electricalpb.Ac, opts ...resource.WriteOption) (*electricalpb.Ac, error) {
	msg, err := m.ac.Set(ac, opts...)
	if err != nil {
		return nil, err
	}
	return electricalpb.AsAc(msg), nil
}

func (m *Model) Dc(opts ...resource.ReadOption) *electricalpb.Dc {
	return electricalpb.AsDc(m.dc.Get(opts...))
}

func (m *Model) SetDc(dc *electricalpb.Dc, opts ...resource.WriteOption) (*electricalpb.Dc, error) {
	msg, err := m.dc.Set(dc, opts...)
	if err != nil {
		return nil, err
	}
	return electricalpb.AsDc(msg), nil
}

// AcChange is emitted by PullAc when the AC state changes.
type AcChange struct {
	Value      *electricalpb.Ac
	ChangeTime time.Time
}

func (m *Model) PullAc(ctx context.Context, opts ...resource.ReadOption) <-chan AcChange {
	out := make(chan AcChange)
	changes := m.ac.Pull(ctx, opts...)

	go func() {
		defer close(out)
		for change := range changes {
			typed := AcChange{
				Value:      electricalpb.AsAc(change.Value),
				ChangeTime: change.ChangeTime,
			}
			select {
			case out <- typed:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// DcChange is emitted by PullDc when the DC state changes.
type DcChange struct {
	Value      *electricalpb.Dc
	ChangeTime time.Time
}

func (m *Model) PullDc(ctx context.Context, opts ...resource.ReadOption) <-chan DcChange {
	out := make(chan DcChange)
	changes := m.dc.Pull(ctx, opts...)

	go func() {
		defer close(out)
		for change := range changes {
			typed := DcChange{
				Value:      electricalpb.AsDc(change.Value),
				ChangeTime: change.ChangeTime,
			}
			select {
			case out <- typed:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
