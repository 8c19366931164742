package electrical

import (
	"github.com/microgrid-os/mg-golang/pkg/api/metricspb/electricalpb"
	"github.com/microgrid-os/mg-golang/pkg/resource"
)

// DefaultModelOptions holds the default options for the model.
var DefaultModelOptions = []resource.Option{
	resource.WithClock(resource.WallClock()),
}

// ModelOption defines the base type for all options that apply to this model.
type ModelOption interface {
	resource.Option
	applyModel(args *modelArgs)
}

// WithAcOption configures the AC resource of the model.
func WithAcOption(opts ...resource.Option) resource.Option {
	return modelOptionFunc(func(args *modelArgs) {
		args.acOpts = append(args.acOpts, opts...)
	})
}

// WithDcOption configures the DC resource of the model.
func WithDcOption(opts ...resource.Option) resource.Option {
	return modelOptionFunc(func(args *modelArgs) {
		args.dcOpts = append(args.dcOpts, opts...)
	})
}

// WithInitialAc returns an option that configures the initial AC state.
func WithInitialAc(ac *electricalpb.Ac) resource.Option {
	return WithAcOption(resource.WithInitialValue(ac))
}

// WithInitialDc returns an option that configures the initial DC state.
func WithInitialDc(dc *electricalpb.Dc) resource.Option {
	return WithDcOption(resource.WithInitialValue(dc))
}

func calcModelArgs(opts ...resource.Option) modelArgs {
	args := new(modelArgs)
	args.apply(DefaultModelOptions...)
	// empty initial states, later options may replace them
	args.acOpts = append(args.acOpts, resource.WithInitialValue(electricalpb.NewAc()))
	args.dcOpts = append(args.dcOpts, resource.WithInitialValue(electricalpb.NewDc()))
	args.apply(opts...)
	return *args
}

type modelArgs struct {
	acOpts []resource.Option
	dcOpts []resource.Option
}

func (a *modelArgs) apply(opts ...resource.Option) {
	for _, opt := range opts {
		if v, ok := opt.(ModelOption); ok {
			v.applyModel(a)
			continue
		}
		a.acOpts = append(a.acOpts, opt)
		a.dcOpts = append(a.dcOpts, opt)
	}
}

func modelOptionFunc(fn func(args *modelArgs)) ModelOption {
	return modelOption{resource.EmptyOption{}, fn}
}

type modelOption struct {
	resource.EmptyOption
	fn func(args *modelArgs)
}

func (m modelOption) applyModel(args *modelArgs) {
	m.fn(args)
}
