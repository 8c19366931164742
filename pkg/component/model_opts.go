package component

import (
	"fmt"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
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

// WithComponentsOption configures the components resource of the model.
func WithComponentsOption(opts ...resource.Option) resource.Option {
	return modelOptionFunc(func(args *modelArgs) {
		args.componentsOpts = append(args.componentsOpts, opts...)
	})
}

// WithInitialComponents returns an option that populates the model with the
// given components. Can be called multiple times to add more components.
// Panics if any component has no id.
func WithInitialComponents(components ...*componentspb.Component) resource.Option {
	opts := make([]resource.Option, len(components))
	for i, c := range components {
		if c.Id() == 0 {
			panic(fmt.Sprintf("component at index %d has no id", i))
		}
		opts[i] = resource.WithInitialRecord(key(c.Id()), c)
	}
	return WithComponentsOption(opts...)
}

func calcModelArgs(opts ...resource.Option) modelArgs {
	args := new(modelArgs)
	args.apply(DefaultModelOptions...)
	args.apply(opts...)
	return *args
}

type modelArgs struct {
	componentsOpts []resource.Option
}

func (a *modelArgs) apply(opts ...resource.Option) {
	for _, opt := range opts {
		if v, ok := opt.(ModelOption); ok {
			v.applyModel(a)
			continue
		}
		a.componentsOpts = append(a.componentsOpts, opt)
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
