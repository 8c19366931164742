// Package schema assembles and registers the protobuf schema files that
// make up the microgrid common API. Schema files are described with
// descriptorpb, compiled with protodesc and held in a registry keyed by
// file path, mirroring how generated bindings register themselves at init.
package schema

import (
	"fmt"
	"sync"

	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	// registers the well known types with protoregistry.GlobalFiles so
	// schema files can import them
	_ "google.golang.org/protobuf/types/known/fieldmaskpb"
	_ "google.golang.org/protobuf/types/known/timestamppb"
)

// Default is the registry the API schema packages register themselves in.
// Most code should go through the api package to load files from it.
var Default = NewRegistry()

// Registry holds compiled schema files keyed by path.
// The zero value is not usable, call NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	files *protoregistry.Files
}

func NewRegistry() *Registry {
	return &Registry{files: new(protoregistry.Files)}
}

// Register compiles fd and adds it to the registry, resolving imports
// against files already registered here and against the well known types.
// Registering a path that is already present is idempotent: the existing
// descriptor is returned and fd is ignored.
func (r *Registry) Register(fd *descriptorpb.FileDescriptorProto) (protoreflect.FileDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if file, err := r.files.FindFileByPath(fd.GetName()); err == nil {
		return file, nil
	}

	file, err := protodesc.NewFile(fd, resolver{r.files})
	if err != nil {
		return nil, fmt.Errorf("compile %v: %w", fd.GetName(), err)
	}
	if err := r.files.RegisterFile(file); err != nil {
		return nil, fmt.Errorf("register %v: %w", fd.GetName(), err)
	}
	return file, nil
}

// FindFileByPath returns the schema file registered under path.
// Unknown paths fail with an error wrapping protoregistry.NotFound.
func (r *Registry) FindFileByPath(path string) (protoreflect.FileDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.files.FindFileByPath(path)
	if err != nil {
		return nil, fmt.Errorf("schema file %q: %w", path, err)
	}
	return file, nil
}

// NumFiles reports how many schema files are registered.
func (r *Registry) NumFiles() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.files.NumFiles()
}

// resolver resolves imports against local files first, then the well known
// types from the global registry.
type resolver struct {
	local *protoregistry.Files
}

func (r resolver) FindFileByPath(path string) (protoreflect.FileDescriptor, error) {
	if file, err := r.local.FindFileByPath(path); err == nil {
		return file, nil
	}
	return protoregistry.GlobalFiles.FindFileByPath(path)
}

func (r resolver) FindDescriptorByName(name protoreflect.FullName) (protoreflect.Descriptor, error) {
	if desc, err := r.local.FindDescriptorByName(name); err == nil {
		return desc, nil
	}
	return protoregistry.GlobalFiles.FindDescriptorByName(name)
}
