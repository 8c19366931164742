// Package api is the root of the microgrid common API namespace.
//
// Each sub-package owns one schema file and registers it with
// schema.Default on first use. Load is the path-based entry point for
// callers that work with descriptors rather than typed messages, for
// example reflection and schema introspection tooling.
package api

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
	"github.com/microgrid-os/mg-golang/pkg/api/metricspb"
	"github.com/microgrid-os/mg-golang/pkg/api/metricspb/electricalpb"
	"github.com/microgrid-os/mg-golang/pkg/api/schema"
)

// Namespace is the proto package all v1 common API files live under.
const Namespace = "microgrid.api.common.v1"

// loaders maps each schema file path to the function that registers it.
// Registration is idempotent, repeated calls return the same descriptor.
var loaders = map[string]func() protoreflect.FileDescriptor{
	componentspb.FilePath: componentspb.File,
	metricspb.FilePath:    metricspb.File,
	electricalpb.FilePath: electricalpb.File,
}

// FilePaths returns the paths of every schema file in the namespace, in
// registration order.
func FilePaths() []string {
	return []string{
		componentspb.FilePath,
		metricspb.FilePath,
		electricalpb.FilePath,
	}
}

// Load returns the file descriptor registered under path.
//
// Paths belonging to this namespace are registered on demand. Unknown
// paths return an error wrapping protoregistry.NotFound.
func Load(path string) (protoreflect.FileDescriptor, error) {
	if load, ok := loaders[path]; ok {
		return load(), nil
	}
	return schema.Default.FindFileByPath(path)
}

// LoadAll registers every schema file in the namespace and returns their
// descriptors keyed by path.
func LoadAll() map[string]protoreflect.FileDescriptor {
	files := make(map[string]protoreflect.FileDescriptor, len(loaders))
	for path, load := range loaders {
		files[path] = load()
	}
	return files
}
