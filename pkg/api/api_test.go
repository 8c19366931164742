package api

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
)

func TestLoad(t *testing.T) {
	for _, path := range FilePaths() {
		fd, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error %v", path, err)
		}
		if fd == nil {
			t.Fatalf("Load(%q) returned nil descriptor", path)
		}
		if got := fd.Path(); got != path {
			t.Fatalf("Load(%q) descriptor path %q", path, got)
		}
	}
}

func TestLoad_idempotent(t *testing.T) {
	for _, path := range FilePaths() {
		first, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error %v", path, err)
		}
		second, err := Load(path)
		if err != nil {
			t.Fatalf("second Load(%q) error %v", path, err)
		}
		if first != second {
			t.Fatalf("Load(%q) returned different handles", path)
		}
	}
}

func TestLoad_unknownPath(t *testing.T) {
	// close to a real path, but misspelled
	_, err := Load("microgrid/api/common/v1/componets.proto")
	if err == nil {
		t.Fatal("Load of misspelled path succeeded")
	}
	if !errors.Is(err, protoregistry.NotFound) {
		t.Fatalf("want protoregistry.NotFound, got %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	files := LoadAll()
	if len(files) != len(FilePaths()) {
		t.Fatalf("LoadAll returned %d files, want %d", len(files), len(FilePaths()))
	}
	fd := files[componentspb.FilePath]
	if fd == nil {
		t.Fatalf("LoadAll missing %q", componentspb.FilePath)
	}
	if got, want := string(fd.Package()), Namespace; got != want {
		t.Fatalf("package %q, want %q", got, want)
	}
}
