package schema

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

func testFile(path, pkg string, imports ...string) *descriptorpb.FileDescriptorProto {
	fd := File(path, pkg, imports...)
	fd.MessageType = append(fd.MessageType, Message("Thing",
		StringField("name", 1),
		MessageField("created_at", 2, ".google.protobuf.Timestamp"),
	))
	fd.Dependency = append([]string{"google/protobuf/timestamp.proto"}, fd.Dependency...)
	return fd
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	file, err := r.Register(testFile("test/thing.proto", "test"))
	if err != nil {
		t.Fatal(err)
	}
	if file == nil {
		t.Fatal("Register returned nil descriptor")
	}
	if got, want := file.Path(), "test/thing.proto"; got != want {
		t.Fatalf("path %q, want %q", got, want)
	}
	if r.NumFiles() != 1 {
		t.Fatalf("NumFiles %d, want 1", r.NumFiles())
	}
	md := file.Messages().ByName("Thing")
	if md == nil {
		t.Fatal("Thing message not compiled")
	}
	// imported well known type resolved from the global registry
	ts := md.Fields().ByName("created_at")
	if got, want := string(ts.Message().FullName()), "google.protobuf.Timestamp"; got != want {
		t.Fatalf("created_at type %q, want %q", got, want)
	}
}

func TestRegistry_Register_idempotent(t *testing.T) {
	r := NewRegistry()
	first, err := r.Register(testFile("test/thing.proto", "test"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Register(testFile("test/thing.proto", "test"))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("repeated Register returned a different descriptor")
	}
	if r.NumFiles() != 1 {
		t.Fatalf("NumFiles %d, want 1", r.NumFiles())
	}
}

func TestRegistry_Register_localImport(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register(testFile("test/thing.proto", "test")); err != nil {
		t.Fatal(err)
	}

	fd := File("test/box.proto", "test", "test/thing.proto")
	fd.MessageType = append(fd.MessageType, Message("Box",
		MessageField("thing", 1, ".test.Thing"),
	))
	file, err := r.Register(fd)
	if err != nil {
		t.Fatal(err)
	}
	field := file.Messages().ByName("Box").Fields().ByName("thing")
	if got, want := string(field.Message().FullName()), "test.Thing"; got != want {
		t.Fatalf("thing type %q, want %q", got, want)
	}
}

func TestRegistry_Register_missingImport(t *testing.T) {
	r := NewRegistry()
	fd := File("test/box.proto", "test", "test/absent.proto")
	if _, err := r.Register(fd); err == nil {
		t.Fatal("Register with unresolvable import succeeded")
	}
}

func TestRegistry_FindFileByPath_notFound(t *testing.T) {
	r := NewRegistry()
	_, err := r.FindFileByPath("test/absent.proto")
	if err == nil {
		t.Fatal("FindFileByPath of unregistered path succeeded")
	}
	if !errors.Is(err, protoregistry.NotFound) {
		t.Fatalf("want protoregistry.NotFound, got %v", err)
	}
}
