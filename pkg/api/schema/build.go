package schema

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Builders for the descriptorpb structures schema packages are made of.
// They exist to keep the schema declarations as close to .proto source in
// shape as the descriptor model allows.

// File returns a proto3 file descriptor with the given path and package.
func File(path, pkg string, imports ...string) *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String(path),
		Package:    proto.String(pkg),
		Syntax:     proto.String("proto3"),
		Dependency: imports,
	}
}

func Message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name:  proto.String(name),
		Field: fields,
	}
}

func Field(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Type:   typ.Enum(),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
	}
}

func StringField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return Field(name, number, descriptorpb.FieldDescriptorProto_TYPE_STRING)
}

func BoolField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return Field(name, number, descriptorpb.FieldDescriptorProto_TYPE_BOOL)
}

func Int32Field(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return Field(name, number, descriptorpb.FieldDescriptorProto_TYPE_INT32)
}

func Uint64Field(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return Field(name, number, descriptorpb.FieldDescriptorProto_TYPE_UINT64)
}

func DoubleField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return Field(name, number, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE)
}

// MessageField returns a field holding a message, typeName must be fully
// qualified, e.g. ".google.protobuf.Timestamp".
func MessageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := Field(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = proto.String(typeName)
	return f
}

// EnumField returns a field holding an enum value, enumName must be fully
// qualified.
func EnumField(name string, number int32, enumName string) *descriptorpb.FieldDescriptorProto {
	f := Field(name, number, descriptorpb.FieldDescriptorProto_TYPE_ENUM)
	f.TypeName = proto.String(enumName)
	return f
}

// Repeated marks f as a repeated field and returns it.
func Repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func Enum(name string, values ...*descriptorpb.EnumValueDescriptorProto) *descriptorpb.EnumDescriptorProto {
	return &descriptorpb.EnumDescriptorProto{
		Name:  proto.String(name),
		Value: values,
	}
}

func EnumValue(name string, number int32) *descriptorpb.EnumValueDescriptorProto {
	return &descriptorpb.EnumValueDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
	}
}

func Service(name string, methods ...*descriptorpb.MethodDescriptorProto) *descriptorpb.ServiceDescriptorProto {
	return &descriptorpb.ServiceDescriptorProto{
		Name:   proto.String(name),
		Method: methods,
	}
}

// Method returns an rpc descriptor, in and out must be fully qualified
// message names.
func Method(name, in, out string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(in),
		OutputType: proto.String(out),
	}
}

// ServerStream marks m as server streaming and returns it.
func ServerStream(m *descriptorpb.MethodDescriptorProto) *descriptorpb.MethodDescriptorProto {
	m.ServerStreaming = proto.Bool(true)
	return m
}
