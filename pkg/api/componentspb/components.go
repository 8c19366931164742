// Package componentspb declares the microgrid/api/common/v1/components.proto
// schema: the identity of the electrical components that make up a site and
// the ComponentRegistry service used to query and watch them.
package componentspb

import (
	"sync"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/microgrid-os/mg-golang/pkg/api/schema"
)

const (
	// FilePath is the schema path this package registers itself under.
	FilePath = "microgrid/api/common/v1/components.proto"
	// Package is the proto package the schema declares.
	Package = "microgrid.api.common.v1"
)

const fqn = "." + Package

var (
	registerOnce sync.Once
	file         protoreflect.FileDescriptor
	registerErr  error
)

// File registers the components schema on first use and returns its
// descriptor. Registration is idempotent; failures indicate a programming
// error in the schema declaration and panic like a bad generated file would.
func File() protoreflect.FileDescriptor {
	registerOnce.Do(func() {
		file, registerErr = schema.Default.Register(fileProto())
		if registerErr == nil {
			cacheDescriptors()
		}
	})
	if registerErr != nil {
		panic(registerErr)
	}
	return file
}

func fileProto() *descriptorpb.FileDescriptorProto {
	f := schema.File(FilePath, Package,
		"google/protobuf/timestamp.proto",
		"google/protobuf/field_mask.proto",
	)
	f.EnumType = []*descriptorpb.EnumDescriptorProto{
		schema.Enum("ComponentCategory",
			schema.EnumValue("COMPONENT_CATEGORY_UNSPECIFIED", 0),
			schema.EnumValue("COMPONENT_CATEGORY_GRID_CONNECTION_POINT", 1),
			schema.EnumValue("COMPONENT_CATEGORY_METER", 2),
			schema.EnumValue("COMPONENT_CATEGORY_INVERTER", 3),
			schema.EnumValue("COMPONENT_CATEGORY_BATTERY", 4),
			schema.EnumValue("COMPONENT_CATEGORY_EV_CHARGER", 5),
			schema.EnumValue("COMPONENT_CATEGORY_CHP", 6),
		),
		schema.Enum("ComponentStatus",
			schema.EnumValue("COMPONENT_STATUS_UNSPECIFIED", 0),
			schema.EnumValue("COMPONENT_STATUS_ACTIVE", 1),
			schema.EnumValue("COMPONENT_STATUS_INACTIVE", 2),
		),
		schema.Enum("ChangeType",
			schema.EnumValue("CHANGE_TYPE_UNSPECIFIED", 0),
			schema.EnumValue("CHANGE_TYPE_ADD", 1),
			schema.EnumValue("CHANGE_TYPE_UPDATE", 2),
			schema.EnumValue("CHANGE_TYPE_REMOVE", 3),
		),
	}
	f.MessageType = []*descriptorpb.DescriptorProto{
		schema.Message("Component",
			schema.Uint64Field("id", 1),
			schema.StringField("name", 2),
			schema.EnumField("category", 3, fqn+".ComponentCategory"),
			schema.StringField("manufacturer", 4),
			schema.StringField("model_name", 5),
			schema.EnumField("status", 6, fqn+".ComponentStatus"),
			schema.MessageField("installed_at", 7, ".google.protobuf.Timestamp"),
		),
		schema.Message("ComponentConnection",
			schema.Uint64Field("source_component_id", 1),
			schema.Uint64Field("destination_component_id", 2),
		),
		schema.Message("GetComponentRequest",
			schema.Uint64Field("id", 1),
			schema.MessageField("read_mask", 2, ".google.protobuf.FieldMask"),
		),
		schema.Message("ListComponentsRequest",
			schema.Int32Field("page_size", 1),
			schema.StringField("page_token", 2),
			schema.MessageField("read_mask", 3, ".google.protobuf.FieldMask"),
		),
		schema.Message("ListComponentsResponse",
			schema.Repeated(schema.MessageField("components", 1, fqn+".Component")),
			schema.StringField("next_page_token", 2),
			schema.Int32Field("total_size", 3),
		),
		schema.Message("WatchComponentsRequest",
			schema.MessageField("read_mask", 1, ".google.protobuf.FieldMask"),
			schema.BoolField("updates_only", 2),
		),
		schema.Message("WatchComponentsResponse",
			schema.EnumField("type", 1, fqn+".ChangeType"),
			schema.MessageField("old_value", 2, fqn+".Component"),
			schema.MessageField("new_value", 3, fqn+".Component"),
			schema.MessageField("change_time", 4, ".google.protobuf.Timestamp"),
		),
	}
	f.Service = []*descriptorpb.ServiceDescriptorProto{
		schema.Service("ComponentRegistry",
			schema.Method("GetComponent", fqn+".GetComponentRequest", fqn+".Component"),
			schema.Method("ListComponents", fqn+".ListComponentsRequest", fqn+".ListComponentsResponse"),
			schema.ServerStream(schema.Method("WatchComponents", fqn+".WatchComponentsRequest", fqn+".WatchComponentsResponse")),
		),
	}
	return f
}

var (
	componentDesc     protoreflect.MessageDescriptor
	componentFields   struct{ id, name, category, manufacturer, modelName, status, installedAt protoreflect.FieldDescriptor }
	connectionDesc    protoreflect.MessageDescriptor
	connectionFields  struct{ source, destination protoreflect.FieldDescriptor }
	getRequestDesc    protoreflect.MessageDescriptor
	getRequestFields  struct{ id, readMask protoreflect.FieldDescriptor }
	listRequestDesc   protoreflect.MessageDescriptor
	listRequestFields struct{ pageSize, pageToken, readMask protoreflect.FieldDescriptor }
	listResponseDesc  protoreflect.MessageDescriptor
	listRespFields    struct{ components, nextPageToken, totalSize protoreflect.FieldDescriptor }
	watchRequestDesc  protoreflect.MessageDescriptor
	watchReqFields    struct{ readMask, updatesOnly protoreflect.FieldDescriptor }
	watchResponseDesc protoreflect.MessageDescriptor
	watchRespFields   struct{ typ, oldValue, newValue, changeTime protoreflect.FieldDescriptor }

	categoryEnum protoreflect.EnumDescriptor
	statusEnum   protoreflect.EnumDescriptor
	changeEnum   protoreflect.EnumDescriptor
)

func cacheDescriptors() {
	messages := file.Messages()

	componentDesc = messages.ByName("Component")
	componentFields.id = schema.MustField(componentDesc, "id")
	componentFields.name = schema.MustField(componentDesc, "name")
	componentFields.category = schema.MustField(componentDesc, "category")
	componentFields.manufacturer = schema.MustField(componentDesc, "manufacturer")
	componentFields.modelName = schema.MustField(componentDesc, "model_name")
	componentFields.status = schema.MustField(componentDesc, "status")
	componentFields.installedAt = schema.MustField(componentDesc, "installed_at")

	connectionDesc = messages.ByName("ComponentConnection")
	connectionFields.source = schema.MustField(connectionDesc, "source_component_id")
	connectionFields.destination = schema.MustField(connectionDesc, "destination_component_id")

	getRequestDesc = messages.ByName("GetComponentRequest")
	getRequestFields.id = schema.MustField(getRequestDesc, "id")
	getRequestFields.readMask = schema.MustField(getRequestDesc, "read_mask")

	listRequestDesc = messages.ByName("ListComponentsRequest")
	listRequestFields.pageSize = schema.MustField(listRequestDesc, "page_size")
	listRequestFields.pageToken = schema.MustField(listRequestDesc, "page_token")
	listRequestFields.readMask = schema.MustField(listRequestDesc, "read_mask")

	listResponseDesc = messages.ByName("ListComponentsResponse")
	listRespFields.components = schema.MustField(listResponseDesc, "components")
	listRespFields.nextPageToken = schema.MustField(listResponseDesc, "next_page_token")
	listRespFields.totalSize = schema.MustField(listResponseDesc, "total_size")

	watchRequestDesc = messages.ByName("WatchComponentsRequest")
	watchReqFields.readMask = schema.MustField(watchRequestDesc, "read_mask")
	watchReqFields.updatesOnly = schema.MustField(watchRequestDesc, "updates_only")

	watchResponseDesc = messages.ByName("WatchComponentsResponse")
	watchRespFields.typ = schema.MustField(watchResponseDesc, "type")
	watchRespFields.oldValue = schema.MustField(watchResponseDesc, "old_value")
	watchRespFields.newValue = schema.MustField(watchResponseDesc, "new_value")
	watchRespFields.changeTime = schema.MustField(watchResponseDesc, "change_time")

	enums := file.Enums()
	categoryEnum = enums.ByName("ComponentCategory")
	statusEnum = enums.ByName("ComponentStatus")
	changeEnum = enums.ByName("ChangeType")
}

// ComponentDescriptor returns the message descriptor for Component.
func ComponentDescriptor() protoreflect.MessageDescriptor {
	File()
	return componentDesc
}
