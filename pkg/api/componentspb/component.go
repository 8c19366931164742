package componentspb

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/microgrid-os/mg-golang/pkg/api/schema"
)

// ComponentCategory identifies what kind of electrical equipment a
// component is.
type ComponentCategory int32

const (
	CategoryUnspecified         ComponentCategory = 0
	CategoryGridConnectionPoint ComponentCategory = 1
	CategoryMeter               ComponentCategory = 2
	CategoryInverter            ComponentCategory = 3
	CategoryBattery             ComponentCategory = 4
	CategoryEvCharger           ComponentCategory = 5
	CategoryChp                 ComponentCategory = 6
)

func (c ComponentCategory) String() string {
	File()
	return enumValueName(categoryEnum, int32(c))
}

// ComponentStatus describes whether a component takes part in the site.
type ComponentStatus int32

const (
	StatusUnspecified ComponentStatus = 0
	StatusActive      ComponentStatus = 1
	StatusInactive    ComponentStatus = 2
)

func (s ComponentStatus) String() string {
	File()
	return enumValueName(statusEnum, int32(s))
}

// ChangeType describes how a watched component changed.
type ChangeType int32

const (
	ChangeUnspecified ChangeType = 0
	ChangeAdd         ChangeType = 1
	ChangeUpdate      ChangeType = 2
	ChangeRemove      ChangeType = 3
)

func (c ChangeType) String() string {
	File()
	return enumValueName(changeEnum, int32(c))
}

func enumValueName(ed protoreflect.EnumDescriptor, n int32) string {
	if v := ed.Values().ByNumber(protoreflect.EnumNumber(n)); v != nil {
		return string(v.Name())
	}
	return fmt.Sprintf("%d", n)
}

// Component is the microgrid.api.common.v1.Component message: the identity
// and categorisation of one piece of equipment on a site.
type Component struct {
	m protoreflect.Message
}

func NewComponent() *Component {
	return &Component{m: dynamicpb.NewMessage(ComponentDescriptor())}
}

// AsComponent wraps an existing message sharing the Component descriptor,
// typically one that came out of a resource store. It panics when given a
// message of a different type.
func AsComponent(msg proto.Message) *Component {
	if msg == nil {
		return nil
	}
	if c, ok := msg.(*Component); ok {
		return c
	}
	m := msg.ProtoReflect()
	if m.Descriptor() != ComponentDescriptor() {
		panic(fmt.Sprintf("componentspb: cannot wrap %v as Component", m.Descriptor().FullName()))
	}
	return &Component{m: m}
}

func (x *Component) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		x.m = dynamicpb.NewMessage(ComponentDescriptor())
	}
	return x.m
}

func (x *Component) Id() uint64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(componentFields.id).Uint()
}

func (x *Component) SetId(id uint64) *Component {
	x.ProtoReflect().Set(componentFields.id, protoreflect.ValueOfUint64(id))
	return x
}

func (x *Component) Name() string {
	if x == nil {
		return ""
	}
	return x.ProtoReflect().Get(componentFields.name).String()
}

func (x *Component) SetName(name string) *Component {
	x.ProtoReflect().Set(componentFields.name, protoreflect.ValueOfString(name))
	return x
}

func (x *Component) Category() ComponentCategory {
	if x == nil {
		return CategoryUnspecified
	}
	return ComponentCategory(x.ProtoReflect().Get(componentFields.category).Enum())
}

func (x *Component) SetCategory(c ComponentCategory) *Component {
	x.ProtoReflect().Set(componentFields.category, protoreflect.ValueOfEnum(protoreflect.EnumNumber(c)))
	return x
}

func (x *Component) Manufacturer() string {
	if x == nil {
		return ""
	}
	return x.ProtoReflect().Get(componentFields.manufacturer).String()
}

func (x *Component) SetManufacturer(m string) *Component {
	x.ProtoReflect().Set(componentFields.manufacturer, protoreflect.ValueOfString(m))
	return x
}

func (x *Component) ModelName() string {
	if x == nil {
		return ""
	}
	return x.ProtoReflect().Get(componentFields.modelName).String()
}

func (x *Component) SetModelName(m string) *Component {
	x.ProtoReflect().Set(componentFields.modelName, protoreflect.ValueOfString(m))
	return x
}

func (x *Component) Status() ComponentStatus {
	if x == nil {
		return StatusUnspecified
	}
	return ComponentStatus(x.ProtoReflect().Get(componentFields.status).Enum())
}

func (x *Component) SetStatus(s ComponentStatus) *Component {
	x.ProtoReflect().Set(componentFields.status, protoreflect.ValueOfEnum(protoreflect.EnumNumber(s)))
	return x
}

func (x *Component) InstalledAt() time.Time {
	if x == nil {
		return time.Time{}
	}
	return schema.GetTime(x.ProtoReflect(), componentFields.installedAt)
}

func (x *Component) SetInstalledAt(t time.Time) *Component {
	schema.SetTime(x.ProtoReflect(), componentFields.installedAt, t)
	return x
}

// ComponentConnection is one electrical edge in the component graph,
// directed from the grid towards the consumer.
type ComponentConnection struct {
	m protoreflect.Message
}

func NewComponentConnection() *ComponentConnection {
	File()
	return &ComponentConnection{m: dynamicpb.NewMessage(connectionDesc)}
}

func (x *ComponentConnection) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(connectionDesc)
	}
	return x.m
}

func (x *ComponentConnection) SourceComponentId() uint64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(connectionFields.source).Uint()
}

func (x *ComponentConnection) SetSourceComponentId(id uint64) *ComponentConnection {
	x.ProtoReflect().Set(connectionFields.source, protoreflect.ValueOfUint64(id))
	return x
}

func (x *ComponentConnection) DestinationComponentId() uint64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(connectionFields.destination).Uint()
}

func (x *ComponentConnection) SetDestinationComponentId(id uint64) *ComponentConnection {
	x.ProtoReflect().Set(connectionFields.destination, protoreflect.ValueOfUint64(id))
	return x
}
