package componentspb

import (
	"time"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/microgrid-os/mg-golang/pkg/api/schema"
)

// Request and response messages for the ComponentRegistry service.

type GetComponentRequest struct {
	m protoreflect.Message
}

func NewGetComponentRequest() *GetComponentRequest {
	File()
	return &GetComponentRequest{m: dynamicpb.NewMessage(getRequestDesc)}
}

func (x *GetComponentRequest) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(getRequestDesc)
	}
	return x.m
}

func (x *GetComponentRequest) Id() uint64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(getRequestFields.id).Uint()
}

func (x *GetComponentRequest) SetId(id uint64) *GetComponentRequest {
	x.ProtoReflect().Set(getRequestFields.id, protoreflect.ValueOfUint64(id))
	return x
}

func (x *GetComponentRequest) ReadMask() *fieldmaskpb.FieldMask {
	if x == nil {
		return nil
	}
	return schema.GetFieldMask(x.ProtoReflect(), getRequestFields.readMask)
}

func (x *GetComponentRequest) SetReadMask(mask *fieldmaskpb.FieldMask) *GetComponentRequest {
	schema.SetFieldMask(x.ProtoReflect(), getRequestFields.readMask, mask)
	return x
}

type ListComponentsRequest struct {
	m protoreflect.Message
}

func NewListComponentsRequest() *ListComponentsRequest {
	File()
	return &ListComponentsRequest{m: dynamicpb.NewMessage(listRequestDesc)}
}

func (x *ListComponentsRequest) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(listRequestDesc)
	}
	return x.m
}

func (x *ListComponentsRequest) PageSize() int32 {
	if x == nil {
		return 0
	}
	return int32(x.ProtoReflect().Get(listRequestFields.pageSize).Int())
}

func (x *ListComponentsRequest) SetPageSize(n int32) *ListComponentsRequest {
	x.ProtoReflect().Set(listRequestFields.pageSize, protoreflect.ValueOfInt32(n))
	return x
}

func (x *ListComponentsRequest) PageToken() string {
	if x == nil {
		return ""
	}
	return x.ProtoReflect().Get(listRequestFields.pageToken).String()
}

func (x *ListComponentsRequest) SetPageToken(token string) *ListComponentsRequest {
	x.ProtoReflect().Set(listRequestFields.pageToken, protoreflect.ValueOfString(token))
	return x
}

func (x *ListComponentsRequest) ReadMask() *fieldmaskpb.FieldMask {
	if x == nil {
		return nil
	}
	return schema.GetFieldMask(x.ProtoReflect(), listRequestFields.readMask)
}

func (x *ListComponentsRequest) SetReadMask(mask *fieldmaskpb.FieldMask) *ListComponentsRequest {
	schema.SetFieldMask(x.ProtoReflect(), listRequestFields.readMask, mask)
	return x
}

type ListComponentsResponse struct {
	m protoreflect.Message
}

func NewListComponentsResponse() *ListComponentsResponse {
	File()
	return &ListComponentsResponse{m: dynamicpb.NewMessage(listResponseDesc)}
}

func (x *ListComponentsResponse) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(listResponseDesc)
	}
	return x.m
}

func (x *ListComponentsResponse) Components() []*Component {
	if x == nil {
		return nil
	}
	list := x.ProtoReflect().Get(listRespFields.components).List()
	out := make([]*Component, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, &Component{m: list.Get(i).Message()})
	}
	return out
}

func (x *ListComponentsResponse) AddComponents(components ...*Component) *ListComponentsResponse {
	list := x.ProtoReflect().Mutable(listRespFields.components).List()
	for _, c := range components {
		list.Append(protoreflect.ValueOfMessage(c.ProtoReflect()))
	}
	return x
}

func (x *ListComponentsResponse) NextPageToken() string {
	if x == nil {
		return ""
	}
	return x.ProtoReflect().Get(listRespFields.nextPageToken).String()
}

func (x *ListComponentsResponse) SetNextPageToken(token string) *ListComponentsResponse {
	x.ProtoReflect().Set(listRespFields.nextPageToken, protoreflect.ValueOfString(token))
	return x
}

func (x *ListComponentsResponse) TotalSize() int32 {
	if x == nil {
		return 0
	}
	return int32(x.ProtoReflect().Get(listRespFields.totalSize).Int())
}

func (x *ListComponentsResponse) SetTotalSize(n int32) *ListComponentsResponse {
	x.ProtoReflect().Set(listRespFields.totalSize, protoreflect.ValueOfInt32(n))
	return x
}

type WatchComponentsRequest struct {
	m protoreflect.Message
}

func NewWatchComponentsRequest() *WatchComponentsRequest {
	File()
	return &WatchComponentsRequest{m: dynamicpb.NewMessage(watchRequestDesc)}
}

func (x *WatchComponentsRequest) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(watchRequestDesc)
	}
	return x.m
}

func (x *WatchComponentsRequest) ReadMask() *fieldmaskpb.FieldMask {
	if x == nil {
		return nil
	}
	return schema.GetFieldMask(x.ProtoReflect(), watchReqFields.readMask)
}

func (x *WatchComponentsRequest) SetReadMask(mask *fieldmaskpb.FieldMask) *WatchComponentsRequest {
	schema.SetFieldMask(x.ProtoReflect(), watchReqFields.readMask, mask)
	return x
}

func (x *WatchComponentsRequest) UpdatesOnly() bool {
	if x == nil {
		return false
	}
	return x.ProtoReflect().Get(watchReqFields.updatesOnly).Bool()
}

func (x *WatchComponentsRequest) SetUpdatesOnly(updatesOnly bool) *WatchComponentsRequest {
	x.ProtoReflect().Set(watchReqFields.updatesOnly, protoreflect.ValueOfBool(updatesOnly))
	return x
}

type WatchComponentsResponse struct {
	m protoreflect.Message
}

func NewWatchComponentsResponse() *WatchComponentsResponse {
	File()
	return &WatchComponentsResponse{m: dynamicpb.NewMessage(watchResponseDesc)}
}

func (x *WatchComponentsResponse) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(watchResponseDesc)
	}
	return x.m
}

func (x *WatchComponentsResponse) Type() ChangeType {
	if x == nil {
		return ChangeUnspecified
	}
	return ChangeType(x.ProtoReflect().Get(watchRespFields.typ).Enum())
}

func (x *WatchComponentsResponse) SetType(t ChangeType) *WatchComponentsResponse {
	x.ProtoReflect().Set(watchRespFields.typ, protoreflect.ValueOfEnum(protoreflect.EnumNumber(t)))
	return x
}

func (x *WatchComponentsResponse) OldValue() *Component {
	if x == nil {
		return nil
	}
	m := x.ProtoReflect()
	if !m.Has(watchRespFields.oldValue) {
		return nil
	}
	return &Component{m: m.Get(watchRespFields.oldValue).Message()}
}

func (x *WatchComponentsResponse) SetOldValue(c *Component) *WatchComponentsResponse {
	m := x.ProtoReflect()
	if c == nil {
		m.Clear(watchRespFields.oldValue)
		return x
	}
	m.Set(watchRespFields.oldValue, protoreflect.ValueOfMessage(c.ProtoReflect()))
	return x
}

func (x *WatchComponentsResponse) NewValue() *Component {
	if x == nil {
		return nil
	}
	m := x.ProtoReflect()
	if !m.Has(watchRespFields.newValue) {
		return nil
	}
	return &Component{m: m.Get(watchRespFields.newValue).Message()}
}

func (x *WatchComponentsResponse) SetNewValue(c *Component) *WatchComponentsResponse {
	m := x.ProtoReflect()
	if c == nil {
		m.Clear(watchRespFields.newValue)
		return x
	}
	m.Set(watchRespFields.newValue, protoreflect.ValueOfMessage(c.ProtoReflect()))
	return x
}

func (x *WatchComponentsResponse) ChangeTime() time.Time {
	if x == nil {
		return time.Time{}
	}
	return schema.GetTime(x.ProtoReflect(), watchRespFields.changeTime)
}

func (x *WatchComponentsResponse) SetChangeTime(t time.Time) *WatchComponentsResponse {
	schema.SetTime(x.ProtoReflect(), watchRespFields.changeTime, t)
	return x
}
