// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: housing/v1/housing.proto

package housingv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Document struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OriginalFilename string                 `protobuf:"bytes,2,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	ContentHashHex   string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt          string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	FileSize         int64                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	OcrStatus        string                 `protobuf:"bytes,6,opt,name=ocr_status,json=ocrStatus,proto3" json:"ocr_status,omitempty"`
	LlmStatus        string                 `protobuf:"bytes,7,opt,name=llm_status,json=llmStatus,proto3" json:"llm_status,omitempty"`
	OcrText          string                 `protobuf:"bytes,8,opt,name=ocr_text,json=ocrText,proto3" json:"ocr_text,omitempty"`
	// Sanitized extraction result as a JSON object, empty until extraction
	// succeeds or the record is edited manually.
	PropertiesJson string `protobuf:"bytes,9,opt,name=properties_json,json=propertiesJson,proto3" json:"properties_json,omitempty"`
	ExtractedModel string `protobuf:"bytes,10,opt,name=extracted_model,json=extractedModel,proto3" json:"extracted_model,omitempty"`
	OcrRetryCount  int32  `protobuf:"varint,11,opt,name=ocr_retry_count,json=ocrRetryCount,proto3" json:"ocr_retry_count,omitempty"`
	LlmRetryCount  int32  `protobuf:"varint,12,opt,name=llm_retry_count,json=llmRetryCount,proto3" json:"llm_retry_count,omitempty"`
	OcrError       string `protobuf:"bytes,13,opt,name=ocr_error,json=ocrError,proto3" json:"ocr_error,omitempty"`
	LlmError       string `protobuf:"bytes,14,opt,name=llm_error,json=llmError,proto3" json:"llm_error,omitempty"`
	Favorite       bool   `protobuf:"varint,15,opt,name=favorite,proto3" json:"favorite,omitempty"`
	UploadedAt     string `protobuf:"bytes,16,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_housing_v1_housing_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Document) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *Document) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetOcrStatus() string {
	if x != nil {
		return x.OcrStatus
	}
	return ""
}

func (x *Document) GetLlmStatus() string {
	if x != nil {
		return x.LlmStatus
	}
	return ""
}

func (x *Document) GetOcrText() string {
	if x != nil {
		return x.OcrText
	}
	return ""
}

func (x *Document) GetPropertiesJson() string {
	if x != nil {
		return x.PropertiesJson
	}
	return ""
}

func (x *Document) GetExtractedModel() string {
	if x != nil {
		return x.ExtractedModel
	}
	return ""
}

func (x *Document) GetOcrRetryCount() int32 {
	if x != nil {
		return x.OcrRetryCount
	}
	return 0
}

func (x *Document) GetLlmRetryCount() int32 {
	if x != nil {
		return x.LlmRetryCount
	}
	return 0
}

func (x *Document) GetOcrError() string {
	if x != nil {
		return x.OcrError
	}
	return ""
}

func (x *Document) GetLlmError() string {
	if x != nil {
		return x.LlmError
	}
	return ""
}

func (x *Document) GetFavorite() bool {
	if x != nil {
		return x.Favorite
	}
	return false
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Duplicate     bool                   `protobuf:"varint,2,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *UploadDocumentResponse) GetDuplicate() bool {
	if x != nil {
		return x.Duplicate
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ListDocumentsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// When true, ocr_text and properties_json are omitted from each document.
	SummaryOnly   bool `protobuf:"varint,1,opt,name=summary_only,json=summaryOnly,proto3" json:"summary_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{4}
}

func (x *ListDocumentsRequest) GetSummaryOnly() bool {
	if x != nil {
		return x.SummaryOnly
	}
	return false
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{5}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteDocumentResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type RetryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryRequest) Reset() {
	*x = RetryRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryRequest) ProtoMessage() {}

func (x *RetryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryRequest.ProtoReflect.Descriptor instead.
func (*RetryRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{8}
}

func (x *RetryRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RetryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryResponse) Reset() {
	*x = RetryResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryResponse) ProtoMessage() {}

func (x *RetryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryResponse.ProtoReflect.Descriptor instead.
func (*RetryResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{9}
}

func (x *RetryResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ToggleFavoriteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleFavoriteRequest) Reset() {
	*x = ToggleFavoriteRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleFavoriteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleFavoriteRequest) ProtoMessage() {}

func (x *ToggleFavoriteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleFavoriteRequest.ProtoReflect.Descriptor instead.
func (*ToggleFavoriteRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{10}
}

func (x *ToggleFavoriteRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ToggleFavoriteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Favorite      bool                   `protobuf:"varint,1,opt,name=favorite,proto3" json:"favorite,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleFavoriteResponse) Reset() {
	*x = ToggleFavoriteResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleFavoriteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleFavoriteResponse) ProtoMessage() {}

func (x *ToggleFavoriteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleFavoriteResponse.ProtoReflect.Descriptor instead.
func (*ToggleFavoriteResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{11}
}

func (x *ToggleFavoriteResponse) GetFavorite() bool {
	if x != nil {
		return x.Favorite
	}
	return false
}

type UpdatePropertiesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PropertiesJson string                 `protobuf:"bytes,2,opt,name=properties_json,json=propertiesJson,proto3" json:"properties_json,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UpdatePropertiesRequest) Reset() {
	*x = UpdatePropertiesRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePropertiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePropertiesRequest) ProtoMessage() {}

func (x *UpdatePropertiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePropertiesRequest.ProtoReflect.Descriptor instead.
func (*UpdatePropertiesRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{12}
}

func (x *UpdatePropertiesRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdatePropertiesRequest) GetPropertiesJson() string {
	if x != nil {
		return x.PropertiesJson
	}
	return ""
}

type CleanupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CleanupRequest) Reset() {
	*x = CleanupRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CleanupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CleanupRequest) ProtoMessage() {}

func (x *CleanupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CleanupRequest.ProtoReflect.Descriptor instead.
func (*CleanupRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{13}
}

type CleanupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeletedCount  int32                  `protobuf:"varint,1,opt,name=deleted_count,json=deletedCount,proto3" json:"deleted_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CleanupResponse) Reset() {
	*x = CleanupResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CleanupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CleanupResponse) ProtoMessage() {}

func (x *CleanupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CleanupResponse.ProtoReflect.Descriptor instead.
func (*CleanupResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{14}
}

func (x *CleanupResponse) GetDeletedCount() int32 {
	if x != nil {
		return x.DeletedCount
	}
	return 0
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{15}
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{16}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportDocumentsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ListModelsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListModelsRequest) Reset() {
	*x = ListModelsRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListModelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListModelsRequest) ProtoMessage() {}

func (x *ListModelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListModelsRequest.ProtoReflect.Descriptor instead.
func (*ListModelsRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{17}
}

type ListModelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Models        []string               `protobuf:"bytes,1,rep,name=models,proto3" json:"models,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListModelsResponse) Reset() {
	*x = ListModelsResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListModelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListModelsResponse) ProtoMessage() {}

func (x *ListModelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListModelsResponse.ProtoReflect.Descriptor instead.
func (*ListModelsResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{18}
}

func (x *ListModelsResponse) GetModels() []string {
	if x != nil {
		return x.Models
	}
	return nil
}

type AddModelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddModelRequest) Reset() {
	*x = AddModelRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddModelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddModelRequest) ProtoMessage() {}

func (x *AddModelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddModelRequest.ProtoReflect.Descriptor instead.
func (*AddModelRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{19}
}

func (x *AddModelRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type RemoveModelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveModelRequest) Reset() {
	*x = RemoveModelRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveModelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveModelRequest) ProtoMessage() {}

func (x *RemoveModelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveModelRequest.ProtoReflect.Descriptor instead.
func (*RemoveModelRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{20}
}

func (x *RemoveModelRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ReorderModelsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         []string               `protobuf:"bytes,1,rep,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReorderModelsRequest) Reset() {
	*x = ReorderModelsRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReorderModelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReorderModelsRequest) ProtoMessage() {}

func (x *ReorderModelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReorderModelsRequest.ProtoReflect.Descriptor instead.
func (*ReorderModelsRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{21}
}

func (x *ReorderModelsRequest) GetOrder() []string {
	if x != nil {
		return x.Order
	}
	return nil
}

type Location struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DisplayOrder  int32                  `protobuf:"varint,3,opt,name=display_order,json=displayOrder,proto3" json:"display_order,omitempty"`
	ShowInTag     bool                   `protobuf:"varint,4,opt,name=show_in_tag,json=showInTag,proto3" json:"show_in_tag,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Location) Reset() {
	*x = Location{}
	mi := &file_housing_v1_housing_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Location) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Location) ProtoMessage() {}

func (x *Location) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Location.ProtoReflect.Descriptor instead.
func (*Location) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{22}
}

func (x *Location) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Location) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Location) GetDisplayOrder() int32 {
	if x != nil {
		return x.DisplayOrder
	}
	return 0
}

func (x *Location) GetShowInTag() bool {
	if x != nil {
		return x.ShowInTag
	}
	return false
}

type ListLocationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLocationsRequest) Reset() {
	*x = ListLocationsRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLocationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLocationsRequest) ProtoMessage() {}

func (x *ListLocationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLocationsRequest.ProtoReflect.Descriptor instead.
func (*ListLocationsRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{23}
}

type ListLocationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Locations     []*Location            `protobuf:"bytes,1,rep,name=locations,proto3" json:"locations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLocationsResponse) Reset() {
	*x = ListLocationsResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLocationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLocationsResponse) ProtoMessage() {}

func (x *ListLocationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLocationsResponse.ProtoReflect.Descriptor instead.
func (*ListLocationsResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{24}
}

func (x *ListLocationsResponse) GetLocations() []*Location {
	if x != nil {
		return x.Locations
	}
	return nil
}

type AddLocationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	ShowInTag     bool                   `protobuf:"varint,2,opt,name=show_in_tag,json=showInTag,proto3" json:"show_in_tag,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddLocationRequest) Reset() {
	*x = AddLocationRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddLocationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddLocationRequest) ProtoMessage() {}

func (x *AddLocationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddLocationRequest.ProtoReflect.Descriptor instead.
func (*AddLocationRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{25}
}

func (x *AddLocationRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddLocationRequest) GetShowInTag() bool {
	if x != nil {
		return x.ShowInTag
	}
	return false
}

type DeleteLocationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLocationRequest) Reset() {
	*x = DeleteLocationRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLocationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLocationRequest) ProtoMessage() {}

func (x *DeleteLocationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLocationRequest.ProtoReflect.Descriptor instead.
func (*DeleteLocationRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{26}
}

func (x *DeleteLocationRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteLocationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLocationResponse) Reset() {
	*x = DeleteLocationResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLocationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLocationResponse) ProtoMessage() {}

func (x *DeleteLocationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLocationResponse.ProtoReflect.Descriptor instead.
func (*DeleteLocationResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{27}
}

func (x *DeleteLocationResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ReorderLocationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ids           []string               `protobuf:"bytes,1,rep,name=ids,proto3" json:"ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReorderLocationsRequest) Reset() {
	*x = ReorderLocationsRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReorderLocationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReorderLocationsRequest) ProtoMessage() {}

func (x *ReorderLocationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReorderLocationsRequest.ProtoReflect.Descriptor instead.
func (*ReorderLocationsRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{28}
}

func (x *ReorderLocationsRequest) GetIds() []string {
	if x != nil {
		return x.Ids
	}
	return nil
}

type SetTravelTimeRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	StationName     string                 `protobuf:"bytes,1,opt,name=station_name,json=stationName,proto3" json:"station_name,omitempty"`
	LocationId      string                 `protobuf:"bytes,2,opt,name=location_id,json=locationId,proto3" json:"location_id,omitempty"`
	DurationMinutes int32                  `protobuf:"varint,3,opt,name=duration_minutes,json=durationMinutes,proto3" json:"duration_minutes,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *SetTravelTimeRequest) Reset() {
	*x = SetTravelTimeRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTravelTimeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTravelTimeRequest) ProtoMessage() {}

func (x *SetTravelTimeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTravelTimeRequest.ProtoReflect.Descriptor instead.
func (*SetTravelTimeRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{29}
}

func (x *SetTravelTimeRequest) GetStationName() string {
	if x != nil {
		return x.StationName
	}
	return ""
}

func (x *SetTravelTimeRequest) GetLocationId() string {
	if x != nil {
		return x.LocationId
	}
	return ""
}

func (x *SetTravelTimeRequest) GetDurationMinutes() int32 {
	if x != nil {
		return x.DurationMinutes
	}
	return 0
}

type SetTravelTimeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Updated       bool                   `protobuf:"varint,1,opt,name=updated,proto3" json:"updated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTravelTimeResponse) Reset() {
	*x = SetTravelTimeResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTravelTimeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTravelTimeResponse) ProtoMessage() {}

func (x *SetTravelTimeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTravelTimeResponse.ProtoReflect.Descriptor instead.
func (*SetTravelTimeResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{30}
}

func (x *SetTravelTimeResponse) GetUpdated() bool {
	if x != nil {
		return x.Updated
	}
	return false
}

type GetTravelTimesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Empty returns durations for every station.
	StationName   string `protobuf:"bytes,1,opt,name=station_name,json=stationName,proto3" json:"station_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTravelTimesRequest) Reset() {
	*x = GetTravelTimesRequest{}
	mi := &file_housing_v1_housing_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTravelTimesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTravelTimesRequest) ProtoMessage() {}

func (x *GetTravelTimesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTravelTimesRequest.ProtoReflect.Descriptor instead.
func (*GetTravelTimesRequest) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{31}
}

func (x *GetTravelTimesRequest) GetStationName() string {
	if x != nil {
		return x.StationName
	}
	return ""
}

type TravelTime struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	StationName     string                 `protobuf:"bytes,1,opt,name=station_name,json=stationName,proto3" json:"station_name,omitempty"`
	LocationId      string                 `protobuf:"bytes,2,opt,name=location_id,json=locationId,proto3" json:"location_id,omitempty"`
	LocationName    string                 `protobuf:"bytes,3,opt,name=location_name,json=locationName,proto3" json:"location_name,omitempty"`
	DurationMinutes int32                  `protobuf:"varint,4,opt,name=duration_minutes,json=durationMinutes,proto3" json:"duration_minutes,omitempty"`
	ShowInTag       bool                   `protobuf:"varint,5,opt,name=show_in_tag,json=showInTag,proto3" json:"show_in_tag,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *TravelTime) Reset() {
	*x = TravelTime{}
	mi := &file_housing_v1_housing_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TravelTime) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TravelTime) ProtoMessage() {}

func (x *TravelTime) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TravelTime.ProtoReflect.Descriptor instead.
func (*TravelTime) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{32}
}

func (x *TravelTime) GetStationName() string {
	if x != nil {
		return x.StationName
	}
	return ""
}

func (x *TravelTime) GetLocationId() string {
	if x != nil {
		return x.LocationId
	}
	return ""
}

func (x *TravelTime) GetLocationName() string {
	if x != nil {
		return x.LocationName
	}
	return ""
}

func (x *TravelTime) GetDurationMinutes() int32 {
	if x != nil {
		return x.DurationMinutes
	}
	return 0
}

func (x *TravelTime) GetShowInTag() bool {
	if x != nil {
		return x.ShowInTag
	}
	return false
}

type GetTravelTimesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TravelTimes   []*TravelTime          `protobuf:"bytes,1,rep,name=travel_times,json=travelTimes,proto3" json:"travel_times,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTravelTimesResponse) Reset() {
	*x = GetTravelTimesResponse{}
	mi := &file_housing_v1_housing_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTravelTimesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTravelTimesResponse) ProtoMessage() {}

func (x *GetTravelTimesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_housing_v1_housing_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTravelTimesResponse.ProtoReflect.Descriptor instead.
func (*GetTravelTimesResponse) Descriptor() ([]byte, []int) {
	return file_housing_v1_housing_proto_rawDescGZIP(), []int{33}
}

func (x *GetTravelTimesResponse) GetTravelTimes() []*TravelTime {
	if x != nil {
		return x.TravelTimes
	}
	return nil
}

var File_housing_v1_housing_proto protoreflect.FileDescriptor

const file_housing_v1_housing_proto_rawDesc = "" +
	"\n" +
	"\x18housing/v1/housing.proto\x12\n" +
	"housing.v1\"\x9b\x04\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12+\n" +
	"\x11original_filename\x18\x02 \x01(\tR\x10originalFilename\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x03R\bfileSize\x12\x1d\n" +
	"\n" +
	"ocr_status\x18\x06 \x01(\tR\tocrStatus\x12\x1d\n" +
	"\n" +
	"llm_status\x18\a \x01(\tR\tllmStatus\x12\x19\n" +
	"\bocr_text\x18\b \x01(\tR\aocrText\x12'\n" +
	"\x0fproperties_json\x18\t \x01(\tR\x0epropertiesJson\x12'\n" +
	"\x0fextracted_model\x18\n" +
	" \x01(\tR\x0eextractedModel\x12&\n" +
	"\x0focr_retry_count\x18\v \x01(\x05R\rocrRetryCount\x12&\n" +
	"\x0fllm_retry_count\x18\f \x01(\x05R\rllmRetryCount\x12\x1b\n" +
	"\tocr_error\x18\r \x01(\tR\bocrError\x12\x1b\n" +
	"\tllm_error\x18\x0e \x01(\tR\bllmError\x12\x1a\n" +
	"\bfavorite\x18\x0f \x01(\bR\bfavorite\x12\x1f\n" +
	"\vuploaded_at\x18\x10 \x01(\tR\n" +
	"uploadedAt\"M\n" +
	"\x15UploadDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"h\n" +
	"\x16UploadDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.housing.v1.DocumentR\bdocument\x12\x1c\n" +
	"\tduplicate\x18\x02 \x01(\bR\tduplicate\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"9\n" +
	"\x14ListDocumentsRequest\x12!\n" +
	"\fsummary_only\x18\x01 \x01(\bR\vsummaryOnly\"K\n" +
	"\x15ListDocumentsResponse\x122\n" +
	"\tdocuments\x18\x01 \x03(\v2\x14.housing.v1.DocumentR\tdocuments\"'\n" +
	"\x15DeleteDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"2\n" +
	"\x16DeleteDocumentResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"\x1e\n" +
	"\fRetryRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"A\n" +
	"\rRetryResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.housing.v1.DocumentR\bdocument\"'\n" +
	"\x15ToggleFavoriteRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"4\n" +
	"\x16ToggleFavoriteResponse\x12\x1a\n" +
	"\bfavorite\x18\x01 \x01(\bR\bfavorite\"R\n" +
	"\x17UpdatePropertiesRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0fproperties_json\x18\x02 \x01(\tR\x0epropertiesJson\"\x10\n" +
	"\x0eCleanupRequest\"6\n" +
	"\x0fCleanupResponse\x12#\n" +
	"\rdeleted_count\x18\x01 \x01(\x05R\fdeletedCount\"\x18\n" +
	"\x16ExportDocumentsRequest\"I\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\x13\n" +
	"\x11ListModelsRequest\",\n" +
	"\x12ListModelsResponse\x12\x16\n" +
	"\x06models\x18\x01 \x03(\tR\x06models\"%\n" +
	"\x0fAddModelRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"(\n" +
	"\x12RemoveModelRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\",\n" +
	"\x14ReorderModelsRequest\x12\x14\n" +
	"\x05order\x18\x01 \x03(\tR\x05order\"s\n" +
	"\bLocation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rdisplay_order\x18\x03 \x01(\x05R\fdisplayOrder\x12\x1e\n" +
	"\vshow_in_tag\x18\x04 \x01(\bR\tshowInTag\"\x16\n" +
	"\x14ListLocationsRequest\"K\n" +
	"\x15ListLocationsResponse\x122\n" +
	"\tlocations\x18\x01 \x03(\v2\x14.housing.v1.LocationR\tlocations\"H\n" +
	"\x12AddLocationRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1e\n" +
	"\vshow_in_tag\x18\x02 \x01(\bR\tshowInTag\"'\n" +
	"\x15DeleteLocationRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"2\n" +
	"\x16DeleteLocationResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"+\n" +
	"\x17ReorderLocationsRequest\x12\x10\n" +
	"\x03ids\x18\x01 \x03(\tR\x03ids\"\x85\x01\n" +
	"\x14SetTravelTimeRequest\x12!\n" +
	"\fstation_name\x18\x01 \x01(\tR\vstationName\x12\x1f\n" +
	"\vlocation_id\x18\x02 \x01(\tR\n" +
	"locationId\x12)\n" +
	"\x10duration_minutes\x18\x03 \x01(\x05R\x0fdurationMinutes\"1\n" +
	"\x15SetTravelTimeResponse\x12\x18\n" +
	"\aupdated\x18\x01 \x01(\bR\aupdated\":\n" +
	"\x15GetTravelTimesRequest\x12!\n" +
	"\fstation_name\x18\x01 \x01(\tR\vstationName\"\xc0\x01\n" +
	"\n" +
	"TravelTime\x12!\n" +
	"\fstation_name\x18\x01 \x01(\tR\vstationName\x12\x1f\n" +
	"\vlocation_id\x18\x02 \x01(\tR\n" +
	"locationId\x12#\n" +
	"\rlocation_name\x18\x03 \x01(\tR\flocationName\x12)\n" +
	"\x10duration_minutes\x18\x04 \x01(\x05R\x0fdurationMinutes\x12\x1e\n" +
	"\vshow_in_tag\x18\x05 \x01(\bR\tshowInTag\"S\n" +
	"\x16GetTravelTimesResponse\x129\n" +
	"\ftravel_times\x18\x01 \x03(\v2\x16.housing.v1.TravelTimeR\vtravelTimes2\xaf\x06\n" +
	"\x0fDocumentService\x12W\n" +
	"\x0eUploadDocument\x12!.housing.v1.UploadDocumentRequest\x1a\".housing.v1.UploadDocumentResponse\x12C\n" +
	"\vGetDocument\x12\x1e.housing.v1.GetDocumentRequest\x1a\x14.housing.v1.Document\x12T\n" +
	"\rListDocuments\x12 .housing.v1.ListDocumentsRequest\x1a!.housing.v1.ListDocumentsResponse\x12W\n" +
	"\x0eDeleteDocument\x12!.housing.v1.DeleteDocumentRequest\x1a\".housing.v1.DeleteDocumentResponse\x12?\n" +
	"\bRetryOCR\x12\x18.housing.v1.RetryRequest\x1a\x19.housing.v1.RetryResponse\x12F\n" +
	"\x0fRetryExtraction\x12\x18.housing.v1.RetryRequest\x1a\x19.housing.v1.RetryResponse\x12W\n" +
	"\x0eToggleFavorite\x12!.housing.v1.ToggleFavoriteRequest\x1a\".housing.v1.ToggleFavoriteResponse\x12M\n" +
	"\x10UpdateProperties\x12#.housing.v1.UpdatePropertiesRequest\x1a\x14.housing.v1.Document\x12B\n" +
	"\aCleanup\x12\x1a.housing.v1.CleanupRequest\x1a\x1b.housing.v1.CleanupResponse\x12Z\n" +
	"\x0fExportDocuments\x12\".housing.v1.ExportDocumentsRequest\x1a#.housing.v1.ExportDocumentsResponse2\xc6\x02\n" +
	"\fModelService\x12K\n" +
	"\n" +
	"ListModels\x12\x1d.housing.v1.ListModelsRequest\x1a\x1e.housing.v1.ListModelsResponse\x12G\n" +
	"\bAddModel\x12\x1b.housing.v1.AddModelRequest\x1a\x1e.housing.v1.ListModelsResponse\x12M\n" +
	"\vRemoveModel\x12\x1e.housing.v1.RemoveModelRequest\x1a\x1e.housing.v1.ListModelsResponse\x12Q\n" +
	"\rReorderModels\x12 .housing.v1.ReorderModelsRequest\x1a\x1e.housing.v1.ListModelsResponse2\x92\x04\n" +
	"\x11TravelTimeService\x12T\n" +
	"\rListLocations\x12 .housing.v1.ListLocationsRequest\x1a!.housing.v1.ListLocationsResponse\x12C\n" +
	"\vAddLocation\x12\x1e.housing.v1.AddLocationRequest\x1a\x14.housing.v1.Location\x12W\n" +
	"\x0eDeleteLocation\x12!.housing.v1.DeleteLocationRequest\x1a\".housing.v1.DeleteLocationResponse\x12Z\n" +
	"\x10ReorderLocations\x12#.housing.v1.ReorderLocationsRequest\x1a!.housing.v1.ListLocationsResponse\x12T\n" +
	"\rSetTravelTime\x12 .housing.v1.SetTravelTimeRequest\x1a!.housing.v1.SetTravelTimeResponse\x12W\n" +
	"\x0eGetTravelTimes\x12!.housing.v1.GetTravelTimesRequest\x1a\".housing.v1.GetTravelTimesResponseB?Z=github.com/fyang93/housing-ocr/gen/proto/housing/v1;housingv1b\x06proto3"

var (
	file_housing_v1_housing_proto_rawDescOnce sync.Once
	file_housing_v1_housing_proto_rawDescData []byte
)

func file_housing_v1_housing_proto_rawDescGZIP() []byte {
	file_housing_v1_housing_proto_rawDescOnce.Do(func() {
		file_housing_v1_housing_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_housing_v1_housing_proto_rawDesc), len(file_housing_v1_housing_proto_rawDesc)))
	})
	return file_housing_v1_housing_proto_rawDescData
}

var file_housing_v1_housing_proto_msgTypes = make([]protoimpl.MessageInfo, 34)
var file_housing_v1_housing_proto_goTypes = []any{
	(*Document)(nil),                // 0: housing.v1.Document
	(*UploadDocumentRequest)(nil),   // 1: housing.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),  // 2: housing.v1.UploadDocumentResponse
	(*GetDocumentRequest)(nil),      // 3: housing.v1.GetDocumentRequest
	(*ListDocumentsRequest)(nil),    // 4: housing.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),   // 5: housing.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),   // 6: housing.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),  // 7: housing.v1.DeleteDocumentResponse
	(*RetryRequest)(nil),            // 8: housing.v1.RetryRequest
	(*RetryResponse)(nil),           // 9: housing.v1.RetryResponse
	(*ToggleFavoriteRequest)(nil),   // 10: housing.v1.ToggleFavoriteRequest
	(*ToggleFavoriteResponse)(nil),  // 11: housing.v1.ToggleFavoriteResponse
	(*UpdatePropertiesRequest)(nil), // 12: housing.v1.UpdatePropertiesRequest
	(*CleanupRequest)(nil),          // 13: housing.v1.CleanupRequest
	(*CleanupResponse)(nil),         // 14: housing.v1.CleanupResponse
	(*ExportDocumentsRequest)(nil),  // 15: housing.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 16: housing.v1.ExportDocumentsResponse
	(*ListModelsRequest)(nil),       // 17: housing.v1.ListModelsRequest
	(*ListModelsResponse)(nil),      // 18: housing.v1.ListModelsResponse
	(*AddModelRequest)(nil),         // 19: housing.v1.AddModelRequest
	(*RemoveModelRequest)(nil),      // 20: housing.v1.RemoveModelRequest
	(*ReorderModelsRequest)(nil),    // 21: housing.v1.ReorderModelsRequest
	(*Location)(nil),                // 22: housing.v1.Location
	(*ListLocationsRequest)(nil),    // 23: housing.v1.ListLocationsRequest
	(*ListLocationsResponse)(nil),   // 24: housing.v1.ListLocationsResponse
	(*AddLocationRequest)(nil),      // 25: housing.v1.AddLocationRequest
	(*DeleteLocationRequest)(nil),   // 26: housing.v1.DeleteLocationRequest
	(*DeleteLocationResponse)(nil),  // 27: housing.v1.DeleteLocationResponse
	(*ReorderLocationsRequest)(nil), // 28: housing.v1.ReorderLocationsRequest
	(*SetTravelTimeRequest)(nil),    // 29: housing.v1.SetTravelTimeRequest
	(*SetTravelTimeResponse)(nil),   // 30: housing.v1.SetTravelTimeResponse
	(*GetTravelTimesRequest)(nil),   // 31: housing.v1.GetTravelTimesRequest
	(*TravelTime)(nil),              // 32: housing.v1.TravelTime
	(*GetTravelTimesResponse)(nil),  // 33: housing.v1.GetTravelTimesResponse
}
var file_housing_v1_housing_proto_depIdxs = []int32{
	0,  // 0: housing.v1.UploadDocumentResponse.document:type_name -> housing.v1.Document
	0,  // 1: housing.v1.ListDocumentsResponse.documents:type_name -> housing.v1.Document
	0,  // 2: housing.v1.RetryResponse.document:type_name -> housing.v1.Document
	22, // 3: housing.v1.ListLocationsResponse.locations:type_name -> housing.v1.Location
	32, // 4: housing.v1.GetTravelTimesResponse.travel_times:type_name -> housing.v1.TravelTime
	1,  // 5: housing.v1.DocumentService.UploadDocument:input_type -> housing.v1.UploadDocumentRequest
	3,  // 6: housing.v1.DocumentService.GetDocument:input_type -> housing.v1.GetDocumentRequest
	4,  // 7: housing.v1.DocumentService.ListDocuments:input_type -> housing.v1.ListDocumentsRequest
	6,  // 8: housing.v1.DocumentService.DeleteDocument:input_type -> housing.v1.DeleteDocumentRequest
	8,  // 9: housing.v1.DocumentService.RetryOCR:input_type -> housing.v1.RetryRequest
	8,  // 10: housing.v1.DocumentService.RetryExtraction:input_type -> housing.v1.RetryRequest
	10, // 11: housing.v1.DocumentService.ToggleFavorite:input_type -> housing.v1.ToggleFavoriteRequest
	12, // 12: housing.v1.DocumentService.UpdateProperties:input_type -> housing.v1.UpdatePropertiesRequest
	13, // 13: housing.v1.DocumentService.Cleanup:input_type -> housing.v1.CleanupRequest
	15, // 14: housing.v1.DocumentService.ExportDocuments:input_type -> housing.v1.ExportDocumentsRequest
	17, // 15: housing.v1.ModelService.ListModels:input_type -> housing.v1.ListModelsRequest
	19, // 16: housing.v1.ModelService.AddModel:input_type -> housing.v1.AddModelRequest
	20, // 17: housing.v1.ModelService.RemoveModel:input_type -> housing.v1.RemoveModelRequest
	21, // 18: housing.v1.ModelService.ReorderModels:input_type -> housing.v1.ReorderModelsRequest
	23, // 19: housing.v1.TravelTimeService.ListLocations:input_type -> housing.v1.ListLocationsRequest
	25, // 20: housing.v1.TravelTimeService.AddLocation:input_type -> housing.v1.AddLocationRequest
	26, // 21: housing.v1.TravelTimeService.DeleteLocation:input_type -> housing.v1.DeleteLocationRequest
	28, // 22: housing.v1.TravelTimeService.ReorderLocations:input_type -> housing.v1.ReorderLocationsRequest
	29, // 23: housing.v1.TravelTimeService.SetTravelTime:input_type -> housing.v1.SetTravelTimeRequest
	31, // 24: housing.v1.TravelTimeService.GetTravelTimes:input_type -> housing.v1.GetTravelTimesRequest
	2,  // 25: housing.v1.DocumentService.UploadDocument:output_type -> housing.v1.UploadDocumentResponse
	0,  // 26: housing.v1.DocumentService.GetDocument:output_type -> housing.v1.Document
	5,  // 27: housing.v1.DocumentService.ListDocuments:output_type -> housing.v1.ListDocumentsResponse
	7,  // 28: housing.v1.DocumentService.DeleteDocument:output_type -> housing.v1.DeleteDocumentResponse
	9,  // 29: housing.v1.DocumentService.RetryOCR:output_type -> housing.v1.RetryResponse
	9,  // 30: housing.v1.DocumentService.RetryExtraction:output_type -> housing.v1.RetryResponse
	11, // 31: housing.v1.DocumentService.ToggleFavorite:output_type -> housing.v1.ToggleFavoriteResponse
	0,  // 32: housing.v1.DocumentService.UpdateProperties:output_type -> housing.v1.Document
	14, // 33: housing.v1.DocumentService.Cleanup:output_type -> housing.v1.CleanupResponse
	16, // 34: housing.v1.DocumentService.ExportDocuments:output_type -> housing.v1.ExportDocumentsResponse
	18, // 35: housing.v1.ModelService.ListModels:output_type -> housing.v1.ListModelsResponse
	18, // 36: housing.v1.ModelService.AddModel:output_type -> housing.v1.ListModelsResponse
	18, // 37: housing.v1.ModelService.RemoveModel:output_type -> housing.v1.ListModelsResponse
	18, // 38: housing.v1.ModelService.ReorderModels:output_type -> housing.v1.ListModelsResponse
	24, // 39: housing.v1.TravelTimeService.ListLocations:output_type -> housing.v1.ListLocationsResponse
	22, // 40: housing.v1.TravelTimeService.AddLocation:output_type -> housing.v1.Location
	27, // 41: housing.v1.TravelTimeService.DeleteLocation:output_type -> housing.v1.DeleteLocationResponse
	24, // 42: housing.v1.TravelTimeService.ReorderLocations:output_type -> housing.v1.ListLocationsResponse
	30, // 43: housing.v1.TravelTimeService.SetTravelTime:output_type -> housing.v1.SetTravelTimeResponse
	33, // 44: housing.v1.TravelTimeService.GetTravelTimes:output_type -> housing.v1.GetTravelTimesResponse
	25, // [25:45] is the sub-list for method output_type
	5,  // [5:25] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_housing_v1_housing_proto_init() }
func file_housing_v1_housing_proto_init() {
	if File_housing_v1_housing_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_housing_v1_housing_proto_rawDesc), len(file_housing_v1_housing_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   34,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_housing_v1_housing_proto_goTypes,
		DependencyIndexes: file_housing_v1_housing_proto_depIdxs,
		MessageInfos:      file_housing_v1_housing_proto_msgTypes,
	}.Build()
	File_housing_v1_housing_proto = out.File
	file_housing_v1_housing_proto_goTypes = nil
	file_housing_v1_housing_proto_depIdxs = nil
}
