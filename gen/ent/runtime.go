// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fyang93/housing-ocr/db/ent/schema"
	"github.com/fyang93/housing-ocr/gen/ent/document"
	"github.com/fyang93/housing-ocr/gen/ent/location"
	"github.com/fyang93/housing-ocr/gen/ent/stationduration"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[1].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescOriginalFilename is the schema descriptor for original_filename field.
	documentDescOriginalFilename := documentFields[2].Descriptor()
	// document.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	document.OriginalFilenameValidator = documentDescOriginalFilename.Validators[0].(func(string) error)
	// documentDescStoredPath is the schema descriptor for stored_path field.
	documentDescStoredPath := documentFields[3].Descriptor()
	// document.StoredPathValidator is a validator for the "stored_path" field. It is called by the builders before save.
	document.StoredPathValidator = documentDescStoredPath.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[4].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[5].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescOcrStatus is the schema descriptor for ocr_status field.
	documentDescOcrStatus := documentFields[6].Descriptor()
	// document.DefaultOcrStatus holds the default value on creation for the ocr_status field.
	document.DefaultOcrStatus = documentDescOcrStatus.Default.(string)
	// documentDescLlmStatus is the schema descriptor for llm_status field.
	documentDescLlmStatus := documentFields[7].Descriptor()
	// document.DefaultLlmStatus holds the default value on creation for the llm_status field.
	document.DefaultLlmStatus = documentDescLlmStatus.Default.(string)
	// documentDescOcrRetryCount is the schema descriptor for ocr_retry_count field.
	documentDescOcrRetryCount := documentFields[11].Descriptor()
	// document.DefaultOcrRetryCount holds the default value on creation for the ocr_retry_count field.
	document.DefaultOcrRetryCount = documentDescOcrRetryCount.Default.(int)
	// document.OcrRetryCountValidator is a validator for the "ocr_retry_count" field. It is called by the builders before save.
	document.OcrRetryCountValidator = documentDescOcrRetryCount.Validators[0].(func(int) error)
	// documentDescLlmRetryCount is the schema descriptor for llm_retry_count field.
	documentDescLlmRetryCount := documentFields[12].Descriptor()
	// document.DefaultLlmRetryCount holds the default value on creation for the llm_retry_count field.
	document.DefaultLlmRetryCount = documentDescLlmRetryCount.Default.(int)
	// document.LlmRetryCountValidator is a validator for the "llm_retry_count" field. It is called by the builders before save.
	document.LlmRetryCountValidator = documentDescLlmRetryCount.Validators[0].(func(int) error)
	// documentDescFavorite is the schema descriptor for favorite field.
	documentDescFavorite := documentFields[17].Descriptor()
	// document.DefaultFavorite holds the default value on creation for the favorite field.
	document.DefaultFavorite = documentDescFavorite.Default.(bool)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[18].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	locationFields := schema.Location{}.Fields()
	_ = locationFields
	// locationDescName is the schema descriptor for name field.
	locationDescName := locationFields[0].Descriptor()
	// location.NameValidator is a validator for the "name" field. It is called by the builders before save.
	location.NameValidator = locationDescName.Validators[0].(func(string) error)
	// locationDescDisplayOrder is the schema descriptor for display_order field.
	locationDescDisplayOrder := locationFields[1].Descriptor()
	// location.DefaultDisplayOrder holds the default value on creation for the display_order field.
	location.DefaultDisplayOrder = locationDescDisplayOrder.Default.(int)
	// locationDescShowInTag is the schema descriptor for show_in_tag field.
	locationDescShowInTag := locationFields[2].Descriptor()
	// location.DefaultShowInTag holds the default value on creation for the show_in_tag field.
	location.DefaultShowInTag = locationDescShowInTag.Default.(bool)
	stationdurationFields := schema.StationDuration{}.Fields()
	_ = stationdurationFields
	// stationdurationDescStationName is the schema descriptor for station_name field.
	stationdurationDescStationName := stationdurationFields[0].Descriptor()
	// stationduration.StationNameValidator is a validator for the "station_name" field. It is called by the builders before save.
	stationduration.StationNameValidator = stationdurationDescStationName.Validators[0].(func(string) error)
	// stationdurationDescDuration is the schema descriptor for duration field.
	stationdurationDescDuration := stationdurationFields[2].Descriptor()
	// stationduration.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	stationduration.DurationValidator = stationdurationDescDuration.Validators[0].(func(int) error)
}
