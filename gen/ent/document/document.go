// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldStoredPath holds the string denoting the stored_path field in the database.
	FieldStoredPath = "stored_path"
	// FieldFileExt holds the string denoting the file_ext field in the database.
	FieldFileExt = "file_ext"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldOcrStatus holds the string denoting the ocr_status field in the database.
	FieldOcrStatus = "ocr_status"
	// FieldLlmStatus holds the string denoting the llm_status field in the database.
	FieldLlmStatus = "llm_status"
	// FieldOcrText holds the string denoting the ocr_text field in the database.
	FieldOcrText = "ocr_text"
	// FieldProperties holds the string denoting the properties field in the database.
	FieldProperties = "properties"
	// FieldExtractedModel holds the string denoting the extracted_model field in the database.
	FieldExtractedModel = "extracted_model"
	// FieldOcrRetryCount holds the string denoting the ocr_retry_count field in the database.
	FieldOcrRetryCount = "ocr_retry_count"
	// FieldLlmRetryCount holds the string denoting the llm_retry_count field in the database.
	FieldLlmRetryCount = "llm_retry_count"
	// FieldOcrError holds the string denoting the ocr_error field in the database.
	FieldOcrError = "ocr_error"
	// FieldLlmError holds the string denoting the llm_error field in the database.
	FieldLlmError = "llm_error"
	// FieldOcrClaimedAt holds the string denoting the ocr_claimed_at field in the database.
	FieldOcrClaimedAt = "ocr_claimed_at"
	// FieldLlmClaimedAt holds the string denoting the llm_claimed_at field in the database.
	FieldLlmClaimedAt = "llm_claimed_at"
	// FieldFavorite holds the string denoting the favorite field in the database.
	FieldFavorite = "favorite"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// Table holds the table name of the document in the database.
	Table = "documents"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldContentHash,
	FieldOriginalFilename,
	FieldStoredPath,
	FieldFileExt,
	FieldFileSize,
	FieldOcrStatus,
	FieldLlmStatus,
	FieldOcrText,
	FieldProperties,
	FieldExtractedModel,
	FieldOcrRetryCount,
	FieldLlmRetryCount,
	FieldOcrError,
	FieldLlmError,
	FieldOcrClaimedAt,
	FieldLlmClaimedAt,
	FieldFavorite,
	FieldUploadedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func([]byte) error
	// OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	OriginalFilenameValidator func(string) error
	// StoredPathValidator is a validator for the "stored_path" field. It is called by the builders before save.
	StoredPathValidator func(string) error
	// FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	FileExtValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// DefaultOcrStatus holds the default value on creation for the "ocr_status" field.
	DefaultOcrStatus string
	// DefaultLlmStatus holds the default value on creation for the "llm_status" field.
	DefaultLlmStatus string
	// DefaultOcrRetryCount holds the default value on creation for the "ocr_retry_count" field.
	DefaultOcrRetryCount int
	// OcrRetryCountValidator is a validator for the "ocr_retry_count" field. It is called by the builders before save.
	OcrRetryCountValidator func(int) error
	// DefaultLlmRetryCount holds the default value on creation for the "llm_retry_count" field.
	DefaultLlmRetryCount int
	// LlmRetryCountValidator is a validator for the "llm_retry_count" field. It is called by the builders before save.
	LlmRetryCountValidator func(int) error
	// DefaultFavorite holds the default value on creation for the "favorite" field.
	DefaultFavorite bool
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByStoredPath orders the results by the stored_path field.
func ByStoredPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoredPath, opts...).ToFunc()
}

// ByFileExt orders the results by the file_ext field.
func ByFileExt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileExt, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByOcrStatus orders the results by the ocr_status field.
func ByOcrStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrStatus, opts...).ToFunc()
}

// ByLlmStatus orders the results by the llm_status field.
func ByLlmStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmStatus, opts...).ToFunc()
}

// ByOcrText orders the results by the ocr_text field.
func ByOcrText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrText, opts...).ToFunc()
}

// ByExtractedModel orders the results by the extracted_model field.
func ByExtractedModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedModel, opts...).ToFunc()
}

// ByOcrRetryCount orders the results by the ocr_retry_count field.
func ByOcrRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrRetryCount, opts...).ToFunc()
}

// ByLlmRetryCount orders the results by the llm_retry_count field.
func ByLlmRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmRetryCount, opts...).ToFunc()
}

// ByOcrError orders the results by the ocr_error field.
func ByOcrError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrError, opts...).ToFunc()
}

// ByLlmError orders the results by the llm_error field.
func ByLlmError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmError, opts...).ToFunc()
}

// ByOcrClaimedAt orders the results by the ocr_claimed_at field.
func ByOcrClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrClaimedAt, opts...).ToFunc()
}

// ByLlmClaimedAt orders the results by the llm_claimed_at field.
func ByLlmClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmClaimedAt, opts...).ToFunc()
}

// ByFavorite orders the results by the favorite field.
func ByFavorite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFavorite, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}
