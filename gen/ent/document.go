// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fyang93/housing-ocr/gen/ent/document"
	"github.com/google/uuid"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// StoredPath holds the value of the "stored_path" field.
	StoredPath string `json:"stored_path,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// OcrStatus holds the value of the "ocr_status" field.
	OcrStatus string `json:"ocr_status,omitempty"`
	// LlmStatus holds the value of the "llm_status" field.
	LlmStatus string `json:"llm_status,omitempty"`
	// OcrText holds the value of the "ocr_text" field.
	OcrText *string `json:"ocr_text,omitempty"`
	// Properties holds the value of the "properties" field.
	Properties json.RawMessage `json:"properties,omitempty"`
	// ExtractedModel holds the value of the "extracted_model" field.
	ExtractedModel *string `json:"extracted_model,omitempty"`
	// OcrRetryCount holds the value of the "ocr_retry_count" field.
	OcrRetryCount int `json:"ocr_retry_count,omitempty"`
	// LlmRetryCount holds the value of the "llm_retry_count" field.
	LlmRetryCount int `json:"llm_retry_count,omitempty"`
	// OcrError holds the value of the "ocr_error" field.
	OcrError *string `json:"ocr_error,omitempty"`
	// LlmError holds the value of the "llm_error" field.
	LlmError *string `json:"llm_error,omitempty"`
	// OcrClaimedAt holds the value of the "ocr_claimed_at" field.
	OcrClaimedAt *time.Time `json:"ocr_claimed_at,omitempty"`
	// LlmClaimedAt holds the value of the "llm_claimed_at" field.
	LlmClaimedAt *time.Time `json:"llm_claimed_at,omitempty"`
	// Favorite holds the value of the "favorite" field.
	Favorite bool `json:"favorite,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt   time.Time `json:"uploaded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldContentHash, document.FieldProperties:
			values[i] = new([]byte)
		case document.FieldFavorite:
			values[i] = new(sql.NullBool)
		case document.FieldFileSize, document.FieldOcrRetryCount, document.FieldLlmRetryCount:
			values[i] = new(sql.NullInt64)
		case document.FieldOriginalFilename, document.FieldStoredPath, document.FieldFileExt, document.FieldOcrStatus, document.FieldLlmStatus, document.FieldOcrText, document.FieldExtractedModel, document.FieldOcrError, document.FieldLlmError:
			values[i] = new(sql.NullString)
		case document.FieldOcrClaimedAt, document.FieldLlmClaimedAt, document.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case document.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case document.FieldStoredPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stored_path", values[i])
			} else if value.Valid {
				_m.StoredPath = value.String
			}
		case document.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case document.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case document.FieldOcrStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_status", values[i])
			} else if value.Valid {
				_m.OcrStatus = value.String
			}
		case document.FieldLlmStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_status", values[i])
			} else if value.Valid {
				_m.LlmStatus = value.String
			}
		case document.FieldOcrText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_text", values[i])
			} else if value.Valid {
				_m.OcrText = new(string)
				*_m.OcrText = value.String
			}
		case document.FieldProperties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field properties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Properties); err != nil {
					return fmt.Errorf("unmarshal field properties: %w", err)
				}
			}
		case document.FieldExtractedModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_model", values[i])
			} else if value.Valid {
				_m.ExtractedModel = new(string)
				*_m.ExtractedModel = value.String
			}
		case document.FieldOcrRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_retry_count", values[i])
			} else if value.Valid {
				_m.OcrRetryCount = int(value.Int64)
			}
		case document.FieldLlmRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field llm_retry_count", values[i])
			} else if value.Valid {
				_m.LlmRetryCount = int(value.Int64)
			}
		case document.FieldOcrError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_error", values[i])
			} else if value.Valid {
				_m.OcrError = new(string)
				*_m.OcrError = value.String
			}
		case document.FieldLlmError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_error", values[i])
			} else if value.Valid {
				_m.LlmError = new(string)
				*_m.LlmError = value.String
			}
		case document.FieldOcrClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_claimed_at", values[i])
			} else if value.Valid {
				_m.OcrClaimedAt = new(time.Time)
				*_m.OcrClaimedAt = value.Time
			}
		case document.FieldLlmClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field llm_claimed_at", values[i])
			} else if value.Valid {
				_m.LlmClaimedAt = new(time.Time)
				*_m.LlmClaimedAt = value.Time
			}
		case document.FieldFavorite:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field favorite", values[i])
			} else if value.Valid {
				_m.Favorite = value.Bool
			}
		case document.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("stored_path=")
	builder.WriteString(_m.StoredPath)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("ocr_status=")
	builder.WriteString(_m.OcrStatus)
	builder.WriteString(", ")
	builder.WriteString("llm_status=")
	builder.WriteString(_m.LlmStatus)
	builder.WriteString(", ")
	if v := _m.OcrText; v != nil {
		builder.WriteString("ocr_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("properties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Properties))
	builder.WriteString(", ")
	if v := _m.ExtractedModel; v != nil {
		builder.WriteString("extracted_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ocr_retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OcrRetryCount))
	builder.WriteString(", ")
	builder.WriteString("llm_retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmRetryCount))
	builder.WriteString(", ")
	if v := _m.OcrError; v != nil {
		builder.WriteString("ocr_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LlmError; v != nil {
		builder.WriteString("llm_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OcrClaimedAt; v != nil {
		builder.WriteString("ocr_claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LlmClaimedAt; v != nil {
		builder.WriteString("llm_claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("favorite=")
	builder.WriteString(fmt.Sprintf("%v", _m.Favorite))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
