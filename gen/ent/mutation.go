// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fyang93/housing-ocr/gen/ent/document"
	"github.com/fyang93/housing-ocr/gen/ent/location"
	"github.com/fyang93/housing-ocr/gen/ent/predicate"
	"github.com/fyang93/housing-ocr/gen/ent/stationduration"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument        = "Document"
	TypeLocation        = "Location"
	TypeStationDuration = "StationDuration"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	content_hash       *[]byte
	original_filename  *string
	stored_path        *string
	file_ext           *string
	file_size          *int
	addfile_size       *int
	ocr_status         *string
	llm_status         *string
	ocr_text           *string
	properties         *json.RawMessage
	appendproperties   json.RawMessage
	extracted_model    *string
	ocr_retry_count    *int
	addocr_retry_count *int
	llm_retry_count    *int
	addllm_retry_count *int
	ocr_error          *string
	llm_error          *string
	ocr_claimed_at     *time.Time
	llm_claimed_at     *time.Time
	favorite           *bool
	uploaded_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *DocumentMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *DocumentMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *DocumentMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetStoredPath sets the "stored_path" field.
func (m *DocumentMutation) SetStoredPath(s string) {
	m.stored_path = &s
}

// StoredPath returns the value of the "stored_path" field in the mutation.
func (m *DocumentMutation) StoredPath() (r string, exists bool) {
	v := m.stored_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredPath returns the old "stored_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoredPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredPath: %w", err)
	}
	return oldValue.StoredPath, nil
}

// ResetStoredPath resets all changes to the "stored_path" field.
func (m *DocumentMutation) ResetStoredPath() {
	m.stored_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetOcrStatus sets the "ocr_status" field.
func (m *DocumentMutation) SetOcrStatus(s string) {
	m.ocr_status = &s
}

// OcrStatus returns the value of the "ocr_status" field in the mutation.
func (m *DocumentMutation) OcrStatus() (r string, exists bool) {
	v := m.ocr_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrStatus returns the old "ocr_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrStatus: %w", err)
	}
	return oldValue.OcrStatus, nil
}

// ResetOcrStatus resets all changes to the "ocr_status" field.
func (m *DocumentMutation) ResetOcrStatus() {
	m.ocr_status = nil
}

// SetLlmStatus sets the "llm_status" field.
func (m *DocumentMutation) SetLlmStatus(s string) {
	m.llm_status = &s
}

// LlmStatus returns the value of the "llm_status" field in the mutation.
func (m *DocumentMutation) LlmStatus() (r string, exists bool) {
	v := m.llm_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmStatus returns the old "llm_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLlmStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmStatus: %w", err)
	}
	return oldValue.LlmStatus, nil
}

// ResetLlmStatus resets all changes to the "llm_status" field.
func (m *DocumentMutation) ResetLlmStatus() {
	m.llm_status = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *DocumentMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *DocumentMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *DocumentMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[document.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *DocumentMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *DocumentMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, document.FieldOcrText)
}

// SetProperties sets the "properties" field.
func (m *DocumentMutation) SetProperties(jm json.RawMessage) {
	m.properties = &jm
	m.appendproperties = nil
}

// Properties returns the value of the "properties" field in the mutation.
func (m *DocumentMutation) Properties() (r json.RawMessage, exists bool) {
	v := m.properties
	if v == nil {
		return
	}
	return *v, true
}

// OldProperties returns the old "properties" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProperties(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperties: %w", err)
	}
	return oldValue.Properties, nil
}

// AppendProperties adds jm to the "properties" field.
func (m *DocumentMutation) AppendProperties(jm json.RawMessage) {
	m.appendproperties = append(m.appendproperties, jm...)
}

// AppendedProperties returns the list of values that were appended to the "properties" field in this mutation.
func (m *DocumentMutation) AppendedProperties() (json.RawMessage, bool) {
	if len(m.appendproperties) == 0 {
		return nil, false
	}
	return m.appendproperties, true
}

// ClearProperties clears the value of the "properties" field.
func (m *DocumentMutation) ClearProperties() {
	m.properties = nil
	m.appendproperties = nil
	m.clearedFields[document.FieldProperties] = struct{}{}
}

// PropertiesCleared returns if the "properties" field was cleared in this mutation.
func (m *DocumentMutation) PropertiesCleared() bool {
	_, ok := m.clearedFields[document.FieldProperties]
	return ok
}

// ResetProperties resets all changes to the "properties" field.
func (m *DocumentMutation) ResetProperties() {
	m.properties = nil
	m.appendproperties = nil
	delete(m.clearedFields, document.FieldProperties)
}

// SetExtractedModel sets the "extracted_model" field.
func (m *DocumentMutation) SetExtractedModel(s string) {
	m.extracted_model = &s
}

// ExtractedModel returns the value of the "extracted_model" field in the mutation.
func (m *DocumentMutation) ExtractedModel() (r string, exists bool) {
	v := m.extracted_model
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedModel returns the old "extracted_model" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedModel: %w", err)
	}
	return oldValue.ExtractedModel, nil
}

// ClearExtractedModel clears the value of the "extracted_model" field.
func (m *DocumentMutation) ClearExtractedModel() {
	m.extracted_model = nil
	m.clearedFields[document.FieldExtractedModel] = struct{}{}
}

// ExtractedModelCleared returns if the "extracted_model" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedModelCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedModel]
	return ok
}

// ResetExtractedModel resets all changes to the "extracted_model" field.
func (m *DocumentMutation) ResetExtractedModel() {
	m.extracted_model = nil
	delete(m.clearedFields, document.FieldExtractedModel)
}

// SetOcrRetryCount sets the "ocr_retry_count" field.
func (m *DocumentMutation) SetOcrRetryCount(i int) {
	m.ocr_retry_count = &i
	m.addocr_retry_count = nil
}

// OcrRetryCount returns the value of the "ocr_retry_count" field in the mutation.
func (m *DocumentMutation) OcrRetryCount() (r int, exists bool) {
	v := m.ocr_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrRetryCount returns the old "ocr_retry_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrRetryCount: %w", err)
	}
	return oldValue.OcrRetryCount, nil
}

// AddOcrRetryCount adds i to the "ocr_retry_count" field.
func (m *DocumentMutation) AddOcrRetryCount(i int) {
	if m.addocr_retry_count != nil {
		*m.addocr_retry_count += i
	} else {
		m.addocr_retry_count = &i
	}
}

// AddedOcrRetryCount returns the value that was added to the "ocr_retry_count" field in this mutation.
func (m *DocumentMutation) AddedOcrRetryCount() (r int, exists bool) {
	v := m.addocr_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOcrRetryCount resets all changes to the "ocr_retry_count" field.
func (m *DocumentMutation) ResetOcrRetryCount() {
	m.ocr_retry_count = nil
	m.addocr_retry_count = nil
}

// SetLlmRetryCount sets the "llm_retry_count" field.
func (m *DocumentMutation) SetLlmRetryCount(i int) {
	m.llm_retry_count = &i
	m.addllm_retry_count = nil
}

// LlmRetryCount returns the value of the "llm_retry_count" field in the mutation.
func (m *DocumentMutation) LlmRetryCount() (r int, exists bool) {
	v := m.llm_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmRetryCount returns the old "llm_retry_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLlmRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmRetryCount: %w", err)
	}
	return oldValue.LlmRetryCount, nil
}

// AddLlmRetryCount adds i to the "llm_retry_count" field.
func (m *DocumentMutation) AddLlmRetryCount(i int) {
	if m.addllm_retry_count != nil {
		*m.addllm_retry_count += i
	} else {
		m.addllm_retry_count = &i
	}
}

// AddedLlmRetryCount returns the value that was added to the "llm_retry_count" field in this mutation.
func (m *DocumentMutation) AddedLlmRetryCount() (r int, exists bool) {
	v := m.addllm_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLlmRetryCount resets all changes to the "llm_retry_count" field.
func (m *DocumentMutation) ResetLlmRetryCount() {
	m.llm_retry_count = nil
	m.addllm_retry_count = nil
}

// SetOcrError sets the "ocr_error" field.
func (m *DocumentMutation) SetOcrError(s string) {
	m.ocr_error = &s
}

// OcrError returns the value of the "ocr_error" field in the mutation.
func (m *DocumentMutation) OcrError() (r string, exists bool) {
	v := m.ocr_error
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrError returns the old "ocr_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrError: %w", err)
	}
	return oldValue.OcrError, nil
}

// ClearOcrError clears the value of the "ocr_error" field.
func (m *DocumentMutation) ClearOcrError() {
	m.ocr_error = nil
	m.clearedFields[document.FieldOcrError] = struct{}{}
}

// OcrErrorCleared returns if the "ocr_error" field was cleared in this mutation.
func (m *DocumentMutation) OcrErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrError]
	return ok
}

// ResetOcrError resets all changes to the "ocr_error" field.
func (m *DocumentMutation) ResetOcrError() {
	m.ocr_error = nil
	delete(m.clearedFields, document.FieldOcrError)
}

// SetLlmError sets the "llm_error" field.
func (m *DocumentMutation) SetLlmError(s string) {
	m.llm_error = &s
}

// LlmError returns the value of the "llm_error" field in the mutation.
func (m *DocumentMutation) LlmError() (r string, exists bool) {
	v := m.llm_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmError returns the old "llm_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLlmError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmError: %w", err)
	}
	return oldValue.LlmError, nil
}

// ClearLlmError clears the value of the "llm_error" field.
func (m *DocumentMutation) ClearLlmError() {
	m.llm_error = nil
	m.clearedFields[document.FieldLlmError] = struct{}{}
}

// LlmErrorCleared returns if the "llm_error" field was cleared in this mutation.
func (m *DocumentMutation) LlmErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldLlmError]
	return ok
}

// ResetLlmError resets all changes to the "llm_error" field.
func (m *DocumentMutation) ResetLlmError() {
	m.llm_error = nil
	delete(m.clearedFields, document.FieldLlmError)
}

// SetOcrClaimedAt sets the "ocr_claimed_at" field.
func (m *DocumentMutation) SetOcrClaimedAt(t time.Time) {
	m.ocr_claimed_at = &t
}

// OcrClaimedAt returns the value of the "ocr_claimed_at" field in the mutation.
func (m *DocumentMutation) OcrClaimedAt() (r time.Time, exists bool) {
	v := m.ocr_claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrClaimedAt returns the old "ocr_claimed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrClaimedAt: %w", err)
	}
	return oldValue.OcrClaimedAt, nil
}

// ClearOcrClaimedAt clears the value of the "ocr_claimed_at" field.
func (m *DocumentMutation) ClearOcrClaimedAt() {
	m.ocr_claimed_at = nil
	m.clearedFields[document.FieldOcrClaimedAt] = struct{}{}
}

// OcrClaimedAtCleared returns if the "ocr_claimed_at" field was cleared in this mutation.
func (m *DocumentMutation) OcrClaimedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrClaimedAt]
	return ok
}

// ResetOcrClaimedAt resets all changes to the "ocr_claimed_at" field.
func (m *DocumentMutation) ResetOcrClaimedAt() {
	m.ocr_claimed_at = nil
	delete(m.clearedFields, document.FieldOcrClaimedAt)
}

// SetLlmClaimedAt sets the "llm_claimed_at" field.
func (m *DocumentMutation) SetLlmClaimedAt(t time.Time) {
	m.llm_claimed_at = &t
}

// LlmClaimedAt returns the value of the "llm_claimed_at" field in the mutation.
func (m *DocumentMutation) LlmClaimedAt() (r time.Time, exists bool) {
	v := m.llm_claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmClaimedAt returns the old "llm_claimed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLlmClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmClaimedAt: %w", err)
	}
	return oldValue.LlmClaimedAt, nil
}

// ClearLlmClaimedAt clears the value of the "llm_claimed_at" field.
func (m *DocumentMutation) ClearLlmClaimedAt() {
	m.llm_claimed_at = nil
	m.clearedFields[document.FieldLlmClaimedAt] = struct{}{}
}

// LlmClaimedAtCleared returns if the "llm_claimed_at" field was cleared in this mutation.
func (m *DocumentMutation) LlmClaimedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldLlmClaimedAt]
	return ok
}

// ResetLlmClaimedAt resets all changes to the "llm_claimed_at" field.
func (m *DocumentMutation) ResetLlmClaimedAt() {
	m.llm_claimed_at = nil
	delete(m.clearedFields, document.FieldLlmClaimedAt)
}

// SetFavorite sets the "favorite" field.
func (m *DocumentMutation) SetFavorite(b bool) {
	m.favorite = &b
}

// Favorite returns the value of the "favorite" field in the mutation.
func (m *DocumentMutation) Favorite() (r bool, exists bool) {
	v := m.favorite
	if v == nil {
		return
	}
	return *v, true
}

// OldFavorite returns the old "favorite" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFavorite(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFavorite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFavorite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFavorite: %w", err)
	}
	return oldValue.Favorite, nil
}

// ResetFavorite resets all changes to the "favorite" field.
func (m *DocumentMutation) ResetFavorite() {
	m.favorite = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.original_filename != nil {
		fields = append(fields, document.FieldOriginalFilename)
	}
	if m.stored_path != nil {
		fields = append(fields, document.FieldStoredPath)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.ocr_status != nil {
		fields = append(fields, document.FieldOcrStatus)
	}
	if m.llm_status != nil {
		fields = append(fields, document.FieldLlmStatus)
	}
	if m.ocr_text != nil {
		fields = append(fields, document.FieldOcrText)
	}
	if m.properties != nil {
		fields = append(fields, document.FieldProperties)
	}
	if m.extracted_model != nil {
		fields = append(fields, document.FieldExtractedModel)
	}
	if m.ocr_retry_count != nil {
		fields = append(fields, document.FieldOcrRetryCount)
	}
	if m.llm_retry_count != nil {
		fields = append(fields, document.FieldLlmRetryCount)
	}
	if m.ocr_error != nil {
		fields = append(fields, document.FieldOcrError)
	}
	if m.llm_error != nil {
		fields = append(fields, document.FieldLlmError)
	}
	if m.ocr_claimed_at != nil {
		fields = append(fields, document.FieldOcrClaimedAt)
	}
	if m.llm_claimed_at != nil {
		fields = append(fields, document.FieldLlmClaimedAt)
	}
	if m.favorite != nil {
		fields = append(fields, document.FieldFavorite)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldOriginalFilename:
		return m.OriginalFilename()
	case document.FieldStoredPath:
		return m.StoredPath()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldOcrStatus:
		return m.OcrStatus()
	case document.FieldLlmStatus:
		return m.LlmStatus()
	case document.FieldOcrText:
		return m.OcrText()
	case document.FieldProperties:
		return m.Properties()
	case document.FieldExtractedModel:
		return m.ExtractedModel()
	case document.FieldOcrRetryCount:
		return m.OcrRetryCount()
	case document.FieldLlmRetryCount:
		return m.LlmRetryCount()
	case document.FieldOcrError:
		return m.OcrError()
	case document.FieldLlmError:
		return m.LlmError()
	case document.FieldOcrClaimedAt:
		return m.OcrClaimedAt()
	case document.FieldLlmClaimedAt:
		return m.LlmClaimedAt()
	case document.FieldFavorite:
		return m.Favorite()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case document.FieldStoredPath:
		return m.OldStoredPath(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldOcrStatus:
		return m.OldOcrStatus(ctx)
	case document.FieldLlmStatus:
		return m.OldLlmStatus(ctx)
	case document.FieldOcrText:
		return m.OldOcrText(ctx)
	case document.FieldProperties:
		return m.OldProperties(ctx)
	case document.FieldExtractedModel:
		return m.OldExtractedModel(ctx)
	case document.FieldOcrRetryCount:
		return m.OldOcrRetryCount(ctx)
	case document.FieldLlmRetryCount:
		return m.OldLlmRetryCount(ctx)
	case document.FieldOcrError:
		return m.OldOcrError(ctx)
	case document.FieldLlmError:
		return m.OldLlmError(ctx)
	case document.FieldOcrClaimedAt:
		return m.OldOcrClaimedAt(ctx)
	case document.FieldLlmClaimedAt:
		return m.OldLlmClaimedAt(ctx)
	case document.FieldFavorite:
		return m.OldFavorite(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case document.FieldStoredPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredPath(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldOcrStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrStatus(v)
		return nil
	case document.FieldLlmStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmStatus(v)
		return nil
	case document.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case document.FieldProperties:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperties(v)
		return nil
	case document.FieldExtractedModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedModel(v)
		return nil
	case document.FieldOcrRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrRetryCount(v)
		return nil
	case document.FieldLlmRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmRetryCount(v)
		return nil
	case document.FieldOcrError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrError(v)
		return nil
	case document.FieldLlmError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmError(v)
		return nil
	case document.FieldOcrClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrClaimedAt(v)
		return nil
	case document.FieldLlmClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmClaimedAt(v)
		return nil
	case document.FieldFavorite:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFavorite(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.addocr_retry_count != nil {
		fields = append(fields, document.FieldOcrRetryCount)
	}
	if m.addllm_retry_count != nil {
		fields = append(fields, document.FieldLlmRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	case document.FieldOcrRetryCount:
		return m.AddedOcrRetryCount()
	case document.FieldLlmRetryCount:
		return m.AddedLlmRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case document.FieldOcrRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrRetryCount(v)
		return nil
	case document.FieldLlmRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLlmRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldOcrText) {
		fields = append(fields, document.FieldOcrText)
	}
	if m.FieldCleared(document.FieldProperties) {
		fields = append(fields, document.FieldProperties)
	}
	if m.FieldCleared(document.FieldExtractedModel) {
		fields = append(fields, document.FieldExtractedModel)
	}
	if m.FieldCleared(document.FieldOcrError) {
		fields = append(fields, document.FieldOcrError)
	}
	if m.FieldCleared(document.FieldLlmError) {
		fields = append(fields, document.FieldLlmError)
	}
	if m.FieldCleared(document.FieldOcrClaimedAt) {
		fields = append(fields, document.FieldOcrClaimedAt)
	}
	if m.FieldCleared(document.FieldLlmClaimedAt) {
		fields = append(fields, document.FieldLlmClaimedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldOcrText:
		m.ClearOcrText()
		return nil
	case document.FieldProperties:
		m.ClearProperties()
		return nil
	case document.FieldExtractedModel:
		m.ClearExtractedModel()
		return nil
	case document.FieldOcrError:
		m.ClearOcrError()
		return nil
	case document.FieldLlmError:
		m.ClearLlmError()
		return nil
	case document.FieldOcrClaimedAt:
		m.ClearOcrClaimedAt()
		return nil
	case document.FieldLlmClaimedAt:
		m.ClearLlmClaimedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case document.FieldStoredPath:
		m.ResetStoredPath()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldOcrStatus:
		m.ResetOcrStatus()
		return nil
	case document.FieldLlmStatus:
		m.ResetLlmStatus()
		return nil
	case document.FieldOcrText:
		m.ResetOcrText()
		return nil
	case document.FieldProperties:
		m.ResetProperties()
		return nil
	case document.FieldExtractedModel:
		m.ResetExtractedModel()
		return nil
	case document.FieldOcrRetryCount:
		m.ResetOcrRetryCount()
		return nil
	case document.FieldLlmRetryCount:
		m.ResetLlmRetryCount()
		return nil
	case document.FieldOcrError:
		m.ResetOcrError()
		return nil
	case document.FieldLlmError:
		m.ResetLlmError()
		return nil
	case document.FieldOcrClaimedAt:
		m.ResetOcrClaimedAt()
		return nil
	case document.FieldLlmClaimedAt:
		m.ResetLlmClaimedAt()
		return nil
	case document.FieldFavorite:
		m.ResetFavorite()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Document edge %s", name)
}

// LocationMutation represents an operation that mutates the Location nodes in the graph.
type LocationMutation struct {
	config
	op               Op
	typ              string
	id               *int
	name             *string
	display_order    *int
	adddisplay_order *int
	show_in_tag      *bool
	clearedFields    map[string]struct{}
	durations        map[int]struct{}
	removeddurations map[int]struct{}
	cleareddurations bool
	done             bool
	oldValue         func(context.Context) (*Location, error)
	predicates       []predicate.Location
}

var _ ent.Mutation = (*LocationMutation)(nil)

// locationOption allows management of the mutation configuration using functional options.
type locationOption func(*LocationMutation)

// newLocationMutation creates new mutation for the Location entity.
func newLocationMutation(c config, op Op, opts ...locationOption) *LocationMutation {
	m := &LocationMutation{
		config:        c,
		op:            op,
		typ:           TypeLocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLocationID sets the ID field of the mutation.
func withLocationID(id int) locationOption {
	return func(m *LocationMutation) {
		var (
			err   error
			once  sync.Once
			value *Location
		)
		m.oldValue = func(ctx context.Context) (*Location, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Location.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLocation sets the old Location of the mutation.
func withLocation(node *Location) locationOption {
	return func(m *LocationMutation) {
		m.oldValue = func(context.Context) (*Location, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LocationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LocationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Location.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LocationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LocationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Location entity.
// If the Location object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LocationMutation) ResetName() {
	m.name = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *LocationMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *LocationMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the Location entity.
// If the Location object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *LocationMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *LocationMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *LocationMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetShowInTag sets the "show_in_tag" field.
func (m *LocationMutation) SetShowInTag(b bool) {
	m.show_in_tag = &b
}

// ShowInTag returns the value of the "show_in_tag" field in the mutation.
func (m *LocationMutation) ShowInTag() (r bool, exists bool) {
	v := m.show_in_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldShowInTag returns the old "show_in_tag" field's value of the Location entity.
// If the Location object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationMutation) OldShowInTag(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShowInTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShowInTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShowInTag: %w", err)
	}
	return oldValue.ShowInTag, nil
}

// ResetShowInTag resets all changes to the "show_in_tag" field.
func (m *LocationMutation) ResetShowInTag() {
	m.show_in_tag = nil
}

// AddDurationIDs adds the "durations" edge to the StationDuration entity by ids.
func (m *LocationMutation) AddDurationIDs(ids ...int) {
	if m.durations == nil {
		m.durations = make(map[int]struct{})
	}
	for i := range ids {
		m.durations[ids[i]] = struct{}{}
	}
}

// ClearDurations clears the "durations" edge to the StationDuration entity.
func (m *LocationMutation) ClearDurations() {
	m.cleareddurations = true
}

// DurationsCleared reports if the "durations" edge to the StationDuration entity was cleared.
func (m *LocationMutation) DurationsCleared() bool {
	return m.cleareddurations
}

// RemoveDurationIDs removes the "durations" edge to the StationDuration entity by IDs.
func (m *LocationMutation) RemoveDurationIDs(ids ...int) {
	if m.removeddurations == nil {
		m.removeddurations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.durations, ids[i])
		m.removeddurations[ids[i]] = struct{}{}
	}
}

// RemovedDurations returns the removed IDs of the "durations" edge to the StationDuration entity.
func (m *LocationMutation) RemovedDurationsIDs() (ids []int) {
	for id := range m.removeddurations {
		ids = append(ids, id)
	}
	return
}

// DurationsIDs returns the "durations" edge IDs in the mutation.
func (m *LocationMutation) DurationsIDs() (ids []int) {
	for id := range m.durations {
		ids = append(ids, id)
	}
	return
}

// ResetDurations resets all changes to the "durations" edge.
func (m *LocationMutation) ResetDurations() {
	m.durations = nil
	m.cleareddurations = false
	m.removeddurations = nil
}

// Where appends a list predicates to the LocationMutation builder.
func (m *LocationMutation) Where(ps ...predicate.Location) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Location, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Location).
func (m *LocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LocationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, location.FieldName)
	}
	if m.display_order != nil {
		fields = append(fields, location.FieldDisplayOrder)
	}
	if m.show_in_tag != nil {
		fields = append(fields, location.FieldShowInTag)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case location.FieldName:
		return m.Name()
	case location.FieldDisplayOrder:
		return m.DisplayOrder()
	case location.FieldShowInTag:
		return m.ShowInTag()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case location.FieldName:
		return m.OldName(ctx)
	case location.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case location.FieldShowInTag:
		return m.OldShowInTag(ctx)
	}
	return nil, fmt.Errorf("unknown Location field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case location.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case location.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case location.FieldShowInTag:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShowInTag(v)
		return nil
	}
	return fmt.Errorf("unknown Location field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LocationMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_order != nil {
		fields = append(fields, location.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LocationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case location.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case location.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Location numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LocationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LocationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Location nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LocationMutation) ResetField(name string) error {
	switch name {
	case location.FieldName:
		m.ResetName()
		return nil
	case location.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case location.FieldShowInTag:
		m.ResetShowInTag()
		return nil
	}
	return fmt.Errorf("unknown Location field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.durations != nil {
		edges = append(edges, location.EdgeDurations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LocationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case location.EdgeDurations:
		ids := make([]ent.Value, 0, len(m.durations))
		for id := range m.durations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddurations != nil {
		edges = append(edges, location.EdgeDurations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LocationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case location.EdgeDurations:
		ids := make([]ent.Value, 0, len(m.removeddurations))
		for id := range m.removeddurations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddurations {
		edges = append(edges, location.EdgeDurations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LocationMutation) EdgeCleared(name string) bool {
	switch name {
	case location.EdgeDurations:
		return m.cleareddurations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LocationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Location unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LocationMutation) ResetEdge(name string) error {
	switch name {
	case location.EdgeDurations:
		m.ResetDurations()
		return nil
	}
	return fmt.Errorf("unknown Location edge %s", name)
}

// StationDurationMutation represents an operation that mutates the StationDuration nodes in the graph.
type StationDurationMutation struct {
	config
	op              Op
	typ             string
	id              *int
	station_name    *string
	duration        *int
	addduration     *int
	clearedFields   map[string]struct{}
	location        *int
	clearedlocation bool
	done            bool
	oldValue        func(context.Context) (*StationDuration, error)
	predicates      []predicate.StationDuration
}

var _ ent.Mutation = (*StationDurationMutation)(nil)

// stationdurationOption allows management of the mutation configuration using functional options.
type stationdurationOption func(*StationDurationMutation)

// newStationDurationMutation creates new mutation for the StationDuration entity.
func newStationDurationMutation(c config, op Op, opts ...stationdurationOption) *StationDurationMutation {
	m := &StationDurationMutation{
		config:        c,
		op:            op,
		typ:           TypeStationDuration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStationDurationID sets the ID field of the mutation.
func withStationDurationID(id int) stationdurationOption {
	return func(m *StationDurationMutation) {
		var (
			err   error
			once  sync.Once
			value *StationDuration
		)
		m.oldValue = func(ctx context.Context) (*StationDuration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StationDuration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStationDuration sets the old StationDuration of the mutation.
func withStationDuration(node *StationDuration) stationdurationOption {
	return func(m *StationDurationMutation) {
		m.oldValue = func(context.Context) (*StationDuration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StationDurationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StationDurationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StationDurationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StationDurationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StationDuration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStationName sets the "station_name" field.
func (m *StationDurationMutation) SetStationName(s string) {
	m.station_name = &s
}

// StationName returns the value of the "station_name" field in the mutation.
func (m *StationDurationMutation) StationName() (r string, exists bool) {
	v := m.station_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStationName returns the old "station_name" field's value of the StationDuration entity.
// If the StationDuration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StationDurationMutation) OldStationName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStationName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStationName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStationName: %w", err)
	}
	return oldValue.StationName, nil
}

// ResetStationName resets all changes to the "station_name" field.
func (m *StationDurationMutation) ResetStationName() {
	m.station_name = nil
}

// SetLocationID sets the "location_id" field.
func (m *StationDurationMutation) SetLocationID(i int) {
	m.location = &i
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *StationDurationMutation) LocationID() (r int, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the StationDuration entity.
// If the StationDuration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StationDurationMutation) OldLocationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *StationDurationMutation) ResetLocationID() {
	m.location = nil
}

// SetDuration sets the "duration" field.
func (m *StationDurationMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *StationDurationMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the StationDuration entity.
// If the StationDuration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StationDurationMutation) OldDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *StationDurationMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *StationDurationMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *StationDurationMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// ClearLocation clears the "location" edge to the Location entity.
func (m *StationDurationMutation) ClearLocation() {
	m.clearedlocation = true
	m.clearedFields[stationduration.FieldLocationID] = struct{}{}
}

// LocationCleared reports if the "location" edge to the Location entity was cleared.
func (m *StationDurationMutation) LocationCleared() bool {
	return m.clearedlocation
}

// LocationIDs returns the "location" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LocationID instead. It exists only for internal usage by the builders.
func (m *StationDurationMutation) LocationIDs() (ids []int) {
	if id := m.location; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLocation resets all changes to the "location" edge.
func (m *StationDurationMutation) ResetLocation() {
	m.location = nil
	m.clearedlocation = false
}

// Where appends a list predicates to the StationDurationMutation builder.
func (m *StationDurationMutation) Where(ps ...predicate.StationDuration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StationDurationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StationDurationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StationDuration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StationDurationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StationDurationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StationDuration).
func (m *StationDurationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StationDurationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.station_name != nil {
		fields = append(fields, stationduration.FieldStationName)
	}
	if m.location != nil {
		fields = append(fields, stationduration.FieldLocationID)
	}
	if m.duration != nil {
		fields = append(fields, stationduration.FieldDuration)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StationDurationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stationduration.FieldStationName:
		return m.StationName()
	case stationduration.FieldLocationID:
		return m.LocationID()
	case stationduration.FieldDuration:
		return m.Duration()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StationDurationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stationduration.FieldStationName:
		return m.OldStationName(ctx)
	case stationduration.FieldLocationID:
		return m.OldLocationID(ctx)
	case stationduration.FieldDuration:
		return m.OldDuration(ctx)
	}
	return nil, fmt.Errorf("unknown StationDuration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StationDurationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stationduration.FieldStationName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStationName(v)
		return nil
	case stationduration.FieldLocationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case stationduration.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	}
	return fmt.Errorf("unknown StationDuration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StationDurationMutation) AddedFields() []string {
	var fields []string
	if m.addduration != nil {
		fields = append(fields, stationduration.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StationDurationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stationduration.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StationDurationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stationduration.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown StationDuration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StationDurationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StationDurationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StationDurationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StationDuration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StationDurationMutation) ResetField(name string) error {
	switch name {
	case stationduration.FieldStationName:
		m.ResetStationName()
		return nil
	case stationduration.FieldLocationID:
		m.ResetLocationID()
		return nil
	case stationduration.FieldDuration:
		m.ResetDuration()
		return nil
	}
	return fmt.Errorf("unknown StationDuration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StationDurationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.location != nil {
		edges = append(edges, stationduration.EdgeLocation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StationDurationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stationduration.EdgeLocation:
		if id := m.location; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StationDurationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StationDurationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StationDurationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlocation {
		edges = append(edges, stationduration.EdgeLocation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StationDurationMutation) EdgeCleared(name string) bool {
	switch name {
	case stationduration.EdgeLocation:
		return m.clearedlocation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StationDurationMutation) ClearEdge(name string) error {
	switch name {
	case stationduration.EdgeLocation:
		m.ClearLocation()
		return nil
	}
	return fmt.Errorf("unknown StationDuration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StationDurationMutation) ResetEdge(name string) error {
	switch name {
	case stationduration.EdgeLocation:
		m.ResetLocation()
		return nil
	}
	return fmt.Errorf("unknown StationDuration edge %s", name)
}
