// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fyang93/housing-ocr/gen/ent/document"
	"github.com/fyang93/housing-ocr/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v []byte) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DocumentUpdate) SetOriginalFilename(v string) *DocumentUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOriginalFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStoredPath sets the "stored_path" field.
func (_u *DocumentUpdate) SetStoredPath(v string) *DocumentUpdate {
	_u.mutation.SetStoredPath(v)
	return _u
}

// SetNillableStoredPath sets the "stored_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStoredPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStoredPath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdate) SetFileExt(v string) *DocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileExt(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdate) SetFileSize(v int) *DocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileSize(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdate) AddFileSize(v int) *DocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetOcrStatus sets the "ocr_status" field.
func (_u *DocumentUpdate) SetOcrStatus(v string) *DocumentUpdate {
	_u.mutation.SetOcrStatus(v)
	return _u
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrStatus(*v)
	}
	return _u
}

// SetLlmStatus sets the "llm_status" field.
func (_u *DocumentUpdate) SetLlmStatus(v string) *DocumentUpdate {
	_u.mutation.SetLlmStatus(v)
	return _u
}

// SetNillableLlmStatus sets the "llm_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLlmStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLlmStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdate) SetOcrText(v string) *DocumentUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdate) ClearOcrText() *DocumentUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *DocumentUpdate) SetProperties(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// AppendProperties appends value to the "properties" field.
func (_u *DocumentUpdate) AppendProperties(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *DocumentUpdate) ClearProperties() *DocumentUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// SetExtractedModel sets the "extracted_model" field.
func (_u *DocumentUpdate) SetExtractedModel(v string) *DocumentUpdate {
	_u.mutation.SetExtractedModel(v)
	return _u
}

// SetNillableExtractedModel sets the "extracted_model" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedModel(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedModel(*v)
	}
	return _u
}

// ClearExtractedModel clears the value of the "extracted_model" field.
func (_u *DocumentUpdate) ClearExtractedModel() *DocumentUpdate {
	_u.mutation.ClearExtractedModel()
	return _u
}

// SetOcrRetryCount sets the "ocr_retry_count" field.
func (_u *DocumentUpdate) SetOcrRetryCount(v int) *DocumentUpdate {
	_u.mutation.ResetOcrRetryCount()
	_u.mutation.SetOcrRetryCount(v)
	return _u
}

// SetNillableOcrRetryCount sets the "ocr_retry_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrRetryCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetOcrRetryCount(*v)
	}
	return _u
}

// AddOcrRetryCount adds value to the "ocr_retry_count" field.
func (_u *DocumentUpdate) AddOcrRetryCount(v int) *DocumentUpdate {
	_u.mutation.AddOcrRetryCount(v)
	return _u
}

// SetLlmRetryCount sets the "llm_retry_count" field.
func (_u *DocumentUpdate) SetLlmRetryCount(v int) *DocumentUpdate {
	_u.mutation.ResetLlmRetryCount()
	_u.mutation.SetLlmRetryCount(v)
	return _u
}

// SetNillableLlmRetryCount sets the "llm_retry_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLlmRetryCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetLlmRetryCount(*v)
	}
	return _u
}

// AddLlmRetryCount adds value to the "llm_retry_count" field.
func (_u *DocumentUpdate) AddLlmRetryCount(v int) *DocumentUpdate {
	_u.mutation.AddLlmRetryCount(v)
	return _u
}

// SetOcrError sets the "ocr_error" field.
func (_u *DocumentUpdate) SetOcrError(v string) *DocumentUpdate {
	_u.mutation.SetOcrError(v)
	return _u
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrError(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrError(*v)
	}
	return _u
}

// ClearOcrError clears the value of the "ocr_error" field.
func (_u *DocumentUpdate) ClearOcrError() *DocumentUpdate {
	_u.mutation.ClearOcrError()
	return _u
}

// SetLlmError sets the "llm_error" field.
func (_u *DocumentUpdate) SetLlmError(v string) *DocumentUpdate {
	_u.mutation.SetLlmError(v)
	return _u
}

// SetNillableLlmError sets the "llm_error" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLlmError(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLlmError(*v)
	}
	return _u
}

// ClearLlmError clears the value of the "llm_error" field.
func (_u *DocumentUpdate) ClearLlmError() *DocumentUpdate {
	_u.mutation.ClearLlmError()
	return _u
}

// SetOcrClaimedAt sets the "ocr_claimed_at" field.
func (_u *DocumentUpdate) SetOcrClaimedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetOcrClaimedAt(v)
	return _u
}

// SetNillableOcrClaimedAt sets the "ocr_claimed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrClaimedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetOcrClaimedAt(*v)
	}
	return _u
}

// ClearOcrClaimedAt clears the value of the "ocr_claimed_at" field.
func (_u *DocumentUpdate) ClearOcrClaimedAt() *DocumentUpdate {
	_u.mutation.ClearOcrClaimedAt()
	return _u
}

// SetLlmClaimedAt sets the "llm_claimed_at" field.
func (_u *DocumentUpdate) SetLlmClaimedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetLlmClaimedAt(v)
	return _u
}

// SetNillableLlmClaimedAt sets the "llm_claimed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLlmClaimedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetLlmClaimedAt(*v)
	}
	return _u
}

// ClearLlmClaimedAt clears the value of the "llm_claimed_at" field.
func (_u *DocumentUpdate) ClearLlmClaimedAt() *DocumentUpdate {
	_u.mutation.ClearLlmClaimedAt()
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *DocumentUpdate) SetFavorite(v bool) *DocumentUpdate {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFavorite(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredPath(); ok {
		if err := document.StoredPathValidator(v); err != nil {
			return &ValidationError{Name: "stored_path", err: fmt.Errorf(`ent: validator failed for field "Document.stored_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrRetryCount(); ok {
		if err := document.OcrRetryCountValidator(v); err != nil {
			return &ValidationError{Name: "ocr_retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LlmRetryCount(); ok {
		if err := document.LlmRetryCountValidator(v); err != nil {
			return &ValidationError{Name: "llm_retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.llm_retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredPath(); ok {
		_spec.SetField(document.FieldStoredPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmStatus(); ok {
		_spec.SetField(document.FieldLlmStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(document.FieldProperties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProperties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldProperties, value)
		})
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(document.FieldProperties, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedModel(); ok {
		_spec.SetField(document.FieldExtractedModel, field.TypeString, value)
	}
	if _u.mutation.ExtractedModelCleared() {
		_spec.ClearField(document.FieldExtractedModel, field.TypeString)
	}
	if value, ok := _u.mutation.OcrRetryCount(); ok {
		_spec.SetField(document.FieldOcrRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOcrRetryCount(); ok {
		_spec.AddField(document.FieldOcrRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LlmRetryCount(); ok {
		_spec.SetField(document.FieldLlmRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLlmRetryCount(); ok {
		_spec.AddField(document.FieldLlmRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OcrError(); ok {
		_spec.SetField(document.FieldOcrError, field.TypeString, value)
	}
	if _u.mutation.OcrErrorCleared() {
		_spec.ClearField(document.FieldOcrError, field.TypeString)
	}
	if value, ok := _u.mutation.LlmError(); ok {
		_spec.SetField(document.FieldLlmError, field.TypeString, value)
	}
	if _u.mutation.LlmErrorCleared() {
		_spec.ClearField(document.FieldLlmError, field.TypeString)
	}
	if value, ok := _u.mutation.OcrClaimedAt(); ok {
		_spec.SetField(document.FieldOcrClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrClaimedAtCleared() {
		_spec.ClearField(document.FieldOcrClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LlmClaimedAt(); ok {
		_spec.SetField(document.FieldLlmClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.LlmClaimedAtCleared() {
		_spec.ClearField(document.FieldLlmClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(document.FieldFavorite, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v []byte) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DocumentUpdateOne) SetOriginalFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOriginalFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStoredPath sets the "stored_path" field.
func (_u *DocumentUpdateOne) SetStoredPath(v string) *DocumentUpdateOne {
	_u.mutation.SetStoredPath(v)
	return _u
}

// SetNillableStoredPath sets the "stored_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStoredPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStoredPath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdateOne) SetFileExt(v string) *DocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileExt(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdateOne) SetFileSize(v int) *DocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileSize(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdateOne) AddFileSize(v int) *DocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetOcrStatus sets the "ocr_status" field.
func (_u *DocumentUpdateOne) SetOcrStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrStatus(v)
	return _u
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrStatus(*v)
	}
	return _u
}

// SetLlmStatus sets the "llm_status" field.
func (_u *DocumentUpdateOne) SetLlmStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetLlmStatus(v)
	return _u
}

// SetNillableLlmStatus sets the "llm_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLlmStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLlmStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdateOne) SetOcrText(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdateOne) ClearOcrText() *DocumentUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *DocumentUpdateOne) SetProperties(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// AppendProperties appends value to the "properties" field.
func (_u *DocumentUpdateOne) AppendProperties(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *DocumentUpdateOne) ClearProperties() *DocumentUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// SetExtractedModel sets the "extracted_model" field.
func (_u *DocumentUpdateOne) SetExtractedModel(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedModel(v)
	return _u
}

// SetNillableExtractedModel sets the "extracted_model" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedModel(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedModel(*v)
	}
	return _u
}

// ClearExtractedModel clears the value of the "extracted_model" field.
func (_u *DocumentUpdateOne) ClearExtractedModel() *DocumentUpdateOne {
	_u.mutation.ClearExtractedModel()
	return _u
}

// SetOcrRetryCount sets the "ocr_retry_count" field.
func (_u *DocumentUpdateOne) SetOcrRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetOcrRetryCount()
	_u.mutation.SetOcrRetryCount(v)
	return _u
}

// SetNillableOcrRetryCount sets the "ocr_retry_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrRetryCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrRetryCount(*v)
	}
	return _u
}

// AddOcrRetryCount adds value to the "ocr_retry_count" field.
func (_u *DocumentUpdateOne) AddOcrRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.AddOcrRetryCount(v)
	return _u
}

// SetLlmRetryCount sets the "llm_retry_count" field.
func (_u *DocumentUpdateOne) SetLlmRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetLlmRetryCount()
	_u.mutation.SetLlmRetryCount(v)
	return _u
}

// SetNillableLlmRetryCount sets the "llm_retry_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLlmRetryCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetLlmRetryCount(*v)
	}
	return _u
}

// AddLlmRetryCount adds value to the "llm_retry_count" field.
func (_u *DocumentUpdateOne) AddLlmRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.AddLlmRetryCount(v)
	return _u
}

// SetOcrError sets the "ocr_error" field.
func (_u *DocumentUpdateOne) SetOcrError(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrError(v)
	return _u
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrError(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrError(*v)
	}
	return _u
}

// ClearOcrError clears the value of the "ocr_error" field.
func (_u *DocumentUpdateOne) ClearOcrError() *DocumentUpdateOne {
	_u.mutation.ClearOcrError()
	return _u
}

// SetLlmError sets the "llm_error" field.
func (_u *DocumentUpdateOne) SetLlmError(v string) *DocumentUpdateOne {
	_u.mutation.SetLlmError(v)
	return _u
}

// SetNillableLlmError sets the "llm_error" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLlmError(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLlmError(*v)
	}
	return _u
}

// ClearLlmError clears the value of the "llm_error" field.
func (_u *DocumentUpdateOne) ClearLlmError() *DocumentUpdateOne {
	_u.mutation.ClearLlmError()
	return _u
}

// SetOcrClaimedAt sets the "ocr_claimed_at" field.
func (_u *DocumentUpdateOne) SetOcrClaimedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetOcrClaimedAt(v)
	return _u
}

// SetNillableOcrClaimedAt sets the "ocr_claimed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrClaimedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrClaimedAt(*v)
	}
	return _u
}

// ClearOcrClaimedAt clears the value of the "ocr_claimed_at" field.
func (_u *DocumentUpdateOne) ClearOcrClaimedAt() *DocumentUpdateOne {
	_u.mutation.ClearOcrClaimedAt()
	return _u
}

// SetLlmClaimedAt sets the "llm_claimed_at" field.
func (_u *DocumentUpdateOne) SetLlmClaimedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetLlmClaimedAt(v)
	return _u
}

// SetNillableLlmClaimedAt sets the "llm_claimed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLlmClaimedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetLlmClaimedAt(*v)
	}
	return _u
}

// ClearLlmClaimedAt clears the value of the "llm_claimed_at" field.
func (_u *DocumentUpdateOne) ClearLlmClaimedAt() *DocumentUpdateOne {
	_u.mutation.ClearLlmClaimedAt()
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *DocumentUpdateOne) SetFavorite(v bool) *DocumentUpdateOne {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFavorite(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredPath(); ok {
		if err := document.StoredPathValidator(v); err != nil {
			return &ValidationError{Name: "stored_path", err: fmt.Errorf(`ent: validator failed for field "Document.stored_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrRetryCount(); ok {
		if err := document.OcrRetryCountValidator(v); err != nil {
			return &ValidationError{Name: "ocr_retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LlmRetryCount(); ok {
		if err := document.LlmRetryCountValidator(v); err != nil {
			return &ValidationError{Name: "llm_retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.llm_retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredPath(); ok {
		_spec.SetField(document.FieldStoredPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmStatus(); ok {
		_spec.SetField(document.FieldLlmStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(document.FieldProperties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProperties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldProperties, value)
		})
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(document.FieldProperties, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedModel(); ok {
		_spec.SetField(document.FieldExtractedModel, field.TypeString, value)
	}
	if _u.mutation.ExtractedModelCleared() {
		_spec.ClearField(document.FieldExtractedModel, field.TypeString)
	}
	if value, ok := _u.mutation.OcrRetryCount(); ok {
		_spec.SetField(document.FieldOcrRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOcrRetryCount(); ok {
		_spec.AddField(document.FieldOcrRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LlmRetryCount(); ok {
		_spec.SetField(document.FieldLlmRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLlmRetryCount(); ok {
		_spec.AddField(document.FieldLlmRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OcrError(); ok {
		_spec.SetField(document.FieldOcrError, field.TypeString, value)
	}
	if _u.mutation.OcrErrorCleared() {
		_spec.ClearField(document.FieldOcrError, field.TypeString)
	}
	if value, ok := _u.mutation.LlmError(); ok {
		_spec.SetField(document.FieldLlmError, field.TypeString, value)
	}
	if _u.mutation.LlmErrorCleared() {
		_spec.ClearField(document.FieldLlmError, field.TypeString)
	}
	if value, ok := _u.mutation.OcrClaimedAt(); ok {
		_spec.SetField(document.FieldOcrClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrClaimedAtCleared() {
		_spec.ClearField(document.FieldOcrClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LlmClaimedAt(); ok {
		_spec.SetField(document.FieldLlmClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.LlmClaimedAtCleared() {
		_spec.ClearField(document.FieldLlmClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(document.FieldFavorite, field.TypeBool, value)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
