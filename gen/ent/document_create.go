// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fyang93/housing-ocr/gen/ent/document"
	"github.com/google/uuid"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v []byte) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *DocumentCreate) SetOriginalFilename(v string) *DocumentCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetStoredPath sets the "stored_path" field.
func (_c *DocumentCreate) SetStoredPath(v string) *DocumentCreate {
	_c.mutation.SetStoredPath(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *DocumentCreate) SetFileExt(v string) *DocumentCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *DocumentCreate) SetFileSize(v int) *DocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetOcrStatus sets the "ocr_status" field.
func (_c *DocumentCreate) SetOcrStatus(v string) *DocumentCreate {
	_c.mutation.SetOcrStatus(v)
	return _c
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetOcrStatus(*v)
	}
	return _c
}

// SetLlmStatus sets the "llm_status" field.
func (_c *DocumentCreate) SetLlmStatus(v string) *DocumentCreate {
	_c.mutation.SetLlmStatus(v)
	return _c
}

// SetNillableLlmStatus sets the "llm_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLlmStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetLlmStatus(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *DocumentCreate) SetOcrText(v string) *DocumentCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrText(v *string) *DocumentCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetProperties sets the "properties" field.
func (_c *DocumentCreate) SetProperties(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetProperties(v)
	return _c
}

// SetExtractedModel sets the "extracted_model" field.
func (_c *DocumentCreate) SetExtractedModel(v string) *DocumentCreate {
	_c.mutation.SetExtractedModel(v)
	return _c
}

// SetNillableExtractedModel sets the "extracted_model" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableExtractedModel(v *string) *DocumentCreate {
	if v != nil {
		_c.SetExtractedModel(*v)
	}
	return _c
}

// SetOcrRetryCount sets the "ocr_retry_count" field.
func (_c *DocumentCreate) SetOcrRetryCount(v int) *DocumentCreate {
	_c.mutation.SetOcrRetryCount(v)
	return _c
}

// SetNillableOcrRetryCount sets the "ocr_retry_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrRetryCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetOcrRetryCount(*v)
	}
	return _c
}

// SetLlmRetryCount sets the "llm_retry_count" field.
func (_c *DocumentCreate) SetLlmRetryCount(v int) *DocumentCreate {
	_c.mutation.SetLlmRetryCount(v)
	return _c
}

// SetNillableLlmRetryCount sets the "llm_retry_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLlmRetryCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetLlmRetryCount(*v)
	}
	return _c
}

// SetOcrError sets the "ocr_error" field.
func (_c *DocumentCreate) SetOcrError(v string) *DocumentCreate {
	_c.mutation.SetOcrError(v)
	return _c
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrError(v *string) *DocumentCreate {
	if v != nil {
		_c.SetOcrError(*v)
	}
	return _c
}

// SetLlmError sets the "llm_error" field.
func (_c *DocumentCreate) SetLlmError(v string) *DocumentCreate {
	_c.mutation.SetLlmError(v)
	return _c
}

// SetNillableLlmError sets the "llm_error" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLlmError(v *string) *DocumentCreate {
	if v != nil {
		_c.SetLlmError(*v)
	}
	return _c
}

// SetOcrClaimedAt sets the "ocr_claimed_at" field.
func (_c *DocumentCreate) SetOcrClaimedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetOcrClaimedAt(v)
	return _c
}

// SetNillableOcrClaimedAt sets the "ocr_claimed_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrClaimedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetOcrClaimedAt(*v)
	}
	return _c
}

// SetLlmClaimedAt sets the "llm_claimed_at" field.
func (_c *DocumentCreate) SetLlmClaimedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetLlmClaimedAt(v)
	return _c
}

// SetNillableLlmClaimedAt sets the "llm_claimed_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLlmClaimedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetLlmClaimedAt(*v)
	}
	return _c
}

// SetFavorite sets the "favorite" field.
func (_c *DocumentCreate) SetFavorite(v bool) *DocumentCreate {
	_c.mutation.SetFavorite(v)
	return _c
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFavorite(v *bool) *DocumentCreate {
	if v != nil {
		_c.SetFavorite(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *DocumentCreate) SetUploadedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUploadedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.OcrStatus(); !ok {
		v := document.DefaultOcrStatus
		_c.mutation.SetOcrStatus(v)
	}
	if _, ok := _c.mutation.LlmStatus(); !ok {
		v := document.DefaultLlmStatus
		_c.mutation.SetLlmStatus(v)
	}
	if _, ok := _c.mutation.OcrRetryCount(); !ok {
		v := document.DefaultOcrRetryCount
		_c.mutation.SetOcrRetryCount(v)
	}
	if _, ok := _c.mutation.LlmRetryCount(); !ok {
		v := document.DefaultLlmRetryCount
		_c.mutation.SetLlmRetryCount(v)
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		v := document.DefaultFavorite
		_c.mutation.SetFavorite(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := document.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Document.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "Document.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoredPath(); !ok {
		return &ValidationError{Name: "stored_path", err: errors.New(`ent: missing required field "Document.stored_path"`)}
	}
	if v, ok := _c.mutation.StoredPath(); ok {
		if err := document.StoredPathValidator(v); err != nil {
			return &ValidationError{Name: "stored_path", err: fmt.Errorf(`ent: validator failed for field "Document.stored_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "Document.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Document.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OcrStatus(); !ok {
		return &ValidationError{Name: "ocr_status", err: errors.New(`ent: missing required field "Document.ocr_status"`)}
	}
	if _, ok := _c.mutation.LlmStatus(); !ok {
		return &ValidationError{Name: "llm_status", err: errors.New(`ent: missing required field "Document.llm_status"`)}
	}
	if _, ok := _c.mutation.OcrRetryCount(); !ok {
		return &ValidationError{Name: "ocr_retry_count", err: errors.New(`ent: missing required field "Document.ocr_retry_count"`)}
	}
	if v, ok := _c.mutation.OcrRetryCount(); ok {
		if err := document.OcrRetryCountValidator(v); err != nil {
			return &ValidationError{Name: "ocr_retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LlmRetryCount(); !ok {
		return &ValidationError{Name: "llm_retry_count", err: errors.New(`ent: missing required field "Document.llm_retry_count"`)}
	}
	if v, ok := _c.mutation.LlmRetryCount(); ok {
		if err := document.LlmRetryCountValidator(v); err != nil {
			return &ValidationError{Name: "llm_retry_count", err: fmt.Errorf(`ent: validator failed for field "Document.llm_retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		return &ValidationError{Name: "favorite", err: errors.New(`ent: missing required field "Document.favorite"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Document.uploaded_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.StoredPath(); ok {
		_spec.SetField(document.FieldStoredPath, field.TypeString, value)
		_node.StoredPath = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
		_node.OcrStatus = value
	}
	if value, ok := _c.mutation.LlmStatus(); ok {
		_spec.SetField(document.FieldLlmStatus, field.TypeString, value)
		_node.LlmStatus = value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.Properties(); ok {
		_spec.SetField(document.FieldProperties, field.TypeJSON, value)
		_node.Properties = value
	}
	if value, ok := _c.mutation.ExtractedModel(); ok {
		_spec.SetField(document.FieldExtractedModel, field.TypeString, value)
		_node.ExtractedModel = &value
	}
	if value, ok := _c.mutation.OcrRetryCount(); ok {
		_spec.SetField(document.FieldOcrRetryCount, field.TypeInt, value)
		_node.OcrRetryCount = value
	}
	if value, ok := _c.mutation.LlmRetryCount(); ok {
		_spec.SetField(document.FieldLlmRetryCount, field.TypeInt, value)
		_node.LlmRetryCount = value
	}
	if value, ok := _c.mutation.OcrError(); ok {
		_spec.SetField(document.FieldOcrError, field.TypeString, value)
		_node.OcrError = &value
	}
	if value, ok := _c.mutation.LlmError(); ok {
		_spec.SetField(document.FieldLlmError, field.TypeString, value)
		_node.LlmError = &value
	}
	if value, ok := _c.mutation.OcrClaimedAt(); ok {
		_spec.SetField(document.FieldOcrClaimedAt, field.TypeTime, value)
		_node.OcrClaimedAt = &value
	}
	if value, ok := _c.mutation.LlmClaimedAt(); ok {
		_spec.SetField(document.FieldLlmClaimedAt, field.TypeTime, value)
		_node.LlmClaimedAt = &value
	}
	if value, ok := _c.mutation.Favorite(); ok {
		_spec.SetField(document.FieldFavorite, field.TypeBool, value)
		_node.Favorite = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
