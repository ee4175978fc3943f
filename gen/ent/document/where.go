// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fyang93/housing-ocr/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalFilename, v))
}

// StoredPath applies equality check predicate on the "stored_path" field. It's identical to StoredPathEQ.
func StoredPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoredPath, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// OcrStatus applies equality check predicate on the "ocr_status" field. It's identical to OcrStatusEQ.
func OcrStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStatus, v))
}

// LlmStatus applies equality check predicate on the "llm_status" field. It's identical to LlmStatusEQ.
func LlmStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLlmStatus, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrText, v))
}

// ExtractedModel applies equality check predicate on the "extracted_model" field. It's identical to ExtractedModelEQ.
func ExtractedModel(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedModel, v))
}

// OcrRetryCount applies equality check predicate on the "ocr_retry_count" field. It's identical to OcrRetryCountEQ.
func OcrRetryCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrRetryCount, v))
}

// LlmRetryCount applies equality check predicate on the "llm_retry_count" field. It's identical to LlmRetryCountEQ.
func LlmRetryCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLlmRetryCount, v))
}

// OcrError applies equality check predicate on the "ocr_error" field. It's identical to OcrErrorEQ.
func OcrError(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrError, v))
}

// LlmError applies equality check predicate on the "llm_error" field. It's identical to LlmErrorEQ.
func LlmError(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLlmError, v))
}

// OcrClaimedAt applies equality check predicate on the "ocr_claimed_at" field. It's identical to OcrClaimedAtEQ.
func OcrClaimedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrClaimedAt, v))
}

// LlmClaimedAt applies equality check predicate on the "llm_claimed_at" field. It's identical to LlmClaimedAtEQ.
func LlmClaimedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLlmClaimedAt, v))
}

// Favorite applies equality check predicate on the "favorite" field. It's identical to FavoriteEQ.
func Favorite(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFavorite, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// StoredPathEQ applies the EQ predicate on the "stored_path" field.
func StoredPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoredPath, v))
}

// StoredPathNEQ applies the NEQ predicate on the "stored_path" field.
func StoredPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStoredPath, v))
}

// StoredPathIn applies the In predicate on the "stored_path" field.
func StoredPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStoredPath, vs...))
}

// StoredPathNotIn applies the NotIn predicate on the "stored_path" field.
func StoredPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStoredPath, vs...))
}

// StoredPathGT applies the GT predicate on the "stored_path" field.
func StoredPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStoredPath, v))
}

// StoredPathGTE applies the GTE predicate on the "stored_path" field.
func StoredPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStoredPath, v))
}

// StoredPathLT applies the LT predicate on the "stored_path" field.
func StoredPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStoredPath, v))
}

// StoredPathLTE applies the LTE predicate on the "stored_path" field.
func StoredPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStoredPath, v))
}

// StoredPathContains applies the Contains predicate on the "stored_path" field.
func StoredPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStoredPath, v))
}

// StoredPathHasPrefix applies the HasPrefix predicate on the "stored_path" field.
func StoredPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStoredPath, v))
}

// StoredPathHasSuffix applies the HasSuffix predicate on the "stored_path" field.
func StoredPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStoredPath, v))
}

// StoredPathEqualFold applies the EqualFold predicate on the "stored_path" field.
func StoredPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStoredPath, v))
}

// StoredPathContainsFold applies the ContainsFold predicate on the "stored_path" field.
func StoredPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStoredPath, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileExt, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileSize, v))
}

// OcrStatusEQ applies the EQ predicate on the "ocr_status" field.
func OcrStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStatus, v))
}

// OcrStatusNEQ applies the NEQ predicate on the "ocr_status" field.
func OcrStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrStatus, v))
}

// OcrStatusIn applies the In predicate on the "ocr_status" field.
func OcrStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrStatus, vs...))
}

// OcrStatusNotIn applies the NotIn predicate on the "ocr_status" field.
func OcrStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrStatus, vs...))
}

// OcrStatusGT applies the GT predicate on the "ocr_status" field.
func OcrStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrStatus, v))
}

// OcrStatusGTE applies the GTE predicate on the "ocr_status" field.
func OcrStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrStatus, v))
}

// OcrStatusLT applies the LT predicate on the "ocr_status" field.
func OcrStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrStatus, v))
}

// OcrStatusLTE applies the LTE predicate on the "ocr_status" field.
func OcrStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrStatus, v))
}

// OcrStatusContains applies the Contains predicate on the "ocr_status" field.
func OcrStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrStatus, v))
}

// OcrStatusHasPrefix applies the HasPrefix predicate on the "ocr_status" field.
func OcrStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrStatus, v))
}

// OcrStatusHasSuffix applies the HasSuffix predicate on the "ocr_status" field.
func OcrStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrStatus, v))
}

// OcrStatusEqualFold applies the EqualFold predicate on the "ocr_status" field.
func OcrStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrStatus, v))
}

// OcrStatusContainsFold applies the ContainsFold predicate on the "ocr_status" field.
func OcrStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrStatus, v))
}

// LlmStatusEQ applies the EQ predicate on the "llm_status" field.
func LlmStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLlmStatus, v))
}

// LlmStatusNEQ applies the NEQ predicate on the "llm_status" field.
func LlmStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLlmStatus, v))
}

// LlmStatusIn applies the In predicate on the "llm_status" field.
func LlmStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLlmStatus, vs...))
}

// LlmStatusNotIn applies the NotIn predicate on the "llm_status" field.
func LlmStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLlmStatus, vs...))
}

// LlmStatusGT applies the GT predicate on the "llm_status" field.
func LlmStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLlmStatus, v))
}

// LlmStatusGTE applies the GTE predicate on the "llm_status" field.
func LlmStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLlmStatus, v))
}

// LlmStatusLT applies the LT predicate on the "llm_status" field.
func LlmStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLlmStatus, v))
}

// LlmStatusLTE applies the LTE predicate on the "llm_status" field.
func LlmStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLlmStatus, v))
}

// LlmStatusContains applies the Contains predicate on the "llm_status" field.
func LlmStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldLlmStatus, v))
}

// LlmStatusHasPrefix applies the HasPrefix predicate on the "llm_status" field.
func LlmStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldLlmStatus, v))
}

// LlmStatusHasSuffix applies the HasSuffix predicate on the "llm_status" field.
func LlmStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldLlmStatus, v))
}

// LlmStatusEqualFold applies the EqualFold predicate on the "llm_status" field.
func LlmStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldLlmStatus, v))
}

// LlmStatusContainsFold applies the ContainsFold predicate on the "llm_status" field.
func LlmStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldLlmStatus, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrText, v))
}

// PropertiesIsNil applies the IsNil predicate on the "properties" field.
func PropertiesIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProperties))
}

// PropertiesNotNil applies the NotNil predicate on the "properties" field.
func PropertiesNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProperties))
}

// ExtractedModelEQ applies the EQ predicate on the "extracted_model" field.
func ExtractedModelEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldExtractedModel, v))
}

// ExtractedModelNEQ applies the NEQ predicate on the "extracted_model" field.
func ExtractedModelNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldExtractedModel, v))
}

// ExtractedModelIn applies the In predicate on the "extracted_model" field.
func ExtractedModelIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldExtractedModel, vs...))
}

// ExtractedModelNotIn applies the NotIn predicate on the "extracted_model" field.
func ExtractedModelNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldExtractedModel, vs...))
}

// ExtractedModelGT applies the GT predicate on the "extracted_model" field.
func ExtractedModelGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldExtractedModel, v))
}

// ExtractedModelGTE applies the GTE predicate on the "extracted_model" field.
func ExtractedModelGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldExtractedModel, v))
}

// ExtractedModelLT applies the LT predicate on the "extracted_model" field.
func ExtractedModelLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldExtractedModel, v))
}

// ExtractedModelLTE applies the LTE predicate on the "extracted_model" field.
func ExtractedModelLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldExtractedModel, v))
}

// ExtractedModelContains applies the Contains predicate on the "extracted_model" field.
func ExtractedModelContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldExtractedModel, v))
}

// ExtractedModelHasPrefix applies the HasPrefix predicate on the "extracted_model" field.
func ExtractedModelHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldExtractedModel, v))
}

// ExtractedModelHasSuffix applies the HasSuffix predicate on the "extracted_model" field.
func ExtractedModelHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldExtractedModel, v))
}

// ExtractedModelIsNil applies the IsNil predicate on the "extracted_model" field.
func ExtractedModelIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldExtractedModel))
}

// ExtractedModelNotNil applies the NotNil predicate on the "extracted_model" field.
func ExtractedModelNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldExtractedModel))
}

// ExtractedModelEqualFold applies the EqualFold predicate on the "extracted_model" field.
func ExtractedModelEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldExtractedModel, v))
}

// ExtractedModelContainsFold applies the ContainsFold predicate on the "extracted_model" field.
func ExtractedModelContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldExtractedModel, v))
}

// OcrRetryCountEQ applies the EQ predicate on the "ocr_retry_count" field.
func OcrRetryCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrRetryCount, v))
}

// OcrRetryCountNEQ applies the NEQ predicate on the "ocr_retry_count" field.
func OcrRetryCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrRetryCount, v))
}

// OcrRetryCountIn applies the In predicate on the "ocr_retry_count" field.
func OcrRetryCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrRetryCount, vs...))
}

// OcrRetryCountNotIn applies the NotIn predicate on the "ocr_retry_count" field.
func OcrRetryCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrRetryCount, vs...))
}

// OcrRetryCountGT applies the GT predicate on the "ocr_retry_count" field.
func OcrRetryCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrRetryCount, v))
}

// OcrRetryCountGTE applies the GTE predicate on the "ocr_retry_count" field.
func OcrRetryCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrRetryCount, v))
}

// OcrRetryCountLT applies the LT predicate on the "ocr_retry_count" field.
func OcrRetryCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrRetryCount, v))
}

// OcrRetryCountLTE applies the LTE predicate on the "ocr_retry_count" field.
func OcrRetryCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrRetryCount, v))
}

// LlmRetryCountEQ applies the EQ predicate on the "llm_retry_count" field.
func LlmRetryCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLlmRetryCount, v))
}

// LlmRetryCountNEQ applies the NEQ predicate on the "llm_retry_count" field.
func LlmRetryCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLlmRetryCount, v))
}

// LlmRetryCountIn applies the In predicate on the "llm_retry_count" field.
func LlmRetryCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLlmRetryCount, vs...))
}

// LlmRetryCountNotIn applies the NotIn predicate on the "llm_retry_count" field.
func LlmRetryCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLlmRetryCount, vs...))
}

// LlmRetryCountGT applies the GT predicate on the "llm_retry_count" field.
func LlmRetryCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLlmRetryCount, v))
}

// LlmRetryCountGTE applies the GTE predicate on the "llm_retry_count" field.
func LlmRetryCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLlmRetryCount, v))
}

// LlmRetryCountLT applies the LT predicate on the "llm_retry_count" field.
func LlmRetryCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLlmRetryCount, v))
}

// LlmRetryCountLTE applies the LTE predicate on the "llm_retry_count" field.
func LlmRetryCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLlmRetryCount, v))
}

// OcrErrorEQ applies the EQ predicate on the "ocr_error" field.
func OcrErrorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrError, v))
}

// OcrErrorNEQ applies the NEQ predicate on the "ocr_error" field.
func OcrErrorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrError, v))
}

// OcrErrorIn applies the In predicate on the "ocr_error" field.
func OcrErrorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrError, vs...))
}

// OcrErrorNotIn applies the NotIn predicate on the "ocr_error" field.
func OcrErrorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrError, vs...))
}

// OcrErrorGT applies the GT predicate on the "ocr_error" field.
func OcrErrorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrError, v))
}

// OcrErrorGTE applies the GTE predicate on the "ocr_error" field.
func OcrErrorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrError, v))
}

// OcrErrorLT applies the LT predicate on the "ocr_error" field.
func OcrErrorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrError, v))
}

// OcrErrorLTE applies the LTE predicate on the "ocr_error" field.
func OcrErrorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrError, v))
}

// OcrErrorContains applies the Contains predicate on the "ocr_error" field.
func OcrErrorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrError, v))
}

// OcrErrorHasPrefix applies the HasPrefix predicate on the "ocr_error" field.
func OcrErrorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrError, v))
}

// OcrErrorHasSuffix applies the HasSuffix predicate on the "ocr_error" field.
func OcrErrorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrError, v))
}

// OcrErrorIsNil applies the IsNil predicate on the "ocr_error" field.
func OcrErrorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrError))
}

// OcrErrorNotNil applies the NotNil predicate on the "ocr_error" field.
func OcrErrorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrError))
}

// OcrErrorEqualFold applies the EqualFold predicate on the "ocr_error" field.
func OcrErrorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrError, v))
}

// OcrErrorContainsFold applies the ContainsFold predicate on the "ocr_error" field.
func OcrErrorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrError, v))
}

// LlmErrorEQ applies the EQ predicate on the "llm_error" field.
func LlmErrorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLlmError, v))
}

// LlmErrorNEQ applies the NEQ predicate on the "llm_error" field.
func LlmErrorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLlmError, v))
}

// LlmErrorIn applies the In predicate on the "llm_error" field.
func LlmErrorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLlmError, vs...))
}

// LlmErrorNotIn applies the NotIn predicate on the "llm_error" field.
func LlmErrorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLlmError, vs...))
}

// LlmErrorGT applies the GT predicate on the "llm_error" field.
func LlmErrorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLlmError, v))
}

// LlmErrorGTE applies the GTE predicate on the "llm_error" field.
func LlmErrorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLlmError, v))
}

// LlmErrorLT applies the LT predicate on the "llm_error" field.
func LlmErrorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLlmError, v))
}

// LlmErrorLTE applies the LTE predicate on the "llm_error" field.
func LlmErrorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLlmError, v))
}

// LlmErrorContains applies the Contains predicate on the "llm_error" field.
func LlmErrorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldLlmError, v))
}

// LlmErrorHasPrefix applies the HasPrefix predicate on the "llm_error" field.
func LlmErrorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldLlmError, v))
}

// LlmErrorHasSuffix applies the HasSuffix predicate on the "llm_error" field.
func LlmErrorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldLlmError, v))
}

// LlmErrorIsNil applies the IsNil predicate on the "llm_error" field.
func LlmErrorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldLlmError))
}

// LlmErrorNotNil applies the NotNil predicate on the "llm_error" field.
func LlmErrorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldLlmError))
}

// LlmErrorEqualFold applies the EqualFold predicate on the "llm_error" field.
func LlmErrorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldLlmError, v))
}

// LlmErrorContainsFold applies the ContainsFold predicate on the "llm_error" field.
func LlmErrorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldLlmError, v))
}

// OcrClaimedAtEQ applies the EQ predicate on the "ocr_claimed_at" field.
func OcrClaimedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrClaimedAt, v))
}

// OcrClaimedAtNEQ applies the NEQ predicate on the "ocr_claimed_at" field.
func OcrClaimedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrClaimedAt, v))
}

// OcrClaimedAtIn applies the In predicate on the "ocr_claimed_at" field.
func OcrClaimedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrClaimedAt, vs...))
}

// OcrClaimedAtNotIn applies the NotIn predicate on the "ocr_claimed_at" field.
func OcrClaimedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrClaimedAt, vs...))
}

// OcrClaimedAtGT applies the GT predicate on the "ocr_claimed_at" field.
func OcrClaimedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrClaimedAt, v))
}

// OcrClaimedAtGTE applies the GTE predicate on the "ocr_claimed_at" field.
func OcrClaimedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrClaimedAt, v))
}

// OcrClaimedAtLT applies the LT predicate on the "ocr_claimed_at" field.
func OcrClaimedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrClaimedAt, v))
}

// OcrClaimedAtLTE applies the LTE predicate on the "ocr_claimed_at" field.
func OcrClaimedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrClaimedAt, v))
}

// OcrClaimedAtIsNil applies the IsNil predicate on the "ocr_claimed_at" field.
func OcrClaimedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrClaimedAt))
}

// OcrClaimedAtNotNil applies the NotNil predicate on the "ocr_claimed_at" field.
func OcrClaimedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrClaimedAt))
}

// LlmClaimedAtEQ applies the EQ predicate on the "llm_claimed_at" field.
func LlmClaimedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLlmClaimedAt, v))
}

// LlmClaimedAtNEQ applies the NEQ predicate on the "llm_claimed_at" field.
func LlmClaimedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLlmClaimedAt, v))
}

// LlmClaimedAtIn applies the In predicate on the "llm_claimed_at" field.
func LlmClaimedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLlmClaimedAt, vs...))
}

// LlmClaimedAtNotIn applies the NotIn predicate on the "llm_claimed_at" field.
func LlmClaimedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLlmClaimedAt, vs...))
}

// LlmClaimedAtGT applies the GT predicate on the "llm_claimed_at" field.
func LlmClaimedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLlmClaimedAt, v))
}

// LlmClaimedAtGTE applies the GTE predicate on the "llm_claimed_at" field.
func LlmClaimedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLlmClaimedAt, v))
}

// LlmClaimedAtLT applies the LT predicate on the "llm_claimed_at" field.
func LlmClaimedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLlmClaimedAt, v))
}

// LlmClaimedAtLTE applies the LTE predicate on the "llm_claimed_at" field.
func LlmClaimedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLlmClaimedAt, v))
}

// LlmClaimedAtIsNil applies the IsNil predicate on the "llm_claimed_at" field.
func LlmClaimedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldLlmClaimedAt))
}

// LlmClaimedAtNotNil applies the NotNil predicate on the "llm_claimed_at" field.
func LlmClaimedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldLlmClaimedAt))
}

// FavoriteEQ applies the EQ predicate on the "favorite" field.
func FavoriteEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFavorite, v))
}

// FavoriteNEQ applies the NEQ predicate on the "favorite" field.
func FavoriteNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFavorite, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
