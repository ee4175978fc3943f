package constants

// StageStatus is the canonical per-stage status stored on a document.
// OCR and LLM extraction each carry one of these independently.
type StageStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    StageStatus = "pending"    // waiting for a worker
	StatusProcessing StageStatus = "processing" // claimed by exactly one worker
	StatusDone       StageStatus = "done"       // stage output persisted
	StatusFailed     StageStatus = "failed"     // adapter exhausted; manual retry only
)

// Stage names a processing phase, mostly for logs and error messages.
type Stage string

const (
	StageOCR Stage = "ocr"
	StageLLM Stage = "llm"
)

func (s StageStatus) String() string { return string(s) }
