package logger

// Standard field names for structured logging.
const (
	FieldRunID       = "run_id"
	FieldStage       = "stage"
	FieldProvider    = "provider"
	FieldModel       = "model"
	FieldDurationMS  = "duration_ms"
	FieldPromptChars = "prompt_chars"
	FieldOutputChars = "output_chars"
	FieldCalls       = "calls"
	FieldError       = "error"
	FieldFile        = "file"
	FieldKey         = "key"
	FieldNode        = "node"
	FieldComponent   = "component"
)
