package log

// Field names for structured logging.
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldPath        = "path"
	FieldCount       = "count"
	FieldTransaction = "transaction_id"
	FieldField       = "field"
)

// Component names.
const (
	ComponentApp     = "app"
	ComponentMenu    = "menu"
	ComponentTUI     = "tui"
	ComponentStore   = "store"
	ComponentSession = "session"
)
