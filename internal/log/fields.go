package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldRecordID    = "record_id"
	FieldRecordDate  = "record_date"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldRecordCount = "record_count"
	FieldOutcome     = "outcome"
	FieldSlotKey     = "slot_key"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentStore   = "store"
	ComponentExport  = "export"
	ComponentCache   = "cache"
	ComponentConfig  = "config"
)

// Operations defines standard operation names
const (
	OpAdd      = "add"
	OpRemove   = "remove"
	OpClear    = "clear"
	OpLoad     = "load"
	OpSave     = "save"
	OpFilter   = "filter"
	OpSummary  = "summarize"
	OpExport   = "export"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
