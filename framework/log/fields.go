package log

// Canonical field names.
const (
	FieldComponent       = "component"
	FieldTouchpointID    = "touchpoint_id"
	FieldCorrelationID   = "correlation_id"
	FieldSubcontractorID = "subcontractor_id"
	FieldApimURL         = "apim_url"
	FieldMethod          = "method"
	FieldPath            = "path"
)
