package http

// Header names the DSS services thread through every call.
const (
	HeaderTouchpointID    = "TouchpointId"
	HeaderCorrelationID   = "DssCorrelationId"
	HeaderSubcontractorID = "SubcontractorId"
	HeaderApimURL         = "apimurl"

	HeaderContentType = "Content-Type"
)

// Content types understood by the helper.
const (
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
)
