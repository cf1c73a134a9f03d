// Package http reads DSS request values and normalizes request content types.
//
// # Request
//
// Request is the small interface the Helper works against. NewRequest adapts
// a standard *http.Request; anything else can implement it directly.
//
//	req := gohttp.NewRequest(r)
//
// # Helper
//
//	h := gohttp.NewHelper()
//
//	// Content type / body
//	err := h.SetJSONContentType(req)               // Content-Type: application/json
//	note, err := gohttp.ReadJSONBody[Note](h, req) // *DecodeError on bad JSON, zero Note on blank body
//
//	// Query string and headers (first value wins, "" when absent)
//	name, err := h.GetQueryValue(req, "GivenName") // key matched ignoring case
//	num, err  := h.GetHeaderValue(req, "Number")
//
//	// DSS identifiers
//	h.GetTouchpointID(req)    // TouchpointId
//	h.GetCorrelationID(req)   // DssCorrelationId
//	h.GetSubcontractorID(req) // SubcontractorId
//	h.GetApimURL(req)         // apimurl, one trailing "/" removed
//	h.GetDSS(req)             // all four
//
// Every accessor returns an error matching ErrInvalidArgument when req is nil.
//
// # Middleware
//
// DSSContext reads the identifiers once per request and stores them on the
// context:
//
//	mux.Use(gohttp.DSSContext(h, true))
//	dss, ok := gohttp.DSSFromContext(r.Context())
//
// # Response
//
//	res := gohttp.NewResponse(w)
//	res.Success(data)     // 200 {"data": ...}
//	res.Created(data)     // 201 {"data": ...}
//	res.BadRequest("...") // 400 {"message": "..."}
//	res.FromError(err)    // DecodeError → 400, otherwise 500
package http
