package http

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-dfc-http/framework/log"
)

// RequestHelper is the accessor surface consumers depend on, so handlers can
// be given a substitute in tests.
type RequestHelper interface {
	SetJSONContentType(req Request) error
	DecodeJSONBody(req Request, v any) error
	GetQueryValue(req Request, key string) (string, error)
	GetHeaderValue(req Request, key string) (string, error)
	GetTouchpointID(req Request) (string, error)
	GetCorrelationID(req Request) (string, error)
	GetSubcontractorID(req Request) (string, error)
	GetApimURL(req Request) (string, error)
	GetDSS(req Request) (DSS, error)
}

// DSS holds the identifiers a DSS caller supplies as headers.
type DSS struct {
	TouchpointID    string `json:"touchpointId"`
	CorrelationID   string `json:"correlationId"`
	SubcontractorID string `json:"subcontractorId,omitempty"`
	ApimURL         string `json:"apimUrl"`
}

// Helper reads well-known values out of a Request. It holds no per-request
// state and may be shared between goroutines.
type Helper struct {
	logger zerolog.Logger
}

var _ RequestHelper = (*Helper)(nil)

// Option configures a Helper.
type Option func(*Helper)

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Helper) { h.logger = l }
}

// NewHelper creates a Helper.
//
//	h := gohttp.NewHelper()
//	touchpoint, err := h.GetTouchpointID(gohttp.NewRequest(r))
func NewHelper(opts ...Option) *Helper {
	h := &Helper{logger: log.WithComponent("request_helper")}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ── Content type / body ──────────────────────────────────────────────────────

// SetJSONContentType overwrites the request content type with
// application/json.
func (h *Helper) SetJSONContentType(req Request) error {
	if absent(req) {
		return missing("req")
	}
	req.SetContentType(ContentTypeJSON)
	return nil
}

// DecodeJSONBody marks the request as JSON, reads the whole body and
// unmarshals it into v. A blank body leaves v untouched and is not an error.
// Failures to read or parse are returned as *DecodeError. There is no
// deadline on the read.
func (h *Helper) DecodeJSONBody(req Request, v any) error {
	if absent(req) {
		return missing("req")
	}
	body := req.Body()
	if body == nil {
		return missing("req.Body")
	}
	if err := h.SetJSONContentType(req); err != nil {
		return err
	}

	data, err := io.ReadAll(body)
	if err != nil {
		h.logger.Debug().Err(err).Msg("request body read failed")
		return &DecodeError{Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		h.logger.Debug().Err(err).Int("bytes", len(data)).Msg("request body is not valid JSON for target")
		return &DecodeError{Err: err}
	}
	return nil
}

// ReadJSONBody decodes the request body into a new T.
//
//	note, err := gohttp.ReadJSONBody[Note](h, gohttp.NewRequest(r))
func ReadJSONBody[T any](h *Helper, req Request) (T, error) {
	var out T
	if err := h.DecodeJSONBody(req, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// ── Query / headers ──────────────────────────────────────────────────────────

// GetQueryValue returns the first query-string value for key, or "" when the
// key is absent. Further values for the same key are ignored.
func (h *Helper) GetQueryValue(req Request, key string) (string, error) {
	if absent(req) {
		return "", missing("req")
	}
	vals, ok := req.QueryValues(key)
	if !ok {
		return "", nil
	}
	return firstValue(vals), nil
}

// GetHeaderValue returns the first value of header key, or "" when absent.
func (h *Helper) GetHeaderValue(req Request, key string) (string, error) {
	if absent(req) {
		return "", missing("req")
	}
	vals, ok := req.HeaderValues(key)
	if !ok {
		return "", nil
	}
	return firstValue(vals), nil
}

// ── DSS identifiers ──────────────────────────────────────────────────────────

// GetTouchpointID returns the TouchpointId header.
func (h *Helper) GetTouchpointID(req Request) (string, error) {
	return h.GetHeaderValue(req, HeaderTouchpointID)
}

// GetCorrelationID returns the DssCorrelationId header as sent.
func (h *Helper) GetCorrelationID(req Request) (string, error) {
	return h.GetHeaderValue(req, HeaderCorrelationID)
}

// GetSubcontractorID returns the SubcontractorId header.
func (h *Helper) GetSubcontractorID(req Request) (string, error) {
	return h.GetHeaderValue(req, HeaderSubcontractorID)
}

// GetApimURL returns the apimurl header with a single trailing "/" removed.
func (h *Helper) GetApimURL(req Request) (string, error) {
	url, err := h.GetHeaderValue(req, HeaderApimURL)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(url, "/"), nil
}

// GetDSS reads all four DSS identifiers.
func (h *Helper) GetDSS(req Request) (DSS, error) {
	if absent(req) {
		return DSS{}, missing("req")
	}
	// req is known to be present, so the getters below cannot fail.
	touchpoint, _ := h.GetTouchpointID(req)
	correlation, _ := h.GetCorrelationID(req)
	subcontractor, _ := h.GetSubcontractorID(req)
	apim, _ := h.GetApimURL(req)
	return DSS{
		TouchpointID:    touchpoint,
		CorrelationID:   correlation,
		SubcontractorID: subcontractor,
		ApimURL:         apim,
	}, nil
}

func firstValue(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
