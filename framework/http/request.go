package http

import (
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Request is the minimal view of an incoming HTTP request the Helper needs.
// Hosts that don't use net/http can supply their own implementation; a nil
// pointer of that type is treated as an absent request.
type Request interface {
	ContentType() string
	SetContentType(ct string)

	// Body returns nil when the request carries no body stream.
	Body() io.Reader

	// QueryValues and HeaderValues report whether key is present at all,
	// separately from the values stored under it.
	QueryValues(key string) ([]string, bool)
	HeaderValues(key string) ([]string, bool)
}

// StdRequest adapts *http.Request to Request.
type StdRequest struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request. A nil r yields a nil
// *StdRequest, which the Helper treats as an absent request.
func NewRequest(r *http.Request) *StdRequest {
	if r == nil {
		return nil
	}
	return &StdRequest{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *StdRequest) Raw() *http.Request { return req.raw }

// ContentType returns the Content-Type header value.
func (req *StdRequest) ContentType() string {
	return req.raw.Header.Get(HeaderContentType)
}

// SetContentType replaces the Content-Type header.
func (req *StdRequest) SetContentType(ct string) {
	if req.raw.Header == nil {
		req.raw.Header = make(http.Header)
	}
	req.raw.Header.Set(HeaderContentType, ct)
}

func (req *StdRequest) Body() io.Reader {
	if req.raw.Body == nil {
		return nil
	}
	return req.raw.Body
}

// QueryValues looks key up in the URL query string. An exact match wins;
// otherwise the first key equal under case folding is used.
func (req *StdRequest) QueryValues(key string) ([]string, bool) {
	if req.raw.URL == nil {
		return nil, false
	}
	query := req.raw.URL.Query()
	if vals, ok := query[key]; ok {
		return vals, true
	}
	for k, vals := range query {
		if strings.EqualFold(k, key) {
			return vals, true
		}
	}
	return nil, false
}

// HeaderValues looks key up case-insensitively.
func (req *StdRequest) HeaderValues(key string) ([]string, bool) {
	if vals, ok := req.raw.Header[http.CanonicalHeaderKey(key)]; ok {
		return vals, true
	}
	// Maps built by hand may hold non-canonical keys.
	vals, ok := req.raw.Header[key]
	return vals, ok
}

// RouteParam returns a URL route parameter (chi).
func (req *StdRequest) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// absent reports whether req is missing, including a typed nil stored in
// the interface and an adapter with no underlying request.
func absent(req Request) bool {
	if req == nil {
		return true
	}
	if std, ok := req.(*StdRequest); ok {
		return std == nil || std.raw == nil
	}
	v := reflect.ValueOf(req)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
