package routing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	gohttp "github.com/km-arc/go-dfc-http/framework/http"
)

// HandlerFunc is a DSS endpoint: it receives the identifiers the DSS
// middleware read off the request alongside the usual pair.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, dss gohttp.DSS)

// Router wraps chi.Router so every route runs behind DSSContext.
type Router struct {
	mux    chi.Router
	helper *gohttp.Helper
}

// New creates a Router with Recoverer, RealIP and DSSContext installed.
//
//	r := routing.New(helper, cfg.DSS.GenerateCorrelationID)
//	r.Get("/customers", func(w http.ResponseWriter, req *http.Request, dss gohttp.DSS) { ... })
func New(helper *gohttp.Helper, generateCorrelationID bool) *Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(gohttp.DSSContext(helper, generateCorrelationID))
	return &Router{mux: r, helper: helper}
}

// Helper returns the helper the router reads DSS headers with.
func (r *Router) Helper() *gohttp.Helper { return r.helper }

func (r *Router) Get(pattern string, h HandlerFunc)  { r.mux.Get(pattern, r.wrap(h)) }
func (r *Router) Post(pattern string, h HandlerFunc) { r.mux.Post(pattern, r.wrap(h)) }

// Prefix creates a sub-router mounted under pattern. It shares the parent's
// middleware, so DSS values are still available.
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx, helper: r.helper})
	})
}

// RequireTouchpoint wraps h so requests without a TouchpointId header get a
// 400 before h runs.
func RequireTouchpoint(h HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request, dss gohttp.DSS) {
		if dss.TouchpointID == "" {
			gohttp.NewResponse(w).BadRequest(gohttp.HeaderTouchpointID + " header is required")
			return
		}
		h(w, req, dss)
	}
}

func (r *Router) wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		// DSSContext runs on the root mux, so the value is always present.
		dss, _ := gohttp.DSSFromContext(req.Context())
		h(w, req, dss)
	}
}

// ServeHTTP implements http.Handler so Router can be passed to http.Server.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
