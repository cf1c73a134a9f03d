package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/km-arc/go-dfc-http/framework/log"
)

type dssCtxKey struct{}

// DSSContext returns middleware that reads the DSS headers through h and
// stores them on the request context, along with a zerolog logger carrying
// the same identifiers (retrieve it with log.FromContext).
//
// When generateCorrelationID is set and DssCorrelationId is missing or not a
// UUID, the stored DSS value and the logger carry a fresh UUID instead. The
// request header is left untouched, so h.GetCorrelationID still returns
// whatever the caller sent.
//
//	mux.Use(gohttp.DSSContext(helper, cfg.DSS.GenerateCorrelationID))
func DSSContext(h *Helper, generateCorrelationID bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dss, err := h.GetDSS(NewRequest(r))
			if err != nil {
				NewResponse(w).FromError(err)
				return
			}

			if generateCorrelationID {
				if _, perr := uuid.Parse(dss.CorrelationID); perr != nil {
					if dss.CorrelationID != "" {
						h.logger.Debug().
							Str(log.FieldCorrelationID, dss.CorrelationID).
							Msg("correlation id is not a uuid, logging a generated one")
					}
					dss.CorrelationID = uuid.NewString()
				}
			}

			ctx := context.WithValue(r.Context(), dssCtxKey{}, dss)
			ctx = log.ContextWithCorrelationID(ctx, dss.CorrelationID)
			ctx = log.ContextWithTouchpointID(ctx, dss.TouchpointID)

			logger := log.WithContext(ctx, h.logger).With().
				Str(log.FieldMethod, r.Method).
				Str(log.FieldPath, r.URL.Path).
				Logger()
			if dss.SubcontractorID != "" {
				logger = logger.With().Str(log.FieldSubcontractorID, dss.SubcontractorID).Logger()
			}
			if dss.ApimURL != "" {
				logger = logger.With().Str(log.FieldApimURL, dss.ApimURL).Logger()
			}
			ctx = logger.WithContext(ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DSSFromContext returns the identifiers stored by DSSContext.
func DSSFromContext(ctx context.Context) (DSS, bool) {
	if ctx == nil {
		return DSS{}, false
	}
	dss, ok := ctx.Value(dssCtxKey{}).(DSS)
	return dss, ok
}
