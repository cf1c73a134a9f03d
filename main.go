package main

import (
	"net/http"
	"os"

	"github.com/km-arc/go-dfc-http/framework/app"
	gohttp "github.com/km-arc/go-dfc-http/framework/http"
	"github.com/km-arc/go-dfc-http/framework/log"
	"github.com/km-arc/go-dfc-http/framework/routing"
)

// note is the body accepted by the demo endpoint.
type note struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func main() {
	application := app.New() // loads .env automatically
	helper := application.Helper

	application.Router.Prefix("/api", func(api *routing.Router) {

		// GET /api/customers?GivenName=John
		api.Get("/customers", func(w http.ResponseWriter, r *http.Request, dss gohttp.DSS) {
			res := gohttp.NewResponse(w)
			givenName, err := helper.GetQueryValue(gohttp.NewRequest(r), "GivenName")
			if err != nil {
				res.FromError(err)
				return
			}
			res.Success(map[string]any{"givenName": givenName, "dss": dss})
		})

		// POST /api/customers/{customerId}/notes
		api.Post("/customers/{customerId}/notes", routing.RequireTouchpoint(
			func(w http.ResponseWriter, r *http.Request, dss gohttp.DSS) {
				req := gohttp.NewRequest(r)
				res := gohttp.NewResponse(w)

				body, err := gohttp.ReadJSONBody[note](helper, req)
				if err != nil {
					log.FromContext(r.Context()).Info().Err(err).Msg("rejecting note")
					res.FromError(err)
					return
				}

				customerID := req.RouteParam("customerId")
				res.Created(map[string]any{
					"customerId": customerID,
					"touchpoint": dss.TouchpointID,
					"note":       body,
					"location":   dss.ApimURL + "/customers/" + customerID + "/notes",
				})
			}))
	})

	if err := application.Run(); err != nil {
		application.Logger.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}
