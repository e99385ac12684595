package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/movie-catalog/api"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := api.UP
	httpStatus := http.StatusOK

	if p, ok := app.movieRepo.(pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		err := p.Ping(ctx)
		if err != nil {
			app.contextGetLogger(r).Error("datastore ping failed", "store", app.config.Store, "error", err)
			status = api.DOWN
			httpStatus = http.StatusServiceUnavailable
		}
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
			Store:       app.config.Store,
		},
	}

	err := app.writeJSON(w, httpStatus, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
