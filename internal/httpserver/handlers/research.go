package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/prepscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/prepscout/internal/logger"
	"github.com/MrSnakeDoc/prepscout/internal/research"
)

const (
	emptyCompanyMessage = "Please enter a company name."
	timeoutMessage      = "Research took too long and was stopped, please try again."
)

// Research runs one research for ?company=&role= and renders the report
// under the form. An empty company re-renders the form with a 400.
func Research(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := newPageData(d)
		data.Company = strings.TrimSpace(r.URL.Query().Get("company"))
		data.Role = strings.TrimSpace(r.URL.Query().Get("role"))

		if data.Company == "" {
			data.Error = emptyCompanyMessage
			render(w, http.StatusBadRequest, data, d.Logger)
			return
		}

		d.Logger.Info("research request",
			logger.String("company", data.Company),
			logger.String("role", data.Role),
			logger.String("request_id", middleware.GetReqID(r.Context())))

		rep, err := d.Research.Run(r.Context(), data.Company, data.Role)

		// a run cut short by the request deadline has degraded every late section
		switch ctxErr := r.Context().Err(); {
		case errors.Is(ctxErr, context.DeadlineExceeded):
			d.Logger.Warn("research timed out", logger.String("company", data.Company))
			data.Error = timeoutMessage
			render(w, http.StatusGatewayTimeout, data, d.Logger)
			return
		case ctxErr != nil:
			d.Logger.Debug("research abandoned by client", logger.String("company", data.Company))
			return
		}

		switch {
		case errors.Is(err, research.ErrEmptyCompany):
			data.Error = emptyCompanyMessage
			render(w, http.StatusBadRequest, data, d.Logger)
			return
		case err != nil:
			d.Logger.Error("research failed", logger.String("company", data.Company), logger.Error(err))
			data.Error = "Research failed, please try again."
			render(w, http.StatusInternalServerError, data, d.Logger)
			return
		}

		data.Report = rep
		render(w, http.StatusOK, data, d.Logger)
	}
}
