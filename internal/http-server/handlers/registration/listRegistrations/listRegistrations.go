package listRegistrations

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventConsole/internal/lib/api/response"
	"eventConsole/internal/lib/logger/sl"
	"eventConsole/internal/models"
	"eventConsole/internal/roster"
	"eventConsole/internal/upstream"
)

type Response struct {
	response.Response
	Registrations []models.Registration `json:"registrations"`
	// Departments are derived from the fetched roster, not server-provided.
	Departments []string `json:"departments"`
	Total       int      `json:"total"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationLister
type RegistrationLister interface {
	ListRegistrations(ctx context.Context, eventID int64) ([]models.Registration, error)
}

// New fetches the full roster for one event (no pagination), mirrors it for
// the attendance toggle, and applies the department and search refinements.
func New(log *slog.Logger, registrations RegistrationLister, rosters *roster.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.listRegistrations.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		regs, err := registrations.ListRegistrations(r.Context(), eventID)
		if err != nil {
			log.Error("failed to load registrations", sl.Err(err), slog.Int64("event_id", eventID))

			if errors.Is(err, upstream.ErrUnauthorized) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication failed, please log in again"))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load registered students"))

			return
		}

		rosters.Replace(eventID, regs)

		filtered := roster.Filter(regs,
			r.URL.Query().Get("search"),
			r.URL.Query().Get("department"),
		)

		log.Info("roster loaded",
			slog.Int64("event_id", eventID),
			slog.Int("registrations", len(regs)),
			slog.Int("after_filters", len(filtered)),
		)

		render.JSON(w, r, Response{
			Response:      response.OK(),
			Registrations: filtered,
			Departments:   roster.Departments(regs),
			Total:         len(filtered),
		})
	}
}
