package getEvent

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
	"eventConsole/internal/lib/timefmt"
	"eventConsole/internal/models"
	"eventConsole/internal/upstream"
)

type Response struct {
	response.Response
	Event models.Event `json:"event"`
	// Display pre-fills the edit form's hour/minute/AM-PM selectors.
	Display timefmt.Clock12 `json:"display"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, id int64) (models.Event, error)
}

func New(log *slog.Logger, events EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		event, err := events.GetEvent(r.Context(), id)
		if err != nil {
			log.Error("failed to load event", sl.Err(err), slog.Int64("event_id", id))

			if errors.Is(err, upstream.ErrUnauthorized) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication failed, please log in again"))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load event"))

			return
		}

		display, err := timefmt.To12Hour(event.Time)
		if err != nil {
			// Leave the selectors empty rather than failing the screen.
			log.Warn("event has unparseable time", sl.Err(err), slog.Int64("event_id", id))
			display = timefmt.Clock12{}
		}

		log.Info("event loaded", slog.Int64("event_id", id))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    event,
			Display:  display,
		})
	}
}
