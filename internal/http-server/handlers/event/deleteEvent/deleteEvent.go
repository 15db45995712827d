package deleteEvent

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
	"eventConsole/internal/upstream"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, id int64) error
}

// New deletes an event. The caller must pass confirm=true: deletion is the
// one destructive action on the dashboard and never runs implicitly.
func New(log *slog.Logger, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		if r.URL.Query().Get("confirm") != "true" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("deletion requires confirm=true"))

			return
		}

		if err := events.DeleteEvent(r.Context(), id); err != nil {
			log.Error("failed to delete event", sl.Err(err), slog.Int64("event_id", id))

			if errors.Is(err, upstream.ErrUnauthorized) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication failed, please log in again"))
				return
			}

			msg := "failed to delete event"
			var upErr *upstream.Error
			if errors.As(err, &upErr) && upErr.Message != "" {
				msg = upErr.Message
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(msg))

			return
		}

		log.Info("event deleted", slog.Int64("event_id", id))

		render.JSON(w, r, response.OK())
	}
}
