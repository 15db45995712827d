package updateEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventConsole/internal/eventform"
	"eventConsole/internal/lib/api/response"
	"eventConsole/internal/lib/logger/sl"
	"eventConsole/internal/lib/timefmt"
	"eventConsole/internal/models"
	"eventConsole/internal/upstream"
)

// Request carries the edit form, with time as the three 12-hour selectors
// the screen shows instead of a raw HH:MM string.
type Request struct {
	EventName   string `json:"eventName"`
	Date        string `json:"date"`
	Hour        string `json:"hour"`
	Minute      string `json:"minute"`
	Meridiem    string `json:"meridiem"`
	Venue       string `json:"venue"`
	Capacity    int    `json:"capacity"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	GetEvent(ctx context.Context, id int64) (models.Event, error)
	UpdateEvent(ctx context.Context, id int64, event models.Event) (models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenReader
type TokenReader interface {
	Token() string
}

func New(log *slog.Logger, events EventUpdater, tokens TokenReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		log = log.With(slog.Int64("event_id", id))

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = eventform.CheckName(req.EventName); err != nil {
			log.Error("invalid event draft", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		// The selectors come back as 12-hour parts; the backend stores
		// zero-padded HH:MM:00.
		time24, err := timefmt.To24Hour(timefmt.Clock12{
			Hour:     req.Hour,
			Minute:   req.Minute,
			Meridiem: req.Meridiem,
		})
		if err != nil {
			log.Error("invalid time selection", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		if err = eventform.CheckCapacity(req.Capacity); err != nil {
			log.Error("invalid event draft", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		if err = eventform.CheckCategory(req.Category); err != nil {
			log.Error("invalid event draft", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		if !eventform.TokenPlausible(tokens.Token()) {
			log.Error("invalid or missing token")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or missing authentication token"))

			return
		}

		// Re-read the stored record so currentCapacity is resubmitted
		// unchanged; it is never edited directly.
		stored, err := events.GetEvent(r.Context(), id)
		if err != nil {
			log.Error("failed to load event before update", sl.Err(err))
			renderUpstreamError(w, r, err, "failed to update event")

			return
		}

		updated, err := events.UpdateEvent(r.Context(), id, models.Event{
			EventID:         id,
			EventName:       req.EventName,
			Date:            req.Date,
			Time:            time24,
			Venue:           req.Venue,
			Capacity:        req.Capacity,
			CurrentCapacity: stored.CurrentCapacity,
			Category:        req.Category,
			Description:     req.Description,
		})
		if err != nil {
			log.Error("failed to update event", sl.Err(err))
			renderUpstreamError(w, r, err, "failed to update event")

			return
		}

		log.Info("event updated", slog.String("time", updated.Time))

		render.JSON(w, r, response.OK())
	}
}

func renderUpstreamError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication failed, please log in again"))
	case errors.Is(err, upstream.ErrUnsupportedMedia):
		render.Status(r, http.StatusUnsupportedMediaType)
		render.JSON(w, r, response.Error("unsupported media type"))
	default:
		var fieldErrs upstream.FieldErrors
		if errors.As(err, &fieldErrs) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(fieldErrs.Error()))
			return
		}

		msg := fallback
		var upErr *upstream.Error
		if errors.As(err, &upErr) && upErr.Message != "" {
			msg = upErr.Message
		}

		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, response.Error(msg))
	}
}
