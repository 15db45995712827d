package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventConsole/internal/eventform"
	"eventConsole/internal/lib/api/response"
	"eventConsole/internal/lib/logger/sl"
	"eventConsole/internal/models"
	"eventConsole/internal/upstream"
)

type Response struct {
	response.Response
	EventID int64 `json:"eventId,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenReader
type TokenReader interface {
	Token() string
}

func New(log *slog.Logger, events EventCreator, tokens TokenReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		var draft eventform.Draft

		err := render.DecodeJSON(r.Body, &draft)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", draft))

		// Field rules run in order and stop at the first failure.
		if err = draft.Check(); err != nil {
			log.Error("invalid event draft", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		// A token that cannot even be a JWT never reaches the backend.
		if !eventform.TokenPlausible(tokens.Token()) {
			log.Error("invalid or missing token")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or missing authentication token"))

			return
		}

		created, err := events.CreateEvent(r.Context(), models.Event{
			EventName:   draft.EventName,
			Date:        draft.Date,
			Time:        draft.Time,
			Venue:       draft.Venue,
			Capacity:    draft.Capacity,
			Category:    draft.Category,
			Description: draft.Description,
			// New events always start empty.
			CurrentCapacity: 0,
		})
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			renderUpstreamError(w, r, err, "failed to create event")

			return
		}

		log.Info("event created", slog.Int64("event_id", created.EventID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			EventID:  created.EventID,
		})
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
