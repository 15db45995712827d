package toggleAttendance

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
	"eventConsole/internal/lib/optimistic"
	"eventConsole/internal/roster"
	"eventConsole/internal/upstream"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceToggler
type AttendanceToggler interface {
	ToggleAttendance(ctx context.Context, registrationID int64) (bool, error)
}

type Response struct {
	response.Response
	Attended bool `json:"attended"`
}

// New flips a registration's attendance flag. The mirrored roster is updated
// optimistically before the remote call resolves, reconciled to the server's
// answer on success and rolled back to the snapshot on failure.
func New(log *slog.Logger, registrations AttendanceToggler, rosters *roster.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.toggleAttendance.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid registration id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid registration id"))

			return
		}

		var attended bool
		if _, ok := rosters.Attended(id); ok {
			attended, err = optimistic.Mutation[bool]{
				Get:     func() bool { a, _ := rosters.Attended(id); return a },
				Set:     func(a bool) { rosters.SetAttended(id, a) },
				Propose: func(a bool) bool { return !a },
				Attempt: func(ctx context.Context) (bool, error) {
					return registrations.ToggleAttendance(ctx, id)
				},
			}.Run(r.Context())
		} else {
			// Registration not mirrored, nothing to flip locally.
			attended, err = registrations.ToggleAttendance(r.Context(), id)
		}

		if err != nil {
			log.Error("failed to toggle attendance", sl.Err(err), slog.Int64("registration_id", id))

			if errors.Is(err, upstream.ErrUnauthorized) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication failed, please log in again"))
				return
			}

			msg := "failed to update attendance"
			var upErr *upstream.Error
			if errors.As(err, &upErr) && upErr.Message != "" {
				msg = upErr.Message
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(msg))

			return
		}

		log.Info("attendance toggled",
			slog.Int64("registration_id", id),
			slog.Bool("attended", attended),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Attended: attended,
		})
	}
}
