package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventConsole/internal/lib/api/response"
	"eventConsole/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionClearer
type SessionClearer interface {
	Clear() error
}

// New clears the whole session: all four slots go at once.
func New(log *slog.Logger, sessions SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log = log.With(slog.String("op", op))

		if err := sessions.Clear(); err != nil {
			log.Error("failed to clear session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to clear session"))

			return
		}

		log.Info("admin logged out")

		render.JSON(w, r, response.OK())
	}
}
