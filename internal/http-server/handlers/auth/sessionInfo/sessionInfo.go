package sessionInfo

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventConsole/internal/lib/api/response"
	"eventConsole/internal/models"
)

type Response struct {
	response.Response
	LoggedIn bool   `json:"loggedIn"`
	Role     string `json:"role,omitempty"`
	Name     string `json:"name,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionReader
type SessionReader interface {
	Current() models.Session
}

// New reports who is logged in. The nav bar uses it to decide what to show.
func New(log *slog.Logger, sessions SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Current()

		render.JSON(w, r, Response{
			Response: response.OK(),
			LoggedIn: sess.IsAdmin(),
			Role:     sess.Role,
			Name:     sess.Name,
		})
	}
}
