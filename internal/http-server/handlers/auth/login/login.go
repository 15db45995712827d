package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventConsole/internal/lib/api/response"
	"eventConsole/internal/lib/logger/sl"
	"eventConsole/internal/models"
	"eventConsole/internal/upstream"
)

type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Role string `json:"role,omitempty"`
	Name string `json:"name,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionSaver
type SessionSaver interface {
	Set(sess models.Session) error
}

func New(log *slog.Logger, auth Authenticator, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		sess, err := auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			log.Error("login rejected", sl.Err(err), slog.String("username", req.Username))

			if errors.Is(err, upstream.ErrUnauthorized) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid username or password"))
				return
			}

			var upErr *upstream.Error
			if errors.As(err, &upErr) && upErr.Message != "" {
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error(upErr.Message))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("login failed"))

			return
		}

		if err = sessions.Set(sess); err != nil {
			log.Error("failed to save session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save session"))

			return
		}

		log.Info("admin logged in",
			slog.String("user_id", sess.UserID),
			slog.String("role", sess.Role),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Role:     sess.Role,
			Name:     sess.Name,
		})
	}
}
