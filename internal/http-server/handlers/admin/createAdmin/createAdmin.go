package createAdmin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventConsole/internal/lib/api/response"
	"eventConsole/internal/lib/logger/sl"
	"eventConsole/internal/upstream"
)

type Request struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AdminCreator
type AdminCreator interface {
	CreateAdmin(ctx context.Context, draft upstream.AdminDraft) error
}

func New(log *slog.Logger, admins AdminCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.createAdmin.New"

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

		err = admins.CreateAdmin(r.Context(), upstream.AdminDraft{
			Username: req.Username,
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			log.Error("failed to create admin", sl.Err(err))

			switch {
			case errors.Is(err, upstream.ErrUnauthorized):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication failed, please log in again"))
			default:
				var upErr *upstream.Error
				if errors.As(err, &upErr) && upErr.Message != "" {
					render.Status(r, http.StatusBadGateway)
					render.JSON(w, r, response.Error(upErr.Message))
					return
				}

				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("failed to create admin"))
			}

			return
		}

		log.Info("admin created", slog.String("username", req.Username))

		render.JSON(w, r, response.OK())
	}
}
