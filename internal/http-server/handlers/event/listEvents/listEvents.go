package listEvents

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"

	"eventConsole/internal/lib/api/response"
	"eventConsole/internal/lib/logger/sl"
	"eventConsole/internal/models"
	"eventConsole/internal/upstream"
)

// One dashboard page shows a 3x3 grid of event cards.
const defaultPageSize = 9

const (
	FilterAll      = "ALL"
	FilterUpcoming = "UPCOMING"
	FilterPast     = "PAST"
)

type Response struct {
	response.Response
	Events     []models.Event `json:"events"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	HasPrev    bool           `json:"hasPrev"`
	HasNext    bool           `json:"hasNext"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(ctx context.Context, page, size int) (models.EventPage, error)
}

// New fetches one backend page and refines it locally: name search and the
// upcoming/past predicate apply only within the fetched page, so a filtered
// view can under-report matches living on other pages.
func New(log *slog.Logger, events EventLister, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(slog.String("op", op))

		page := 0
		if raw := r.URL.Query().Get("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid page number"))
				return
			}
			page = parsed
		}

		size := defaultPageSize
		if raw := r.URL.Query().Get("size"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid page size"))
				return
			}
			size = parsed
		}

		timeFilter := r.URL.Query().Get("time")
		if timeFilter == "" {
			timeFilter = FilterAll
		}
		if timeFilter != FilterAll && timeFilter != FilterUpcoming && timeFilter != FilterPast {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("time filter must be ALL, UPCOMING or PAST"))
			return
		}

		fetched, err := events.ListEvents(r.Context(), page, size)
		if err != nil {
			log.Error("failed to load events", sl.Err(err))

			if errors.Is(err, upstream.ErrUnauthorized) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication failed, please log in again"))
				return
			}

			msg := "failed to load events, please try again"
			var upErr *upstream.Error
			if errors.As(err, &upErr) && upErr.Message != "" {
				msg = upErr.Message
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(msg))

			return
		}

		filtered := filterEvents(fetched.Content, r.URL.Query().Get("search"), timeFilter, now())

		log.Info("events page loaded",
			slog.Int("page", page),
			slog.Int("fetched", len(fetched.Content)),
			slog.Int("after_filters", len(filtered)),
		)

		render.JSON(w, r, Response{
			Response:   response.OK(),
			Events:     filtered,
			Page:       page,
			TotalPages: fetched.TotalPages,
			HasPrev:    page > 0,
			HasNext:    page < fetched.TotalPages-1,
		})
	}
}

func filterEvents(events []models.Event, search, timeFilter string, now time.Time) []models.Event {
	search = strings.ToLower(search)

	out := make([]models.Event, 0, len(events))
	for _, event := range events {
		if search != "" && !strings.Contains(strings.ToLower(event.EventName), search) {
			continue
		}
		if !matchesTime(event.Date, timeFilter, now) {
			continue
		}
		out = append(out, event)
	}

	return out
}

func matchesTime(date, timeFilter string, now time.Time) bool {
	if timeFilter == FilterAll {
		return true
	}

	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		// An unparseable date is neither upcoming nor past.
		return false
	}

	if timeFilter == FilterUpcoming {
		return !d.Before(now)
	}

	return d.Before(now)
}
