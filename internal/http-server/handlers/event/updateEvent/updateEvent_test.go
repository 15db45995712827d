package updateEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventConsole/internal/http-server/handlers/event/updateEvent/mocks"
	"eventConsole/internal/lib/logger/handlers/slogdiscard"
	"eventConsole/internal/models"
	"eventConsole/internal/upstream"
)

const validToken = "eyJhbGciOiJIUzI1NiJ9.payload.sig"

const validBody = `{
	"eventName": "Annual Hackathon",
	"date": "2025-09-12",
	"hour": "06",
	"minute": "30",
	"meridiem": "PM",
	"venue": "Main Auditorium",
	"capacity": 250,
	"category": "TECHNICAL"
}`

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	stored := models.Event{
		EventID:         12,
		EventName:       "Annual Hackathon",
		Date:            "2025-09-12",
		Time:            "18:30:00",
		Venue:           "Old Hall",
		Capacity:        200,
		CurrentCapacity: 57,
		Category:        "TECHNICAL",
	}

	submitted := models.Event{
		EventID:   12,
		EventName: "Annual Hackathon",
		Date:      "2025-09-12",
		Time:      "18:30:00",
		Venue:     "Main Auditorium",
		Capacity:  250,
		// Carried over from the stored record, never edited directly.
		CurrentCapacity: 57,
		Category:        "TECHNICAL",
	}

	testCases := []struct {
		name           string
		requestBody    string
		token          string
		mockSetup      func(events *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success converts selectors and preserves current capacity",
			requestBody: validBody,
			token:       validToken,
			mockSetup: func(events *mocks.EventUpdater) {
				events.On("GetEvent", mock.Anything, int64(12)).Return(stored, nil)
				events.On("UpdateEvent", mock.Anything, int64(12), submitted).Return(submitted, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Short name rejected before any upstream call",
			requestBody:    `{"eventName":"Expo","hour":"06","minute":"30","meridiem":"PM","capacity":10,"category":"SPORTS"}`,
			token:          validToken,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"event name must be at least 5 characters"}`,
		},
		{
			name:           "Hour outside 1-12 rejected",
			requestBody:    `{"eventName":"Annual Hackathon","hour":"13","minute":"30","meridiem":"PM","capacity":10,"category":"SPORTS"}`,
			token:          validToken,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid hour \"13\""}`,
		},
		{
			name:           "Missing meridiem rejected",
			requestBody:    `{"eventName":"Annual Hackathon","hour":"06","minute":"30","capacity":10,"category":"SPORTS"}`,
			token:          validToken,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid meridiem \"\""}`,
		},
		{
			name:           "Implausible token redirects to login before any upstream call",
			requestBody:    validBody,
			token:          "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid or missing authentication token"}`,
		},
		{
			name:        "Upstream failure message surfaced",
			requestBody: validBody,
			token:       validToken,
			mockSetup: func(events *mocks.EventUpdater) {
				events.On("GetEvent", mock.Anything, int64(12)).Return(stored, nil)
				events.On("UpdateEvent", mock.Anything, int64(12), submitted).
					Return(models.Event{}, &upstream.Error{Status: http.StatusNotFound, Message: "event not found"})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockEvents := mocks.NewEventUpdater(t)
			if tc.mockSetup != nil {
				tc.mockSetup(mockEvents)
			}

			mockTokens := mocks.NewTokenReader(t)
			mockTokens.On("Token").Return(tc.token).Maybe()

			router := chi.NewRouter()
			router.Put("/admin/events/{id}", New(logger, mockEvents, mockTokens))

			req, err := http.NewRequest(http.MethodPut, "/admin/events/12", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
