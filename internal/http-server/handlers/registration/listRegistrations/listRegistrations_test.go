package listRegistrations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventConsole/internal/http-server/handlers/registration/listRegistrations/mocks"
	"eventConsole/internal/lib/logger/handlers/slogdiscard"
	"eventConsole/internal/models"
	"eventConsole/internal/roster"
	"eventConsole/internal/upstream"
)

func testRoster() []models.Registration {
	return []models.Registration{
		{RegistrationID: 1, Attended: true, Student: models.Student{
			StudentID: "CSE001", Name: "Ravi Kumar", Email: "ravi@college.edu", Department: "CSE",
		}},
		{RegistrationID: 2, Student: models.Student{
			StudentID: "ECE007", Name: "Anita Sharma", Email: "anita@college.edu", Department: "ECE",
		}},
		{RegistrationID: 3, Student: models.Student{
			StudentID: "CSE014", Name: "Deepak Ravindran", Email: "deepak@college.edu", Department: "CSE",
		}},
	}
}

func TestListRegistrationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(regs *mocks.RegistrationLister)
		expectedStatus int
		check          func(t *testing.T, resp Response)
		expectedBody   string
	}{
		{
			name: "Full roster with derived departments",
			url:  "/admin/events/5/registrations",
			mockSetup: func(regs *mocks.RegistrationLister) {
				regs.On("ListRegistrations", mock.Anything, int64(5)).Return(testRoster(), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp Response) {
				assert.Len(t, resp.Registrations, 3)
				assert.Equal(t, []string{"CSE", "ECE"}, resp.Departments)
				assert.Equal(t, 3, resp.Total)
			},
		},
		{
			name: "Department and search compose with AND",
			url:  "/admin/events/5/registrations?department=CSE&search=ravi",
			mockSetup: func(regs *mocks.RegistrationLister) {
				regs.On("ListRegistrations", mock.Anything, int64(5)).Return(testRoster(), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp Response) {
				require.Len(t, resp.Registrations, 2)
				for _, reg := range resp.Registrations {
					assert.Equal(t, "CSE", reg.Student.Department)
				}
				assert.Equal(t, "Ravi Kumar", resp.Registrations[0].Student.Name)
				assert.Equal(t, "Deepak Ravindran", resp.Registrations[1].Student.Name)
			},
		},
		{
			name: "Upstream failure",
			url:  "/admin/events/5/registrations",
			mockSetup: func(regs *mocks.RegistrationLister) {
				regs.On("ListRegistrations", mock.Anything, int64(5)).
					Return(nil, &upstream.Error{Status: http.StatusInternalServerError})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"failed to load registered students"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRegs := mocks.NewRegistrationLister(t)
			tc.mockSetup(mockRegs)

			rosters := roster.NewCache()

			router := chi.NewRouter()
			router.Get("/admin/events/{id}/registrations", New(logger, mockRegs, rosters))

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
				return
			}

			var resp Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			tc.check(t, resp)

			// A successful fetch mirrors the full roster for the toggle.
			mirrored, ok := rosters.Roster(5)
			assert.True(t, ok)
			assert.Len(t, mirrored, 3)
		})
	}
}
