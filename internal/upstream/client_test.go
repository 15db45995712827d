package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventConsole/internal/models"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL, 5*time.Second, staticToken(token))
}

func TestLoginSkipsBearerToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "eyJstale.token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/admin/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin", creds["username"])
		assert.Equal(t, "secret", creds["password"])

		json.NewEncoder(w).Encode(models.Session{
			Token: "eyJnew.token", Role: models.RoleAdmin, UserID: "1", Name: "Admin",
		})
	})

	sess, err := client.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "eyJnew.token", sess.Token)
	assert.True(t, sess.IsAdmin())
}

func TestLoginUnauthorized(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListEventsAttachesBearer(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "eyJabc.def", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "9", r.URL.Query().Get("size"))
		assert.Equal(t, "Bearer eyJabc.def", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(models.EventPage{
			Content:    []models.Event{{EventID: 1, EventName: "Tech Symposium"}},
			TotalPages: 3,
		})
	})

	page, err := client.ListEvents(context.Background(), 2, 9)
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)
	assert.Equal(t, 3, page.TotalPages)
}

func TestListEventsDefaultsTotalPages(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(models.EventPage{})
	})

	page, err := client.ListEvents(context.Background(), 0, 9)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
}

func TestEmptyTokenSendsNoAuthorizationHeader(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.EventPage{TotalPages: 1})
	})

	_, err := client.ListEvents(context.Background(), 0, 9)
	require.NoError(t, err)
}

func TestCreateEventFieldErrors(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "eyJabc", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]string{
				{"field": "eventName", "defaultMessage": "must not be blank"},
				{"field": "capacity", "defaultMessage": "must be positive"},
			},
		})
	})

	_, err := client.CreateEvent(context.Background(), models.Event{})
	require.Error(t, err)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "eventName: must not be blank, capacity: must be positive", fieldErrs.Error())
}

func TestDecodeErrorMessageFallbacks(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "message field", status: 500, body: `{"message":"database down"}`, wantMsg: "database down"},
		{name: "error field", status: 404, body: `{"error":"event not found"}`, wantMsg: "event not found"},
		{name: "unparseable body", status: 502, body: `<html>bad gateway</html>`, wantMsg: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := client.GetEvent(context.Background(), 7)
			require.Error(t, err)

			var upErr *Error
			require.ErrorAs(t, err, &upErr)
			assert.Equal(t, tc.status, upErr.Status)
			assert.Equal(t, tc.wantMsg, upErr.Message)
		})
	}
}

func TestUnsupportedMediaType(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "eyJabc", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnsupportedMediaType)
	})

	err := client.DeleteEvent(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
}

func TestListRegistrationsNormalizesAttended(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "eyJabc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/5/registrations", r.URL.Path)

		w.Write([]byte(`[
			{"registrationId":1,"attended":true,"student":{"name":"Ravi Kumar"}},
			{"registrationId":2,"attended":null,"student":{"name":"Anita Sharma"}},
			{"registrationId":3,"student":{"name":"Deepak Ravindran"}}
		]`))
	})

	regs, err := client.ListRegistrations(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, regs, 3)
	assert.True(t, regs[0].Attended)
	assert.False(t, regs[1].Attended)
	assert.False(t, regs[2].Attended)
}

func TestToggleAttendance(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "eyJabc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/registrations/9/toggle-attendance", r.URL.Path)

		w.Write([]byte(`{"attended":true}`))
	})

	attended, err := client.ToggleAttendance(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, attended)
}

func TestToggleAttendanceMissingFlag(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "eyJabc", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	})

	attended, err := client.ToggleAttendance(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, attended)
}

func TestCreateAdmin(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "eyJabc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/admins", r.URL.Path)
		assert.Equal(t, "Bearer eyJabc", r.Header.Get("Authorization"))

		var draft AdminDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "newadmin", draft.Username)

		w.WriteHeader(http.StatusCreated)
	})

	err := client.CreateAdmin(context.Background(), AdminDraft{
		Username: "newadmin", Name: "New Admin", Email: "new@college.edu", Password: "pw",
	})
	assert.NoError(t, err)
}
