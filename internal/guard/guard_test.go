package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventConsole/internal/lib/logger/handlers/slogdiscard"
	"eventConsole/internal/models"
)

type fakeSessions struct {
	current models.Session
	subs    []func()
}

func (f *fakeSessions) Current() models.Session { return f.current }
func (f *fakeSessions) Subscribe(fn func())     { f.subs = append(f.subs, fn) }

func (f *fakeSessions) change(sess models.Session) {
	f.current = sess
	for _, fn := range f.subs {
		fn()
	}
}

func adminSession() models.Session {
	return models.Session{Token: "eyJx.y.z", Role: models.RoleAdmin, UserID: "1", Name: "Admin"}
}

func serveGuarded(g *Guard, handlerRan *bool) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*handlerRan = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/events", nil)
	rr := httptest.NewRecorder()
	g.RequireAdmin(next).ServeHTTP(rr, req)

	return rr
}

func TestRequireAdminRedirectsLoggedOut(t *testing.T) {
	t.Parallel()

	g := New(slogdiscard.NewDiscardLogger(), &fakeSessions{})

	var handlerRan bool
	rr := serveGuarded(g, &handlerRan)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, LoginPath, rr.Header().Get("Location"))
	assert.False(t, handlerRan)
}

func TestRequireAdminRedirectsNonAdminRole(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{current: models.Session{
		Token: "eyJx.y.z", Role: "STUDENT", UserID: "7", Name: "Student",
	}}
	g := New(slogdiscard.NewDiscardLogger(), sessions)

	var handlerRan bool
	rr := serveGuarded(g, &handlerRan)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, handlerRan)
}

func TestRequireAdminPassesAdminThrough(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{current: adminSession()}
	g := New(slogdiscard.NewDiscardLogger(), sessions)

	var handlerRan bool
	rr := serveGuarded(g, &handlerRan)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, handlerRan)
}

func TestVerdictFollowsSessionChanges(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	g := New(slogdiscard.NewDiscardLogger(), sessions)

	require.False(t, g.IsAuthorizedAdmin())

	sessions.change(adminSession())
	assert.True(t, g.IsAuthorizedAdmin())

	sessions.change(models.Session{})
	assert.False(t, g.IsAuthorizedAdmin())
}
