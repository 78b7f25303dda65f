package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func ok(c *ginext.Context) { c.Status(http.StatusNoContent) }

func (stubHandler) GetSlots(c *ginext.Context)          { ok(c) }
func (stubHandler) GetStats(c *ginext.Context)          { ok(c) }
func (stubHandler) ListBookings(c *ginext.Context)      { ok(c) }
func (stubHandler) GetBooking(c *ginext.Context)        { ok(c) }
func (stubHandler) CancelBooking(c *ginext.Context)     { ok(c) }
func (stubHandler) DispatchReminders(c *ginext.Context) { ok(c) }
func (stubHandler) ExportBookings(c *ginext.Context)    { ok(c) }

func denyAll(c *ginext.Context) {
	c.AbortWithStatus(http.StatusForbidden)
}

func serve(r http.Handler, method, target string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w.Code
}

func TestInitRouter_OperatorGuardsAPI(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/slots"},
		{http.MethodGet, "/api/stats"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/bookings/42"},
		{http.MethodDelete, "/api/bookings/42"},
		{http.MethodPost, "/api/reminders/dispatch"},
		{http.MethodGet, "/api/export"},
	}
	for _, rt := range routes {
		assert.Equal(t, http.StatusForbidden, serve(r, rt.method, rt.path), rt.method+" "+rt.path)
	}
}

func TestInitRouter_Routes(t *testing.T) {
	r := InitRouter("test", stubHandler{}, func(c *ginext.Context) { c.Next() })

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPost, "/api/reminders/dispatch"))
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/events"))
}

func TestInitRouter_PublicEndpoints(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health"))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics"))
}
