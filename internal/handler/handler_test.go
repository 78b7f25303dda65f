package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/export"
	"github.com/dh139/venom-blood-test-bot/internal/handler/dto"
	hmocks "github.com/dh139/venom-blood-test-bot/internal/handler/mocks"
	"github.com/dh139/venom-blood-test-bot/internal/middleware"
	"github.com/dh139/venom-blood-test-bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const operator = "1000"

var fixedNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func setupRouter(t *testing.T) (*hmocks.MockSlotSvc, *hmocks.MockBookingSvc, *hmocks.MockAdminSvc, http.Handler) {
	t.Helper()
	slotSvc := hmocks.NewMockSlotSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	adminSvc := hmocks.NewMockAdminSvc(t)

	h := NewHandler(slotSvc, bookingSvc, adminSvc, time.UTC)
	h.now = func() time.Time { return fixedNow }

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/slots", h.GetSlots)
		api.GET("/stats", h.GetStats)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:user_id", h.GetBooking)
		api.DELETE("/bookings/:user_id", h.CancelBooking)
		api.POST("/reminders/dispatch", h.DispatchReminders)
		api.GET("/export", h.ExportBookings)
	}

	return slotSvc, bookingSvc, adminSvc, r
}

func do(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(middleware.OperatorHeader, operator)
	r.ServeHTTP(w, req)
	return w
}

// --- Slots ---

func TestHandler_GetSlots_Success(t *testing.T) {
	slotSvc, _, _, r := setupRouter(t)

	slotSvc.EXPECT().Availability(mock.Anything, "2025-03-11").Return([]domain.SlotStatus{
		{Time: "9:00 AM", Booked: 3, Available: 0, Full: true},
		{Time: "10:00 AM", Booked: 1, Available: 2},
	}, nil)

	w := do(r, http.MethodGet, "/api/slots?date=2025-03-11")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-11", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].Full)
	assert.Equal(t, 2, resp.Slots[1].Available)
}

func TestHandler_GetSlots_MissingDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/slots")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSlots_InvalidDate(t *testing.T) {
	slotSvc, _, _, r := setupRouter(t)

	slotSvc.EXPECT().Availability(mock.Anything, "tomorrow").Return(nil, domain.ErrValidation)

	w := do(r, http.MethodGet, "/api/slots?date=tomorrow")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStats(t *testing.T) {
	slotSvc, _, _, r := setupRouter(t)

	slotSvc.EXPECT().Stats(mock.Anything, fixedNow).Return(&domain.Stats{Total: 5, Today: 1, Tomorrow: 2}, nil)

	w := do(r, http.MethodGet, "/api/stats")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.StatsResponse{Total: 5, Today: 1, Tomorrow: 2}, resp)
}

func TestHandler_GetStats_InternalError(t *testing.T) {
	slotSvc, _, _, r := setupRouter(t)

	slotSvc.EXPECT().Stats(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	w := do(r, http.MethodGet, "/api/stats")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

// --- Bookings ---

func TestHandler_ListBookings(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	adminSvc.EXPECT().Bookings(mock.Anything, "2025-03-11").Return([]*domain.Booking{
		{UserID: "42", Name: "Alice", Date: "2025-03-11", Time: "9:00 AM", CreatedAt: fixedNow},
	}, nil)

	w := do(r, http.MethodGet, "/api/bookings?date=2025-03-11")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Alice", resp[0].Name)
	assert.Equal(t, "2025-03-10T10:00:00Z", resp[0].CreatedAt)
}

func TestHandler_ListBookings_Empty(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	adminSvc.EXPECT().Bookings(mock.Anything, "").Return(nil, nil)

	w := do(r, http.MethodGet, "/api/bookings")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Summary(mock.Anything, "42").Return(nil, domain.ErrBookingNotFound)

	w := do(r, http.MethodGet, "/api/bookings/42")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Summary(mock.Anything, "42").Return(&domain.Booking{UserID: "42", TestType: "CBC"}, nil)

	w := do(r, http.MethodGet, "/api/bookings/42")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CBC", resp.TestType)
}

func TestHandler_CancelBooking(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, "42").Return(true, nil).Once()
	bookingSvc.EXPECT().Cancel(mock.Anything, "43").Return(false, nil).Once()

	w := do(r, http.MethodDelete, "/api/bookings/42")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/api/bookings/43")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_Busy(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, "42").Return(false, domain.ErrSessionBusy)

	w := do(r, http.MethodDelete, "/api/bookings/42")
	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Operator actions ---

func TestHandler_DispatchReminders(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	adminSvc.EXPECT().TriggerReminders(mock.Anything, operator, fixedNow).Return(&service.ReminderReport{
		Today: "2025-03-10", Tomorrow: "2025-03-11", TodayCount: 1, Sent: 1,
	}, nil)

	w := do(r, http.MethodPost, "/api/reminders/dispatch")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReminderReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Sent)
}

func TestHandler_DispatchReminders_Unauthorized(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	adminSvc.EXPECT().TriggerReminders(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	w := do(r, http.MethodPost, "/api/reminders/dispatch")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ExportBookings(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	adminSvc.EXPECT().Export(mock.Anything, operator).Return([]byte("PK\x03\x04"), nil)

	w := do(r, http.MethodGet, "/api/export")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings.xlsx")
	assert.Equal(t, "PK\x03\x04", w.Body.String())
}
