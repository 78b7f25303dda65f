package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/export"
	"github.com/dh139/venom-blood-test-bot/internal/handler/dto"
	"github.com/dh139/venom-blood-test-bot/internal/middleware"
	"github.com/dh139/venom-blood-test-bot/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type SlotSvc interface {
	Availability(ctx context.Context, date string) ([]domain.SlotStatus, error)
	Stats(ctx context.Context, now time.Time) (*domain.Stats, error)
}

type BookingSvc interface {
	Summary(ctx context.Context, userID string) (*domain.Booking, error)
	Cancel(ctx context.Context, userID string) (bool, error)
}

type AdminSvc interface {
	Authorize(userID string) error
	Bookings(ctx context.Context, date string) ([]*domain.Booking, error)
	Export(ctx context.Context, userID string) ([]byte, error)
	TriggerReminders(ctx context.Context, userID string, now time.Time) (*service.ReminderReport, error)
}

type Handler struct {
	slotService    SlotSvc
	bookingService BookingSvc
	adminService   AdminSvc
	loc            *time.Location
	now            func() time.Time
}

func NewHandler(slotService SlotSvc, bookingService BookingSvc, adminService AdminSvc, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		slotService:    slotService,
		bookingService: bookingService,
		adminService:   adminService,
		loc:            loc,
		now:            time.Now,
	}
}

// Slots

func (h *Handler) GetSlots(c *ginext.Context) {
	var q dto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	slots, err := h.slotService.Availability(c.Request.Context(), q.Date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotsResponse(q.Date, slots))
}

func (h *Handler) GetStats(c *ginext.Context) {
	stats, err := h.slotService.Stats(c.Request.Context(), h.now().In(h.loc))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	var q dto.BookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.adminService.Bookings(c.Request.Context(), q.Date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.Summary(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	existed, err := h.bookingService.Cancel(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !existed {
		h.handleError(c, domain.ErrBookingNotFound)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Operator actions

func (h *Handler) DispatchReminders(c *ginext.Context) {
	report, err := h.adminService.TriggerReminders(c.Request.Context(), operatorID(c), h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReminderReportResponse(report))
}

func (h *Handler) ExportBookings(c *ginext.Context) {
	data, err := h.adminService.Export(c.Request.Context(), operatorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, data)
}

func operatorID(c *ginext.Context) string {
	return c.GetHeader(middleware.OperatorHeader)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotFull),
		errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrSessionBusy):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
