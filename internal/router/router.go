package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetSlots(c *ginext.Context)
	GetStats(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	DispatchReminders(c *ginext.Context)
	ExportBookings(c *ginext.Context)
}

// InitRouter mounts the admin API. operator guards every /api route.
func InitRouter(mode string, h Handler, operator ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", operator)
	{
		// Capacity
		api.GET("/slots", h.GetSlots)
		api.GET("/stats", h.GetStats)

		// Bookings
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:user_id", h.GetBooking)
		api.DELETE("/bookings/:user_id", h.CancelBooking)

		// Operator actions
		api.POST("/reminders/dispatch", h.DispatchReminders)
		api.GET("/export", h.ExportBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
