package dto

import (
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/service"
)

type BookingResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	TestType  string `json:"test_type"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"created_at"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
	Full      bool   `json:"full"`
}

type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type StatsResponse struct {
	Total    int `json:"total"`
	Today    int `json:"today"`
	Tomorrow int `json:"tomorrow"`
}

type ReminderReportResponse struct {
	Today         string `json:"today"`
	Tomorrow      string `json:"tomorrow"`
	TodayCount    int    `json:"today_count"`
	TomorrowCount int    `json:"tomorrow_count"`
	Sent          int    `json:"sent"`
	Failed        int    `json:"failed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		UserID:    b.UserID,
		Name:      b.Name,
		Age:       b.Age,
		Gender:    b.Gender,
		TestType:  b.TestType,
		Date:      b.Date,
		Time:      b.Time,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotsResponse(date string, slots []domain.SlotStatus) SlotsResponse {
	resp := SlotsResponse{Date: date, Slots: make([]SlotResponse, 0, len(slots))}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Time:      s.Time,
			Booked:    s.Booked,
			Available: s.Available,
			Full:      s.Full,
		})
	}
	return resp
}

func ToStatsResponse(s *domain.Stats) StatsResponse {
	return StatsResponse{Total: s.Total, Today: s.Today, Tomorrow: s.Tomorrow}
}

func ToReminderReportResponse(r *service.ReminderReport) ReminderReportResponse {
	return ReminderReportResponse{
		Today:         r.Today,
		Tomorrow:      r.Tomorrow,
		TodayCount:    r.TodayCount,
		TomorrowCount: r.TomorrowCount,
		Sent:          r.Sent,
		Failed:        r.Failed,
	}
}
