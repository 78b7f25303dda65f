package domain

import (
	"strconv"
	"time"
)

// DateLayout is the fixed calendar date format used for booking dates.
const DateLayout = "2006-01-02"

type Booking struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	TestType  string    `json:"test_type"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordHeader names the columns of Record, in order.
var RecordHeader = []string{"User ID", "Name", "Age", "Gender", "Date", "Time", "Test"}

// Record returns the booking as the 7 ordered fields shared with external stores:
// userId, name, age, gender, date, time, testType.
func (b *Booking) Record() []string {
	return []string{
		b.UserID,
		b.Name,
		strconv.Itoa(b.Age),
		b.Gender,
		b.Date,
		b.Time,
		b.TestType,
	}
}

// Slot is a (date, time) pair. It is never stored, only derived from bookings.
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (b *Booking) Slot() Slot {
	return Slot{Date: b.Date, Time: b.Time}
}

type SlotStatus struct {
	Time      string `json:"time"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
	Full      bool   `json:"full"`
}

type Stats struct {
	Total    int `json:"total"`
	Today    int `json:"today"`
	Tomorrow int `json:"tomorrow"`
}
