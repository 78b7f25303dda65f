package dto

type SlotsQuery struct {
	Date string `form:"date" binding:"required"`
}

type BookingsQuery struct {
	Date string `form:"date"`
}
