package notification

import (
	"fmt"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	TicketCaption    = "🎟️ Your Booking QR Code\n\nPlease show this QR code at the clinic."
	TicketFailedText = "⚠️ QR code generation failed, but your booking is confirmed."
)

func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func ConfirmationText(b *domain.Booking) string {
	return fmt.Sprintf(
		"✅ *Booking Confirmed!*\n\n"+
			"👤 Name: %s\n🎂 Age: %d\n⚧️ Gender: %s\n🧪 Test: %s\n📅 Date: %s\n⏰ Time: %s\n\n"+
			"📱 You'll receive reminders before your appointment.\n🎟️ QR code is being generated...",
		esc(b.Name), b.Age, b.Gender, b.TestType, b.Date, b.Time,
	)
}

func SummaryText(b *domain.Booking) string {
	return fmt.Sprintf(
		"📝 *Your Booking Details*\n\n"+
			"👤 Name: %s\n🎂 Age: %d\n⚧️ Gender: %s\n🧪 Test: %s\n📅 Date: %s\n⏰ Time: %s\n\n"+
			"✅ Your booking is confirmed!",
		esc(b.Name), b.Age, b.Gender, b.TestType, b.Date, b.Time,
	)
}

// SameDayText names the recipient, the test and the slot time.
func SameDayText(b *domain.Booking, manual bool) string {
	if manual {
		return fmt.Sprintf(
			"🧪 *Test Same-Day Reminder*\n\nHello %s! This is a test reminder for your *%s* test scheduled TODAY at *%s*.\n\n"+
				"This was sent manually for testing purposes.",
			esc(b.Name), b.TestType, b.Time,
		)
	}
	return fmt.Sprintf(
		"⏰ *Today's Reminder*\n\nHello %s! Your *%s* test is scheduled TODAY at *%s*.\n\n"+
			"📍 Please arrive 15 minutes early.\n🧪 Remember to follow any pre-test instructions.\n\nThank you! 🩺",
		esc(b.Name), b.TestType, b.Time,
	)
}

// DayBeforeText adds the date and the fasting note to the same-day content.
func DayBeforeText(b *domain.Booking, manual bool) string {
	if manual {
		return fmt.Sprintf(
			"🧪 *Test Day-Before Reminder*\n\nHello %s! This is a test reminder for your *%s* test scheduled TOMORROW (%s) at *%s*.\n\n"+
				"💧 Fast for 8-12 hours if required for your test.\n\nThis was sent manually for testing purposes.",
			esc(b.Name), b.TestType, b.Date, b.Time,
		)
	}
	return fmt.Sprintf(
		"⏰ *Tomorrow's Reminder*\n\nHello %s! Your *%s* test is scheduled TOMORROW (%s) at *%s*.\n\n"+
			"📍 Please arrive 15 minutes early.\n🧪 Remember to follow any pre-test instructions.\n"+
			"💧 Fast for 8-12 hours if required for your test.\n\nThank you! 🩺",
		esc(b.Name), b.TestType, b.Date, b.Time,
	)
}
