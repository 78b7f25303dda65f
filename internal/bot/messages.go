package bot

import (
	"fmt"
	"strings"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/service"
)

const (
	dateExample = "Example: 2024-01-15"

	msgUnauthorized    = "❌ Unauthorized command."
	msgNoBooking       = "❌ No booking found. Use /booktest to make a booking."
	msgCancelled       = "❌ Your booking has been cancelled successfully."
	msgNothingToCancel = "⚠️ No booking found to cancel."
	msgExportFailed    = "❌ Error exporting bookings. Please try again later."
	msgReminderFailed  = "❌ Error sending test reminders. Please try again later."
	msgUnknownCommand  = "❓ Unknown command. Use /help to see available commands."
	msgUnknownOption   = "❌ Unknown option."
	msgInternal        = "❌ Something went wrong. Please try again later."

	toastConfirmed    = "✅ Booking confirmed!"
	toastCommitFailed = "❌ Booking failed. Please try again."
)

var prompts = map[domain.Prompt]string{
	domain.PromptAskName:        "👤 Please enter your full name:",
	domain.PromptInvalidName:    "❌ Please enter your full name.",
	domain.PromptAskAge:         "🎂 Please enter your age:",
	domain.PromptInvalidAge:     "❌ Please enter a valid age between 0 and 120.",
	domain.PromptAskGender:      "⚧️ Please select your gender:",
	domain.PromptInvalidTest:    "❌ Please select a valid test number from the list above.",
	domain.PromptAskDate:        "📅 Please enter the date for your test (YYYY-MM-DD format):\n\n" + dateExample,
	domain.PromptInvalidDate:    "❌ Please enter a valid future date in YYYY-MM-DD format.\n\n" + dateExample,
	domain.PromptAskTime:        "⏰ Please select your preferred time slot:",
	domain.PromptSlotFull:       "❌ This time slot is full. Please choose another slot.",
	domain.PromptCommitFailed:   "❌ Sorry, there was an error processing your booking. Please try again later.",
	domain.PromptFollowProcess:  "❌ Please follow the booking process. Use the buttons or enter the requested information.",
	domain.PromptSessionBusy:    "⏳ Your booking is being processed. Please wait.",
	domain.PromptSessionExpired: "Session expired. Please start over with /booktest",
	domain.PromptAlreadyBooked:  "✅ You already have a booking. Use /summary to view it.",
	domain.PromptInProgress:     "📝 You already have a booking in progress. Answer the last question or use /cancel to start over.",
}

// promptText renders a prompt. It returns "" for prompts that need no message,
// such as a confirmed booking, whose details the notifier sends.
func promptText(p domain.Prompt) string {
	if p == domain.PromptAskTest {
		return "🧪 Please select a test by entering the number:\n\n" + testList()
	}
	return prompts[p]
}

// callbackToast is the short popup answer for a button press.
func callbackToast(reply domain.Reply) string {
	switch reply.Prompt {
	case domain.PromptConfirmed:
		return toastConfirmed
	case domain.PromptCommitFailed:
		return toastCommitFailed
	case domain.PromptSlotFull, domain.PromptSessionBusy, domain.PromptSessionExpired:
		return prompts[reply.Prompt]
	default:
		return ""
	}
}

// toastOnly reports whether a callback reply is fully answered by its toast.
// The keyboard the user pressed is still on screen for these.
func toastOnly(p domain.Prompt) bool {
	switch p {
	case domain.PromptSlotFull, domain.PromptSessionBusy, domain.PromptSessionExpired, domain.PromptConfirmed:
		return true
	}
	return false
}

func selectedText(kind domain.ChoiceKind, value string) string {
	if kind == domain.ChoiceGender {
		return "⚧️ Gender selected: " + value
	}
	return "⏰ Time selected: " + value
}

func testList() string {
	lines := make([]string, 0, len(domain.TestTypes))
	for i, t := range domain.TestTypes {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, t))
	}
	return strings.Join(lines, "\n")
}

func welcomeText() string {
	return "👋 Welcome to *Blood Test Bot*!\n\n" +
		"🩺 Available Commands:\n" +
		"/booktest - Start booking a test\n" +
		"/summary - View your booking\n" +
		"/cancel - Cancel your booking\n" +
		"/help - Show help\n" +
		"/support - Contact support\n\n" +
		"💬 To book a test, I'll need: Name, Age, Gender, Test type, Date, and Time."
}

func helpText() string {
	var b strings.Builder
	b.WriteString("🤖 *Help - Available Commands*\n\n")
	b.WriteString("/booktest - Start booking a blood test\n")
	b.WriteString("/summary - View your current booking\n")
	b.WriteString("/cancel - Cancel your current booking\n")
	b.WriteString("/support - Contact support\n\n")
	b.WriteString("📋 *Booking Process:*\n")
	b.WriteString("1️⃣ Provide your full name\n2️⃣ Enter your age\n3️⃣ Select gender\n")
	b.WriteString("4️⃣ Choose test type\n5️⃣ Pick date (YYYY-MM-DD format)\n6️⃣ Select time slot\n\n")
	b.WriteString("⏰ *Available Time Slots:*\n")
	for _, slot := range domain.TimeSlots {
		b.WriteString("• " + slot + "\n")
	}
	b.WriteString("\n🧪 *Available Tests:*\n")
	for _, t := range domain.TestTypes {
		fmt.Fprintf(&b, "• %s (%s)\n", t, domain.TestDescriptions[t])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func supportText(phone string) string {
	return fmt.Sprintf("📞 *Support Contact*\n\nPhone: %s\n\n"+
		"For any queries or assistance, please contact us during business hours.", phone)
}

func reminderReportText(r *service.ReminderReport) string {
	if r.TodayCount+r.TomorrowCount == 0 {
		return fmt.Sprintf("📭 No bookings found for today (%s) or tomorrow (%s).", r.Today, r.Tomorrow)
	}
	return fmt.Sprintf(
		"✅ Test reminders sent:\n📅 Today (%s): %d bookings\n📅 Tomorrow (%s): %d bookings\n📤 Total messages: %d",
		r.Today, r.TodayCount, r.Tomorrow, r.TomorrowCount, r.Sent,
	)
}
