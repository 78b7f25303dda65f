package domain

import "time"

type Step int

const (
	StepAwaitingName Step = iota + 1
	StepAwaitingAge
	StepAwaitingGender
	StepAwaitingTest
	StepAwaitingDate
	StepAwaitingTime
	StepCommitting
	StepClosed
)

var stepNames = map[Step]string{
	StepAwaitingName:   "awaiting_name",
	StepAwaitingAge:    "awaiting_age",
	StepAwaitingGender: "awaiting_gender",
	StepAwaitingTest:   "awaiting_test",
	StepAwaitingDate:   "awaiting_date",
	StepAwaitingTime:   "awaiting_time",
	StepCommitting:     "committing",
	StepClosed:         "closed",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Draft holds booking fields collected so far.
type Draft struct {
	Name     string
	Age      int
	Gender   string
	TestType string
	Date     string
	Time     string
}

func (d Draft) Booking(userID string) *Booking {
	return &Booking{
		UserID:   userID,
		Name:     d.Name,
		Age:      d.Age,
		Gender:   d.Gender,
		Date:     d.Date,
		Time:     d.Time,
		TestType: d.TestType,
	}
}

type Session struct {
	UserID    string
	Step      Step
	Draft     Draft
	Locked    bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

func NewSession(userID string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		UserID:    userID,
		Step:      StepAwaitingName,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type InputKind string

const (
	InputText   InputKind = "text"
	InputChoice InputKind = "choice"
)

// Input is one inbound user event: free text or a button choice.
type Input struct {
	Kind   InputKind
	Text   string
	Choice Choice
}

func TextInput(text string) Input {
	return Input{Kind: InputText, Text: text}
}

func ChoiceInput(c Choice) Input {
	return Input{Kind: InputChoice, Choice: c}
}

// Prompt identifies what the user should be told next.
type Prompt string

const (
	PromptNone           Prompt = ""
	PromptAskName        Prompt = "ask_name"
	PromptAskAge         Prompt = "ask_age"
	PromptInvalidName    Prompt = "invalid_name"
	PromptInvalidAge     Prompt = "invalid_age"
	PromptAskGender      Prompt = "ask_gender"
	PromptAskTest        Prompt = "ask_test"
	PromptInvalidTest    Prompt = "invalid_test"
	PromptAskDate        Prompt = "ask_date"
	PromptInvalidDate    Prompt = "invalid_date"
	PromptAskTime        Prompt = "ask_time"
	PromptSlotFull       Prompt = "slot_full"
	PromptConfirmed      Prompt = "confirmed"
	PromptCommitFailed   Prompt = "commit_failed"
	PromptFollowProcess  Prompt = "follow_process"
	PromptSessionBusy    Prompt = "session_busy"
	PromptSessionExpired Prompt = "session_expired"
	PromptAlreadyBooked  Prompt = "already_booked"
	PromptInProgress     Prompt = "in_progress"
)

// Reply is what the state machine hands back to the transport after each input.
// Selected carries the label of an accepted choice so the transport can echo it.
type Reply struct {
	Step     Step
	Prompt   Prompt
	Choices  []Choice
	Selected string
	Booking  *Booking
}
