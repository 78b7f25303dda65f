package domain

import (
	"strconv"
	"strings"
)

// DefaultSlotLimit is the number of bookings a single (date, time) slot accepts.
const DefaultSlotLimit = 3

// TestTypes is the ordered list users pick from by 1-based index.
var TestTypes = []string{"CBC", "LFT", "KFT", "Diabetes", "Thyroid"}

// TestDescriptions holds the long names shown in help output.
var TestDescriptions = map[string]string{
	"CBC":      "Complete Blood Count",
	"LFT":      "Liver Function Test",
	"KFT":      "Kidney Function Test",
	"Diabetes": "Diabetes Panel",
	"Thyroid":  "Thyroid Panel",
}

var TimeSlots = []string{"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM"}

var Genders = []string{"male", "female", "other"}

type ChoiceKind string

const (
	ChoiceGender ChoiceKind = "gender"
	ChoiceTime   ChoiceKind = "time"
)

// Choice is a button selection. Data returns the callback payload, e.g. "gender_male" or "time_0".
type Choice struct {
	Kind  ChoiceKind `json:"kind"`
	Value string     `json:"value"`
	Label string     `json:"label,omitempty"`
}

func (c Choice) Data() string {
	return string(c.Kind) + "_" + c.Value
}

// ParseChoice decodes a callback payload produced by Choice.Data.
func ParseChoice(data string) (Choice, bool) {
	kind, value, ok := strings.Cut(data, "_")
	if !ok || value == "" {
		return Choice{}, false
	}

	switch ChoiceKind(kind) {
	case ChoiceGender, ChoiceTime:
		return Choice{Kind: ChoiceKind(kind), Value: value}, true
	default:
		return Choice{}, false
	}
}

// NormalizeGender maps a gender choice value to its stored label ("male" -> "Male").
func NormalizeGender(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, g := range Genders {
		if g == v {
			return strings.ToUpper(v[:1]) + v[1:], true
		}
	}
	return "", false
}

// TimeSlotAt resolves a time choice value (slot index) to the slot label.
func TimeSlotAt(value string) (string, bool) {
	idx, err := strconv.Atoi(value)
	if err != nil || idx < 0 || idx >= len(TimeSlots) {
		return "", false
	}
	return TimeSlots[idx], true
}

func IsTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func GenderChoices() []Choice {
	return []Choice{
		{Kind: ChoiceGender, Value: "male", Label: "👨 Male"},
		{Kind: ChoiceGender, Value: "female", Label: "👩 Female"},
		{Kind: ChoiceGender, Value: "other", Label: "⚧️ Other"},
	}
}

func TimeChoices() []Choice {
	choices := make([]Choice, 0, len(TimeSlots))
	for i, slot := range TimeSlots {
		choices = append(choices, Choice{
			Kind:  ChoiceTime,
			Value: strconv.Itoa(i),
			Label: "⏰ " + slot,
		})
	}
	return choices
}
