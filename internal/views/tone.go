package views

import (
	"strconv"

	"celebrate/internal/core"
)

// Tone is a presentation-neutral color key. Renderers map it to a palette.
type Tone string

const (
	ToneDanger    Tone = "danger"
	ToneWarning   Tone = "warning"
	ToneSuccess   Tone = "success"
	ToneNeutral   Tone = "neutral"
	ToneHighlight Tone = "highlight"
	ToneAccent    Tone = "accent"
	ToneInfo      Tone = "info"
)

func StatusTone(s core.BirthdayStatus) Tone {
	switch s {
	case core.BirthdayToday:
		return ToneDanger
	case core.BirthdayUpcoming:
		return ToneWarning
	default:
		return ToneSuccess
	}
}

func RelationshipTone(relationship string) Tone {
	switch relationship {
	case core.RelationshipBest:
		return ToneHighlight
	case core.RelationshipClose:
		return ToneAccent
	case core.RelationshipColleague:
		return ToneInfo
	default:
		return ToneNeutral
	}
}

func PriorityTone(p core.Priority) Tone {
	switch p {
	case core.PriorityHigh:
		return ToneDanger
	case core.PriorityMedium:
		return ToneWarning
	case core.PriorityLow:
		return ToneSuccess
	default:
		return ToneNeutral
	}
}

func RSVPTone(r core.RSVP) Tone {
	switch r {
	case core.RSVPGoing:
		return ToneSuccess
	case core.RSVPMaybe:
		return ToneWarning
	case core.RSVPNotGoing:
		return ToneDanger
	default:
		return ToneNeutral
	}
}

// RSVPLabel is the button text for an RSVP state. Pending and unset read "RSVP".
func RSVPLabel(r core.RSVP) string {
	switch r {
	case core.RSVPGoing:
		return "Going"
	case core.RSVPMaybe:
		return "Maybe"
	case core.RSVPNotGoing:
		return "Not Going"
	default:
		return "RSVP"
	}
}

// UrgencyText renders a day count for a birthday card.
func UrgencyText(days int) string {
	switch days {
	case 0:
		return "Today!"
	case 1:
		return "Tomorrow"
	default:
		return strconv.Itoa(days) + " days"
	}
}

// GreetingText maps a greeting tier to the home header. Unknown tiers from a
// custom table get a neutral greeting.
func GreetingText(tier string) string {
	switch tier {
	case "morning":
		return "Good morning"
	case "afternoon":
		return "Good afternoon"
	case "evening":
		return "Good evening"
	default:
		return "Hello"
	}
}
