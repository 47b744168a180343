package planner

import "github.com/AnuSaha545/ai-study-planner-agent/internal/timeslot"

// SessionType is the learning phase of a study session.
type SessionType string

const (
	SessionConcept  SessionType = "concept"
	SessionPractice SessionType = "practice"
	SessionRevision SessionType = "revision"
)

// Valid reports whether t is one of the known phases.
func (t SessionType) Valid() bool {
	switch t {
	case SessionConcept, SessionPractice, SessionRevision:
		return true
	}
	return false
}

// StudySession is one block of study for a subject.
type StudySession struct {
	Subject       string      `json:"subject"`
	SessionType   SessionType `json:"session_type"`
	DurationHours float64     `json:"duration_hours"`
	Notes         string      `json:"notes"`
}

// DailyPlan is the ordered list of sessions for one weekday.
// TimeSlots is only populated when the caller asked for a clock timetable.
type DailyPlan struct {
	Day        string          `json:"day"`
	TotalHours float64         `json:"total_hours"`
	Sessions   []StudySession  `json:"sessions"`
	TimeSlots  []timeslot.Slot `json:"time_slots,omitempty"`
}

// SessionHours sums the durations of the day's sessions.
func (d DailyPlan) SessionHours() float64 {
	var sum float64
	for _, s := range d.Sessions {
		sum += s.DurationHours
	}
	return sum
}

// Weekdays is the fixed calendar that day names are drawn from.
var Weekdays = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayName returns the weekday for a zero-based study-day index, cycling
// through the calendar.
func DayName(index int) string {
	return Weekdays[index%len(Weekdays)]
}
