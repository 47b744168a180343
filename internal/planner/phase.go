package planner

import "fmt"

// Phase blend weights and cut-offs.
const (
	progressWeight = 0.7
	dayWeight      = 0.3

	practiceThreshold = 0.35
	revisionThreshold = 0.75
)

var noteTemplates = map[SessionType]string{
	SessionConcept:  "Master core concepts and theory of %s",
	SessionPractice: "Apply knowledge through practical exercises in %s",
	SessionRevision: "Review and consolidate learning in %s",
}

// PhaseFor picks the session phase from a subject's progress and the day's
// position in the week.
//
// occurrence is how many sessions of the subject were allocated before this
// one and expected is the subject's block target for the week. dayIndex is
// zero-based within days.
func PhaseFor(occurrence, expected, dayIndex, days int) SessionType {
	progress := float64(occurrence) / float64(max(expected, 1))
	dayProgress := float64(dayIndex) / float64(max(days-1, 1))
	return phaseFromBlend(progressWeight*progress + dayWeight*dayProgress)
}

func phaseFromBlend(v float64) SessionType {
	switch {
	case v < practiceThreshold:
		return SessionConcept
	case v < revisionThreshold:
		return SessionPractice
	default:
		return SessionRevision
	}
}

// NotesFor returns the fixed note for a phase, naming the subject.
func NotesFor(subject string, phase SessionType) string {
	if tmpl, ok := noteTemplates[phase]; ok {
		return fmt.Sprintf(tmpl, subject)
	}
	return "Study " + subject
}
