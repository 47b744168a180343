package outline

// SubjectOutline is the ordered concept list and practice task list for one
// subject.
type SubjectOutline struct {
	Subject       string   `json:"subject"`
	Concepts      []string `json:"concepts"`
	PracticeTasks []string `json:"practice_tasks"`
}

// Limits on model output, enforced by OutlineSchema.
const (
	MaxSubjectLength = 100
	MaxItems         = 60
	MaxItemLength    = 80
)
