package activity

import "strings"

// Status is the rolled-up outcome of an activity.
type Status string

const (
	StatusAttempted Status = "attempted"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusPassed    Status = "passed"
)

// Label is the learner-facing wording for a status.
func (s Status) Label() string {
	switch s {
	case StatusPassed:
		return "Passed"
	case StatusFailed:
		return "Failed"
	case StatusCompleted:
		return "Completed"
	default:
		return "In Progress"
	}
}

// Done reports whether the activity reached any terminal outcome.
func (s Status) Done() bool {
	return s == StatusPassed || s == StatusCompleted || s == StatusFailed
}

// NextStatus applies one verb to the current status.
//
//	passed, mastered   -> passed, always
//	failed             -> failed unless already passed
//	completed,finished -> completed unless already passed or failed
//
// Any other verb leaves the status unchanged.
func NextStatus(current Status, verb string) Status {
	switch strings.ToLower(verb) {
	case "passed", "mastered":
		return StatusPassed
	case "failed":
		if current != StatusPassed {
			return StatusFailed
		}
	case "completed", "finished":
		if current != StatusPassed && current != StatusFailed {
			return StatusCompleted
		}
	}
	return current
}
