// internal/domain/homework/status.go
package homework

// Status is the review state reported by the Practicum API for a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps a review status to the human-readable text sent to the chat.
type Verdicts map[Status]string

// DefaultVerdicts returns the built-in verdict table.
func DefaultVerdicts() Verdicts {
	return Verdicts{
		StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
		StatusReviewing: "Работа взята на проверку ревьюером.",
		StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
	}
}

// IsKnown reports whether s is one of the statuses the API is documented to return.
func (s Status) IsKnown() bool {
	switch s {
	case StatusApproved, StatusReviewing, StatusRejected:
		return true
	}
	return false
}

// Lookup returns the verdict text for status, if any.
func (v Verdicts) Lookup(status Status) (string, bool) {
	text, ok := v[status]
	return text, ok
}
