package services

// Status is the outcome of processing one treatment.
type Status int

const (
	Rejected Status = iota
	Accepted
)

// StatusOf maps an evaluation verdict to a Status.
func StatusOf(accepted bool) Status {
	if accepted {
		return Accepted
	}
	return Rejected
}

// IsAccepted reports whether s is Accepted.
func (s Status) IsAccepted() bool {
	return s == Accepted
}

// String returns the label printed in status lines.
func (s Status) String() string {
	if s == Accepted {
		return "ACEPTADO"
	}
	return "RECHAZADO"
}
