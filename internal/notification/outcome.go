package notification

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeRetryable
	OutcomeFatal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryable:
		return "retryable_failure"
	case OutcomeFatal:
		return "fatal_failure"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one delivery attempt.
type Outcome struct {
	Kind   OutcomeKind
	Reason string // Empty on success
	Err    error
}

func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

func RetryableFailure(err error) Outcome {
	return Outcome{Kind: OutcomeRetryable, Reason: err.Error(), Err: err}
}

func FatalFailure(err error) Outcome {
	return Outcome{Kind: OutcomeFatal, Reason: err.Error(), Err: err}
}
