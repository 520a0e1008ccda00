package framework

// OutcomeKind classifies how a test case execution ended.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailure
	OutcomeError
	OutcomeSkipped
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "pass"
	case OutcomeFailure:
		return "fail"
	case OutcomeError:
		return "error"
	case OutcomeSkipped:
		return "skip"
	default:
		return "unknown"
	}
}

// Outcome is the typed result of running one phase of a test case. Message is empty on success.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

func Success() Outcome { return Outcome{Kind: OutcomeSuccess} }

func Failure(message string) Outcome { return Outcome{Kind: OutcomeFailure, Message: message} }

func Error(message string) Outcome { return Outcome{Kind: OutcomeError, Message: message} }

func Skipped(reason string) Outcome { return Outcome{Kind: OutcomeSkipped, Message: reason} }

// Failed returns true for failure and error outcomes.
func (o Outcome) Failed() bool {
	return o.Kind == OutcomeFailure || o.Kind == OutcomeError
}

// then combines the outcome of a test body with the outcome of the tear-down that followed it.
// A failed body keeps its own outcome; otherwise a failed tear-down takes over.
func (o Outcome) then(tearDown Outcome) Outcome {
	if !o.Failed() && tearDown.Failed() {
		return tearDown
	}
	return o
}
