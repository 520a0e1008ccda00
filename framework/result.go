package framework

import (
	"fmt"
	"strings"
)

// SummaryDelimiter is the line written above and below a framed summary.
var SummaryDelimiter = strings.Repeat("=", 35)

// Result accumulates the outcomes of every test case run against it.
//
// A Result is not safe for concurrent use; test cases are run one at a time.
type Result struct {
	runCount   int
	failures   []string
	errors     []string
	skipped    []string
	tests      []TestResult
	filter     Filter
	testLogger TestLogger
}

// TestResult describes how a single test case execution ended.
type TestResult struct {
	TestID      TestID
	Outcome     Outcome
	Messages    []string
	DebugOutput CapturedOutput
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// NewResult creates a Result. Either parameter may be nil; a nil filter includes every test.
func NewResult(filter Filter, testLogger TestLogger) *Result {
	return &Result{filter: filter, testLogger: testLogger}
}

// TestStarted increments the run counter.
func (r *Result) TestStarted() {
	r.runCount++
}

// AddFailure records a test that ended with an assertion failure.
func (r *Result) AddFailure(id string) {
	r.failures = append(r.failures, id)
}

// AddError records a test that ended with an unexpected error.
func (r *Result) AddError(id string) {
	r.errors = append(r.errors, id)
}

func (r *Result) addSkipped(id string) {
	r.skipped = append(r.skipped, id)
}

func (r *Result) RunCount() int {
	return r.runCount
}

func (r *Result) Failures() []string {
	return append([]string(nil), r.failures...)
}

func (r *Result) Errors() []string {
	return append([]string(nil), r.errors...)
}

// Skipped returns the tests that were run but ended by calling Skip.
func (r *Result) Skipped() []string {
	return append([]string(nil), r.skipped...)
}

// Tests returns the detailed result of every test case execution, in execution order.
func (r *Result) Tests() []TestResult {
	return append([]TestResult(nil), r.tests...)
}

// OK returns true if no test failed or errored.
func (r *Result) OK() bool {
	return len(r.failures) == 0 && len(r.errors) == 0
}

// Summary returns the one-line summary, for instance "3 run, 1 failed, 1 error".
func (r *Result) Summary() string {
	return fmt.Sprintf("%d run, %d failed, %d error", r.runCount, len(r.failures), len(r.errors))
}

// FramedSummary returns Summary with a delimiter line above and below it.
func (r *Result) FramedSummary() string {
	return SummaryDelimiter + "\n" + r.Summary() + "\n" + SummaryDelimiter
}

func (r *Result) includes(id TestID) bool {
	return r.filter == nil || r.filter(id)
}

func (r *Result) observer() TestLogger {
	if r.testLogger == nil {
		return nullTestLogger{}
	}
	return r.testLogger
}

// record routes a finished test into failures, errors or skipped, and keeps its details.
func (r *Result) record(tr TestResult) {
	id := tr.TestID.String()
	switch tr.Outcome.Kind {
	case OutcomeFailure:
		r.AddFailure(id)
	case OutcomeError:
		r.AddError(id)
	case OutcomeSkipped:
		r.addSkipped(id)
	}
	r.tests = append(r.tests, tr)
}
