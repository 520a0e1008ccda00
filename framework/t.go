package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/stretchr/testify/require"
)

// T is passed to fixture hooks and test methods. It is used similarly to *testing.T: it
// provides assertions, implements require.TestingT so that any testify assertion can be used,
// and can skip the current test.
type T struct {
	id          TestID
	testLogger  TestLogger
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	failures    []string
	messages    []string
}

type abortWithError struct {
	err error
}

func newT(id TestID, testLogger TestLogger) *T {
	return &T{id: id, testLogger: testLogger}
}

func (t *T) ID() TestID {
	return t.id
}

// AssertEqual fails the test unless expected and actual are equal. Slices, maps and structs
// are compared by content.
func (t *T) AssertEqual(expected, actual interface{}, msgAndArgs ...interface{}) {
	require.Equal(t, expected, actual, msgAndArgs...)
}

func (t *T) AssertTrue(value bool, msgAndArgs ...interface{}) {
	require.True(t, value, msgAndArgs...)
}

func (t *T) AssertFalse(value bool, msgAndArgs ...interface{}) {
	require.False(t, value, msgAndArgs...)
}

// AssertIn fails the test unless container holds member: a substring of a string, an element
// of a slice or array, or a key of a map.
func (t *T) AssertIn(member, container interface{}, msgAndArgs ...interface{}) {
	require.Contains(t, container, member, msgAndArgs...)
}

// Errorf records an assertion failure without stopping the test.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	message := fmt.Sprintf(format, args...)
	t.failures = append(t.failures, message)
	t.addMessage(message)
}

// FailNow stops the test, which is recorded as failed.
func (t *T) FailNow() {
	panic(t)
}

// Fail records an assertion failure with the given message and stops the test.
func (t *T) Fail(message string) {
	t.Errorf("%s", message)
	t.FailNow()
}

// Must stops the test with an error outcome if err is not nil.
func (t *T) Must(err error) {
	if err != nil {
		panic(abortWithError{err})
	}
}

func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

func (t *T) DebugLogger() Logger {
	return &t.debugLogger
}

func (t *T) addMessage(message string) {
	t.messages = append(t.messages, message)
	t.testLogger.TestError(t.id, errors.New(message))
}

// invoke runs one phase of a test case and converts the way it ended into an Outcome.
func (t *T) invoke(action func()) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = t.recovered(r)
		}
	}()
	action()
	return t.status()
}

func (t *T) status() Outcome {
	if t.failed {
		return Failure(strings.Join(t.failures, "\n"))
	}
	if t.skipped {
		return Skipped(t.skipReason)
	}
	return Success()
}

func (t *T) recovered(r interface{}) Outcome {
	switch v := r.(type) {
	case *T:
		if v == t && !t.failed && !t.skipped {
			t.Errorf("test failed with no failure message")
		}
		return t.status()
	case abortWithError:
		message := fmt.Sprintf("unexpected error: %s", v.err)
		t.addMessage(message)
		return Error(message)
	case error:
		if IsAssertionError(v) {
			t.Errorf("%s", v)
			return t.status()
		}
	}
	message := fmt.Sprintf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
	t.addMessage(message)
	return Error(message)
}
