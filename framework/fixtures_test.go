package framework

import (
	"errors"
	"strings"
)

// wasRun records every hook and method call in log.
type wasRun struct {
	log           []string
	failSetUp     bool
	panicTearDown bool
	failTearDown  bool
}

func (w *wasRun) SetUp(t *T) {
	w.log = append(w.log, "set_up")
	if w.failSetUp {
		t.Fail("set_up failed")
	}
}

func (w *wasRun) TearDown(t *T) {
	w.log = append(w.log, "tear_down")
	if w.panicTearDown {
		panic("tear_down exploded")
	}
	if w.failTearDown {
		t.Fail("tear_down failed")
	}
}

func (w *wasRun) TestMethod(t *T) {
	w.log = append(w.log, "test_method")
}

func (w *wasRun) TestFailure(t *T) {
	w.log = append(w.log, "test_failure")
	t.AssertEqual(1, 2)
}

func (w *wasRun) TestError(t *T) {
	w.log = append(w.log, "test_error")
	panic(errors.New("something broke"))
}

func (w *wasRun) logString() string {
	return strings.Join(w.log, " ")
}

// wasRunType declares a wasRun fixture type whose factory always returns spy, so that a test
// can inspect the instance after running it.
func wasRunType(spy *wasRun) *FixtureType {
	return wasRunRegistry(func() *wasRun { return spy }).Type()
}

func wasRunRegistry(newFixture func() *wasRun) *Registry[*wasRun] {
	return Define("WasRun", newFixture).
		Method("test_method", (*wasRun).TestMethod).
		Method("test_failure", (*wasRun).TestFailure).
		Method("test_error", (*wasRun).TestError).
		Method("not_a_test", func(*wasRun, *T) {})
}

type emptyFixture struct {
	Hooks
}

// runFunc declares a single-method fixture type running fn.
func runFunc(name string, fn func(t *T)) *FixtureType {
	return Define("Func", func() *emptyFixture { return &emptyFixture{} }).
		Method(name, func(_ *emptyFixture, t *T) { fn(t) }).
		Type()
}

func runTest(ft *FixtureType, name string) *Result {
	result := NewResult(nil, nil)
	NewTestCase(ft, name).Run(result)
	return result
}
