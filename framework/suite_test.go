package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuiteMixedScenario(t *testing.T) {
	ft := wasRunType(&wasRun{})
	suite := NewSuite()
	suite.AddTest(NewTestCase(ft, "test_method"))
	suite.AddTest(NewTestCase(ft, "test_failure"))
	suite.AddTest(NewTestCase(ft, "test_error"))

	result := NewResult(nil, nil)
	suite.Run(result)
	assert.Equal(t, "3 run, 1 failed, 1 error", result.Summary())
}

func TestSuiteRunsInInsertionOrder(t *testing.T) {
	spy := &wasRun{}
	ft := wasRunType(spy)
	suite := NewSuite(NewTestCase(ft, "test_error"), NewTestCase(ft, "test_method"))
	suite.AddTest(NewTestCase(ft, "test_method"))

	suite.Run(NewResult(nil, nil))
	assert.Equal(t,
		"set_up test_error tear_down set_up test_method tear_down set_up test_method tear_down",
		spy.logString())
}

func TestNestedSuitesCountLeaves(t *testing.T) {
	ft := wasRunType(&wasRun{})
	leaf := func() Runnable { return NewTestCase(ft, "test_method") }

	inner1 := NewSuite(leaf(), leaf())
	inner2 := NewSuite(leaf(), leaf(), leaf())
	deepest := NewSuite(leaf())
	inner3 := NewSuite(NewSuite(deepest))
	outer := NewSuite(inner1, inner2, inner3, leaf())

	result := NewResult(nil, nil)
	outer.Run(result)

	assert.Equal(t, 2+3+1+1, result.RunCount())
	assert.Equal(t, 7, outer.CountTestCases())
	assert.Equal(t, "7 run, 0 failed, 0 error", result.Summary())
}

func TestSuiteAllowsDuplicates(t *testing.T) {
	tc := NewTestCase(wasRunType(&wasRun{}), "test_failure")
	inner := NewSuite(tc)
	suite := NewSuite(tc, tc, inner, inner)

	result := NewResult(nil, nil)
	suite.Run(result)
	assert.Equal(t, "4 run, 4 failed, 0 error", result.Summary())
	assert.Len(t, suite.Tests(), 4)
}

func TestEmptySuite(t *testing.T) {
	result := NewResult(nil, nil)
	NewSuite().Run(result)
	assert.Equal(t, "0 run, 0 failed, 0 error", result.Summary())
	assert.Equal(t, 0, NewSuite().CountTestCases())
}

func TestSharedResultAccumulatesAcrossRuns(t *testing.T) {
	ft := wasRunType(&wasRun{})
	result := NewResult(nil, nil)
	NewTestCase(ft, "test_method").Run(result)
	NewSuite(NewTestCase(ft, "test_failure")).Run(result)
	assert.Equal(t, "2 run, 1 failed, 0 error", result.Summary())
}
