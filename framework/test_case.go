package framework

// Runnable is anything that can be run against a Result: a single TestCase or a Suite.
type Runnable interface {
	Run(result *Result)
}

// TestCase runs one method of a fixture type.
type TestCase struct {
	fixtureType *FixtureType
	methodName  string
}

func NewTestCase(fixtureType *FixtureType, methodName string) *TestCase {
	return &TestCase{fixtureType: fixtureType, methodName: methodName}
}

func (c *TestCase) MethodName() string {
	return c.methodName
}

func (c *TestCase) ID() TestID {
	if c.fixtureType.Name() == "" {
		return TestID{Path: []string{c.methodName}}
	}
	return TestID{Path: []string{c.fixtureType.Name(), c.methodName}}
}

// Run executes the test against a fresh fixture: SetUp, the method, then TearDown. TearDown
// runs however the earlier steps ended. The method is skipped if SetUp fails or skips.
//
// The test is counted as run before SetUp is called. It is then recorded as failed if an
// assertion was violated, or as errored if anything else went wrong, including a method name
// unknown to the fixture type. A failure or error in TearDown only counts if the test had not
// already failed or errored.
func (c *TestCase) Run(result *Result) {
	id := c.ID()
	testLogger := result.observer()

	testLogger.TestStarted(id)
	if !result.includes(id) {
		testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	result.TestStarted()

	t := newT(id, testLogger)
	var fixture Fixture
	outcome := t.invoke(func() {
		fixture = c.fixtureType.New()
		fixture.SetUp(t)
	})
	if outcome.Kind == OutcomeSuccess {
		outcome = t.invoke(func() {
			method, ok := c.fixtureType.Method(c.methodName)
			if !ok {
				panic(&UnknownMethodError{Fixture: c.fixtureType.Name(), Method: c.methodName})
			}
			method(fixture, t)
		})
	}
	if fixture != nil {
		outcome = outcome.then(t.invoke(func() { fixture.TearDown(t) }))
	}

	result.record(TestResult{
		TestID:      id,
		Outcome:     outcome,
		Messages:    append([]string(nil), t.messages...),
		DebugOutput: t.debugLogger.Output(),
	})
	if outcome.Kind == OutcomeSkipped {
		testLogger.TestSkipped(id, outcome.Message)
	} else {
		testLogger.TestFinished(id, outcome.Failed(), t.debugLogger.Output())
	}
}
