package framework

import "strings"

// TestMethodPrefix is the prefix that marks a fixture method as a test.
const TestMethodPrefix = "test"

// Loader builds suites from the test methods of a fixture type. The zero value is ready to use.
type Loader struct{}

// GetTestCaseNames returns the names of the fixture type's methods that start with
// TestMethodPrefix, in lexicographic order. The result is empty, not nil, if there are none.
func (Loader) GetTestCaseNames(fixtureType *FixtureType) []string {
	names := []string{}
	for _, name := range fixtureType.MethodNames() {
		if strings.HasPrefix(name, TestMethodPrefix) {
			names = append(names, name)
		}
	}
	return names
}

// MakeSuite returns a suite with one test case per test method of the fixture type, in the
// order given by GetTestCaseNames.
func (l Loader) MakeSuite(fixtureType *FixtureType) *Suite {
	suite := NewSuite()
	for _, name := range l.GetTestCaseNames(fixtureType) {
		suite.AddTest(NewTestCase(fixtureType, name))
	}
	return suite
}
