package framework

// Suite is an ordered collection of test cases and other suites. Tests run in the order they
// were added; a test may be added more than once. Suites must not contain themselves.
type Suite struct {
	tests []Runnable
}

func NewSuite(tests ...Runnable) *Suite {
	return &Suite{tests: append([]Runnable(nil), tests...)}
}

func (s *Suite) AddTest(test Runnable) {
	s.tests = append(s.tests, test)
}

func (s *Suite) Tests() []Runnable {
	return append([]Runnable(nil), s.tests...)
}

// CountTestCases returns the number of test cases in the suite, including those in nested
// suites.
func (s *Suite) CountTestCases() int {
	n := 0
	for _, test := range s.tests {
		if nested, ok := test.(interface{ CountTestCases() int }); ok {
			n += nested.CountTestCases()
		} else {
			n++
		}
	}
	return n
}

func (s *Suite) Run(result *Result) {
	for _, test := range s.tests {
		test.Run(result)
	}
}
