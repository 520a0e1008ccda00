// Package framework is a small xUnit-style test framework.
//
// The general model is:
//
// 1. A fixture type is declared with Define, which registers the fixture's factory and its
// named methods. Fixtures embed Hooks to get no-op SetUp and TearDown, and override them as
// needed.
//
// 2. A TestCase binds one fixture type to one method name. Running it builds a fresh fixture,
// calls SetUp, the method and TearDown, and records the outcome in a Result.
//
// 3. A Suite is an ordered list of Runnables (test cases or other suites), and is itself a
// Runnable. A Loader builds a Suite from every method of a fixture type whose name starts
// with "test".
//
// 4. A Runner owns a Result, runs any Runnable against it, and writes a summary such as
// "3 run, 1 failed, 1 error".
//
// Inside a test method, the *T parameter provides assertions. A violated assertion is
// recorded as a failure; any other panic is recorded as an error.
package framework
