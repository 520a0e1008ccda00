package framework

import (
	"fmt"
	"io"
	"os"
)

// RunnerConfig configures a Runner. The zero value writes the summary to standard output and
// runs every test.
type RunnerConfig struct {
	Output           io.Writer
	TestLogger       TestLogger
	Filter           Filter
	ShowResultsTable bool
	DebugLogger      Logger
}

// Runner runs tests against a single Result that it owns for its whole lifetime. Results of
// successive calls to Run accumulate.
type Runner struct {
	result           *Result
	output           io.Writer
	showResultsTable bool
	debugLogger      Logger
}

func NewRunner(config RunnerConfig) *Runner {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}
	debugLogger := config.DebugLogger
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	return &Runner{
		result:           NewResult(config.Filter, config.TestLogger),
		output:           output,
		showResultsTable: config.ShowResultsTable,
		debugLogger:      debugLogger,
	}
}

// Run runs test, writes the summary of everything run so far, and returns the Runner's Result.
func (r *Runner) Run(test Runnable) *Result {
	before := r.result.RunCount()
	test.Run(r.result)
	r.debugLogger.Printf("Ran %d test(s), %d in total", r.result.RunCount()-before, r.result.RunCount())

	if r.showResultsTable {
		PrintResults(r.output, r.result)
	}
	fmt.Fprintln(r.output, r.result.FramedSummary())
	return r.result
}

func (r *Runner) Result() *Result {
	return r.result
}
