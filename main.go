package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vitoraugreis/xunit/framework"
	"github.com/vitoraugreis/xunit/samples"
)

func main() {
	fmt.Println("Running MyTest methods one at a time")
	myTestType := samples.NewMyTestType(os.Stdout)
	for _, name := range []string{"test_a", "test_b", "test_c"} {
		framework.NewTestCase(myTestType, name).Run(framework.NewResult(nil, nil))
	}
	fmt.Println()

	var loader framework.Loader
	suite := framework.NewSuite(
		loader.MakeSuite(samples.CalculatorTestType),
		loader.MakeSuite(samples.PowerCalculatorTestType),
	)

	fmt.Println("Running test suite")
	runner := framework.NewRunner(framework.RunnerConfig{
		TestLogger: &framework.ConsoleTestLogger{
			DebugOutputOnFailure: true,
		},
		ShowResultsTable: true,
		DebugLogger:      log.New(os.Stderr, "", log.LstdFlags),
	})
	result := runner.Run(suite)

	if !result.OK() {
		fmt.Println()
		framework.PrintFailures(os.Stdout, result)
		os.Exit(1)
	}
}
