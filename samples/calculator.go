// Package samples contains example fixtures that show how tests are declared, and that exercise
// every kind of outcome.
package samples

import (
	"errors"
	"math"

	"github.com/vitoraugreis/xunit/framework"
)

var errDivideByZero = errors.New("division by zero")

type Calculator struct {
	memory []float64
}

func (c *Calculator) Add(a, b float64) float64 {
	return c.remember(a + b)
}

func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return c.remember(a / b), nil
}

func (c *Calculator) Memory() []float64 {
	return append([]float64(nil), c.memory...)
}

func (c *Calculator) remember(v float64) float64 {
	c.memory = append(c.memory, v)
	return v
}

// CalculatorTest has one passing, one failing and one erroring test.
type CalculatorTest struct {
	framework.Hooks
	calc *Calculator
}

func (c *CalculatorTest) SetUp(t *framework.T) {
	c.calc = &Calculator{}
}

func (c *CalculatorTest) TestSuccess(t *framework.T) {
	t.AssertEqual(4.0, c.calc.Add(2, 2))
	t.AssertIn(4.0, c.calc.Memory())
}

func (c *CalculatorTest) TestFailure(t *framework.T) {
	t.AssertEqual(5.0, c.calc.Add(2, 2), "2 + 2 is not 5")
}

func (c *CalculatorTest) TestError(t *framework.T) {
	_, err := c.calc.Divide(1, 0)
	t.Must(err)
}

// CalculatorTestType declares the calculator fixture. helper is not a test method, so the
// loader ignores it.
var CalculatorTestType = calculatorTests.Type()

var calculatorTests = framework.Define("CalculatorTest", func() *CalculatorTest { return &CalculatorTest{} }).
	Method("test_success", (*CalculatorTest).TestSuccess).
	Method("test_failure", (*CalculatorTest).TestFailure).
	Method("test_error", (*CalculatorTest).TestError).
	Method("helper", func(*CalculatorTest, *framework.T) {})

// PowerCalculatorTest inherits the calculator tests and adds one of its own. It replaces the
// inherited failing test with a passing one.
type PowerCalculatorTest struct {
	CalculatorTest
}

func (p *PowerCalculatorTest) TestPower(t *framework.T) {
	t.AssertEqual(8.0, math.Pow(2, 3))
}

func (p *PowerCalculatorTest) TestFailure(t *framework.T) {
	t.AssertFalse(p.calc.Add(2, 2) == 5)
}

var PowerCalculatorTestType = framework.Inherit(
	framework.Define("PowerCalculatorTest", func() *PowerCalculatorTest { return &PowerCalculatorTest{} }).
		Method("test_power", (*PowerCalculatorTest).TestPower).
		Method("test_failure", (*PowerCalculatorTest).TestFailure),
	calculatorTests,
	func(p *PowerCalculatorTest) *CalculatorTest { return &p.CalculatorTest },
).Type()
