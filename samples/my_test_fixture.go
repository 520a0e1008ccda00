package samples

import (
	"fmt"
	"io"
	"os"

	"github.com/vitoraugreis/xunit/framework"
)

// MyTest prints a line from each of its hooks and test methods.
type MyTest struct {
	Output io.Writer
}

func (m *MyTest) SetUp(t *framework.T)    { m.print("set_up") }
func (m *MyTest) TearDown(t *framework.T) { m.print("tear_down") }

func (m *MyTest) TestA(t *framework.T) { m.print("test_a") }
func (m *MyTest) TestB(t *framework.T) { m.print("test_b") }
func (m *MyTest) TestC(t *framework.T) { m.print("test_c") }

func (m *MyTest) print(s string) {
	out := m.Output
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, s)
}

// NewMyTestType declares the MyTest fixture type. Every instance writes to output.
func NewMyTestType(output io.Writer) *framework.FixtureType {
	return framework.Define("MyTest", func() *MyTest { return &MyTest{Output: output} }).
		Method("test_a", (*MyTest).TestA).
		Method("test_b", (*MyTest).TestB).
		Method("test_c", (*MyTest).TestC).
		Type()
}
