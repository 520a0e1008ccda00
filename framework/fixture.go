package framework

import "sort"

// Fixture is the environment a test method runs against. A fresh instance is created for
// every test case execution.
type Fixture interface {
	SetUp(t *T)
	TearDown(t *T)
}

// Hooks provides no-op SetUp and TearDown. Embed it in fixtures that don't need one or both.
type Hooks struct{}

func (Hooks) SetUp(*T)    {}
func (Hooks) TearDown(*T) {}

// FixtureType describes a kind of fixture: its name, how to create an instance, and the
// methods that can be invoked on an instance by name.
type FixtureType struct {
	name       string
	newFixture func() Fixture
	methods    map[string]func(Fixture, *T)
}

func (ft *FixtureType) Name() string {
	return ft.name
}

// MethodNames returns the names of all registered methods, including inherited ones, in
// lexicographic order.
func (ft *FixtureType) MethodNames() []string {
	names := make([]string, 0, len(ft.methods))
	for name := range ft.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Method looks up a registered method by name.
func (ft *FixtureType) Method(name string) (func(Fixture, *T), bool) {
	m, ok := ft.methods[name]
	return m, ok
}

// New creates a fresh fixture instance.
func (ft *FixtureType) New() Fixture {
	return ft.newFixture()
}

// Registry declares the methods of a fixture type F.
//
//	type MyTest struct{ framework.Hooks }
//
//	func (m *MyTest) TestA(t *framework.T) { ... }
//
//	var MyTestType = framework.Define("MyTest", func() *MyTest { return &MyTest{} }).
//		Method("test_a", (*MyTest).TestA).
//		Type()
type Registry[F Fixture] struct {
	ft      *FixtureType
	methods map[string]func(F, *T)
}

// Define starts the declaration of a fixture type. newFixture is called once per test case
// execution.
func Define[F Fixture](name string, newFixture func() F) *Registry[F] {
	r := &Registry[F]{
		ft: &FixtureType{
			name:       name,
			newFixture: func() Fixture { return newFixture() },
			methods:    make(map[string]func(Fixture, *T)),
		},
		methods: make(map[string]func(F, *T)),
	}
	return r
}

// Method registers fn under name, replacing any method (including an inherited one) already
// registered with that name.
func (r *Registry[F]) Method(name string, fn func(F, *T)) *Registry[F] {
	r.methods[name] = fn
	r.ft.methods[name] = func(f Fixture, t *T) { fn(f.(F), t) }
	return r
}

// Type returns the fixture type being declared. Methods registered afterward are still
// visible through it.
func (r *Registry[F]) Type() *FixtureType {
	return r.ft
}

// Inherit copies every method of parent into child. base returns the parent fixture embedded
// in a child fixture; inherited methods run against it. Methods that child registers under
// the same name, before or after this call, take precedence.
func Inherit[F Fixture, P Fixture](child *Registry[F], parent *Registry[P], base func(F) P) *Registry[F] {
	for name, fn := range parent.methods {
		if _, exists := child.methods[name]; exists {
			continue
		}
		parentFn := fn
		inherited := func(f F, t *T) { parentFn(base(f), t) }
		child.methods[name] = inherited
		child.ft.methods[name] = func(f Fixture, t *T) { inherited(f.(F), t) }
	}
	return child
}
