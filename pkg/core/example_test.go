package core_test

import (
	"fmt"

	"github.com/go-drift/memodemo/pkg/core"
)

// This example shows how a memo boundary compares props. Pointer fields
// are equal only when they point at the same allocation.
func ExampleShallowEqual() {
	type props struct {
		Title   *string
		OnClick *core.Callback
	}

	title := "card"
	onClick := core.NewCallback(func() {})

	same := props{Title: &title, OnClick: onClick}
	fmt.Println(core.ShallowEqual(same, props{Title: &title, OnClick: onClick}))

	copied := title
	fmt.Println(core.ShallowEqual(same, props{Title: &copied, OnClick: onClick}))

	// Output:
	// true
	// false
}

// This example shows a Callback, which gives a handler an identity that a
// memo boundary can compare.
func ExampleNewCallback() {
	greet := core.NewCallback(func() { fmt.Println("clicked") })
	greet.Call()

	var missing *core.Callback
	missing.Call() // no-op

	// Output:
	// clicked
}

// This example shows an inline stateful widget with a counter.
func ExampleStateful() {
	var increment func()
	counter := core.Stateful(
		func() int { return 0 },
		func(count int, ctx core.BuildContext, setState func(func(int) int)) core.Widget {
			fmt.Printf("build %d\n", count)
			increment = func() { setState(func(c int) int { return c + 1 }) }
			return nil
		},
	)

	owner := core.NewBuildOwner()
	core.MountRoot(counter, owner)
	increment()
	owner.FlushBuild()

	// Output:
	// build 0
	// build 1
}
