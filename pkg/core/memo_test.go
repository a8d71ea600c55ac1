package core

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cardProps struct {
	title string
}

type memoCard struct {
	MemoBase
	data    *cardProps
	onClick *Callback
	builds  *int
}

func (c memoCard) Build(ctx BuildContext) Widget {
	*c.builds++
	return nil
}

// titleOnlyCard compares by title content instead of identity.
type titleOnlyCard struct {
	MemoBase
	data   *cardProps
	builds *int
}

func (c titleOnlyCard) Build(ctx BuildContext) Widget {
	*c.builds++
	return nil
}

func (c titleOnlyCard) PropsEqual(old Widget) bool {
	prev, ok := old.(titleOnlyCard)
	return ok && prev.data.title == c.data.title
}

func mountParent(t *testing.T, build func() Widget) (*testState, *BuildOwner) {
	t.Helper()
	owner := NewBuildOwner()
	state := &testState{
		buildFn: func(*testState, BuildContext) Widget { return build() },
	}
	MountRoot(testStatefulWidget{state: state}, owner)
	return state, owner
}

func rebuild(state *testState, owner *BuildOwner, times int) {
	for i := 0; i < times; i++ {
		state.SetState(nil)
		owner.FlushBuild()
	}
}

func TestMemoElement_FreshPropsRebuildEveryTime(t *testing.T) {
	builds := 0
	state, owner := mountParent(t, func() Widget {
		return memoCard{
			data:    &cardProps{title: "t"},
			onClick: NewCallback(func() {}),
			builds:  &builds,
		}
	})

	rebuild(state, owner, 3)

	assert.Equal(t, 4, builds)
	stats := owner.Stats()
	assert.Equal(t, 4, stats.Builds["core.memoCard"])
	assert.Zero(t, stats.Skips["core.memoCard"])
}

func TestMemoElement_StablePropsSkipRebuild(t *testing.T) {
	builds := 0
	data := &cardProps{title: "t"}
	onClick := NewCallback(func() {})
	state, owner := mountParent(t, func() Widget {
		return memoCard{data: data, onClick: onClick, builds: &builds}
	})

	rebuild(state, owner, 3)

	assert.Equal(t, 1, builds)
	assert.Equal(t, 3, owner.Stats().Skips["core.memoCard"])
}

func TestMemoElement_OneChangedPropRebuilds(t *testing.T) {
	builds := 0
	data := &cardProps{title: "t"}
	onClick := NewCallback(func() {})
	state, owner := mountParent(t, func() Widget {
		return memoCard{data: data, onClick: onClick, builds: &builds}
	})

	onClick = NewCallback(func() {})
	rebuild(state, owner, 1)

	assert.Equal(t, 2, builds)
}

func TestMemoElement_PropsComparer(t *testing.T) {
	builds := 0
	title := "a"
	state, owner := mountParent(t, func() Widget {
		return titleOnlyCard{data: &cardProps{title: title}, builds: &builds}
	})

	rebuild(state, owner, 2)
	assert.Equal(t, 1, builds, "fresh pointers with equal titles are reused")

	title = "b"
	rebuild(state, owner, 1)
	assert.Equal(t, 2, builds)
}

func TestMemoElement_InheritedChangeForcesRebuild(t *testing.T) {
	builds := 0
	data := &cardProps{title: "t"}
	value := "one"
	dependent := dependentMemo{data: data, builds: &builds}
	state, owner := mountParent(t, func() Widget {
		return valueScope{value: value, child: dependent}
	})
	require.Equal(t, 1, builds)

	rebuild(state, owner, 1)
	assert.Equal(t, 1, builds, "unchanged scope keeps the memo boundary closed")

	value = "two"
	rebuild(state, owner, 1)
	assert.Equal(t, 2, builds)
}

func TestMemoElement_DirtyElementRecordsNoSkip(t *testing.T) {
	builds := 0
	data := &cardProps{title: "t"}
	value := "one"
	state, owner := mountParent(t, func() Widget {
		return valueScope{value: value, child: dependentMemo{data: data, builds: &builds}}
	})
	owner.ResetStats()

	value = "two"
	rebuild(state, owner, 1)

	stats := owner.Stats()
	assert.Equal(t, 1, stats.Builds["core.dependentMemo"])
	assert.Zero(t, stats.Skips["core.dependentMemo"], "a build in the same frame is not a skip")
}

type valueScope struct {
	InheritedBase
	value string
	child Widget
}

func (s valueScope) ChildWidget() Widget { return s.child }

func (s valueScope) UpdateShouldNotify(old InheritedWidget) bool {
	return s.value != old.(valueScope).value
}

type dependentMemo struct {
	MemoBase
	data   *cardProps
	builds *int
}

func (d dependentMemo) Build(ctx BuildContext) Widget {
	ctx.DependOnInherited(reflect.TypeOf(valueScope{}), nil)
	*d.builds++
	return nil
}

func TestShallowEqual(t *testing.T) {
	p := &cardProps{title: "x"}
	cb := NewCallback(nil)
	fn := func() {}
	slice := []int{1, 2}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", nil, 1, false},
		{"ints", 1, 1, true},
		{"different types", 1, int64(1), false},
		{"same pointer fields", memoCard{data: p, onClick: cb}, memoCard{data: p, onClick: cb}, true},
		{"equal content different pointer", memoCard{data: p}, memoCard{data: &cardProps{title: "x"}}, false},
		{"different callbacks", memoCard{onClick: cb}, memoCard{onClick: NewCallback(nil)}, false},
		{"func fields never equal", struct{ f func() }{fn}, struct{ f func() }{fn}, false},
		{"nil func fields equal", struct{ f func() }{}, struct{ f func() }{}, true},
		{"same slice", struct{ s []int }{slice}, struct{ s []int }{slice}, true},
		{"resliced", struct{ s []int }{slice}, struct{ s []int }{slice[:1]}, false},
		{"pointer to struct compares fields", &cardProps{title: "x"}, &cardProps{title: "x"}, true},
		{"value struct fields", struct{ p cardProps }{cardProps{"a"}}, struct{ p cardProps }{cardProps{"a"}}, true},
		{"interface field", struct{ w any }{"a"}, struct{ w any }{"a"}, true},
		{"interface field differs", struct{ w any }{"a"}, struct{ w any }{1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShallowEqual(tt.a, tt.b))
		})
	}
}

func TestIdentical(t *testing.T) {
	p := &cardProps{}
	m := map[string]int{}

	assert.True(t, Identical(p, p))
	assert.False(t, Identical(p, &cardProps{}))
	assert.True(t, Identical(m, m))
	assert.False(t, Identical(m, map[string]int{}))
	assert.True(t, Identical("a", "a"))
	assert.True(t, Identical(cardProps{"a"}, cardProps{"a"}))
	assert.False(t, Identical(func() {}, func() {}))
}

func TestCallback_Call(t *testing.T) {
	calls := 0
	cb := NewCallback(func() { calls++ })
	cb.Call()
	cb.Call()
	assert.Equal(t, 2, calls)

	var nilCallback *Callback
	assert.NotPanics(t, nilCallback.Call)
	assert.NotPanics(t, NewCallback(nil).Call)
}
