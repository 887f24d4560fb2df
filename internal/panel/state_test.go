package panel_test

import (
	"testing"

	"github.com/leighmacdonald/bizcard/internal/panel"
	"github.com/stretchr/testify/require"
)

func TestNewIsCollapsed(t *testing.T) {
	state := panel.New()
	require.False(t, state.Expanded())
	require.Empty(t, state.Visible())
}

func TestToggle(t *testing.T) {
	cases := []struct {
		toggles  int
		expanded bool
	}{
		{toggles: 0, expanded: false},
		{toggles: 1, expanded: true},
		{toggles: 2, expanded: false},
		{toggles: 3, expanded: true},
		{toggles: 10, expanded: false},
		{toggles: 51, expanded: true},
	}

	for _, testCase := range cases {
		state := panel.New()
		for range testCase.toggles {
			state.Toggle()
		}
		require.Equal(t, testCase.expanded, state.Expanded(), "toggles: %d", testCase.toggles)
		require.Equal(t, testCase.toggles%2 == 1, state.Expanded())
	}
}

func TestToggleIsOwnInverse(t *testing.T) {
	for _, start := range []bool{false, true} {
		state := panel.New()
		if start {
			state.Toggle()
		}
		state.Toggle()
		state.Toggle()
		require.Equal(t, start, state.Expanded())
	}
}

func TestVisibleItems(t *testing.T) {
	state := panel.New()
	state.Toggle()
	require.Equal(t, []string{"Project 1", "Project 2", "Project 3", "Project 4"}, state.Visible())

	state.Toggle()
	require.Empty(t, state.Visible())
	require.Len(t, state.Items(), 4)
}

func TestCustomItems(t *testing.T) {
	items := []string{"tf-tui", "gbans"}
	state := panel.New(items...)
	items[0] = "changed"

	state.Toggle()
	require.Equal(t, []string{"tf-tui", "gbans"}, state.Visible())

	visible := state.Visible()
	visible[1] = "changed"
	require.Equal(t, []string{"tf-tui", "gbans"}, state.Items())
}

func TestSubscribe(t *testing.T) {
	state := panel.New()

	var (
		first  []bool
		second []bool
		order  []string
	)

	state.Subscribe(func(expanded bool) {
		first = append(first, expanded)
		order = append(order, "first")
	})
	unsubscribe := state.Subscribe(func(expanded bool) {
		second = append(second, expanded)
		order = append(order, "second")
	})

	state.Toggle()
	state.Toggle()
	require.Equal(t, []bool{true, false}, first)
	require.Equal(t, []bool{true, false}, second)
	require.Equal(t, []string{"first", "second", "first", "second"}, order)

	unsubscribe()
	unsubscribe()
	state.Toggle()
	require.Equal(t, []bool{true, false, true}, first)
	require.Len(t, second, 2)
}

func TestListenerReadsNewState(t *testing.T) {
	state := panel.New()
	var seen bool
	state.Subscribe(func(_ bool) {
		seen = state.Expanded()
	})

	state.Toggle()
	require.True(t, seen)
}

func TestStatesAreIndependent(t *testing.T) {
	left := panel.New()
	right := panel.New()

	calls := 0
	right.Subscribe(func(_ bool) { calls++ })

	left.Toggle()
	require.True(t, left.Expanded())
	require.False(t, right.Expanded())
	require.Zero(t, calls)
}

func TestDefaultItemsIsCopy(t *testing.T) {
	items := panel.DefaultItems()
	items[0] = "changed"

	require.Equal(t, []string{"Project 1", "Project 2", "Project 3", "Project 4"}, panel.DefaultItems())
	require.Equal(t, "Project 1", panel.New().Items()[0])
}
