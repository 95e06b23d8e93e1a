package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagTracker_WasSet(t *testing.T) {
	ft := NewFlagTracker()
	require.False(t, ft.WasSet("format"))
	ft.Set("format")
	require.True(t, ft.WasSet("format"))
	require.Equal(t, 1, ft.Count())
}

func TestFlagTracker_MergeString(t *testing.T) {
	ft := NewFlagTracker()
	require.Equal(t, "base", ft.MergeString("base", "override", "format"))
	ft.Set("format")
	require.Equal(t, "override", ft.MergeString("base", "override", "format"))
}

func TestFlagTracker_Clear(t *testing.T) {
	ft := NewFlagTrackerWithFlags(map[string]bool{"a": true})
	require.Equal(t, 1, ft.Count())
	ft.Clear()
	require.Equal(t, 0, ft.Count())
}

func TestMergeHelpers_RespectExplicitFlags(t *testing.T) {
	flags := map[string]bool{"min_support": true}
	require.Equal(t, 5, MergeInt(2, 5, "min_support", flags))
	require.Equal(t, 2, MergeInt(2, 5, "unset_flag", flags))
}
