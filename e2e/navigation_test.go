//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartsOnFirstSlide(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Year in Review  1 / 8"), "Should show progress")
	require.True(t, tf.SeePlain("scroll to continue"), "Should show scroll hint")
}

func TestArrowDownAdvances(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("2 / 8"), "Should move to the second slide")
	require.True(t, tf.SeePlain("Four Quarters"), "Should show the second slide")
}

func TestCooldownDropsRepeatedKeys(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	// three presses inside one cool-down move a single slide
	require.NoError(t, tf.SendKeys(KeyDown+KeyDown+KeyDown))
	require.True(t, tf.SeePlain("2 / 8"))
	require.False(t, tf.OutputContainsPlain("3 / 8", 500*time.Millisecond), "Repeated keys should be dropped")

	time.Sleep(1100 * time.Millisecond)
	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("3 / 8"), "Cool-down should have released")
}

func TestEndAndHome(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendKeys(KeyEnd))
	require.True(t, tf.SeePlain("8 / 8"), "End should jump to the last slide")

	time.Sleep(1100 * time.Millisecond)
	require.NoError(t, tf.SendKeys(KeyHome))
	require.True(t, tf.WaitFor(func(string) bool {
		s := tf.SnapshotPlain()
		return len(s) > 0 && lastIndex(s, "1 / 8") > lastIndex(s, "8 / 8")
	}, 3*time.Second), "Home should return to the first slide")
}

func TestNumberKeyJumps(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendKeys("5"))
	require.True(t, tf.SeePlain("5 / 8"), "5 should select the fifth slide")
}

func TestCustomDeck(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	deck := tf.WriteDeck("talk.toml", `
title = "Lightning Talk"

[[slides]]
title = "Hello"

[[slides]]
title = "Goodbye"
`)

	require.NoError(t, tf.StartApp("-d", deck))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Lightning Talk  1 / 2"))
}

func lastIndex(s, sub string) int {
	for i := len(s) - len(sub); i >= 0; i-- {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
