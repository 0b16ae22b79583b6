//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Runs serially: the typed query races the first frames under load
func TestSearchOpensResults(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	tf.Reset()
	require.NoError(t, tf.Search("taco"))
	require.True(t, tf.SeePlain("Searching for: taco"), "Should toast the query")
	require.True(t, tf.SeePlain("Taco Libre"), "Should list the matching truck")
	require.True(t, tf.SeePlain("/find-trucks"), "Should show the results path")

	tf.Reset()
	tf.SendKeys(KeyBackspace)
	require.True(t, tf.SeePlain("Track. Taste."), "Back returns home")
}

func TestPageChordsAndGoto(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	tf.Reset()
	tf.Type("ge")
	require.True(t, tf.SeePlain("Friday Night Food Fest"), "g e opens events")

	tf.Reset()
	tf.SendKeys(KeyGoto)
	tf.Type("does-not-exist")
	tf.Enter()
	require.True(t, tf.SeePlain("Page not found"), "unknown paths show the not-found page")
}

func TestStartPathFromConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteConfig("start_path = \"/trucks/seoul-wheels\"\n"))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Seoul Wheels"), "config start_path picks the first view")
}

func TestStartPathFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--path", "/aboutus"))
	require.True(t, tf.SeePlain("/aboutus"))
}
