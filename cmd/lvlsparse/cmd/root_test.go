// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsparse/fixture"
	"github.com/katalvlaran/lvlsparse/sparse/linalg"
)

const sampleFixtures = "../../../fixture/testdata/sample.yaml"

// run executes a fresh command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

// TestDemo replays every scenario and spot-checks known results.
func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)

	require.Contains(t, out, "== zero vector ==")
	require.Contains(t, out, "0 0 0 0 0\n")
	require.Contains(t, out, "not equal")
	require.Contains(t, out, "A + B\n0 5 3 1 0\n0 0 0 0 0\n0 0 0 0 0\n")
	require.Contains(t, out, "A × B\n7 10\n15 22\n")
	require.Contains(t, out, "A × B\n5 4 3\n8 9 4\n6 5 2\n11 9 5\n")
	require.Contains(t, out, "A × [1 2 4]ᵀ\n5\n8\n6\n11\n")
	require.Contains(t, out, "minor(1, 1)\n1 1\n0 1\n")
	require.Contains(t, out, "Determinant = 0\n")
	require.Contains(t, out, "Determinant = -240\n")
	require.Contains(t, out, "Determinant = 503\n")
	require.Contains(t, out, "row 0 + 2\n6 7 4 7 3\n")
	require.Contains(t, out, "col 0 + 2\n6 5 2 5 1\n3 4 3 1 0\n")
	require.Contains(t, out, "A⁻¹\n4 -1\n-7 2\n")
}

// TestDemoPretty renders boxes and headings.
func TestDemoPretty(t *testing.T) {
	out, _, err := run(t, "demo", "--pretty")
	require.NoError(t, err)
	require.Contains(t, out, "╭")
	require.Contains(t, out, "Determinant = 503")
}

// TestDet covers both algorithms on fixtures.
func TestDet(t *testing.T) {
	out, _, err := run(t, "det", "five", "--fixtures", sampleFixtures)
	require.NoError(t, err)
	require.Contains(t, out, "Determinant = 503\n")

	out, _, err = run(t, "det", "pair", "--lu", "-f", sampleFixtures)
	require.NoError(t, err)
	require.Contains(t, out, "Determinant = ")

	_, _, err = run(t, "det", "nope", "-f", sampleFixtures)
	require.ErrorIs(t, err, fixture.ErrFixtureNotFound)

	_, _, err = run(t, "det", "pair")
	require.ErrorIs(t, err, errNoFixtures)
}

// TestInv covers the plain and pivoted inverse.
func TestInv(t *testing.T) {
	out, _, err := run(t, "inv", "pair", "--check", "-f", sampleFixtures)
	require.NoError(t, err)
	require.Contains(t, out, "pair⁻¹\n4 -1\n-7 2\n")
	require.Contains(t, out, "pair × pair⁻¹\n1 0\n0 1\n")

	_, _, err = run(t, "inv", "singular", "-f", sampleFixtures)
	require.ErrorIs(t, err, linalg.ErrSingular)

	_, _, err = run(t, "inv", "singular", "--pivot", "-f", sampleFixtures)
	require.ErrorIs(t, err, linalg.ErrSingular)
}

// TestMul covers products and powers.
func TestMul(t *testing.T) {
	out, _, err := run(t, "mul", "pair", "pair", "-f", sampleFixtures)
	require.NoError(t, err)
	require.Contains(t, out, "pair × pair\n11 6\n42 23\n")

	out, _, err = run(t, "mul", "pair", "-n", "2", "-f", sampleFixtures)
	require.NoError(t, err)
	require.Contains(t, out, "pair^2\n11 6\n42 23\n")

	_, _, err = run(t, "mul", "pair", "-n", "0", "-f", sampleFixtures)
	require.ErrorIs(t, err, linalg.ErrInvalidExponent)
}

// TestBench runs a tiny benchmark and validates flags.
func TestBench(t *testing.T) {
	out, _, err := run(t, "bench", "--size", "20", "--density", "0.2", "--repeat", "1")
	require.NoError(t, err)
	require.Contains(t, out, "size=20")
	require.Contains(t, out, "sparse")
	require.Contains(t, out, "gonum")

	_, _, err = run(t, "bench", "--density", "0")
	require.Error(t, err)
}

// TestVerboseLogs checks that debug logs go to stderr.
func TestVerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "det", "pair", "-v", "-f", sampleFixtures)
	require.NoError(t, err)
	require.Contains(t, errOut, "fixtures loaded")

	_, errOut, err = run(t, "det", "pair", "-f", sampleFixtures)
	require.NoError(t, err)
	require.NotContains(t, errOut, "fixtures loaded")
}

// TestEpsilonFlag rejects negative tolerances before any work.
func TestEpsilonFlag(t *testing.T) {
	_, _, err := run(t, "demo", "--epsilon", "-1")
	require.Error(t, err)
}

// TestFixtureEpsilon lets a document's epsilon decide a strict inverse unless
// --epsilon is given explicitly.
func TestFixtureEpsilon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	doc := `matrices:
  - name: tiny
    epsilon: 0.01
    rows: [[0.001, 0], [0, 1]]
  - name: plain
    rows: [[0.001, 0], [0, 1]]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, _, err := run(t, "inv", "tiny", "--strict", "-f", path)
	require.ErrorIs(t, err, linalg.ErrSingular)

	out, _, err := run(t, "inv", "plain", "--strict", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "plain⁻¹\n1000 0\n0 1\n")

	out, _, err = run(t, "inv", "tiny", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "tiny⁻¹\n1000 0\n0 1\n")

	out, _, err = run(t, "inv", "tiny", "--strict", "--epsilon", "1e-5", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "tiny⁻¹\n1000 0\n0 1\n")

	_, _, err = run(t, "inv", "plain", "--strict", "--epsilon", "0.01", "-f", path)
	require.ErrorIs(t, err, linalg.ErrSingular)
}

// TestVersion prints build metadata.
func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "lvlsparse v"+Version)
}
