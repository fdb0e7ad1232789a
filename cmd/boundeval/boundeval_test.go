package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const problemYAML = `
variables:
  x: [1, 4]
expressions:
  - name: out
    expr: {op: mul, args: [{op: add, args: [{var: x}, {lit: 2}]}, {lit: -1}]}
  - name: act
    expr: {op: relu, args: [{op: sub, args: [{var: x}, {lit: 2}]}]}
`

func testFs(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p.yaml", []byte(problemYAML), 0644))
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml",
		[]byte("variables: {x: [0, 1]}\nexpressions: [{name: bad, expr: {var: y}}]\n"), 0644))
	return fs
}

func runCLI(t *testing.T, fs afero.Fs, args ...string) (int, string, string) {
	t.Helper()
	defer zap.ReplaceGlobals(zap.NewNop())
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := run(context.Background(), args, fs, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	code, out, _ := runCLI(t, testFs(t), "-p", "/p.yaml", "--parallel", "2")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "out: Result: [-6, -3]\nact: Result: [0, 2]\n", out)
}

func TestRunPrintTree(t *testing.T) {
	code, out, _ := runCLI(t, testFs(t), "--problem", "/p.yaml", "--print-tree")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "out:\n  Binary Operation: *\n    Binary Operation: +\n      Variable: x\n")
	assert.Contains(t, out, "act:\n  Operation: ReLU\n")
}

func TestRunExportAndTrees(t *testing.T) {
	fs := testFs(t)
	code, _, _ := runCLI(t, fs, "-p", "/p.yaml", "--export", "/trees")
	require.Equal(t, exitOK, code)
	ok, err := afero.Exists(fs, "/trees/out.cbor")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, afero.WriteFile(fs, "/vars.yaml", []byte("variables: {x: [0, 1]}\n"), 0644))
	code, out, _ := runCLI(t, fs, "-p", "/vars.yaml", "-t", "/trees/out.cbor", "-t", "/trees/act.cbor")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "out: Result: [-3, -2]\nact: Result: [0, 0]\n", out)

	code, _, _ = runCLI(t, fs, "-p", "/p.yaml", "-t", "/trees/out.cbor")
	assert.Equal(t, exitInput, code)
}

func TestRunFailures(t *testing.T) {
	fs := testFs(t)
	code, _, _ := runCLI(t, fs)
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, fs, "--unknown-flag")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, fs, "-p", "/p.yaml", "--log-level", "loud")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, fs, "-p", "/missing.yaml")
	assert.Equal(t, exitInput, code)

	code, _, errOut := runCLI(t, fs, "-p", "/bad.yaml")
	assert.Equal(t, exitEvaluation, code)
	assert.Contains(t, errOut, "UndefinedVariable")
	assert.Contains(t, errOut, "variable not found: y")
}

func TestRunVersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, afero.NewMemMapFs(), "--version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "boundeval v0.0.0\n", out)

	code, _, errOut := runCLI(t, afero.NewMemMapFs(), "-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "usage: boundeval [flags]")
	assert.Contains(t, errOut, "--problem")
}
