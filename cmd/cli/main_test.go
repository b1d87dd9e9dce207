package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/rpngrid/internal/app"
	"github.com/specialistvlad/rpngrid/internal/cli"
	"github.com/specialistvlad/rpngrid/internal/rpn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorkbook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_Scenarios(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		workbook string
		want     string
	}{
		{name: "literals", workbook: "2 1\n3\n4\n", want: "3.00000\n4.00000"},
		{name: "reference", workbook: "1 2\n5\nA1 2 +\n", want: "5.00000\n7.00000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			path := writeWorkbook(t, tc.workbook)
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

			// --- Act ---
			err := run(strings.NewReader(""), out, errOut, []string{path})

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader("1 2\n5\nA1 2 +\n"), out, &bytes.Buffer{}, nil)

	require.NoError(t, err)
	assert.Equal(t, "5.00000\n7.00000", out.String())
}

func TestRun_CircularDependency(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeWorkbook(t, "2 1\nA2\nA1\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{path})

	// --- Assert ---
	require.Error(t, err, "a circular workbook must end with a non-zero exit")
	assert.ErrorIs(t, err, app.ErrCircular)

	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr), "circular results exit with the generic code")
	assert.Equal(t, "Not Evaluated (Circular Dependency)\nNot Evaluated (Circular Dependency)", out.String())
}

func TestRun_DivisionByZero(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "1 1\n5 0 /\n")
	out := &bytes.Buffer{}

	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	assert.ErrorIs(t, err, rpn.ErrDivisionByZero)
	assert.Empty(t, out.String(), "no results are written after a fatal evaluation error")
}

func TestRun_Pretty(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "2 1\n3\n4\n")
	out := &bytes.Buffer{}

	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-p", path})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Inputs:")
	assert.Contains(t, out.String(), "Results:")
	assert.Contains(t, out.String(), "4.00000")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.txt")
	err := run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{missing})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
