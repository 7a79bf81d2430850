package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestWeeksCommand(t *testing.T) {
	out, err := execute(t, "weeks", "--year", "2024")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header, separator and one line per week
	require.Len(t, lines, 2+52)
	assert.Contains(t, lines[2], "Sat 30 Dec 2023")
	assert.Contains(t, lines[2], "Fri 05 Jan 2024")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "52"))
}

func TestWeekOfCommand(t *testing.T) {
	out, err := execute(t, "week-of", "--date", "2024-03-06")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-06 is in custom year 2024, Week 10: 02 Mar - 08 Mar, 2024\n", out)
}

func TestWeekOfCommand_InvalidDate(t *testing.T) {
	_, err := execute(t, "week-of", "--date", "06/03/2024")

	assert.ErrorContains(t, err, "expected YYYY-MM-DD")
}
