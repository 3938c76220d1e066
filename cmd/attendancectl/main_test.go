package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDate(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 30, 0, 0, time.UTC)

	got, err := resolveDate("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), got)

	got, err = resolveDate("2024-12-31", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = resolveDate("31/12/2024", now)
	assert.Error(t, err)
}

func TestParseCalendar(t *testing.T) {
	cal, err := parseCalendar([]byte(`
holidays:
  - date: "2025-01-01"
    name: New Year's Day
  - date: "2025-12-25"
    name: Christmas Day
`))
	require.NoError(t, err)
	require.Len(t, cal.Holidays, 2)
	assert.Equal(t, "2025-01-01", cal.Holidays[0].Date)
	assert.Equal(t, "Christmas Day", cal.Holidays[1].Name)
}

func TestParseCalendar_Rejects(t *testing.T) {
	_, err := parseCalendar([]byte("holidays: []\n"))
	assert.Error(t, err)

	_, err = parseCalendar([]byte("holidays: [unclosed\n"))
	assert.Error(t, err)
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"summaries", "generate"},
		{"summaries", "approve"},
		{"holidays", "import"},
		{"users", "create"},
		{"migrate"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.NotNil(t, cmd.RunE, path)
	}
}

func TestMigrateRejectsUnknownDirection(t *testing.T) {
	err := migrateCmd.Args(migrateCmd, []string{"sideways"})
	assert.Error(t, err)

	assert.NoError(t, migrateCmd.Args(migrateCmd, []string{"up"}))
}
