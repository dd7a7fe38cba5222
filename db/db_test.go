package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestAppendAndGetHistory(t *testing.T) {
	database := newTestDB(t)

	first, err := database.AppendHistory("show all employees", "SELECT * FROM employees", 4)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.Timestamp)

	_, err = database.AppendHistory("average salary", "SELECT AVG(salary) FROM employees", 1)
	require.NoError(t, err)

	entries, err := database.GetHistory()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Oldest first
	assert.Equal(t, "show all employees", entries[0].Prompt)
	assert.Equal(t, "SELECT * FROM employees", entries[0].SQLQuery)
	assert.Equal(t, 4, entries[0].RowCount)
	assert.Equal(t, "average salary", entries[1].Prompt)
}

func TestGetHistoryEmpty(t *testing.T) {
	database := newTestDB(t)

	entries, err := database.GetHistory()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClearHistory(t *testing.T) {
	database := newTestDB(t)

	_, err := database.AppendHistory("q1", "SELECT 1", 1)
	require.NoError(t, err)
	_, err = database.AppendHistory("q2", "SELECT 2", 1)
	require.NoError(t, err)

	require.NoError(t, database.ClearHistory())

	entries, err := database.GetHistory()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Clearing an already-empty store is fine.
	assert.NoError(t, database.ClearHistory())
}
