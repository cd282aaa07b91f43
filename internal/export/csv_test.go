package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhtools/hhparse/internal/handhistory"
)

func sampleHands(t *testing.T) []*handhistory.ParsedHand {
	t.Helper()
	parsed, err := handhistory.ParseHand([]string{
		"Hand #123456789",
		"Table: NL Hold'em ($0.01/$0.02 USD)",
		"Seat 1: Hero (2.00)",
		"Seat 2: Villain (2.00)",
		"Hero: raises to 0.06",
		"Villain: folds",
		"Hero collected 0.03 from pot",
		"Total pot 0.03 | Rake 0.00",
	})
	require.NoError(t, err)

	bare, err := handhistory.ParseHand([]string{"Hand #555"})
	require.NoError(t, err)

	return []*handhistory.ParsedHand{parsed, bare}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteHandsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "hands.csv")
	require.NoError(t, WriteHandsCSV(path, sampleHands(t)))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, handColumns, rows[0])

	first := rows[1]
	assert.Equal(t, "123456789", first[0])
	assert.Equal(t, "pokerok", first[1])
	assert.Equal(t, "holdem", first[2])
	assert.Equal(t, "NL", first[3])
	assert.Equal(t, "0.01", first[4])
	assert.Equal(t, "0.02", first[5])
	assert.Equal(t, "USD", first[6])
	assert.Equal(t, "2", first[7])
	assert.Contains(t, first[14], `"player":"Hero"`)

	// A bare hand serializes nullable fields as empty cells and an
	// empty JSON array of winners.
	second := rows[2]
	assert.Equal(t, "555", second[0])
	assert.Equal(t, "", second[4])
	assert.Equal(t, "", second[7])
	assert.Equal(t, "[]", second[14])
}

func TestWriteActionsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.csv")
	require.NoError(t, WriteActionsCSV(path, sampleHands(t)))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, actionColumns, rows[0])
	assert.Equal(t, []string{"123456789", "preflop", "Hero", "raises to", "0.06"}, rows[1])
	assert.Equal(t, []string{"123456789", "preflop", "Villain", "folds", ""}, rows[2])
}

func TestWriteAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hands.csv")
	require.NoError(t, WriteHandsCSV(path, sampleHands(t)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hands.csv", entries[0].Name())
}

func TestWriteAtomicFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	err := writeAtomic(path, func(f *os.File) error {
		return os.ErrInvalid
	})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.json")
	require.NoError(t, WriteFile(path, []byte(`{"ok":true}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
}
