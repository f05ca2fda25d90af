package importlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		FileName:  "wise-jpy-2025.csv",
		Format:    "wise",
		BatchID:   "6a1f0bfb-9d3e-4c5e-9a51-2f2261a5a6a9",
		Succeeded: 12,
		Failed:    1,
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "wise", entries[0].Format)
	assert.Equal(t, 12, entries[0].Succeeded)
	assert.Equal(t, 1, entries[0].Failed)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.FileName = "revolut.csv"
	e2.Format = "revolut"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "wise-jpy-2025.csv", entries[0].FileName)
	assert.Equal(t, "revolut.csv", entries[1].FileName)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.FileName, got.FileName)
	assert.Equal(t, original.BatchID, got.BatchID)
	assert.Equal(t, original.Succeeded, got.Succeeded)
	assert.Equal(t, original.Failed, got.Failed)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "import-log.csv"), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadCounts(t *testing.T) {
	_, err := UnmarshalEntry([]string{testTime.Format(time.RFC3339), "f.csv", "wise", "id", "x", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "success_count")
}
