package simulator

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, path string) {
	t.Helper()

	out, err := NewCSVOutput(path)
	require.NoError(t, err)

	records, err := NewSimulator(testConfig()).Generate()
	require.NoError(t, err)
	for _, rec := range records {
		require.NoError(t, out.Write(rec))
	}
	require.NoError(t, out.Close())
}

func TestCSVOutputByteIdenticalAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	writeDataset(t, first)
	writeDataset(t, second)

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed and config must produce byte-identical files")
}

func TestCSVOutputRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	writeDataset(t, path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	header, err := csv.NewReader(file).Read()
	require.NoError(t, err)
	assert.Equal(t, models.DatasetColumns, header)

	records, err := models.ReadDatasetCSV(path)
	require.NoError(t, err)

	expected, err := NewSimulator(testConfig()).Generate()
	require.NoError(t, err)
	require.Equal(t, len(expected), len(records))
	for i := range expected {
		assert.Equal(t, *expected[i], *records[i], "row %d", i)
	}
}
