package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsoncompare/internal/compare"
	"github.com/mcncl/jsoncompare/internal/errors"
	"github.com/mcncl/jsoncompare/internal/models"
)

func sampleReport() *compare.Report {
	first := models.FlattenedDocument{
		"age":  "30",
		"name": `"John"`,
	}
	second := models.FlattenedDocument{
		"age":   "25",
		"email": `"john@example.com"`,
	}
	return compare.Classify(first, second, "first.json", "second.json")
}

func TestExportCSV(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, ExportCSV(sampleReport(), dest))

	file, err := os.Open(dest)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus one row per field")

	header := records[0]
	assert.Equal(t, []string{
		"Field Name",
		"File 1 (first.json)",
		"File 2 (second.json)",
		"Value in File 1",
		"Value in File 2",
		"Status",
		"Difference",
	}, header)

	assert.Equal(t, []string{"age", "Yes", "Yes", "30", "25", "⚠ Different Values", "Values differ"}, records[1])
	assert.Equal(t, []string{"email", "No", "Yes", "", `"john@example.com"`, "⚠ Only in File 2", "Missing in File 1"}, records[2])
	assert.Equal(t, []string{"name", "Yes", "No", `"John"`, "", "⚠ Only in File 1", "Missing in File 2"}, records[3])
}

func TestExportCSV_RejectsNonCSVPath(t *testing.T) {
	err := ExportCSV(sampleReport(), filepath.Join(t.TempDir(), "report.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotCSV)
}

func TestExportCSV_UnwritableDestination(t *testing.T) {
	err := ExportCSV(sampleReport(), filepath.Join(t.TempDir(), "missing-dir", "report.csv"))
	assert.Error(t, err)
}
