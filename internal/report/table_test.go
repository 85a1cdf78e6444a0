package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcncl/jsoncompare/internal/config"
)

func TestTableRenderer_Render(t *testing.T) {
	cfg := config.Default()
	cfg.Color = false

	var buf bytes.Buffer
	NewTableRenderer(&buf, cfg).Render(sampleReport())
	out := buf.String()

	assert.Contains(t, out, "DETAILED FIELD COMPARISON")
	assert.Contains(t, out, "FIELD NAME")
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "⚠ Different Values")
	assert.Contains(t, out, "Missing in File 1")
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "Total fields")
	assert.Contains(t, out, "File 1: first.json")
	assert.Contains(t, out, "File 2: second.json")
}

func TestTableRenderer_AbsentValuesRenderAsDash(t *testing.T) {
	cfg := config.Default()
	cfg.Color = false

	var buf bytes.Buffer
	NewTableRenderer(&buf, cfg).Render(sampleReport())

	// "email" exists only in the second file, so its first-file value cell
	// is a dash.
	var emailLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "email") {
			emailLine = line
			break
		}
	}
	assert.NotEmpty(t, emailLine)
	assert.Contains(t, emailLine, "-")
	assert.Contains(t, emailLine, "No")
}

func TestTableRenderer_SummaryCounts(t *testing.T) {
	cfg := config.Default()
	cfg.Color = false

	var buf bytes.Buffer
	NewTableRenderer(&buf, cfg).Render(sampleReport())
	out := buf.String()

	// Three paths in the universe: age (different), email (only second),
	// name (only first).
	assert.Contains(t, out, "Unique fields")
	assert.Contains(t, out, "Different values")
}
