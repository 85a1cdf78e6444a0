package compare

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsoncompare/internal/models"
)

func flattenJSON(t *testing.T, jsonStr string) models.FlattenedDocument {
	t.Helper()
	flat, err := Flatten(mustParse(t, jsonStr))
	require.NoError(t, err)
	return flat
}

func TestClassify_DifferentValues(t *testing.T) {
	first := flattenJSON(t, `{"name": "John", "age": 30}`)
	second := flattenJSON(t, `{"age": 25, "name": "John"}`)

	report := Classify(first, second, "a.json", "b.json")

	want := []FieldStatus{
		{Path: "age", InFirst: true, InSecond: true, First: "30", Second: "25", State: CommonDifferent},
		{Path: "name", InFirst: true, InSecond: true, First: `"John"`, Second: `"John"`, State: CommonSame},
	}
	if diff := cmp.Diff(want, report.Fields); diff != "" {
		t.Errorf("Classify() fields mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, report.CommonFields)
	assert.Equal(t, 1, report.DifferentValues)
	assert.Equal(t, 0, report.OnlyInFirst)
	assert.Equal(t, 0, report.OnlyInSecond)
}

func TestClassify_MissingFields(t *testing.T) {
	first := flattenJSON(t, `{"name": "John", "age": 30}`)
	second := flattenJSON(t, `{"email": "john@example.com", "name": "John"}`)

	report := Classify(first, second, "a.json", "b.json")

	want := []FieldStatus{
		{Path: "age", InFirst: true, First: "30", State: OnlyInFirst},
		{Path: "email", InSecond: true, Second: `"john@example.com"`, State: OnlyInSecond},
		{Path: "name", InFirst: true, InSecond: true, First: `"John"`, Second: `"John"`, State: CommonSame},
	}
	if diff := cmp.Diff(want, report.Fields); diff != "" {
		t.Errorf("Classify() fields mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, report.CommonFields)
	assert.Equal(t, 1, report.OnlyInFirst)
	assert.Equal(t, 1, report.OnlyInSecond)
	assert.Equal(t, 0, report.DifferentValues)
}

func TestClassify_EmptyDocuments(t *testing.T) {
	report := Classify(models.FlattenedDocument{}, models.FlattenedDocument{}, "a.json", "b.json")

	assert.Empty(t, report.Fields)
	assert.Zero(t, report.CommonFields)
	assert.Zero(t, report.OnlyInFirst)
	assert.Zero(t, report.OnlyInSecond)
	assert.Zero(t, report.DifferentValues)
}

func TestClassify_SelfYieldsOnlyCommonSame(t *testing.T) {
	flat := flattenJSON(t, `{"items": [{"id": 1, "name": "Item A"}, {"id": 2}], "count": 2, "meta": null}`)

	report := Classify(flat, flat, "a.json", "a.json")

	assert.Equal(t, len(flat), report.CommonFields)
	assert.Zero(t, report.OnlyInFirst)
	assert.Zero(t, report.OnlyInSecond)
	assert.Zero(t, report.DifferentValues)
	for _, field := range report.Fields {
		assert.Equal(t, CommonSame, field.State, "path %s", field.Path)
	}
}

func TestClassify_LexicographicOrder(t *testing.T) {
	first := flattenJSON(t, `{"zebra": 1, "apple": 2, "items": [1, 2]}`)
	second := flattenJSON(t, `{"mango": 3}`)

	report := Classify(first, second, "a.json", "b.json")

	paths := make([]string, len(report.Fields))
	for i, field := range report.Fields {
		paths[i] = field.Path
	}
	assert.True(t, sort.StringsAreSorted(paths), "paths should be in lexicographic order, got %v", paths)
}

func TestClassify_Deterministic(t *testing.T) {
	first := flattenJSON(t, `{"a": 1, "b": {"c": [1, 2, 3]}, "d": null}`)
	second := flattenJSON(t, `{"a": 2, "e": true}`)

	r1 := Classify(first, second, "a.json", "b.json")
	r2 := Classify(first, second, "a.json", "b.json")

	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Errorf("repeated Classify() runs differ:\n%s", diff)
	}
}

func TestFieldState_Labels(t *testing.T) {
	assert.Equal(t, "✓ Common", CommonSame.Label())
	assert.Equal(t, "⚠ Different Values", CommonDifferent.Label())
	assert.Equal(t, "⚠ Only in File 1", OnlyInFirst.Label())
	assert.Equal(t, "⚠ Only in File 2", OnlyInSecond.Label())

	assert.Equal(t, "Same value", CommonSame.Difference())
	assert.Equal(t, "Values differ", CommonDifferent.Difference())
	assert.Equal(t, "Missing in File 2", OnlyInFirst.Difference())
	assert.Equal(t, "Missing in File 1", OnlyInSecond.Difference())
}
