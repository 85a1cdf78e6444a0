package compare

import (
	"sort"

	"github.com/mcncl/jsoncompare/internal/models"
)

// FieldState is the classification of a single field path across the two
// documents.
type FieldState int

const (
	// CommonSame: present in both documents with identical rendered values.
	CommonSame FieldState = iota
	// CommonDifferent: present in both documents with different rendered values.
	CommonDifferent
	// OnlyInFirst: present only in the first document.
	OnlyInFirst
	// OnlyInSecond: present only in the second document.
	OnlyInSecond
)

// Label returns the status column text for the state.
func (s FieldState) Label() string {
	switch s {
	case CommonSame:
		return "✓ Common"
	case CommonDifferent:
		return "⚠ Different Values"
	case OnlyInFirst:
		return "⚠ Only in File 1"
	default:
		return "⚠ Only in File 2"
	}
}

// Difference returns the difference column text for the state.
func (s FieldState) Difference() string {
	switch s {
	case CommonSame:
		return "Same value"
	case CommonDifferent:
		return "Values differ"
	case OnlyInFirst:
		return "Missing in File 2"
	default:
		return "Missing in File 1"
	}
}

// FieldStatus is one row of the detailed comparison: a field path, its
// presence and rendered value in each document, and its classification.
type FieldStatus struct {
	Path     string
	InFirst  bool
	InSecond bool
	First    string
	Second   string
	State    FieldState
}

// Report is the classified difference between two flattened documents,
// ordered by path, together with aggregate counters. It is built once per
// comparison and not modified afterwards.
//
// CommonFields counts only fields whose values match; fields present in
// both documents with differing values are counted by DifferentValues
// alone.
type Report struct {
	Fields     []FieldStatus
	FirstName  string
	SecondName string

	TotalFirst      int
	TotalSecond     int
	CommonFields    int
	OnlyInFirst     int
	OnlyInSecond    int
	DifferentValues int
}

// Classify compares two flattened documents field by field. The field
// universe is the union of both key sets, processed in lexicographic path
// order so repeated runs on identical inputs produce identical reports.
// Values are compared by plain string equality of their rendered forms.
func Classify(first, second models.FlattenedDocument, firstName, secondName string) *Report {
	universe := make(map[string]struct{}, len(first)+len(second))
	for path := range first {
		universe[path] = struct{}{}
	}
	for path := range second {
		universe[path] = struct{}{}
	}
	paths := make([]string, 0, len(universe))
	for path := range universe {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	report := &Report{
		Fields:      make([]FieldStatus, 0, len(paths)),
		FirstName:   firstName,
		SecondName:  secondName,
		TotalFirst:  len(first),
		TotalSecond: len(second),
	}

	for _, path := range paths {
		valueFirst, inFirst := first[path]
		valueSecond, inSecond := second[path]

		state := determineState(inFirst, inSecond, valueFirst == valueSecond)
		switch state {
		case CommonSame:
			report.CommonFields++
		case CommonDifferent:
			report.DifferentValues++
		case OnlyInFirst:
			report.OnlyInFirst++
		case OnlyInSecond:
			report.OnlyInSecond++
		}

		report.Fields = append(report.Fields, FieldStatus{
			Path:     path,
			InFirst:  inFirst,
			InSecond: inSecond,
			First:    valueFirst,
			Second:   valueSecond,
			State:    state,
		})
	}

	return report
}

func determineState(inFirst, inSecond, valuesEqual bool) FieldState {
	switch {
	case inFirst && inSecond && valuesEqual:
		return CommonSame
	case inFirst && inSecond:
		return CommonDifferent
	case inFirst:
		return OnlyInFirst
	default:
		return OnlyInSecond
	}
}
