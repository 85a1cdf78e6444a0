package models

import (
	"fmt"
	"io"
	"sync"
)

// JSONValue is a generic type to represent any JSON value.
// This can be a string, json.Number, boolean, null (nil), object, or array.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// Binary is a raw byte payload, a non-standard extension some JSON producers
// emit. Strict JSON input never parses into one; binary nodes only appear in
// programmatically built trees. When Data is nil the payload is read lazily
// through Source, which may fail.
type Binary struct {
	Data   []byte
	Source *BinarySource
}

// BinarySource reads a payload lazily from an underlying reader. The read
// happens at most once and the result (bytes or error) is cached, so every
// copy of the owning Binary observes the same length no matter how many
// times or in which order it is rendered or compared.
type BinarySource struct {
	Reader io.Reader

	once sync.Once
	data []byte
	err  error
}

func (s *BinarySource) payload() ([]byte, error) {
	s.once.Do(func() {
		s.data, s.err = io.ReadAll(s.Reader)
	})
	return s.data, s.err
}

// Length returns the byte length of the payload, reading Source if the
// payload has not been materialized yet.
func (b Binary) Length() (int, error) {
	if b.Data != nil {
		return len(b.Data), nil
	}
	if b.Source == nil {
		return 0, nil
	}
	data, err := b.Source.payload()
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Opaque wraps a node kind that has no JSON representation of its own, for
// example an embedded native value. It is only ever rendered via its debug
// string.
type Opaque struct {
	Value interface{}
}

func (o Opaque) String() string {
	return fmt.Sprintf("%v", o.Value)
}

// Missing marks a structurally absent slot in a tree. It is distinct from an
// explicit JSON null and is skipped during flattening.
type Missing struct{}

// Document is a parsed JSON document together with a display label,
// typically the base name of the file it was read from.
type Document struct {
	Root        JSONValue
	RootIsArray bool // True if the root of the JSON is an array vs an object
	Name        string
}

// FlattenedDocument maps hierarchical field paths (e.g. "user.details.age",
// "items[0].id") to the string rendering of the value at that path.
type FlattenedDocument map[string]string
