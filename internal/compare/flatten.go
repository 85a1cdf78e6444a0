package compare

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/mcncl/jsoncompare/internal/models"
)

// Flatten walks a JSON tree depth-first in pre-order and returns a mapping
// from field path to the string rendering of the value at that path.
// Composite nodes (objects and arrays) get an entry of their own before
// their children are descended into; the root itself is never emitted.
//
// Binary nodes whose length cannot be read degrade to a placeholder value
// instead of failing the traversal. The error return is reserved for
// pass-through I/O failures from lazily loaded sources.
func Flatten(root models.JSONValue) (models.FlattenedDocument, error) {
	fields := make(models.FlattenedDocument)
	traverse(root, "", fields)
	return fields, nil
}

func traverse(node models.JSONValue, path string, acc models.FlattenedDocument) {
	switch v := node.(type) {
	case models.JSONObject:
		accumulate(node, path, acc)
		for _, name := range sortedFieldNames(v) {
			childPath := name
			if path != "" {
				childPath = path + "." + name
			}
			traverse(v[name], childPath, acc)
		}
	case models.JSONArray:
		accumulate(node, path, acc)
		for i, element := range v {
			traverse(element, path+"["+strconv.Itoa(i)+"]", acc)
		}
	case models.Binary:
		if path != "" {
			acc[path] = renderBinary(v, path)
		}
	case models.Opaque:
		if path != "" {
			acc[path] = "[POJO: " + v.String() + "]"
		}
		slog.Debug("opaque value captured", "path", path)
	case models.Missing:
		slog.Warn("missing node encountered", "path", path)
	default:
		// Scalar leaves: string, json.Number, bool, nil.
		accumulate(node, path, acc)
		slog.Debug("leaf value captured", "path", path)
	}
}

// accumulate records the node's rendered value unless it is the root.
func accumulate(node models.JSONValue, path string, acc models.FlattenedDocument) {
	if path != "" {
		acc[path] = ValueString(node)
	}
}

func sortedFieldNames(obj models.JSONObject) []string {
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func renderBinary(b models.Binary, path string) string {
	n, err := b.Length()
	if err != nil {
		slog.Warn("error reading binary data", "path", path, "error", err)
		return "[BINARY DATA: Unable to read length]"
	}
	return fmt.Sprintf("[BINARY DATA: %d bytes]", n)
}

// ValueString converts a JSON value into its display string. Null renders
// as "null", leaf strings are wrapped in double quotes, numbers and booleans
// use their canonical text form, and objects and arrays render as compact
// JSON with object keys sorted so the output is deterministic.
func ValueString(node models.JSONValue) string {
	switch v := node.(type) {
	case nil:
		return "null"
	case string:
		return `"` + v + `"`
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case models.JSONObject, models.JSONArray:
		var sb strings.Builder
		writeJSON(&sb, node)
		return sb.String()
	case models.Binary:
		return renderBinary(v, "")
	case models.Opaque:
		return "[POJO: " + v.String() + "]"
	default:
		return fmt.Sprintf("%v", node)
	}
}

// writeJSON renders a compact JSON form of the value. Object keys are
// emitted in sorted order. Binary and opaque nodes appear as quoted
// placeholder strings so the rendering is always well-formed.
func writeJSON(sb *strings.Builder, node models.JSONValue) {
	switch v := node.(type) {
	case models.JSONObject:
		sb.WriteByte('{')
		for i, name := range sortedFieldNames(v) {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(name))
			sb.WriteByte(':')
			writeJSON(sb, v[name])
		}
		sb.WriteByte('}')
	case models.JSONArray:
		sb.WriteByte('[')
		for i, element := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSON(sb, element)
		}
		sb.WriteByte(']')
	case nil:
		sb.WriteString("null")
	case string:
		sb.WriteString(strconv.Quote(v))
	case json.Number:
		sb.WriteString(v.String())
	case bool:
		sb.WriteString(strconv.FormatBool(v))
	case models.Binary:
		sb.WriteString(strconv.Quote(renderBinary(v, "")))
	case models.Opaque:
		sb.WriteString(strconv.Quote("[POJO: " + v.String() + "]"))
	default:
		sb.WriteString(strconv.Quote(fmt.Sprintf("%v", node)))
	}
}
