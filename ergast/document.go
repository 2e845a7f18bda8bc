package ergast

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrStructure is returned when a required node of the response is absent.
	ErrStructure = errors.New("unexpected response structure")
	// ErrMalformed is returned when the body is not exactly one JSON value.
	ErrMalformed = errors.New("malformed response body")
)

// PathError names the required node that was missing.
type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("ergast: %v: %s", ErrStructure, e.Path)
}

func (e *PathError) Unwrap() error { return ErrStructure }

// Document is a node of a JSON response. Paths use gjson dot syntax, with
// array indexes as numeric segments: "MRData.RaceTable.Races.0".
type Document struct {
	res gjson.Result
}

// Parse validates body and returns its root. Trailing data after the first
// value makes the body invalid.
func Parse(body []byte) (Document, error) {
	if !gjson.ValidBytes(body) {
		return Document{}, ErrMalformed
	}
	return Document{res: gjson.ParseBytes(body)}, nil
}

// Get returns the node at path. A missing path yields an empty document on
// which every lookup misses.
func (d Document) Get(path string) Document {
	return Document{res: d.res.Get(path)}
}

// Exists reports whether the node is present. null counts as present.
func (d Document) Exists() bool { return d.res.Exists() }

// String returns the scalar at path as text, or "" when the path is absent,
// null or not a scalar. Numbers keep their literal text.
func (d Document) String(path string) string {
	r := d.res.Get(path)
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number, gjson.True, gjson.False:
		return r.Raw
	default:
		return ""
	}
}

// Array returns the elements of the array at path. Unlike the leaf
// accessors a missing array is an error.
func (d Document) Array(path string) ([]Document, error) {
	r := d.res.Get(path)
	if !r.IsArray() {
		return nil, &PathError{Path: path}
	}
	items := r.Array()
	out := make([]Document, len(items))
	for i, el := range items {
		out[i] = Document{res: el}
	}
	return out, nil
}
