package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator splits the positional values of one record line. There is no
// quoting or escaping: a comma inside a value shifts every later column.
const Separator = ","

var (
	// ErrFormat is returned when a numeric field holds a non-numeric token.
	ErrFormat = errors.New("invalid number")
	// ErrOutOfRange is returned when a line has fewer tokens than its schema.
	ErrOutOfRange = errors.New("missing field")
)

// FieldError describes a field of a record line that could not be parsed.
// Line is 1-based and only set by readers that know where the line came from.
type FieldError struct {
	Line  int
	Field string
	Token string
	Err   error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	fmt.Fprintf(&b, "field %s: %v", e.Field, e.Err)
	if errors.Is(e.Err, ErrFormat) {
		fmt.Fprintf(&b, " %q", e.Token)
	}
	return b.String()
}

func (e *FieldError) Unwrap() error { return e.Err }

// Kind is the type of a positional field.
type Kind int

const (
	KindString Kind = iota
	KindInt
)

// Field names one positional column of a record line.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the ordered column layout of a record line.
type Schema []Field

// Names returns the field names in column order.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Name
	}
	return out
}

// Parse splits line and maps every token to its field by name. Tokens past
// the end of the schema are ignored.
func (s Schema) Parse(line string) (Values, error) {
	tokens := strings.Split(line, Separator)
	v := Values{
		strs: make(map[string]string, len(s)),
		ints: make(map[string]int),
	}
	for i, f := range s {
		if i >= len(tokens) {
			return Values{}, &FieldError{Field: f.Name, Err: ErrOutOfRange}
		}
		tok := tokens[i]
		if f.Kind == KindInt {
			n, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return Values{}, &FieldError{Field: f.Name, Token: tok, Err: ErrFormat}
			}
			v.ints[f.Name] = n
			continue
		}
		v.strs[f.Name] = tok
	}
	return v, nil
}

// Format renders v back into a line in column order.
func (s Schema) Format(v Values) string {
	tokens := make([]string, len(s))
	for i, f := range s {
		if f.Kind == KindInt {
			tokens[i] = strconv.Itoa(v.Int(f.Name))
			continue
		}
		tokens[i] = v.String(f.Name)
	}
	return strings.Join(tokens, Separator)
}

// Values holds the fields of one parsed line, addressed by name.
type Values struct {
	strs map[string]string
	ints map[string]int
}

// NewValues returns an empty Values ready for Set calls.
func NewValues() Values {
	return Values{strs: map[string]string{}, ints: map[string]int{}}
}

// String returns the string field name, or "" if it was never set.
func (v Values) String(name string) string { return v.strs[name] }

// Int returns the integer field name, or 0 if it was never set.
func (v Values) Int(name string) int { return v.ints[name] }

// SetString stores a string field and returns v for chaining.
func (v Values) SetString(name, value string) Values {
	v.strs[name] = value
	return v
}

// SetInt stores an integer field and returns v for chaining.
func (v Values) SetInt(name string, value int) Values {
	v.ints[name] = value
	return v
}
