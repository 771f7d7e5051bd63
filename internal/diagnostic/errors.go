package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a compilation failure. A Kind is itself an error so it can
// serve as an errors.Is target.
type Kind int

const (
	SchemaError Kind = iota
	UnsupportedFieldType
	MissingDefinition
	InvalidEncoding
	ValidationError
)

func (k Kind) Error() string { return k.String() }

// Sentinels for errors.Is.
var (
	ErrSchema            error = SchemaError
	ErrUnsupported       error = UnsupportedFieldType
	ErrMissingDefinition error = MissingDefinition
	ErrInvalidEncoding   error = InvalidEncoding
	ErrValidation        error = ValidationError
)

// Error is a compilation failure located in the project.
type Error struct {
	Kind        Kind
	Path        []string // Outermost segment first.
	Value       string   // Offending raw value, if any.
	Message     string
	Suggestions []string
	Err         error
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Schemaf(format string, args ...any) *Error {
	return newError(SchemaError, format, args...)
}

func Unsupportedf(format string, args ...any) *Error {
	return newError(UnsupportedFieldType, format, args...)
}

func Missingf(format string, args ...any) *Error {
	return newError(MissingDefinition, format, args...)
}

func Encodingf(format string, args ...any) *Error {
	return newError(InvalidEncoding, format, args...)
}

func Validationf(format string, args ...any) *Error {
	return newError(ValidationError, format, args...)
}

// WithValue records the offending raw value.
func (e *Error) WithValue(v string) *Error {
	e.Value = v
	return e
}

// WithSuggestions records alternative names the user may have meant.
func (e *Error) WithSuggestions(s ...string) *Error {
	e.Suggestions = s
	return e
}

// Wrap records the underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// Location renders the path, e.g. levels[Level_0].layers[Entities]. Index
// segments such as [2] attach without a dot.
func (e *Error) Location() string {
	var b strings.Builder

	for i, seg := range e.Path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}

		b.WriteString(seg)
	}

	return b.String()
}

func (e *Error) Error() string {
	var b strings.Builder

	if len(e.Path) > 0 {
		b.WriteString(e.Location())
		b.WriteString(": ")
	}

	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Value != "" {
		fmt.Fprintf(&b, " (got %s)", e.Value)
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, "; did you mean %s?", strings.Join(e.Suggestions, ", "))
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches a Kind sentinel.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Within prefixes the location of err with segment. Errors that are not
// *Error are wrapped with the segment as plain context.
func Within(segment string, err error) error {
	if err == nil {
		return nil
	}

	e, ok := err.(*Error)
	if !ok {
		return fmt.Errorf("%s: %w", segment, err)
	}

	out := *e
	out.Path = append([]string{segment}, e.Path...)

	return &out
}

// Seg formats a path segment such as levels[Level_0].
func Seg(collection, key string) string {
	return collection + "[" + key + "]"
}

// Index formats a bare index segment such as [2].
func Index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
