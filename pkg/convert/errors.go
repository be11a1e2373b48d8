package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
)

// Sentinel errors for conversion failures.
var (
	// ErrMalformedTree means the input violates the legacy grammar: an
	// unknown node kind, a missing required child or a child of the wrong
	// category.
	ErrMalformedTree = errors.New("malformed legacy tree")

	// ErrUnsupportedConstruct means the input uses a legacy-only feature with
	// no modern representation.
	ErrUnsupportedConstruct = errors.New("unsupported legacy construct")
)

// ConversionError describes where a conversion failed. It unwraps to
// ErrMalformedTree or ErrUnsupportedConstruct.
type ConversionError struct {
	Err      error
	Kind     ast27.Kind
	Position *ast27.Position
	Field    string
	Detail   string
}

// Error describes the failure with its kind, field and position.
func (e *ConversionError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Err.Error())

	if e.Kind.Valid() {
		sb.WriteString(": ")
		sb.WriteString(e.Kind.String())

		if e.Field != "" {
			sb.WriteString(".")
			sb.WriteString(e.Field)
		}
	} else if e.Field != "" {
		sb.WriteString(": field ")
		sb.WriteString(e.Field)
	}

	if e.Position != nil {
		fmt.Fprintf(&sb, " at %d:%d", e.Position.Lineno, e.Position.ColOffset)
	}

	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}

	return sb.String()
}

// Unwrap returns the sentinel error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is a malformed-tree failure.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedTree)
}

// IsUnsupported reports whether err is an unsupported-construct failure.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedConstruct)
}

// Class names the failure class of err for logs and metrics: "malformed",
// "unsupported" or "other".
func Class(err error) string {
	switch {
	case IsMalformed(err):
		return "malformed"
	case IsUnsupported(err):
		return "unsupported"
	default:
		return "other"
	}
}

func newError(sentinel error, node ast27.Node, field, format string, args ...any) *ConversionError {
	ce := &ConversionError{
		Err:    sentinel,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}

	if node != nil {
		ce.Kind = safeKind(node)

		if p, ok := node.(ast27.Positioned); ok && !isNil(node) {
			pos := *p.Pos()
			ce.Position = &pos
		}
	}

	return ce
}

func malformed(node ast27.Node, field, format string, args ...any) error {
	return newError(ErrMalformedTree, node, field, format, args...)
}

func unsupported(node ast27.Node, field, format string, args ...any) error {
	return newError(ErrUnsupportedConstruct, node, field, format, args...)
}

func missing(node ast27.Node, field string) error {
	return malformed(node, field, "required child is missing")
}

// safeKind returns the kind of node, or KindInvalid when node is a typed nil.
func safeKind(node ast27.Node) ast27.Kind {
	if isNil(node) {
		return ast27.KindInvalid
	}

	return node.Kind()
}
