// Package treedump renders syntax trees of either family as indented text
// and diffs two renderings line by line.
//
// Every node occupies one line: its kind followed by its scalar fields in
// parentheses. Child nodes follow on deeper lines, prefixed by the field
// name they hang from:
//
//	Module()
//	  body[0]: Expr() @1:0
//	    value: Call(keywords=[]) @1:0
//	      func: Name(id="print", ctx=Load) @?
package treedump

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
)

// DefaultIndent is the indentation added per tree level.
const DefaultIndent = "  "

// ErrNotANode is returned when the value to dump is not a tree node.
var ErrNotANode = errors.New("value is not a syntax tree node")

//nolint:gochecknoglobals // Reflection constants.
var (
	legacyNodeType = reflect.TypeFor[ast27.Node]()
	modernNodeType = reflect.TypeFor[ast35.Node]()
	stringerType   = reflect.TypeFor[fmt.Stringer]()
)

// Options control the rendering.
type Options struct {
	// Positions appends "@line:col" to positioned nodes, "@?" when unknown.
	Positions bool
	// Indent replaces DefaultIndent when non-empty.
	Indent string
}

// Dump renders node, which must belong to one of the two tree families.
func Dump(node any, opts Options) (string, error) {
	if !isNode(node) {
		return "", ErrNotANode
	}

	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}

	d := &dumper{opts: opts}
	d.node("", reflect.ValueOf(node), 0)

	return d.buf.String(), nil
}

func isNode(v any) bool {
	switch v.(type) {
	case ast27.Node, ast35.Node:
	default:
		return false
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() != reflect.Pointer || !rv.IsNil()
}

func isNodeType(t reflect.Type) bool {
	return t.Implements(legacyNodeType) || t.Implements(modernNodeType)
}

type dumper struct {
	opts Options
	buf  strings.Builder
}

type child struct {
	label string
	value reflect.Value
}

func (d *dumper) node(label string, v reflect.Value, depth int) {
	for v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	d.buf.WriteString(strings.Repeat(d.opts.Indent, depth))

	if label != "" {
		d.buf.WriteString(label)
		d.buf.WriteString(": ")
	}

	d.buf.WriteString(kindName(v.Interface()))

	var (
		scalars  []string
		children []child
	)

	d.fields(v.Elem(), &scalars, &children)

	d.buf.WriteByte('(')
	d.buf.WriteString(strings.Join(scalars, ", "))
	d.buf.WriteByte(')')

	if d.opts.Positions {
		if pos, ok := position(v.Interface()); ok {
			d.buf.WriteString(pos)
		}
	}

	d.buf.WriteByte('\n')

	for _, c := range children {
		d.node(c.label, c.value, depth+1)
	}
}

// fields splits the fields of a node struct into inline scalars and child
// nodes, skipping the embedded position.
func (d *dumper) fields(rv reflect.Value, scalars *[]string, children *[]child) {
	rt := rv.Type()

	for i := range rt.NumField() {
		f := rt.Field(i)
		if f.Anonymous {
			continue
		}

		name := fieldName(f)
		fv := rv.Field(i)

		switch {
		case isNodeType(f.Type):
			if fv.IsNil() {
				*scalars = append(*scalars, name+"=None")

				continue
			}

			*children = append(*children, child{label: name, value: fv})

		case f.Type.Kind() == reflect.Slice && isNodeType(f.Type.Elem()):
			if fv.Len() == 0 {
				*scalars = append(*scalars, name+"=[]")

				continue
			}

			for j := range fv.Len() {
				item := fv.Index(j)
				label := fmt.Sprintf("%s[%d]", name, j)

				if item.IsNil() {
					*scalars = append(*scalars, label+"=None")

					continue
				}

				*children = append(*children, child{label: label, value: item})
			}

		default:
			*scalars = append(*scalars, name+"="+scalar(fv))
		}
	}
}

//nolint:gocyclo,cyclop // One branch per scalar shape.
func scalar(v reflect.Value) string {
	t := v.Type()

	switch {
	case t.Kind() == reflect.Interface || t.Kind() == reflect.Pointer:
		if v.IsNil() {
			return "None"
		}

		return scalar(v.Elem())

	case t == reflect.TypeFor[ast27.ByteString]() || t == reflect.TypeFor[[]byte]():
		return "b" + strconv.Quote(string(v.Bytes()))

	case t.Kind() == reflect.Slice:
		items := make([]string, v.Len())
		for i := range v.Len() {
			items[i] = scalar(v.Index(i))
		}

		return "[" + strings.Join(items, ", ") + "]"

	case t.Implements(stringerType):
		s, _ := v.Interface().(fmt.Stringer)

		return s.String()

	case t == reflect.TypeFor[ast27.Number]() || t == reflect.TypeFor[ast35.Number]():
		return v.String()

	case t.Kind() == reflect.String:
		return strconv.Quote(v.String())

	case t.Kind() == reflect.Bool:
		if v.Bool() {
			return "True"
		}

		return "False"

	case t.Kind() == reflect.Int:
		return strconv.FormatInt(v.Int(), 10)

	default:
		return fmt.Sprint(v.Interface())
	}
}

func kindName(v any) string {
	switch n := v.(type) {
	case ast27.Node:
		return n.Kind().String()
	case ast35.Node:
		return n.Kind().String()
	default:
		return fmt.Sprintf("%T", v)
	}
}

func position(v any) (string, bool) {
	switch n := v.(type) {
	case ast27.Positioned:
		p := n.Pos()

		return fmt.Sprintf(" @%d:%d", p.Lineno, p.ColOffset), true
	case ast35.Positioned:
		p := n.Pos()
		if !p.Known() {
			return " @?", true
		}

		return fmt.Sprintf(" @%d:%d", p.Lineno, p.ColOffset), true
	default:
		return "", false
	}
}

func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}

	return name
}
