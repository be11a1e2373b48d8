package treecodec

import (
	"bytes"
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/pyconv/internal/literal"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
)

//nolint:gochecknoglobals // Reflection constants.
var (
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// object is a document object that keeps its members in insertion order.
type object struct {
	keys   []string
	values []any
}

func (o *object) add(key string, value any) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

// MarshalJSON writes the members in order.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		err := writeJSON(&buf, key)
		if err != nil {
			return nil, err
		}

		buf.WriteByte(':')

		err = writeJSON(&buf, o.values[i])
		if err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// writeJSON appends v without HTML escaping or a trailing newline.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return err
	}

	buf.Truncate(buf.Len() - 1)

	return nil
}

// MarshalYAML builds an ordered mapping node.
func (o *object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, 2*len(o.keys))}

	for i, key := range o.keys {
		var kn, vn yaml.Node

		err := kn.Encode(key)
		if err != nil {
			return nil, err
		}

		err = vn.Encode(o.values[i])
		if err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &kn, &vn)
	}

	return node, nil
}

// numberLit is a numeric literal written as a number whenever it parses as
// one.
type numberLit string

// MarshalJSON writes a bare number or a string.
func (n numberLit) MarshalJSON() ([]byte, error) {
	return literal.MarshalNumber(string(n))
}

// MarshalYAML writes a plain int or float scalar whose text is the literal
// itself, or a string.
func (n numberLit) MarshalYAML() (any, error) {
	s := string(n)
	if !isJSONNumber(s) {
		return s, nil
	}

	tag := "!!int"
	if strings.ContainsAny(s, ".eE") {
		tag = "!!float"
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}, nil
}

func bytesObject(b []byte) *object {
	o := &object{}
	o.add(bytesKey, base64.StdEncoding.EncodeToString(b))

	return o
}

// EncodeLegacy writes a legacy tree.
func EncodeLegacy(w io.Writer, node ast27.Node, opts EncodeOptions) error {
	return Encode(w, node, opts)
}

// EncodeModern writes a modern tree.
func EncodeModern(w io.Writer, node ast35.Node, opts EncodeOptions) error {
	return Encode(w, node, opts)
}

// Encode writes a tree of either family.
func Encode(w io.Writer, node any, opts EncodeOptions) error {
	data, err := Marshal(node, opts)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("write tree document: %w", err)
	}

	return nil
}

// Marshal renders a tree of either family to bytes.
func Marshal(node any, opts EncodeOptions) ([]byte, error) {
	fam, ok := familyOf(node)
	if !ok || isNilValue(node) {
		return nil, ErrNotANode
	}

	doc, err := encodeValue(fam, reflect.ValueOf(node))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	switch opts.Format {
	case FormatJSON, "":
		indent := opts.Indent
		if indent <= 0 {
			indent = DefaultIndent
		}

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", indent))

		err = enc.Encode(doc)
	case FormatJSONCompact:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)

		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(DefaultIndent)

		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	if err != nil {
		return nil, fmt.Errorf("encode %s tree: %w", fam.name, err)
	}

	if opts.Compress {
		return Compress(buf.Bytes())
	}

	return buf.Bytes(), nil
}

//nolint:gocyclo,cyclop // One branch per field shape.
func encodeValue(fam *family, v reflect.Value) (any, error) {
	t := v.Type()

	switch {
	case t.Kind() == reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}

		return encodeValue(fam, v.Elem())

	case t == textType:
		return v.String(), nil

	case t == byteStringType || t == bytesType:
		return bytesObject(v.Bytes()), nil

	case t.Kind() == reflect.Pointer:
		if v.IsNil() {
			return nil, nil
		}

		if t.Implements(fam.node) {
			return encodeNode(fam, v)
		}

		return encodeValue(fam, v.Elem())

	case t.Kind() == reflect.Slice:
		out := make([]any, v.Len())

		for i := range v.Len() {
			item, err := encodeValue(fam, v.Index(i))
			if err != nil {
				return nil, err
			}

			out[i] = item
		}

		return out, nil

	case t.Kind() == reflect.String && t.Implements(jsonMarshalerType):
		return numberLit(v.String()), nil

	case t.Implements(textMarshalerType):
		m, _ := v.Interface().(encoding.TextMarshaler)

		text, err := m.MarshalText()
		if err != nil {
			return nil, err
		}

		return string(text), nil

	case t.Kind() == reflect.String:
		return v.String(), nil

	case t.Kind() == reflect.Int:
		return v.Int(), nil

	case t.Kind() == reflect.Bool:
		return v.Bool(), nil

	default:
		return nil, fmt.Errorf("%w: unsupported field type %s", ErrNotANode, t)
	}
}

// encodeNode writes "_type", then the node's own fields, then its position.
func encodeNode(fam *family, v reflect.Value) (any, error) {
	name, ok := fam.kindOf(v.Interface())
	if !ok {
		return nil, ErrNotANode
	}

	o := &object{}
	o.add(typeKey, name)

	err := addFields(fam, o, v.Elem(), false)
	if err != nil {
		return nil, err
	}

	err = addFields(fam, o, v.Elem(), true)
	if err != nil {
		return nil, err
	}

	return o, nil
}

// addFields appends either the direct fields of rv or those of its embedded
// structs.
func addFields(fam *family, o *object, rv reflect.Value, embedded bool) error {
	rt := rv.Type()

	for i := range rt.NumField() {
		f := rt.Field(i)

		if f.Anonymous {
			if embedded {
				err := addFields(fam, o, rv.Field(i), false)
				if err != nil {
					return err
				}
			}

			continue
		}

		if embedded {
			continue
		}

		key := tagName(f)
		if key == "" {
			continue
		}

		val, err := encodeValue(fam, rv.Field(i))
		if err != nil {
			return fmt.Errorf("%s.%s: %w", rt.Name(), key, err)
		}

		o.add(key, val)
	}

	return nil
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
