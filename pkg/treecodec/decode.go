package treecodec

import (
	"bytes"
	"encoding"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/pyconv/internal/suggest"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
)

const (
	typeKey  = "_type"
	bytesKey = "bytes"
)

var errNotInteger = errors.New("expected an integer")

//nolint:gochecknoglobals // Reflection constants.
var (
	jsonUnmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// DecodeLegacy decodes a legacy tree root from a JSON or YAML document.
func DecodeLegacy(data []byte) (ast27.Mod, error) {
	node, err := DecodeLegacyNode(data)
	if err != nil {
		return nil, err
	}

	mod, ok := node.(ast27.Mod)
	if !ok {
		return nil, fmt.Errorf("%w: root is %s, want a module kind", ErrWrongCategory, node.Kind())
	}

	return mod, nil
}

// DecodeLegacyNode decodes any legacy sub-tree.
func DecodeLegacyNode(data []byte) (ast27.Node, error) {
	v, err := decodeDocument(legacyFamily, data)
	if err != nil {
		return nil, err
	}

	node, ok := v.(ast27.Node)
	if !ok {
		return nil, ErrNotANode
	}

	return node, nil
}

// DecodeModern decodes a modern tree root.
func DecodeModern(data []byte) (ast35.Mod, error) {
	node, err := DecodeModernNode(data)
	if err != nil {
		return nil, err
	}

	mod, ok := node.(ast35.Mod)
	if !ok {
		return nil, fmt.Errorf("%w: root is %s, want a module kind", ErrWrongCategory, node.Kind())
	}

	return mod, nil
}

// DecodeModernNode decodes any modern sub-tree.
func DecodeModernNode(data []byte) (ast35.Node, error) {
	v, err := decodeDocument(modernFamily, data)
	if err != nil {
		return nil, err
	}

	node, ok := v.(ast35.Node)
	if !ok {
		return nil, ErrNotANode
	}

	return node, nil
}

// parseDocument turns raw bytes into generic values. JSON is recognised by its
// leading brace; everything else is read as YAML.
func parseDocument(data []byte) (any, error) {
	data, err := Decompress(data)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	var doc any

	if trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()

		err = dec.Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		return doc, nil
	}

	var root yaml.Node

	err = yaml.Unmarshal(trimmed, &root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	doc, err = fromYAML(&root, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return doc, nil
}

// yamlNumber is a numeric YAML scalar that is not also a JSON number, such as
// 0x1F or +1. It keeps the scalar's text.
type yamlNumber string

// maxYAMLDepth bounds alias expansion.
const maxYAMLDepth = 10000

var (
	errYAMLDepth = errors.New("yaml nesting too deep")
	errYAMLKey   = errors.New("yaml mapping keys must be scalars")
)

// fromYAML converts a YAML node into the generic values produced by the JSON
// decoder. Numeric scalars keep their source text so literals survive
// unchanged.
func fromYAML(n *yaml.Node, depth int) (any, error) {
	if depth > maxYAMLDepth {
		return nil, errYAMLDepth
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return fromYAML(n.Content[0], depth+1)

	case yaml.AliasNode:
		return fromYAML(n.Alias, depth+1)

	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)

		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d", errYAMLKey, key.Line)
			}

			val, err := fromYAML(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}

			out[key.Value] = val
		}

		return out, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))

		for _, item := range n.Content {
			val, err := fromYAML(item, depth+1)
			if err != nil {
				return nil, err
			}

			out = append(out, val)
		}

		return out, nil

	case yaml.ScalarNode:
		return yamlScalar(n)

	default:
		return nil, nil
	}
}

func yamlScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil

	case "!!bool":
		var b bool

		err := n.Decode(&b)
		if err != nil {
			return nil, err
		}

		return b, nil

	case "!!int", "!!float":
		if isJSONNumber(n.Value) {
			return json.Number(n.Value), nil
		}

		return yamlNumber(n.Value), nil

	default:
		return n.Value, nil
	}
}

func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}

	return json.Valid([]byte(s))
}

func decodeDocument(fam *family, data []byte) (any, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	m, ok := asObject(doc)
	if !ok {
		return nil, fmt.Errorf("%w: root must be an object", ErrInvalidDocument)
	}

	return decodeNode(fam, m, "$")
}

// asObject accepts both JSON objects and YAML mappings.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))

		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}

			out[key] = val
		}

		return out, true
	default:
		return nil, false
	}
}

func decodeNode(fam *family, m map[string]any, path string) (any, error) {
	name, ok := m[typeKey].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing %q", ErrInvalidDocument, path, typeKey)
	}

	node, ok := fam.create(name)
	if !ok || node == nil {
		return nil, fmt.Errorf("%w: %s: %q is not a %s kind%s",
			ErrUnknownKind, path, name, fam.name, suggest.Hint(name, fam.names))
	}

	err := fillStruct(fam, m, reflect.ValueOf(node).Elem(), path+"."+name)
	if err != nil {
		return nil, err
	}

	return node, nil
}

func fillStruct(fam *family, m map[string]any, rv reflect.Value, path string) error {
	rt := rv.Type()

	for i := range rt.NumField() {
		f := rt.Field(i)

		if f.Anonymous {
			err := fillStruct(fam, m, rv.Field(i), path)
			if err != nil {
				return err
			}

			continue
		}

		key := tagName(f)
		if key == "" {
			continue
		}

		val, present := m[key]
		if !present || val == nil {
			if requiredScalar(f.Type) {
				return fmt.Errorf("%w: %w: %s.%s", ErrInvalidDocument, ErrMissingField, path, key)
			}

			if !present {
				continue
			}
		}

		err := decodeValue(fam, val, rv.Field(i), path+"."+key)
		if err != nil {
			return err
		}
	}

	return nil
}

// requiredScalar reports whether a field has no absent state: optional
// scalars are pointers and children are interfaces or slices.
func requiredScalar(t reflect.Type) bool {
	if t == strValueType {
		return true
	}

	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.String, reflect.Uint8:
		return true
	default:
		return false
	}
}

//nolint:gocognit,gocyclo,cyclop,funlen // One branch per field shape.
func decodeValue(fam *family, v any, target reflect.Value, path string) error {
	t := target.Type()

	if v == nil {
		target.SetZero()

		return nil
	}

	switch {
	case t == strValueType:
		return decodeStrValue(v, target, path)

	case t == bytesType:
		b, err := decodeBytes(v, path)
		if err != nil {
			return err
		}

		target.SetBytes(b)

		return nil

	case t.Kind() == reflect.Interface:
		m, ok := asObject(v)
		if !ok {
			return fmt.Errorf("%w: %s: expected a node object", ErrInvalidDocument, path)
		}

		node, err := decodeNode(fam, m, path)
		if err != nil {
			return err
		}

		nv := reflect.ValueOf(node)
		if !nv.Type().AssignableTo(t) {
			return fmt.Errorf("%w: %s: %s", ErrWrongCategory, path, m[typeKey])
		}

		target.Set(nv)

		return nil

	case t.Kind() == reflect.Pointer && t.Implements(fam.node):
		m, ok := asObject(v)
		if !ok {
			return fmt.Errorf("%w: %s: expected a node object", ErrInvalidDocument, path)
		}

		if _, tagged := m[typeKey]; !tagged {
			elem := reflect.New(t.Elem())

			err := fillStruct(fam, m, elem.Elem(), path)
			if err != nil {
				return err
			}

			target.Set(elem)

			return nil
		}

		node, err := decodeNode(fam, m, path)
		if err != nil {
			return err
		}

		nv := reflect.ValueOf(node)
		if nv.Type() != t {
			return fmt.Errorf("%w: %s: %s", ErrWrongCategory, path, m[typeKey])
		}

		target.Set(nv)

		return nil

	case t.Kind() == reflect.Pointer:
		elem := reflect.New(t.Elem())

		err := decodeValue(fam, v, elem.Elem(), path)
		if err != nil {
			return err
		}

		target.Set(elem)

		return nil

	case t.Kind() == reflect.Slice:
		items, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%w: %s: expected a list", ErrInvalidDocument, path)
		}

		out := reflect.MakeSlice(t, len(items), len(items))

		for i, item := range items {
			err := decodeValue(fam, item, out.Index(i), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return err
			}
		}

		target.Set(out)

		return nil

	case reflect.PointerTo(t).Implements(jsonUnmarshalerType):
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, err)
		}

		u, _ := target.Addr().Interface().(json.Unmarshaler)

		err = u.UnmarshalJSON(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, err)
		}

		return nil

	case reflect.PointerTo(t).Implements(textUnmarshalerType):
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %s: expected a name", ErrInvalidDocument, path)
		}

		u, _ := target.Addr().Interface().(encoding.TextUnmarshaler)

		err := u.UnmarshalText([]byte(s))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, err)
		}

		return nil

	case t.Kind() == reflect.String:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %s: expected a string", ErrInvalidDocument, path)
		}

		target.SetString(s)

		return nil

	case t.Kind() == reflect.Int:
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, err)
		}

		target.SetInt(n)

		return nil

	case t.Kind() == reflect.Bool:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("%w: %s: expected a boolean", ErrInvalidDocument, path)
		}

		target.SetBool(b)

		return nil

	default:
		return fmt.Errorf("%w: %s: unsupported field type %s", ErrInvalidDocument, path, t)
	}
}

func decodeStrValue(v any, target reflect.Value, path string) error {
	if s, ok := v.(string); ok {
		target.Set(reflect.ValueOf(ast27.Text(s)))

		return nil
	}

	b, err := decodeBytes(v, path)
	if err != nil {
		return err
	}

	target.Set(reflect.ValueOf(ast27.ByteString(b)))

	return nil
}

func decodeBytes(v any, path string) ([]byte, error) {
	m, ok := asObject(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected {%q: ...}", ErrInvalidDocument, path, bytesKey)
	}

	s, ok := m[bytesKey].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected {%q: ...}", ErrInvalidDocument, path, bytesKey)
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, path, err)
	}

	return b, nil
}

func toInt(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Int64()
	case yamlNumber:
		return strconv.ParseInt(string(n), 0, 64)
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, strconv.ErrRange
		}

		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %v", errNotInteger, n)
		}

		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: got %T", errNotInteger, v)
	}
}
