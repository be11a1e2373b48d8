package treecodec

import (
	"fmt"
	"reflect"

	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
)

// family describes one node family to the reflective codec.
type family struct {
	name   string
	node   reflect.Type
	kindOf func(v any) (string, bool)
	create func(name string) (any, bool)
	names  []string
}

//nolint:gochecknoglobals // Immutable family descriptors.
var (
	legacyFamily = &family{
		name: "legacy",
		node: reflect.TypeFor[ast27.Node](),
		kindOf: func(v any) (string, bool) {
			n, ok := v.(ast27.Node)
			if !ok {
				return "", false
			}

			return n.Kind().String(), true
		},
		create: func(name string) (any, bool) {
			k, ok := ast27.ParseKind(name)
			if !ok {
				return nil, false
			}

			return ast27.New(k), true
		},
		names: kindNames(ast27.Kinds()),
	}

	modernFamily = &family{
		name: "modern",
		node: reflect.TypeFor[ast35.Node](),
		kindOf: func(v any) (string, bool) {
			n, ok := v.(ast35.Node)
			if !ok {
				return "", false
			}

			return n.Kind().String(), true
		},
		create: func(name string) (any, bool) {
			k, ok := ast35.ParseKind(name)
			if !ok {
				return nil, false
			}

			return ast35.New(k), true
		},
		names: kindNames(ast35.Kinds()),
	}

	strValueType   = reflect.TypeFor[ast27.StrValue]()
	byteStringType = reflect.TypeFor[ast27.ByteString]()
	textType       = reflect.TypeFor[ast27.Text]()
	bytesType      = reflect.TypeFor[[]byte]()
)

func kindNames[K fmt.Stringer](kinds []K) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return names
}

// familyOf picks the family a root value belongs to.
func familyOf(v any) (*family, bool) {
	switch v.(type) {
	case ast27.Node:
		return legacyFamily, true
	case ast35.Node:
		return modernFamily, true
	default:
		return nil, false
	}
}

// tagName returns the document member name of a struct field.
func tagName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}

	for i := range len(tag) {
		if tag[i] == ',' {
			return tag[:i]
		}
	}

	return tag
}
