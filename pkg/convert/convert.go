// Package convert rewrites legacy (Python 2.7) syntax trees into modern
// (Python 3.5) syntax trees.
//
// Every node is routed by its kind: a handful of kinds whose modern shape
// differs have a specific rule, everything else goes through the generic
// structural rule, which copies the node field by field into the modern kind
// of the same name. Source positions are copied onto every produced node by
// the dispatcher; nodes synthesized by a rule carry ast35.UnknownPosition.
package convert

import (
	"fmt"
	"reflect"

	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
)

// Options tune a Converter.
type Options struct {
	// MergeNestedWith folds a with-statement whose body is exactly one
	// with-statement without a type comment into a single multi-item With.
	// Off by default: each legacy with-statement yields one single-item With.
	MergeNestedWith bool
}

// Stats counts the work of one conversion.
type Stats struct {
	// Nodes is the number of nodes produced by the dispatcher.
	Nodes int
	// Generic counts generic-rule applications by legacy kind name.
	Generic map[string]int
	// Rules counts specific-rule applications by legacy kind name.
	Rules map[string]int
}

func newStats() Stats {
	return Stats{
		Generic: make(map[string]int),
		Rules:   make(map[string]int),
	}
}

// Merge adds other's counters into s.
func (s *Stats) Merge(other Stats) {
	if s.Generic == nil {
		s.Generic = make(map[string]int, len(other.Generic))
	}

	if s.Rules == nil {
		s.Rules = make(map[string]int, len(other.Rules))
	}

	s.Nodes += other.Nodes

	for k, v := range other.Generic {
		s.Generic[k] += v
	}

	for k, v := range other.Rules {
		s.Rules[k] += v
	}
}

// RuleApplications returns the total number of specific-rule applications.
func (s Stats) RuleApplications() int {
	total := 0
	for _, v := range s.Rules {
		total += v
	}

	return total
}

// ruleFunc builds the modern node for one legacy node of a fixed kind.
type ruleFunc func(w *walker, n ast27.Node) (ast35.Node, error)

// Converter converts legacy trees. It holds no per-call state and is safe for
// concurrent use.
type Converter struct {
	opts  Options
	rules map[ast27.Kind]ruleFunc
}

// NewConverter creates a Converter with every specific rule registered.
func NewConverter(opts Options) *Converter {
	c := &Converter{
		opts:  opts,
		rules: make(map[ast27.Kind]ruleFunc),
	}

	registerRules(c)

	return c
}

func (c *Converter) register(kind ast27.Kind, fn ruleFunc) {
	c.rules[kind] = fn
}

// RuleKinds returns the legacy kinds that have a specific rule.
func (c *Converter) RuleKinds() []ast27.Kind {
	kinds := make([]ast27.Kind, 0, len(c.rules))
	for _, k := range ast27.Kinds() {
		if _, ok := c.rules[k]; ok {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

// Convert converts a legacy tree root into the equivalent modern root. On
// failure no tree is returned.
func (c *Converter) Convert(mod ast27.Mod) (ast35.Mod, error) {
	out, _, err := c.ConvertWithStats(mod)

	return out, err
}

// ConvertWithStats is Convert that also reports rule counters. Stats cover the
// work done up to a failure.
func (c *Converter) ConvertWithStats(mod ast27.Mod) (ast35.Mod, Stats, error) {
	w := c.newWalker()

	out, err := transformAs[ast35.Mod](w, mod, "root")
	if err != nil {
		return nil, w.stats, err
	}

	return out, w.stats, nil
}

// ConvertNode converts any legacy sub-tree.
func (c *Converter) ConvertNode(node ast27.Node) (ast35.Node, error) {
	w := c.newWalker()

	out, err := w.transform(node, "root")
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Converter) newWalker() *walker {
	return &walker{conv: c, stats: newStats()}
}

//nolint:gochecknoglobals // Stateless default converter.
var defaultConverter = NewConverter(Options{})

// Convert converts a legacy tree root with default options.
func Convert(mod ast27.Mod) (ast35.Mod, error) {
	return defaultConverter.Convert(mod)
}

// ConvertNode converts a legacy sub-tree with default options.
func ConvertNode(node ast27.Node) (ast35.Node, error) {
	return defaultConverter.ConvertNode(node)
}

// walker is the state of a single conversion.
type walker struct {
	conv   *Converter
	stats  Stats
	parent ast27.Node
}

// transform is the dispatcher: it picks the rule for n, runs it and copies the
// source position of n onto the result.
func (w *walker) transform(n ast27.Node, field string) (ast35.Node, error) {
	if isNil(n) {
		return nil, missing(w.parent, field)
	}

	kind := n.Kind()
	if !kind.Valid() {
		return nil, malformed(nil, field, "node %T has kind %s outside the legacy grammar", n, kind)
	}

	saved := w.parent
	w.parent = n

	defer func() { w.parent = saved }()

	var (
		out ast35.Node
		err error
	)

	if rule, ok := w.conv.rules[kind]; ok {
		w.stats.Rules[kind.String()]++
		out, err = rule(w, n)
	} else {
		w.stats.Generic[kind.String()]++
		out, err = w.generic(n)
	}

	if err != nil {
		return nil, err
	}

	if isNil(out) {
		return nil, malformed(n, "", "rule produced no node")
	}

	propagate(n, out)

	w.stats.Nodes++

	return out, nil
}

// propagate copies the source position of from onto to when both carry one.
func propagate(from ast27.Node, to ast35.Node) {
	src, ok := from.(ast27.Positioned)
	if !ok {
		return
	}

	dst, ok := to.(ast35.Positioned)
	if !ok {
		return
	}

	p := dst.Pos()
	p.Lineno = src.Pos().Lineno
	p.ColOffset = src.Pos().ColOffset
}

// transformAs dispatches n and checks that the result has the category the
// parent field expects.
func transformAs[T ast35.Node](w *walker, n ast27.Node, field string) (T, error) {
	var zero T

	out, err := w.transform(n, field)
	if err != nil {
		return zero, err
	}

	typed, ok := out.(T)
	if !ok {
		return zero, malformed(n, field, "converted to %s, which does not fit here", out.Kind())
	}

	return typed, nil
}

// transformOptional is transformAs that maps an absent child to an absent
// result.
func transformOptional[T ast35.Node](w *walker, n ast27.Node, field string) (T, error) {
	if isNil(n) {
		var zero T

		return zero, nil
	}

	return transformAs[T](w, n, field)
}

// transformAll dispatches every element of a child sequence in order. The
// result is never nil.
func transformAll[T ast35.Node, S ast27.Node](w *walker, in []S, field string) ([]T, error) {
	out := make([]T, 0, len(in))

	for i, n := range in {
		t, err := transformAs[T](w, n, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, nil
}

func (w *walker) expr(e ast27.Expr, field string) (ast35.Expr, error) {
	return transformAs[ast35.Expr](w, e, field)
}

func (w *walker) optExpr(e ast27.Expr, field string) (ast35.Expr, error) {
	return transformOptional[ast35.Expr](w, e, field)
}

func (w *walker) exprs(in []ast27.Expr, field string) ([]ast35.Expr, error) {
	return transformAll[ast35.Expr](w, in, field)
}

func (w *walker) stmts(in []ast27.Stmt, field string) ([]ast35.Stmt, error) {
	return transformAll[ast35.Stmt](w, in, field)
}

func (w *walker) arguments(a *ast27.Arguments, field string) (*ast35.Arguments, error) {
	return transformAs[*ast35.Arguments](w, a, field)
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n any) bool {
	if n == nil {
		return true
	}

	v := reflect.ValueOf(n)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
