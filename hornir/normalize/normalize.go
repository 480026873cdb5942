// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package normalize converts a clause into a canonical flat form that is
// invariant under body-literal reordering and abstracts concrete values
// behind stable tokens, so a later equivalence/minimisation pass can
// compare clauses as multisets of elements.
package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/hashstructure"
	"github.com/sirupsen/logrus"

	"github.com/hornirlang/hornir"
	"github.com/hornirlang/hornir/argument"
	"github.com/hornirlang/hornir/clause"
	"github.com/hornirlang/hornir/diagnostic"
)

const (
	headElementName = "@min:head"
	rootScope       = "@min:scope:0"

	tokUnhandledArg = "@min:unhandled:arg"
	tokNil          = "@min:cst:nil"
)

// Element is one entry of a NormalisedClause's flat element list.
type Element struct {
	Name   string
	Params []string
}

func (e Element) String() string {
	return e.Name + ":[" + strings.Join(e.Params, ",") + "]"
}

// NormalisedClause is the canonical, scope-tagged, variable-name-stable
// flat representation of a Clause. Element insertion order is
// significant; the constant/variable sets are not.
type NormalisedClause struct {
	elements        []Element
	constants       map[string]struct{}
	variables       map[string]struct{}
	fullyNormalised bool
}

// Elements returns the flat element list, in insertion order.
func (n *NormalisedClause) Elements() []Element {
	out := make([]Element, len(n.elements))
	copy(out, n.elements)
	return out
}

// Constants returns the set of constant tokens encountered, as a sorted
// slice for deterministic comparison and printing.
func (n *NormalisedClause) Constants() []string {
	return sortedKeys(n.constants)
}

// Variables returns the set of variable tokens encountered, as a sorted
// slice for deterministic comparison and printing.
func (n *NormalisedClause) Variables() []string {
	return sortedKeys(n.variables)
}

// FullyNormalised reports whether every literal and argument in the
// clause was understood by the normaliser. Sticky once false.
func (n *NormalisedClause) FullyNormalised() bool {
	return n.fullyNormalised
}

// Hash returns a content hash of the clause's element multiset, suitable
// as an equivalence-cache key: two clauses whose bodies are reorderings
// of each other hash equal, the same way Normalise already makes body
// order irrelevant to the element set it produces.
func (n *NormalisedClause) Hash() (uint64, error) {
	names := make([]string, len(n.elements))
	for i, e := range n.elements {
		names[i] = e.String()
	}
	sort.Strings(names)
	return hashstructure.Hash(names, nil)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	// insertion-order-independent by spec; a stable sort keeps comparisons
	// and printed output deterministic across runs.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Normaliser builds NormalisedClauses. Resolver is consulted to print
// StringConstant text into its token; it must outlive every call to
// Normalise.
type Normaliser struct {
	Resolver hornir.SymbolResolver
	log      *logrus.Entry
	sink     *diagnostic.Sink
}

// Option configures a Normaliser at construction.
type Option func(*Normaliser)

// WithSink routes every unhandled-construct finding (the category-2
// "unhandled normalisation" case) through sink as a Warning diagnostic, in
// addition to flipping FullyNormalised. The default is no sink: the
// sticky flag alone still records the finding for callers that don't need
// a diagnostic trail.
func WithSink(sink *diagnostic.Sink) Option {
	return func(n *Normaliser) { n.sink = sink }
}

// New builds a Normaliser. A nil logger defaults to logrus's standard
// logger, tagged with system="normalize".
func New(resolver hornir.SymbolResolver, logger *logrus.Logger, opts ...Option) *Normaliser {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	n := &Normaliser{Resolver: resolver, log: logger.WithField("system", "normalize")}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// builder carries the per-clause state the spec requires to stay
// per-clause rather than global: the unnamed-variable counter and the
// aggregate-scope counter both reset for every Normalise call.
type builder struct {
	n              *Normaliser
	result         *NormalisedClause
	unnamedCounter int
	aggrScopeCount int
}

// Normalise converts c into its canonical flat form.
func (n *Normaliser) Normalise(c *clause.Clause) *NormalisedClause {
	b := &builder{
		n: n,
		result: &NormalisedClause{
			constants:       make(map[string]struct{}),
			variables:       make(map[string]struct{}),
			fullyNormalised: true,
		},
	}

	headParams := make([]string, len(c.Head.Args))
	for i, arg := range c.Head.Args {
		headParams[i] = b.normArg(arg)
	}
	b.emit(headElementName, headParams)

	for _, lit := range c.Body {
		b.normLiteral(lit, rootScope)
	}

	n.log.WithFields(logrus.Fields{
		"elements":         len(b.result.elements),
		"fully_normalised": b.result.fullyNormalised,
	}).Debug("normalised clause")

	return b.result
}

func (b *builder) emit(name string, params []string) {
	b.result.elements = append(b.result.elements, Element{Name: name, Params: params})
}

func (b *builder) markUnhandled(loc hornir.SrcLoc, format string, args ...interface{}) {
	b.result.fullyNormalised = false
	if b.n.sink != nil {
		b.n.sink.Warnf("normalize", loc, format, args...)
	}
}

func (b *builder) normLiteral(lit hornir.Literal, scopeID string) {
	switch l := lit.(type) {
	case *clause.Atom:
		params := append([]string{scopeID}, b.normArgs(l.Args)...)
		b.emit("@min:atom"+l.Name.String(), params)
	case *clause.Negation:
		params := append([]string{scopeID}, b.normArgs(l.Atom.Args)...)
		b.emit("@min:neg"+l.Atom.Name.String(), params)
	case *clause.BinaryConstraint:
		params := []string{scopeID, b.normArg(l.Lhs), b.normArg(l.Rhs)}
		b.emit("@min:operator"+l.Op.Symbol(), params)
	default:
		var text strings.Builder
		_ = lit.Print(&text, b.n.Resolver)
		b.markUnhandled(lit.Loc(), "unhandled literal in scope %s: %s", scopeID, text.String())
		b.emit("@min:unhandled:lit:"+scopeID+text.String(), nil)
	}
}

func (b *builder) normArgs(args []hornir.Argument) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = b.normArg(a)
	}
	return out
}

func (b *builder) normArg(arg hornir.Argument) string {
	switch a := arg.(type) {
	case *argument.StringConstant:
		text, ok := b.n.Resolver.Resolve(a.Idx)
		if !ok {
			text = ""
		}
		tok := fmt.Sprintf("@min:cst:str%q", text)
		b.result.constants[tok] = struct{}{}
		return tok
	case *argument.NumericConstant:
		tok := "@min:cst:num:" + strconv.FormatInt(a.Value, 10)
		b.result.constants[tok] = struct{}{}
		return tok
	case *argument.NilConstant:
		b.result.constants[tokNil] = struct{}{}
		return tokNil
	case *argument.Variable:
		b.result.variables[a.Name] = struct{}{}
		return a.Name
	case *argument.UnnamedVariable:
		tok := "@min:unnamed:" + strconv.Itoa(b.unnamedCounter)
		b.unnamedCounter++
		b.result.variables[tok] = struct{}{}
		return tok
	case *argument.Aggregator:
		b.aggrScopeCount++
		scopeID := "@min:scope:" + strconv.Itoa(b.aggrScopeCount)

		var targetParam []string
		if a.Target != nil {
			targetParam = []string{scopeID, b.normArg(a.Target)}
		} else {
			targetParam = []string{scopeID}
		}
		b.emit("@min:aggrtype:"+a.Op.Name(), targetParam)

		for _, lit := range a.Body {
			b.normLiteral(lit, scopeID)
		}

		b.result.variables[scopeID] = struct{}{}
		return scopeID
	default:
		b.markUnhandled(arg.Loc(), "unhandled argument of type %T", arg)
		return tokUnhandledArg
	}
}
