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

package argument

import (
	"io"

	"github.com/hornirlang/hornir"
)

// Aggregator computes min/max/count/sum over a sub-query body. Target is
// absent for count. The body literals introduce a nested variable scope
// disjoint from the enclosing clause.
type Aggregator struct {
	base
	Op     hornir.AggregatorOp
	Target hornir.Argument // nil for count
	Body   []hornir.Literal
}

var _ hornir.Argument = (*Aggregator)(nil)

// NewAggregator builds an aggregator. target must be nil for AggrCount and
// non-nil otherwise; that constraint is enforced by callers constructing
// the AST (the parser), not by this constructor.
func NewAggregator(op hornir.AggregatorOp, target hornir.Argument, body ...hornir.Literal) *Aggregator {
	return &Aggregator{base: newBase(), Op: op, Target: target, Body: body}
}

// Clone returns a deep, independently-owned copy.
func (a *Aggregator) Clone() hornir.Argument {
	var target hornir.Argument
	if a.Target != nil {
		target = a.Target.Clone()
	}
	body := make([]hornir.Literal, len(a.Body))
	for i, l := range a.Body {
		body[i] = l.Clone()
	}
	return &Aggregator{base: newBase(), Op: a.Op, Target: target, Body: body}
}

// Equal reports structural equality, ignoring SrcLoc. Body order is
// significant here -- normalisation, not Equal, is where body-order
// invariance across aggregate scopes is established.
func (a *Aggregator) Equal(other hornir.Node) bool {
	o, ok := other.(*Aggregator)
	if !ok || o.Op != a.Op || len(o.Body) != len(a.Body) {
		return false
	}
	if (a.Target == nil) != (o.Target == nil) {
		return false
	}
	if a.Target != nil && !a.Target.Equal(o.Target) {
		return false
	}
	for i := range a.Body {
		if !a.Body[i].Equal(o.Body[i]) {
			return false
		}
	}
	return true
}

// Children returns the target (if present) followed by the body literals,
// in declaration order.
func (a *Aggregator) Children() []hornir.Node {
	out := make([]hornir.Node, 0, len(a.Body)+1)
	if a.Target != nil {
		out = append(out, a.Target)
	}
	for _, l := range a.Body {
		out = append(out, l)
	}
	return out
}

// Print emits "op target : { body }" (target omitted for count).
func (a *Aggregator) Print(w io.Writer, syms hornir.SymbolResolver) error {
	if _, err := io.WriteString(w, a.Op.Name()); err != nil {
		return err
	}
	if a.Target != nil {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := a.Target.Print(w, syms); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, " : { "); err != nil {
		return err
	}
	for i, l := range a.Body {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if err := l.Print(w, syms); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " }")
	return err
}

// Rewrite replaces the target (if present) and each body literal via m, in
// place.
func (a *Aggregator) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	changed := hornir.SameTree

	if a.Target != nil {
		newTarget, ti, err := m.MapArgument(a.Target)
		if err != nil {
			return nil, hornir.SameTree, err
		}
		if ti == hornir.NewTree {
			changed = hornir.NewTree
			a.Target = newTarget
		}
	}

	for i, l := range a.Body {
		newLit, ti, err := m.MapLiteral(l)
		if err != nil {
			return nil, hornir.SameTree, err
		}
		if ti == hornir.NewTree {
			changed = hornir.NewTree
			a.Body[i] = newLit
		}
	}

	return a, changed, nil
}
