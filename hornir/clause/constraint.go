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

package clause

import (
	"io"

	"github.com/hornirlang/hornir"
)

// BinaryConstraint is a binary comparison between two arguments, l ⊙ r.
type BinaryConstraint struct {
	base
	Op  hornir.CmpOp
	Lhs hornir.Argument
	Rhs hornir.Argument
}

var _ hornir.Literal = (*BinaryConstraint)(nil)

// NewBinaryConstraint builds a binary constraint.
func NewBinaryConstraint(op hornir.CmpOp, lhs, rhs hornir.Argument) *BinaryConstraint {
	return &BinaryConstraint{base: newBase(), Op: op, Lhs: lhs, Rhs: rhs}
}

// Clone returns a deep, independently-owned copy.
func (c *BinaryConstraint) Clone() hornir.Literal {
	return &BinaryConstraint{base: newBase(), Op: c.Op, Lhs: c.Lhs.Clone(), Rhs: c.Rhs.Clone()}
}

// Equal reports structural equality, ignoring SrcLoc.
func (c *BinaryConstraint) Equal(other hornir.Node) bool {
	o, ok := other.(*BinaryConstraint)
	return ok && c.Op == o.Op && c.Lhs.Equal(o.Lhs) && c.Rhs.Equal(o.Rhs)
}

// Children returns [Lhs, Rhs], in declaration order.
func (c *BinaryConstraint) Children() []hornir.Node {
	return []hornir.Node{c.Lhs, c.Rhs}
}

// Print emits "(lhs op rhs)".
func (c *BinaryConstraint) Print(w io.Writer, syms hornir.SymbolResolver) error {
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	if err := c.Lhs.Print(w, syms); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " "+c.Op.Symbol()+" "); err != nil {
		return err
	}
	if err := c.Rhs.Print(w, syms); err != nil {
		return err
	}
	_, err := io.WriteString(w, ")")
	return err
}

// Rewrite replaces Lhs and Rhs via m, in place.
func (c *BinaryConstraint) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	changed := hornir.SameTree

	newLhs, ti, err := m.MapArgument(c.Lhs)
	if err != nil {
		return nil, hornir.SameTree, err
	}
	if ti == hornir.NewTree {
		changed = hornir.NewTree
		c.Lhs = newLhs
	}

	newRhs, ti, err := m.MapArgument(c.Rhs)
	if err != nil {
		return nil, hornir.SameTree, err
	}
	if ti == hornir.NewTree {
		changed = hornir.NewTree
		c.Rhs = newRhs
	}

	return c, changed, nil
}
