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
	"fmt"
	"io"

	"github.com/hornirlang/hornir"
)

// TypeCast carries a value and a textual target type name resolved by a
// later type-resolution pass. It does not evaluate the target type.
type TypeCast struct {
	base
	Value          hornir.Argument
	TargetTypeName hornir.QualifiedName
}

var _ hornir.Argument = (*TypeCast)(nil)

// NewTypeCast builds a type cast.
func NewTypeCast(value hornir.Argument, targetTypeName hornir.QualifiedName) *TypeCast {
	return &TypeCast{base: newBase(), Value: value, TargetTypeName: targetTypeName}
}

// Clone returns a deep, independently-owned copy.
func (c *TypeCast) Clone() hornir.Argument {
	return &TypeCast{base: newBase(), Value: c.Value.Clone(), TargetTypeName: c.TargetTypeName}
}

// Equal reports structural equality, ignoring SrcLoc.
func (c *TypeCast) Equal(other hornir.Node) bool {
	o, ok := other.(*TypeCast)
	return ok && c.TargetTypeName.Equal(o.TargetTypeName) && c.Value.Equal(o.Value)
}

// Children returns the cast value as the sole subtree.
func (c *TypeCast) Children() []hornir.Node {
	return []hornir.Node{c.Value}
}

// Print emits "value as TypeName".
func (c *TypeCast) Print(w io.Writer, syms hornir.SymbolResolver) error {
	if err := c.Value.Print(w, syms); err != nil {
		return err
	}
	_, err := io.WriteString(w, " as "+c.TargetTypeName.String())
	return err
}

// Rewrite replaces the cast value via m, in place.
func (c *TypeCast) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	newVal, ti, err := m.MapArgument(c.Value)
	if err != nil {
		return nil, hornir.SameTree, err
	}
	if ti == hornir.NewTree {
		c.Value = newVal
	}
	return c, ti, nil
}

// SubroutineArg references the index'th argument of an enclosing
// generated subroutine.
type SubroutineArg struct {
	base
	Index int
}

var _ hornir.Argument = (*SubroutineArg)(nil)

// NewSubroutineArg builds a subroutine argument reference. Panics if index
// is negative: a negative index is a fatal invariant violation, not user
// input.
func NewSubroutineArg(index int) *SubroutineArg {
	if index < 0 {
		panic(hornir.ErrChildIndexOutOfRange.New(index, 0))
	}
	return &SubroutineArg{base: newBase(), Index: index}
}

// Clone returns a deep, independently-owned copy.
func (s *SubroutineArg) Clone() hornir.Argument {
	return &SubroutineArg{base: newBase(), Index: s.Index}
}

// Equal reports structural equality, ignoring SrcLoc.
func (s *SubroutineArg) Equal(other hornir.Node) bool {
	o, ok := other.(*SubroutineArg)
	return ok && o.Index == s.Index
}

// Children returns no subtrees: SubroutineArg is a leaf.
func (s *SubroutineArg) Children() []hornir.Node { return nil }

// Print emits "arg(index)".
func (s *SubroutineArg) Print(w io.Writer, syms hornir.SymbolResolver) error {
	_, err := fmt.Fprintf(w, "arg(%d)", s.Index)
	return err
}

// Rewrite is a no-op: SubroutineArg is a leaf.
func (s *SubroutineArg) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	return s, hornir.SameTree, nil
}
