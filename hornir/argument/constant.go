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

	"github.com/spf13/cast"

	"github.com/hornirlang/hornir"
)

// StringConstant is an interned string literal. It holds only the symbol
// id; resolving it to text requires a SymbolResolver at print time, so no
// constant node embeds a table back-reference.
type StringConstant struct {
	base
	Idx int
}

var _ hornir.Argument = (*StringConstant)(nil)

// NewStringConstant wraps an already-interned symbol id.
func NewStringConstant(idx int) *StringConstant {
	return &StringConstant{base: newBase(), Idx: idx}
}

// Clone returns a deep, independently-owned copy.
func (s *StringConstant) Clone() hornir.Argument {
	return &StringConstant{base: newBase(), Idx: s.Idx}
}

// Equal reports structural equality, ignoring SrcLoc.
func (s *StringConstant) Equal(other hornir.Node) bool {
	o, ok := other.(*StringConstant)
	return ok && o.Idx == s.Idx
}

// Children returns no subtrees: StringConstant is a leaf.
func (s *StringConstant) Children() []hornir.Node { return nil }

// Print resolves the interned text via syms and emits it double-quoted.
func (s *StringConstant) Print(w io.Writer, syms hornir.SymbolResolver) error {
	text, ok := syms.Resolve(s.Idx)
	if !ok {
		return hornir.ErrUnknownSymbol.New(s.Idx)
	}
	_, err := fmt.Fprintf(w, "%q", text)
	return err
}

// Rewrite is a no-op: StringConstant is a leaf.
func (s *StringConstant) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	return s, hornir.SameTree, nil
}

// NumericConstant is an integer literal.
type NumericConstant struct {
	base
	Value int64
}

var _ hornir.Argument = (*NumericConstant)(nil)

// NewNumericConstant builds a numeric constant.
func NewNumericConstant(value int64) *NumericConstant {
	return &NumericConstant{base: newBase(), Value: value}
}

// NewNumericConstantFrom coerces a loosely-typed literal value (as parser
// glue code commonly produces) into a numeric constant.
func NewNumericConstantFrom(value interface{}) (*NumericConstant, error) {
	v, err := cast.ToInt64E(value)
	if err != nil {
		return nil, err
	}
	return NewNumericConstant(v), nil
}

// Clone returns a deep, independently-owned copy.
func (n *NumericConstant) Clone() hornir.Argument {
	return &NumericConstant{base: newBase(), Value: n.Value}
}

// Equal reports structural equality, ignoring SrcLoc.
func (n *NumericConstant) Equal(other hornir.Node) bool {
	o, ok := other.(*NumericConstant)
	return ok && o.Value == n.Value
}

// Children returns no subtrees: NumericConstant is a leaf.
func (n *NumericConstant) Children() []hornir.Node { return nil }

// Print emits the value as a decimal integer.
func (n *NumericConstant) Print(w io.Writer, syms hornir.SymbolResolver) error {
	_, err := fmt.Fprintf(w, "%d", n.Value)
	return err
}

// Rewrite is a no-op: NumericConstant is a leaf.
func (n *NumericConstant) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	return n, hornir.SameTree, nil
}

// NilConstant is the record null value.
type NilConstant struct {
	base
}

var _ hornir.Argument = (*NilConstant)(nil)

// NewNilConstant builds the null value.
func NewNilConstant() *NilConstant {
	return &NilConstant{base: newBase()}
}

// Clone returns a deep, independently-owned copy.
func (n *NilConstant) Clone() hornir.Argument {
	return &NilConstant{base: newBase()}
}

// Equal reports structural equality, ignoring SrcLoc.
func (n *NilConstant) Equal(other hornir.Node) bool {
	_, ok := other.(*NilConstant)
	return ok
}

// Children returns no subtrees: NilConstant is a leaf.
func (n *NilConstant) Children() []hornir.Node { return nil }

// Print emits "-".
func (n *NilConstant) Print(w io.Writer, syms hornir.SymbolResolver) error {
	_, err := io.WriteString(w, "-")
	return err
}

// Rewrite is a no-op: NilConstant is a leaf.
func (n *NilConstant) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	return n, hornir.SameTree, nil
}
