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

// Variable is a named variable occurrence, e.g. X in p(X).
type Variable struct {
	base
	Name string
}

var _ hornir.Argument = (*Variable)(nil)

// NewVariable builds a named variable.
func NewVariable(name string) *Variable {
	return &Variable{base: newBase(), Name: name}
}

// Clone returns a deep, independently-owned copy.
func (v *Variable) Clone() hornir.Argument {
	return &Variable{base: newBase(), Name: v.Name}
}

// Equal reports structural equality, ignoring SrcLoc.
func (v *Variable) Equal(other hornir.Node) bool {
	o, ok := other.(*Variable)
	return ok && o.Name == v.Name
}

// Children returns no subtrees: Variable is a leaf.
func (v *Variable) Children() []hornir.Node { return nil }

// Print emits the variable's bare name.
func (v *Variable) Print(w io.Writer, syms hornir.SymbolResolver) error {
	_, err := io.WriteString(w, v.Name)
	return err
}

// Rewrite is a no-op: Variable is a leaf.
func (v *Variable) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	return v, hornir.SameTree, nil
}

// UnnamedVariable is the anonymous wildcard "_".
type UnnamedVariable struct {
	base
}

var _ hornir.Argument = (*UnnamedVariable)(nil)

// NewUnnamedVariable builds a wildcard variable.
func NewUnnamedVariable() *UnnamedVariable {
	return &UnnamedVariable{base: newBase()}
}

// Clone returns a deep, independently-owned copy.
func (u *UnnamedVariable) Clone() hornir.Argument {
	return &UnnamedVariable{base: newBase()}
}

// Equal reports structural equality, ignoring SrcLoc. All unnamed
// variables are structurally equal to one another; normalisation is what
// distinguishes separate occurrences.
func (u *UnnamedVariable) Equal(other hornir.Node) bool {
	_, ok := other.(*UnnamedVariable)
	return ok
}

// Children returns no subtrees: UnnamedVariable is a leaf.
func (u *UnnamedVariable) Children() []hornir.Node { return nil }

// Print emits "_".
func (u *UnnamedVariable) Print(w io.Writer, syms hornir.SymbolResolver) error {
	_, err := io.WriteString(w, "_")
	return err
}

// Rewrite is a no-op: UnnamedVariable is a leaf.
func (u *UnnamedVariable) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	return u, hornir.SameTree, nil
}

// Counter is the projection counter argument, printed as "$".
type Counter struct {
	base
}

var _ hornir.Argument = (*Counter)(nil)

// NewCounter builds a projection counter.
func NewCounter() *Counter {
	return &Counter{base: newBase()}
}

// Clone returns a deep, independently-owned copy.
func (c *Counter) Clone() hornir.Argument {
	return &Counter{base: newBase()}
}

// Equal reports structural equality, ignoring SrcLoc.
func (c *Counter) Equal(other hornir.Node) bool {
	_, ok := other.(*Counter)
	return ok
}

// Children returns no subtrees: Counter is a leaf.
func (c *Counter) Children() []hornir.Node { return nil }

// Print emits "$".
func (c *Counter) Print(w io.Writer, syms hornir.SymbolResolver) error {
	_, err := io.WriteString(w, "$")
	return err
}

// Rewrite is a no-op: Counter is a leaf.
func (c *Counter) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	return c, hornir.SameTree, nil
}
