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

// IntrinsicFunctor applies a built-in FunctorOp to an ordered argument
// list. Arity is fixed by op; mismatched arity is a fatal invariant
// violation raised at construction.
type IntrinsicFunctor struct {
	base
	Op   hornir.FunctorOp
	Args []hornir.Argument
}

var _ hornir.Argument = (*IntrinsicFunctor)(nil)

// NewIntrinsicFunctor builds an intrinsic functor application. Panics with
// hornir.ErrArityMismatch if len(args) does not match op's fixed arity --
// this is a compiler bug, not user input, per the core's error taxonomy.
func NewIntrinsicFunctor(op hornir.FunctorOp, args ...hornir.Argument) *IntrinsicFunctor {
	if want := op.Arity(); len(args) != want {
		panic(hornir.ErrArityMismatch.New(op.Name(), want, len(args)))
	}
	return &IntrinsicFunctor{base: newBase(), Op: op, Args: args}
}

// Clone returns a deep, independently-owned copy.
func (f *IntrinsicFunctor) Clone() hornir.Argument {
	args := make([]hornir.Argument, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Clone()
	}
	return &IntrinsicFunctor{base: newBase(), Op: f.Op, Args: args}
}

// Equal reports structural equality, ignoring SrcLoc. Argument order is
// significant.
func (f *IntrinsicFunctor) Equal(other hornir.Node) bool {
	o, ok := other.(*IntrinsicFunctor)
	if !ok || o.Op != f.Op || len(o.Args) != len(f.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Children returns the argument list, in declaration order.
func (f *IntrinsicFunctor) Children() []hornir.Node {
	out := make([]hornir.Node, len(f.Args))
	for i, a := range f.Args {
		out[i] = a
	}
	return out
}

// Print emits "(lhs op rhs)" for binary ops with an infix symbol, or
// "op(arg,...)" otherwise.
func (f *IntrinsicFunctor) Print(w io.Writer, syms hornir.SymbolResolver) error {
	if infix := f.Op.Infix(); infix != "" && len(f.Args) == 2 {
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		if err := f.Args[0].Print(w, syms); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "+infix+" "); err != nil {
			return err
		}
		if err := f.Args[1].Print(w, syms); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	}
	return printCall(w, syms, f.Op.Name(), f.Args)
}

// Rewrite replaces each argument slot via m, in place, preserving op and
// arity.
func (f *IntrinsicFunctor) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	ti, err := rewriteArgs(f.Args, m)
	return f, ti, err
}

func printCall(w io.Writer, syms hornir.SymbolResolver, name string, args []hornir.Argument) error {
	if _, err := io.WriteString(w, name+"("); err != nil {
		return err
	}
	for i, a := range args {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := a.Print(w, syms); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}

// UserFunctor applies a user-defined functor to an ordered argument list.
type UserFunctor struct {
	base
	Name string
	Args []hornir.Argument
}

var _ hornir.Argument = (*UserFunctor)(nil)

// NewUserFunctor builds a user functor application.
func NewUserFunctor(name string, args ...hornir.Argument) *UserFunctor {
	return &UserFunctor{base: newBase(), Name: name, Args: args}
}

// Clone returns a deep, independently-owned copy.
func (f *UserFunctor) Clone() hornir.Argument {
	args := make([]hornir.Argument, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Clone()
	}
	return &UserFunctor{base: newBase(), Name: f.Name, Args: args}
}

// Equal reports structural equality, ignoring SrcLoc. Argument order is
// significant.
func (f *UserFunctor) Equal(other hornir.Node) bool {
	o, ok := other.(*UserFunctor)
	if !ok || o.Name != f.Name || len(o.Args) != len(f.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Children returns the argument list, in declaration order.
func (f *UserFunctor) Children() []hornir.Node {
	out := make([]hornir.Node, len(f.Args))
	for i, a := range f.Args {
		out[i] = a
	}
	return out
}

// Print emits "@name(arg,...)".
func (f *UserFunctor) Print(w io.Writer, syms hornir.SymbolResolver) error {
	return printCall(w, syms, "@"+f.Name, f.Args)
}

// Rewrite replaces each argument slot via m, in place.
func (f *UserFunctor) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	ti, err := rewriteArgs(f.Args, m)
	return f, ti, err
}
