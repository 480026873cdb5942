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

// Atom is a predicate applied to an ordered argument list, p(a1,...,an).
// The head's arity against its declared relation arity is enforced by the
// parser, not here.
type Atom struct {
	base
	Name hornir.QualifiedName
	Args []hornir.Argument
}

var _ hornir.Literal = (*Atom)(nil)

// NewAtom builds an atom.
func NewAtom(name hornir.QualifiedName, args ...hornir.Argument) *Atom {
	return &Atom{base: newBase(), Name: name, Args: args}
}

// Clone returns a deep, independently-owned copy.
func (a *Atom) Clone() hornir.Literal {
	return a.cloneAtom()
}

func (a *Atom) cloneAtom() *Atom {
	args := make([]hornir.Argument, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.Clone()
	}
	return &Atom{base: newBase(), Name: a.Name, Args: args}
}

// Equal reports structural equality, ignoring SrcLoc. Argument order is
// significant.
func (a *Atom) Equal(other hornir.Node) bool {
	o, ok := other.(*Atom)
	if !ok || !a.Name.Equal(o.Name) || len(a.Args) != len(o.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Children returns the argument list, in declaration order.
func (a *Atom) Children() []hornir.Node {
	out := make([]hornir.Node, len(a.Args))
	for i, arg := range a.Args {
		out[i] = arg
	}
	return out
}

// Print emits "name(arg,...)".
func (a *Atom) Print(w io.Writer, syms hornir.SymbolResolver) error {
	if _, err := io.WriteString(w, a.Name.String()+"("); err != nil {
		return err
	}
	for i, arg := range a.Args {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := arg.Print(w, syms); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}

// Rewrite replaces each argument slot via m, in place.
func (a *Atom) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	ti, err := rewriteArgs(a.Args, m)
	return a, ti, err
}

// Negation is a negated atom, !p(a1,...,an).
type Negation struct {
	base
	Atom *Atom
}

var _ hornir.Literal = (*Negation)(nil)

// NewNegation builds a negated atom.
func NewNegation(atom *Atom) *Negation {
	return &Negation{base: newBase(), Atom: atom}
}

// Clone returns a deep, independently-owned copy.
func (n *Negation) Clone() hornir.Literal {
	return &Negation{base: newBase(), Atom: n.Atom.cloneAtom()}
}

// Equal reports structural equality, ignoring SrcLoc.
func (n *Negation) Equal(other hornir.Node) bool {
	o, ok := other.(*Negation)
	return ok && n.Atom.Equal(o.Atom)
}

// Children returns the negated atom as the sole subtree.
func (n *Negation) Children() []hornir.Node {
	return []hornir.Node{n.Atom}
}

// Print emits "!atom".
func (n *Negation) Print(w io.Writer, syms hornir.SymbolResolver) error {
	if _, err := io.WriteString(w, "!"); err != nil {
		return err
	}
	return n.Atom.Print(w, syms)
}

// Rewrite replaces the negated atom via m, in place. If m returns a
// Literal that is not an *Atom, the tree is poisoned: a Negation's child
// slot is an atom by construction and a mapper must preserve that.
func (n *Negation) Rewrite(m hornir.Mapper) (hornir.Node, hornir.TreeIdentity, error) {
	newLit, ti, err := m.MapLiteral(n.Atom)
	if err != nil {
		return nil, hornir.SameTree, err
	}
	if ti == hornir.NewTree {
		newAtom, ok := newLit.(*Atom)
		if !ok {
			return nil, hornir.SameTree, hornir.ErrTreePoisoned.New("Negation child must remain an Atom")
		}
		n.Atom = newAtom
	}
	return n, ti, nil
}
