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

// Clause is a deduction rule: a head atom entailed by a conjunction of
// body literals, H :- B1, ..., Bn. Body order is semantically irrelevant
// to execution but preserved as authored.
//
// A Clause is the unit of analyzer.Registry identity: clauses are
// compared by pointer, never by value, so two structurally-identical
// Clause pointers are still distinct analysis subjects.
type Clause struct {
	id   hornir.NodeID
	loc  hornir.SrcLoc
	Head *Atom
	Body []hornir.Literal
}

// NewClause builds a clause.
func NewClause(head *Atom, body ...hornir.Literal) *Clause {
	return &Clause{id: hornir.NewNodeID(), Head: head, Body: body}
}

// ID returns the clause's identity, distinct from every clone.
func (c *Clause) ID() hornir.NodeID { return c.id }

// Loc returns the clause's source span.
func (c *Clause) Loc() hornir.SrcLoc { return c.loc }

// SetLoc updates the clause's source span in place.
func (c *Clause) SetLoc(loc hornir.SrcLoc) { c.loc = loc }

// Clone returns a deep, independently-owned copy with a fresh identity.
func (c *Clause) Clone() *Clause {
	body := make([]hornir.Literal, len(c.Body))
	for i, l := range c.Body {
		body[i] = l.Clone()
	}
	return &Clause{id: hornir.NewNodeID(), loc: c.loc, Head: c.Head.cloneAtom(), Body: body}
}

// Equal reports structural equality, ignoring SrcLoc and identity. Body
// order is significant here; use normalize.Normalise to compare clauses
// up to body-literal reordering.
func (c *Clause) Equal(other *Clause) bool {
	if other == nil || !c.Head.Equal(other.Head) || len(c.Body) != len(other.Body) {
		return false
	}
	for i := range c.Body {
		if !c.Body[i].Equal(other.Body[i]) {
			return false
		}
	}
	return true
}

// Print emits "head :- body1, body2." (or "head." with an empty body).
func (c *Clause) Print(w io.Writer, syms hornir.SymbolResolver) error {
	if err := c.Head.Print(w, syms); err != nil {
		return err
	}
	if len(c.Body) == 0 {
		_, err := io.WriteString(w, ".")
		return err
	}
	if _, err := io.WriteString(w, " :- "); err != nil {
		return err
	}
	for i, l := range c.Body {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if err := l.Print(w, syms); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ".")
	return err
}

// RewriteBody applies m to the clause's direct child slots -- the head
// atom and each body literal -- in place, mirroring the per-node rewrite
// contract at the clause level so a whole-tree transform can enter through
// a Clause the same way it enters through any Argument or Literal.
func (c *Clause) RewriteBody(m hornir.Mapper) (hornir.TreeIdentity, error) {
	changed := hornir.SameTree

	newHead, ti, err := m.MapLiteral(c.Head)
	if err != nil {
		return hornir.SameTree, err
	}
	if ti == hornir.NewTree {
		head, ok := newHead.(*Atom)
		if !ok {
			return hornir.SameTree, hornir.ErrTreePoisoned.New("clause head must remain an Atom")
		}
		changed = hornir.NewTree
		c.Head = head
	}

	for i, l := range c.Body {
		newLit, ti, err := m.MapLiteral(l)
		if err != nil {
			return hornir.SameTree, err
		}
		if ti == hornir.NewTree {
			changed = hornir.NewTree
			c.Body[i] = newLit
		}
	}

	return changed, nil
}

// Program is a parsed translation unit: a collection of clauses plus the
// type/relation/component declarations the parser attaches. Only Clauses
// is consumed by the normaliser and registry; the rest is carried as an
// opaque placeholder, out of this core's scope per its purpose statement.
type Program struct {
	Clauses       []*Clause
	TypeDecls     []interface{}
	RelationDecls []interface{}
	Components    []interface{}

	// Symbols is a weak, read-only back-reference: a relation, never
	// ownership. The program outlives every StringConstant built against
	// this table.
	Symbols hornir.SymbolTable
}

// NewProgram builds an empty program backed by syms.
func NewProgram(syms hornir.SymbolTable) *Program {
	return &Program{Symbols: syms}
}

// AddClause appends a clause to the program, taking ownership of it.
func (p *Program) AddClause(c *Clause) {
	p.Clauses = append(p.Clauses, c)
}
