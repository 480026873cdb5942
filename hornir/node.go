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

package hornir

import (
	"io"

	uuid "github.com/satori/go.uuid"
)

// NodeID stamps every AstNode at construction. Clones get a fresh id: a
// clone is a distinct node, not an alias of the original.
type NodeID uuid.UUID

// NewNodeID mints a fresh identifier. Every concrete node constructor calls
// this once, never copies an existing id.
func NewNodeID() NodeID {
	return NodeID(uuid.NewV4())
}

// String renders the id for diagnostic output.
func (id NodeID) String() string {
	return uuid.UUID(id).String()
}

// SymbolResolver turns an interned string id back into its text. Passed to
// print so StringConstant nodes can render their backing text without
// embedding a table reference in every constant node.
type SymbolResolver interface {
	Resolve(id int) (string, bool)
}

// SymbolTable is the bidirectional string<->id interning service the core
// consumes from the symbol-table collaborator. Monotonic: once assigned, an
// id is permanent for the program's lifetime. Append-only: reads never
// invalidate previously-returned ids.
type SymbolTable interface {
	SymbolResolver
	Intern(s string) int
}

// TreeIdentity reports whether a rewrite produced the same tree (by
// identity) or a new one, so a pass can skip re-allocating an unchanged
// ancestor chain.
type TreeIdentity bool

const (
	// SameTree means the rewrite left the (sub)tree unchanged.
	SameTree TreeIdentity = false
	// NewTree means the rewrite produced a different (sub)tree.
	NewTree TreeIdentity = true
)

// Mapper is the polymorphic callable the node-rewrite protocol applies to
// each direct child slot. A child slot holds either an Argument or a
// Literal (Aggregator bodies mix both kinds under one parent), so a Mapper
// exposes one method per kind; a pass that only cares about one kind
// implements the other as a same-tree no-op.
type Mapper interface {
	// MapArgument is invoked once per direct Argument child slot. It owns
	// the old child and returns an owning replacement (possibly the same
	// subtree) plus whether the slot actually changed.
	MapArgument(Argument) (Argument, TreeIdentity, error)
	// MapLiteral is invoked once per direct Literal child slot.
	MapLiteral(Literal) (Literal, TreeIdentity, error)
}

// Node is the uniform contract every AST node variant (Argument and
// Literal alike) satisfies. Generic visitors, the mapper protocol, and the
// clause normaliser all operate only through this interface plus the
// narrower Argument/Literal interfaces that embed it.
type Node interface {
	// ID returns the node's identity, distinct from every clone.
	ID() NodeID
	// Loc returns the node's source span.
	Loc() SrcLoc
	// SetLoc updates the node's source span in place.
	SetLoc(SrcLoc)
	// Equal reports structural equality with other, ignoring SrcLoc.
	// Two nodes of different concrete variants are never equal.
	Equal(other Node) bool
	// Children enumerates this node's direct subtrees, in declaration
	// order. The returned slice is a read-only borrow: mutating it does
	// not affect the node.
	Children() []Node
	// Print renders the node in parse-compatible surface syntax.
	Print(w io.Writer, syms SymbolResolver) error
	// Rewrite applies m to each of this node's direct child slots,
	// replacing that slot with m's output, and returns a node of the same
	// concrete variant. Leaf nodes implement this as a no-op returning
	// themselves and SameTree. Recursion into grandchildren is m's
	// responsibility; a node rewrites only its immediate slots.
	Rewrite(m Mapper) (Node, TreeIdentity, error)
}

// Argument is the closed family of expression nodes: variables, constants,
// functors, records, casts, aggregates, subroutine arguments.
type Argument interface {
	Node
	// Clone returns a deep, independently-owned copy.
	Clone() Argument
}

// Literal is the closed family of clause-body constructs: atoms,
// negations, binary constraints.
type Literal interface {
	Node
	// Clone returns a deep, independently-owned copy.
	Clone() Literal
}
