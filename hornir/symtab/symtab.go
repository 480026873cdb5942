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

// Package symtab implements the bidirectional string<->id interning
// service the core AST consumes as an external collaborator (hornir.SymbolTable).
package symtab

import (
	"sync"

	"github.com/hornirlang/hornir"
)

// Table is a process-wide, append-only interning table. Its lifetime must
// span every StringConstant node built against it. Reads never invalidate
// previously-returned ids.
type Table struct {
	mu      sync.RWMutex
	byID    []string
	byValue map[string]int
}

var _ hornir.SymbolTable = (*Table)(nil)

// New returns an empty symbol table.
func New() *Table {
	return &Table{byValue: make(map[string]int)}
}

// Intern returns s's stable id, assigning a fresh one on first sight.
// Monotonic: once assigned, an id is permanent for the table's lifetime.
func (t *Table) Intern(s string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.byValue[s]; ok {
		return id
	}
	id := len(t.byID)
	t.byID = append(t.byID, s)
	t.byValue[s] = id
	return id
}

// Resolve returns the string previously interned under id, if any.
func (t *Table) Resolve(id int) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if id < 0 || id >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

// MustResolve resolves id or raises hornir.ErrUnknownSymbol. Used by
// collaborators for which an unresolved id is a fatal compiler bug, per
// the core's error taxonomy (category 4, symbol-table misuse).
func (t *Table) MustResolve(id int) string {
	s, ok := t.Resolve(id)
	if !ok {
		panic(hornir.ErrUnknownSymbol.New(id))
	}
	return s
}

// Len reports the number of distinct strings interned so far.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}
