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

import "strings"

// QualifiedName is an ordered sequence of identifier components, e.g. a
// relation name, component-qualified predicate, or resolved type name.
type QualifiedName struct {
	parts []string
}

// NewQualifiedName builds a name from its components in order.
func NewQualifiedName(parts ...string) QualifiedName {
	cp := make([]string, len(parts))
	copy(cp, parts)
	return QualifiedName{parts: cp}
}

// Parts returns a read-only borrow of the name's components.
func (q QualifiedName) Parts() []string {
	return q.parts
}

// Prepend returns a new name with part inserted at the front.
func (q QualifiedName) Prepend(part string) QualifiedName {
	parts := make([]string, 0, len(q.parts)+1)
	parts = append(parts, part)
	parts = append(parts, q.parts...)
	return QualifiedName{parts: parts}
}

// Append returns a new name with part inserted at the back.
func (q QualifiedName) Append(part string) QualifiedName {
	parts := make([]string, 0, len(q.parts)+1)
	parts = append(parts, q.parts...)
	parts = append(parts, part)
	return QualifiedName{parts: parts}
}

// Equal reports sequence equality.
func (q QualifiedName) Equal(other QualifiedName) bool {
	if len(q.parts) != len(other.parts) {
		return false
	}
	for i := range q.parts {
		if q.parts[i] != other.parts[i] {
			return false
		}
	}
	return true
}

// String joins the components with ".", the surface-syntax form.
func (q QualifiedName) String() string {
	return strings.Join(q.parts, ".")
}
