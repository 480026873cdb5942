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

package symtab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternIsIdempotent(t *testing.T) {
	require := require.New(t)

	tab := New()
	id1 := tab.Intern("alice")
	id2 := tab.Intern("alice")
	id3 := tab.Intern("bob")

	require.Equal(id1, id2)
	require.NotEqual(id1, id3)
	require.Equal(2, tab.Len())
}

func TestResolveRoundTrips(t *testing.T) {
	require := require.New(t)

	tab := New()
	id := tab.Intern("hello")

	s, ok := tab.Resolve(id)
	require.True(ok)
	require.Equal("hello", s)
}

func TestResolveUnknownID(t *testing.T) {
	require := require.New(t)

	tab := New()
	_, ok := tab.Resolve(42)
	require.False(ok)
}

func TestMustResolvePanicsOnUnknown(t *testing.T) {
	tab := New()
	require.Panics(t, func() { tab.MustResolve(0) })
}
