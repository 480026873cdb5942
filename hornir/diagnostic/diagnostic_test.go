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

package diagnostic

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/hornirlang/hornir"
)

func TestWarnfDoesNotSetHasErrors(t *testing.T) {
	require := require.New(t)

	log, _ := test.NewNullLogger()
	sink := NewSink(log)
	sink.Warnf("resolve", hornir.NoLoc, "unused variable %s", "X")

	require.False(sink.HasErrors())
	require.Len(sink.Diagnostics(), 1)
	require.Equal(Warning, sink.Diagnostics()[0].Severity)
}

func TestErrorfSetsHasErrors(t *testing.T) {
	require := require.New(t)

	log, hook := test.NewNullLogger()
	sink := NewSink(log)
	sink.Errorf("normalize", hornir.NoLoc, "unbound variable %s", "Y")

	require.True(sink.HasErrors())
	require.Len(hook.Entries, 1)
	require.Equal(logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestDiagnosticsPreservesReportOrder(t *testing.T) {
	require := require.New(t)

	log, _ := test.NewNullLogger()
	sink := NewSink(log)
	sink.Warnf("a", hornir.NoLoc, "first")
	sink.Errorf("b", hornir.NoLoc, "second")

	ds := sink.Diagnostics()
	require.Equal("first", ds[0].Message)
	require.Equal("second", ds[1].Message)
}
