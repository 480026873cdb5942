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

// Package diagnostic collects the errors and warnings a compilation pass
// raises against source locations, and logs them through logrus the way
// auth.AuditLog logs audit trails.
package diagnostic

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hornirlang/hornir"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is one pass-reported finding, tied to the source location it
// was raised against.
type Diagnostic struct {
	Severity Severity
	Loc      hornir.SrcLoc
	Pass     string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: [%s] %s", d.Loc, d.Severity, d.Pass, d.Message)
}

// Sink accumulates diagnostics raised over the course of one or more
// passes and logs each as it arrives. A Sink is not scoped to a single
// translation unit the way analyzer.Registry is: passes may share one
// Sink across an entire compilation.
type Sink struct {
	log   *logrus.Entry
	items []Diagnostic
}

// NewSink builds a Sink that logs through l, tagged system="diagnostic".
// A nil l defaults to logrus.StandardLogger().
func NewSink(l *logrus.Logger) *Sink {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Sink{log: l.WithField("system", "diagnostic")}
}

// Warnf records a Warning-severity diagnostic raised by pass at loc.
func (s *Sink) Warnf(pass string, loc hornir.SrcLoc, format string, args ...interface{}) {
	s.record(Diagnostic{Severity: Warning, Loc: loc, Pass: pass, Message: fmt.Sprintf(format, args...)})
}

// Errorf records an Error-severity diagnostic raised by pass at loc.
func (s *Sink) Errorf(pass string, loc hornir.SrcLoc, format string, args ...interface{}) {
	s.record(Diagnostic{Severity: Error, Loc: loc, Pass: pass, Message: fmt.Sprintf(format, args...)})
}

func (s *Sink) record(d Diagnostic) {
	s.items = append(s.items, d)

	fields := logrus.Fields{
		"pass":     d.Pass,
		"loc":      d.Loc.String(),
		"severity": d.Severity.String(),
	}
	entry := s.log.WithFields(fields)
	if d.Severity == Error {
		entry.Error(d.Message)
	} else {
		entry.Warn(d.Message)
	}
}

// Diagnostics returns every diagnostic recorded so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	return out
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
