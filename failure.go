// Copyright 2025 The vanille-type Authors
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

package vtype

import (
	"strconv"
	"strings"
)

// Failure is one rejection recorded while checking a value.
//
// A leaf failure only has a Message. A composite failure also has Children:
// it comes from a validator that delegated to another [Type], and the
// children are that Type's own failures.
type Failure struct {
	Message  string    `json:"message"`            // Detail, or root text of a composite
	Path     string    `json:"path,omitempty"`     // Dotted path of a path-scoped validator
	Children []Failure `json:"children,omitempty"` // Nested failures
}

// Composite reports whether f has children.
func (f Failure) Composite() bool {
	return len(f.Children) > 0
}

// cloneFailures copies failures and their children, recursively.
func cloneFailures(failures []Failure) []Failure {
	if failures == nil {
		return nil
	}

	out := make([]Failure, len(failures))
	for i, f := range failures {
		f.Children = cloneFailures(f.Children)
		out[i] = f
	}

	return out
}

// report aggregates the failures of a single Type invocation.
// It is allocated per call and never shared.
type report struct {
	value    any
	failures []Failure
}

func newReport(value any) *report {
	return &report{value: value}
}

func (r *report) add(failures ...Failure) {
	r.failures = append(r.failures, failures...)
}

func (r *report) valid() bool {
	return len(r.failures) == 0
}

// toError renders the report into an [*Error].
func (r *report) toError(m messages) *Error {
	return &Error{
		subject:  r.value,
		failures: r.failures,
		message:  renderReport(m.typeError(r.value), r.failures),
	}
}

// renderReport joins the header and every failure line with a newline and a
// single tab. Depth shows only in the dotted index, never in the indentation.
func renderReport(header string, failures []Failure) string {
	lines := []string{header}
	for i, f := range failures {
		lines = renderFailure(lines, f, i, "")
	}

	return strings.Join(lines, "\n\t")
}

func renderFailure(lines []string, f Failure, index int, prefix string) []string {
	label := prefix + strconv.Itoa(index)
	line := label
	if f.Path != "" {
		line += " - " + f.Path
	}
	lines = append(lines, line+") "+f.Message)

	for j, child := range f.Children {
		lines = renderFailure(lines, child, j, label+".")
	}

	return lines
}
