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

// Package stringify renders arbitrary Go values as the short, deterministic,
// single-line strings used in validation messages.
//
// # Rules
//
// A [Printer] renders values with these rules, in order:
//
//   - nil renders as "nil"
//   - strings are quoted with [strconv.Quote]
//   - values implementing [fmt.Stringer] render through String
//   - functions render as func[<symbol>], optionally with their source location
//   - everything else goes through the configured [Formatter] ([Spew] by default)
//
// # Formatters
//
// Two formatters ship with the package: [Spew], backed by go-spew with sorted
// map keys and without pointer addresses, and [YAML], a single-line YAML flow
// rendering backed by gopkg.in/yaml.v3. A formatter that fails falls back to
// [Spew].
//
//	p := stringify.New(stringify.WithFormatter(stringify.YAML))
//	p.Stringify(map[string]int{"b": 2, "a": 1}) // {a: 1, b: 2}
//
// The package-level [Stringify] uses [Default] and accepts an optional formatter:
//
//	stringify.Stringify([]int{1, 2})               // [1 2]
//	stringify.Stringify([]int{1, 2}, stringify.YAML) // [1, 2]
//
// # Cycles
//
// Circular pointers are marked <shown> by go-spew. Maps and slices that reach
// themselves make both formatters fail; a [Printer] then renders them with
// go-spew down to a bounded depth, marked <max>.
package stringify
