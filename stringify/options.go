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

package stringify

// config holds internal configuration used by [Printer].
type config struct {
	formatter Formatter
	source    bool
	maxDepth  int
}

// Option is a functional option for configuring a [Printer].
type Option func(*config)

// WithFormatter sets the [Formatter] used for values that are not nil,
// strings, Stringers or functions. A nil formatter keeps [Spew].
//
// Example:
//
//	p := stringify.New(stringify.WithFormatter(stringify.YAML))
func WithFormatter(f Formatter) Option {
	return func(c *config) {
		c.formatter = f
	}
}

// WithSource appends the source location of functions to their rendering,
// e.g. func[vtype_test.isEven @ type_test.go:42].
func WithSource(enabled bool) Option {
	return func(c *config) {
		c.source = enabled
	}
}

// WithMaxDepth limits how deep the default formatter descends into nested
// values. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}
