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

package validators

import (
	"errors"
	"math"
	"regexp"

	vtype "github.com/AlexisTessier/vanille-type"
)

// PathFragmentValidList holds values accepted by [vtype.PathFragment],
// for use as test fixtures.
var PathFragmentValidList = []any{
	"",
	"key",
	"a.b",
	0,
	42,
	-1,
	int8(3),
	uint(7),
	uint64(1 << 40),
	3.14,
	float32(0.5),
	math.Inf(1),
	vtype.NewSymbol("fragment"),
}

// PathFragmentInvalidList holds values rejected by [vtype.PathFragment],
// for use as test fixtures.
var PathFragmentInvalidList = []any{
	nil,
	func() {},
	map[string]any{},
	map[string]any{"key": "value"},
	[]any{},
	[]any{"value", 42},
	struct{}{},
	regexp.MustCompile("regex"),
	errors.New("error"),
	math.NaN(),
	float32(math.NaN()),
	true,
	false,
	(*vtype.Symbol)(nil),
}
