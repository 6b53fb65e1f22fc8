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

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// newSpewConfig returns the go-spew configuration behind [Spew]:
// sorted map keys, no pointer addresses, no capacities.
func newSpewConfig() *spew.ConfigState {
	return &spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
}

var spewConfig = newSpewConfig()

// Spew renders value on a single line with go-spew.
// Map keys are sorted so the output is deterministic. Circular maps and
// slices are reported as an error.
func Spew(value any) (string, error) {
	if cyclic(reflect.ValueOf(value), map[visit]bool{}) {
		return "", errCycle
	}

	return spewConfig.Sprintf("%+v", value), nil
}

// YAML renders value as single-line YAML in flow style.
// Values yaml.v3 cannot encode, such as functions and channels, are errors.
//
// Example:
//
//	stringify.YAML(map[string]any{"b": []int{1, 2}, "a": "x"}) // {a: x, b: [1, 2]}
func YAML(value any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("stringify: yaml: %v", r)
		}
	}()

	if cyclic(reflect.ValueOf(value), map[visit]bool{}) {
		return "", errCycle
	}

	var node yaml.Node
	if err := node.Encode(value); err != nil {
		return "", err
	}
	setFlowStyle(&node)

	data, err := yaml.Marshal(&node)
	if err != nil {
		return "", err
	}

	return oneLine(string(data)), nil
}

var errCycle = errors.New("stringify: circular reference")

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// cyclic reports whether v reaches itself through pointers, maps or slices.
// seen holds the containers on the current walk only, so shared
// non-circular references are not reported.
func cyclic(v reflect.Value, seen map[visit]bool) bool {
	switch v.Kind() {
	case reflect.Interface:
		return !v.IsNil() && cyclic(v.Elem(), seen)

	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if v.Kind() != reflect.Slice || v.Len() > 0 {
			if seen[key] {
				return true
			}
			seen[key] = true
			defer delete(seen, key)
		}

		switch v.Kind() {
		case reflect.Pointer:
			return cyclic(v.Elem(), seen)
		case reflect.Map:
			iter := v.MapRange()
			for iter.Next() {
				if cyclic(iter.Value(), seen) {
					return true
				}
			}
		default:
			for i := range v.Len() {
				if cyclic(v.Index(i), seen) {
					return true
				}
			}
		}

	case reflect.Array:
		for i := range v.Len() {
			if cyclic(v.Index(i), seen) {
				return true
			}
		}

	case reflect.Struct:
		for i := range v.NumField() {
			if cyclic(v.Field(i), seen) {
				return true
			}
		}
	}

	return false
}

func setFlowStyle(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, child := range n.Content {
		setFlowStyle(child)
	}
}

// oneLine joins wrapped lines back into a single line.
func oneLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, " ")
}
