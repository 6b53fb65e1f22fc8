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
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Symbol is a path fragment that only equals itself, for map keys that must
// not collide with any string.
type Symbol struct {
	description string
}

// NewSymbol returns a new, unique [Symbol].
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// String returns "Symbol(description)".
func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

// PathFragment reports whether v can be used as a path fragment: a string,
// a [*Symbol], an integer, or a float that is not NaN.
func PathFragment(v any) bool {
	switch x := v.(type) {
	case string:
		return true
	case *Symbol:
		return x != nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	case float32:
		return !math.IsNaN(float64(x))
	case float64:
		return !math.IsNaN(x)
	}

	return false
}

// PathFragmentType accepts the values accepted by [PathFragment].
var PathFragmentType = MustCompose(PathFragment)

// PathComposer composes validators into a path-scoped [Type].
// It is returned by [Path] and [Composer.Path].
type PathComposer func(validators ...any) (*Type, error)

// Path returns a [PathComposer] building Types, with the default composer,
// that validate value[f0][f1]... instead of the value itself.
//
// Example:
//
//	NamedUser, err := vtype.Path("name")(validators.String)
func Path(fragments ...any) PathComposer {
	return defaultComposer().Path(fragments...)
}

// Path is like the package-level [Path] for c.
func (c *Composer) Path(fragments ...any) PathComposer {
	return func(validators ...any) (*Type, error) {
		t, err := c.Compose(validators...)
		if err != nil {
			return nil, err
		}

		return t.Path(fragments...)
	}
}

// Path returns a copy of t that validates value[f0][f1]... instead of the
// value itself. Failures are labelled with the dotted path, e.g. "0 - a.b)".
// Calling Path on a scoped Type appends to its path.
//
// Path returns an [*Error] for the first fragment rejected by
// [PathFragmentType].
func (t *Type) Path(fragments ...any) (*Type, error) {
	for _, f := range fragments {
		if _, err := PathFragmentType.Check(f); err != nil {
			return nil, err
		}
	}

	path := make([]any, 0, len(t.path)+len(fragments))
	path = append(path, t.path...)
	path = append(path, fragments...)

	return &Type{
		name:     t.name,
		composer: t.composer,
		sources:  t.sources,
		base:     t.base,
		path:     path,
		entries:  scope(t.base, path),
	}, nil
}

// scope makes every entry run on the value found at path.
func scope(base []entry, path []any) []entry {
	if len(path) == 0 {
		return base
	}

	label := pathLabel(path)
	scoped := make([]entry, len(base))
	for i, e := range base {
		e.path = path
		e.label = label
		scoped[i] = e
	}

	return scoped
}

// pathLabel joins fragments with dots.
func pathLabel(path []any) string {
	parts := make([]string, len(path))
	for i, f := range path {
		switch x := f.(type) {
		case string:
			parts[i] = x
		case *Symbol:
			parts[i] = x.String()
		default:
			parts[i] = fmt.Sprint(x)
		}
	}

	return strings.Join(parts, ".")
}

// Navigate returns value[f0][f1]...
//
// Pointers and interfaces are followed. Maps are indexed by the fragment
// converted to their key type, structs by field name then by json tag name,
// slices and arrays by integer index, strings by rune index (yielding a
// one-rune string). A missing key, field or index yields nil. Navigating through nil or a scalar returns an error
// wrapping [ErrInvalidPath].
func Navigate(value any, fragments ...any) (any, error) {
	current := value
	for i, f := range fragments {
		next, err := step(current, f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, pathLabel(fragments[:i+1]), err)
		}
		current = next
	}

	return current, nil
}

func step(value, fragment any) (any, error) {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil, fmt.Errorf("cannot read %s of nil", pathLabel([]any{fragment}))
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, fmt.Errorf("cannot read %s of nil", pathLabel([]any{fragment}))
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		key, ok := mapKey(fragment, rv.Type().Key())
		if !ok {
			return nil, nil
		}
		return interfaceOf(rv.MapIndex(key)), nil

	case reflect.Struct:
		name, ok := fragment.(string)
		if !ok {
			return nil, nil
		}
		field, err := structField(rv, name)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s of nil", name)
		}
		return interfaceOf(field), nil

	case reflect.String:
		runes := []rune(rv.String())
		idx, ok := index(fragment)
		if !ok || idx < 0 || idx >= len(runes) {
			return nil, nil
		}
		return string(runes[idx]), nil

	case reflect.Slice, reflect.Array:
		idx, ok := index(fragment)
		if !ok || idx < 0 || idx >= rv.Len() {
			return nil, nil
		}
		return interfaceOf(rv.Index(idx)), nil
	}

	return nil, fmt.Errorf("cannot read %s of %s", pathLabel([]any{fragment}), rv.Type())
}

func interfaceOf(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}

	return v.Interface()
}

func mapKey(fragment any, keyType reflect.Type) (reflect.Value, bool) {
	fv := reflect.ValueOf(fragment)
	if fv.Type().AssignableTo(keyType) {
		return fv, true
	}

	switch {
	case fv.Kind() == reflect.String && keyType.Kind() == reflect.String:
		return fv.Convert(keyType), true
	case isNumber(fv.Kind()) && isNumber(keyType.Kind()):
		key := fv.Convert(keyType)
		if !key.Convert(fv.Type()).Equal(fv) {
			return reflect.Value{}, false
		}
		return key, true
	}

	return reflect.Value{}, false
}

func isNumber(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Uintptr) || k == reflect.Float32 || k == reflect.Float64
}

// structField returns an error when name is promoted through a nil embedded pointer.
func structField(rv reflect.Value, name string) (reflect.Value, error) {
	rt := rv.Type()
	if f, ok := rt.FieldByName(name); ok && f.IsExported() {
		return rv.FieldByIndexErr(f.Index)
	}

	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name {
			return rv.Field(i), nil
		}
	}

	return reflect.Value{}, nil
}

// index converts an integral numeric fragment to an int.
func index(fragment any) (int, bool) {
	fv := reflect.ValueOf(fragment)
	switch {
	case fv.CanInt():
		return int(fv.Int()), true
	case fv.CanUint():
		u := fv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case fv.CanFloat():
		f := fv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	case fv.Kind() == reflect.String:
		// "0" indexes like 0, as a JS property key would
		i, err := strconv.Atoi(fv.String())
		return i, err == nil
	}

	return 0, false
}
