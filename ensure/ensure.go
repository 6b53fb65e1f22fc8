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

package ensure

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	vtype "github.com/AlexisTessier/vanille-type"
	"github.com/AlexisTessier/vanille-type/validators"
)

// Fixture gives a valid value and invalid values of a Type.
type Fixture struct {
	Type     *vtype.Type
	Valid    any
	Invalids []any
}

// Checker calls functions with invalid arguments. See the package documentation.
type Checker struct {
	fixtures map[*vtype.Type]Fixture
}

// New creates a [Checker] from fixtures. A later fixture for the same Type
// replaces an earlier one.
//
// New returns an error wrapping [ErrInvalidFixture] if a fixture has no Type,
// if its valid value is rejected by its Type, or if one of its invalid values
// is accepted.
func New(fixtures ...Fixture) (*Checker, error) {
	c := &Checker{fixtures: make(map[*vtype.Type]Fixture, len(fixtures))}

	for i, f := range fixtures {
		if f.Type == nil {
			return nil, fmt.Errorf("%w: fixture %d has no type", ErrInvalidFixture, i)
		}
		if _, err := f.Type.Check(f.Valid); err != nil {
			return nil, fmt.Errorf("%w: fixture %d: valid value rejected: %w", ErrInvalidFixture, i, err)
		}
		for _, v := range f.Invalids {
			if f.Type.Is(v) {
				return nil, fmt.Errorf("%w: fixture %d: invalid value %#v accepted by %s", ErrInvalidFixture, i, v, f.Type)
			}
		}
		c.fixtures[f.Type] = f
	}

	return c, nil
}

// MustNew creates a [Checker] from fixtures.
// Panics if the fixtures are inconsistent.
func MustNew(fixtures ...Fixture) *Checker {
	c, err := New(fixtures...)
	if err != nil {
		panic(fmt.Sprintf("ensure.MustNew: %v", err))
	}

	return c
}

// Defaults returns fixtures for the Types of the validators package.
//
// Example:
//
//	checker := ensure.MustNew(append(ensure.Defaults(), myFixtures...)...)
func Defaults() []Fixture {
	return []Fixture{
		{Type: validators.String, Valid: "value", Invalids: []any{nil, 42, true, []any{}, map[string]any{}}},
		{Type: validators.Bool, Valid: true, Invalids: []any{nil, 0, "true", []any{}}},
		{Type: validators.Int, Valid: 42, Invalids: []any{nil, "42", 4.2, uint(1), true}},
		{Type: validators.Number, Valid: 4.2, Invalids: []any{nil, "4.2", true, []any{}}},
		{Type: validators.Slice, Valid: []any{"value"}, Invalids: []any{nil, "value", map[string]any{}}},
		{Type: validators.Map, Valid: map[string]any{"key": "value"}, Invalids: []any{nil, "value", []any{}}},
		{Type: validators.Func, Valid: func() {}, Invalids: []any{nil, "func", 42}},
		{Type: vtype.PathFragmentType, Valid: "key", Invalids: validators.PathFragmentInvalidList},
	}
}

// Check calls fn once for every invalid value of every argument, the other
// arguments being valid, and returns a [*MissingCheckError] for the first
// call fn does not reject.
//
// fn must be a function taking one argument per Type of signature. A call is
// rejected when fn panics or when its last result is a non-nil error. An
// invalid value that cannot be passed to the parameter at all counts as
// rejected.
func (c *Checker) Check(fn any, signature ...*vtype.Type) error {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return fmt.Errorf("%w: %T is not a function", ErrInvalidFunction, fn)
	}
	rt := rv.Type()
	if rt.IsVariadic() || rt.NumIn() != len(signature) {
		return fmt.Errorf("%w: %s does not take %d arguments", ErrInvalidFunction, rt, len(signature))
	}

	valid := make([]reflect.Value, len(signature))
	for i, t := range signature {
		f, ok := c.fixtures[t]
		if !ok {
			return fmt.Errorf("%w: argument %d: %s", ErrUnknownType, i, t)
		}
		arg, ok := argument(f.Valid, rt.In(i))
		if !ok {
			return fmt.Errorf("%w: valid value of %s cannot be passed as argument %d (%s)", ErrInvalidFunction, t, i, rt.In(i))
		}
		valid[i] = arg
	}

	for i, t := range signature {
		for _, invalid := range c.fixtures[t].Invalids {
			arg, ok := argument(invalid, rt.In(i))
			if !ok {
				continue
			}

			args := make([]reflect.Value, len(valid))
			copy(args, valid)
			args[i] = arg

			if !rejects(rv, args) {
				return &MissingCheckError{Func: fn, Index: i, Type: t, Value: invalid}
			}
		}
	}

	return nil
}

// Require is like [Checker.Check] but fails the test on error.
func (c *Checker) Require(t testing.TB, fn any, signature ...*vtype.Type) {
	t.Helper()
	require.NoError(t, c.Check(fn, signature...))
}

// rejects calls fn and reports whether it panicked or returned a trailing error.
func rejects(fn reflect.Value, args []reflect.Value) (rejected bool) {
	defer func() {
		if recover() != nil {
			rejected = true
		}
	}()

	outs := fn.Call(args)
	if len(outs) == 0 {
		return false
	}

	last := outs[len(outs)-1]
	if !last.Type().Implements(errorType) {
		return false
	}

	switch last.Kind() {
	case reflect.Interface, reflect.Pointer:
		return !last.IsNil()
	}

	return true
}

var errorType = reflect.TypeFor[error]()

// argument converts v to a value of type in, reporting whether it can be passed.
func argument(v any, in reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch in.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(in), true
		}
		return reflect.Value{}, false
	}

	av := reflect.ValueOf(v)
	if !av.Type().AssignableTo(in) {
		return reflect.Value{}, false
	}

	return av, true
}
