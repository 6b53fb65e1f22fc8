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
	"reflect"

	"github.com/AlexisTessier/vanille-type/stringify"
)

// Validator is a leaf validator: it reports whether value is acceptable, or
// returns an error explaining why it is not.
//
// A non-nil error always means the value is rejected, whatever the boolean.
// When the error is an [*Error] returned by a [Type], its failures are nested
// under this validator in the report.
//
// Example:
//
//	type minLen int
//
//	func (m minLen) Validate(v any) (bool, error) {
//	    s, ok := v.(string)
//	    return ok && len(s) >= int(m), nil
//	}
type Validator interface {
	Validate(value any) (bool, error)
}

// Predicate is a [Validator] that never fails with an error.
type Predicate func(value any) bool

// Validate returns p(value).
func (p Predicate) Validate(value any) (bool, error) {
	return p(value), nil
}

// CheckFunc is a [Validator] that accepts the value when it returns nil.
type CheckFunc func(value any) error

// Validate reports whether f(value) returned nil, along with that error.
func (f CheckFunc) Validate(value any) (bool, error) {
	if err := f(value); err != nil {
		return false, err
	}

	return true, nil
}

// NamedValidator gives a validator a display name for failure messages.
// It is a leaf even when it wraps a [Type]: the wrapped Type's failures are
// then nested under the name instead of being flattened.
type NamedValidator struct {
	name      string
	validator any
}

// Named wraps validator so failure messages render it as name.
//
// Example:
//
//	Even := vtype.Named("Even", func(v int) bool { return v%2 == 0 })
func Named(name string, validator any) *NamedValidator {
	return &NamedValidator{name: name, validator: validator}
}

// String returns the display name.
func (n *NamedValidator) String() string {
	return n.name
}

// Unwrap returns the wrapped validator.
func (n *NamedValidator) Unwrap() any {
	return n.validator
}

// entry is the normalized form of a validator inside a [Type].
type entry struct {
	source any   // rendered in messages
	typ    *Type // non-nil when the validator is a Type
	call   func(value any) (any, error)
	path   []any  // fragments navigated before calling
	label  string // dotted path
}

var errorType = reflect.TypeFor[error]()

// normalize turns anything accepted by Compose into an entry.
func normalize(v any, s stringify.Stringifier) (entry, error) {
	switch x := v.(type) {
	case nil:
		return entry{}, fmt.Errorf("%w: nil is not a validator", ErrInvalidValidator)

	case *Type:
		if x == nil {
			return entry{}, fmt.Errorf("%w: nil *Type is not a validator", ErrInvalidValidator)
		}
		return entry{source: x, typ: x, call: x.call}, nil

	case *NamedValidator:
		inner, err := normalize(x.validator, s)
		if err != nil {
			return entry{}, fmt.Errorf("named validator %q: %w", x.name, err)
		}
		return entry{source: x, call: inner.call}, nil

	case Validator:
		if isNilValue(x) {
			return entry{}, fmt.Errorf("%w: nil %T is not a validator", ErrInvalidValidator, x)
		}
		return entry{source: x, call: func(value any) (any, error) {
			return x.Validate(value)
		}}, nil

	case func(any) bool:
		if x == nil {
			return entry{}, fmt.Errorf("%w: nil func is not a validator", ErrInvalidValidator)
		}
		return entry{source: x, call: func(value any) (any, error) {
			return x(value), nil
		}}, nil

	case func(any) error:
		if x == nil {
			return entry{}, fmt.Errorf("%w: nil func is not a validator", ErrInvalidValidator)
		}
		return entry{source: x, call: func(value any) (any, error) {
			if err := x(value); err != nil {
				return false, err
			}
			return true, nil
		}}, nil
	}

	return reflectEntry(v, s)
}

// reflectEntry handles functions of any single-argument shape:
// func(T) R, func(T) (R, error) and func(T) error.
// R is checked at call time, so a non-bool result is reported as an invalid validator.
func reflectEntry(v any, s stringify.Stringifier) (entry, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return entry{}, fmt.Errorf("%w: %s is not callable", ErrInvalidValidator, s.Stringify(v))
	}

	rt := rv.Type()
	if rt.NumIn() != 1 || rt.IsVariadic() {
		return entry{}, fmt.Errorf("%w: %s must take exactly one argument", ErrInvalidValidator, s.Stringify(v))
	}

	in := rt.In(0)
	errOnly := rt.NumOut() == 1 && rt.Out(0) == errorType
	withErr := rt.NumOut() == 2 && rt.Out(1) == errorType
	if rt.NumOut() == 0 || rt.NumOut() > 2 || (rt.NumOut() == 2 && !withErr) {
		return entry{}, fmt.Errorf("%w: %s must return a result, an error, or both", ErrInvalidValidator, s.Stringify(v))
	}

	call := func(value any) (any, error) {
		arg, err := argument(value, in)
		if err != nil {
			return false, err
		}

		outs := rv.Call([]reflect.Value{arg})
		switch {
		case errOnly:
			if err := asError(outs[0]); err != nil {
				return false, err
			}
			return true, nil
		case withErr:
			if err := asError(outs[1]); err != nil {
				return false, err
			}
		}

		return outs[0].Interface(), nil
	}

	return entry{source: v, call: call}, nil
}

// argument converts value into a call argument of type in.
func argument(value any, in reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch in.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(in), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", in)
		}
	}

	av := reflect.ValueOf(value)
	if !av.Type().AssignableTo(in) {
		return reflect.Value{}, fmt.Errorf("value of type %s is not assignable to %s", av.Type(), in)
	}

	return av, nil
}

// isNilValue reports whether v holds a nil func, pointer, map, slice or channel.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	err, _ := v.Interface().(error)

	return err
}
