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
	"errors"
	"fmt"
)

// Type is a composite validator built by [Compose].
//
// A Type runs every one of its validators, in declaration order, and either
// returns the checked value unchanged or an [*Error] describing every
// validator that rejected it. Types are immutable and safe for concurrent
// use; each call aggregates into its own report.
//
// A Type is itself a validator, so Types nest arbitrarily deep:
//
//	Even := vtype.MustCompose(func(v int) bool { return v%2 == 0 })
//	Small := vtype.MustCompose(func(v int) bool { return v < 10 })
//	SmallEven := vtype.MustCompose(Even, Small)
//
//	_, err := SmallEven.Check(12)
//	// Value 12 is not of a valid type:
//	// 	0) It doesn't match the validator func[...].
type Type struct {
	name     string
	composer *Composer
	sources  []any
	base     []entry // unscoped entries, kept so Path can be chained
	path     []any
	entries  []entry
}

// Check validates value against every validator of t.
//
// Check returns value itself when every validator accepts it. Otherwise it
// returns an [*Error] whose message lists every failure, or an
// [*InvalidValidatorError] as soon as a validator breaks the boolean contract.
//
// Example:
//
//	if _, err := User.Check(input); err != nil {
//	    return fmt.Errorf("invalid user: %w", err)
//	}
func (t *Type) Check(value any) (any, error) {
	r := newReport(value)

	for i := range t.entries {
		if err := t.invoke(&t.entries[i], value, r); err != nil {
			return nil, err
		}
	}

	if !r.valid() {
		err := r.toError(t.composer.messages())
		t.composer.logRejected(t, err)

		return nil, err
	}

	return value, nil
}

// Is reports whether value passes [Type.Check].
func (t *Type) Is(value any) bool {
	_, err := t.Check(value)
	return err == nil
}

// Must returns value if it passes [Type.Check] and panics with the error otherwise.
func (t *Type) Must(value any) any {
	v, err := t.Check(value)
	if err != nil {
		panic(err)
	}

	return v
}

// Validators returns the validators t was composed from, in order.
func (t *Type) Validators() []any {
	out := make([]any, len(t.sources))
	copy(out, t.sources)

	return out
}

// Name returns the name given to [ComposeNamed], or "".
func (t *Type) Name() string {
	return t.name
}

// String returns the name of t, or "Type" when it has none.
func (t *Type) String() string {
	if t.name != "" {
		return t.name
	}

	return "Type"
}

// call adapts t to the entry calling convention.
func (t *Type) call(value any) (any, error) {
	if _, err := t.Check(value); err != nil {
		return false, err
	}

	return true, nil
}

// invoke runs a single validator and records its outcome in r.
// The returned error is fatal and aborts the whole check.
func (t *Type) invoke(e *entry, value any, r *report) error {
	m := t.composer.messages()

	target := value
	if len(e.path) > 0 {
		var err error
		if target, err = Navigate(value, e.path...); err != nil {
			r.add(Failure{Message: m.detailWithError(e.source, err.Error()), Path: e.label})
			return nil
		}
	}

	result, err := safeCall(e, target)

	if err != nil {
		if errors.Is(err, ErrInvalidValidator) {
			return err
		}

		var nested *Error
		if !errors.As(err, &nested) {
			r.add(Failure{Message: m.detailWithError(e.source, err.Error()), Path: e.label})
			return nil
		}

		if e.typ != nil {
			r.add(prefixPath(nested.failures, e.label)...)
			return nil
		}

		children := nested.failures
		if !t.composer.same(nested.subject, target) {
			children = []Failure{{
				Message:  m.typeError(nested.subject),
				Children: nested.failures,
			}}
		}
		r.add(Failure{Message: m.detail(e.source), Path: e.label, Children: children})

		return nil
	}

	ok, isBool := result.(bool)
	if !isBool {
		ierr := t.composer.invalidValidator(e.source, result)
		t.composer.logInvalid(t, ierr)

		return ierr
	}

	if !ok {
		r.add(Failure{Message: m.detail(e.source), Path: e.label})
	}

	return nil
}

// safeCall calls a validator, turning a panic in a leaf validator into an error.
// A panicking error value stays in the chain, so Must inside a predicate
// folds like a returned error.
func safeCall(e *entry, value any) (result any, err error) {
	if e.typ == nil {
		defer func() {
			if rec := recover(); rec != nil {
				if recErr, ok := rec.(error); ok {
					result, err = false, fmt.Errorf("panic: %w", recErr)
					return
				}
				result, err = false, fmt.Errorf("panic: %v", rec)
			}
		}()
	}

	return e.call(value)
}

// prefixPath labels spliced failures with the path of the scoped Type that
// produced them, keeping any deeper path they already carry.
func prefixPath(failures []Failure, label string) []Failure {
	if label == "" {
		return failures
	}

	out := make([]Failure, len(failures))
	for i, f := range failures {
		if f.Path != "" {
			f.Path = label + "." + f.Path
		} else {
			f.Path = label
		}
		out[i] = f
	}

	return out
}
