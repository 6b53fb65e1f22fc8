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
	"net/http"

	rerrors "rivaas.dev/errors"
)

var (
	_ rerrors.ErrorType    = (*Error)(nil)
	_ rerrors.ErrorDetails = (*Error)(nil)
	_ rerrors.ErrorCode    = (*Error)(nil)
	_ rerrors.ErrorType    = (*InvalidValidatorError)(nil)
	_ rerrors.ErrorCode    = (*InvalidValidatorError)(nil)
)

// ErrTypeError is the root of every error produced by this package.
// Use errors.Is(err, ErrTypeError) to tell them apart from other errors.
var ErrTypeError = errors.New("type error")

// Predefined errors. Each one wraps [ErrTypeError].
var (
	// ErrMismatch is returned (wrapped in an [*Error]) when a value does not
	// satisfy the validators of a [Type].
	ErrMismatch = fmt.Errorf("%w: value mismatch", ErrTypeError)

	// ErrInvalidValidator is returned when a validator breaks the validator
	// contract: it is not callable, or it returned something other than a bool.
	ErrInvalidValidator = fmt.Errorf("%w: invalid validator", ErrTypeError)

	// ErrInvalidPath is returned when a path cannot be navigated.
	ErrInvalidPath = fmt.Errorf("%w: invalid path", ErrTypeError)

	// ErrInvalidConfig is returned by [NewComposer] for unusable options.
	ErrInvalidConfig = fmt.Errorf("%w: invalid configuration", ErrTypeError)
)

// Error is returned by [Type.Check] when the value is rejected.
// The message is the rendered failure report; the subject value and the
// failure records stay attached so an enclosing [Type] can fold them.
//
// Example:
//
//	var terr *vtype.Error
//	if errors.As(err, &terr) {
//	    for _, f := range terr.Failures() {
//	        fmt.Println(f.Message)
//	    }
//	}
type Error struct {
	subject  any
	failures []Failure
	message  string
}

// NewError returns an [*Error] rejecting subject with failures, rendered with
// the default composer. Validators return it to have their own records
// nested in the report of the [Type] that calls them.
//
// Example:
//
//	return vtype.NewError(v, vtype.Failure{Message: "is required", Path: "email"})
func NewError(subject any, failures ...Failure) *Error {
	r := newReport(subject)
	r.add(cloneFailures(failures)...)

	return r.toError(defaultComposer().messages())
}

// Error returns the rendered failure report.
func (e *Error) Error() string {
	return e.message
}

// Unwrap returns [ErrMismatch] for errors.Is compatibility.
func (e *Error) Unwrap() error {
	return ErrMismatch
}

// Subject returns the value that was rejected.
func (e *Error) Subject() any {
	return e.subject
}

// Failures returns a deep copy of the failure records, in evaluation order.
func (e *Error) Failures() []Failure {
	return cloneFailures(e.failures)
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (e *Error) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// Details implements rivaas.dev/errors.ErrorDetails.
func (e *Error) Details() any {
	return e.Failures()
}

// Code implements rivaas.dev/errors.ErrorCode.
func (e *Error) Code() string {
	return "type_error"
}

// InvalidValidatorError reports a validator that returned a non-boolean result.
// It is never folded into a failure report: it aborts the [Type] invocation
// and is returned as is by every enclosing [Type].
type InvalidValidatorError struct {
	// Validator is the offending validator, as it was passed to Compose.
	Validator any
	// Returned is what the validator returned.
	Returned any

	message string
}

// Error returns the invalid validator message.
func (e *InvalidValidatorError) Error() string {
	return e.message
}

// Unwrap returns [ErrInvalidValidator] for errors.Is compatibility.
func (e *InvalidValidatorError) Unwrap() error {
	return ErrInvalidValidator
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (e *InvalidValidatorError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// Code implements rivaas.dev/errors.ErrorCode.
func (e *InvalidValidatorError) Code() string {
	return "invalid_validator"
}
