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
	"errors"
	"fmt"

	vtype "github.com/AlexisTessier/vanille-type"
	"github.com/AlexisTessier/vanille-type/stringify"
)

// Predefined errors.
var (
	// ErrMissingTypeCheck is returned when a function accepts an invalid argument.
	ErrMissingTypeCheck = errors.New("missing type check")

	// ErrUnknownType is returned when a signature names a Type without fixture.
	ErrUnknownType = errors.New("unknown type")

	// ErrInvalidFixture is returned by [New] for inconsistent fixtures.
	ErrInvalidFixture = errors.New("invalid fixture")

	// ErrInvalidFunction is returned when the checked value is not a function
	// matching the signature.
	ErrInvalidFunction = errors.New("invalid function")
)

// MissingCheckError reports an invalid argument that a function accepted.
type MissingCheckError struct {
	// Func is the checked function.
	Func any
	// Index is the position of the invalid argument.
	Index int
	// Type is the Type of the argument at Index.
	Type *vtype.Type
	// Value is the invalid value the function accepted.
	Value any
}

// Error returns a description of the missing check.
func (e *MissingCheckError) Error() string {
	return fmt.Sprintf("The function %s doesn't check the type of its argument %d. It accepts %s, which doesn't match the validator %s.",
		stringify.Stringify(e.Func), e.Index, stringify.Stringify(e.Value), stringify.Stringify(validatorOf(e.Type)))
}

// Unwrap returns [ErrMissingTypeCheck] for errors.Is compatibility.
func (e *MissingCheckError) Unwrap() error {
	return ErrMissingTypeCheck
}

// validatorOf returns the first validator of t, or t itself.
func validatorOf(t *vtype.Type) any {
	if vs := t.Validators(); len(vs) > 0 {
		return vs[0]
	}

	return t
}
