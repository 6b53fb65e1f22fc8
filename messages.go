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

	"github.com/AlexisTessier/vanille-type/stringify"
)

// messages renders every text that appears in a failure report.
type messages struct {
	s stringify.Stringifier
}

func (m messages) typeError(value any) string {
	return fmt.Sprintf("Value %s is not of a valid type:", m.s.Stringify(value))
}

func (m messages) detail(validator any) string {
	return fmt.Sprintf("It doesn't match the validator %s.", m.s.Stringify(validator))
}

func (m messages) detailWithError(validator any, errMessage string) string {
	return fmt.Sprintf("It doesn't match the validator %s - %s", m.s.Stringify(validator), errMessage)
}

func (m messages) invalidValidator(validator, returned any) string {
	return fmt.Sprintf("Invalid type validator. The validator %s doesn't return a boolean value. It returns %s.",
		m.s.Stringify(validator), m.s.Stringify(returned))
}

// TypeErrorMessage returns the header line of a failure report for value,
// e.g. `Value "x" is not of a valid type:`.
func (c *Composer) TypeErrorMessage(value any) string {
	return c.messages().typeError(value)
}

// DetailMessage returns the record text for a validator that returned false.
func (c *Composer) DetailMessage(validator any) string {
	return c.messages().detail(validator)
}

// DetailErrorMessage returns the record text for a validator that failed
// with an error carrying errMessage.
func (c *Composer) DetailErrorMessage(validator any, errMessage string) string {
	return c.messages().detailWithError(validator, errMessage)
}

// InvalidValidatorMessage returns the message of an [InvalidValidatorError].
func (c *Composer) InvalidValidatorMessage(validator, returned any) string {
	return c.messages().invalidValidator(validator, returned)
}

// TypeErrorMessage is [Composer.TypeErrorMessage] on the default composer.
func TypeErrorMessage(value any) string {
	return defaultComposer().TypeErrorMessage(value)
}

// DetailMessage is [Composer.DetailMessage] on the default composer.
func DetailMessage(validator any) string {
	return defaultComposer().DetailMessage(validator)
}

// DetailErrorMessage is [Composer.DetailErrorMessage] on the default composer.
func DetailErrorMessage(validator any, errMessage string) string {
	return defaultComposer().DetailErrorMessage(validator, errMessage)
}

// InvalidValidatorMessage is [Composer.InvalidValidatorMessage] on the default composer.
func InvalidValidatorMessage(validator, returned any) string {
	return defaultComposer().InvalidValidatorMessage(validator, returned)
}
