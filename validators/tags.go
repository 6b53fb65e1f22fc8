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
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	vtype "github.com/AlexisTessier/vanille-type"
)

var (
	tagValidator     *validator.Validate
	tagValidatorOnce sync.Once
)

// tags returns the shared go-playground/validator instance.
// It reports fields by their json name.
func tags() *validator.Validate {
	tagValidatorOnce.Do(func() {
		tagValidator = validator.New(validator.WithRequiredStructEnabled())
		tagValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return fld.Name
			}

			return name
		})
	})

	return tagValidator
}

// Tag returns a Type checking a single value against a go-playground/validator
// tag, e.g. "required,email".
//
// Example:
//
//	Email := validators.Tag("required,email")
func Tag(tag string) *vtype.Type {
	name := "Tag(" + tag + ")"

	return vtype.MustComposeNamed(name, vtype.Named(name, vtype.CheckFunc(func(v any) error {
		err := tags().Var(v, tag)
		if err == nil {
			return nil
		}

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New(tagMessage(verrs[0]))
		}

		return err
	})))
}

// StructTags returns a Type checking a struct, or a pointer to one, against
// its `validate` struct tags. Each failing field is nested under its json path.
//
// Example:
//
//	type User struct {
//	    Email string `json:"email" validate:"required,email"`
//	}
//
//	_, err := validators.StructTags().Check(User{})
//	// Value {Email:} is not of a valid type:
//	// 	0) It doesn't match the validator StructTags.
//	// 	0.0 - email) is required
func StructTags() *vtype.Type {
	return structTags
}

var structTags = vtype.MustComposeNamed("StructTags", vtype.Named("StructTags", vtype.CheckFunc(func(v any) error {
	if isNil(v) {
		return errors.New("nil is not a struct")
	}

	err := tags().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	failures := make([]vtype.Failure, len(verrs))
	for i, e := range verrs {
		failures[i] = vtype.Failure{Message: tagMessage(e), Path: fieldPath(e)}
	}

	return vtype.NewError(v, failures...)
})))

// fieldPath strips the top struct name from the error namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

// tagMessage returns a human-readable message for a failed tag.
func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	default:
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}
