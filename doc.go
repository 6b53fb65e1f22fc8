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

// Package vtype builds runtime types out of plain validator functions.
//
// # Getting Started
//
// A [Type] is a list of validators composed with [Compose] (or [MustCompose]
// for package-level declarations):
//
//	Even := vtype.MustCompose(func(v int) bool { return v%2 == 0 })
//	Small := vtype.MustCompose(func(v int) bool { return v < 10 })
//	SmallEven := vtype.MustCompose(Even, Small)
//
//	n, err := SmallEven.Check(12)
//	if err != nil {
//		fmt.Println(err)
//	}
//
// Check returns the value unchanged when every validator accepts it. Otherwise
// it returns an [*Error] listing every failing validator:
//
//	Value 12 is not of a valid type:
//		0) It doesn't match the validator func[main.main.func2].
//
// # Validators
//
// Compose accepts:
//
//   - another [*Type], whose failures are flattened into the report
//   - a [Validator], [Predicate] or [CheckFunc]
//   - any single-argument func returning a bool, an error, or both
//   - a [*NamedValidator], to control how a validator is rendered
//
// Every validator runs, in order, on every check. A validator that returns
// something other than a bool aborts the check with an
// [*InvalidValidatorError]; it is never folded into a report.
//
// # Nested Types
//
// A predicate can delegate to another Type and return its error. The
// delegated failures are then nested under the predicate:
//
//	User := vtype.MustCompose(func(u map[string]any) error {
//		_, err := Name.Check(u["name"])
//		return err
//	})
//
//	Value map[name:42] is not of a valid type:
//		0) It doesn't match the validator func[...].
//		0.0) Value 42 is not of a valid type:
//		0.0.0) It doesn't match the validator func[...].
//
// # Paths
//
// [Type.Path] and [Path] scope validators to a part of the value:
//
//	UserName, _ := vtype.Path("name")(validators.String)
//
// # Configuration
//
// Use [NewComposer] to change how values are rendered ([WithStringifier],
// [WithSource]), how nested subjects are compared ([WithIdentity]), or to log
// rejections ([WithLogger]).
//
// # Error Handling
//
// Every error returned by this package wraps [ErrTypeError]:
//
//	var terr *vtype.Error
//	switch {
//	case errors.Is(err, vtype.ErrInvalidValidator):
//		// a validator is broken
//	case errors.As(err, &terr):
//		// value rejected, see terr.Failures()
//	}
package vtype
