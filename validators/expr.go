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
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	vtype "github.com/AlexisTessier/vanille-type"
)

// Expr returns a Type evaluating an expr-lang expression, compiled once, with
// the checked value bound to v. The expression must evaluate to a bool:
// any other result aborts the check with a [vtype.InvalidValidatorError].
//
// Example:
//
//	Adult, err := validators.Expr(`v.age >= 18`)
func Expr(code string) (*vtype.Type, error) {
	program, err := expr.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", code, err)
	}

	name := "Expr(" + code + ")"

	return vtype.ComposeNamed(name, vtype.Named(name, func(v any) (any, error) {
		return run(program, v)
	}))
}

// MustExpr is like [Expr] but panics if the expression does not compile.
func MustExpr(code string) *vtype.Type {
	t, err := Expr(code)
	if err != nil {
		panic(fmt.Sprintf("validators.MustExpr: %v", err))
	}

	return t
}

func run(program *vm.Program, v any) (any, error) {
	return expr.Run(program, map[string]any{"v": v})
}
