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

// Package validators provides ready-made [vtype.Type] values and helpers
// building Types from other Types.
//
// Kinds check the dynamic Go kind of a value:
//
//	Name := vtype.MustCompose(validators.String, validators.Not(validators.BlankString))
//
// Helpers combine Types:
//
//	Tags := validators.SliceOf(validators.String)
//	Age := validators.Maybe(validators.Integer)
//
// [UUID], [SemVer] and [SemVerRange] check string formats.
//
// [Tag] and [StructTags] delegate to go-playground/validator, and [Expr]
// to expr-lang expressions.
package validators
