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

// Package ensure checks, in tests, that a function rejects invalid arguments.
//
// A [Checker] knows, for each [vtype.Type], one valid value and a list of
// invalid ones. [Checker.Check] calls the function once per invalid value of
// each argument, every other argument being valid, and expects the function
// to reject each call by returning a non-nil error as its last result or by
// panicking.
//
//	checker := ensure.MustNew(ensure.Fixture{
//		Type:     Email,
//		Valid:    "john@example.com",
//		Invalids: []any{"", "john", 42},
//	})
//
//	func TestSendMail(t *testing.T) {
//		checker.Require(t, SendMail, Email)
//	}
package ensure
