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

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"

	vtype "github.com/AlexisTessier/vanille-type"
	"github.com/AlexisTessier/vanille-type/stringify"
)

// Formats of string values.
var (
	// UUID accepts uuid.UUID values and strings in any form uuid.Parse accepts.
	UUID = kind("UUID", func(v any) bool {
		switch x := v.(type) {
		case uuid.UUID:
			return true
		case string:
			_, err := uuid.Parse(x)
			return err == nil
		}

		return false
	})

	// SemVer accepts *semver.Version values and semantic version strings.
	SemVer = kind("SemVer", func(v any) bool {
		_, err := semVersion(v)
		return err == nil
	})
)

// SemVerRange returns a Type accepting semantic versions that satisfy
// constraint, e.g. ">= 1.2, < 2".
//
// Example:
//
//	V1 := validators.MustSemVerRange("^1")
//	V1.Is("1.4.0") // true
func SemVerRange(constraint string) (*vtype.Type, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("constraint %q: %w", constraint, err)
	}

	name := "SemVerRange(" + constraint + ")"

	return vtype.ComposeNamed(name, vtype.Named(name, vtype.CheckFunc(func(v any) error {
		ver, err := semVersion(v)
		if err != nil {
			return err
		}
		if !c.Check(ver) {
			return fmt.Errorf("%s does not satisfy %s", ver, constraint)
		}

		return nil
	})))
}

// MustSemVerRange is like [SemVerRange] but panics if the constraint does not parse.
func MustSemVerRange(constraint string) *vtype.Type {
	t, err := SemVerRange(constraint)
	if err != nil {
		panic(fmt.Sprintf("validators.MustSemVerRange: %v", err))
	}

	return t
}

func semVersion(v any) (*semver.Version, error) {
	switch x := v.(type) {
	case *semver.Version:
		if x == nil {
			return nil, errors.New("nil version")
		}
		return x, nil
	case string:
		return semver.NewVersion(x)
	}

	return nil, fmt.Errorf("%s is not a version", stringify.Stringify(v))
}
