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
	"sort"
	"strings"

	vtype "github.com/AlexisTessier/vanille-type"
	"github.com/AlexisTessier/vanille-type/stringify"
)

// InstanceOf returns a Type accepting values whose dynamic type is, or
// implements, T.
//
// Example:
//
//	Reader := validators.InstanceOf[io.Reader]()
func InstanceOf[T any]() *vtype.Type {
	name := fmt.Sprintf("InstanceOf[%s]", reflect.TypeFor[T]())

	return kind(name, func(v any) bool {
		_, ok := v.(T)
		return ok
	})
}

// Equal returns a Type accepting only values that are [vtype.Same] as want.
func Equal(want any) *vtype.Type {
	return kind("Equal("+stringify.Stringify(want)+")", func(v any) bool {
		return vtype.Same(v, want)
	})
}

// DeepEqual returns a Type accepting values deeply equal to want.
func DeepEqual(want any) *vtype.Type {
	return kind("DeepEqual("+stringify.Stringify(want)+")", func(v any) bool {
		return reflect.DeepEqual(v, want)
	})
}

// OneOf returns a Type accepting values that are [vtype.Same] as one of values.
//
// Example:
//
//	Method := validators.OneOf("GET", "POST")
func OneOf(values ...any) *vtype.Type {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = stringify.Stringify(v)
	}

	return kind("OneOf("+strings.Join(names, ", ")+")", func(v any) bool {
		for _, want := range values {
			if vtype.Same(v, want) {
				return true
			}
		}
		return false
	})
}

// Not returns a Type accepting exactly the values t rejects.
func Not(t *vtype.Type) *vtype.Type {
	name := "Not(" + t.String() + ")"

	return vtype.MustComposeNamed(name, vtype.Named(name, validatorFunc(func(v any) (bool, error) {
		ok, err := is(t, v)
		return !ok, err
	})))
}

// Maybe returns a Type accepting nil and the values accepted by t.
func Maybe(t *vtype.Type) *vtype.Type {
	name := "Maybe(" + t.String() + ")"

	return vtype.MustComposeNamed(name, vtype.Named(name, validatorFunc(func(v any) (bool, error) {
		if isNil(v) {
			return true, nil
		}
		return is(t, v)
	})))
}

// Either returns a Type accepting the values accepted by at least one of ts.
// Every Type runs, so an invalid validator in any of them is reported.
func Either(ts ...*vtype.Type) *vtype.Type {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	name := "Either(" + strings.Join(names, ", ") + ")"

	return vtype.MustComposeNamed(name, vtype.Named(name, validatorFunc(func(v any) (bool, error) {
		matched := false
		for _, t := range ts {
			ok, err := is(t, v)
			if err != nil {
				return false, err
			}
			matched = matched || ok
		}
		return matched, nil
	})))
}

// SliceOf returns a Type accepting slices and arrays whose every element is
// accepted by t. Each failing element is reported under its index.
//
// Example:
//
//	_, err := validators.SliceOf(validators.String).Check([]any{"a", 1})
//	// Value [a 1] is not of a valid type:
//	// 	0) It doesn't match the validator SliceOf(String).
//	// 	0.0 - 1) It doesn't match the validator String.
func SliceOf(t *vtype.Type) *vtype.Type {
	name := "SliceOf(" + t.String() + ")"

	return vtype.MustComposeNamed(name, Slice, vtype.Named(name, vtype.CheckFunc(func(v any) error {
		rv := reflect.ValueOf(v)
		if k := kindOf(v); k != reflect.Slice && k != reflect.Array {
			return nil
		}

		elems := make([]any, rv.Len())
		for i := range elems {
			scoped, err := t.Path(i)
			if err != nil {
				return err
			}
			elems[i] = scoped
		}

		return checkAll(v, elems)
	})))
}

// MapOf returns a Type accepting maps whose every value is accepted by t.
// Failing values are reported under their key, in key order.
func MapOf(t *vtype.Type) *vtype.Type {
	name := "MapOf(" + t.String() + ")"

	return vtype.MustComposeNamed(name, Map, vtype.Named(name, vtype.CheckFunc(func(v any) error {
		if kindOf(v) != reflect.Map {
			return nil
		}

		rv := reflect.ValueOf(v)
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return stringify.Stringify(keys[i].Interface()) < stringify.Stringify(keys[j].Interface())
		})

		elems := make([]any, 0, len(keys))
		for _, key := range keys {
			k := key.Interface()
			if vtype.PathFragment(k) {
				scoped, err := t.Path(k)
				if err != nil {
					return err
				}
				elems = append(elems, scoped)
				continue
			}

			elem := rv.MapIndex(key).Interface()
			elems = append(elems, vtype.Named(stringify.Stringify(k), vtype.CheckFunc(func(any) error {
				_, err := t.Check(elem)
				return err
			})))
		}

		return checkAll(v, elems)
	})))
}

// checkAll checks v against validators composed on the fly.
func checkAll(v any, validators []any) error {
	if len(validators) == 0 {
		return nil
	}

	all, err := vtype.Compose(validators...)
	if err != nil {
		return err
	}
	_, err = all.Check(v)

	return err
}

// is reports whether t accepts v, keeping invalid validator errors.
func is(t *vtype.Type, v any) (bool, error) {
	_, err := t.Check(v)
	if errors.Is(err, vtype.ErrInvalidValidator) {
		return false, err
	}

	return err == nil, nil
}

// validatorFunc adapts a function to [vtype.Validator].
type validatorFunc func(v any) (bool, error)

func (f validatorFunc) Validate(v any) (bool, error) {
	return f(v)
}
