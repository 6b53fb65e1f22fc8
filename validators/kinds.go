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
	"math"
	"reflect"
	"strings"

	vtype "github.com/AlexisTessier/vanille-type"
)

// kind composes a named Type out of a single predicate rendered by name.
func kind(name string, fn func(v any) bool) *vtype.Type {
	return vtype.MustComposeNamed(name, vtype.Named(name, vtype.Predicate(fn)))
}

// Kinds.
var (
	// Any accepts every value.
	Any = kind("Any", func(any) bool { return true })

	// Nothing rejects every value.
	Nothing = kind("Nothing", func(any) bool { return false })

	// Nil accepts nil and nil pointers, maps, slices, funcs, channels and interfaces.
	Nil = kind("Nil", isNil)

	Bool = kind("Bool", func(v any) bool { return kindOf(v) == reflect.Bool })

	String = kind("String", func(v any) bool { return kindOf(v) == reflect.String })

	EmptyString = kind("EmptyString", func(v any) bool {
		return kindOf(v) == reflect.String && reflect.ValueOf(v).Len() == 0
	})

	// BlankString accepts strings made only of white space, including "".
	BlankString = kind("BlankString", func(v any) bool {
		return kindOf(v) == reflect.String && strings.TrimSpace(reflect.ValueOf(v).String()) == ""
	})

	// Int accepts signed integers of any size.
	Int = kind("Int", func(v any) bool { return isInt(kindOf(v)) })

	// Uint accepts unsigned integers of any size.
	Uint = kind("Uint", func(v any) bool { return isUint(kindOf(v)) })

	// Float accepts float32 and float64, NaN and infinities included.
	Float = kind("Float", func(v any) bool { return isFloat(kindOf(v)) })

	// Number accepts every integer and float, NaN excepted.
	Number = kind("Number", func(v any) bool {
		k := kindOf(v)
		if isFloat(k) {
			return !math.IsNaN(reflect.ValueOf(v).Float())
		}
		return isInt(k) || isUint(k)
	})

	// Integer accepts integers, and floats with no fractional part.
	Integer = kind("Integer", func(v any) bool {
		k := kindOf(v)
		if isFloat(k) {
			f := reflect.ValueOf(v).Float()
			return !math.IsInf(f, 0) && f == math.Trunc(f)
		}
		return isInt(k) || isUint(k)
	})

	NaN = kind("NaN", func(v any) bool {
		return isFloat(kindOf(v)) && math.IsNaN(reflect.ValueOf(v).Float())
	})

	Func = kind("Func", func(v any) bool { return kindOf(v) == reflect.Func })

	// Slice accepts slices and arrays.
	Slice = kind("Slice", func(v any) bool {
		k := kindOf(v)
		return k == reflect.Slice || k == reflect.Array
	})

	// EmptySlice accepts slices and arrays of length 0.
	EmptySlice = kind("EmptySlice", func(v any) bool {
		k := kindOf(v)
		return (k == reflect.Slice || k == reflect.Array) && reflect.ValueOf(v).Len() == 0
	})

	Map = kind("Map", func(v any) bool { return kindOf(v) == reflect.Map })

	Struct = kind("Struct", func(v any) bool { return kindOf(v) == reflect.Struct })

	Pointer = kind("Pointer", func(v any) bool { return kindOf(v) == reflect.Pointer })

	// Error accepts any value implementing error.
	Error = kind("Error", func(v any) bool {
		_, ok := v.(error)
		return ok
	})
)

// kindOf returns reflect.Invalid for nil.
func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}

	return reflect.TypeOf(v).Kind()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}

	return false
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
