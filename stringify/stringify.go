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

package stringify

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
)

// Stringifier renders a value for display in a message.
type Stringifier interface {
	Stringify(value any) string
}

// Func adapts a plain function to the [Stringifier] interface.
type Func func(value any) string

// Stringify calls f(value).
func (f Func) Stringify(value any) string {
	return f(value)
}

// Formatter renders values that have no dedicated rule in [Printer].
type Formatter func(value any) (string, error)

// Printer is the default [Stringifier].
// Printer is safe for concurrent use.
type Printer struct {
	cfg       config
	spew      *spew.ConfigState
	cycleSpew *spew.ConfigState // bounded, for values that reach themselves
}

// cycleDepth bounds the rendering of circular maps and slices, which go-spew
// does not track.
const cycleDepth = 4

// New creates a [Printer] with the given options.
//
// Example:
//
//	p := stringify.New(stringify.WithSource(true))
//	fmt.Println(p.Stringify(isEven)) // func[main.isEven @ main.go:12]
func New(opts ...Option) *Printer {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := newSpewConfig()
	sc.MaxDepth = cfg.maxDepth

	cc := newSpewConfig()
	cc.MaxDepth = cycleDepth
	if cfg.maxDepth > 0 && cfg.maxDepth < cycleDepth {
		cc.MaxDepth = cfg.maxDepth
	}

	return &Printer{cfg: cfg, spew: sc, cycleSpew: cc}
}

var (
	defaultPrinter     *Printer
	defaultPrinterOnce sync.Once
)

// Default returns the shared [Printer] built without options.
func Default() *Printer {
	defaultPrinterOnce.Do(func() {
		defaultPrinter = New()
	})

	return defaultPrinter
}

// Stringify renders value with the [Default] printer. When formatters are
// given, the first non-nil one replaces the default formatter for this call.
func Stringify(value any, formatters ...Formatter) string {
	p := Default()
	for _, f := range formatters {
		if f != nil {
			return p.render(value, f)
		}
	}

	return p.Stringify(value)
}

// Stringify renders value following the rules described in the package documentation.
func (p *Printer) Stringify(value any) string {
	return p.render(value, p.cfg.formatter)
}

// SourceEnabled reports whether functions are rendered with their source location.
func (p *Printer) SourceEnabled() bool {
	return p.cfg.source
}

func (p *Printer) render(value any, formatter Formatter) string {
	if value == nil {
		return "nil"
	}

	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		if s, ok := safeString(v); ok {
			return s
		}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Func {
		return p.funcName(rv)
	}

	if formatter != nil {
		if s, err := formatter(value); err == nil {
			return s
		}
	}

	if cyclic(rv, map[visit]bool{}) {
		return p.cycleSpew.Sprintf("%+v", value)
	}

	return p.spew.Sprintf("%+v", value)
}

// funcName renders a function value as func[<symbol>].
func (p *Printer) funcName(rv reflect.Value) string {
	if rv.IsNil() {
		return "func[nil]"
	}

	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "func[" + rv.Type().String() + "]"
	}

	name := fn.Name()
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		name = name[idx+1:]
	}

	if p.cfg.source {
		file, line := fn.FileLine(rv.Pointer())
		return fmt.Sprintf("func[%s @ %s:%d]", name, filepath.Base(file), line)
	}

	return "func[" + name + "]"
}

// safeString calls String, recovering from panics raised by nil receivers.
func safeString(s fmt.Stringer) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			out, ok = "", false
		}
	}()

	return s.String(), true
}
