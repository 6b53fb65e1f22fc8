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

//go:build !integration

package vtype

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexisTessier/vanille-type/stringify"
)

func TestNewComposer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{name: "defaults"},
		{name: "custom stringifier", opts: []Option{WithStringifier(stringify.Func(func(any) string { return "x" }))}},
		{name: "custom identity", opts: []Option{WithIdentity(func(a, b any) bool { return false })}},
		{name: "logger", opts: []Option{WithLogger(slog.New(slog.DiscardHandler))}},
		{name: "source", opts: []Option{WithSource(true)}},
		{name: "nil stringifier", opts: []Option{WithStringifier(nil)}, wantErr: true},
		{name: "nil identity", opts: []Option{WithIdentity(nil)}, wantErr: true},
		{
			name:    "source with custom stringifier",
			opts:    []Option{WithSource(true), WithStringifier(stringify.New())},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := NewComposer(tt.opts...)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				require.ErrorIs(t, err, ErrTypeError)
				assert.Nil(t, c)
				assert.Panics(t, func() { MustNewComposer(tt.opts...) })
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestComposer_WithStringifier(t *testing.T) {
	t.Parallel()

	c := MustNewComposer(WithStringifier(stringify.New(stringify.WithFormatter(stringify.YAML))))
	isEmpty := func(v map[string]int) bool { return len(v) == 0 }
	value := map[string]int{"a": 1, "b": 2}

	_, err := c.MustCompose(isEmpty).Check(value)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Value {a: 1, b: 2} is not of a valid type:\n\t0) "))

	hasNoCallback := func(v map[string]any) bool { return v["onDone"] == nil }
	withCallback := map[string]any{"onDone": hasNoCallback, "retries": 3}
	require.NotPanics(t, func() { _, err = c.MustCompose(hasNoCallback).Check(withCallback) })
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, err.Error(), "retries:3")
}

func TestComposer_WithSource(t *testing.T) {
	t.Parallel()

	c := MustNewComposer(WithSource(true))
	isEmpty := func(v string) bool { return v == "" }

	_, err := c.MustCompose(isEmpty).Check("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "options_test.go:")
	assert.Contains(t, err.Error(), "func[vanille-type.TestComposer_WithSource.func1 @ ")
}

func TestComposer_WithIdentity(t *testing.T) {
	t.Parallel()

	never := MustNewComposer(WithIdentity(func(a, b any) bool { return false }))

	validator := func(any) bool { return false }
	Nested := MustCompose(validator)
	checkNested := func(v any) error {
		_, err := Nested.Check(v)
		return err
	}

	_, err := never.MustCompose(checkNested).Check(42)
	require.Error(t, err)
	assert.Equal(t, wantReport(42,
		detail("0", checkNested),
		"0.0) "+TypeErrorMessage(42),
		detail("0.0.0", validator),
	), err.Error())

	_, err = MustCompose(checkNested).Check(42)
	require.Error(t, err)
	assert.Equal(t, wantReport(42,
		detail("0", checkNested),
		detail("0.0", validator),
	), err.Error())
}

type pointerValidator struct{}

func (*pointerValidator) Validate(any) (bool, error) { return true, nil }

func TestComposer_ComposeErrors(t *testing.T) {
	t.Parallel()

	c := MustNewComposer()

	tests := []struct {
		name      string
		validator any
	}{
		{name: "nil", validator: nil},
		{name: "nil type", validator: (*Type)(nil)},
		{name: "int", validator: 42},
		{name: "string", validator: "validator"},
		{name: "nil func", validator: (func(any) bool)(nil)},
		{name: "nil error func", validator: (func(any) error)(nil)},
		{name: "nil typed func", validator: (func(int) bool)(nil)},
		{name: "nil predicate", validator: Predicate(nil)},
		{name: "nil check func", validator: CheckFunc(nil)},
		{name: "nil validator pointer", validator: (*pointerValidator)(nil)},
		{name: "named nil predicate", validator: Named("broken", Predicate(nil))},
		{name: "no argument", validator: func() bool { return true }},
		{name: "two arguments", validator: func(a, b any) bool { return true }},
		{name: "variadic", validator: func(v ...any) bool { return true }},
		{name: "no result", validator: func(any) {}},
		{name: "two results without error", validator: func(any) (bool, bool) { return true, true }},
		{name: "three results", validator: func(any) (bool, bool, error) { return true, true, nil }},
		{name: "named invalid", validator: Named("broken", 42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			typ, err := c.Compose(func(any) bool { return true }, tt.validator)
			require.ErrorIs(t, err, ErrInvalidValidator)
			assert.Nil(t, typ)
			assert.True(t, strings.HasPrefix(err.Error(), "validator 1: "))

			_, err = c.ComposeNamed("Named", tt.validator)
			require.ErrorIs(t, err, ErrInvalidValidator)

			assert.Panics(t, func() { c.MustCompose(tt.validator) })
			assert.Panics(t, func() { c.MustComposeNamed("Named", tt.validator) })
		})
	}
}

func TestComposer_ReflectedValidators(t *testing.T) {
	t.Parallel()

	isPositive := func(v int) bool { return v > 0 }
	notEmpty := func(s string) error {
		if s == "" {
			return assert.AnError
		}
		return nil
	}
	hasName := func(m map[string]any) (bool, error) { _, ok := m["name"]; return ok, nil }
	isNilPtr := func(p *int) bool { return p == nil }

	t.Run("typed argument", func(t *testing.T) {
		t.Parallel()
		typ := MustCompose(isPositive)
		assert.True(t, typ.Is(1))
		assert.False(t, typ.Is(-1))

		_, err := typ.Check("1")
		require.Error(t, err)
		assert.Equal(t, wantReport("1",
			"0) "+DetailErrorMessage(isPositive, "value of type string is not assignable to int"),
		), err.Error())
	})

	t.Run("error result", func(t *testing.T) {
		t.Parallel()
		typ := MustCompose(notEmpty)
		assert.True(t, typ.Is("x"))

		_, err := typ.Check("")
		require.Error(t, err)
		assert.Equal(t, wantReport("", "0) "+DetailErrorMessage(notEmpty, assert.AnError.Error())), err.Error())
	})

	t.Run("bool and error", func(t *testing.T) {
		t.Parallel()
		typ := MustCompose(hasName)
		assert.True(t, typ.Is(map[string]any{"name": "x"}))
		assert.False(t, typ.Is(map[string]any{}))
		assert.False(t, typ.Is(nil))
	})

	t.Run("nil argument", func(t *testing.T) {
		t.Parallel()
		assert.True(t, MustCompose(isNilPtr).Is(nil))

		_, err := MustCompose(isPositive).Check(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil is not assignable to int")
	})

	t.Run("validator interface", func(t *testing.T) {
		t.Parallel()
		typ := MustCompose(Predicate(func(v any) bool { return v != nil }))
		assert.True(t, typ.Is(1))
		assert.False(t, typ.Is(nil))
	})
}

type logEntry struct {
	Level     string `json:"level"`
	Msg       string `json:"msg"`
	Type      string `json:"type"`
	Failures  int    `json:"failures"`
	Validator string `json:"validator"`
	Returned  string `json:"returned"`
}

func decodeLogs(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}

	return entries
}

func TestComposer_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := MustNewComposer(WithLogger(logger))

	isZero := func(v int) bool { return v == 0 }
	broken := func(any) int { return 1 }

	User, err := c.ComposeNamed("User", isZero, isZero)
	require.NoError(t, err)

	_, err = User.Check(0)
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "accepted values are not logged")

	_, err = User.Check(1)
	require.Error(t, err)

	_, err = c.MustCompose(broken).Check(1)
	require.ErrorIs(t, err, ErrInvalidValidator)

	entries := decodeLogs(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "DEBUG", entries[0].Level)
	assert.Equal(t, "value rejected", entries[0].Msg)
	assert.Equal(t, "User", entries[0].Type)
	assert.Equal(t, 2, entries[0].Failures)

	assert.Equal(t, "WARN", entries[1].Level)
	assert.Equal(t, "invalid validator", entries[1].Msg)
	assert.Equal(t, "Type", entries[1].Type)
	assert.Equal(t, stringify.Stringify(broken), entries[1].Validator)
	assert.Equal(t, "1", entries[1].Returned)
}

func TestComposer_NilLogger(t *testing.T) {
	t.Parallel()

	c := MustNewComposer(WithLogger(nil))

	_, err := c.MustCompose(func(any) bool { return false }).Check(1)
	require.ErrorIs(t, err, ErrMismatch)

	_, err = c.MustCompose(func(any) string { return "" }).Check(1)
	require.ErrorIs(t, err, ErrInvalidValidator)
}
