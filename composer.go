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

package vtype

import (
	"errors"
	"fmt"
	"sync"

	"github.com/AlexisTessier/vanille-type/stringify"
)

// Composer builds [Type] values sharing one configuration.
//
// Use [NewComposer] or [MustNewComposer] to configure rendering, identity or
// logging, or the package-level [Compose] for the defaults.
// Composer is safe for concurrent use.
type Composer struct {
	cfg  *config
	msgs messages
}

// NewComposer creates a [Composer] with the given options.
// NewComposer returns an error wrapping [ErrInvalidConfig] if an option is
// nil or the options conflict.
//
// Example:
//
//	c, err := vtype.NewComposer(vtype.WithLogger(logger))
//	if err != nil {
//	    return fmt.Errorf("create composer: %w", err)
//	}
func NewComposer(opts ...Option) (*Composer, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.source {
		cfg.stringifier = stringify.New(stringify.WithSource(true))
	}

	return &Composer{cfg: cfg, msgs: messages{s: cfg.stringifier}}, nil
}

// MustNewComposer creates a [Composer] with the given options.
// Panics if the options conflict.
func MustNewComposer(opts ...Option) *Composer {
	c, err := NewComposer(opts...)
	if err != nil {
		panic(fmt.Sprintf("vtype.MustNewComposer: %v", err))
	}

	return c
}

// Compose returns a [Type] running validators, in order, on every check.
// Duplicates are kept and evaluated independently.
//
// Compose returns an error wrapping [ErrInvalidValidator] when an argument is
// not a validator (see [Validator] for the accepted forms).
func (c *Composer) Compose(validators ...any) (*Type, error) {
	return c.compose("", validators)
}

// MustCompose is like [Composer.Compose] but panics on error.
func (c *Composer) MustCompose(validators ...any) *Type {
	t, err := c.Compose(validators...)
	if err != nil {
		panic(err)
	}

	return t
}

// ComposeNamed is like [Composer.Compose] and gives the Type a display name.
func (c *Composer) ComposeNamed(name string, validators ...any) (*Type, error) {
	return c.compose(name, validators)
}

// MustComposeNamed is like [Composer.ComposeNamed] but panics on error.
func (c *Composer) MustComposeNamed(name string, validators ...any) *Type {
	t, err := c.ComposeNamed(name, validators...)
	if err != nil {
		panic(err)
	}

	return t
}

func (c *Composer) compose(name string, validators []any) (*Type, error) {
	entries := make([]entry, 0, len(validators))
	for i, v := range validators {
		e, err := normalize(v, c.cfg.stringifier)
		if err != nil {
			return nil, fmt.Errorf("validator %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	sources := make([]any, len(validators))
	copy(sources, validators)

	return &Type{
		name:     name,
		composer: c,
		sources:  sources,
		base:     entries,
		entries:  entries,
	}, nil
}

func (c *Composer) messages() messages {
	return c.msgs
}

func (c *Composer) same(a, b any) bool {
	return c.cfg.identity(a, b)
}

func (c *Composer) invalidValidator(validator, returned any) *InvalidValidatorError {
	return &InvalidValidatorError{
		Validator: validator,
		Returned:  returned,
		message:   c.msgs.invalidValidator(validator, returned),
	}
}

func (c *Composer) logRejected(t *Type, err *Error) {
	if c.cfg.logger == nil {
		return
	}
	c.cfg.logger.Debug("value rejected",
		"type", t.String(),
		"failures", len(err.failures),
	)
}

func (c *Composer) logInvalid(t *Type, err error) {
	if c.cfg.logger == nil {
		return
	}

	var ierr *InvalidValidatorError
	if !errors.As(err, &ierr) {
		return
	}
	c.cfg.logger.Warn("invalid validator",
		"type", t.String(),
		"validator", c.cfg.stringifier.Stringify(ierr.Validator),
		"returned", c.cfg.stringifier.Stringify(ierr.Returned),
	)
}

// Package-level composer state for [Compose] and friends.
var (
	defaultComp     *Composer
	defaultCompOnce sync.Once
)

// defaultComposer returns the default [Composer], creating it if necessary.
func defaultComposer() *Composer {
	defaultCompOnce.Do(func() {
		defaultComp = MustNewComposer()
	})

	return defaultComp
}

// Compose returns a [Type] built by the default [Composer].
//
// Example:
//
//	Positive := vtype.MustCompose(func(v int) bool { return v > 0 })
//	n, err := Positive.Check(-1)
func Compose(validators ...any) (*Type, error) {
	return defaultComposer().Compose(validators...)
}

// MustCompose is like [Compose] but panics on error.
// Use it for package-level Type declarations.
func MustCompose(validators ...any) *Type {
	return defaultComposer().MustCompose(validators...)
}

// ComposeNamed returns a named [Type] built by the default [Composer].
func ComposeNamed(name string, validators ...any) (*Type, error) {
	return defaultComposer().ComposeNamed(name, validators...)
}

// MustComposeNamed is like [ComposeNamed] but panics on error.
func MustComposeNamed(name string, validators ...any) *Type {
	return defaultComposer().MustComposeNamed(name, validators...)
}
