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
	"fmt"
	"log/slog"

	"github.com/AlexisTessier/vanille-type/stringify"
)

// IdentityFunc decides whether two values are the same subject.
// See [Same] for the default.
type IdentityFunc func(a, b any) bool

// config holds internal configuration used by [Composer].
type config struct {
	stringifier       stringify.Stringifier
	customStringifier bool
	identity          IdentityFunc
	logger            *slog.Logger
	source            bool
}

// validate checks the configuration for errors.
func (c *config) validate() error {
	if c.stringifier == nil {
		return fmt.Errorf("%w: stringifier cannot be nil", ErrInvalidConfig)
	}
	if c.identity == nil {
		return fmt.Errorf("%w: identity function cannot be nil", ErrInvalidConfig)
	}
	if c.source && c.customStringifier {
		return fmt.Errorf("%w: WithSource only applies to the built-in stringifier", ErrInvalidConfig)
	}

	return nil
}

// Option is a functional option for configuring a [Composer].
type Option func(*config)

// WithStringifier sets how values and validators are rendered in messages.
// The default is [stringify.Default].
//
// Example:
//
//	c := vtype.MustNewComposer(vtype.WithStringifier(
//	    stringify.New(stringify.WithFormatter(stringify.YAML)),
//	))
func WithStringifier(s stringify.Stringifier) Option {
	return func(c *config) {
		c.stringifier = s
		c.customStringifier = true
	}
}

// WithIdentity sets the comparison used to decide whether a nested [Type]
// checked the same value as the validator that called it. The default is [Same].
func WithIdentity(fn IdentityFunc) Option {
	return func(c *config) {
		c.identity = fn
	}
}

// WithLogger enables logging of rejected values (Debug) and invalid
// validators (Warn). Without it a [Composer] never logs.
//
// Example:
//
//	c := vtype.MustNewComposer(vtype.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithSource renders function validators with their source location.
// It cannot be combined with [WithStringifier].
func WithSource(enabled bool) Option {
	return func(c *config) {
		c.source = enabled
	}
}

// newConfig creates a config with defaults.
func newConfig() *config {
	return &config{
		stringifier: stringify.Default(),
		identity:    Same,
	}
}
