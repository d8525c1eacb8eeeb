// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// render.Option.
package config

// Config collects all configurable parameters for rendering functions in this module.
type Config struct {
	// StartSeparator and EndSeparator enclose every run of changes.
	StartSeparator, EndSeparator string

	// Context is the number of unchanged elements to keep before and after a run of changes.
	// Unchanged elements further away are replaced by Ellipsis. A negative value disables
	// shortening.
	Context int

	// Ellipsis replaces elided unchanged elements.
	Ellipsis string

	// If set, changes are presented with ANSI colors instead of operation markers.
	Colors *ColorConfig
}

// ColorConfig contains the ANSI escape sequences used for each operation.
type ColorConfig struct {
	Insert     string
	Delete     string
	Substitute string
	Reset      string
}

// Default is the default configuration.
var Default = Config{
	StartSeparator: "[",
	EndSeparator:   "]",
	Context:        20,
	Ellipsis:       "...",
	Colors:         nil,
}

// DefaultColors is the default color configuration: green insertions, red deletions and cyan
// substitutions.
var DefaultColors = ColorConfig{
	Insert:     "\033[32m",
	Delete:     "\033[31m",
	Substitute: "\033[36m",
	Reset:      "\033[0m",
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Separators Flag = 1 << iota
	Shorten
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Separators:
		return "render.Separators"
	case Shorten:
		return "render.Shorten"
	case Colors:
		return "render.TerminalColors"
	default:
		panic("never reached")
	}
}
