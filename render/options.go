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

package render

import (
	"znkr.io/align/internal/config"
	"znkr.io/align/render/color"
)

// Option configures the behavior of rendering functions.
type Option = config.Option

// Separators sets the strings that enclose every run of changes. The default is "[" and "]".
func Separators(start, end string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.StartSeparator = start
		cfg.EndSeparator = end
		return config.Separators
	}
}

// Parens encloses every run of changes in parentheses.
func Parens() Option {
	return Separators("(", ")")
}

// Shorten replaces unchanged elements that are more than size elements away from any change by
// text. The default is 20 and "...".
//
// If there are no changes at all, the input is rendered in full.
func Shorten(size int, text string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, size)
		cfg.Ellipsis = text
		return config.Shorten
	}
}

// Full disables shortening of unchanged elements.
func Full() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = -1
		return config.Shorten
	}
}

// TerminalColors presents changes using ANSI colors instead of operation markers: insertions in
// green, deletions in red and substituted elements in cyan. Use the options in
// [znkr.io/align/render/color] to customize the colors.
func TerminalColors(opts ...color.Option) Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		colors := cc
		cfg.Colors = &colors
		return config.Colors
	}
}
