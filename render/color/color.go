// Package color provides configuration for coloring rendered edits using ANSI escape sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents insertions in bold green:
//
//	Inserts(1, 32)
//
// This is equivalent to the following raw ANSI sequence: \033[1;32m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"znkr.io/align/internal/config"
)

// A Option makes it possible to configure custom colors in render.TerminalColors.
type Option func(*config.ColorConfig)

// Inserts colors inserted elements.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

// Deletes colors deleted elements.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Substitutes colors substituted elements.
func Substitutes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Substitute = code
	}
}

func format(params []int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
