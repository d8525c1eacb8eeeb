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

// Package render presents edit operations as human readable text.
//
// Changes are enclosed in separators and written with a marker for each operation:
//
//	he[-l-l~o/y]
//
// Here, "-l" is a deleted element, "~o/y" replaces "o" with "y", and "+c" would be an inserted
// "c". Long runs of unchanged elements far away from any change are shortened.
package render

import (
	"strconv"
	"strings"

	"znkr.io/align"
	"znkr.io/align/internal/config"
	"znkr.io/align/internal/spans"
)

const (
	prefixDelete     = "-"
	prefixInsert     = "+"
	prefixSubstitute = "~"
	substituteSep    = "/"
)

// String aligns the runes in x and y using the Levenshtein policy and renders the edits necessary
// to convert from one to the other.
//
// The following options are supported: [Separators], [Parens], [Shorten], [Full],
// [TerminalColors]
func String(x, y string, opts ...Option) string {
	return Edits(align.Edits([]rune(x), []rune(y)), opts...)
}

// Edits renders a list of edits.
//
// The following options are supported: [Separators], [Parens], [Shorten], [Full],
// [TerminalColors]
func Edits(edits []align.Edit[rune], opts ...Option) string {
	cfg := config.FromOptions(opts, config.Separators|config.Shorten|config.Colors)

	changed := make([]bool, len(edits))
	nchanges := 0
	for k, e := range edits {
		if e.Op != align.Keep {
			changed[k] = true
			nchanges++
		}
	}

	var sb strings.Builder
	if cfg.Context < 0 || nchanges == 0 {
		writeEdits(&sb, edits, cfg)
		return sb.String()
	}

	pos := 0
	for s := range spans.Spans(changed, cfg.Context) {
		if s.Start > pos {
			sb.WriteString(cfg.Ellipsis)
		}
		writeEdits(&sb, edits[s.Start:s.End], cfg)
		pos = s.End
	}
	if pos < len(edits) {
		sb.WriteString(cfg.Ellipsis)
	}
	return sb.String()
}

// writeEdits writes edits to sb and encloses every run of changes in separators.
func writeEdits(sb *strings.Builder, edits []align.Edit[rune], cfg config.Config) {
	inChange := false
	for _, e := range edits {
		switch {
		case e.Op != align.Keep && !inChange:
			sb.WriteString(cfg.StartSeparator)
			inChange = true
		case e.Op == align.Keep && inChange:
			sb.WriteString(cfg.EndSeparator)
			inChange = false
		}
		writeEdit(sb, e, cfg.Colors)
	}
	if inChange {
		sb.WriteString(cfg.EndSeparator)
	}
}

func writeEdit(sb *strings.Builder, e align.Edit[rune], colors *config.ColorConfig) {
	if colors != nil {
		switch e.Op {
		case align.Keep:
			sb.WriteRune(e.X)
		case align.Delete:
			writeColored(sb, colors.Delete, e.X, colors.Reset)
		case align.Insert:
			writeColored(sb, colors.Insert, e.Y, colors.Reset)
		case align.Substitute:
			writeColored(sb, colors.Substitute, e.X, colors.Reset)
		default:
			panic("never reached")
		}
		return
	}

	switch e.Op {
	case align.Keep:
		sb.WriteRune(e.X)
	case align.Delete:
		sb.WriteString(prefixDelete)
		sb.WriteRune(e.X)
	case align.Insert:
		sb.WriteString(prefixInsert)
		sb.WriteRune(e.Y)
	case align.Substitute:
		sb.WriteString(prefixSubstitute)
		sb.WriteRune(e.X)
		sb.WriteString(substituteSep)
		sb.WriteRune(e.Y)
	default:
		panic("never reached")
	}
}

func writeColored(sb *strings.Builder, code string, r rune, reset string) {
	sb.WriteString(code)
	sb.WriteRune(r)
	sb.WriteString(reset)
}

// CIGAR returns a compact run-length encoding of edits, e.g. "2=2D1X" for the edits from "hello"
// to "hey". The operations are encoded as '=' (keep), 'X' (substitute), 'I' (insert) and
// 'D' (delete).
func CIGAR[T any](edits []align.Edit[T]) string {
	var sb strings.Builder
	n := 0
	var last byte
	for _, e := range edits {
		op := cigarOp(e.Op)
		if n > 0 && op != last {
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte(last)
			n = 0
		}
		last = op
		n++
	}
	if n > 0 {
		sb.WriteString(strconv.Itoa(n))
		sb.WriteByte(last)
	}
	return sb.String()
}

func cigarOp(op align.Op) byte {
	switch op {
	case align.Keep:
		return '='
	case align.Substitute:
		return 'X'
	case align.Insert:
		return 'I'
	case align.Delete:
		return 'D'
	default:
		panic("never reached")
	}
}
