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

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"znkr.io/align"
	"znkr.io/align/render"
)

type config struct {
	input      string
	parallel   int
	color      bool
	context    int
	full       bool
	cigar      bool
	matrix     bool
	cpuprofile bool
	memprofile bool
}

type pair struct {
	x, y string
}

type result struct {
	distance int
	diff     string
	cigar    string
	matrix   string
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "levdiff [flags] <x> <y>",
		Short: "Print the edit distance and the edits between strings",
		Long: `levdiff computes the Levenshtein distance between two strings and shows the edits
that convert the first string into the second one.

Changes are enclosed in brackets: "+c" is an inserted "c", "-c" a deleted "c" and
"~a/b" replaces "a" with "b". Use --input to align many pairs from a file.`,
		Args: func(_ *cobra.Command, args []string) error {
			if cfg.input != "" && len(args) != 0 {
				return fmt.Errorf("unexpected arguments with --input: %v", args)
			}
			if cfg.input == "" && len(args) != 2 {
				return fmt.Errorf("expected 2 arguments, got %d", len(args))
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case cfg.cpuprofile:
				defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			case cfg.memprofile:
				defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			}

			var pairs []pair
			if cfg.input != "" {
				var err error
				pairs, err = readPairsFile(cfg.input)
				if err != nil {
					return err
				}
			} else {
				pairs = []pair{{args[0], args[1]}}
			}
			return run(cmd.Context(), cmd.OutOrStdout(), pairs, &cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.input, "input", "i", "", "file with pairs of lines starting with '>' and '<'")
	flags.IntVarP(&cfg.parallel, "parallel", "j", runtime.GOMAXPROCS(0), "number of pairs to align in parallel")
	flags.BoolVar(&cfg.color, "color", false, "use terminal colors instead of operation markers")
	flags.IntVar(&cfg.context, "context", 20, "number of unchanged characters to show around changes")
	flags.BoolVar(&cfg.full, "full", false, "never shorten unchanged characters")
	flags.BoolVar(&cfg.cigar, "cigar", false, "print a CIGAR string for every pair")
	flags.BoolVar(&cfg.matrix, "matrix", false, "print the alignment matrix for every pair")
	flags.BoolVar(&cfg.cpuprofile, "cpuprofile", false, "write a cpu profile to the current directory")
	flags.BoolVar(&cfg.memprofile, "memprofile", false, "write a memory profile to the current directory")
	cmd.MarkFlagsMutuallyExclusive("cpuprofile", "memprofile")
	cmd.MarkFlagsMutuallyExclusive("context", "full")
	return cmd
}

func run(ctx context.Context, w io.Writer, pairs []pair, cfg *config) error {
	if cfg.parallel < 1 {
		return fmt.Errorf("--parallel must be at least 1, got %d", cfg.parallel)
	}

	var opts []render.Option
	if cfg.full {
		opts = append(opts, render.Full())
	} else {
		opts = append(opts, render.Shorten(cfg.context, "..."))
	}
	if cfg.color {
		opts = append(opts, render.TerminalColors())
	}

	// Every pair gets its own matrix, there's nothing shared between the goroutines except for
	// the result slot they own.
	results := make([]result, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallel)
	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x, y := []rune(p.x), []rune(p.y)
			m := align.Compute(align.Levenshtein[rune]{}, x, y)
			edits := align.Backtrace(m, x, y)
			results[i] = result{
				distance: align.Total(m),
				diff:     render.Edits(edits, opts...),
			}
			if cfg.cigar {
				results[i].cigar = render.CIGAR(edits)
			}
			if cfg.matrix {
				results[i].matrix = m.String()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		if len(pairs) > 1 {
			fmt.Fprintf(bw, "x: %s\n", pairs[i].x)
			fmt.Fprintf(bw, "y: %s\n", pairs[i].y)
		}
		fmt.Fprintf(bw, "distance: %d\n", r.distance)
		fmt.Fprintf(bw, "diff: %s\n", r.diff)
		if cfg.cigar {
			fmt.Fprintf(bw, "cigar: %s\n", r.cigar)
		}
		if cfg.matrix {
			fmt.Fprintf(bw, "matrix:\n%s", r.matrix)
		}
	}
	return bw.Flush()
}

func readPairsFile(filename string) ([]pair, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	pairs, err := readPairs(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return pairs, nil
}

var errMissingY = errors.New("line starting with '>' must be followed by a line starting with '<'")

func readPairs(r io.Reader) ([]pair, error) {
	var pairs []pair
	var x *string
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		switch {
		case line == "":
			continue
		case line[0] == '>':
			if x != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, errMissingY)
			}
			s := line[1:]
			x = &s
		case line[0] == '<':
			if x == nil {
				return nil, fmt.Errorf("line %d: line starting with '<' must follow a line starting with '>'", lineno)
			}
			pairs = append(pairs, pair{*x, line[1:]})
			x = nil
		default:
			return nil, fmt.Errorf("line %d: line must start with '>' or '<'", lineno)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if x != nil {
		return nil, fmt.Errorf("end of input: %w", errMissingY)
	}
	return pairs, nil
}
