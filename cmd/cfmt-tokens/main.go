// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cfmt-tokens dumps the enriched token stream of C-family source
// files, one TSV row per token. It exists to debug the enrichment layer:
// the columns, newline counts, and semantic types here are exactly what a
// line-breaking engine would see.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/cfmt/lexer"
	"github.com/bufbuild/cfmt/source"
	"github.com/bufbuild/cfmt/style"
)

func main() {
	stylePath := flag.String("style", "", "path to a YAML style file (default: built-in style)")
	jobs := flag.Int("j", runtime.GOMAXPROCS(-1), "maximum number of files lexed concurrently")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: cfmt-tokens [-style file] [-j n] file...")
		os.Exit(2)
	}

	st := style.Default()
	if *stylePath != "" {
		text, err := os.ReadFile(*stylePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cfmt-tokens:", err)
			os.Exit(1)
		}
		st, err = style.Parse(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cfmt-tokens: %s: %v\n", *stylePath, err)
			os.Exit(1)
		}
	}

	files := flag.Args()
	dumps := make([]string, len(files))
	errs := make([]error, len(files))

	// Lex the files concurrently, but print in argument order.
	ctx := context.Background()
	sem := semaphore.NewWeighted(int64(max(*jobs, 1)))
	for i, path := range files {
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = err
			continue
		}
		go func() {
			defer sem.Release(1)
			dumps[i], errs[i] = dumpFile(path, st)
		}()
	}
	if err := sem.Acquire(ctx, int64(max(*jobs, 1))); err != nil {
		fmt.Fprintln(os.Stderr, "cfmt-tokens:", err)
		os.Exit(1)
	}

	failed := false
	for i, path := range files {
		if errs[i] != nil {
			fmt.Fprintf(os.Stderr, "cfmt-tokens: %s: %v\n", path, errs[i])
			failed = true
			continue
		}
		if len(files) > 1 {
			fmt.Printf("== %s\n", path)
		}
		fmt.Print(dumps[i])
	}
	if failed {
		os.Exit(1)
	}
}

func dumpFile(path string, st style.Style) (string, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	file := source.NewFile(path, string(text))
	toks := lexer.New(file, st).Lex()

	var out strings.Builder
	for i, tok := range toks {
		loc := file.Location(tok.Offset)
		fmt.Fprintf(&out, "%d\t%d:%d\t%v\t%v\t%d\t%d\t%q\n",
			i, loc.Line, loc.Column, tok.Kind, tok.Semantic,
			tok.UserNewlinesBefore, tok.OriginalColumn, tok.Text)
	}
	return out.String(), nil
}
