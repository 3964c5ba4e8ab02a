// The recseq command streams the countdown, prefixes or substrings of its input.
// Usage:
//
//	$ recseq countdown 3
//	$ recseq substrings abc
//	$ recseq -format yaml -limit 4 prefixes usr local bin
//
// A single argument to prefixes or substrings is enumerated by character;
// several arguments form a sequence of words.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"recseq/seqs"
)

var (
	flagFormat = flag.String("format", "text", "output `format`: text or yaml")
	flagLimit  = flag.Int("limit", 0, "stop after `N` items (default all)")
)

var errUsage = errors.New("usage")

func init() {
	flag.Usage = func() {
		os.Stderr.WriteString(`The recseq command streams recursive enumerations of its input.
Usage:

	recseq [flags] countdown K
	recseq [flags] prefixes ARG...
	recseq [flags] substrings ARG...

`)
		flag.PrintDefaults()
	}
}

type options struct {
	format string
	limit  int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("recseq: ")

	flag.Parse()
	err := run(os.Stdout, options{format: *flagFormat, limit: *flagLimit}, flag.Args())
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, opts options, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	seq, err := enumerate(args[0], args[1:])
	if err != nil {
		return err
	}
	if opts.limit > 0 {
		seq = seqs.Take(seq, opts.limit)
	}

	switch opts.format {
	case "text":
		for v := range seq {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		items := []any{}
		for v := range seq {
			items = append(items, v)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

func enumerate(cmd string, args []string) (iter.Seq[any], error) {
	switch cmd {
	case "countdown":
		if len(args) != 1 {
			return nil, errUsage
		}
		k, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("bad count %q: %w", args[0], err)
		}
		return boxed(seqs.Countdown(k)), nil
	case "prefixes":
		switch len(args) {
		case 0:
			return nil, errUsage
		case 1:
			return boxed(seqs.StringPrefixes(args[0])), nil
		}
		return boxed(seqs.Prefixes(args)), nil
	case "substrings":
		switch len(args) {
		case 0:
			return nil, errUsage
		case 1:
			return boxed(seqs.StringSubstrings(args[0])), nil
		}
		return boxed(seqs.Substrings(args)), nil
	}
	return nil, fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

func boxed[T any](seq iter.Seq[T]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
