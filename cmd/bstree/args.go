package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

type Args struct {
	Values IntArray
	Random int
	Seed   int64
	Arena  bool
	Debug  bool
	Shape  bool
}

// IntArray collects the values of a repeatable flag; each occurrence may be a comma separated list.
type IntArray []int

func (arr *IntArray) String() string {
	return fmt.Sprint(*arr)
}

func (arr *IntArray) Set(value string) error {
	for _, f := range strings.Split(value, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", f, err)
		}
		*arr = append(*arr, v)
	}
	return nil
}

func parseArgs(argv []string) (*Args, error) {
	args := new(Args)
	fs := flag.NewFlagSet("bstree", flag.ContinueOnError)

	fs.Var(&args.Values, "v", "value to insert, in order; can be given multiple times or as a comma separated list")
	fs.IntVar(&args.Random, "random", 0, "number of random values to insert after the ones given by -v")
	fs.Int64Var(&args.Seed, "seed", 1, "seed for -random")
	fs.BoolVar(&args.Arena, "arena", false, "use the arena backed tree instead of the pointer backed one")
	fs.BoolVar(&args.Debug, "debug", false, "enable debug output")
	fs.BoolVar(&args.Shape, "shape", true, "print the shape of the tree")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	if args.Random < 0 {
		return nil, fmt.Errorf("-random must not be negative, got %d", args.Random)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	return args, nil
}
