// Command bstree builds an unbalanced binary search tree from the given values
// and prints its shape together with the answers of all its queries.
package main

import (
	"errors"
	"flag"
	"math/rand"
	"os"

	"github.com/Roberson-Andrade/own-kata-machine/Trees"
	log "github.com/sirupsen/logrus"
)

func main() {
	args, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		log.Error("[ARGS] ", err)
		os.Exit(2)
	}

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if args.Debug {
		log.SetLevel(log.DebugLevel)
	}

	tree := buildTree(args)
	log.Debug("[TREE] built a tree of ", tree.Size(), " values with height ", tree.Height())

	if err := render(os.Stdout, tree, args.Shape); err != nil {
		log.Fatal("[RENDER] error while printing the tree: ", err)
	}
}

func buildTree(args *Args) Trees.Tree[int] {
	var tree Trees.Tree[int]
	if args.Arena {
		tree = Trees.NewArr[int](uint32(len(args.Values) + args.Random))
	} else {
		tree = Trees.New[int]()
	}

	insert := func(v int) {
		if !tree.Insert(v) {
			log.Debug("[TREE] ignored duplicate value ", v)
		}
	}
	for _, v := range args.Values {
		insert(v)
	}
	if args.Random > 0 {
		rg := rand.New(rand.NewSource(args.Seed))
		log.WithFields(log.Fields{"count": args.Random, "seed": args.Seed}).Debug("[TREE] inserting random values")
		for range make([]struct{}, args.Random) {
			insert(rg.Intn(10 * args.Random))
		}
	}
	return tree
}
