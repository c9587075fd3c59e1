package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.lepak.sg/bst/tree/binary"
)

var (
	seed   = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num    = flag.Int("n", 10, "number of nodes in the tree")
	rounds = flag.Int("r", 3, "number of random rotations to perform")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	tr := binary.BuildRandom(*num, *seed)

	fmt.Println("seed:", *seed)
	fmt.Println("tree:")
	fmt.Println(tr.String())
	fmt.Println("size:", tr.Size(), "height:", tr.Height())

	done, err := binary.RotateRandom(tr, *rounds, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rotation %d failed: %v\n", done+1, err)
		os.Exit(1)
	}

	fmt.Printf("after %d rotations:\n", done)
	fmt.Println(tr.String())
	fmt.Println("size:", tr.Size(), "height:", tr.Height())

	if err := tr.Verify(); err != nil {
		fmt.Fprintln(os.Stderr, "verify:", err)
		os.Exit(1)
	}
}
