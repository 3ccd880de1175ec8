// Command bigadd adds two decimal-encoded 256-bit unsigned integers and
// prints the wrapped (overflow-discarding) sum, per spec.md §6.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/bastionzero/primal/biguint"
)

const width = 4 // 256 bits

var debug = flag.Bool("debug", false, "dump the sum and the overflow flag before printing the sum")

func main() {
	flag.Parse()
	sum, overflow, err := add(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *debug {
		spew.Fdump(os.Stderr, sum, overflow)
	}
	fmt.Println(sum.String())
}

// add parses args[0] and args[1] as decimal 256-bit values and adds them
// with overflow, returning the wrapped sum and whether the true sum
// exceeded 256 bits.
func add(args []string) (*biguint.BigUint, bool, error) {
	if len(args) < 2 {
		return nil, false, fmt.Errorf("usage: bigadd [-debug] <a> <b>")
	}

	a := biguint.New(width)
	if _, err := a.SetString(args[0]); err != nil {
		return nil, false, err
	}
	b := biguint.New(width)
	if _, err := b.SetString(args[1]); err != nil {
		return nil, false, err
	}

	sum := biguint.New(width)
	overflow := sum.Add(a, b)
	return sum, overflow, nil
}
