package biguint

import "github.com/davecgh/go-spew/spew"

var limbDumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

// GoString renders z's limbs (little-endian, one line per limb) for use in
// %#v and debugger output, via go-spew rather than a hand-rolled printer.
func (z *BigUint) GoString() string {
	return limbDumper.Sdump(z.limbs)
}
