package cff_test

import (
	"fmt"

	"github.com/mdemczyk/cfftables/construct"
)

// ExampleCFF_Verify builds a trivial 2-CFF by direct construction and
// confirms it is cover-free.
func ExampleCFF_Verify() {
	c, err := construct.Identity(2, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("d =", c.D())
	fmt.Println("t =", c.T())
	fmt.Println("n =", c.N())

	ok, err := c.Verify()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cover-free:", ok)

	// Output:
	// d = 2
	// t = 5
	// n = 5
	// cover-free: true
}
