package planner_test

import (
	"fmt"

	"github.com/mdemczyk/cfftables/planner"
)

// ExampleCreate plans the d=1 table (always a direct Sperner fill, no
// fixed-point loop) and materialises the smallest row covering 6
// columns — the same 1-CFF(4,6) this package's construct dependency
// builds directly.
func ExampleCreate() {
	ctx, err := planner.Create(1, 6, 1000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := ctx.GetByN(1, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	row, _ := ctx.Table(1).Row(result.T())
	fmt.Println("recipe:", row.Recipe().ShortName())
	fmt.Println("d =", result.D())
	fmt.Println("t =", result.T())
	fmt.Println("n =", result.N())

	ok, err := result.Verify()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cover-free:", ok)

	// Output:
	// recipe: Sperner
	// d = 1
	// t = 4
	// n = 6
	// cover-free: true
}
