package construct

import "github.com/mdemczyk/cfftables/cff"

// STS returns a 2-CFF(v, v(v-1)/6): the incidence matrix of a Steiner
// triple system of order v (v must be 1 or 3 mod 6), each column the
// three point-positions of one block. Uses the Skolem construction for
// v ≡ 1 (mod 6) and the Bose construction for v ≡ 3 (mod 6).
func STS(v int) (*cff.CFF, error) {
	var blocks [][3]int
	switch {
	case v%6 == 1:
		blocks = skolemBlocks(v)
	case v%6 == 3:
		blocks = boseBlocks(v)
	default:
		return nil, ErrInvalidParams
	}

	numBlocks := len(blocks)
	result, err := cff.Alloc(2, v, int64(numBlocks))
	if err != nil {
		return nil, err
	}
	for col, block := range blocks {
		for _, point := range block {
			if err := result.Set(point, int64(col), 1); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// symmetricIdempotentQuasigroup implements x,y -> ((n+1)/2)*(x+y) mod n,
// used by the Bose construction.
func symmetricIdempotentQuasigroup(n, x, y int) int {
	return (((n + 1) / 2) * (x + y)) % n
}

// halfIdempotentQuasigroup implements the Skolem construction's
// quasigroup: for t = (x+y) mod n, returns t/2 if t is even, else
// (t+n-1)/2.
func halfIdempotentQuasigroup(n, x, y int) int {
	t := (x + y) % n
	if t%2 == 0 {
		return t / 2
	}

	return (t + n - 1) / 2
}

// boseBlocks builds the v ≡ 3 (mod 6) Steiner triple system via Bose's
// construction over a symmetric idempotent quasigroup of order
// Q = 2*((v-3)/6)+1. Points are 0-indexed throughout: point x of copy
// i is x + Q*i.
func boseBlocks(v int) [][3]int {
	n := (v - 3) / 6
	q := 2*n + 1

	quasi := make([][]int, q)
	for x := range quasi {
		quasi[x] = make([]int, q)
		for y := range quasi[x] {
			quasi[x][y] = symmetricIdempotentQuasigroup(q, x, y)
		}
	}

	var blocks [][3]int
	for x := 0; x <= 2*n; x++ {
		for y := 0; y <= 2*n; y++ {
			switch {
			case x == y:
				blocks = append(blocks, [3]int{
					x + q*0,
					x + q*1,
					x + q*2,
				})
			case x < y:
				for i := 0; i < 3; i++ {
					blocks = append(blocks, [3]int{
						x + q*i,
						y + q*i,
						quasi[x][y] + q*((i+1)%3),
					})
				}
			}
		}
	}

	return blocks
}

// skolemBlocks builds the v ≡ 1 (mod 6) Steiner triple system via
// Skolem's construction over a half-idempotent quasigroup of order
// Q = 2*((v-1)/6), with a single point at infinity.
func skolemBlocks(v int) [][3]int {
	n := (v - 1) / 6
	q := 2 * n
	inf := v - 1 // 0-indexed point at infinity

	quasi := make([][]int, q)
	for x := range quasi {
		quasi[x] = make([]int, q)
		for y := range quasi[x] {
			quasi[x][y] = halfIdempotentQuasigroup(q, x, y)
		}
	}

	var blocks [][3]int
	for x := 0; x <= n-1; x++ {
		blocks = append(blocks, [3]int{
			x + q*0,
			x + q*1,
			x + q*2,
		})
		for i := 0; i < 3; i++ {
			blocks = append(blocks, [3]int{
				inf,
				n + x + q*i,
				x + q*((i+1)%3),
			})
		}
	}
	for x := 0; x <= 2*n-1; x++ {
		for y := 0; y <= 2*n-1; y++ {
			if x < y {
				for i := 0; i < 3; i++ {
					blocks = append(blocks, [3]int{
						x + q*i,
						y + q*i,
						quasi[x][y] + q*((i+1)%3),
					})
				}
			}
		}
	}

	return blocks
}
