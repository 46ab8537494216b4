// Package combinatorics provides the small counting primitives every CFF
// construction is built from: binomial coefficients with overflow
// detection, integer exponentiation, a prime sieve, and the lexicographic
// successor functions used to enumerate k-subsets and k-tuples in a fixed,
// deterministic order.
//
// Nothing here allocates more than its inputs require and nothing here
// depends on any other package in this module — it is the leaf of the
// dependency graph.
package combinatorics
