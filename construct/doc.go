// Package construct implements the direct and recursive CFF construction
// algorithms: Identity, Sperner, Steiner Triple System, Reed-Solomon and
// its shortened variant, Porat-Rothschild, a small fixed catalogue, and
// the five recursive combiners (Additive, ExtByOne, Doubling, Kronecker,
// Optimized Kronecker).
//
// Every direct construction allocates a fresh *cff.CFF from integer
// parameters. Every recursive combiner allocates a fresh *cff.CFF from
// one or two already-materialised children and never mutates its
// inputs. None of these functions verify the cover-free property of
// their output — that is cff.CFF.Verify's job, invoked by callers (and
// by this package's own tests) as a diagnostic, not a precondition.
package construct
