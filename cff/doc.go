// Package cff implements the packed-bit incidence matrix that represents
// a d-CFF(t,n): a t-row, n-column 0/1 matrix such that for every d+1
// columns, each has a row where it is 1 and the other d are 0.
//
// Storage: each row occupies a whole number of bytes — row_pitch_bits is
// n rounded up to the next multiple of 8 — so that rows can be addressed
// independently. Bit c of row r lives at bit index r*row_pitch_bits + c
// of the packed buffer, LSB-first within each byte. Bits at or beyond
// column n within a row's pitch are never read or written by this
// package and must be treated as indeterminate by any external consumer
// of MatrixData.
//
// A CFF does not verify its own cover-freeness on construction — Verify
// is a separate, explicit, and comparatively expensive diagnostic.
package cff
