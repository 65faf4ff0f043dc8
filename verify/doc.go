// SPDX-License-Identifier: MIT

// Package verify cross-checks the arc length machinery with independent
// methods: control-polygon bounds, uniform chord sums, additivity of
// sub-range lengths, inverse roundtrips, and lookup-table consistency.
//
// Each check recomputes an expensive independent estimate, so none of them
// is ever invoked implicitly by the arclen or integrate hot paths; they
// exist for test harnesses and for precision-critical callers that want a
// second opinion before trusting a result.
//
// A failed check is data, not an error: every check returns a report with
// Valid, the decimal diagnostics that justify the verdict, and Errors with
// one message per violated property. The error return is reserved for
// malformed input (nil curve, non-finite split parameter, bad options), so
// a harness can aggregate reports without wrapping every call in recover
// logic.
package verify
