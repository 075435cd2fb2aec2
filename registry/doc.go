// Package registry holds the participant set of a gift-exchange draw.
//
// A Registry maps every participant name to a stable index in [0..n-1]
// (insertion order), and answers partner and history lookups by index so that
// the selection table in package santa can be addressed without string keys.
//
// Construction validates the configuration once, up front:
//   - names are non-empty and unique,
//   - a partner names a known participant other than oneself, and partnership
//     is symmetric (A's partner is B iff B's partner is A),
//   - every non-empty history entry names a known participant.
//
// Violations are reported with the sentinels in errors.go wrapped with the
// offending names; callers match them with errors.Is.
package registry
