// Package santa draws a single gift-giving cycle ("Santa's list") over a
// registry of participants under social-compatibility rules.
//
// A draw is one Hamiltonian cycle: every participant gives exactly once and
// receives exactly once, and following giver → receiver from anyone visits
// everybody before returning. The draw is randomized through a giver×receiver
// weight table (the giving matrix):
//
//   - BuildMatrix seeds the table: 1 off the diagonal, 0 on it, then applies
//     partner exclusion, history decay (HistoryWeight) with optional couple
//     history, and rigging (a rigged giver's row keeps only the forced column).
//   - BuildCycle walks the table from an initial giver, sampling each receiver
//     proportionally to its row weight, zeroing the chosen receiver's column and
//     the triangle / couple-to-couple entries implied by the committed pair.
//     The initial giver is held back until the last step so the walk closes
//     exactly once. A giver with no weight left ends the attempt.
//   - Generate is the only retry loop: every attempt gets a fresh table and the
//     first complete list wins; when MaxAttempts is exhausted it returns
//     ErrBudgetExhausted and the rules should be loosened.
//
// Randomness comes from a Source (satisfied by *math/rand.Rand). Seed==0 maps
// to a fixed default seed, so identical inputs and seeds reproduce identical
// lists.
//
// History depth convention: depth 0 is the most recent year. With grandfather
// period G>0 the weight is min((depth/G)², 1), so last year's receiver is
// excluded outright and entries at depth ≥ G no longer constrain. G≤0 disables
// the decay (weight 1).
//
// Nothing in this package is shared across attempts; a *Draw is immutable and
// safe for concurrent use, while Source values are not.
package santa
