package santa

import (
	"math"

	"github.com/katalvlaran/secretsanta/matrix"
	"github.com/katalvlaran/secretsanta/registry"
)

// historyExponent shapes the decay curve of HistoryWeight.
const historyExponent = 2.0

// HistoryWeight is the selection weight of a receiver given depth years ago
// (depth 0 = most recent). With grandfather ≤ 0 it is 1; otherwise
// min((depth/grandfather)², 1): 0 for last year, rising to 1 once depth
// reaches the grandfather period.
//
// Complexity: O(1).
func HistoryWeight(depth int, grandfather float64) float64 {
	if grandfather <= 0 {
		return 1
	}
	return math.Min(math.Pow(float64(depth)/grandfather, historyExponent), 1)
}

// BuildMatrix returns a fresh giving matrix for one attempt.
//
// Stages (each only lowers entries):
//  1. 1 off the diagonal, 0 on it.
//  2. Partner exclusion unless PartnerToPartner.
//  3. History decay when WeightHistory (see WeightHistory).
//  4. Rigging: a rigged giver's row becomes 0 except its forced column, set to 1.
//
// An all-zero row is a valid result; BuildCycle reports it.
//
// Complexity: O(n² + h) for total history length h.
func (d *Draw) BuildMatrix() (*matrix.Dense, error) {
	var n = d.reg.Len()
	m, err := matrix.NewSquare(n, 0, 1)
	if err != nil {
		return nil, err
	}

	var i, p int
	if !d.rules.PartnerToPartner {
		for i = 0; i < n; i++ {
			if p = d.reg.Partner(i); p != registry.NoPartner {
				if err = m.Set(i, p, 0); err != nil {
					return nil, err
				}
			}
		}
	}

	if err = WeightHistory(m, d.reg, d.rules); err != nil {
		return nil, err
	}

	for _, i = range d.rigged {
		if err = m.FillRow(i, 0); err != nil {
			return nil, err
		}
		if err = m.Set(i, d.rig[i], 1); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// WeightHistory min-merges history weights into m. It is a no-op unless
// rules.WeightHistory is set, and idempotent: applying it twice leaves m as
// after the first application.
//
// For giver g with past receiver r at depth t, entry (g,r) becomes
// min(current, HistoryWeight(t)). With WeightCoupleHistory the same weight is
// merged into (partner(g),r), (g,partner(r)) and (partner(g),partner(r)) where
// those partners exist. Unknown years are skipped but still count towards depth.
//
// Complexity: O(h) for total history length h.
func WeightHistory(m *matrix.Dense, reg *registry.Registry, rules Rules) error {
	if !rules.WeightHistory {
		return nil
	}
	if m == nil {
		return matrix.ErrNilMatrix
	}

	var (
		n       = reg.Len()
		g, r    int
		gp, rp  int
		depth   int
		w       float64
		err     error
		couples = rules.WeightCoupleHistory
	)
	for g = 0; g < n; g++ {
		gp = reg.Partner(g)
		for depth, r = range reg.History(g) {
			if r == registry.Unknown {
				continue
			}
			w = HistoryWeight(depth, rules.GrandfatherPeriod)
			if err = minMerge(m, g, r, w); err != nil {
				return err
			}
			if !couples {
				continue
			}
			rp = reg.Partner(r)
			if gp != registry.NoPartner {
				if err = minMerge(m, gp, r, w); err != nil {
					return err
				}
			}
			if rp != registry.NoPartner {
				if err = minMerge(m, g, rp, w); err != nil {
					return err
				}
			}
			if gp != registry.NoPartner && rp != registry.NoPartner {
				if err = minMerge(m, gp, rp, w); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// minMerge lowers m[i][j] to w if w is smaller.
func minMerge(m *matrix.Dense, i, j int, w float64) error {
	cur, err := m.At(i, j)
	if err != nil {
		return err
	}
	if w < cur {
		return m.Set(i, j, w)
	}
	return nil
}
