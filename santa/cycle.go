package santa

import (
	"github.com/katalvlaran/secretsanta/matrix"
	"github.com/katalvlaran/secretsanta/registry"
)

// Failure classifies a discarded attempt. FailNone means the attempt succeeded.
type Failure uint8

const (
	// FailNone: the attempt produced a complete list.
	FailNone Failure = iota

	// FailNoViableReceiver: a giver's row had no weight left.
	FailNoViableReceiver

	// FailRiggedClosure: a rigged giver was forced onto the initial giver early.
	FailRiggedClosure

	// FailRiggedTaken: a rigged giver's forced receiver had already received.
	FailRiggedTaken
)

// String returns a short label, used as the metrics reason.
func (f Failure) String() string {
	switch f {
	case FailNone:
		return "none"
	case FailNoViableReceiver:
		return "no_viable_receiver"
	case FailRiggedClosure:
		return "rigged_closure"
	case FailRiggedTaken:
		return "rigged_taken"
	default:
		return "unknown"
	}
}

// Err maps the failure to its sentinel (nil for FailNone).
func (f Failure) Err() error {
	switch f {
	case FailNone:
		return nil
	case FailNoViableReceiver:
		return ErrNoViableReceiver
	case FailRiggedClosure:
		return ErrRiggedClosure
	default:
		return ErrRiggedTaken
	}
}

// BuildCycle runs one attempt on m, a fresh matrix from BuildMatrix, which it
// consumes. It returns either a complete list and FailNone, or an empty list
// and the reason the attempt was abandoned.
//
// Walk:
//  1. Initial giver: uniform among rigged givers if any, else among everybody.
//  2. Per step, the initial giver is not a candidate until n-1 pairs exist.
//     Rigged givers take their forced receiver; others sample their row.
//  3. After committing giver → receiver: zero the receiver's column; unless
//     Triangles, zero (receiver, partner(giver)); unless CoupleToCouple, zero
//     (partner(giver), partner(receiver)). Exclusions are never revisited.
//  4. The closing pair is also refused when it would complete a triangle with
//     the first pair, the one spot no earlier exclusion can reach.
//
// Complexity: O(n²) per attempt.
func (d *Draw) BuildCycle(m *matrix.Dense, src Source) (SantasList, Failure, error) {
	var n = d.reg.Len()
	if m == nil {
		return SantasList{}, FailNone, matrix.ErrNilMatrix
	}
	if m.Rows() != n || m.Cols() != n {
		return SantasList{}, FailNone, matrix.ErrNonSquare
	}

	var start int
	if len(d.rigged) > 0 {
		start = pickUniform(src, d.rigged)
	} else {
		start = src.Intn(n)
	}

	var (
		pairs    = make([]Pair, 0, n)
		received = make([]bool, n)
		giver    = start
		recv     int
		closing  bool
		skip     int
		row      []float64
		total    float64
		err      error
	)
	for len(pairs) < n {
		closing = len(pairs) == n-1

		if t := d.rig[giver]; t != noRig {
			if t == start && !closing {
				return SantasList{}, FailRiggedClosure, nil
			}
			if received[t] {
				return SantasList{}, FailRiggedTaken, nil
			}
			recv = t
		} else {
			if row, err = m.Row(giver); err != nil {
				return SantasList{}, FailNone, err
			}
			skip = -1
			if !closing {
				skip = start
			}
			total = rowWeight(row, skip)
			if closing && d.closesTriangle(giver, pairs) {
				total = 0
			}
			if total <= 0 {
				return SantasList{}, FailNoViableReceiver, nil
			}
			recv = pickWeighted(src, row, total, skip)
		}

		pairs = append(pairs, Pair{Giver: d.reg.Name(giver), Receiver: d.reg.Name(recv)})
		received[recv] = true

		if err = d.exclude(m, giver, recv); err != nil {
			return SantasList{}, FailNone, err
		}
		giver = recv
	}

	return SantasList{Pairs: pairs}, FailNone, nil
}

// exclude applies the column sweep and structural exclusions for the
// committed pair giver → recv.
func (d *Draw) exclude(m *matrix.Dense, giver, recv int) error {
	if err := m.FillCol(recv, 0); err != nil {
		return err
	}

	var gp, rp = d.reg.Partner(giver), d.reg.Partner(recv)
	if gp == registry.NoPartner {
		return nil
	}
	if !d.rules.Triangles && gp != recv {
		if err := m.Set(recv, gp, 0); err != nil {
			return err
		}
	}
	if !d.rules.CoupleToCouple && rp != registry.NoPartner {
		if err := m.Set(gp, rp, 0); err != nil {
			return err
		}
	}
	return nil
}

// closesTriangle reports whether closing last → start would complete
// last → start → partner(last) through the first committed pair.
func (d *Draw) closesTriangle(last int, pairs []Pair) bool {
	if d.rules.Triangles || len(pairs) == 0 {
		return false
	}
	var lp = d.reg.Partner(last)
	if lp == registry.NoPartner {
		return false
	}
	return pairs[0].Receiver == d.reg.Name(lp)
}

// rowWeight sums row, leaving out index skip (-1 for none).
func rowWeight(row []float64, skip int) float64 {
	var (
		s float64
		j int
		v float64
	)
	for j, v = range row {
		if j != skip {
			s += v
		}
	}
	return s
}
