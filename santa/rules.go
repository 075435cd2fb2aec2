package santa

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/secretsanta/registry"
)

// Rules toggles the constraints applied to a draw.
type Rules struct {
	// WeightHistory suppresses past receivers according to HistoryWeight.
	WeightHistory bool

	// WeightCoupleHistory extends history suppression to the partners of the
	// giver and of the past receiver. Only effective with WeightHistory.
	WeightCoupleHistory bool

	// GrandfatherPeriod is the number of years after which history stops
	// constraining. Values ≤ 0 disable history decay.
	GrandfatherPeriod float64

	// PartnerToPartner allows someone to give to their own partner.
	PartnerToPartner bool

	// Triangles allows A → B → partner(A).
	Triangles bool

	// CoupleToCouple allows A → B together with partner(A) → partner(B).
	CoupleToCouple bool
}

// StrictRules returns the usual family rule set: history weighted with
// couple history over a three-year grandfather period, and no partner,
// triangle or couple-to-couple pairs.
func StrictRules() Rules {
	return Rules{
		WeightHistory:       true,
		WeightCoupleHistory: true,
		GrandfatherPeriod:   3,
	}
}

// Validate checks rule values that the type system cannot.
func (r Rules) Validate() error {
	if math.IsNaN(r.GrandfatherPeriod) || math.IsInf(r.GrandfatherPeriod, 0) {
		return fmt.Errorf("grandfather period %v: %w", r.GrandfatherPeriod, ErrInvalidRules)
	}
	return nil
}

// Rigging forces givers (keys) onto receivers (values).
type Rigging map[string]string

// noRig marks an unrigged giver in the compiled rigging table.
const noRig = -1

// Draw is a validated, immutable draw configuration: registry, rules, and
// compiled rigging. Every attempt derives its own giving matrix from a Draw.
type Draw struct {
	reg    *registry.Registry
	rules  Rules
	rig    []int // giver index -> forced receiver index or noRig
	rigged []int // rigged giver indices, ascending
}

// NewDraw validates rules and rigging against reg and returns a Draw.
//
// Errors (wrapped with the offending names):
//   - ErrTooFewParticipants for registries with fewer than two people,
//   - ErrInvalidRules from Rules.Validate,
//   - ErrInvalidRigging for unknown names, self-rigging, two givers forced onto
//     one receiver, or a rigged loop that closes before covering everybody.
//
// Complexity: O(n + k log k) for k rigged givers.
func NewDraw(reg *registry.Registry, rules Rules, rig Rigging) (*Draw, error) {
	if reg == nil || reg.Len() < 2 {
		return nil, ErrTooFewParticipants
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	var n = reg.Len()
	d := &Draw{
		reg:   reg,
		rules: rules,
		rig:   make([]int, n),
	}
	var i int
	for i = range d.rig {
		d.rig[i] = noRig
	}

	// Compile in sorted key order so error messages are deterministic.
	givers := make([]string, 0, len(rig))
	var g string
	for g = range rig {
		givers = append(givers, g)
	}
	sort.Strings(givers)

	taken := make(map[int]string, len(rig))
	var (
		gi, ri int
		ok     bool
		prev   string
	)
	for _, g = range givers {
		if gi, ok = reg.Index(g); !ok {
			return nil, fmt.Errorf("giver %q: %w: %w", g, ErrInvalidRigging, registry.ErrUnknownName)
		}
		if ri, ok = reg.Index(rig[g]); !ok {
			return nil, fmt.Errorf("%q -> %q: %w: %w", g, rig[g], ErrInvalidRigging, registry.ErrUnknownName)
		}
		if gi == ri {
			return nil, fmt.Errorf("%q -> %q: %w", g, rig[g], ErrInvalidRigging)
		}
		if prev, ok = taken[ri]; ok {
			return nil, fmt.Errorf("%q and %q both rigged to %q: %w", prev, g, rig[g], ErrInvalidRigging)
		}
		taken[ri] = g
		d.rig[gi] = ri
		d.rigged = append(d.rigged, gi)
	}
	sort.Ints(d.rigged)

	if err := d.checkRiggedLoops(); err != nil {
		return nil, err
	}

	return d, nil
}

// checkRiggedLoops rejects rigging chains that close into a loop shorter than
// the registry, which no attempt could ever complete.
//
// Complexity: O(n).
func (d *Draw) checkRiggedLoops() error {
	var (
		n     = d.reg.Len()
		state = make([]uint8, n) // 0 unvisited, 1 on current chain, 2 done
		start int
		cur   int
		steps int
	)
	for _, start = range d.rigged {
		if state[start] != 0 {
			continue
		}
		cur, steps = start, 0
		for cur != noRig && state[cur] == 0 {
			state[cur] = 1
			cur = d.rig[cur]
			steps++
		}
		if cur != noRig && state[cur] == 1 && steps < n {
			return fmt.Errorf("rigged loop through %q of length %d < %d: %w",
				d.reg.Name(cur), steps, n, ErrInvalidRigging)
		}
		// Mark the chain as finished.
		cur = start
		for cur != noRig && state[cur] == 1 {
			state[cur] = 2
			cur = d.rig[cur]
		}
	}
	return nil
}

// Registry returns the participant registry of the draw.
func (d *Draw) Registry() *registry.Registry { return d.reg }

// Rules returns the rule set of the draw.
func (d *Draw) Rules() Rules { return d.rules }

// Rigged reports the forced receiver index of giver i.
func (d *Draw) Rigged(i int) (int, bool) {
	if d.rig[i] == noRig {
		return 0, false
	}
	return d.rig[i], true
}
