package santa

import (
	"fmt"

	"github.com/katalvlaran/secretsanta/registry"
)

// Check verifies a finished list against d independently of how it was built.
//
// Stages:
//  1. Coverage: n pairs, known names, everyone gives once and receives once.
//  2. Pairs: no self-gift; rigged givers give to their forced receiver; every
//     other pair has positive weight in a fresh BuildMatrix (partner exclusion
//     and last-year history).
//  3. Single cycle: following receivers from any giver returns after n steps.
//  4. Structure: no triangle unless Triangles, no couple-to-couple unless
//     CoupleToCouple. Patterns involving a rigged giver are exempt, since
//     rigging overrides the rules.
//
// Complexity: O(n²) (dominated by BuildMatrix).
func Check(list SantasList, d *Draw) error {
	var (
		reg = d.reg
		n   = reg.Len()
	)
	if list.Len() != n {
		return fmt.Errorf("%d pairs for %d participants: %w", list.Len(), n, ErrIncompleteList)
	}

	// Stage 1: coverage, as index successor table.
	var (
		next    = make([]int, n)
		hasGift = make([]bool, n)
		i       int
		g, r    int
		err     error
		p       Pair
	)
	for i = range next {
		next[i] = -1
	}
	for _, p = range list.Pairs {
		if g, err = reg.Lookup(p.Giver); err != nil {
			return fmt.Errorf("%w: %w", ErrIncompleteList, err)
		}
		if r, err = reg.Lookup(p.Receiver); err != nil {
			return fmt.Errorf("%w: %w", ErrIncompleteList, err)
		}
		if next[g] != -1 {
			return fmt.Errorf("%q gives twice: %w", p.Giver, ErrIncompleteList)
		}
		if hasGift[r] {
			return fmt.Errorf("%q receives twice: %w", p.Receiver, ErrIncompleteList)
		}
		next[g] = r
		hasGift[r] = true
	}

	// Stage 2: per-pair rules.
	base, err := d.BuildMatrix()
	if err != nil {
		return err
	}
	var (
		w      float64
		forced int
		ok     bool
	)
	for g = 0; g < n; g++ {
		r = next[g]
		if g == r {
			return fmt.Errorf("%q: %w", reg.Name(g), ErrSelfGift)
		}
		if forced, ok = d.Rigged(g); ok {
			if r != forced {
				return fmt.Errorf("%q gives to %q, rigged to %q: %w",
					reg.Name(g), reg.Name(r), reg.Name(forced), ErrRiggingViolated)
			}
			continue
		}
		if w, err = base.At(g, r); err != nil {
			return err
		}
		if w <= 0 {
			return fmt.Errorf("%q → %q: %w", reg.Name(g), reg.Name(r), ErrExcludedPair)
		}
	}

	// Stage 3: one loop through everybody.
	var cur, steps = 0, 0
	for {
		cur = next[cur]
		steps++
		if cur == 0 {
			break
		}
	}
	if steps != n {
		return fmt.Errorf("loop through %q has %d of %d participants: %w", reg.Name(0), steps, n, ErrNotSingleCycle)
	}

	// Stage 4: structural patterns.
	var gp, rp int
	for g = 0; g < n; g++ {
		gp = reg.Partner(g)
		if gp == registry.NoPartner {
			continue
		}
		r = next[g]
		if !d.rules.Triangles && r != gp && next[r] == gp &&
			d.rig[g] == noRig && d.rig[r] == noRig {
			return fmt.Errorf("%q → %q → %q: %w", reg.Name(g), reg.Name(r), reg.Name(gp), ErrTriangle)
		}
		rp = reg.Partner(r)
		if !d.rules.CoupleToCouple && rp != registry.NoPartner && next[gp] == rp &&
			d.rig[g] == noRig && d.rig[gp] == noRig {
			return fmt.Errorf("%q → %q and %q → %q: %w",
				reg.Name(g), reg.Name(r), reg.Name(gp), reg.Name(rp), ErrCoupleToCouple)
		}
	}

	return nil
}
