// Package santa_test provides shared fixtures for the draw tests: small
// registries, deterministic sources, and rule presets.
package santa_test

import (
	"testing"

	"github.com/katalvlaran/secretsanta/registry"
	"github.com/katalvlaran/secretsanta/santa"
	"github.com/stretchr/testify/require"
)

// relaxed forbids only partner pairs.
var relaxed = santa.Rules{Triangles: true, CoupleToCouple: true}

// noStructure forbids partner pairs, triangles and couple-to-couple, without history.
var noStructure = santa.Rules{}

// mustRegistry builds a registry or fails the test.
func mustRegistry(t testing.TB, entries ...registry.Entry) *registry.Registry {
	t.Helper()
	r, err := registry.New(entries)
	require.NoError(t, err)
	return r
}

// mustDraw builds a draw or fails the test.
func mustDraw(t testing.TB, reg *registry.Registry, rules santa.Rules, rig santa.Rigging) *santa.Draw {
	t.Helper()
	d, err := santa.NewDraw(reg, rules, rig)
	require.NoError(t, err)
	return d
}

// twoCouples is A–B and C–D.
func twoCouples(t testing.TB) *registry.Registry {
	return mustRegistry(t,
		registry.Entry{Name: "A", Partner: "B"},
		registry.Entry{Name: "B", Partner: "A"},
		registry.Entry{Name: "C", Partner: "D"},
		registry.Entry{Name: "D", Partner: "C"},
	)
}

// family is three couples and two singles with a few years of history.
func family(t testing.TB) *registry.Registry {
	return mustRegistry(t,
		registry.Entry{Name: "Anna", Partner: "Ben", History: []string{"Cara", "", "Gus"}},
		registry.Entry{Name: "Ben", Partner: "Anna", History: []string{"", "Hal"}},
		registry.Entry{Name: "Cara", Partner: "Dan", History: []string{"Gus", "Ed"}},
		registry.Entry{Name: "Dan", Partner: "Cara", History: []string{"", "Ben"}},
		registry.Entry{Name: "Ed", Partner: "Fay"},
		registry.Entry{Name: "Fay", Partner: "Ed"},
		registry.Entry{Name: "Gus", History: []string{"Dan", "Cara"}},
		registry.Entry{Name: "Hal", History: []string{"", "Anna"}},
	)
}

// seqSource replays fixed values; once exhausted it returns 0.
type seqSource struct {
	ints   []int
	floats []float64
}

func (s *seqSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *seqSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// successors maps giver to receiver for a finished list.
func successors(l santa.SantasList) map[string]string {
	out := make(map[string]string, l.Len())
	for _, p := range l.Pairs {
		out[p.Giver] = p.Receiver
	}
	return out
}

// requireHamiltonian asserts the list is a single cycle over names, in cycle order.
func requireHamiltonian(t testing.TB, l santa.SantasList, names []string) {
	t.Helper()
	require.Len(t, l.Pairs, len(names))

	givers := make(map[string]bool, len(names))
	receivers := make(map[string]bool, len(names))
	for i, p := range l.Pairs {
		require.NotEqual(t, p.Giver, p.Receiver, "self pair %v", p)
		require.False(t, givers[p.Giver], "%s gives twice", p.Giver)
		require.False(t, receivers[p.Receiver], "%s receives twice", p.Receiver)
		givers[p.Giver] = true
		receivers[p.Receiver] = true
		// Cycle order: each receiver gives next, the last closes on the first.
		require.Equal(t, l.Pairs[(i+1)%len(l.Pairs)].Giver, p.Receiver)
	}
	for _, n := range names {
		require.True(t, givers[n], "%s never gives", n)
		require.True(t, receivers[n], "%s never receives", n)
	}
}
