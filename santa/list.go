package santa

import (
	"strings"

	"github.com/google/uuid"
)

// Pair is one giver → receiver assignment.
type Pair struct {
	Giver    string
	Receiver string
}

// String renders the pair as "Giver → Receiver".
func (p Pair) String() string { return p.Giver + " → " + p.Receiver }

// SantasList is a finished draw: pairs in cycle order, starting with the
// initial giver, so Pairs[i].Receiver == Pairs[i+1].Giver and the last
// receiver is the first giver.
type SantasList struct {
	// ID identifies the draw; it is stamped by Generate.
	ID uuid.UUID

	Pairs []Pair
}

// Len returns the number of pairs.
func (l SantasList) Len() int { return len(l.Pairs) }

// ReceiverOf returns who giver gives to.
//
// Complexity: O(n).
func (l SantasList) ReceiverOf(giver string) (string, bool) {
	var p Pair
	for _, p = range l.Pairs {
		if p.Giver == giver {
			return p.Receiver, true
		}
	}
	return "", false
}

// GiverOf returns who gives to receiver.
//
// Complexity: O(n).
func (l SantasList) GiverOf(receiver string) (string, bool) {
	var p Pair
	for _, p = range l.Pairs {
		if p.Receiver == receiver {
			return p.Giver, true
		}
	}
	return "", false
}

// Givers returns the givers in cycle order.
func (l SantasList) Givers() []string {
	out := make([]string, len(l.Pairs))
	var i int
	for i = range l.Pairs {
		out[i] = l.Pairs[i].Giver
	}
	return out
}

// String renders the list one pair per line, in cycle order.
func (l SantasList) String() string {
	var b strings.Builder
	var p Pair
	for _, p = range l.Pairs {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}
