package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/secretsanta/registry"
	"github.com/katalvlaran/secretsanta/santa"
)

// Order selects how pairs are listed.
type Order string

const (
	GivingOrder       Order = "GivingOrder"
	FamilyOrder       Order = "FamilyOrder"
	AlphabeticalOrder Order = "AlphabeticalOrder"
)

// Orders lists the accepted printing orders.
var Orders = []Order{GivingOrder, FamilyOrder, AlphabeticalOrder}

// ParseOrder maps a configuration or flag value to an Order.
func ParseOrder(s string) (Order, error) {
	var o Order
	for _, o = range Orders {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownOrder)
}

// Format renders list one pair per line in the given order. reg supplies the
// family order and the set of givers for the sorted orders.
//
// Complexity: O(n log n).
func Format(list santa.SantasList, reg *registry.Registry, order Order) (string, error) {
	var givers []string
	switch order {
	case GivingOrder:
		givers = list.Givers()
	case FamilyOrder:
		givers = reg.Names()
	case AlphabeticalOrder:
		givers = reg.Names()
		sort.Strings(givers)
	default:
		return "", fmt.Errorf("%q: %w", order, ErrUnknownOrder)
	}

	next := make(map[string]string, list.Len())
	var p santa.Pair
	for _, p = range list.Pairs {
		next[p.Giver] = p.Receiver
	}

	var (
		b  strings.Builder
		g  string
		r  string
		ok bool
	)
	for _, g = range givers {
		if r, ok = next[g]; !ok {
			return "", fmt.Errorf("%q: %w", g, ErrMissingGiver)
		}
		b.WriteString(santa.Pair{Giver: g, Receiver: r}.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}
