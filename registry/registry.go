package registry

import "fmt"

// NoPartner is the partner index of an unpartnered participant.
const NoPartner = -1

// Unknown marks a history year whose receiver is not recorded.
const Unknown = -1

// Entry describes one participant as supplied by a configuration source.
//
// History lists past receivers, most recent first. An empty string marks a
// year with no record and is kept so that later entries retain their depth.
type Entry struct {
	Name    string
	Partner string
	History []string
}

// Registry is an immutable, index-addressed participant set.
// Safe for concurrent reads.
type Registry struct {
	names   []string       // index -> name (insertion order)
	index   map[string]int // name -> index
	partner []int          // index -> partner index or NoPartner
	history [][]int        // index -> past receiver indices (Unknown for gaps)
}

// New validates entries and builds a Registry.
//
// Validation order: names (empty, duplicate) -> partners (unknown, self,
// symmetry) -> histories (unknown). The first violation is returned wrapped
// with the offending name(s).
//
// Complexity: O(n + h) where h is the total history length.
func New(entries []Entry) (*Registry, error) {
	var n = len(entries)
	if n == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		names:   make([]string, n),
		index:   make(map[string]int, n),
		partner: make([]int, n),
		history: make([][]int, n),
	}

	// Stage 1: names.
	var (
		i  int
		e  Entry
		ok bool
	)
	for i, e = range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if _, ok = r.index[e.Name]; ok {
			return nil, fmt.Errorf("%q: %w", e.Name, ErrDuplicateName)
		}
		r.names[i] = e.Name
		r.index[e.Name] = i
	}

	// Stage 2: partners.
	var p int
	for i, e = range entries {
		if e.Partner == "" {
			r.partner[i] = NoPartner
			continue
		}
		if e.Partner == e.Name {
			return nil, fmt.Errorf("%q: %w", e.Name, ErrSelfPartner)
		}
		if p, ok = r.index[e.Partner]; !ok {
			return nil, fmt.Errorf("%q -> %q: %w", e.Name, e.Partner, ErrUnknownPartner)
		}
		r.partner[i] = p
	}
	for i = range r.partner {
		p = r.partner[i]
		if p != NoPartner && r.partner[p] != i {
			return nil, fmt.Errorf("%q -> %q: %w", r.names[i], r.names[p], ErrAsymmetricPartner)
		}
	}

	// Stage 3: histories.
	var (
		d    int
		past string
	)
	for i, e = range entries {
		if len(e.History) == 0 {
			continue
		}
		h := make([]int, len(e.History))
		for d, past = range e.History {
			if past == "" {
				h[d] = Unknown
				continue
			}
			if h[d], ok = r.index[past]; !ok {
				return nil, fmt.Errorf("%q history[%d] = %q: %w", e.Name, d, past, ErrUnknownHistory)
			}
		}
		r.history[i] = h
	}

	return r, nil
}

// Len returns the number of participants.
func (r *Registry) Len() int { return len(r.names) }

// Names returns a copy of the participant names in registry order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Name returns the name at index i. It panics if i is out of range.
func (r *Registry) Name(i int) string { return r.names[i] }

// Index returns the index of name.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Lookup is Index with an error for unknown names.
func (r *Registry) Lookup(name string) (int, error) {
	i, ok := r.index[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownName)
	}
	return i, nil
}

// Partner returns the partner index of i, or NoPartner.
func (r *Registry) Partner(i int) int { return r.partner[i] }

// PartnerOf returns the partner name of name, if any.
func (r *Registry) PartnerOf(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok || r.partner[i] == NoPartner {
		return "", false
	}
	return r.names[r.partner[i]], true
}

// History returns the past receivers of i, most recent first, with Unknown
// marking unrecorded years. The slice is shared; callers must not modify it.
func (r *Registry) History(i int) []int { return r.history[i] }

// Couples returns the number of partnered pairs.
func (r *Registry) Couples() int {
	var c, p int
	for _, p = range r.partner {
		if p != NoPartner {
			c++
		}
	}
	return c / 2
}
