package reconcile

import (
	"fmt"

	"catalog-manager/core/catalog"
)

// IndexedCatalog is an identity lookup over a catalog that keeps its order.
type IndexedCatalog struct {
	entries map[catalog.Identity]*catalog.StreamEntry
	order   []catalog.Identity
}

// Index builds the identity index of c. A nil catalog yields an empty index.
// Entries without a descriptor and duplicate identities are rejected.
func Index(c *catalog.Catalog) (*IndexedCatalog, error) {
	idx := &IndexedCatalog{
		entries: make(map[catalog.Identity]*catalog.StreamEntry, c.Len()),
		order:   make([]catalog.Identity, 0, c.Len()),
	}
	if c == nil {
		return idx, nil
	}

	for i := range c.Streams {
		entry := &c.Streams[i]
		if entry.Stream == nil {
			return nil, fmt.Errorf("%w: stream #%d has no descriptor", catalog.ErrMalformedCatalog, i)
		}
		id := entry.Identity()
		if _, exists := idx.entries[id]; exists {
			return nil, fmt.Errorf("%w: duplicate stream %q", catalog.ErrMalformedCatalog, id)
		}
		idx.entries[id] = entry
		idx.order = append(idx.order, id)
	}
	return idx, nil
}

// Get returns the entry for id, or nil.
func (x *IndexedCatalog) Get(id catalog.Identity) *catalog.StreamEntry {
	return x.entries[id]
}

// Has reports whether id is indexed.
func (x *IndexedCatalog) Has(id catalog.Identity) bool {
	_, ok := x.entries[id]
	return ok
}

// Identities returns the identities in catalog order.
func (x *IndexedCatalog) Identities() []catalog.Identity {
	return append([]catalog.Identity(nil), x.order...)
}

// Len returns the number of indexed streams.
func (x *IndexedCatalog) Len() int {
	return len(x.order)
}

// MatchCatalogs pairs the streams of a and b by exact identity.
// Matched and added identities come first in b's order, removed ones follow in a's order.
func MatchCatalogs(a, b *catalog.Catalog) ([]Match, error) {
	ia, err := Index(a)
	if err != nil {
		return nil, err
	}
	ib, err := Index(b)
	if err != nil {
		return nil, err
	}
	return matchIndexes(ia, ib), nil
}

func matchIndexes(a, b *IndexedCatalog) []Match {
	matches := make([]Match, 0, a.Len()+b.Len())

	for _, id := range b.order {
		m := Match{Identity: id, B: b.entries[id], Kind: MatchAdded}
		if entry, ok := a.entries[id]; ok {
			m.A = entry
			m.Kind = MatchMatched
		}
		matches = append(matches, m)
	}

	for _, id := range a.order {
		if b.Has(id) {
			continue
		}
		matches = append(matches, Match{Identity: id, A: a.entries[id], Kind: MatchRemoved})
	}

	return matches
}
