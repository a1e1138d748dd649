// Package catalog holds the reference data items that components declare:
// connector types, sockets, form factors, fan sizes and similar.
//
// Items are identified by ID. An item may declare a directed compatibility
// relation to other items through CompatibleWith: when A.CompatibleWith
// contains B, an A can be used where a B was asked for (for most kinds A is
// the newer or larger item). The relation is reference data; nothing in the
// validation path mutates it.
package catalog

import (
	"slices"
	"sort"
)

// Kind groups items that may be compared with each other.
type Kind string

const (
	KindSocket           Kind = "socket"
	KindFormFactor       Kind = "form-factor"
	KindMemoryType       Kind = "memory-type"
	KindPCIeVersion      Kind = "pcie-version"
	KindStorageConnector Kind = "storage-connector"
	KindPowerConnector   Kind = "power-connector"
	KindFanConnector     Kind = "fan-connector"
	KindFanSize          Kind = "fan-size"
	KindDriveBay         Kind = "drive-bay"
)

// Kinds lists every supported item kind.
var Kinds = []Kind{
	KindSocket,
	KindFormFactor,
	KindMemoryType,
	KindPCIeVersion,
	KindStorageConnector,
	KindPowerConnector,
	KindFanConnector,
	KindFanSize,
	KindDriveBay,
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	return slices.Contains(Kinds, k)
}

// String returns the kind as a string.
func (k Kind) String() string {
	return string(k)
}

// Item is a reference data record.
type Item struct {
	ID             string   `json:"id" yaml:"id" validate:"required"`
	Kind           Kind     `json:"kind" yaml:"kind" validate:"required"`
	Name           string   `json:"name" yaml:"name" validate:"required"`
	CompatibleWith []string `json:"compatibleWith,omitempty" yaml:"compatibleWith,omitempty"`
}

// IsCompatibleWith reports whether this item can stand in where id was required.
// An item is not considered compatible with itself; identity is handled by callers.
func (i *Item) IsCompatibleWith(id string) bool {
	if i == nil {
		return false
	}
	return slices.Contains(i.CompatibleWith, id)
}

// Is reports whether i and other refer to the same catalog entry.
func (i *Item) Is(other *Item) bool {
	if i == nil || other == nil {
		return false
	}
	return i.ID == other.ID
}

// String returns the display name.
func (i *Item) String() string {
	if i == nil {
		return ""
	}
	return i.Name
}

// Count pairs an item with a positive quantity, e.g. "4 x SATA III".
type Count struct {
	Item     *Item
	Quantity int
}

// Index maps item IDs to items.
type Index map[string]*Item

// NewIndex builds an Index from items. Nil items are skipped.
func NewIndex(items ...*Item) Index {
	ix := make(Index, len(items))
	for _, it := range items {
		ix.Add(it)
	}
	return ix
}

// Add inserts it into the index. Nil items are ignored.
func (ix Index) Add(it *Item) {
	if it == nil {
		return
	}
	ix[it.ID] = it
}

// Get returns the item with the given id.
func (ix Index) Get(id string) (*Item, bool) {
	it, ok := ix[id]
	return it, ok
}

// Compatible reports whether item from declares compatibility with item to.
// Unknown ids are never compatible.
func (ix Index) Compatible(from, to string) bool {
	it, ok := ix[from]
	if !ok {
		return false
	}
	return it.IsCompatibleWith(to)
}

// IDs returns the indexed ids in ascending order.
func (ix Index) IDs() []string {
	ids := make([]string, 0, len(ix))
	for id := range ix {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Names returns display names for the given ids, in the given order.
// Ids missing from the index are returned verbatim.
func (ix Index) Names(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if it, ok := ix[id]; ok {
			names = append(names, it.Name)
			continue
		}
		names = append(names, id)
	}
	return names
}
