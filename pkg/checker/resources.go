package checker

import (
	"github.com/rigcheck/rigcheck/pkg/build"
	"github.com/rigcheck/rigcheck/pkg/catalog"
	"github.com/rigcheck/rigcheck/pkg/matching"
	"github.com/rigcheck/rigcheck/pkg/message"
)

// resources is the demand/supply pair of one resource check, keyed by
// catalog item ID. It is built fresh for every check.
type resources struct {
	needed    map[string]int
	available map[string]int
	items     catalog.Index
}

func newResources() *resources {
	return &resources{
		needed:    make(map[string]int),
		available: make(map[string]int),
		items:     make(catalog.Index),
	}
}

func (r *resources) need(it *catalog.Item, quantity int) {
	if it == nil || quantity <= 0 {
		return
	}
	r.items.Add(it)
	r.needed[it.ID] += quantity
}

func (r *resources) needAll(counts []catalog.Count) {
	for _, c := range counts {
		r.need(c.Item, c.Quantity)
	}
}

func (r *resources) supplyAll(counts []catalog.Count) {
	for _, c := range counts {
		if c.Item == nil || c.Quantity <= 0 {
			continue
		}
		r.items.Add(c.Item)
		r.available[c.Item.ID] += c.Quantity
	}
}

// shortage reports whether any demand is left after matching.
func (r *resources) shortage(opts ...matching.Option) bool {
	if len(r.needed) == 0 {
		return false
	}
	return len(matching.Resolve(r.needed, r.available, r.items.Compatible, opts...)) > 0
}

// driveDemand adds one item per drive unit, as selected by pick.
func (r *resources) driveDemand(b *build.Build, pick func(*build.Drive) *catalog.Item) {
	for _, e := range b.Drives() {
		r.need(pick(e.Component), e.Quantity)
	}
}

func motherboardPower(b *build.Build) *Finding {
	if b.PSU == nil || b.Motherboard == nil {
		return nil
	}
	r := newResources()
	r.needAll(b.Motherboard.PowerConnectors)
	r.supplyAll(b.PSU.Connectors)
	if !r.shortage() {
		return nil
	}
	return finding(message.KeyMotherboardPower, b.PSU.Name, b.Motherboard.Name)
}

func gpuPower(b *build.Build) *Finding {
	if b.PSU == nil || b.GPU == nil {
		return nil
	}
	r := newResources()
	r.needAll(b.GPU.PowerConnectors)
	r.supplyAll(b.PSU.Connectors)
	if !r.shortage() {
		return nil
	}
	return finding(message.KeyGPUPower, b.PSU.Name, b.GPU.Name)
}

func storagePower(b *build.Build) *Finding {
	if b.PSU == nil {
		return nil
	}
	r := newResources()
	r.driveDemand(b, func(d *build.Drive) *catalog.Item { return d.PowerConnector })
	r.supplyAll(b.PSU.Connectors)
	if !r.shortage() {
		return nil
	}
	return finding(message.KeyStoragePower, b.PSU.Name)
}

// storageConnectors is the only check that accepts a lossy downgrade:
// a drive may run on an older port at reduced throughput.
func storageConnectors(b *build.Build) *Finding {
	if b.Motherboard == nil {
		return nil
	}
	r := newResources()
	r.driveDemand(b, func(d *build.Drive) *catalog.Item { return d.Interface })
	r.supplyAll(b.Motherboard.StorageConnectors)
	if !r.shortage(matching.WithLossyDowngrade()) {
		return nil
	}
	return finding(message.KeyStorageConnectors, b.Motherboard.Name)
}

func fanPower(b *build.Build) *Finding {
	if b.Motherboard == nil {
		return nil
	}
	r := newResources()
	for _, e := range b.Fans {
		r.need(e.Component.Connector, e.Quantity)
	}
	if b.Cooler != nil {
		r.need(b.Cooler.FanConnector, 1)
	}
	r.supplyAll(b.Motherboard.FanHeaders)
	if !r.shortage() {
		return nil
	}
	return finding(message.KeyFanPower, b.Motherboard.Name)
}

func driveBays(b *build.Build) *Finding {
	if b.Case == nil {
		return nil
	}
	r := newResources()
	r.driveDemand(b, func(d *build.Drive) *catalog.Item { return d.Bay })
	r.supplyAll(b.Case.DriveBays)
	if !r.shortage() {
		return nil
	}
	return finding(message.KeyDriveBays, b.Case.Name)
}

func fanSizes(b *build.Build) *Finding {
	if b.Case == nil {
		return nil
	}
	r := newResources()
	for _, e := range b.Fans {
		r.need(e.Component.Size, e.Quantity)
	}
	r.supplyAll(b.Case.FanMounts)
	if !r.shortage() {
		return nil
	}
	return finding(message.KeyFanSizes, b.Case.Name)
}
