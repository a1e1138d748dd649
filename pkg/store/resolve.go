package store

import (
	"fmt"

	"github.com/rigcheck/rigcheck/pkg/build"
	"github.com/rigcheck/rigcheck/pkg/catalog"
	"github.com/rigcheck/rigcheck/pkg/errors"
)

// resolver turns ID references of a Document into a pointer graph.
// Components are shared between the builds that select them.
type resolver struct {
	items        catalog.Index
	cpus         map[string]*build.CPU
	chipsets     map[string]*build.Chipset
	motherboards map[string]*build.Motherboard
	psus         map[string]*build.PSU
	cases        map[string]*build.Case
	coolers      map[string]*build.Cooler
	gpus         map[string]*build.GPU
	fans         map[string]*build.Fan
	ram          map[string]*build.RAM
	drives       map[string]*build.Drive
}

func invalid(field, value, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidRequest, fmt.Sprintf(format, args...)).
		WithContext("field", field).
		WithContext("value", value)
}

// register adds v under id, rejecting duplicates within one collection.
func register[T any](m map[string]*T, collection, id string, v *T) error {
	if _, dup := m[id]; dup {
		return invalid(collection, id, "duplicate %s id %q", collection, id)
	}
	m[id] = v
	return nil
}

// lookup resolves a required reference.
func lookup[T any](m map[string]*T, field, id string) (*T, error) {
	v, ok := m[id]
	if !ok {
		return nil, invalid(field, id, "%s references unknown id %q", field, id)
	}
	return v, nil
}

// optional resolves a reference that may be empty.
func optional[T any](m map[string]*T, field, id string) (*T, error) {
	if id == "" {
		return nil, nil
	}
	return lookup(m, field, id)
}

// item resolves an optional item reference and checks its kind.
func (r *resolver) item(field, id string, kind catalog.Kind) (*catalog.Item, error) {
	if id == "" {
		return nil, nil
	}
	it, ok := r.items.Get(id)
	if !ok {
		return nil, invalid(field, id, "%s references unknown item %q", field, id)
	}
	if it.Kind != kind {
		return nil, invalid(field, id, "%s expects a %s item, %q is a %s", field, kind, id, it.Kind)
	}
	return it, nil
}

func (r *resolver) itemList(field string, ids []string, kind catalog.Kind) ([]*catalog.Item, error) {
	out := make([]*catalog.Item, 0, len(ids))
	for i, id := range ids {
		it, err := r.item(fmt.Sprintf("%s[%d]", field, i), id, kind)
		if err != nil {
			return nil, err
		}
		if it != nil {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *resolver) counts(field string, specs []CountSpec, kind catalog.Kind) ([]catalog.Count, error) {
	out := make([]catalog.Count, 0, len(specs))
	for i, s := range specs {
		it, err := r.item(fmt.Sprintf("%s[%d].item", field, i), s.Item, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, catalog.Count{Item: it, Quantity: s.Quantity})
	}
	return out, nil
}

func entries[T any](m map[string]*T, field string, specs []EntrySpec) ([]build.Entry[T], error) {
	out := make([]build.Entry[T], 0, len(specs))
	for i, s := range specs {
		c, err := lookup(m, fmt.Sprintf("%s[%d].id", field, i), s.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, build.Entry[T]{Component: c, Quantity: s.Quantity})
	}
	return out, nil
}

func newResolver() *resolver {
	return &resolver{
		items:        make(catalog.Index),
		cpus:         make(map[string]*build.CPU),
		chipsets:     make(map[string]*build.Chipset),
		motherboards: make(map[string]*build.Motherboard),
		psus:         make(map[string]*build.PSU),
		cases:        make(map[string]*build.Case),
		coolers:      make(map[string]*build.Cooler),
		gpus:         make(map[string]*build.GPU),
		fans:         make(map[string]*build.Fan),
		ram:          make(map[string]*build.RAM),
		drives:       make(map[string]*build.Drive),
	}
}

// resolve builds every component and build of doc. Items are resolved
// first, then components in dependency order, then builds.
func (r *resolver) resolve(doc *Document) (map[string]*build.Build, error) {
	steps := []func(*Document) error{
		r.resolveItems,
		r.resolveCPUs,
		r.resolveChipsets,
		r.resolveMotherboards,
		r.resolvePSUs,
		r.resolveCases,
		r.resolveCoolers,
		r.resolveGPUs,
		r.resolveFans,
		r.resolveRAM,
		r.resolveDrives,
	}
	for _, step := range steps {
		if err := step(doc); err != nil {
			return nil, err
		}
	}
	return r.resolveBuilds(doc)
}

func (r *resolver) resolveItems(doc *Document) error {
	for i := range doc.Items {
		it := doc.Items[i]
		if !it.Kind.IsValid() {
			return invalid(fmt.Sprintf("items[%d].kind", i), string(it.Kind), "unknown item kind %q", it.Kind)
		}
		if _, dup := r.items.Get(it.ID); dup {
			return invalid("items", it.ID, "duplicate items id %q", it.ID)
		}
		r.items.Add(&it)
	}
	for _, id := range r.items.IDs() {
		it := r.items[id]
		for _, ref := range it.CompatibleWith {
			other, ok := r.items.Get(ref)
			if !ok {
				return invalid("items."+it.ID+".compatibleWith", ref, "item %q is compatible with unknown item %q", it.ID, ref)
			}
			if other.Kind != it.Kind {
				return invalid("items."+it.ID+".compatibleWith", ref, "item %q (%s) cannot be compatible with %q (%s)", it.ID, it.Kind, ref, other.Kind)
			}
		}
	}
	return nil
}

func (r *resolver) resolveCPUs(doc *Document) error {
	for i, s := range doc.CPUs {
		socket, err := r.item(fmt.Sprintf("cpus[%d].socket", i), s.Socket, catalog.KindSocket)
		if err != nil {
			return err
		}
		cpu := &build.CPU{ID: s.ID, Name: s.Name, Socket: socket, TDP: s.TDP, MaxMemoryClock: s.MaxMemoryClock}
		if err := register(r.cpus, "cpus", s.ID, cpu); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveChipsets(doc *Document) error {
	for i, s := range doc.Chipsets {
		socket, err := r.item(fmt.Sprintf("chipsets[%d].socket", i), s.Socket, catalog.KindSocket)
		if err != nil {
			return err
		}
		if err := register(r.chipsets, "chipsets", s.ID, &build.Chipset{ID: s.ID, Name: s.Name, Socket: socket}); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveMotherboards(doc *Document) error {
	for i, s := range doc.Motherboards {
		path := fmt.Sprintf("motherboards[%d]", i)
		mb := &build.Motherboard{ID: s.ID, Name: s.Name, RAMSlots: s.RAMSlots, MaxMemoryClock: s.MaxMemoryClock}

		var err error
		if mb.Chipset, err = optional(r.chipsets, path+".chipset", s.Chipset); err != nil {
			return err
		}
		if mb.FormFactor, err = r.item(path+".formFactor", s.FormFactor, catalog.KindFormFactor); err != nil {
			return err
		}
		if mb.MemoryType, err = r.item(path+".memoryType", s.MemoryType, catalog.KindMemoryType); err != nil {
			return err
		}
		if mb.PCIeVersion, err = r.item(path+".pcieVersion", s.PCIeVersion, catalog.KindPCIeVersion); err != nil {
			return err
		}
		if mb.StorageConnectors, err = r.counts(path+".storageConnectors", s.StorageConnectors, catalog.KindStorageConnector); err != nil {
			return err
		}
		if mb.FanHeaders, err = r.counts(path+".fanHeaders", s.FanHeaders, catalog.KindFanConnector); err != nil {
			return err
		}
		if mb.PowerConnectors, err = r.counts(path+".powerConnectors", s.PowerConnectors, catalog.KindPowerConnector); err != nil {
			return err
		}
		if err := register(r.motherboards, "motherboards", s.ID, mb); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolvePSUs(doc *Document) error {
	for i, s := range doc.PSUs {
		connectors, err := r.counts(fmt.Sprintf("psus[%d].connectors", i), s.Connectors, catalog.KindPowerConnector)
		if err != nil {
			return err
		}
		psu := &build.PSU{ID: s.ID, Name: s.Name, Power12V: s.Power12V, Connectors: connectors}
		if err := register(r.psus, "psus", s.ID, psu); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveCases(doc *Document) error {
	for i, s := range doc.Cases {
		path := fmt.Sprintf("cases[%d]", i)
		c := &build.Case{ID: s.ID, Name: s.Name, MaxCoolerHeight: s.MaxCoolerHeight, MaxGPULength: s.MaxGPULength}

		var err error
		if c.MotherboardFormFactors, err = r.itemList(path+".motherboardFormFactors", s.MotherboardFormFactors, catalog.KindFormFactor); err != nil {
			return err
		}
		if c.DriveBays, err = r.counts(path+".driveBays", s.DriveBays, catalog.KindDriveBay); err != nil {
			return err
		}
		if c.FanMounts, err = r.counts(path+".fanMounts", s.FanMounts, catalog.KindFanSize); err != nil {
			return err
		}
		if err := register(r.cases, "cases", s.ID, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveCoolers(doc *Document) error {
	for i, s := range doc.Coolers {
		path := fmt.Sprintf("coolers[%d]", i)
		c := &build.Cooler{ID: s.ID, Name: s.Name, Height: s.Height, Dissipation: s.Dissipation}

		var err error
		if c.Sockets, err = r.itemList(path+".sockets", s.Sockets, catalog.KindSocket); err != nil {
			return err
		}
		if c.FanConnector, err = r.item(path+".fanConnector", s.FanConnector, catalog.KindFanConnector); err != nil {
			return err
		}
		if err := register(r.coolers, "coolers", s.ID, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveGPUs(doc *Document) error {
	for i, s := range doc.GPUs {
		path := fmt.Sprintf("gpus[%d]", i)
		g := &build.GPU{ID: s.ID, Name: s.Name, PowerDraw: s.PowerDraw, Length: s.Length}

		var err error
		if g.PCIeVersion, err = r.item(path+".pcieVersion", s.PCIeVersion, catalog.KindPCIeVersion); err != nil {
			return err
		}
		if g.PowerConnectors, err = r.counts(path+".powerConnectors", s.PowerConnectors, catalog.KindPowerConnector); err != nil {
			return err
		}
		if err := register(r.gpus, "gpus", s.ID, g); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveFans(doc *Document) error {
	for i, s := range doc.Fans {
		path := fmt.Sprintf("fans[%d]", i)
		f := &build.Fan{ID: s.ID, Name: s.Name}

		var err error
		if f.Size, err = r.item(path+".size", s.Size, catalog.KindFanSize); err != nil {
			return err
		}
		if f.Connector, err = r.item(path+".connector", s.Connector, catalog.KindFanConnector); err != nil {
			return err
		}
		if err := register(r.fans, "fans", s.ID, f); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveRAM(doc *Document) error {
	for i, s := range doc.RAM {
		memType, err := r.item(fmt.Sprintf("ram[%d].memoryType", i), s.MemoryType, catalog.KindMemoryType)
		if err != nil {
			return err
		}
		kit := &build.RAM{ID: s.ID, Name: s.Name, MemoryType: memType, Clock: s.Clock, Modules: s.Modules}
		if err := register(r.ram, "ram", s.ID, kit); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveDrives(doc *Document) error {
	for i, s := range doc.Drives {
		path := fmt.Sprintf("drives[%d]", i)
		d := &build.Drive{ID: s.ID, Name: s.Name}

		var err error
		if d.Interface, err = r.item(path+".interface", s.Interface, catalog.KindStorageConnector); err != nil {
			return err
		}
		if d.PowerConnector, err = r.item(path+".powerConnector", s.PowerConnector, catalog.KindPowerConnector); err != nil {
			return err
		}
		if d.Bay, err = r.item(path+".bay", s.Bay, catalog.KindDriveBay); err != nil {
			return err
		}
		if err := register(r.drives, "drives", s.ID, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) resolveBuilds(doc *Document) (map[string]*build.Build, error) {
	builds := make(map[string]*build.Build, len(doc.Builds))
	for i, s := range doc.Builds {
		b, err := r.resolveBuild(fmt.Sprintf("builds[%d]", i), s)
		if err != nil {
			return nil, err
		}
		if err := register(builds, "builds", s.ID, b); err != nil {
			return nil, err
		}
	}
	return builds, nil
}

func (r *resolver) resolveBuild(path string, s BuildSpec) (*build.Build, error) {
	b := &build.Build{ID: s.ID, Name: s.Name}
	if b.Name == "" {
		b.Name = s.ID
	}

	var err error
	if b.CPU, err = optional(r.cpus, path+".cpu", s.CPU); err != nil {
		return nil, err
	}
	if b.Motherboard, err = optional(r.motherboards, path+".motherboard", s.Motherboard); err != nil {
		return nil, err
	}
	if b.PSU, err = optional(r.psus, path+".psu", s.PSU); err != nil {
		return nil, err
	}
	if b.Case, err = optional(r.cases, path+".case", s.Case); err != nil {
		return nil, err
	}
	if b.Cooler, err = optional(r.coolers, path+".cooler", s.Cooler); err != nil {
		return nil, err
	}
	if b.GPU, err = optional(r.gpus, path+".gpu", s.GPU); err != nil {
		return nil, err
	}
	if b.Fans, err = entries(r.fans, path+".fans", s.Fans); err != nil {
		return nil, err
	}
	if b.RAM, err = entries(r.ram, path+".ram", s.RAM); err != nil {
		return nil, err
	}
	if b.HDDs, err = entries(r.drives, path+".hdds", s.HDDs); err != nil {
		return nil, err
	}
	if b.SSDs, err = entries(r.drives, path+".ssds", s.SSDs); err != nil {
		return nil, err
	}
	return b, nil
}
