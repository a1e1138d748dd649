package build

// Entry pairs a component with the number of units in the build.
type Entry[T any] struct {
	Component *T
	Quantity  int
}

// Build is a candidate PC configuration.
type Build struct {
	ID   string
	Name string

	CPU         *CPU
	Motherboard *Motherboard
	PSU         *PSU
	Case        *Case
	Cooler      *Cooler
	GPU         *GPU

	Fans []Entry[Fan]
	RAM  []Entry[RAM]
	HDDs []Entry[Drive]
	SSDs []Entry[Drive]
}

// FanCount returns the total number of fans.
func (b *Build) FanCount() int {
	return total(b.Fans)
}

// RAMModuleCount returns the number of memory sticks across all kits.
func (b *Build) RAMModuleCount() int {
	n := 0
	for _, e := range b.RAM {
		modules := e.Component.Modules
		if modules < 1 {
			modules = 1
		}
		n += e.Quantity * modules
	}
	return n
}

// Drives returns HDD entries followed by SSD entries.
func (b *Build) Drives() []Entry[Drive] {
	drives := make([]Entry[Drive], 0, len(b.HDDs)+len(b.SSDs))
	drives = append(drives, b.HDDs...)
	drives = append(drives, b.SSDs...)
	return drives
}

// HasStorage reports whether at least one drive is present.
func (b *Build) HasStorage() bool {
	return total(b.HDDs)+total(b.SSDs) > 0
}

func total[T any](entries []Entry[T]) int {
	n := 0
	for _, e := range entries {
		n += e.Quantity
	}
	return n
}
