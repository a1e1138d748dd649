package build

import "github.com/rigcheck/rigcheck/pkg/catalog"

// CPU is a processor.
type CPU struct {
	ID     string
	Name   string
	Socket *catalog.Item
	// TDP is the thermal design power in watts.
	TDP int
	// MaxMemoryClock is the highest officially supported memory clock in MHz.
	MaxMemoryClock int
}

// Chipset is the motherboard chipset; it determines the CPU socket.
type Chipset struct {
	ID     string
	Name   string
	Socket *catalog.Item
}

// Motherboard is a mainboard.
type Motherboard struct {
	ID             string
	Name           string
	Chipset        *Chipset
	FormFactor     *catalog.Item
	MemoryType     *catalog.Item
	RAMSlots       int
	MaxMemoryClock int
	PCIeVersion    *catalog.Item
	// StorageConnectors are the drive ports on the board (SATA, M.2).
	StorageConnectors []catalog.Count
	// FanHeaders are the fan power headers on the board.
	FanHeaders []catalog.Count
	// PowerConnectors are the power inputs the board needs from the PSU.
	PowerConnectors []catalog.Count
}

// PSU is a power supply.
type PSU struct {
	ID   string
	Name string
	// Power12V is the combined 12V rail capacity in watts.
	Power12V   int
	Connectors []catalog.Count
}

// Case is a chassis.
type Case struct {
	ID                     string
	Name                   string
	MaxCoolerHeight        int
	MaxGPULength           int
	MotherboardFormFactors []*catalog.Item
	DriveBays              []catalog.Count
	FanMounts              []catalog.Count
}

// AcceptsFormFactor reports whether a board of form factor ff fits the case.
func (c *Case) AcceptsFormFactor(ff *catalog.Item) bool {
	for _, accepted := range c.MotherboardFormFactors {
		if accepted.Is(ff) || accepted.IsCompatibleWith(ff.ID) {
			return true
		}
	}
	return false
}

// Cooler is a CPU cooler.
type Cooler struct {
	ID     string
	Name   string
	Height int
	// Dissipation is the heat the cooler can remove, in watts.
	Dissipation int
	Sockets     []*catalog.Item
	// FanConnector is the power connector of the cooler's own fan, if any.
	FanConnector *catalog.Item
}

// SupportsSocket reports whether the cooler can be mounted on socket.
func (c *Cooler) SupportsSocket(socket *catalog.Item) bool {
	for _, s := range c.Sockets {
		if s.Is(socket) {
			return true
		}
	}
	return false
}

// GPU is a graphics card.
type GPU struct {
	ID              string
	Name            string
	PowerDraw       int
	Length          int
	PCIeVersion     *catalog.Item
	PowerConnectors []catalog.Count
}

// Fan is a case fan.
type Fan struct {
	ID        string
	Name      string
	Size      *catalog.Item
	Connector *catalog.Item
}

// RAM is a memory kit of one or more identical modules.
type RAM struct {
	ID         string
	Name       string
	MemoryType *catalog.Item
	Clock      int
	// Modules is the number of sticks in the kit.
	Modules int
}

// Drive is an HDD or SSD.
type Drive struct {
	ID        string
	Name      string
	Interface *catalog.Item
	// PowerConnector is nil for drives powered through their slot (M.2).
	PowerConnector *catalog.Item
	// Bay is nil for drives that do not occupy a drive bay.
	Bay *catalog.Item
}
